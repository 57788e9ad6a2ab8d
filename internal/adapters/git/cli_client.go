package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/ports"
)

const redactedToken = "<TOKEN>"

// CLIClient implements ports.GitClient by running the git binary inside a local clone
type CLIClient struct {
	remoteURL string
	repoDir   string
	token     string // Redacted from arguments and output
}

// Verify interface compliance at compile time
var _ ports.GitClient = (*CLIClient)(nil)

// NewCLIClient creates a client for the clone at repoDir pushing to and fetching from remoteURL
func NewCLIClient(repoDir, remoteURL, token string) *CLIClient {
	return &CLIClient{
		remoteURL: remoteURL,
		repoDir:   repoDir,
		token:     token,
	}
}

// GitHubRemoteURL builds the authenticated HTTPS remote of a GitHub repository
func GitHubRemoteURL(owner, name, token string) string {
	if token == "" {
		return fmt.Sprintf("https://github.com/%s/%s.git", owner, name)
	}
	return fmt.Sprintf("https://x-access-token:%s@github.com/%s/%s.git", token, owner, name)
}

// RemoteURL implements GitClient.RemoteURL
func (c *CLIClient) RemoteURL() string {
	return c.remoteURL
}

// Run implements GitClient.Run
func (c *CLIClient) Run(ctx context.Context, args []string) (string, error) {
	result := c.RunGraceful(ctx, args)
	if !result.Succeeded() {
		return result.Stdout, &domain.GitCommandError{
			Args:     c.redactArgs(args),
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
		}
	}
	return result.Stdout, nil
}

// RunGraceful implements GitClient.RunGraceful
func (c *CLIClient) RunGraceful(ctx context.Context, args []string) ports.GitResult {
	logging.Logger.Debug("Running git command", "args", c.redactArgs(args))

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.repoDir
	// Never block on credential or editor prompts
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := ports.GitResult{}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
			stderr.WriteString(err.Error())
		}
	}
	result.Stdout = c.redact(stdout.String())
	result.Stderr = c.redact(stderr.String())

	if !result.Succeeded() {
		logging.Logger.Debug("Git command failed",
			"args", c.redactArgs(args),
			"exit_code", result.ExitCode,
			"stderr", strings.TrimSpace(result.Stderr))
	}
	return result
}

// RunInteractive implements GitClient.RunInteractive
func (c *CLIClient) RunInteractive(ctx context.Context, args []string, env []string) error {
	logging.Logger.Debug("Running interactive git command", "args", c.redactArgs(args), "env", env)

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.repoDir
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return &domain.GitCommandError{Args: c.redactArgs(args), ExitCode: exitCode, Stderr: err.Error()}
	}
	return nil
}

// CurrentBranchOrRevision implements GitClient.CurrentBranchOrRevision
func (c *CLIClient) CurrentBranchOrRevision(ctx context.Context) (string, error) {
	out, err := c.Run(ctx, []string{"rev-parse", "--abbrev-ref", "HEAD"})
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	branch := strings.TrimSpace(out)
	if branch != "HEAD" {
		return branch, nil
	}

	out, err = c.Run(ctx, []string{"rev-parse", "HEAD"})
	if err != nil {
		return "", fmt.Errorf("failed to get current revision: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// HasCommit implements GitClient.HasCommit
func (c *CLIClient) HasCommit(ctx context.Context, ref, sha string) (bool, error) {
	result := c.RunGraceful(ctx, []string{"merge-base", "--is-ancestor", sha, ref})
	switch result.ExitCode {
	case 0:
		return true, nil
	case 1:
		return false, nil
	default:
		return false, &domain.GitCommandError{
			Args:     []string{"merge-base", "--is-ancestor", sha, ref},
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
		}
	}
}

// HasUncommittedChanges implements GitClient.HasUncommittedChanges.
// Untracked files are ignored.
func (c *CLIClient) HasUncommittedChanges(ctx context.Context) (bool, error) {
	out, err := c.Run(ctx, []string{"status", "--porcelain", "-uno"})
	if err != nil {
		return false, fmt.Errorf("failed to get working tree status: %w", err)
	}
	return strings.TrimSpace(out) != "", nil
}

// IsShallow implements GitClient.IsShallow
func (c *CLIClient) IsShallow() (bool, error) {
	repo, err := gogit.PlainOpenWithOptions(c.repoDir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return false, fmt.Errorf("failed to open repository: %w", err)
	}
	shallow, err := repo.Storer.Shallow()
	if err != nil {
		return false, fmt.Errorf("failed to read shallow commits: %w", err)
	}
	return len(shallow) > 0, nil
}

// Checkout implements GitClient.Checkout. With cleanState, pending am, cherry-pick and
// rebase operations are aborted and the working tree is reset first.
func (c *CLIClient) Checkout(ctx context.Context, ref string, cleanState bool) bool {
	if cleanState {
		c.RunGraceful(ctx, []string{"am", "--abort"})
		c.RunGraceful(ctx, []string{"cherry-pick", "--abort"})
		c.RunGraceful(ctx, []string{"rebase", "--abort"})
		c.RunGraceful(ctx, []string{"reset", "--hard"})
	}
	result := c.RunGraceful(ctx, []string{"checkout", "-q", "-f", ref})
	if !result.Succeeded() {
		logging.Logger.Warn("Checkout failed", "ref", ref, "stderr", strings.TrimSpace(result.Stderr))
		return false
	}
	return true
}

func (c *CLIClient) redact(s string) string {
	if c.token == "" {
		return s
	}
	return strings.ReplaceAll(s, c.token, redactedToken)
}

func (c *CLIClient) redactArgs(args []string) []string {
	redacted := make([]string, len(args))
	for i, arg := range args {
		redacted[i] = c.redact(arg)
	}
	return redacted
}
