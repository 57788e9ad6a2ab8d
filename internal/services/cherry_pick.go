package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/ports"
)

const (
	// PullRequestHeadBranch is the local branch the pull request head is fetched into
	PullRequestHeadBranch = "trainmerge/pr-head"

	localTargetBranchPrefix = "trainmerge/target/"
)

// LocalTargetBranch returns the local branch holding the fetched copy of an upstream branch
func LocalTargetBranch(name string) string {
	return localTargetBranchPrefix + name
}

// CherryPickOptions controls CherryPickIntoTargetBranches
type CherryPickOptions struct {
	DryRun                bool // Probe for conflicts only, local copies are left untouched
	LinkToOriginalCommits bool // Record "(cherry picked from commit ...)" and "PR Close #<n>"
	PullRequestNumber     int
}

// CherryPickEngine fans a revision range out to the local copies of target branches
type CherryPickEngine struct {
	git ports.GitClient
}

// NewCherryPickEngine creates a new CherryPickEngine
func NewCherryPickEngine(git ports.GitClient) *CherryPickEngine {
	return &CherryPickEngine{
		git: git,
	}
}

// FetchTargetBranches force-fetches the upstream branches into their local copies in one call.
// extraRefspecs are fetched along.
func (e *CherryPickEngine) FetchTargetBranches(ctx context.Context, names []string, extraRefspecs ...string) error {
	args := []string{"fetch", "-q", "-f", e.git.RemoteURL()}
	for _, name := range names {
		args = append(args, fmt.Sprintf("refs/heads/%s:refs/heads/%s", name, LocalTargetBranch(name)))
	}
	args = append(args, extraRefspecs...)

	if _, err := e.git.Run(ctx, args); err != nil {
		return err
	}
	logging.Logger.Info("Fetched target branches", "branches", names)
	return nil
}

// CherryPickIntoTargetBranches cherry-picks revisionRange into each target's local copy and
// returns the branches that could not be picked cleanly. A conflict on one branch does not stop
// the others.
func (e *CherryPickEngine) CherryPickIntoTargetBranches(ctx context.Context, revisionRange string, targets []string, opts CherryPickOptions) ([]string, error) {
	count, err := e.git.Run(ctx, []string{"rev-list", "--count", revisionRange})
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("Cherry-picking revision range",
		"range", revisionRange, "commits", strings.TrimSpace(count), "targets", targets, "dry_run", opts.DryRun)

	pickArgs := []string{"cherry-pick"}
	if opts.DryRun {
		pickArgs = append(pickArgs, "--no-commit")
	}
	if opts.LinkToOriginalCommits {
		pickArgs = append(pickArgs, "-x")
	}
	pickArgs = append(pickArgs, revisionRange)

	var failed []string
	for _, target := range targets {
		local := LocalTargetBranch(target)
		if _, err := e.git.Run(ctx, []string{"checkout", "-q", "-f", "--detach", local}); err != nil {
			return nil, err
		}

		result := e.git.RunGraceful(ctx, pickArgs)
		if !result.Succeeded() {
			logging.Logger.Info("Cherry-pick conflict", "branch", target, "stderr", strings.TrimSpace(result.Stderr))
			failed = append(failed, target)
		}
		e.git.RunGraceful(ctx, []string{"cherry-pick", "--abort"})

		if opts.DryRun {
			if _, err := e.git.Run(ctx, []string{"reset", "--hard", "HEAD"}); err != nil {
				return nil, err
			}
			continue
		}
		if !result.Succeeded() {
			continue
		}

		if opts.LinkToOriginalCommits && opts.PullRequestNumber > 0 {
			if _, err := e.git.RewriteCommitMessages(ctx, local, "HEAD", AppendPullRequestClose(opts.PullRequestNumber)); err != nil {
				return nil, fmt.Errorf("failed to link commits on %s: %w", target, err)
			}
		}
		if _, err := e.git.Run(ctx, []string{"update-ref", "refs/heads/" + local, "HEAD"}); err != nil {
			return nil, err
		}
	}

	return failed, nil
}

// PushTargetBranchesUpstream pushes each local copy to its upstream branch. Pushes are not atomic:
// a failure leaves earlier branches pushed.
func (e *CherryPickEngine) PushTargetBranchesUpstream(ctx context.Context, names []string) error {
	for _, name := range names {
		refspec := fmt.Sprintf("refs/heads/%s:refs/heads/%s", LocalTargetBranch(name), name)
		if _, err := e.git.Run(ctx, []string{"push", e.git.RemoteURL(), refspec}); err != nil {
			return err
		}
		logging.Logger.Info("Pushed target branch", "branch", name)
	}
	return nil
}

// DeleteLocalTargetBranches removes the local copies, ignoring branches that do not exist
func (e *CherryPickEngine) DeleteLocalTargetBranches(ctx context.Context, names []string, extraBranches ...string) {
	branches := make([]string, 0, len(names)+len(extraBranches))
	for _, name := range names {
		branches = append(branches, LocalTargetBranch(name))
	}
	branches = append(branches, extraBranches...)
	if len(branches) == 0 {
		return
	}

	result := e.git.RunGraceful(ctx, append([]string{"branch", "-D"}, branches...))
	if !result.Succeeded() {
		logging.Logger.Warn("Could not delete local branches", "branches", branches, "stderr", strings.TrimSpace(result.Stderr))
	}
}

var pullRequestClosePattern = regexp.MustCompile(`(?m)^PR Close #(\d+)$`)

// AppendPullRequestClose returns a message rewriter adding a "PR Close #<n>" trailer once
func AppendPullRequestClose(number int) func(string) string {
	trailer := fmt.Sprintf("PR Close #%d", number)
	return func(message string) string {
		for _, m := range pullRequestClosePattern.FindAllStringSubmatch(message, -1) {
			if m[1] == fmt.Sprint(number) {
				return message
			}
		}
		return strings.TrimRight(message, "\n") + "\n\n" + trailer + "\n"
	}
}
