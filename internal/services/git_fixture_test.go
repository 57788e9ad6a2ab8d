package services

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	gitadapter "github.com/renato0307/trainmerge/internal/adapters/git"
)

// upstreamFixture is a bare "GitHub" repository with a seed clone used to shape upstream state
// and a work clone trainmerge operates on
type upstreamFixture struct {
	client *gitadapter.CLIClient
	origin string
	seed   string
	work   string
}

// newUpstreamFixture creates main and 10.0.x, both containing lib.txt
func newUpstreamFixture(t *testing.T) *upstreamFixture {
	t.Helper()

	seed := t.TempDir()
	runGit(t, seed, "init", "-q")
	configureIdentity(t, seed)
	commitFile(t, seed, "lib.txt", "one\ntwo\nthree\n", "feat: initial lib")
	runGit(t, seed, "branch", "-M", "main")
	runGit(t, seed, "branch", "10.0.x")

	origin := t.TempDir()
	runGit(t, origin, "init", "-q", "--bare")
	runGit(t, origin, "symbolic-ref", "HEAD", "refs/heads/main")
	runGit(t, seed, "push", "-q", origin, "main", "10.0.x")

	work := filepath.Join(t.TempDir(), "work")
	runGit(t, seed, "clone", "-q", origin, work)
	configureIdentity(t, work)

	return &upstreamFixture{
		client: gitadapter.NewCLIClient(work, origin, ""),
		origin: origin,
		seed:   seed,
		work:   work,
	}
}

// commitUpstream commits a file on an upstream branch
func (f *upstreamFixture) commitUpstream(t *testing.T, branch, name, content, message string) string {
	t.Helper()
	runGit(t, f.seed, "checkout", "-q", branch)
	sha := commitFile(t, f.seed, name, content, message)
	runGit(t, f.seed, "push", "-q", f.origin, branch)
	runGit(t, f.seed, "checkout", "-q", "main")
	return sha
}

type fixtureCommit struct {
	content string
	file    string
	message string
}

// pushPullRequest publishes commits on top of base as refs/pull/<number>/head
func (f *upstreamFixture) pushPullRequest(t *testing.T, number int, base string, commits ...fixtureCommit) {
	t.Helper()
	branch := fmt.Sprintf("pr-%d", number)
	runGit(t, f.seed, "checkout", "-q", "-b", branch, base)
	for _, c := range commits {
		commitFile(t, f.seed, c.file, c.content, c.message)
	}
	runGit(t, f.seed, "push", "-q", "-f", f.origin, fmt.Sprintf("%s:refs/pull/%d/head", branch, number))
	runGit(t, f.seed, "checkout", "-q", "main")
}

// upstreamLog returns the messages on an upstream branch, newest first
func (f *upstreamFixture) upstreamLog(t *testing.T, branch string) []string {
	t.Helper()
	out := runGit(t, f.origin, "log", "--format=%B%x00", branch)
	var messages []string
	for _, m := range strings.Split(out, "\x00") {
		if m = strings.TrimSpace(m); m != "" {
			messages = append(messages, m)
		}
	}
	return messages
}

func configureIdentity(t *testing.T, dir string) {
	t.Helper()
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=Test",
		"GIT_COMMITTER_EMAIL=test@test.com",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, out)
	return strings.TrimSpace(string(out))
}

func commitFile(t *testing.T, dir, name, content, message string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	runGit(t, dir, "add", name)
	runGit(t, dir, "commit", "-q", "-m", message)
	return runGit(t, dir, "rev-parse", "HEAD")
}
