package ports

import "context"

// GitResult is the outcome of a git invocation that is allowed to fail
type GitResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// Succeeded reports whether git exited with status 0
func (r GitResult) Succeeded() bool {
	return r.ExitCode == 0
}

// GitClient runs git against the local clone
type GitClient interface {
	// Run fails with *domain.GitCommandError on a non-zero exit
	Run(ctx context.Context, args []string) (string, error)
	RunGraceful(ctx context.Context, args []string) GitResult
	// RunInteractive attaches the terminal, env entries are appended to the process environment
	RunInteractive(ctx context.Context, args []string, env []string) error

	// CurrentBranchOrRevision returns the branch name or, when detached, the HEAD SHA
	CurrentBranchOrRevision(ctx context.Context) (string, error)
	HasCommit(ctx context.Context, ref, sha string) (bool, error)
	HasUncommittedChanges(ctx context.Context) (bool, error)
	IsShallow() (bool, error)
	// Checkout returns false when the checkout failed
	Checkout(ctx context.Context, ref string, cleanState bool) bool

	// RewriteCommitMessages rewrites the messages of the commits in base..ref, moves ref
	// (a branch name or HEAD) to the rewritten tip and returns its SHA
	RewriteCommitMessages(ctx context.Context, base, ref string, rewrite func(message string) string) (string, error)

	// RemoteURL returns the authenticated URL of the upstream repository
	RemoteURL() string
}
