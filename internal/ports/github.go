package ports

import (
	"context"
	"time"

	"github.com/renato0307/trainmerge/internal/domain"
)

// PullRequestQuerier reads pull requests
type PullRequestQuerier interface {
	// FetchPullRequest returns domain.ErrPullRequestNotFound when the pull request does not exist
	FetchPullRequest(ctx context.Context, number int) (*domain.RawPullRequest, error)
	ListPendingPullRequests(ctx context.Context, baseBranch string) ([]domain.RawPullRequest, error)
}

// PullRequestMutator changes pull requests
type PullRequestMutator interface {
	// MergePullRequest reports non-success HTTP statuses in the response, not as errors
	MergePullRequest(ctx context.Context, number int, req domain.MergeRequest) (*domain.MergeResponse, error)
	UpdatePullRequestState(ctx context.Context, number int, state domain.PullRequestState) error
	CreateComment(ctx context.Context, number int, body string) error
}

// RepositoryReader reads repository metadata
type RepositoryReader interface {
	ListBranches(ctx context.Context) ([]string, error)
	GetFileContent(ctx context.Context, path, ref string) ([]byte, error)
	GetReleasePublishDate(ctx context.Context, tag string) (time.Time, error)
	GetBranchHead(ctx context.Context, branch string) (string, error)
}

// TokenInspector reports what the configured token is allowed to do
type TokenInspector interface {
	OAuthScopes(ctx context.Context) ([]string, error)
}

// GitHubClient is the full GitHub surface used by the tool
type GitHubClient interface {
	PullRequestMutator
	PullRequestQuerier
	RepositoryReader
	TokenInspector
}
