package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/shurcooL/githubv4"

	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/logging"
)

type labelNodes struct {
	Nodes []struct {
		Name string
	}
}

type commitNode struct {
	Commit struct {
		Message           string
		StatusCheckRollup *struct {
			State githubv4.StatusState
		}
	}
}

// pullRequestNode is the GraphQL shape of a pull request used for validation
type pullRequestNode struct {
	BaseRefName string
	Commits     struct {
		Nodes      []commitNode
		TotalCount int
	} `graphql:"commits(last: 100)"`
	HeadRefName    string
	HeadRepository *struct {
		URL string
	}
	IsDraft bool
	Labels  labelNodes `graphql:"labels(first: 100)"`
	Number  int
	State   githubv4.PullRequestState
	Title   string
	URL     string
}

// pendingPullRequestNode only carries the most recent commit
type pendingPullRequestNode struct {
	BaseRefName string
	Commits     struct {
		Nodes      []commitNode
		TotalCount int
	} `graphql:"commits(last: 1)"`
	HeadRefName string
	IsDraft     bool
	Labels      labelNodes `graphql:"labels(first: 100)"`
	Number      int
	State       githubv4.PullRequestState
	Title       string
	URL         string
}

// FetchPullRequest implements PullRequestQuerier.FetchPullRequest
func (c *Client) FetchPullRequest(ctx context.Context, number int) (*domain.RawPullRequest, error) {
	var q struct {
		Repository struct {
			PullRequest *pullRequestNode `graphql:"pullRequest(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}
	vars := map[string]interface{}{
		"name":   githubv4.String(c.name),
		"number": githubv4.Int(number),
		"owner":  githubv4.String(c.owner),
	}

	logging.Logger.Debug("Fetching pull request", "number", number)
	if err := c.graphql.Query(ctx, &q, vars); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: #%d", domain.ErrPullRequestNotFound, number)
		}
		return nil, fmt.Errorf("failed to fetch pull request #%d: %w", number, err)
	}
	if q.Repository.PullRequest == nil {
		return nil, fmt.Errorf("%w: #%d", domain.ErrPullRequestNotFound, number)
	}

	node := q.Repository.PullRequest
	pr := &domain.RawPullRequest{
		BaseBranch:  node.BaseRefName,
		CommitCount: node.Commits.TotalCount,
		Commits:     toRawCommits(node.Commits.Nodes),
		HeadBranch:  node.HeadRefName,
		IsDraft:     node.IsDraft,
		Labels:      toLabels(node.Labels),
		Number:      node.Number,
		State:       toState(node.State),
		Title:       node.Title,
		URL:         node.URL,
	}
	if node.HeadRepository != nil {
		pr.HeadRepoURL = node.HeadRepository.URL
	}
	return pr, nil
}

// ListPendingPullRequests implements PullRequestQuerier.ListPendingPullRequests.
// Drafts are excluded. An empty baseBranch lists pull requests for every base.
func (c *Client) ListPendingPullRequests(ctx context.Context, baseBranch string) ([]domain.RawPullRequest, error) {
	var q struct {
		Repository struct {
			PullRequests struct {
				Nodes    []pendingPullRequestNode
				PageInfo struct {
					EndCursor   githubv4.String
					HasNextPage bool
				}
			} `graphql:"pullRequests(first: 50, after: $cursor, states: $states, baseRefName: $base, orderBy: {field: CREATED_AT, direction: ASC})"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	var base *githubv4.String
	if baseBranch != "" {
		base = githubv4.NewString(githubv4.String(baseBranch))
	}
	vars := map[string]interface{}{
		"base":   base,
		"cursor": (*githubv4.String)(nil),
		"name":   githubv4.String(c.name),
		"owner":  githubv4.String(c.owner),
		"states": []githubv4.PullRequestState{githubv4.PullRequestStateOpen},
	}

	var pending []domain.RawPullRequest
	for {
		if err := c.graphql.Query(ctx, &q, vars); err != nil {
			return nil, fmt.Errorf("failed to list pull requests: %w", err)
		}
		for _, node := range q.Repository.PullRequests.Nodes {
			if node.IsDraft {
				continue
			}
			pending = append(pending, domain.RawPullRequest{
				BaseBranch:  node.BaseRefName,
				CommitCount: node.Commits.TotalCount,
				Commits:     toRawCommits(node.Commits.Nodes),
				HeadBranch:  node.HeadRefName,
				Labels:      toLabels(node.Labels),
				Number:      node.Number,
				State:       toState(node.State),
				Title:       node.Title,
				URL:         node.URL,
			})
		}
		if !q.Repository.PullRequests.PageInfo.HasNextPage {
			break
		}
		vars["cursor"] = githubv4.NewString(q.Repository.PullRequests.PageInfo.EndCursor)
	}

	logging.Logger.Debug("Listed pending pull requests", "base", baseBranch, "count", len(pending))
	return pending, nil
}

func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Could not resolve to a PullRequest")
}

func toLabels(labels labelNodes) []string {
	names := make([]string, 0, len(labels.Nodes))
	for _, l := range labels.Nodes {
		names = append(names, l.Name)
	}
	return names
}

func toRawCommits(nodes []commitNode) []domain.RawCommit {
	commits := make([]domain.RawCommit, 0, len(nodes))
	for _, n := range nodes {
		state := domain.CIStateUnknown
		if n.Commit.StatusCheckRollup != nil {
			state = toCIState(n.Commit.StatusCheckRollup.State)
		}
		commits = append(commits, domain.RawCommit{CIState: state, Message: n.Commit.Message})
	}
	return commits
}

func toCIState(state githubv4.StatusState) domain.CIState {
	switch state {
	case githubv4.StatusStateSuccess:
		return domain.CIStateSuccess
	case githubv4.StatusStateFailure, githubv4.StatusStateError:
		return domain.CIStateFailure
	case githubv4.StatusStatePending, githubv4.StatusStateExpected:
		return domain.CIStatePending
	default:
		return domain.CIStateUnknown
	}
}

func toState(state githubv4.PullRequestState) domain.PullRequestState {
	switch state {
	case githubv4.PullRequestStateMerged:
		return domain.PullRequestMerged
	case githubv4.PullRequestStateClosed:
		return domain.PullRequestClosed
	default:
		return domain.PullRequestOpen
	}
}
