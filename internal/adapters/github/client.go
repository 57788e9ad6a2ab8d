package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/ports"
)

// Client implements ports.GitHubClient with the REST API for mutations and repository
// reads and the GraphQL API for pull request queries
type Client struct {
	graphql *githubv4.Client
	name    string
	owner   string
	rest    *github.Client
}

// Verify interface compliance at compile time
var _ ports.GitHubClient = (*Client)(nil)

// Options configures a Client
type Options struct {
	BaseURL    string // REST API root, e.g. "https://api.github.com/"; empty for github.com
	GraphQLURL string // GraphQL endpoint; empty for github.com
	Name       string
	Owner      string
	Token      string
	Transport  http.RoundTripper // Innermost transport; defaults to a RetryTransport over http.DefaultTransport
}

// NewClient creates a GitHub client authenticated with a static token
func NewClient(opts Options) (*Client, error) {
	transport := opts.Transport
	if transport == nil {
		transport = NewRetryTransport(http.DefaultTransport)
	}
	if opts.Token != "" {
		transport = &oauth2.Transport{
			Base:   transport,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}),
		}
	}
	httpClient := &http.Client{Transport: transport}

	rest := github.NewClient(httpClient)
	if opts.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL: %w", err)
		}
		rest.BaseURL = baseURL
	}

	graphql := githubv4.NewClient(httpClient)
	if opts.GraphQLURL != "" {
		graphql = githubv4.NewEnterpriseClient(opts.GraphQLURL, httpClient)
	}

	return &Client{
		graphql: graphql,
		name:    opts.Name,
		owner:   opts.Owner,
		rest:    rest,
	}, nil
}

// MergePullRequest implements PullRequestMutator.MergePullRequest
func (c *Client) MergePullRequest(ctx context.Context, number int, req domain.MergeRequest) (*domain.MergeResponse, error) {
	logging.Logger.Info("Merging pull request via API", "number", number, "method", req.Method)

	result, _, err := c.rest.PullRequests.Merge(ctx, c.owner, c.name, number, req.CommitMessage, &github.PullRequestOptions{
		CommitTitle: req.CommitTitle,
		MergeMethod: string(req.Method),
	})
	if err != nil {
		if status, ok := statusFromError(err); ok {
			logging.Logger.Warn("Merge request rejected", "number", number, "status", status, "error", err)
			return &domain.MergeResponse{StatusCode: status}, nil
		}
		return nil, fmt.Errorf("failed to merge pull request #%d: %w", number, err)
	}

	return &domain.MergeResponse{SHA: result.GetSHA(), StatusCode: http.StatusOK}, nil
}

// UpdatePullRequestState implements PullRequestMutator.UpdatePullRequestState
func (c *Client) UpdatePullRequestState(ctx context.Context, number int, state domain.PullRequestState) error {
	var apiState string
	switch state {
	case domain.PullRequestClosed:
		apiState = "closed"
	case domain.PullRequestOpen:
		apiState = "open"
	default:
		return fmt.Errorf("cannot set pull request state to %s", state)
	}

	if _, _, err := c.rest.PullRequests.Edit(ctx, c.owner, c.name, number, &github.PullRequest{
		State: github.String(apiState),
	}); err != nil {
		return fmt.Errorf("failed to update state of pull request #%d: %w", number, err)
	}
	return nil
}

// CreateComment implements PullRequestMutator.CreateComment
func (c *Client) CreateComment(ctx context.Context, number int, body string) error {
	if _, _, err := c.rest.Issues.CreateComment(ctx, c.owner, c.name, number, &github.IssueComment{
		Body: github.String(body),
	}); err != nil {
		return fmt.Errorf("failed to comment on pull request #%d: %w", number, err)
	}
	return nil
}

// ListBranches implements RepositoryReader.ListBranches
func (c *Client) ListBranches(ctx context.Context) ([]string, error) {
	var names []string
	opts := &github.ListOptions{PerPage: 100}
	for {
		branches, resp, err := c.rest.Repositories.ListBranches(ctx, c.owner, c.name, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list branches: %w", err)
		}
		for _, b := range branches {
			names = append(names, b.GetName())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return names, nil
}

// GetFileContent implements RepositoryReader.GetFileContent
func (c *Client) GetFileContent(ctx context.Context, path, ref string) ([]byte, error) {
	file, _, _, err := c.rest.Repositories.GetContents(ctx, c.owner, c.name, path, &github.RepositoryContentGetOptions{
		Ref: ref,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s at %s: %w", path, ref, err)
	}
	if file == nil {
		return nil, fmt.Errorf("%s at %s is a directory", path, ref)
	}
	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s at %s: %w", path, ref, err)
	}
	return []byte(content), nil
}

// GetReleasePublishDate implements RepositoryReader.GetReleasePublishDate
func (c *Client) GetReleasePublishDate(ctx context.Context, tag string) (time.Time, error) {
	release, _, err := c.rest.Repositories.GetReleaseByTag(ctx, c.owner, c.name, tag)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get release %s: %w", tag, err)
	}
	published := release.GetPublishedAt()
	if published.Time.IsZero() {
		return time.Time{}, fmt.Errorf("release %s has not been published", tag)
	}
	return published.Time, nil
}

// GetBranchHead implements RepositoryReader.GetBranchHead
func (c *Client) GetBranchHead(ctx context.Context, branch string) (string, error) {
	b, _, err := c.rest.Repositories.GetBranch(ctx, c.owner, c.name, branch)
	if err != nil {
		return "", fmt.Errorf("failed to get branch %s: %w", branch, err)
	}
	return b.GetCommit().GetSHA(), nil
}

// OAuthScopes implements TokenInspector.OAuthScopes
func (c *Client) OAuthScopes(ctx context.Context) ([]string, error) {
	_, resp, err := c.rest.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to inspect token: %w", err)
	}

	var scopes []string
	for _, scope := range strings.Split(resp.Header.Get("X-OAuth-Scopes"), ",") {
		if scope = strings.TrimSpace(scope); scope != "" {
			scopes = append(scopes, scope)
		}
	}
	logging.Logger.Debug("Token scopes", "scopes", scopes)
	return scopes, nil
}

func statusFromError(err error) (int, bool) {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode, true
	}
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return rateErr.Response.StatusCode, true
	}
	return 0, false
}
