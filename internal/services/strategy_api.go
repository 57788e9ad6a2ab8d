package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/renato0307/trainmerge/internal/config"
	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/ports"
)

const commitHeaderSeparator = "\n\n"

// apiMergeStrategy merges through the GitHub API into the UI-selected base branch and
// cherry-picks the result into the remaining target branches
type apiMergeStrategy struct {
	baseStrategy
	cfg      *config.APIMergeConfig
	github   ports.PullRequestMutator
	prompter ports.Prompter
}

var _ MergeStrategy = (*apiMergeStrategy)(nil)

func (s *apiMergeStrategy) Name() string {
	return config.StrategyAPIMerge
}

func (s *apiMergeStrategy) Merge(ctx context.Context, pr *domain.PullRequest) (*domain.PullRequestFailure, error) {
	uiBase := pr.GitHubTargetBranch
	if !pr.TargetsBranch(uiBase) {
		return domain.FailureMismatchingTargetBranch(pr.TargetBranches), nil
	}

	if failure, err := s.checkRequiredBase(ctx, pr); failure != nil || err != nil {
		return failure, err
	}

	cherryPickTargets := pr.BranchesExcept(uiBase)
	if len(cherryPickTargets) > 0 {
		baseSHA, err := s.revParse(ctx, pullRequestBaseRevision(pr))
		if err != nil {
			return nil, err
		}
		revisionRange := baseSHA + ".." + PullRequestHeadBranch
		failed, err := s.cherryPick.CherryPickIntoTargetBranches(ctx, revisionRange, cherryPickTargets, CherryPickOptions{DryRun: true})
		if err != nil {
			return nil, err
		}
		if len(failed) > 0 {
			return domain.FailureMergeConflicts(failed), nil
		}
	}

	method := s.cfg.MergeMethodForLabels(pr.Labels)
	req := domain.MergeRequest{Method: method}
	if pr.NeedsCommitMessageFixup {
		if method != domain.MergeMethodSquash {
			return domain.FailureCommitMessageFixupUnsupported(method), nil
		}
		title, message, err := s.promptCommitMessage(pr)
		if err != nil {
			return nil, err
		}
		req.CommitTitle = title
		req.CommitMessage = message
	}

	logging.Logger.Info("Merging pull request through the API", "pr", pr.Number, "method", method, "base", uiBase)
	resp, err := s.github.MergePullRequest(ctx, pr.Number, req)
	if err != nil {
		return nil, fmt.Errorf("failed to merge pull request #%d: %w", pr.Number, err)
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusNotFound:
		return domain.FailureInsufficientPermissions(""), nil
	case http.StatusMethodNotAllowed:
		return domain.FailureMergeConflicts([]string{uiBase}), nil
	default:
		return domain.FailureUnknownMergeError(resp.StatusCode), nil
	}

	if len(cherryPickTargets) == 0 {
		return nil, nil
	}

	// Brings the merge commit into the local repository
	if err := s.cherryPick.FetchTargetBranches(ctx, []string{uiBase}); err != nil {
		return nil, fmt.Errorf("failed to re-fetch %s: %w", uiBase, err)
	}

	failed, err := s.cherryPick.CherryPickIntoTargetBranches(ctx, mergedRevisionRange(resp.SHA, method, pr.CommitCount),
		cherryPickTargets, CherryPickOptions{LinkToOriginalCommits: true, PullRequestNumber: pr.Number})
	if err != nil {
		return nil, err
	}
	if len(failed) > 0 {
		return domain.FailureMergeConflicts(failed), nil
	}

	if err := s.cherryPick.PushTargetBranchesUpstream(ctx, cherryPickTargets); err != nil {
		return nil, err
	}
	return nil, nil
}

// mergedRevisionRange returns the commits the platform merge added to the base branch
func mergedRevisionRange(sha string, method domain.MergeMethod, commitCount int) string {
	switch method {
	case domain.MergeMethodSquash:
		return fmt.Sprintf("%s~1..%s", sha, sha)
	case domain.MergeMethodRebase:
		return fmt.Sprintf("%s~%d..%s", sha, commitCount, sha)
	default:
		// Merge commits are skipped, the second parent is the pull request head
		return fmt.Sprintf("%s^1..%s^2", sha, sha)
	}
}

func (s *apiMergeStrategy) promptCommitMessage(pr *domain.PullRequest) (string, string, error) {
	edited, err := s.prompter.EditText("Update the commit message", DefaultSquashCommitMessage(pr))
	if err != nil {
		return "", "", err
	}

	title, message, _ := strings.Cut(strings.TrimSpace(edited), commitHeaderSeparator)
	title = strings.TrimSpace(title)
	if title == "" {
		title = pr.Title
	}
	return fmt.Sprintf("%s (#%d)", title, pr.Number), message, nil
}

// DefaultSquashCommitMessage proposes the squash message: the title followed by the body of a
// single commit or the list of all commit messages
func DefaultSquashCommitMessage(pr *domain.PullRequest) string {
	messageBase := pr.Title + commitHeaderSeparator
	if len(pr.Commits) <= 1 {
		if len(pr.Commits) == 0 {
			return messageBase
		}
		return messageBase + pr.Commits[0].Body
	}

	items := make([]string, 0, len(pr.Commits))
	for _, c := range pr.Commits {
		items = append(items, "* "+c.Message)
	}
	return messageBase + strings.Join(items, commitHeaderSeparator)
}
