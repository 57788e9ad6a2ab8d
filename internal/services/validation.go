package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/trainmerge/internal/commitmsg"
	"github.com/renato0307/trainmerge/internal/config"
	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/ports"
)

// ValidationOptions tunes the validation gates
type ValidationOptions struct {
	IgnoreNonFatalFailures bool
}

// PullRequestValidator loads a pull request and checks it can be merged into its target branches
type PullRequestValidator struct {
	cfg     *config.MergeConfig
	querier ports.PullRequestQuerier
}

// NewPullRequestValidator creates a new PullRequestValidator
func NewPullRequestValidator(cfg *config.MergeConfig, querier ports.PullRequestQuerier) *PullRequestValidator {
	return &PullRequestValidator{
		cfg:     cfg,
		querier: querier,
	}
}

// LoadAndValidatePullRequest returns either a validated pull request or a failure.
// The error is only set for fatal problems (GitHub unreachable, LTS lookup errors, ...).
func (v *PullRequestValidator) LoadAndValidatePullRequest(
	ctx context.Context,
	number int,
	targetLabels []domain.TargetLabel,
	opts ValidationOptions,
) (*domain.PullRequest, *domain.PullRequestFailure, error) {
	raw, err := v.querier.FetchPullRequest(ctx, number)
	if err != nil {
		if errors.Is(err, domain.ErrPullRequestNotFound) {
			return nil, domain.FailureNotFound(), nil
		}
		return nil, nil, fmt.Errorf("failed to fetch pull request #%d: %w", number, err)
	}

	if failure := assertPending(raw); failure != nil {
		return nil, failure, nil
	}

	if !v.cfg.MergeReadyLabel.MatchesAny(raw.Labels) {
		return nil, domain.FailureNotMergeReady(), nil
	}
	if !v.cfg.CLASignedLabel.MatchesAny(raw.Labels) {
		return nil, domain.FailureCLAUnsigned(), nil
	}

	targetLabel, err := GetMatchingTargetLabelForPullRequest(raw.Labels, targetLabels)
	if err != nil {
		failure, err := targetFailure(err)
		return nil, failure, err
	}

	messages := make([]string, 0, len(raw.Commits))
	for _, c := range raw.Commits {
		messages = append(messages, c.Message)
	}
	commits := commitmsg.ParseAll(messages)

	if failure := AssertChangesAllowForTargetLabel(commits, targetLabel, v.cfg.TargetLabelExemptScopes); failure != nil {
		return nil, failure, nil
	}
	if failure := AssertCorrectBreakingChangeLabeling(commits, raw.Labels, v.cfg.BreakingChangeLabel); failure != nil {
		return nil, failure, nil
	}

	switch raw.LatestCIState() {
	case domain.CIStateFailure:
		if !opts.IgnoreNonFatalFailures {
			return nil, domain.FailureFailingCI(), nil
		}
	case domain.CIStatePending:
		if !opts.IgnoreNonFatalFailures {
			return nil, domain.FailurePendingCI(), nil
		}
	case domain.CIStateUnknown:
		logging.Logger.Warn("No CI status reported for the latest commit", "pr", number)
	}

	githubTargetBranch := raw.BaseBranch
	targetBranches, err := GetBranchesFromTargetLabel(ctx, targetLabel, githubTargetBranch)
	if err != nil {
		failure, err := targetFailure(err)
		return nil, failure, err
	}

	pr := &domain.PullRequest{
		CommitCount:             raw.CommitCount,
		Commits:                 commits,
		GitHubTargetBranch:      githubTargetBranch,
		HasCaretakerNote:        v.cfg.CaretakerNoteLabel.MatchesAny(raw.Labels),
		HeadBranch:              raw.HeadBranch,
		HeadRepoURL:             raw.HeadRepoURL,
		Labels:                  raw.Labels,
		NeedsCommitMessageFixup: v.cfg.CommitMessageFixupLabel.MatchesAny(raw.Labels),
		Number:                  raw.Number,
		RequiredBaseSHA:         v.cfg.RequiredBaseCommits[githubTargetBranch],
		TargetBranches:          targetBranches,
		Title:                   raw.Title,
		URL:                     raw.URL,
	}
	logging.Logger.Info("Pull request validated",
		"pr", pr.Number, "label", targetLabel.Name, "targets", pr.TargetBranches)
	return pr, nil, nil
}

func assertPending(raw *domain.RawPullRequest) *domain.PullRequestFailure {
	if raw.IsDraft {
		return domain.FailureIsDraft()
	}
	switch raw.State {
	case domain.PullRequestClosed:
		return domain.FailureIsClosed()
	case domain.PullRequestMerged:
		return domain.FailureIsMerged()
	}
	return nil
}

// targetFailure turns target label and target branch errors into failures, keeping others fatal
func targetFailure(err error) (*domain.PullRequestFailure, error) {
	var labelErr *domain.InvalidTargetLabelError
	var branchErr *domain.InvalidTargetBranchError
	switch {
	case errors.As(err, &labelErr):
		return domain.FailureInvalidTarget(labelErr.Message), nil
	case errors.As(err, &branchErr):
		return domain.FailureInvalidTarget(branchErr.Message), nil
	}
	return nil, fmt.Errorf("failed to resolve target branches: %w", err)
}

// AssertChangesAllowForTargetLabel checks the commit content against the release level of label.
// Commits with an exempt scope are not considered.
func AssertChangesAllowForTargetLabel(commits []domain.Commit, label domain.TargetLabel, exemptScopes []string) *domain.PullRequestFailure {
	exempt := make(map[string]bool, len(exemptScopes))
	for _, s := range exemptScopes {
		exempt[s] = true
	}

	var hasBreakingChanges, hasDeprecations, hasFeatureCommits bool
	for _, c := range commits {
		if exempt[c.Scope] {
			continue
		}
		hasBreakingChanges = hasBreakingChanges || c.HasBreakingChanges()
		hasDeprecations = hasDeprecations || c.HasDeprecations()
		hasFeatureCommits = hasFeatureCommits || c.Type == domain.CommitTypeFeature
	}

	switch label.Kind {
	case domain.TargetMajor:
		return nil
	case domain.TargetMinor:
		if hasBreakingChanges {
			return domain.FailureHasBreakingChanges(label)
		}
	case domain.TargetPatch, domain.TargetReleaseCandidate, domain.TargetLongTermSupport:
		if hasBreakingChanges {
			return domain.FailureHasBreakingChanges(label)
		}
		if hasFeatureCommits {
			return domain.FailureHasFeatureCommits(label)
		}
		if hasDeprecations {
			return domain.FailureHasDeprecations(label)
		}
	default:
		logging.Logger.Warn("No content rules for target label", "label", label.Name)
	}
	return nil
}

// AssertCorrectBreakingChangeLabeling requires the breaking change label exactly when at least one
// commit carries a breaking change note
func AssertCorrectBreakingChangeLabeling(commits []domain.Commit, labels []string, breakingChangeLabel config.LabelPattern) *domain.PullRequestFailure {
	hasLabel := breakingChangeLabel.MatchesAny(labels)
	hasCommit := false
	for _, c := range commits {
		if c.HasBreakingChanges() {
			hasCommit = true
			break
		}
	}

	if !hasLabel && hasCommit {
		return domain.FailureMissingBreakingChangeLabel()
	}
	if hasLabel && !hasCommit {
		return domain.FailureMissingBreakingChangeCommit()
	}
	return nil
}
