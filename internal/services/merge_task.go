package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/renato0307/trainmerge/internal/config"
	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/ports"
)

// ReleaseTrainFetcher provides the release-train snapshot of an invocation
type ReleaseTrainFetcher interface {
	FetchActiveReleaseTrains(ctx context.Context) (domain.ActiveReleaseTrains, error)
}

// MergeTaskFlags are the operator switches of a merge invocation
type MergeTaskFlags struct {
	BranchPrompt           bool
	IgnoreNonFatalFailures bool
}

// MergeTask sequences the checks and the strategy of a single merge invocation
type MergeTask struct {
	flags         MergeTaskFlags
	git           ports.GitClient
	githubConfig  *config.GitHubConfig
	prompter      ports.Prompter
	releaseTrains ReleaseTrainFetcher
	resolver      *TargetLabelResolver
	strategy      MergeStrategy
	tokens        ports.TokenInspector
	validator     *PullRequestValidator
}

// MergeTaskDeps are the collaborators of a MergeTask
type MergeTaskDeps struct {
	Git           ports.GitClient
	GitHubConfig  *config.GitHubConfig
	Prompter      ports.Prompter
	ReleaseTrains ReleaseTrainFetcher
	Resolver      *TargetLabelResolver
	Strategy      MergeStrategy
	Tokens        ports.TokenInspector
	Validator     *PullRequestValidator
}

// NewMergeTask creates a new MergeTask
func NewMergeTask(deps MergeTaskDeps, flags MergeTaskFlags) *MergeTask {
	return &MergeTask{
		flags:         flags,
		git:           deps.Git,
		githubConfig:  deps.GitHubConfig,
		prompter:      deps.Prompter,
		releaseTrains: deps.ReleaseTrains,
		resolver:      deps.Resolver,
		strategy:      deps.Strategy,
		tokens:        deps.Tokens,
		validator:     deps.Validator,
	}
}

// Merge merges pull request number into all of its target branches. The returned result is
// always set; the error is only set for fatal problems that are not git command failures.
func (t *MergeTask) Merge(ctx context.Context, number int) (domain.MergeResult, error) {
	logging.Logger.Info("Starting merge", "pr", number, "strategy", t.strategy.Name())

	if failure, err := t.checkOAuthScopes(ctx); err != nil {
		return fatal(err)
	} else if failure != nil {
		return domain.MergeResult{Status: domain.MergeStatusInsufficientPermissions, Failure: failure}, nil
	}

	dirty, err := t.git.HasUncommittedChanges(ctx)
	if err != nil {
		return t.gitOrFatal(err)
	}
	if dirty {
		return domain.MergeResult{Status: domain.MergeStatusDirtyWorkingDir}, nil
	}

	shallow, err := t.git.IsShallow()
	if err != nil {
		return t.gitOrFatal(err)
	}
	if shallow {
		return domain.MergeResult{Status: domain.MergeStatusShallowRepository}, nil
	}

	trains, err := t.releaseTrains.FetchActiveReleaseTrains(ctx)
	if err != nil {
		return fatal(fmt.Errorf("failed to determine release trains: %w", err))
	}

	pr, failure, err := t.validator.LoadAndValidatePullRequest(ctx, number, t.resolver.TargetLabels(trains),
		ValidationOptions{IgnoreNonFatalFailures: t.flags.IgnoreNonFatalFailures})
	if err != nil {
		return fatal(err)
	}
	if failure != nil {
		return domain.MergeResult{Status: domain.MergeStatusFailed, Failure: failure}, nil
	}

	if t.flags.BranchPrompt {
		ok, err := t.prompter.Confirm(fmt.Sprintf("Pull request #%d will merge into: %s. Do you want to proceed?",
			pr.Number, strings.Join(pr.TargetBranches, ", ")), true)
		if err != nil {
			return fatal(err)
		}
		if !ok {
			return domain.MergeResult{Status: domain.MergeStatusUserAborted, PullRequest: pr}, nil
		}
	}

	if pr.HasCaretakerNote {
		ok, err := t.prompter.Confirm(fmt.Sprintf("Pull request #%d has a caretaker note. "+
			"Have you read it and do you want to proceed?", pr.Number), false)
		if err != nil {
			return fatal(err)
		}
		if !ok {
			return domain.MergeResult{Status: domain.MergeStatusUserAborted, PullRequest: pr}, nil
		}
	}

	return t.runStrategy(ctx, pr)
}

func (t *MergeTask) runStrategy(ctx context.Context, pr *domain.PullRequest) (domain.MergeResult, error) {
	previous, err := t.git.CurrentBranchOrRevision(ctx)
	if err != nil {
		return t.gitOrFatal(err)
	}
	defer func() {
		// The caller's context may already be cancelled
		if !t.git.Checkout(context.WithoutCancel(ctx), previous, true) {
			logging.Logger.Warn("Could not restore original revision", "revision", previous)
		}
	}()

	result, err := t.executeStrategy(ctx, pr)
	result.PullRequest = pr
	return result, err
}

func (t *MergeTask) executeStrategy(ctx context.Context, pr *domain.PullRequest) (domain.MergeResult, error) {
	if err := t.strategy.Prepare(ctx, pr); err != nil {
		return t.gitOrFatal(err)
	}

	failure, err := t.strategy.Merge(ctx, pr)
	if err != nil {
		return t.gitOrFatal(err)
	}
	if failure != nil {
		return domain.MergeResult{Status: domain.MergeStatusFailed, Failure: failure}, nil
	}

	if err := t.strategy.Cleanup(ctx, pr); err != nil {
		return t.gitOrFatal(err)
	}

	logging.Logger.Info("Merge succeeded", "pr", pr.Number, "targets", pr.TargetBranches)
	return domain.MergeResult{Status: domain.MergeStatusSuccess}, nil
}

// checkOAuthScopes requires "repo" (or "public_repo" for public repositories) and "workflow"
func (t *MergeTask) checkOAuthScopes(ctx context.Context) (*domain.PullRequestFailure, error) {
	scopes, err := t.tokens.OAuthScopes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read token scopes: %w", err)
	}

	var missing []string
	if !slices.Contains(scopes, "repo") {
		if t.githubConfig.Private {
			missing = append(missing, "repo")
		} else if !slices.Contains(scopes, "public_repo") {
			missing = append(missing, "public_repo")
		}
	}
	if !slices.Contains(scopes, "workflow") {
		missing = append(missing, "workflow")
	}
	if len(missing) == 0 {
		return nil, nil
	}

	logging.Logger.Warn("Token is missing scopes", "missing", missing, "scopes", scopes)
	return domain.FailureInsufficientPermissions(fmt.Sprintf(
		"The GitHub token is missing the required scope(s): %s. Update the token and try again.",
		strings.Join(missing, ", "))), nil
}

// gitOrFatal translates git command failures and operator aborts into results
func (t *MergeTask) gitOrFatal(err error) (domain.MergeResult, error) {
	var gitErr *domain.GitCommandError
	switch {
	case errors.As(err, &gitErr):
		logging.Logger.Error("Git command failed", "error", err)
		return domain.MergeResult{Status: domain.MergeStatusUnknownGitError, Err: err}, nil
	case errors.Is(err, domain.ErrUserAborted):
		return domain.MergeResult{Status: domain.MergeStatusUserAborted}, nil
	}
	return fatal(err)
}

func fatal(err error) (domain.MergeResult, error) {
	logging.Logger.Error("Merge failed", "error", err)
	return domain.MergeResult{Status: domain.MergeStatusFailed, Err: err}, err
}
