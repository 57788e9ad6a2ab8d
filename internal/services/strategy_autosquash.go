package services

import (
	"context"
	"fmt"

	"github.com/renato0307/trainmerge/internal/config"
	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/ports"
)

// autosquashMergeStrategy squashes fixup commits locally and cherry-picks the pull request into
// every target branch, including the UI-selected base
type autosquashMergeStrategy struct {
	baseStrategy
	github     ports.PullRequestMutator
	mainBranch string
}

var _ MergeStrategy = (*autosquashMergeStrategy)(nil)

func (s *autosquashMergeStrategy) Name() string {
	return config.StrategyAutosquashMerge
}

func (s *autosquashMergeStrategy) Merge(ctx context.Context, pr *domain.PullRequest) (*domain.PullRequestFailure, error) {
	if failure, err := s.checkRequiredBase(ctx, pr); failure != nil || err != nil {
		return failure, err
	}

	baseSHA, err := s.revParse(ctx, pullRequestBaseRevision(pr))
	if err != nil {
		return nil, err
	}
	revisionRange := baseSHA + ".." + PullRequestHeadBranch

	beforeRebase, err := s.git.CurrentBranchOrRevision(ctx)
	if err != nil {
		return nil, err
	}

	var rebaseEnv []string
	if !pr.NeedsCommitMessageFixup {
		rebaseEnv = []string{"GIT_SEQUENCE_EDITOR=true"}
	}
	rebaseArgs := []string{"rebase", "--interactive", "--autosquash", baseSHA, PullRequestHeadBranch}
	if err := s.git.RunInteractive(ctx, rebaseArgs, rebaseEnv); err != nil {
		return nil, err
	}
	if _, err := s.git.Run(ctx, []string{"checkout", "-q", "-f", beforeRebase}); err != nil {
		return nil, err
	}

	if _, err := s.git.RewriteCommitMessages(ctx, baseSHA, PullRequestHeadBranch, AppendPullRequestClose(pr.Number)); err != nil {
		return nil, fmt.Errorf("failed to add pull request reference to commits: %w", err)
	}

	failed, err := s.cherryPick.CherryPickIntoTargetBranches(ctx, revisionRange, pr.TargetBranches, CherryPickOptions{})
	if err != nil {
		return nil, err
	}
	if len(failed) > 0 {
		return domain.FailureMergeConflicts(failed), nil
	}

	if err := s.cherryPick.PushTargetBranchesUpstream(ctx, pr.TargetBranches); err != nil {
		return nil, err
	}

	mergedInto := pr.GitHubTargetBranch
	if !pr.TargetsBranch(mergedInto) {
		mergedInto = pr.TargetBranches[0]
	}
	sha, err := s.revParse(ctx, LocalTargetBranch(mergedInto))
	if err != nil {
		return nil, err
	}
	if err := s.github.CreateComment(ctx, pr.Number,
		fmt.Sprintf("This PR was merged into the repository by commit %s.", sha)); err != nil {
		return nil, fmt.Errorf("failed to comment on pull request #%d: %w", pr.Number, err)
	}

	// Pushes only close pull requests automatically on the default branch
	if pr.GitHubTargetBranch != s.mainBranch {
		if err := s.github.UpdatePullRequestState(ctx, pr.Number, domain.PullRequestClosed); err != nil {
			return nil, fmt.Errorf("failed to close pull request #%d: %w", pr.Number, err)
		}
	}

	logging.Logger.Info("Pull request merged", "pr", pr.Number, "sha", sha, "targets", pr.TargetBranches)
	return nil, nil
}
