package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/renato0307/trainmerge/internal/config"
	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/ports"
)

// MergeStrategy merges a validated pull request into all of its target branches.
// Implementations are apiMergeStrategy and autosquashMergeStrategy.
type MergeStrategy interface {
	// Name returns the configuration name of the strategy
	Name() string
	// Prepare fetches the target branches and the pull request head
	Prepare(ctx context.Context, pr *domain.PullRequest) error
	// Merge returns a failure for anticipated problems and an error for fatal ones
	Merge(ctx context.Context, pr *domain.PullRequest) (*domain.PullRequestFailure, error)
	// Cleanup removes the local branches created by Prepare and Merge
	Cleanup(ctx context.Context, pr *domain.PullRequest) error
}

// StrategyDeps are the collaborators shared by both strategies
type StrategyDeps struct {
	Config   *config.Config
	Git      ports.GitClient
	GitHub   ports.PullRequestMutator
	Prompter ports.Prompter
}

// NewMergeStrategy builds the strategy selected by merge.strategy
func NewMergeStrategy(deps StrategyDeps) (MergeStrategy, error) {
	base := baseStrategy{
		cherryPick: NewCherryPickEngine(deps.Git),
		git:        deps.Git,
	}

	switch deps.Config.Merge.Strategy {
	case config.StrategyAPIMerge:
		return &apiMergeStrategy{
			baseStrategy: base,
			cfg:          &deps.Config.Merge.API,
			github:       deps.GitHub,
			prompter:     deps.Prompter,
		}, nil
	case config.StrategyAutosquashMerge:
		return &autosquashMergeStrategy{
			baseStrategy: base,
			github:       deps.GitHub,
			mainBranch:   deps.Config.GitHub.MainBranch,
		}, nil
	default:
		return nil, fmt.Errorf("unknown merge strategy %q", deps.Config.Merge.Strategy)
	}
}

// baseStrategy holds the git plumbing common to both strategies
type baseStrategy struct {
	cherryPick *CherryPickEngine
	git        ports.GitClient
}

func (s *baseStrategy) Prepare(ctx context.Context, pr *domain.PullRequest) error {
	prHead := fmt.Sprintf("refs/pull/%d/head:refs/heads/%s", pr.Number, PullRequestHeadBranch)
	if err := s.cherryPick.FetchTargetBranches(ctx, pr.TargetBranches, prHead); err != nil {
		return fmt.Errorf("failed to fetch target branches: %w", err)
	}
	return nil
}

func (s *baseStrategy) Cleanup(ctx context.Context, pr *domain.PullRequest) error {
	s.cherryPick.DeleteLocalTargetBranches(ctx, pr.TargetBranches, PullRequestHeadBranch)
	return nil
}

// pullRequestBaseRevision is the revision the pull request commits are based on
func pullRequestBaseRevision(pr *domain.PullRequest) string {
	return fmt.Sprintf("%s~%d", PullRequestHeadBranch, pr.CommitCount)
}

// checkRequiredBase returns a failure when the configured base commit is not in the pull request
func (s *baseStrategy) checkRequiredBase(ctx context.Context, pr *domain.PullRequest) (*domain.PullRequestFailure, error) {
	if pr.RequiredBaseSHA == "" {
		return nil, nil
	}
	ok, err := s.git.HasCommit(ctx, PullRequestHeadBranch, pr.RequiredBaseSHA)
	if err != nil {
		return nil, err
	}
	if !ok {
		return domain.FailureUnsatisfiedBaseSHA(), nil
	}
	return nil, nil
}

func (s *baseStrategy) revParse(ctx context.Context, revision string) (string, error) {
	out, err := s.git.Run(ctx, []string{"rev-parse", revision})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
