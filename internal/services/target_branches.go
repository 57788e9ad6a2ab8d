package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/ports"
)

const maxConcurrentLookups = 4

// BranchHead is an upstream branch and its current head commit
type BranchHead struct {
	Name string
	SHA  string
}

// TargetBranchReport describes where a pull request would be merged
type TargetBranchReport struct {
	Branches []BranchHead
	Failure  string // Set when the target cannot be resolved
	Label    string
	Number   int
	Title    string
}

// PendingPullRequest is an open pull request waiting for a merge
type PendingPullRequest struct {
	CIState domain.CIState
	Label   string // Empty when the pull request has no single target label
	Number  int
	Title   string
	URL     string
}

// TargetBranchService answers read-only questions about target branches
type TargetBranchService struct {
	querier       ports.PullRequestQuerier
	releaseTrains ReleaseTrainFetcher
	repo          ports.RepositoryReader
	resolver      *TargetLabelResolver
}

// NewTargetBranchService creates a new TargetBranchService
func NewTargetBranchService(
	querier ports.PullRequestQuerier,
	repo ports.RepositoryReader,
	releaseTrains ReleaseTrainFetcher,
	resolver *TargetLabelResolver,
) *TargetBranchService {
	return &TargetBranchService{
		querier:       querier,
		releaseTrains: releaseTrains,
		repo:          repo,
		resolver:      resolver,
	}
}

// CheckTargetBranches resolves the target label and branches of each pull request without the
// validation gates of a merge. Reports are returned in the order of numbers.
func (s *TargetBranchService) CheckTargetBranches(ctx context.Context, numbers []int) ([]TargetBranchReport, error) {
	trains, err := s.releaseTrains.FetchActiveReleaseTrains(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to determine release trains: %w", err)
	}
	labels := s.resolver.TargetLabels(trains)

	reports := make([]TargetBranchReport, len(numbers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, number := range numbers {
		g.Go(func() error {
			report, err := s.checkOne(gctx, number, labels)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *TargetBranchService) checkOne(ctx context.Context, number int, labels []domain.TargetLabel) (TargetBranchReport, error) {
	report := TargetBranchReport{Number: number}

	raw, err := s.querier.FetchPullRequest(ctx, number)
	if err != nil {
		if errors.Is(err, domain.ErrPullRequestNotFound) {
			report.Failure = domain.FailureNotFound().Message
			return report, nil
		}
		return report, fmt.Errorf("failed to fetch pull request #%d: %w", number, err)
	}
	report.Title = raw.Title

	label, err := GetMatchingTargetLabelForPullRequest(raw.Labels, labels)
	if err != nil {
		failure, err := targetFailure(err)
		if err != nil {
			return report, err
		}
		report.Failure = failure.Message
		return report, nil
	}
	report.Label = label.Name

	branches, err := GetBranchesFromTargetLabel(ctx, label, raw.BaseBranch)
	if err != nil {
		failure, err := targetFailure(err)
		if err != nil {
			return report, err
		}
		report.Failure = failure.Message
		return report, nil
	}

	for _, branch := range branches {
		sha, err := s.repo.GetBranchHead(ctx, branch)
		if err != nil {
			return report, fmt.Errorf("failed to get head of %s: %w", branch, err)
		}
		report.Branches = append(report.Branches, BranchHead{Name: branch, SHA: sha})
	}

	logging.Logger.Debug("Resolved target branches", "pr", number, "label", label.Name, "branches", branches)
	return report, nil
}

// ListPending lists the open, non-draft pull requests targeting base
func (s *TargetBranchService) ListPending(ctx context.Context, base string) ([]PendingPullRequest, error) {
	raws, err := s.querier.ListPendingPullRequests(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending pull requests: %w", err)
	}

	// Only the label names are used, the branches are never resolved
	labels := s.resolver.TargetLabels(domain.ActiveReleaseTrains{})

	pending := make([]PendingPullRequest, 0, len(raws))
	for _, raw := range raws {
		p := PendingPullRequest{
			CIState: raw.LatestCIState(),
			Number:  raw.Number,
			Title:   raw.Title,
			URL:     raw.URL,
		}
		if label, err := GetMatchingTargetLabelForPullRequest(raw.Labels, labels); err == nil {
			p.Label = label.Name
		}
		pending = append(pending, p)
	}
	return pending, nil
}
