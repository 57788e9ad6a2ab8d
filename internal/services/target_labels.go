package services

import (
	"context"
	"fmt"

	"github.com/renato0307/trainmerge/internal/domain"
)

// LTSAsserter checks that a branch is an active long-term support line
type LTSAsserter interface {
	AssertActiveLTSBranch(ctx context.Context, trains domain.ActiveReleaseTrains, branch string) error
}

// TargetLabelResolver maps the target label taxonomy to branches for a release-train snapshot
type TargetLabelResolver struct {
	lts LTSAsserter
}

// NewTargetLabelResolver creates a new TargetLabelResolver
func NewTargetLabelResolver(lts LTSAsserter) *TargetLabelResolver {
	return &TargetLabelResolver{
		lts: lts,
	}
}

// TargetLabels returns the full label taxonomy bound to the given trains
func (r *TargetLabelResolver) TargetLabels(trains domain.ActiveReleaseTrains) []domain.TargetLabel {
	next := trains.Next
	latest := trains.Latest
	rc := trains.ReleaseCandidate

	return []domain.TargetLabel{
		{
			Kind: domain.TargetMajor,
			Name: domain.LabelTargetMajor,
			Branches: func(_ context.Context, _ string) ([]string, error) {
				if !next.IsMajor {
					return nil, &domain.InvalidTargetLabelError{Message: fmt.Sprintf(
						"Unable to merge pull request. The %q branch will be released as a minor version.",
						next.BranchName)}
				}
				return []string{next.BranchName}, nil
			},
		},
		{
			Kind: domain.TargetMinor,
			Name: domain.LabelTargetMinor,
			Branches: func(_ context.Context, _ string) ([]string, error) {
				return []string{next.BranchName}, nil
			},
		},
		{
			Kind: domain.TargetPatch,
			Name: domain.LabelTargetPatch,
			Branches: func(_ context.Context, githubTargetBranch string) ([]string, error) {
				if githubTargetBranch == latest.BranchName {
					return []string{latest.BranchName}, nil
				}
				branches := []string{next.BranchName, latest.BranchName}
				if rc != nil {
					branches = append(branches, rc.BranchName)
				}
				return branches, nil
			},
		},
		{
			Kind: domain.TargetReleaseCandidate,
			Name: domain.LabelTargetReleaseCandidate,
			Branches: func(_ context.Context, githubTargetBranch string) ([]string, error) {
				if rc == nil {
					return nil, &domain.InvalidTargetLabelError{Message: fmt.Sprintf(
						"No active feature-freeze/release-candidate branch. "+
							"Unable to merge pull request using %q label.", domain.LabelTargetReleaseCandidate)}
				}
				if githubTargetBranch == rc.BranchName {
					return []string{rc.BranchName}, nil
				}
				return []string{next.BranchName, rc.BranchName}, nil
			},
		},
		{
			Kind: domain.TargetLongTermSupport,
			Name: domain.LabelTargetLongTermSupport,
			Branches: func(ctx context.Context, githubTargetBranch string) ([]string, error) {
				if !domain.IsVersionBranch(githubTargetBranch) {
					return nil, &domain.InvalidTargetBranchError{Message: fmt.Sprintf(
						"PR cannot be merged as it does not target a long-term support branch: %q",
						githubTargetBranch)}
				}
				if githubTargetBranch == latest.BranchName {
					return nil, &domain.InvalidTargetBranchError{Message: fmt.Sprintf(
						"PR cannot be merged with %q into patch branch. "+
							"Consider changing the label to %q if this is intentional.",
						domain.LabelTargetLongTermSupport, domain.LabelTargetPatch)}
				}
				if trains.IsReleaseCandidateBranch(githubTargetBranch) {
					return nil, &domain.InvalidTargetBranchError{Message: fmt.Sprintf(
						"PR cannot be merged with %q into feature-freeze/release-candidate branch. "+
							"Consider changing the label to %q if this is intentional.",
						domain.LabelTargetLongTermSupport, domain.LabelTargetReleaseCandidate)}
				}
				if err := r.lts.AssertActiveLTSBranch(ctx, trains, githubTargetBranch); err != nil {
					return nil, err
				}
				return []string{githubTargetBranch}, nil
			},
		},
	}
}

// GetMatchingTargetLabelForPullRequest returns the single target label found in labels
func GetMatchingTargetLabelForPullRequest(labels []string, allLabels []domain.TargetLabel) (domain.TargetLabel, error) {
	var matches []domain.TargetLabel
	for _, label := range labels {
		for _, candidate := range allLabels {
			if candidate.Name == label {
				matches = append(matches, candidate)
				break
			}
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return domain.TargetLabel{}, &domain.InvalidTargetLabelError{
			Err:     domain.ErrNoTargetLabel,
			Message: "Unable to determine target for the PR as it has no target label.",
		}
	default:
		return domain.TargetLabel{}, &domain.InvalidTargetLabelError{
			Err:     domain.ErrMultipleTargetLabels,
			Message: "Unable to determine target for the PR as it has multiple target labels.",
		}
	}
}

// GetBranchesFromTargetLabel resolves the branches of label, propagating resolver errors unchanged
func GetBranchesFromTargetLabel(ctx context.Context, label domain.TargetLabel, githubTargetBranch string) ([]string, error) {
	return label.Branches(ctx, githubTargetBranch)
}
