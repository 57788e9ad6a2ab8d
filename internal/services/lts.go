package services

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/ports"
)

// LTSChecker decides whether a version branch is an active long-term support line
type LTSChecker struct {
	durationMonths int
	now            func() time.Time
	repo           ports.RepositoryReader
}

// NewLTSChecker creates a new LTSChecker
func NewLTSChecker(repo ports.RepositoryReader, durationMonths int) *LTSChecker {
	return &LTSChecker{
		durationMonths: durationMonths,
		now:            time.Now,
		repo:           repo,
	}
}

// AssertActiveLTSBranch fails with *domain.InvalidTargetBranchError when branch is not the
// last-minor branch of an older major whose LTS window is still open
func (c *LTSChecker) AssertActiveLTSBranch(ctx context.Context, trains domain.ActiveReleaseTrains, branch string) error {
	major, minor, err := domain.ParseVersionBranch(branch)
	if err != nil {
		return &domain.InvalidTargetBranchError{Message: fmt.Sprintf(
			"Branch %q is not a version branch.", branch)}
	}

	latestMajor, _, err := domain.ParseVersionBranch(trains.Latest.BranchName)
	if err == nil && major >= latestMajor {
		return &domain.InvalidTargetBranchError{Message: fmt.Sprintf(
			"Branch %q is not a long-term support branch: v%d is not older than the latest release train.",
			branch, major)}
	}

	lastMinor, err := c.lastMinorOfMajor(ctx, major)
	if err != nil {
		return err
	}
	if lastMinor < 0 {
		return &domain.InvalidTargetBranchError{Message: fmt.Sprintf(
			"Branch %q does not exist upstream.", branch)}
	}
	if lastMinor != minor {
		return &domain.InvalidTargetBranchError{Message: fmt.Sprintf(
			"Not using last-minor branch for v%d LTS version. PR should be updated to target: %d.%d.x",
			major, major, lastMinor)}
	}

	tag := fmt.Sprintf("v%d.0.0", major)
	releasedAt, err := c.repo.GetReleasePublishDate(ctx, tag)
	if err != nil {
		logging.Logger.Warn("Could not determine major release date", "tag", tag, "error", err)
		return &domain.InvalidTargetBranchError{Message: fmt.Sprintf(
			"No published release %s found to determine the long-term support window of v%d.", tag, major)}
	}

	ltsEnd := releasedAt.AddDate(0, c.durationMonths, 0)
	if c.now().After(ltsEnd) {
		return &domain.InvalidTargetBranchError{Message: fmt.Sprintf(
			"Long-term support ended for v%d on %s.", major, ltsEnd.Format("January 2, 2006"))}
	}

	logging.Logger.Debug("Active LTS branch", "branch", branch, "lts_end", ltsEnd)
	return nil
}

func (c *LTSChecker) lastMinorOfMajor(ctx context.Context, major int) (int, error) {
	names, err := c.repo.ListBranches(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list branches: %w", err)
	}

	lastMinor := -1
	for _, name := range names {
		m, minor, err := domain.ParseVersionBranch(name)
		if err != nil || m != major {
			continue
		}
		if minor > lastMinor {
			lastMinor = minor
		}
	}
	return lastMinor, nil
}
