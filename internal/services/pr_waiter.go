package services

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/ports"
)

// DefaultWaitInterval is the polling interval of PullRequestWaiter
const DefaultWaitInterval = 30 * time.Second

// PullRequestWaiter polls a pull request until it is merged or closed
type PullRequestWaiter struct {
	interval time.Duration
	querier  ports.PullRequestQuerier
}

// NewPullRequestWaiter creates a new PullRequestWaiter
func NewPullRequestWaiter(querier ports.PullRequestQuerier, interval time.Duration) *PullRequestWaiter {
	if interval <= 0 {
		interval = DefaultWaitInterval
	}
	return &PullRequestWaiter{
		interval: interval,
		querier:  querier,
	}
}

// Wait blocks until the pull request reaches a terminal state or ctx is done.
// onPoll, if set, is called with every fetched snapshot.
func (w *PullRequestWaiter) Wait(ctx context.Context, number int, onPoll func(*domain.RawPullRequest)) (domain.PullRequestState, error) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		pr, err := w.querier.FetchPullRequest(ctx, number)
		if err != nil {
			return "", fmt.Errorf("failed to fetch pull request #%d: %w", number, err)
		}
		if onPoll != nil {
			onPoll(pr)
		}
		logging.Logger.Debug("Polled pull request", "pr", number, "state", pr.State, "ci", pr.LatestCIState())

		if pr.State.IsTerminal() {
			return pr.State, nil
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}
