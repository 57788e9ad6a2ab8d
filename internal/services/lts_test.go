package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/trainmerge/internal/domain"
	portsmocks "github.com/renato0307/trainmerge/internal/ports/mocks"
)

func newTestLTSChecker(repo *portsmocks.MockRepositoryReader, now time.Time) *LTSChecker {
	checker := NewLTSChecker(repo, 18)
	checker.now = func() time.Time { return now }
	return checker
}

func TestAssertActiveLTSBranch(t *testing.T) {
	released := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	branches := []string{"main", "8.1.x", "8.2.x", "9.0.x", "9.1.x", "10.0.x"}

	t.Run("active", func(t *testing.T) {
		repo := portsmocks.NewMockRepositoryReader(t)
		repo.EXPECT().ListBranches(mock.Anything).Return(branches, nil)
		repo.EXPECT().GetReleasePublishDate(mock.Anything, "v9.0.0").Return(released, nil)

		checker := newTestLTSChecker(repo, released.AddDate(1, 0, 0))
		err := checker.AssertActiveLTSBranch(t.Context(), trainsWithRC(), "9.1.x")

		assert.NoError(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		repo := portsmocks.NewMockRepositoryReader(t)
		repo.EXPECT().ListBranches(mock.Anything).Return(branches, nil)
		repo.EXPECT().GetReleasePublishDate(mock.Anything, "v9.0.0").Return(released, nil)

		checker := newTestLTSChecker(repo, released.AddDate(2, 0, 0))
		err := checker.AssertActiveLTSBranch(t.Context(), trainsWithRC(), "9.1.x")

		var branchErr *domain.InvalidTargetBranchError
		require.ErrorAs(t, err, &branchErr)
		assert.Equal(t, "Long-term support ended for v9 on September 1, 2025.", branchErr.Message)
	})

	t.Run("not last minor", func(t *testing.T) {
		repo := portsmocks.NewMockRepositoryReader(t)
		repo.EXPECT().ListBranches(mock.Anything).Return(branches, nil)

		checker := newTestLTSChecker(repo, released)
		err := checker.AssertActiveLTSBranch(t.Context(), trainsWithRC(), "8.1.x")

		var branchErr *domain.InvalidTargetBranchError
		require.ErrorAs(t, err, &branchErr)
		assert.Contains(t, branchErr.Message, "PR should be updated to target: 8.2.x")
	})

	t.Run("major not older than latest", func(t *testing.T) {
		repo := portsmocks.NewMockRepositoryReader(t)

		checker := newTestLTSChecker(repo, released)
		err := checker.AssertActiveLTSBranch(t.Context(), trainsWithRC(), "10.0.x")

		var branchErr *domain.InvalidTargetBranchError
		require.ErrorAs(t, err, &branchErr)
	})

	t.Run("missing release", func(t *testing.T) {
		repo := portsmocks.NewMockRepositoryReader(t)
		repo.EXPECT().ListBranches(mock.Anything).Return(branches, nil)
		repo.EXPECT().GetReleasePublishDate(mock.Anything, "v9.0.0").Return(time.Time{}, errors.New("404 Not Found"))

		checker := newTestLTSChecker(repo, released)
		err := checker.AssertActiveLTSBranch(t.Context(), trainsWithRC(), "9.1.x")

		var branchErr *domain.InvalidTargetBranchError
		require.ErrorAs(t, err, &branchErr)
		assert.Contains(t, branchErr.Message, "v9.0.0")
	})

	t.Run("list branches error is fatal", func(t *testing.T) {
		repo := portsmocks.NewMockRepositoryReader(t)
		repo.EXPECT().ListBranches(mock.Anything).Return(nil, errors.New("boom"))

		checker := newTestLTSChecker(repo, released)
		err := checker.AssertActiveLTSBranch(t.Context(), trainsWithRC(), "9.1.x")

		require.Error(t, err)
		var branchErr *domain.InvalidTargetBranchError
		assert.False(t, errors.As(err, &branchErr))
	})
}
