package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/trainmerge/internal/domain"
	portsmocks "github.com/renato0307/trainmerge/internal/ports/mocks"
)

func TestCheckTargetBranches(t *testing.T) {
	querier := portsmocks.NewMockPullRequestQuerier(t)
	repo := portsmocks.NewMockRepositoryReader(t)

	patch := newRawPullRequest(1, domain.LabelTargetPatch)
	unlabeled := newRawPullRequest(2)
	unlabeled.Title = "docs: typo"
	querier.EXPECT().FetchPullRequest(mock.Anything, 1).Return(patch, nil)
	querier.EXPECT().FetchPullRequest(mock.Anything, 2).Return(unlabeled, nil)
	querier.EXPECT().FetchPullRequest(mock.Anything, 3).Return(nil, domain.ErrPullRequestNotFound)
	repo.EXPECT().GetBranchHead(mock.Anything, "main").Return("aaa", nil)
	repo.EXPECT().GetBranchHead(mock.Anything, "10.0.x").Return("bbb", nil)
	repo.EXPECT().GetBranchHead(mock.Anything, "10.1.x").Return("ccc", nil)

	svc := NewTargetBranchService(querier, repo, staticTrains{trains: trainsWithRC()}, NewTargetLabelResolver(&fakeLTS{}))
	reports, err := svc.CheckTargetBranches(t.Context(), []int{1, 2, 3})

	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, TargetBranchReport{
		Branches: []BranchHead{{Name: "main", SHA: "aaa"}, {Name: "10.0.x", SHA: "bbb"}, {Name: "10.1.x", SHA: "ccc"}},
		Label:    domain.LabelTargetPatch,
		Number:   1,
		Title:    patch.Title,
	}, reports[0])
	assert.Equal(t, TargetBranchReport{
		Failure: "Unable to determine target for the PR as it has no target label.",
		Number:  2,
		Title:   "docs: typo",
	}, reports[1])
	assert.Equal(t, domain.FailureNotFound().Message, reports[2].Failure)
}

func TestCheckTargetBranches_FatalError(t *testing.T) {
	querier := portsmocks.NewMockPullRequestQuerier(t)
	querier.EXPECT().FetchPullRequest(mock.Anything, 1).Return(nil, errors.New("bad gateway"))

	svc := NewTargetBranchService(querier, portsmocks.NewMockRepositoryReader(t),
		staticTrains{trains: trainsWithRC()}, NewTargetLabelResolver(&fakeLTS{}))
	_, err := svc.CheckTargetBranches(t.Context(), []int{1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad gateway")
}

func TestListPending(t *testing.T) {
	querier := portsmocks.NewMockPullRequestQuerier(t)
	labeled := newRawPullRequest(4, domain.LabelTargetMinor)
	labeled.Commits[0].CIState = domain.CIStatePending
	conflicting := newRawPullRequest(5, domain.LabelTargetMinor, domain.LabelTargetPatch)
	querier.EXPECT().ListPendingPullRequests(mock.Anything, "main").
		Return([]domain.RawPullRequest{*labeled, *conflicting}, nil)

	svc := NewTargetBranchService(querier, nil, staticTrains{}, NewTargetLabelResolver(&fakeLTS{}))
	pending, err := svc.ListPending(t.Context(), "main")

	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, domain.LabelTargetMinor, pending[0].Label)
	assert.Equal(t, domain.CIStatePending, pending[0].CIState)
	assert.Empty(t, pending[1].Label)
	assert.Equal(t, 5, pending[1].Number)
}
