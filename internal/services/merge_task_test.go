package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/trainmerge/internal/config"
	"github.com/renato0307/trainmerge/internal/domain"
	portsmocks "github.com/renato0307/trainmerge/internal/ports/mocks"
)

type staticTrains struct {
	trains domain.ActiveReleaseTrains
	err    error
}

func (s staticTrains) FetchActiveReleaseTrains(context.Context) (domain.ActiveReleaseTrains, error) {
	return s.trains, s.err
}

// fakeStrategy records the phases it went through
type fakeStrategy struct {
	calls      []string
	cleanupErr error
	failure    *domain.PullRequestFailure
	mergeErr   error
	prepareErr error
}

func (s *fakeStrategy) Name() string { return "fake" }

func (s *fakeStrategy) Prepare(context.Context, *domain.PullRequest) error {
	s.calls = append(s.calls, "prepare")
	return s.prepareErr
}

func (s *fakeStrategy) Merge(context.Context, *domain.PullRequest) (*domain.PullRequestFailure, error) {
	s.calls = append(s.calls, "merge")
	return s.failure, s.mergeErr
}

func (s *fakeStrategy) Cleanup(context.Context, *domain.PullRequest) error {
	s.calls = append(s.calls, "cleanup")
	return s.cleanupErr
}

type mergeTaskFixture struct {
	git      *portsmocks.MockGitClient
	prompter *portsmocks.MockPrompter
	querier  *portsmocks.MockPullRequestQuerier
	strategy *fakeStrategy
	tokens   *portsmocks.MockTokenInspector
}

func newMergeTaskFixture(t *testing.T) *mergeTaskFixture {
	return &mergeTaskFixture{
		git:      portsmocks.NewMockGitClient(t),
		prompter: portsmocks.NewMockPrompter(t),
		querier:  portsmocks.NewMockPullRequestQuerier(t),
		strategy: &fakeStrategy{},
		tokens:   portsmocks.NewMockTokenInspector(t),
	}
}

func (f *mergeTaskFixture) task(flags MergeTaskFlags) *MergeTask {
	cfg := config.DefaultConfig()
	return NewMergeTask(MergeTaskDeps{
		Git:           f.git,
		GitHubConfig:  &cfg.GitHub,
		Prompter:      f.prompter,
		ReleaseTrains: staticTrains{trains: trainsWithRC()},
		Resolver:      NewTargetLabelResolver(&fakeLTS{}),
		Strategy:      f.strategy,
		Tokens:        f.tokens,
		Validator:     NewPullRequestValidator(&cfg.Merge, f.querier),
	}, flags)
}

// expectPreconditions sets up a token with every scope and a clean, complete clone
func (f *mergeTaskFixture) expectPreconditions() {
	f.tokens.EXPECT().OAuthScopes(mock.Anything).Return([]string{"repo", "workflow"}, nil)
	f.git.EXPECT().HasUncommittedChanges(mock.Anything).Return(false, nil)
	f.git.EXPECT().IsShallow().Return(false, nil)
}

func (f *mergeTaskFixture) expectRestore() {
	f.git.EXPECT().CurrentBranchOrRevision(mock.Anything).Return("my-feature", nil)
	f.git.EXPECT().Checkout(mock.Anything, "my-feature", true).Return(true)
}

func TestMerge_Success(t *testing.T) {
	f := newMergeTaskFixture(t)
	f.expectPreconditions()
	f.querier.EXPECT().FetchPullRequest(mock.Anything, 7).Return(newRawPullRequest(7, domain.LabelTargetPatch), nil)
	f.prompter.EXPECT().Confirm("Pull request #7 will merge into: main, 10.0.x, 10.1.x. Do you want to proceed?", true).
		Return(true, nil)
	f.expectRestore()

	result, err := f.task(MergeTaskFlags{BranchPrompt: true}).Merge(t.Context(), 7)

	require.NoError(t, err)
	assert.Equal(t, domain.MergeStatusSuccess, result.Status)
	assert.Equal(t, 0, result.ExitCode())
	require.NotNil(t, result.PullRequest)
	assert.Equal(t, []string{"main", "10.0.x", "10.1.x"}, result.PullRequest.TargetBranches)
	assert.Equal(t, []string{"prepare", "merge", "cleanup"}, f.strategy.calls)
}

func TestMerge_BreakingChangeHasNoGitMutation(t *testing.T) {
	for _, label := range []string{domain.LabelTargetMinor, domain.LabelTargetPatch} {
		t.Run(label, func(t *testing.T) {
			f := newMergeTaskFixture(t)
			f.expectPreconditions()
			raw := newRawPullRequest(123, label, "flag: breaking change")
			raw.Commits[0].Message = "feat(core): drop legacy api\n\nBREAKING CHANGE: legacy api removed"
			f.querier.EXPECT().FetchPullRequest(mock.Anything, 123).Return(raw, nil)

			result, err := f.task(MergeTaskFlags{BranchPrompt: true}).Merge(t.Context(), 123)

			require.NoError(t, err)
			assert.Equal(t, domain.MergeStatusFailed, result.Status)
			require.NotNil(t, result.Failure)
			assert.Contains(t, result.Failure.Message, "breaking changes")
			assert.Contains(t, result.Failure.Message, label)
			assert.Empty(t, f.strategy.calls)
			f.git.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
			f.git.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestMerge_DraftFailsBeforeFetchingBranches(t *testing.T) {
	f := newMergeTaskFixture(t)
	f.expectPreconditions()
	raw := newRawPullRequest(7, domain.LabelTargetPatch)
	raw.IsDraft = true
	f.querier.EXPECT().FetchPullRequest(mock.Anything, 7).Return(raw, nil)

	result, err := f.task(MergeTaskFlags{}).Merge(t.Context(), 7)

	require.NoError(t, err)
	assert.Equal(t, domain.MergeStatusFailed, result.Status)
	assert.Equal(t, domain.FailureIsDraft(), result.Failure)
	assert.Empty(t, f.strategy.calls)
	assert.Equal(t, 1, result.ExitCode())
}

func TestMerge_Preconditions(t *testing.T) {
	t.Run("missing scopes", func(t *testing.T) {
		f := newMergeTaskFixture(t)
		f.tokens.EXPECT().OAuthScopes(mock.Anything).Return([]string{"read:org"}, nil)

		result, err := f.task(MergeTaskFlags{}).Merge(t.Context(), 7)

		require.NoError(t, err)
		assert.Equal(t, domain.MergeStatusInsufficientPermissions, result.Status)
		require.NotNil(t, result.Failure)
		assert.Contains(t, result.Failure.Message, "public_repo, workflow")
	})

	t.Run("dirty working directory", func(t *testing.T) {
		f := newMergeTaskFixture(t)
		f.tokens.EXPECT().OAuthScopes(mock.Anything).Return([]string{"public_repo", "workflow"}, nil)
		f.git.EXPECT().HasUncommittedChanges(mock.Anything).Return(true, nil)

		result, err := f.task(MergeTaskFlags{}).Merge(t.Context(), 7)

		require.NoError(t, err)
		assert.Equal(t, domain.MergeStatusDirtyWorkingDir, result.Status)
	})

	t.Run("shallow repository", func(t *testing.T) {
		f := newMergeTaskFixture(t)
		f.tokens.EXPECT().OAuthScopes(mock.Anything).Return([]string{"repo", "workflow"}, nil)
		f.git.EXPECT().HasUncommittedChanges(mock.Anything).Return(false, nil)
		f.git.EXPECT().IsShallow().Return(true, nil)

		result, err := f.task(MergeTaskFlags{}).Merge(t.Context(), 7)

		require.NoError(t, err)
		assert.Equal(t, domain.MergeStatusShallowRepository, result.Status)
	})

	t.Run("token inspection error is fatal", func(t *testing.T) {
		f := newMergeTaskFixture(t)
		f.tokens.EXPECT().OAuthScopes(mock.Anything).Return(nil, errors.New("401 Bad credentials"))

		result, err := f.task(MergeTaskFlags{}).Merge(t.Context(), 7)

		require.Error(t, err)
		assert.Equal(t, domain.MergeStatusFailed, result.Status)
		assert.Equal(t, err, result.Err)
	})
}

func TestMerge_OperatorDeclines(t *testing.T) {
	t.Run("target branches", func(t *testing.T) {
		f := newMergeTaskFixture(t)
		f.expectPreconditions()
		f.querier.EXPECT().FetchPullRequest(mock.Anything, 7).Return(newRawPullRequest(7, domain.LabelTargetPatch), nil)
		f.prompter.EXPECT().Confirm(mock.Anything, true).Return(false, nil)

		result, err := f.task(MergeTaskFlags{BranchPrompt: true}).Merge(t.Context(), 7)

		require.NoError(t, err)
		assert.Equal(t, domain.MergeStatusUserAborted, result.Status)
		assert.Empty(t, f.strategy.calls)
	})

	t.Run("caretaker note", func(t *testing.T) {
		f := newMergeTaskFixture(t)
		f.expectPreconditions()
		f.querier.EXPECT().FetchPullRequest(mock.Anything, 7).
			Return(newRawPullRequest(7, domain.LabelTargetPatch, "caretaker note"), nil)
		f.prompter.EXPECT().Confirm(mock.MatchedBy(func(msg string) bool {
			return assert.Contains(t, msg, "caretaker note")
		}), false).Return(false, nil)

		result, err := f.task(MergeTaskFlags{}).Merge(t.Context(), 7)

		require.NoError(t, err)
		assert.Equal(t, domain.MergeStatusUserAborted, result.Status)
		assert.Empty(t, f.strategy.calls)
	})
}

func TestMerge_StrategyOutcomes(t *testing.T) {
	gitErr := &domain.GitCommandError{Args: []string{"push"}, ExitCode: 1, Stderr: "rejected"}

	tests := []struct {
		name       string
		strategy   *fakeStrategy
		wantStatus domain.MergeStatus
		wantCalls  []string
		wantErr    bool
	}{
		{
			name:       "merge failure",
			strategy:   &fakeStrategy{failure: domain.FailureMergeConflicts([]string{"10.0.x"})},
			wantStatus: domain.MergeStatusFailed,
			wantCalls:  []string{"prepare", "merge"},
		},
		{
			name:       "git error during prepare",
			strategy:   &fakeStrategy{prepareErr: gitErr},
			wantStatus: domain.MergeStatusUnknownGitError,
			wantCalls:  []string{"prepare"},
		},
		{
			name:       "wrapped git error during merge",
			strategy:   &fakeStrategy{mergeErr: errors.Join(errors.New("push failed"), gitErr)},
			wantStatus: domain.MergeStatusUnknownGitError,
			wantCalls:  []string{"prepare", "merge"},
		},
		{
			name:       "operator aborts commit message edit",
			strategy:   &fakeStrategy{mergeErr: domain.ErrUserAborted},
			wantStatus: domain.MergeStatusUserAborted,
			wantCalls:  []string{"prepare", "merge"},
		},
		{
			name:       "fatal error",
			strategy:   &fakeStrategy{mergeErr: errors.New("github unavailable")},
			wantStatus: domain.MergeStatusFailed,
			wantCalls:  []string{"prepare", "merge"},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMergeTaskFixture(t)
			f.strategy = tt.strategy
			f.expectPreconditions()
			f.querier.EXPECT().FetchPullRequest(mock.Anything, 7).Return(newRawPullRequest(7, domain.LabelTargetMinor), nil)
			f.expectRestore()

			result, err := f.task(MergeTaskFlags{}).Merge(t.Context(), 7)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantCalls, tt.strategy.calls)
			assert.NotNil(t, result.PullRequest)
		})
	}
}

func TestMerge_ReleaseTrainErrorIsFatal(t *testing.T) {
	f := newMergeTaskFixture(t)
	f.expectPreconditions()
	cfg := config.DefaultConfig()
	task := NewMergeTask(MergeTaskDeps{
		Git:           f.git,
		GitHubConfig:  &cfg.GitHub,
		Prompter:      f.prompter,
		ReleaseTrains: staticTrains{err: errors.New("unexpected version branch")},
		Resolver:      NewTargetLabelResolver(&fakeLTS{}),
		Strategy:      f.strategy,
		Tokens:        f.tokens,
		Validator:     NewPullRequestValidator(&cfg.Merge, f.querier),
	}, MergeTaskFlags{})

	result, err := task.Merge(t.Context(), 7)

	require.Error(t, err)
	assert.Equal(t, domain.MergeStatusFailed, result.Status)
	assert.Contains(t, err.Error(), "unexpected version branch")
}
