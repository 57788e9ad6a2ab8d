package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/trainmerge/internal/config"
	"github.com/renato0307/trainmerge/internal/domain"
	portsmocks "github.com/renato0307/trainmerge/internal/ports/mocks"
)

func testMergeConfig() *config.MergeConfig {
	cfg := config.DefaultConfig()
	cfg.Merge.RequiredBaseCommits = map[string]string{"main": "abc123"}
	cfg.Merge.TargetLabelExemptScopes = []string{"dev-infra"}
	return &cfg.Merge
}

// newRawPullRequest returns an open pull request that passes every gate
func newRawPullRequest(number int, labels ...string) *domain.RawPullRequest {
	return &domain.RawPullRequest{
		BaseBranch:  "main",
		CommitCount: 1,
		Commits: []domain.RawCommit{
			{CIState: domain.CIStateSuccess, Message: "fix(core): handle empty input"},
		},
		HeadBranch: "fix-empty",
		Labels:     append([]string{"action: merge", "cla: yes"}, labels...),
		Number:     number,
		State:      domain.PullRequestOpen,
		Title:      "fix(core): handle empty input",
		URL:        "https://github.com/acme/widgets/pull/1",
	}
}

func validate(t *testing.T, raw *domain.RawPullRequest, opts ValidationOptions) (*domain.PullRequest, *domain.PullRequestFailure, error) {
	t.Helper()
	querier := portsmocks.NewMockPullRequestQuerier(t)
	querier.EXPECT().FetchPullRequest(mock.Anything, raw.Number).Return(raw, nil)

	validator := NewPullRequestValidator(testMergeConfig(), querier)
	labels := NewTargetLabelResolver(&fakeLTS{}).TargetLabels(trainsWithRC())
	return validator.LoadAndValidatePullRequest(t.Context(), raw.Number, labels, opts)
}

func TestLoadAndValidatePullRequest_Valid(t *testing.T) {
	raw := newRawPullRequest(1, domain.LabelTargetPatch, "caretaker note", "commit message fixup")

	pr, failure, err := validate(t, raw, ValidationOptions{})

	require.NoError(t, err)
	require.Nil(t, failure)
	require.NotNil(t, pr)
	assert.Equal(t, []string{"main", "10.0.x", "10.1.x"}, pr.TargetBranches)
	assert.Equal(t, "main", pr.GitHubTargetBranch)
	assert.Equal(t, "abc123", pr.RequiredBaseSHA)
	assert.True(t, pr.HasCaretakerNote)
	assert.True(t, pr.NeedsCommitMessageFixup)
	require.Len(t, pr.Commits, 1)
	assert.Equal(t, "fix", pr.Commits[0].Type)
}

func TestLoadAndValidatePullRequest_NotFound(t *testing.T) {
	querier := portsmocks.NewMockPullRequestQuerier(t)
	querier.EXPECT().FetchPullRequest(mock.Anything, 42).Return(nil, domain.ErrPullRequestNotFound)

	validator := NewPullRequestValidator(testMergeConfig(), querier)
	pr, failure, err := validator.LoadAndValidatePullRequest(t.Context(), 42, nil, ValidationOptions{})

	require.NoError(t, err)
	assert.Nil(t, pr)
	assert.Equal(t, domain.FailureNotFound(), failure)
}

func TestLoadAndValidatePullRequest_FetchErrorIsFatal(t *testing.T) {
	querier := portsmocks.NewMockPullRequestQuerier(t)
	querier.EXPECT().FetchPullRequest(mock.Anything, 42).Return(nil, errors.New("connection refused"))

	validator := NewPullRequestValidator(testMergeConfig(), querier)
	_, failure, err := validator.LoadAndValidatePullRequest(t.Context(), 42, nil, ValidationOptions{})

	require.Error(t, err)
	assert.Nil(t, failure)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestLoadAndValidatePullRequest_Gates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(raw *domain.RawPullRequest)
		want   *domain.PullRequestFailure
	}{
		{
			name: "draft is reported before label gates",
			mutate: func(raw *domain.RawPullRequest) {
				raw.IsDraft = true
				raw.Labels = nil
			},
			want: domain.FailureIsDraft(),
		},
		{
			name:   "closed",
			mutate: func(raw *domain.RawPullRequest) { raw.State = domain.PullRequestClosed },
			want:   domain.FailureIsClosed(),
		},
		{
			name:   "merged",
			mutate: func(raw *domain.RawPullRequest) { raw.State = domain.PullRequestMerged },
			want:   domain.FailureIsMerged(),
		},
		{
			name:   "not merge ready",
			mutate: func(raw *domain.RawPullRequest) { raw.Labels = []string{"cla: yes", domain.LabelTargetPatch} },
			want:   domain.FailureNotMergeReady(),
		},
		{
			name:   "cla unsigned",
			mutate: func(raw *domain.RawPullRequest) { raw.Labels = []string{"action: merge", domain.LabelTargetPatch} },
			want:   domain.FailureCLAUnsigned(),
		},
		{
			name:   "no target label",
			mutate: func(raw *domain.RawPullRequest) { raw.Labels = []string{"action: merge", "cla: yes"} },
			want:   domain.FailureInvalidTarget("Unable to determine target for the PR as it has no target label."),
		},
		{
			name: "failing ci",
			mutate: func(raw *domain.RawPullRequest) {
				raw.Commits[0].CIState = domain.CIStateFailure
			},
			want: domain.FailureFailingCI(),
		},
		{
			name: "pending ci",
			mutate: func(raw *domain.RawPullRequest) {
				raw.Commits[0].CIState = domain.CIStatePending
			},
			want: domain.FailurePendingCI(),
		},
		{
			name: "lts label on a non-version branch",
			mutate: func(raw *domain.RawPullRequest) {
				raw.BaseBranch = "feature"
				raw.Labels = []string{"action: merge", "cla: yes", domain.LabelTargetLongTermSupport}
			},
			want: domain.FailureInvalidTarget(`PR cannot be merged as it does not target a long-term support branch: "feature"`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := newRawPullRequest(7, domain.LabelTargetPatch)
			tt.mutate(raw)

			pr, failure, err := validate(t, raw, ValidationOptions{})

			require.NoError(t, err)
			assert.Nil(t, pr)
			assert.Equal(t, tt.want, failure)
		})
	}
}

func TestLoadAndValidatePullRequest_IgnoreNonFatalFailures(t *testing.T) {
	for _, state := range []domain.CIState{domain.CIStateFailure, domain.CIStatePending, domain.CIStateUnknown} {
		t.Run(string(state), func(t *testing.T) {
			raw := newRawPullRequest(7, domain.LabelTargetPatch)
			raw.Commits[0].CIState = state

			pr, failure, err := validate(t, raw, ValidationOptions{IgnoreNonFatalFailures: true})

			require.NoError(t, err)
			assert.Nil(t, failure)
			assert.NotNil(t, pr)
		})
	}
}

func TestAssertChangesAllowForTargetLabel_BreakingChangesPerLabel(t *testing.T) {
	trains := trainsWithRC()
	trains.Next.IsMajor = true
	labels := NewTargetLabelResolver(&fakeLTS{}).TargetLabels(trains)
	commits := []domain.Commit{{Type: "feat", Scope: "core", BreakingChanges: []string{"the old api is gone"}}}

	tests := []struct {
		label       string
		wantFailure bool
	}{
		{domain.LabelTargetMajor, false},
		{domain.LabelTargetMinor, true},
		{domain.LabelTargetPatch, true},
		{domain.LabelTargetReleaseCandidate, true},
		{domain.LabelTargetLongTermSupport, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			label := labelByName(t, labels, tt.label)

			failure := AssertChangesAllowForTargetLabel(commits, label, nil)

			if tt.wantFailure {
				assert.Equal(t, domain.FailureHasBreakingChanges(label), failure)
			} else {
				assert.Nil(t, failure)
			}
		})
	}
}

func TestAssertChangesAllowForTargetLabel(t *testing.T) {
	labels := NewTargetLabelResolver(&fakeLTS{}).TargetLabels(trainsWithRC())
	patch := labelByName(t, labels, domain.LabelTargetPatch)
	minor := labelByName(t, labels, domain.LabelTargetMinor)
	lts := labelByName(t, labels, domain.LabelTargetLongTermSupport)

	feature := domain.Commit{Type: "feat", Scope: "core"}
	deprecation := domain.Commit{Type: "fix", Scope: "core", Deprecations: []string{"use bar instead"}}
	exemptFeature := domain.Commit{Type: "feat", Scope: "dev-infra"}

	tests := []struct {
		name    string
		commits []domain.Commit
		label   domain.TargetLabel
		want    *domain.PullRequestFailure
	}{
		{"feature into patch", []domain.Commit{feature}, patch, domain.FailureHasFeatureCommits(patch)},
		{"deprecation into lts", []domain.Commit{deprecation}, lts, domain.FailureHasDeprecations(lts)},
		{"feature into minor", []domain.Commit{feature, deprecation}, minor, nil},
		{"exempt scope into patch", []domain.Commit{exemptFeature}, patch, nil},
		{"unknown label kind", []domain.Commit{feature}, domain.TargetLabel{Name: "target: custom"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failure := AssertChangesAllowForTargetLabel(tt.commits, tt.label, []string{"dev-infra"})
			assert.Equal(t, tt.want, failure)
		})
	}
}

func TestAssertCorrectBreakingChangeLabeling(t *testing.T) {
	breaking := domain.Commit{Type: "feat", BreakingChanges: []string{"removed"}}
	plain := domain.Commit{Type: "fix"}
	label := config.LabelPattern("flag: breaking change")

	tests := []struct {
		name    string
		commits []domain.Commit
		labels  []string
		want    *domain.PullRequestFailure
	}{
		{"note without label", []domain.Commit{plain, breaking}, nil, domain.FailureMissingBreakingChangeLabel()},
		{"label without note", []domain.Commit{plain}, []string{"flag: breaking change"}, domain.FailureMissingBreakingChangeCommit()},
		{"label and note", []domain.Commit{breaking}, []string{"flag: breaking change"}, nil},
		{"neither", []domain.Commit{plain}, []string{"area: docs"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssertCorrectBreakingChangeLabeling(tt.commits, tt.labels, label))
		})
	}
}

func TestLoadAndValidatePullRequest_BreakingChangeLabelChecked(t *testing.T) {
	raw := newRawPullRequest(7, domain.LabelTargetMinor)
	raw.Commits[0].Message = "feat(core): new api\n\nBREAKING CHANGE: removed old api"

	_, failure, err := validate(t, raw, ValidationOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.FailureHasBreakingChanges(labelByName(t,
		NewTargetLabelResolver(&fakeLTS{}).TargetLabels(trainsWithRC()), domain.LabelTargetMinor)), failure)
}

func TestLoadAndValidatePullRequest_LTSFatalError(t *testing.T) {
	raw := newRawPullRequest(7)
	raw.BaseBranch = "8.2.x"
	raw.Labels = append(raw.Labels, domain.LabelTargetLongTermSupport)

	querier := portsmocks.NewMockPullRequestQuerier(t)
	querier.EXPECT().FetchPullRequest(mock.Anything, 7).Return(raw, nil)

	validator := NewPullRequestValidator(testMergeConfig(), querier)
	labels := NewTargetLabelResolver(&fakeLTS{err: errors.New("rate limited")}).TargetLabels(trainsWithRC())
	_, failure, err := validator.LoadAndValidatePullRequest(t.Context(), 7, labels, ValidationOptions{})

	require.Error(t, err)
	assert.Nil(t, failure)
	assert.Contains(t, err.Error(), "rate limited")
}
