package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/trainmerge/internal/domain"
	portsmocks "github.com/renato0307/trainmerge/internal/ports/mocks"
)

// newVersionedRepo returns a repository reader whose package.json on each branch holds the given version
func newVersionedRepo(t *testing.T, versions map[string]string, extraBranches ...string) *portsmocks.MockRepositoryReader {
	repo := portsmocks.NewMockRepositoryReader(t)

	branches := append([]string{}, extraBranches...)
	for branch, v := range versions {
		branches = append(branches, branch)
		repo.EXPECT().GetFileContent(mock.Anything, "package.json", branch).
			Return([]byte(fmt.Sprintf(`{"name": "pkg", "version": %q}`, v)), nil).Maybe()
	}
	repo.EXPECT().ListBranches(mock.Anything).Return(branches, nil).Maybe()
	return repo
}

func TestFetchActiveReleaseTrains(t *testing.T) {
	tests := []struct {
		name       string
		versions   map[string]string
		extra      []string
		wantNext   domain.ReleaseTrain
		wantLatest string
		wantRC     string
	}{
		{
			name:       "minor next with latest patch branch",
			versions:   map[string]string{"main": "10.1.0-next.0", "10.0.x": "10.0.3"},
			extra:      []string{"feature-x", "9.2.x"},
			wantNext:   domain.ReleaseTrain{BranchName: "main", Version: "10.1.0-next.0"},
			wantLatest: "10.0.x",
		},
		{
			name: "release candidate active",
			versions: map[string]string{
				"main":   "10.2.0-next.0",
				"10.1.x": "10.1.0-rc.1",
				"10.0.x": "10.0.5",
			},
			wantNext:   domain.ReleaseTrain{BranchName: "main", Version: "10.2.0-next.0"},
			wantLatest: "10.0.x",
			wantRC:     "10.1.x",
		},
		{
			name:       "major next considers previous major",
			versions:   map[string]string{"main": "11.0.0-next.0", "10.2.x": "10.2.1"},
			extra:      []string{"10.1.x"},
			wantNext:   domain.ReleaseTrain{BranchName: "main", IsMajor: true, Version: "11.0.0-next.0"},
			wantLatest: "10.2.x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newVersionedRepo(t, tt.versions, tt.extra...)
			svc := NewReleaseTrainService(repo, "main", "package.json")

			trains, err := svc.FetchActiveReleaseTrains(t.Context())

			require.NoError(t, err)
			assert.Equal(t, tt.wantNext, trains.Next)
			assert.Equal(t, tt.wantLatest, trains.Latest.BranchName)
			if tt.wantRC == "" {
				assert.Nil(t, trains.ReleaseCandidate)
			} else {
				require.NotNil(t, trains.ReleaseCandidate)
				assert.Equal(t, tt.wantRC, trains.ReleaseCandidate.BranchName)
			}
		})
	}
}

func TestFetchActiveReleaseTrains_Errors(t *testing.T) {
	tests := []struct {
		name     string
		versions map[string]string
		extra    []string
		wantErr  string
	}{
		{
			name:     "branch newer than next",
			versions: map[string]string{"main": "10.1.0-next.0"},
			extra:    []string{"10.2.x"},
			wantErr:  "more recent",
		},
		{
			name:     "branch equal to next",
			versions: map[string]string{"main": "10.1.0-next.0"},
			extra:    []string{"10.1.x"},
			wantErr:  "already active",
		},
		{
			name: "two consecutive release candidates",
			versions: map[string]string{
				"main":   "10.3.0-next.0",
				"10.2.x": "10.2.0-rc.0",
				"10.1.x": "10.1.0-next.1",
			},
			wantErr: "feature-freeze/release-candidate mode",
		},
		{
			name: "release candidate of an older major",
			versions: map[string]string{
				"main":   "11.0.0-next.0",
				"10.3.x": "10.3.0-rc.0",
			},
			wantErr: "old feature-freeze",
		},
		{
			name:     "no latest branch",
			versions: map[string]string{"main": "10.1.0-next.0"},
			wantErr:  "unable to determine the latest release train",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newVersionedRepo(t, tt.versions, tt.extra...)
			svc := NewReleaseTrainService(repo, "main", "package.json")

			_, err := svc.FetchActiveReleaseTrains(t.Context())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFetchActiveReleaseTrains_InvalidVersionFile(t *testing.T) {
	repo := portsmocks.NewMockRepositoryReader(t)
	repo.EXPECT().GetFileContent(mock.Anything, "package.json", "main").Return([]byte(`{"version": "latest"}`), nil)

	svc := NewReleaseTrainService(repo, "main", "package.json")
	_, err := svc.FetchActiveReleaseTrains(t.Context())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid version "latest"`)
}
