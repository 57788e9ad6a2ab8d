package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/ports"
)

// ReleaseTrainService discovers the active release trains from the upstream repository
type ReleaseTrainService struct {
	mainBranch  string
	repo        ports.RepositoryReader
	versionFile string
}

// NewReleaseTrainService creates a new ReleaseTrainService
func NewReleaseTrainService(repo ports.RepositoryReader, mainBranch, versionFile string) *ReleaseTrainService {
	return &ReleaseTrainService{
		mainBranch:  mainBranch,
		repo:        repo,
		versionFile: versionFile,
	}
}

type versionBranch struct {
	name   string
	parsed *version.Version // "<major>.<minor>.0"
}

// FetchActiveReleaseTrains builds the release-train snapshot used for the whole invocation
func (s *ReleaseTrainService) FetchActiveReleaseTrains(ctx context.Context) (domain.ActiveReleaseTrains, error) {
	nextVersion, err := s.versionOfBranch(ctx, s.mainBranch)
	if err != nil {
		return domain.ActiveReleaseTrains{}, err
	}
	next := newReleaseTrain(s.mainBranch, nextVersion)

	segments := nextVersion.Segments()
	nextMajor, nextMinor := segments[0], segments[1]

	branches, err := s.versionBranchesForMajors(ctx, nextMajor, nextMajor-1)
	if err != nil {
		return domain.ActiveReleaseTrains{}, err
	}

	nextTrainVersion, err := version.NewVersion(fmt.Sprintf("%d.%d.0", nextMajor, nextMinor))
	if err != nil {
		return domain.ActiveReleaseTrains{}, err
	}

	var latest, releaseCandidate *domain.ReleaseTrain
	for _, branch := range branches {
		if branch.parsed.GreaterThan(nextTrainVersion) {
			return domain.ActiveReleaseTrains{}, fmt.Errorf(
				"discovered unexpected version branch %q for a release train that is more recent than "+
					"the release train in %q: delete the branch or update the version in %q",
				branch.name, s.mainBranch, s.mainBranch)
		}
		if branch.parsed.Equal(nextTrainVersion) {
			return domain.ActiveReleaseTrains{}, fmt.Errorf(
				"discovered unexpected version branch %q for a release train that is already active in %q: "+
					"delete the branch or update the version in %q",
				branch.name, s.mainBranch, s.mainBranch)
		}

		branchVersion, err := s.versionOfBranch(ctx, branch.name)
		if err != nil {
			return domain.ActiveReleaseTrains{}, err
		}
		train := newReleaseTrain(branch.name, branchVersion)

		if !isFeatureFreezeVersion(branchVersion) {
			latest = &train
			break
		}
		if releaseCandidate != nil {
			return domain.ActiveReleaseTrains{}, fmt.Errorf(
				"unable to determine latest release train: both %q and %q are in "+
					"feature-freeze/release-candidate mode", branch.name, releaseCandidate.BranchName)
		}
		if branchVersion.Segments()[0] != nextMajor {
			return domain.ActiveReleaseTrains{}, fmt.Errorf(
				"discovered unexpected old feature-freeze/release-candidate branch %q: "+
					"expected no such branch for v%d", branch.name, branchVersion.Segments()[0])
		}
		releaseCandidate = &train
	}

	if latest == nil {
		names := make([]string, 0, len(branches))
		for _, b := range branches {
			names = append(names, b.name)
		}
		return domain.ActiveReleaseTrains{}, fmt.Errorf(
			"unable to determine the latest release train, considered branches: [%s]", strings.Join(names, ", "))
	}

	trains := domain.ActiveReleaseTrains{
		Latest:           *latest,
		Next:             next,
		ReleaseCandidate: releaseCandidate,
	}
	logging.Logger.Info("Active release trains",
		"next", next.BranchName, "latest", latest.BranchName, "rc", releaseCandidate != nil)
	return trains, nil
}

// versionBranchesForMajors lists the version branches of the given majors, newest first
func (s *ReleaseTrainService) versionBranchesForMajors(ctx context.Context, majors ...int) ([]versionBranch, error) {
	names, err := s.repo.ListBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	wanted := make(map[int]bool, len(majors))
	for _, m := range majors {
		wanted[m] = true
	}

	var branches []versionBranch
	for _, name := range names {
		major, minor, err := domain.ParseVersionBranch(name)
		if err != nil || !wanted[major] {
			continue
		}
		parsed, err := version.NewVersion(fmt.Sprintf("%d.%d.0", major, minor))
		if err != nil {
			continue
		}
		branches = append(branches, versionBranch{name: name, parsed: parsed})
	}

	sort.Slice(branches, func(i, j int) bool {
		return branches[i].parsed.GreaterThan(branches[j].parsed)
	})
	return branches, nil
}

func (s *ReleaseTrainService) versionOfBranch(ctx context.Context, branch string) (*version.Version, error) {
	content, err := s.repo.GetFileContent(ctx, s.versionFile, branch)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s on %s: %w", s.versionFile, branch, err)
	}

	var pkg struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(content, &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse %s on %s: %w", s.versionFile, branch, err)
	}

	v, err := version.NewSemver(pkg.Version)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q in %s on %s: %w", pkg.Version, s.versionFile, branch, err)
	}
	return v, nil
}

func newReleaseTrain(branch string, v *version.Version) domain.ReleaseTrain {
	segments := v.Segments()
	return domain.ReleaseTrain{
		BranchName: branch,
		IsMajor:    segments[1] == 0 && segments[2] == 0,
		Version:    v.Original(),
	}
}

// isFeatureFreezeVersion reports "-next.N" and "-rc.N" prereleases
func isFeatureFreezeVersion(v *version.Version) bool {
	tag := strings.SplitN(v.Prerelease(), ".", 2)[0]
	return tag == "next" || tag == "rc"
}
