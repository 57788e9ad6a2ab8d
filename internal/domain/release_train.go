package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

var versionBranchPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.x$`)

// ReleaseTrain is a version line anchored to a branch
type ReleaseTrain struct {
	BranchName string
	IsMajor    bool   // Ships as a new major version (x.0.0)
	Version    string // Version in the train's version file, e.g. "10.2.0-rc.1"
}

// ActiveReleaseTrains is an immutable snapshot of the repository's release trains,
// fetched once per invocation
type ActiveReleaseTrains struct {
	Latest           ReleaseTrain
	Next             ReleaseTrain
	ReleaseCandidate *ReleaseTrain // nil when no feature-freeze/release-candidate train is active
}

// IsReleaseCandidateBranch reports whether branch is the active release-candidate branch
func (t ActiveReleaseTrains) IsReleaseCandidateBranch(branch string) bool {
	return t.ReleaseCandidate != nil && t.ReleaseCandidate.BranchName == branch
}

// IsVersionBranch reports whether name follows the "<major>.<minor>.x" convention
func IsVersionBranch(name string) bool {
	return versionBranchPattern.MatchString(name)
}

// ParseVersionBranch extracts major and minor from a version branch name
func ParseVersionBranch(name string) (major, minor int, err error) {
	m := versionBranchPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, fmt.Errorf("not a version branch: %q", name)
	}
	major, _ = strconv.Atoi(m[1])
	minor, _ = strconv.Atoi(m[2])
	return major, minor, nil
}
