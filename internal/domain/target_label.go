package domain

import "context"

// TargetLabelKind identifies an entry of the fixed target label taxonomy
type TargetLabelKind string

const (
	TargetLongTermSupport  TargetLabelKind = "long-term-support"
	TargetMajor            TargetLabelKind = "major"
	TargetMinor            TargetLabelKind = "minor"
	TargetPatch            TargetLabelKind = "patch"
	TargetReleaseCandidate TargetLabelKind = "release-candidate"
)

// Label names of the target label taxonomy
const (
	LabelTargetLongTermSupport  = "target: lts"
	LabelTargetMajor            = "target: major"
	LabelTargetMinor            = "target: minor"
	LabelTargetPatch            = "target: patch"
	LabelTargetReleaseCandidate = "target: rc"
)

// BranchResolver computes the branches a pull request lands on, given the base branch
// selected in the GitHub UI. It fails with *InvalidTargetLabelError or *InvalidTargetBranchError.
type BranchResolver func(ctx context.Context, githubTargetBranch string) ([]string, error)

// TargetLabel declares which release trains a pull request must land on
type TargetLabel struct {
	Branches BranchResolver
	Kind     TargetLabelKind
	Name     string
}
