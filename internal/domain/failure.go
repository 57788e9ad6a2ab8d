package domain

import (
	"fmt"
	"strings"
)

// PullRequestFailure is a reportable problem with a pull request or an anticipated merge
// obstacle. It is returned as a value, never as an error.
type PullRequestFailure struct {
	Message  string
	NonFatal bool // Can be skipped with the ignore-non-fatal-failures override
}

func newFailure(message string) *PullRequestFailure {
	return &PullRequestFailure{Message: message}
}

func (f *PullRequestFailure) String() string {
	return f.Message
}

// FailureNotFound is returned when the pull request does not exist upstream
func FailureNotFound() *PullRequestFailure {
	return newFailure("Pull request could not be found upstream.")
}

// FailureIsDraft is returned for draft pull requests
func FailureIsDraft() *PullRequestFailure {
	return newFailure("Pull request is still a draft.")
}

// FailureIsClosed is returned for closed pull requests
func FailureIsClosed() *PullRequestFailure {
	return newFailure("Pull request is already closed.")
}

// FailureIsMerged is returned for merged pull requests
func FailureIsMerged() *PullRequestFailure {
	return newFailure("Pull request is already merged.")
}

// FailureNotMergeReady is returned when the merge-ready label is missing
func FailureNotMergeReady() *PullRequestFailure {
	return newFailure("Pull request is not marked as ready to merge.")
}

// FailureCLAUnsigned is returned when the contributor agreement label is missing
func FailureCLAUnsigned() *PullRequestFailure {
	return newFailure("Contributor license agreement has not been signed by the author.")
}

// FailureInvalidTarget wraps a target label or target branch resolution problem
func FailureInvalidTarget(message string) *PullRequestFailure {
	return newFailure(message)
}

// FailureFailingCI is returned when the latest commit has failing checks
func FailureFailingCI() *PullRequestFailure {
	return &PullRequestFailure{Message: "Pull request has failing CI jobs.", NonFatal: true}
}

// FailurePendingCI is returned when the latest commit has pending checks
func FailurePendingCI() *PullRequestFailure {
	return &PullRequestFailure{Message: "Pull request has pending CI jobs.", NonFatal: true}
}

// FailureHasBreakingChanges is returned when breaking changes target a non-major train
func FailureHasBreakingChanges(label TargetLabel) *PullRequestFailure {
	return newFailure(fmt.Sprintf(
		"Cannot merge into branches for %q as the pull request has breaking changes. "+
			"Breaking changes can only be merged with the %q label.", label.Name, LabelTargetMajor))
}

// FailureHasDeprecations is returned when deprecations target a patch-level train
func FailureHasDeprecations(label TargetLabel) *PullRequestFailure {
	return newFailure(fmt.Sprintf(
		"Cannot merge into branches for %q as the pull request contains deprecations. "+
			"Deprecations can only be merged with the %q or %q label.",
		label.Name, LabelTargetMinor, LabelTargetMajor))
}

// FailureHasFeatureCommits is returned when features target a patch-level train
func FailureHasFeatureCommits(label TargetLabel) *PullRequestFailure {
	return newFailure(fmt.Sprintf(
		"Cannot merge into branches for %q as the pull request has commits of type %q. "+
			"New features can only be merged with the %q or %q label.",
		label.Name, CommitTypeFeature, LabelTargetMinor, LabelTargetMajor))
}

// FailureMissingBreakingChangeLabel is returned when breaking notes exist without the label
func FailureMissingBreakingChangeLabel() *PullRequestFailure {
	return newFailure("Pull request has at least one commit with a breaking change note, " +
		"but does not have the breaking change label.")
}

// FailureMissingBreakingChangeCommit is returned when the label exists without breaking notes
func FailureMissingBreakingChangeCommit() *PullRequestFailure {
	return newFailure("Pull request has the breaking change label, " +
		"but no commit contains a breaking change note.")
}

// FailureMismatchingTargetBranch is returned when the UI base is not a resolved target
func FailureMismatchingTargetBranch(allowed []string) *PullRequestFailure {
	return newFailure(fmt.Sprintf(
		"Pull request is set to the wrong base branch. Update the base branch in the GitHub UI "+
			"to one of: %s.", strings.Join(allowed, ", ")))
}

// FailureUnsatisfiedBaseSHA is returned when the required base commit is missing
func FailureUnsatisfiedBaseSHA() *PullRequestFailure {
	return newFailure("Pull request has not been rebased recently and could be bypassing CI checks. " +
		"Rebase the pull request.")
}

// FailureMergeConflicts is returned when cherry-picks into target branches conflict
func FailureMergeConflicts(failedBranches []string) *PullRequestFailure {
	return newFailure(fmt.Sprintf(
		"Could not merge pull request into the following branches due to merge conflicts: %s. "+
			"Rebase the pull request or update the target label.", strings.Join(failedBranches, ", ")))
}

// FailureUnknownMergeError is returned for unexpected platform merge responses
func FailureUnknownMergeError(statusCode int) *PullRequestFailure {
	return newFailure(fmt.Sprintf("Unknown merge error occurred during merge (status %d).", statusCode))
}

// FailureInsufficientPermissions is returned when the token cannot perform the merge
func FailureInsufficientPermissions(message string) *PullRequestFailure {
	if message == "" {
		message = "Insufficient GitHub API permissions to merge the pull request. " +
			"Make sure the token has write access to the repository."
	}
	return newFailure(message)
}

// FailureCommitMessageFixupUnsupported is returned when fixup is requested without squash
func FailureCommitMessageFixupUnsupported(method MergeMethod) *PullRequestFailure {
	return newFailure(fmt.Sprintf(
		"Unable to fix up the commit message: it can only be changed when merging with %q, "+
			"but the pull request is merged with %q.", MergeMethodSquash, method))
}
