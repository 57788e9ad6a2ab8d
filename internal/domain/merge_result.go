package domain

// MergeStatus is the outcome of a merge invocation
type MergeStatus string

const (
	MergeStatusDirtyWorkingDir         MergeStatus = "dirty-working-directory"
	MergeStatusFailed                  MergeStatus = "failed"
	MergeStatusInsufficientPermissions MergeStatus = "insufficient-permissions"
	MergeStatusShallowRepository       MergeStatus = "shallow-repository"
	MergeStatusSuccess                 MergeStatus = "success"
	MergeStatusUnknownGitError         MergeStatus = "unknown-git-error"
	MergeStatusUserAborted             MergeStatus = "user-aborted"
)

// MergeResult is produced exactly once at the end of a merge invocation
type MergeResult struct {
	Err         error               // Underlying fatal error, if any
	Failure     *PullRequestFailure // Set for failed and insufficient-permissions
	PullRequest *PullRequest        // Set once validation succeeded
	Status      MergeStatus
}

// ExitCode maps the result to the process exit contract
func (r MergeResult) ExitCode() int {
	if r.Status == MergeStatusSuccess {
		return 0
	}
	return 1
}
