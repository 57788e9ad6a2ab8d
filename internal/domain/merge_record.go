package domain

import "time"

// MergeRecord is a local audit entry for a merge invocation
type MergeRecord struct {
	CreatedAt         time.Time
	ExecutionID       string
	FailureMessage    string
	PullRequestNumber int
	PullRequestTitle  string
	Status            MergeStatus
	Strategy          string
	TargetBranches    []string
}
