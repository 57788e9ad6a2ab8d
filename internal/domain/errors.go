package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMultipleTargetLabels = errors.New("pull request has multiple target labels")
	ErrNoTargetLabel        = errors.New("pull request has no target label")
	ErrPullRequestNotFound  = errors.New("pull request not found")
	ErrUserAborted          = errors.New("aborted by user")
)

// InvalidTargetLabelError reports that a target label cannot be used for a pull request
type InvalidTargetLabelError struct {
	Err     error // Optional sentinel, e.g. ErrNoTargetLabel
	Message string
}

func (e *InvalidTargetLabelError) Error() string {
	return e.Message
}

func (e *InvalidTargetLabelError) Unwrap() error {
	return e.Err
}

// InvalidTargetBranchError reports that the UI-selected base branch does not fit the label
type InvalidTargetBranchError struct {
	Message string
}

func (e *InvalidTargetBranchError) Error() string {
	return e.Message
}

// GitCommandError is returned when a git invocation exits unsuccessfully
type GitCommandError struct {
	Args     []string // Arguments with credentials redacted
	ExitCode int
	Stderr   string
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git %s failed with exit code %d", strings.Join(e.Args, " "), e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}
