package domain

import (
	"fmt"
	"strings"
)

// MergeMethod is the method GitHub uses to merge a pull request
type MergeMethod string

const (
	MergeMethodMerge  MergeMethod = "merge"
	MergeMethodRebase MergeMethod = "rebase"
	MergeMethodSquash MergeMethod = "squash"
)

// ParseMergeMethod validates a merge method name
func ParseMergeMethod(s string) (MergeMethod, error) {
	switch m := MergeMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case MergeMethodMerge, MergeMethodRebase, MergeMethodSquash:
		return m, nil
	default:
		return "", fmt.Errorf("invalid merge method %q (expected merge, rebase or squash)", s)
	}
}

// MergeRequest holds the parameters of a platform-side merge
type MergeRequest struct {
	CommitMessage string
	CommitTitle   string
	Method        MergeMethod
}

// MergeResponse is the platform's answer to a merge request.
// Non-success HTTP statuses are reported here rather than as errors.
type MergeResponse struct {
	SHA        string
	StatusCode int
}
