package cmd

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/services"
)

func TestRenderTargetBranches(t *testing.T) {
	var buf bytes.Buffer
	renderTargetBranches(&buf, []services.TargetBranchReport{
		{
			Branches: []services.BranchHead{
				{Name: "main", SHA: "0123456789abcdef"},
				{Name: "10.0.x", SHA: "fedcba9876543210"},
			},
			Label:  domain.LabelTargetPatch,
			Number: 1,
			Title:  "fix: crash",
		},
		{Failure: "Unable to determine target for the PR as it has no target label.", Number: 2},
	})

	out := buf.String()
	assert.Contains(t, out, "#1 fix: crash")
	assert.Contains(t, out, domain.LabelTargetPatch)
	assert.Contains(t, out, "0123456")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "10.0.x")
	assert.Contains(t, out, "#2")
	assert.Contains(t, out, "no target label")
}

func TestRenderPending(t *testing.T) {
	pending := []services.PendingPullRequest{
		{CIState: domain.CIStateSuccess, Label: domain.LabelTargetMinor, Number: 4, Title: "feat: new", URL: "https://x/4"},
		{CIState: domain.CIStateUnknown, Number: 5, Title: "chore: tidy"},
	}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		renderPendingTable(&buf, "main", pending)
		out := buf.String()
		assert.Contains(t, out, "#4")
		assert.Contains(t, out, "passing")
		assert.Contains(t, out, "none")
		assert.Contains(t, out, "chore: tidy")
	})

	t.Run("empty table", func(t *testing.T) {
		var buf bytes.Buffer
		renderPendingTable(&buf, "main", nil)
		assert.Contains(t, buf.String(), "No pending pull requests.")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderPendingJSON(&buf, pending))

		var decoded []pendingJSON
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "SUCCESS", decoded[0].CIState)
		assert.Equal(t, domain.LabelTargetMinor, decoded[0].Label)
		assert.Empty(t, decoded[1].Label)
	})
}

func TestRenderHistory(t *testing.T) {
	created := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	records := []domain.MergeRecord{
		{
			CreatedAt:         created,
			ExecutionID:       "e1",
			PullRequestNumber: 7,
			Status:            domain.MergeStatusSuccess,
			Strategy:          "autosquash-merge",
			TargetBranches:    []string{"main", "10.0.x"},
		},
		{
			CreatedAt:         created,
			ExecutionID:       "e2",
			FailureMessage:    "Pull request is still a draft.",
			PullRequestNumber: 8,
			Status:            domain.MergeStatusFailed,
		},
	}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		renderHistoryTable(&buf, records)
		out := buf.String()
		assert.Contains(t, out, "#7")
		assert.Contains(t, out, "main, 10.0.x")
		assert.Contains(t, out, "still a draft")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderHistoryJSON(&buf, records))

		var decoded []mergeRecordJSON
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "2026-03-04T10:00:00Z", decoded[0].CreatedAt)
		assert.Equal(t, []string{}, decoded[1].TargetBranches)
		assert.Equal(t, "failed", decoded[1].Status)
	})
}
