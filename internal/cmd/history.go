package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/theme"
)

// HistoryCmd shows the local merge history
type HistoryCmd struct {
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json" short:"f"`
	Limit  int    `help:"Maximum number of results" default:"20" short:"l"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	records, err := cli.Container.History.List(context.Background(), h.Limit)
	if err != nil {
		return fmt.Errorf("failed to list merge history: %w", err)
	}

	switch h.Format {
	case "json":
		return renderHistoryJSON(os.Stdout, records)
	default:
		renderHistoryTable(os.Stdout, records)
		return nil
	}
}

func renderHistoryTable(w io.Writer, records []domain.MergeRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No merges recorded yet.")
		return
	}

	fmt.Fprintln(w, "When                 PR       Status                    Branches")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, r := range records {
		fmt.Fprintf(w, "%-20s %-8s %s %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			fmt.Sprintf("#%d", r.PullRequestNumber),
			statusCell(r.Status),
			strings.Join(r.TargetBranches, ", "))
		if r.FailureMessage != "" {
			fmt.Fprintf(w, "%29s %s\n", "", theme.MutedStyle.Render(r.FailureMessage))
		}
	}
}

func statusCell(status domain.MergeStatus) string {
	cell := fmt.Sprintf("%-25s", status)
	switch status {
	case domain.MergeStatusSuccess:
		return theme.SuccessStyle.Render(cell)
	case domain.MergeStatusUserAborted:
		return theme.WarningStyle.Render(cell)
	default:
		return theme.FailureStyle.Render(cell)
	}
}

// mergeRecordJSON represents a merge record in JSON format
type mergeRecordJSON struct {
	CreatedAt      string   `json:"created_at"`
	ExecutionID    string   `json:"execution_id"`
	FailureMessage string   `json:"failure_message,omitempty"`
	Number         int      `json:"number"`
	Status         string   `json:"status"`
	Strategy       string   `json:"strategy"`
	TargetBranches []string `json:"target_branches"`
	Title          string   `json:"title,omitempty"`
}

func renderHistoryJSON(w io.Writer, records []domain.MergeRecord) error {
	out := make([]mergeRecordJSON, 0, len(records))
	for _, r := range records {
		branches := r.TargetBranches
		if branches == nil {
			branches = []string{}
		}
		out = append(out, mergeRecordJSON{
			CreatedAt:      r.CreatedAt.Format(time.RFC3339),
			ExecutionID:    r.ExecutionID,
			FailureMessage: r.FailureMessage,
			Number:         r.PullRequestNumber,
			Status:         string(r.Status),
			Strategy:       r.Strategy,
			TargetBranches: branches,
			Title:          r.PullRequestTitle,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal merge history: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
