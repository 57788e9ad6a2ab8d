package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/services"
	"github.com/renato0307/trainmerge/internal/theme"
)

// PendingCmd lists open pull requests targeting a base branch
type PendingCmd struct {
	Base   string `help:"Base branch (defaults to github.main_branch)"`
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json"`
}

// Run executes the pending command
func (p *PendingCmd) Run(cli *CLI) error {
	repo, err := cli.Container.Repository()
	if err != nil {
		return err
	}

	base := p.Base
	if base == "" {
		base = repo.Config.GitHub.MainBranch
	}
	logging.Logger.Info("Executing pending command", "base", base)

	pending, err := repo.TargetBranches.ListPending(context.Background(), base)
	if err != nil {
		return err
	}

	switch p.Format {
	case "json":
		return renderPendingJSON(os.Stdout, pending)
	default:
		renderPendingTable(os.Stdout, base, pending)
		return nil
	}
}

func renderPendingTable(w io.Writer, base string, pending []services.PendingPullRequest) {
	fmt.Fprintf(w, "Pending pull requests - %s\n\n", theme.BranchStyle.Render(base))

	if len(pending) == 0 {
		fmt.Fprintln(w, "No pending pull requests.")
		return
	}

	fmt.Fprintln(w, "PR       CI        Label            Title")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, pr := range pending {
		label := pr.Label
		if label == "" {
			label = "-"
		}
		if len(label) > 16 {
			label = label[:13] + "..."
		}
		title := pr.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}

		fmt.Fprintf(w, "%-8s %s %-16s %s\n",
			fmt.Sprintf("#%d", pr.Number),
			ciCell(pr.CIState),
			label,
			title)
	}
}

// ciCell pads before styling so ANSI sequences do not break the alignment
func ciCell(state domain.CIState) string {
	switch state {
	case domain.CIStateSuccess:
		return theme.SuccessStyle.Render(fmt.Sprintf("%-9s", "passing"))
	case domain.CIStateFailure:
		return theme.FailureStyle.Render(fmt.Sprintf("%-9s", "failing"))
	case domain.CIStatePending:
		return theme.PendingStyle.Render(fmt.Sprintf("%-9s", "pending"))
	default:
		return theme.MutedStyle.Render(fmt.Sprintf("%-9s", "none"))
	}
}

// pendingJSON represents a pending pull request in JSON format
type pendingJSON struct {
	CIState string `json:"ci_state"`
	Label   string `json:"label,omitempty"`
	Number  int    `json:"number"`
	Title   string `json:"title"`
	URL     string `json:"url"`
}

func renderPendingJSON(w io.Writer, pending []services.PendingPullRequest) error {
	out := make([]pendingJSON, 0, len(pending))
	for _, pr := range pending {
		out = append(out, pendingJSON{
			CIState: string(pr.CIState),
			Label:   pr.Label,
			Number:  pr.Number,
			Title:   pr.Title,
			URL:     pr.URL,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal pending pull requests: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
