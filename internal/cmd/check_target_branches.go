package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/services"
	"github.com/renato0307/trainmerge/internal/theme"
)

// CheckTargetBranchesCmd prints the target label and branches of pull requests
type CheckTargetBranchesCmd struct {
	Numbers []int `arg:"" help:"Pull request numbers"`
}

// Run executes the check-target-branches command
func (c *CheckTargetBranchesCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing check-target-branches command", "prs", c.Numbers)

	repo, err := cli.Container.Repository()
	if err != nil {
		return err
	}

	reports, err := repo.TargetBranches.CheckTargetBranches(context.Background(), c.Numbers)
	if err != nil {
		return err
	}

	renderTargetBranches(os.Stdout, reports)
	for _, r := range reports {
		if r.Failure != "" {
			return &ExitCodeError{Code: 1}
		}
	}
	return nil
}

func renderTargetBranches(w io.Writer, reports []services.TargetBranchReport) {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s\n", theme.HeaderStyle.Render(fmt.Sprintf("#%d", r.Number)), r.Title)

		if r.Failure != "" {
			fmt.Fprintf(w, "  %s\n", theme.Failure(r.Failure))
			continue
		}

		fmt.Fprintf(w, "  %s %s\n", theme.MutedStyle.Render("Label:"), theme.LabelStyle.Render(r.Label))
		for _, b := range r.Branches {
			fmt.Fprintf(w, "  %s %-12s %s\n",
				theme.MutedStyle.Render("→"),
				theme.BranchStyle.Render(b.Name),
				theme.MutedStyle.Render(shortSHA(b.SHA)))
		}
	}
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
