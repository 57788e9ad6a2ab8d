package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/services"
	"github.com/renato0307/trainmerge/internal/theme"
	"github.com/renato0307/trainmerge/internal/ui"
)

// WaitCmd polls a pull request until it is merged or closed
type WaitCmd struct {
	Interval time.Duration `help:"Polling interval" default:"30s"`
	Notify   bool          `help:"Play a sound when the pull request is merged or closed"`
	Number   int           `arg:"" help:"Pull request number"`
}

// Run executes the wait command. The exit status is 0 when merged and 1 when closed.
func (w *WaitCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing wait command", "pr", w.Number, "interval", w.Interval)

	repo, err := cli.Container.Repository()
	if err != nil {
		return err
	}

	waiter := services.NewPullRequestWaiter(repo.GitHub, w.Interval)
	model := ui.NewWaitModel(context.Background(), waiter, w.Number)

	if _, err := tea.NewProgram(model, tea.WithOutput(os.Stderr)).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	state, err := model.Result()
	if errors.Is(err, domain.ErrUserAborted) {
		fmt.Println(theme.Warning(fmt.Sprintf("Stopped waiting for pull request #%d", w.Number)))
		return &ExitCodeError{Code: 130}
	}
	if err != nil {
		return err
	}

	if w.Notify {
		notify(cli.Container.Notifier, state == domain.PullRequestMerged)
	}
	if state == domain.PullRequestMerged {
		fmt.Println(theme.Success(fmt.Sprintf("Pull request #%d has been merged", w.Number)))
		return nil
	}
	fmt.Println(theme.Failure(fmt.Sprintf("Pull request #%d was closed without being merged", w.Number)))
	return &ExitCodeError{Code: 1}
}
