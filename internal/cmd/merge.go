package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/trainmerge/internal/domain"
	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/ports"
	"github.com/renato0307/trainmerge/internal/services"
	"github.com/renato0307/trainmerge/internal/theme"
)

// MergeCmd merges a pull request into every branch of its release train target
type MergeCmd struct {
	BranchPrompt           bool `help:"Ask for confirmation of the target branches" default:"true" negatable:""`
	IgnoreNonFatalFailures bool `help:"Ignore failures that can be overridden, such as pending or failing CI" short:"f"`
	Notify                 bool `help:"Play a sound when the merge finishes"`
	Number                 int  `arg:"" help:"Pull request number"`
}

// Run executes the merge command
func (m *MergeCmd) Run(cli *CLI) error {
	executionID := uuid.New().String()
	logging.SetExecutionID(executionID)
	logging.Logger.Info("Executing merge command",
		"pr", m.Number,
		"branch_prompt", m.BranchPrompt,
		"ignore_non_fatal_failures", m.IgnoreNonFatalFailures)

	repo, err := cli.Container.Repository()
	if err != nil {
		return err
	}
	task, err := repo.NewMergeTask(cli.Container.Prompter, services.MergeTaskFlags{
		BranchPrompt:           m.BranchPrompt,
		IgnoreNonFatalFailures: m.IgnoreNonFatalFailures,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, mergeErr := task.Merge(ctx, m.Number)
	recordMerge(context.WithoutCancel(ctx), cli.Container.History,
		newMergeRecord(executionID, m.Number, repo.Config.Merge.Strategy, result))

	for _, line := range mergeOutcome(result, m.Number) {
		fmt.Println(line)
	}
	if m.Notify {
		notify(cli.Container.Notifier, result.Status == domain.MergeStatusSuccess)
	}
	if mergeErr != nil {
		return mergeErr
	}
	if code := result.ExitCode(); code != 0 {
		return &ExitCodeError{Code: code}
	}
	return nil
}

func newMergeRecord(executionID string, number int, strategy string, result domain.MergeResult) domain.MergeRecord {
	record := domain.MergeRecord{
		CreatedAt:         time.Now(),
		ExecutionID:       executionID,
		PullRequestNumber: number,
		Status:            result.Status,
		Strategy:          strategy,
	}
	if result.PullRequest != nil {
		record.PullRequestTitle = result.PullRequest.Title
		record.TargetBranches = result.PullRequest.TargetBranches
	}
	switch {
	case result.Failure != nil:
		record.FailureMessage = result.Failure.Message
	case result.Err != nil:
		record.FailureMessage = result.Err.Error()
	}
	return record
}

// recordMerge never fails the command, the history is informational
func recordMerge(ctx context.Context, history ports.MergeHistoryRepository, record domain.MergeRecord) {
	if err := history.Add(ctx, record); err != nil {
		logging.Logger.Warn("Failed to record merge history", "error", err, "pr", record.PullRequestNumber)
	}
}

func notify(notifier ports.Notifier, success bool) {
	outcome := ports.OutcomeSuccess
	if !success {
		outcome = ports.OutcomeFailure
	}
	if err := notifier.Notify(outcome); err != nil {
		logging.Logger.Warn("Failed to play notification", "error", err)
	}
}

// mergeOutcome returns the lines reported to the operator for result
func mergeOutcome(result domain.MergeResult, number int) []string {
	switch result.Status {
	case domain.MergeStatusSuccess:
		lines := []string{theme.Success(fmt.Sprintf("Successfully merged the pull request: #%d", number))}
		if result.PullRequest != nil {
			branches := make([]string, len(result.PullRequest.TargetBranches))
			for i, b := range result.PullRequest.TargetBranches {
				branches[i] = theme.BranchStyle.Render(b)
			}
			lines = append(lines, theme.MutedStyle.Render("  Merged into: ")+strings.Join(branches, ", "))
		}
		return lines

	case domain.MergeStatusDirtyWorkingDir:
		return []string{theme.Failure("Local working repository not clean. " +
			"Please make sure there are no uncommitted changes.")}

	case domain.MergeStatusShallowRepository:
		return []string{theme.Failure("Unable to perform merge in a local repository that is configured as shallow. " +
			"Please convert the repository to a complete clone by running: git fetch --unshallow")}

	case domain.MergeStatusUnknownGitError:
		lines := []string{theme.Failure("An unknown Git error has been thrown. " +
			"Please check the output above for details.")}
		if result.Err != nil {
			lines = append(lines, "  "+theme.MutedStyle.Render(result.Err.Error()))
		}
		return lines

	case domain.MergeStatusUserAborted:
		return []string{theme.Warning(fmt.Sprintf("Merge of pull request has been aborted manually: #%d", number))}

	case domain.MergeStatusInsufficientPermissions, domain.MergeStatusFailed:
		if result.Failure == nil {
			// Fatal errors are reported by the caller
			return []string{theme.Failure(fmt.Sprintf("Could not merge the specified pull request: #%d", number))}
		}
		lines := []string{
			theme.Failure(fmt.Sprintf("Could not merge the specified pull request: #%d", number)),
			"  " + theme.FailureStyle.Render(result.Failure.Message),
		}
		if result.Failure.NonFatal {
			lines = append(lines, theme.MutedStyle.Render(
				"  This failure can be ignored with --ignore-non-fatal-failures"))
		}
		return lines

	default:
		return []string{theme.Failure(fmt.Sprintf("Unexpected merge status %q", result.Status))}
	}
}
