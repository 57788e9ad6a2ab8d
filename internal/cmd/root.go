package cmd

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/renato0307/trainmerge/internal/config"
	"github.com/renato0307/trainmerge/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Config       string `help:"Path of the merge configuration, relative to --repo-dir" default:"${config_file}"`
	GitHubAPIURL string `help:"GitHub REST API root for GitHub Enterprise" env:"GITHUB_API_URL" hidden:""`
	GraphQLURL   string `help:"GitHub GraphQL endpoint for GitHub Enterprise" env:"GITHUB_GRAPHQL_URL" hidden:""`
	RepoDir      string `help:"Local clone of the repository" default:"." type:"existingdir"`
	Token        string `help:"GitHub token" env:"GITHUB_TOKEN"`

	CheckTargetBranches CheckTargetBranchesCmd `cmd:"check-target-branches" help:"Show the branches pull requests would be merged into"`
	History             HistoryCmd             `cmd:"history" help:"Show the local merge history"`
	Merge               MergeCmd               `cmd:"merge" help:"Merge a pull request into its target branches"`
	Pending             PendingCmd             `cmd:"pending" help:"List open pull requests waiting to be merged"`
	Wait                WaitCmd                `cmd:"wait" help:"Wait until a pull request is merged or closed"`

	// Internal fields (not flags)
	Container *Container `kong:"-"`
}

// Vars are the kong interpolation variables used by the CLI tags
func Vars(versionInfo string) kong.Vars {
	return kong.Vars{
		"config_file": config.DefaultFileName,
		"version":     versionInfo,
	}
}

// AfterApply initializes logging after CLI parsing and builds the container
func (c *CLI) AfterApply() error {
	logOpts := logging.Options{Debug: c.Debug, File: c.DebugFile, MaxFiles: c.MaxLogFiles}
	logFilePath, err := logging.Initialize(logOpts)
	if err != nil {
		return err
	}
	logging.Propagate(logOpts, logFilePath)

	// Created after logging so the GORM logger writes to the initialized handler
	container, err := NewContainer(ContainerOptions{
		ConfigPath:   c.Config,
		GitHubAPIURL: c.GitHubAPIURL,
		GraphQLURL:   c.GraphQLURL,
		RepoDir:      c.RepoDir,
		Token:        c.Token,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// ExitCodeError ends the process with Code after the command already reported the outcome
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
