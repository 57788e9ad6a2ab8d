package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	adaptergit "github.com/renato0307/trainmerge/internal/adapters/git"
	adaptergithub "github.com/renato0307/trainmerge/internal/adapters/github"
	adapterprompt "github.com/renato0307/trainmerge/internal/adapters/prompt"
	adaptersound "github.com/renato0307/trainmerge/internal/adapters/sound"
	adapterstorage "github.com/renato0307/trainmerge/internal/adapters/storage"
	"github.com/renato0307/trainmerge/internal/config"
	"github.com/renato0307/trainmerge/internal/logging"
	"github.com/renato0307/trainmerge/internal/paths"
	"github.com/renato0307/trainmerge/internal/ports"
	"github.com/renato0307/trainmerge/internal/services"
)

// ErrMissingToken is returned when a command needs GitHub but no token was given
var ErrMissingToken = errors.New("a GitHub token is required, set --token or GITHUB_TOKEN")

// ContainerOptions are the global flags the container is built from
type ContainerOptions struct {
	ConfigPath    string
	GitHubAPIURL  string
	GraphQLURL    string
	HistoryDBPath string // Defaults to $TRAINMERGE_HOME/history.db
	RepoDir       string
	Token         string
}

// Container holds all dependencies for the application
type Container struct {
	History  ports.MergeHistoryRepository
	Notifier ports.Notifier
	Prompter ports.Prompter

	opts       ContainerOptions
	repository *Repository
}

// Repository holds the dependencies that need the repository configuration and GitHub access.
// It is built on first use so that local-only commands work outside a configured clone.
type Repository struct {
	Config         *config.Config
	Git            *adaptergit.CLIClient
	GitHub         *adaptergithub.Client
	ReleaseTrains  *services.ReleaseTrainService
	Resolver       *services.TargetLabelResolver
	TargetBranches *services.TargetBranchService
	Validator      *services.PullRequestValidator
}

// NewContainer creates a new Container with the local adapters wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	dbPath := opts.HistoryDBPath
	if dbPath == "" {
		dbPath = paths.GetHistoryDBPath()
	}
	history, err := adapterstorage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, err
	}

	return &Container{
		History:  history,
		Notifier: adaptersound.NewPlayer(),
		Prompter: adapterprompt.NewHuhPrompter(),
		opts:     opts,
	}, nil
}

// Repository loads the configuration and wires the GitHub-backed services
func (c *Container) Repository() (*Repository, error) {
	if c.repository != nil {
		return c.repository, nil
	}

	if c.opts.Token == "" {
		return nil, ErrMissingToken
	}

	configPath := c.opts.ConfigPath
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(c.opts.RepoDir, configPath)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("Configuration loaded",
		"path", configPath,
		"repo", cfg.GitHub.RepoSlug(),
		"strategy", cfg.Merge.Strategy)

	gh, err := adaptergithub.NewClient(adaptergithub.Options{
		BaseURL:    c.opts.GitHubAPIURL,
		GraphQLURL: c.opts.GraphQLURL,
		Name:       cfg.GitHub.Name,
		Owner:      cfg.GitHub.Owner,
		Token:      c.opts.Token,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	git := adaptergit.NewCLIClient(
		c.opts.RepoDir,
		adaptergit.GitHubRemoteURL(cfg.GitHub.Owner, cfg.GitHub.Name, c.opts.Token),
		c.opts.Token,
	)

	lts := services.NewLTSChecker(gh, cfg.Release.LTSDurationMonths)
	resolver := services.NewTargetLabelResolver(lts)
	releaseTrains := services.NewReleaseTrainService(gh, cfg.GitHub.MainBranch, cfg.Release.VersionFile)

	c.repository = &Repository{
		Config:         cfg,
		Git:            git,
		GitHub:         gh,
		ReleaseTrains:  releaseTrains,
		Resolver:       resolver,
		TargetBranches: services.NewTargetBranchService(gh, gh, releaseTrains, resolver),
		Validator:      services.NewPullRequestValidator(&cfg.Merge, gh),
	}
	return c.repository, nil
}

// NewMergeTask builds the configured strategy and the task sequencing it
func (r *Repository) NewMergeTask(prompter ports.Prompter, flags services.MergeTaskFlags) (*services.MergeTask, error) {
	strategy, err := services.NewMergeStrategy(services.StrategyDeps{
		Config:   r.Config,
		Git:      r.Git,
		GitHub:   r.GitHub,
		Prompter: prompter,
	})
	if err != nil {
		return nil, err
	}

	return services.NewMergeTask(services.MergeTaskDeps{
		Git:           r.Git,
		GitHubConfig:  &r.Config.GitHub,
		Prompter:      prompter,
		ReleaseTrains: r.ReleaseTrains,
		Resolver:      r.Resolver,
		Strategy:      strategy,
		Tokens:        r.GitHub,
		Validator:     r.Validator,
	}, flags), nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.History != nil {
		return c.History.Close()
	}
	return nil
}
