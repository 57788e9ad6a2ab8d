package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/renato0307/trainmerge/internal/domain"
)

// DefaultFileName is the repository-relative path of the configuration file
const DefaultFileName = ".trainmerge.toml"

// Merge strategy names
const (
	StrategyAPIMerge        = "api-merge"
	StrategyAutosquashMerge = "autosquash-merge"
)

// ErrNotFound is returned by Load when the configuration file does not exist
var ErrNotFound = errors.New("configuration file not found")

// Config is the per-repository configuration
type Config struct {
	GitHub  GitHubConfig  `toml:"github"`
	Merge   MergeConfig   `toml:"merge"`
	Release ReleaseConfig `toml:"release"`
}

// GitHubConfig identifies the upstream repository
type GitHubConfig struct {
	MainBranch string `toml:"main_branch"`
	Name       string `toml:"name"`
	Owner      string `toml:"owner"`
	Private    bool   `toml:"private"`
}

// MergeConfig controls validation and merge behavior
type MergeConfig struct {
	API                     APIMergeConfig    `toml:"api"`
	BreakingChangeLabel     LabelPattern      `toml:"breaking_change_label"`
	CaretakerNoteLabel      LabelPattern      `toml:"caretaker_note_label"`
	CLASignedLabel          LabelPattern      `toml:"cla_signed_label"`
	CommitMessageFixupLabel LabelPattern      `toml:"commit_message_fixup_label"`
	MergeReadyLabel         LabelPattern      `toml:"merge_ready_label"`
	RequiredBaseCommits     map[string]string `toml:"required_base_commits"` // branch -> SHA
	Strategy                string            `toml:"strategy"`
	TargetLabelExemptScopes []string          `toml:"target_label_exempt_scopes"`
}

// APIMergeConfig configures the api-merge strategy
type APIMergeConfig struct {
	DefaultMethod string        `toml:"default_method"`
	Labels        []MethodLabel `toml:"labels"`
}

// MethodLabel maps a label to a merge method
type MethodLabel struct {
	Method  string       `toml:"method"`
	Pattern LabelPattern `toml:"pattern"`
}

// ReleaseConfig controls release-train discovery
type ReleaseConfig struct {
	LTSDurationMonths int    `toml:"lts_duration_months"`
	VersionFile       string `toml:"version_file"`
}

// LabelPattern matches labels either exactly or, when written as "/expr/", by regular expression
type LabelPattern string

var (
	patternCache   = map[LabelPattern]*regexp.Regexp{}
	patternCacheMu sync.Mutex
)

// IsRegex reports whether the pattern is written as "/expr/"
func (p LabelPattern) IsRegex() bool {
	s := string(p)
	return len(s) >= 2 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/")
}

func (p LabelPattern) compile() (*regexp.Regexp, error) {
	patternCacheMu.Lock()
	defer patternCacheMu.Unlock()

	if re, ok := patternCache[p]; ok {
		return re, nil
	}
	s := string(p)
	re, err := regexp.Compile(s[1 : len(s)-1])
	if err != nil {
		return nil, fmt.Errorf("invalid label pattern %q: %w", s, err)
	}
	patternCache[p] = re
	return re, nil
}

// Matches reports whether label matches the pattern. Empty patterns match nothing.
func (p LabelPattern) Matches(label string) bool {
	if p == "" {
		return false
	}
	if !p.IsRegex() {
		return string(p) == label
	}
	re, err := p.compile()
	if err != nil {
		return false
	}
	return re.MatchString(label)
}

// MatchesAny reports whether any of labels matches the pattern
func (p LabelPattern) MatchesAny(labels []string) bool {
	for _, label := range labels {
		if p.Matches(label) {
			return true
		}
	}
	return false
}

// DefaultConfig returns a configuration with every optional field set
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			MainBranch: "main",
		},
		Merge: MergeConfig{
			API: APIMergeConfig{
				DefaultMethod: string(domain.MergeMethodMerge),
			},
			BreakingChangeLabel:     "flag: breaking change",
			CaretakerNoteLabel:      "caretaker note",
			CLASignedLabel:          "cla: yes",
			CommitMessageFixupLabel: "commit message fixup",
			MergeReadyLabel:         "action: merge",
			RequiredBaseCommits:     map[string]string{},
			Strategy:                StrategyAutosquashMerge,
		},
		Release: ReleaseConfig{
			LTSDurationMonths: 18,
			VersionFile:       "package.json",
		},
	}
}

// Load reads the configuration file at path on top of the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML configuration on top of the defaults and validates it
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first configuration problem found
func (c *Config) Validate() error {
	if c.GitHub.Owner == "" {
		return errors.New("github.owner is required")
	}
	if c.GitHub.Name == "" {
		return errors.New("github.name is required")
	}
	if c.GitHub.MainBranch == "" {
		return errors.New("github.main_branch cannot be empty")
	}

	switch c.Merge.Strategy {
	case StrategyAPIMerge, StrategyAutosquashMerge:
	default:
		return fmt.Errorf("merge.strategy must be %q or %q, got %q",
			StrategyAPIMerge, StrategyAutosquashMerge, c.Merge.Strategy)
	}

	if _, err := domain.ParseMergeMethod(c.Merge.API.DefaultMethod); err != nil {
		return fmt.Errorf("merge.api.default_method: %w", err)
	}
	for i, label := range c.Merge.API.Labels {
		if _, err := domain.ParseMergeMethod(label.Method); err != nil {
			return fmt.Errorf("merge.api.labels[%d].method: %w", i, err)
		}
		if label.Pattern == "" {
			return fmt.Errorf("merge.api.labels[%d].pattern is required", i)
		}
	}

	patterns := map[string]LabelPattern{
		"merge.breaking_change_label":      c.Merge.BreakingChangeLabel,
		"merge.caretaker_note_label":       c.Merge.CaretakerNoteLabel,
		"merge.cla_signed_label":           c.Merge.CLASignedLabel,
		"merge.commit_message_fixup_label": c.Merge.CommitMessageFixupLabel,
		"merge.merge_ready_label":          c.Merge.MergeReadyLabel,
	}
	for i, label := range c.Merge.API.Labels {
		patterns[fmt.Sprintf("merge.api.labels[%d].pattern", i)] = label.Pattern
	}
	for field, p := range patterns {
		if !p.IsRegex() {
			continue
		}
		if _, err := p.compile(); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}

	if c.Release.VersionFile == "" {
		return errors.New("release.version_file cannot be empty")
	}
	if c.Release.LTSDurationMonths <= 0 {
		return errors.New("release.lts_duration_months must be positive")
	}

	return nil
}

// MergeMethodForLabels returns the method of the first configured label matching any of labels,
// or the default method
func (c *APIMergeConfig) MergeMethodForLabels(labels []string) domain.MergeMethod {
	for _, l := range c.Labels {
		if l.Pattern.MatchesAny(labels) {
			method, _ := domain.ParseMergeMethod(l.Method)
			return method
		}
	}
	method, _ := domain.ParseMergeMethod(c.DefaultMethod)
	return method
}

// RepoSlug returns "owner/name"
func (c *GitHubConfig) RepoSlug() string {
	return c.Owner + "/" + c.Name
}
