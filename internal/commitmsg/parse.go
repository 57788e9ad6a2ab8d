// Package commitmsg parses conventional commit messages.
package commitmsg

import (
	"regexp"
	"strings"

	"github.com/renato0307/trainmerge/internal/domain"
)

var (
	headerPattern = regexp.MustCompile(`^(\w+)(?:\(([^)]*)\))?!?: (.*)$`)
	revertPattern = regexp.MustCompile(`(?i)^revert:? `)
	notePattern   = regexp.MustCompile(`^(BREAKING[ -]CHANGES?|DEPRECATED):[ \t]*(.*)$`)
)

const (
	fixupPrefix  = "fixup! "
	squashPrefix = "squash! "
)

type noteKind int

const (
	noteBreaking noteKind = iota
	noteDeprecation
)

// Parse parses a raw commit message.
// Messages that do not follow the convention yield a Commit with only Header, Body and Message set.
func Parse(message string) domain.Commit {
	commit := domain.Commit{Message: message}

	lines := stripComments(strings.Split(strings.ReplaceAll(message, "\r\n", "\n"), "\n"))
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return commit
	}

	commit.Header = strings.TrimSpace(lines[0])
	commit.Body = strings.TrimSpace(strings.Join(lines[1:], "\n"))

	header := commit.Header
	switch {
	case strings.HasPrefix(header, fixupPrefix):
		commit.IsFixup = true
		header = strings.TrimPrefix(header, fixupPrefix)
	case strings.HasPrefix(header, squashPrefix):
		commit.IsSquash = true
		header = strings.TrimPrefix(header, squashPrefix)
	}
	commit.IsRevert = revertPattern.MatchString(header)

	if m := headerPattern.FindStringSubmatch(header); m != nil {
		commit.Type = m[1]
		commit.Scope = m[2]
		commit.Subject = m[3]
	}

	commit.BreakingChanges, commit.Deprecations = parseNotes(lines[1:])

	return commit
}

// ParseAll parses every message in order
func ParseAll(messages []string) []domain.Commit {
	commits := make([]domain.Commit, 0, len(messages))
	for _, m := range messages {
		commits = append(commits, Parse(m))
	}
	return commits
}

// parseNotes collects note paragraphs. A note runs until the next note keyword or the end.
func parseNotes(lines []string) (breaking, deprecations []string) {
	var (
		current []string
		kind    noteKind
		inNote  bool
	)

	flush := func() {
		if !inNote {
			return
		}
		text := strings.TrimSpace(strings.Join(current, "\n"))
		switch kind {
		case noteBreaking:
			breaking = append(breaking, text)
		case noteDeprecation:
			deprecations = append(deprecations, text)
		}
		current = nil
		inNote = false
	}

	for _, line := range lines {
		if m := notePattern.FindStringSubmatch(line); m != nil {
			flush()
			inNote = true
			kind = noteBreaking
			if m[1] == "DEPRECATED" {
				kind = noteDeprecation
			}
			current = []string{m[2]}
			continue
		}
		if inNote {
			current = append(current, line)
		}
	}
	flush()

	return breaking, deprecations
}

func stripComments(lines []string) []string {
	kept := lines[:0:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}
