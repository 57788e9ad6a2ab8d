package domain

// Commit is a parsed commit message
type Commit struct {
	Body            string
	BreakingChanges []string // Text of each breaking change note
	Deprecations    []string // Text of each deprecation note
	Header          string
	IsFixup         bool
	IsRevert        bool
	IsSquash        bool
	Message         string // Raw message as committed
	Scope           string
	Subject         string
	Type            string
}

// HasBreakingChanges reports whether the commit carries at least one breaking change note
func (c Commit) HasBreakingChanges() bool {
	return len(c.BreakingChanges) > 0
}

// HasDeprecations reports whether the commit carries at least one deprecation note
func (c Commit) HasDeprecations() bool {
	return len(c.Deprecations) > 0
}

// CommitTypeFeature is the commit type used for new features
const CommitTypeFeature = "feat"
