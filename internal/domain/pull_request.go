package domain

// PullRequestState is the lifecycle state of a pull request as reported by GitHub
type PullRequestState string

const (
	PullRequestClosed PullRequestState = "CLOSED"
	PullRequestMerged PullRequestState = "MERGED"
	PullRequestOpen   PullRequestState = "OPEN"
)

// IsTerminal reports whether no further transition is expected
func (s PullRequestState) IsTerminal() bool {
	return s == PullRequestClosed || s == PullRequestMerged
}

// CIState is the combined status of all checks on a commit
type CIState string

const (
	CIStateFailure CIState = "FAILURE"
	CIStatePending CIState = "PENDING"
	CIStateSuccess CIState = "SUCCESS"
	CIStateUnknown CIState = "" // No checks reported for the commit
)

// RawCommit is a pull request commit as returned by the query interface
type RawCommit struct {
	CIState CIState
	Message string
}

// RawPullRequest is the unvalidated pull request record fetched from GitHub
type RawPullRequest struct {
	BaseBranch  string
	CommitCount int         // Total number of commits, may exceed len(Commits)
	Commits     []RawCommit // Most recent 100 commits, oldest first
	HeadBranch  string
	HeadRepoURL string
	IsDraft     bool
	Labels      []string
	Number      int
	State       PullRequestState
	Title       string
	URL         string
}

// LatestCIState returns the CI state of the most recent commit
func (p *RawPullRequest) LatestCIState() CIState {
	if len(p.Commits) == 0 {
		return CIStateUnknown
	}
	return p.Commits[len(p.Commits)-1].CIState
}

// PullRequest is a validated pull request snapshot with its resolved target branches.
// It is created once per invocation and never persisted.
type PullRequest struct {
	CommitCount             int
	Commits                 []Commit
	GitHubTargetBranch      string // Base branch selected in the GitHub UI
	HasCaretakerNote        bool
	HeadBranch              string
	HeadRepoURL             string
	Labels                  []string
	NeedsCommitMessageFixup bool
	Number                  int
	RequiredBaseSHA         string
	TargetBranches          []string
	Title                   string
	URL                     string
}

// TargetsBranch reports whether branch is one of the resolved target branches
func (p *PullRequest) TargetsBranch(branch string) bool {
	for _, target := range p.TargetBranches {
		if target == branch {
			return true
		}
	}
	return false
}

// BranchesExcept returns the target branches without the given branch, preserving order
func (p *PullRequest) BranchesExcept(branch string) []string {
	branches := make([]string, 0, len(p.TargetBranches))
	for _, target := range p.TargetBranches {
		if target != branch {
			branches = append(branches, target)
		}
	}
	return branches
}
