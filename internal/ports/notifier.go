package ports

// Outcome is the result a Notifier signals
type Outcome string

const (
	OutcomeFailure Outcome = "failure"
	OutcomeSuccess Outcome = "success"
)

// Notifier tells the operator that a long-running command finished
type Notifier interface {
	Notify(outcome Outcome) error
}
