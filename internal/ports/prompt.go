package ports

// Prompter asks the operator for decisions
type Prompter interface {
	Confirm(message string, defaultValue bool) (bool, error)
	EditText(title, initial string) (string, error)
}
