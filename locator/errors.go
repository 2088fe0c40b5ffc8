package locator

import "fmt"

// InputValidationError reports malformed or over-limit vehicle identifier
// input. It is surfaced to the caller immediately; no fetch ever starts.
type InputValidationError struct {
	Input  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid vehicle identifiers %q: %s", e.Input, e.Reason)
}
