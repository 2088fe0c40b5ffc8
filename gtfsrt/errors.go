package gtfsrt

import "fmt"

// TransportError reports a failed feed fetch. The poll loop recovers it
// locally as an empty cycle and retries on the next interval.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a malformed protobuf payload. Same recovery as
// TransportError: the cycle is abandoned and retried next interval.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode feed message: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MissingFieldError reports a feed entity lacking a required sub-field.
// Only that entity is dropped; the rest of the cycle proceeds.
type MissingFieldError struct {
	EntityID string
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("entity %q missing required field %s", e.EntityID, e.Field)
}
