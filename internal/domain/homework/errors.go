// internal/domain/homework/errors.go
package homework

import "fmt"

// TransportError means the Practicum API could not be reached at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("practicum API request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteAPIError means the Practicum API answered with a non-200 status.
type RemoteAPIError struct {
	StatusCode int
	Endpoint   string
	FromDate   int64
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("practicum API returned status %d (endpoint: %s, from_date: %d)", e.StatusCode, e.Endpoint, e.FromDate)
}

// SchemaError means the API response does not have the expected shape.
type SchemaError struct {
	Reason string
	Err    error // optional cause, e.g. a JSON decoding error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected API response: %s: %v", e.Reason, e.Err)
	}
	return "unexpected API response: " + e.Reason
}

func (e *SchemaError) Unwrap() error { return e.Err }

// UnknownStatusError means a homework carries a status missing from the catalog.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown homework status: %q", e.Status)
}

// NotifyError means a Telegram message could not be delivered.
type NotifyError struct {
	Err error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("failed to send telegram message: %v", e.Err)
}

func (e *NotifyError) Unwrap() error { return e.Err }
