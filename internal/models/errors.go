package models

import "fmt"

// ClientError is an error the cloud API returned for a single request,
// as opposed to transport, credential or context failures.
type ClientError struct {
	Operation string
	Code      string
	Message   string
	Err       error // underlying SDK error, may be nil
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("An error occurred (%s) when calling the %s operation: %s", e.Code, e.Operation, e.Message)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}
