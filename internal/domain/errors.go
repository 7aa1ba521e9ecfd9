package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used throughout the application. The handler translates
// these to HTTP status codes via a single statusForError function; the
// message text is part of the external contract, hence the capitalization.
var (
	ErrMethodNotAllowed = errors.New("Method not allowed")
	ErrMissingBody      = errors.New("Missing notification request data")
	ErrNoTemplate       = errors.New("No template id selected")

	// Credential errors indicate a deployment defect, not a bad request.
	// The service-ID check runs first, so when both halves of the
	// composite key are malformed the service-ID error is reported.
	ErrServiceIDNotUUID = errors.New("Service ID is not a valid uuid")
	ErrAPIKeyNotUUID    = errors.New("API key is not a valid uuid")
)

// MissingFieldsError reports every required fulfilment field absent from
// a request in a single message, not just the first one found.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("Missing %s identifier(s)", strings.Join(e.Fields, ", "))
}
