package pkg

// HTTPError carries the status a business rule wants the client to see.
// Anything that is not an *HTTPError is treated as an internal failure and
// never shown to the client verbatim.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}
