package services

// ValidationError reports a request the caller has to fix. Handlers map
// it to 400; any other service failure stays a 500 with a generic body.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalidRequest(msg string) error {
	return &ValidationError{Msg: msg}
}
