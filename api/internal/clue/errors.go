package clue

// FormatError means the model replied, but the reply could not be read as
// the expected JSON shape. Raw keeps the unparsed text for diagnosis.
type FormatError struct {
	Raw    string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *FormatError) Unwrap() error { return e.Err }

// CallError means the model could not be reached at all: transport failure,
// bad credentials, non-200 status.
type CallError struct {
	Provider string
	Err      error
}

func (e *CallError) Error() string { return e.Provider + ": " + e.Err.Error() }

func (e *CallError) Unwrap() error { return e.Err }
