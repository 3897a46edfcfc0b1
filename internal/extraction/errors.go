package extraction

import "fmt"

// Error wraps a failure anywhere in the extraction path. Callers recover by
// falling back to a manual draft; extraction failures never block intake.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("resume extraction failed: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
