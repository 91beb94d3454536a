package wrapper

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrShellNotSupported is returned when an unsupported shell is specified
	ErrShellNotSupported = errors.New("shell not supported")

	// ErrShellDetectionFailed is returned when automatic shell detection fails
	ErrShellDetectionFailed = errors.New("shell detection failed")
)

// WrapperError represents a wrapper-specific error with additional context
type WrapperError struct {
	Shell       string
	Op          string
	Err         error
	Suggestions []string
}

func (e *WrapperError) Error() string {
	if e.Shell == "" {
		return fmt.Sprintf("wrapper %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("wrapper %s for %s: %v", e.Op, e.Shell, e.Err)
}

func (e *WrapperError) Unwrap() error {
	return e.Err
}

// GetUserFriendlyMessage returns the error followed by numbered suggestions.
func (e *WrapperError) GetUserFriendlyMessage() string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n\nSuggested solutions:")
		for i, suggestion := range e.Suggestions {
			fmt.Fprintf(&msg, "\n  %d. %s", i+1, suggestion)
		}
	}
	return msg.String()
}

// NewWrapperError creates a new WrapperError
func NewWrapperError(shell, op string, err error) *WrapperError {
	return &WrapperError{
		Shell:       shell,
		Op:          op,
		Err:         err,
		Suggestions: generateSuggestions(err),
	}
}

func generateSuggestions(err error) []string {
	names := make([]string, 0, len(GetSupportedShells()))
	for _, s := range GetSupportedShells() {
		names = append(names, string(s))
	}

	switch {
	case errors.Is(err, ErrShellDetectionFailed):
		return []string{
			"Specify the shell explicitly: " + Command + " init <shell>",
			"Supported shells: " + strings.Join(names, ", "),
			"Check your SHELL environment variable: echo $SHELL",
		}
	case errors.Is(err, ErrShellNotSupported):
		return []string{
			"Supported shells: " + strings.Join(names, ", "),
			"Without a wrapper, run: eval \"$(" + Command + ")\"",
		}
	}
	return nil
}
