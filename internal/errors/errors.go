// Package errors provides typed errors for code-prompt.
package errors

import "fmt"

// ErrorCode identifies the type of error.
type ErrorCode string

const (
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrUnknownTask    ErrorCode = "UNKNOWN_TASK"
	ErrInvalidOption  ErrorCode = "INVALID_OPTION"
	ErrShareInvalid   ErrorCode = "SHARE_INVALID"
	ErrPresetNotFound ErrorCode = "PRESET_NOT_FOUND"
	ErrExportFailed   ErrorCode = "EXPORT_FAILED"
)

// PromptError represents a typed error with user-friendly hints.
type PromptError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Cause   error
}

func (e *PromptError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PromptError) Unwrap() error {
	return e.Cause
}

// New creates a new PromptError.
func New(code ErrorCode, message, hint string) *PromptError {
	return &PromptError{
		Code:    code,
		Message: message,
		Hint:    hint,
	}
}

// Wrap creates a new PromptError wrapping an existing error.
func Wrap(code ErrorCode, message, hint string, cause error) *PromptError {
	return &PromptError{
		Code:    code,
		Message: message,
		Hint:    hint,
		Cause:   cause,
	}
}

// ConfigNotFound returns an error for a missing config file.
func ConfigNotFound(path string) *PromptError {
	return &PromptError{
		Code:    ErrConfigNotFound,
		Message: fmt.Sprintf("config file not found: %s", path),
		Hint:    "Config is optional; code-prompt works with built-in defaults",
	}
}

// ConfigInvalid returns an error for an invalid config.
func ConfigInvalid(reason string) *PromptError {
	return &PromptError{
		Code:    ErrConfigInvalid,
		Message: fmt.Sprintf("invalid config: %s", reason),
		Hint:    "Check your config file at ~/.config/code-prompt/config.yaml",
	}
}

// UnknownTask returns an error for an unrecognized task type.
func UnknownTask(task, available string) *PromptError {
	return &PromptError{
		Code:    ErrUnknownTask,
		Message: fmt.Sprintf("unknown task type: %s", task),
		Hint:    fmt.Sprintf("Available task types: %s", available),
	}
}

// InvalidOption returns an error for an option value outside the schema.
func InvalidOption(reason string) *PromptError {
	return &PromptError{
		Code:    ErrInvalidOption,
		Message: reason,
		Hint:    "Run `code-prompt generate` without flags for the guided flow",
	}
}

// ShareInvalid returns an error for a malformed share payload.
func ShareInvalid(cause error) *PromptError {
	return &PromptError{
		Code:    ErrShareInvalid,
		Message: "could not decode share payload",
		Hint:    "Payloads come from `code-prompt share encode`; check for truncation",
		Cause:   cause,
	}
}

// PresetNotFound returns an error for an unknown preset name.
func PresetNotFound(name, available string) *PromptError {
	return &PromptError{
		Code:    ErrPresetNotFound,
		Message: fmt.Sprintf("preset not found: %s", name),
		Hint:    fmt.Sprintf("Available presets: %s", available),
	}
}

// ExportFailed returns an error for a failed document write.
func ExportFailed(path string, cause error) *PromptError {
	return &PromptError{
		Code:    ErrExportFailed,
		Message: fmt.Sprintf("failed to write %s", path),
		Hint:    "Check that the target directory exists and is writable",
		Cause:   cause,
	}
}
