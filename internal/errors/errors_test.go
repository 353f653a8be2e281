package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownTask(t *testing.T) {
	err := UnknownTask("deploy", "init, feature, fix")

	assert.Equal(t, ErrUnknownTask, err.Code)
	assert.Contains(t, err.Error(), "unknown task type: deploy")
	assert.Contains(t, err.Hint, "init, feature, fix")
}

func TestShareInvalid(t *testing.T) {
	cause := errors.New("illegal base64 data")
	err := ShareInvalid(cause)

	assert.Equal(t, ErrShareInvalid, err.Code)
	assert.Contains(t, err.Error(), "could not decode share payload")
	assert.Contains(t, err.Error(), "illegal base64 data")

	unwrapped := err.Unwrap()
	require.NotNil(t, unwrapped)
	assert.Equal(t, cause, unwrapped)
}

func TestPresetNotFound(t *testing.T) {
	err := PresetNotFound("missing", "express-api, react-app")

	assert.Equal(t, ErrPresetNotFound, err.Code)
	assert.Contains(t, err.Error(), "preset not found: missing")
	assert.Contains(t, err.Hint, "express-api")
	assert.Nil(t, err.Unwrap())
}

func TestExportFailed(t *testing.T) {
	cause := errors.New("permission denied")
	err := ExportFailed("/etc/prompt.md", cause)

	assert.Equal(t, ErrExportFailed, err.Code)
	assert.Contains(t, err.Error(), "/etc/prompt.md")
	assert.Contains(t, err.Error(), "permission denied")
}

func TestConfigNotFound(t *testing.T) {
	err := ConfigNotFound("/home/user/.config/code-prompt/config.yaml")

	assert.Equal(t, ErrConfigNotFound, err.Code)
	assert.Contains(t, err.Error(), "config file not found")
	assert.NotEmpty(t, err.Hint)
}

func TestErrorsAs(t *testing.T) {
	var wrapped error = InvalidOption("task is required")

	var pe *PromptError
	require.ErrorAs(t, wrapped, &pe)
	assert.Equal(t, ErrInvalidOption, pe.Code)
}

func TestWrapPreservesCauseChain(t *testing.T) {
	root := errors.New("root cause")
	err := Wrap(ErrConfigInvalid, "failed to read config", "", root)

	assert.True(t, errors.Is(err, root))
}
