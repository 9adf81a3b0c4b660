package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	cause := errors.New("disk full")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"user", NewUserError("bad flag"), ExitUserError},
		{"system", NewSystemErrorWithCause("write", cause), ExitSystemError},
		{"wrapped system", fmt.Errorf("outer: %w", NewSystemErrorWithCause("write", cause)), ExitSystemError},
		{"plain error", errors.New("unknown flag"), ExitUserError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestExitError_Message(t *testing.T) {
	cause := errors.New("disk full")
	assert.Equal(t, "write: disk full", NewSystemErrorWithCause("write", cause).Error())
	assert.Equal(t, "disk full", (&ExitError{Code: ExitSystemError, Cause: cause}).Error())
	assert.Equal(t, "bad flag", NewUserError("bad flag").Error())
	assert.ErrorIs(t, NewUserErrorWithCause("x", cause), cause)
}

func TestRootCommandTree(t *testing.T) {
	want := []string{"config", "create", "fork", "init", "list", "menu", "preview"}
	var got []string
	for _, c := range rootCmd.Commands() {
		got = append(got, c.Name())
	}
	for _, name := range want {
		assert.Contains(t, got, name)
	}

	var aliases []string
	for _, c := range configCmd.Commands() {
		aliases = append(aliases, c.Aliases...)
	}
	assert.ElementsMatch(t, []string{"ls", "create", "load", "remove", "rm", "view"}, aliases)
}
