package output

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTTY(t *testing.T, v bool) {
	t.Helper()
	prev := forceTTY
	forceTTY = &v
	t.Cleanup(func() { forceTTY = prev })
}

func TestSetupLogging_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggingTo(&buf, true)
	t.Cleanup(func() { SetupLogging(false) })

	Debug("debug-visible", "key", "value")
	assert.Contains(t, buf.String(), "debug-visible")
	assert.Contains(t, buf.String(), "key=value")
}

func TestSetupLogging_DefaultHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggingTo(&buf, false)
	t.Cleanup(func() { SetupLogging(false) })

	Debug("debug-hidden")
	Warn("warn-visible")
	assert.NotContains(t, buf.String(), "debug-hidden")
	assert.Contains(t, buf.String(), "warn-visible")
}

func TestRunWithSpinner_NoTTYRunsInline(t *testing.T) {
	withTTY(t, false)
	want := errors.New("boom")

	called := false
	err := RunWithSpinner(context.Background(), func(ctx context.Context) error {
		called = true
		require.NoError(t, ctx.Err())
		return want
	}, WithTitle("Cloning"))

	assert.True(t, called)
	assert.ErrorIs(t, err, want)
}

func TestRunWithSpinner_TimeoutReachesAction(t *testing.T) {
	withTTY(t, false)

	err := RunWithSpinner(context.Background(), func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}, WithTimeout(1))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTable(t *testing.T) {
	tbl := NewTable("ID", "NAME").Row("go", "Go").Row("rust", "Rust")
	out := tbl.String()

	assert.Equal(t, 2, tbl.Len())
	for _, s := range []string{"ID", "NAME", "go", "Rust"} {
		assert.Contains(t, out, s)
	}
}

func TestMarks(t *testing.T) {
	assert.Contains(t, Checkmark("done"), "done")
	assert.Contains(t, Cross("failed"), "failed")
	assert.Contains(t, Bullet("note"), "note")
}

func TestDisableColor(t *testing.T) {
	DisableColor()
	assert.Equal(t, "ok", StyleSuccess.Render("ok"))
	assert.Equal(t, "✔ done", Checkmark("done"))
}
