package steps

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExecFunc runs name with args in dir.
type ExecFunc func(ctx context.Context, dir, name string, args ...string) error

// maxOutputTail bounds how much process output is quoted in errors.
const maxOutputTail = 400

// Exec runs a process and waits for it. On failure the error carries
// the tail of its combined output.
func Exec(ctx context.Context, dir, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		tail := strings.TrimSpace(out.String())
		if len(tail) > maxOutputTail {
			tail = "..." + tail[len(tail)-maxOutputTail:]
		}
		if tail == "" {
			return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
		}
		return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, tail)
	}
	return nil
}
