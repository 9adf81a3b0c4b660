package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// forceTTY overrides detection in tests.
var forceTTY *bool

// IsTTY reports whether stdin and stdout are both terminals, which is
// required for spinners and interactive prompts.
func IsTTY() bool {
	if forceTTY != nil {
		return *forceTTY
	}
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
