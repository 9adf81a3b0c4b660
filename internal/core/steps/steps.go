// Package steps runs the best-effort actions that follow project
// generation: version control, dependency install, remote repository
// and editor launch. A failing step never stops the ones after it; its
// error is reported together with instructions for doing it by hand.
package steps

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// RunFunc performs a step. detail is a short success note such as the
// created repository URL.
type RunFunc func(ctx context.Context) (detail string, err error)

// Step is one best-effort action.
type Step struct {
	Name string
	// Title is shown while the step runs.
	Title string
	Run   RunFunc
	// Recovery tells the user how to finish the step by hand.
	Recovery string
}

// Result is the outcome of a step.
type Result struct {
	Name     string
	Detail   string
	Err      error
	Recovery string
}

// OK reports whether the step succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Failed returns the failed results.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}

// AroundFunc wraps the execution of a step, for example with a spinner.
type AroundFunc func(ctx context.Context, title string, run func(ctx context.Context) error) error

// Runner executes steps in order.
type Runner struct {
	logger *log.Logger
	around AroundFunc
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithAround wraps every step with fn.
func WithAround(fn AroundFunc) RunnerOption {
	return func(r *Runner) {
		r.around = fn
	}
}

// NewRunner creates a Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger: log.New(io.Discard),
		around: func(ctx context.Context, _ string, run func(context.Context) error) error {
			return run(ctx)
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every step and returns one Result per step, in order.
// Once ctx is done the remaining steps fail with the context error
// without running.
func (r *Runner) Run(ctx context.Context, steps []Step) []Result {
	results := make([]Result, 0, len(steps))
	for _, s := range steps {
		res := Result{Name: s.Name, Recovery: s.Recovery}
		if err := ctx.Err(); err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}

		title := s.Title
		if title == "" {
			title = s.Name
		}
		res.Err = r.around(ctx, title, func(ctx context.Context) error {
			detail, err := runGuarded(ctx, s)
			res.Detail = detail
			return err
		})

		if res.Err != nil {
			r.logger.Warn("step failed", "step", s.Name, "error", res.Err)
		} else {
			r.logger.Debug("step done", "step", s.Name, "detail", res.Detail)
		}
		results = append(results, res)
	}
	return results
}

// runGuarded turns a panic inside a step into its error.
func runGuarded(ctx context.Context, s Step) (detail string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s: panic: %v", s.Name, p)
		}
	}()
	if s.Run == nil {
		return "", nil
	}
	return s.Run(ctx)
}
