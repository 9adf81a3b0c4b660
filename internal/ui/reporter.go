package ui

// StepReporter shows generation progress as a bar with one tick per
// step. It satisfies the reporter the project generator accepts.
type StepReporter struct {
	progress Progress
	title    string
	bar      ProgressBar
}

// NewStepReporter returns a reporter whose bar starts with title.
func NewStepReporter(p Progress, title string) *StepReporter {
	return &StepReporter{progress: p, title: title}
}

// Begin starts a bar sized to total steps.
func (r *StepReporter) Begin(total int) {
	r.bar = r.progress.Start(r.title, total)
}

// Step labels the bar with name and advances it.
func (r *StepReporter) Step(name string) {
	if r.bar == nil {
		return
	}
	r.bar.SetTitle(name)
	r.bar.Increment(1)
}

// End completes the bar.
func (r *StepReporter) End() {
	if r.bar == nil {
		return
	}
	r.bar.Done()
	r.bar = nil
}
