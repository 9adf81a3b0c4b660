package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 32

type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress that draws on stdout when a terminal is
// attached and falls back to plain lines otherwise.
func NewProgress(theme *Theme, hm *HeadlessManager) Progress {
	return newProgressImpl(theme, hm, os.Stdout)
}

// NewProgressWriter is NewProgress with plain lines going to w.
func NewProgressWriter(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	return newProgressImpl(theme, hm, w)
}

func newProgressImpl(theme *Theme, hm *HeadlessManager, w io.Writer) *progressImpl {
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

// plain reports whether indicators should be written as log lines.
func (p *progressImpl) plain() bool {
	return p.headless.IsHeadless() || p.theme.NoColor
}

func (p *progressImpl) Start(title string, total int) ProgressBar {
	if p.plain() {
		return &lineBar{title: title, total: total, w: p.writer}
	}
	return startLive(newBarModel(p.theme, title, total))
}

func (p *progressImpl) Spinner(title string) Spinner {
	if p.plain() {
		_, _ = fmt.Fprintln(p.writer, title)
		return &lineSpinner{w: p.writer}
	}
	return startLive(newSpinModel(p.theme, title))
}

// Messages accepted by indicatorModel.
type (
	advanceMsg int
	retitleMsg string
	finishMsg  struct{}
)

// indicatorModel renders either a gradient bar (total > 0) or a spinner.
type indicatorModel struct {
	bar     *progress.Model
	spin    *spinner.Model
	title   string
	current int
	total   int
	done    bool
}

func newBarModel(theme *Theme, title string, total int) indicatorModel {
	opts := []progress.Option{progress.WithWidth(barWidth), progress.WithDefaultGradient()}
	if !theme.NoColor {
		opts[1] = progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary)
	}
	bar := progress.New(opts...)
	return indicatorModel{bar: &bar, title: title, total: total}
}

func newSpinModel(theme *Theme, title string) indicatorModel {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return indicatorModel{spin: &s, title: title}
}

func (m indicatorModel) Init() tea.Cmd {
	if m.spin != nil {
		return m.spin.Tick
	}
	return nil
}

func (m indicatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case advanceMsg:
		m.current = min(m.current+int(msg), m.total)
	case retitleMsg:
		m.title = string(msg)
	case finishMsg:
		m.current, m.done = m.total, true
		cmd = tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			cmd = tea.Quit
		}
	case spinner.TickMsg:
		if m.spin != nil {
			next, c := m.spin.Update(msg)
			m.spin, cmd = &next, c
		}
	case progress.FrameMsg:
		if m.bar != nil {
			next, c := m.bar.Update(msg)
			bar := next.(progress.Model)
			m.bar, cmd = &bar, c
		}
	}
	return m, cmd
}

func (m indicatorModel) View() string {
	switch {
	case m.done:
		return ""
	case m.spin != nil:
		return m.spin.View() + " " + m.title + "\n"
	}
	var ratio float64
	if m.total > 0 {
		ratio = float64(m.current) / float64(m.total)
	}
	return m.bar.ViewAs(ratio) + " " + stepLine(m.current, m.total, m.title) + "\n"
}

// liveIndicator drives an indicatorModel in its own tea.Program. It
// satisfies both ProgressBar and Spinner.
type liveIndicator struct {
	program *tea.Program
	once    sync.Once
}

func startLive(m indicatorModel) *liveIndicator {
	l := &liveIndicator{program: tea.NewProgram(m)}
	go func() { _, _ = l.program.Run() }()
	return l
}

func (l *liveIndicator) Increment(n int)       { l.program.Send(advanceMsg(n)) }
func (l *liveIndicator) SetTitle(title string) { l.program.Send(retitleMsg(title)) }
func (l *liveIndicator) Done()                 { l.Stop() }

func (l *liveIndicator) Stop() {
	l.once.Do(func() {
		l.program.Send(finishMsg{})
		l.program.Wait()
	})
}

// lineBar prints one counter line per increment.
type lineBar struct {
	title   string
	current int
	total   int
	w       io.Writer
}

func (b *lineBar) Increment(n int) {
	b.current = min(b.current+n, b.total)
	b.emit()
}

func (b *lineBar) SetTitle(title string) { b.title = title }

func (b *lineBar) Done() {
	b.current = b.total
	b.emit()
}

func (b *lineBar) emit() {
	_, _ = fmt.Fprintln(b.w, stepLine(b.current, b.total, b.title))
}

// lineSpinner prints each title it is given.
type lineSpinner struct {
	w io.Writer
}

func (s *lineSpinner) SetTitle(title string) { _, _ = fmt.Fprintln(s.w, title) }
func (s *lineSpinner) Stop()                 {}

// stepLine formats a counter such as "(3/9) Writing manifest".
func stepLine(current, total int, title string) string {
	return fmt.Sprintf("(%d/%d) %s", current, total, title)
}
