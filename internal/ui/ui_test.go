package ui

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

func testTheme() *Theme {
	return &Theme{NoColor: true, Colors: NewTheme(false).Colors}
}

func headless() *HeadlessManager {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	return hm
}

// newTestProgram builds a tea.Program that needs no terminal.
func newTestProgram(m tea.Model) *tea.Program {
	return tea.NewProgram(m,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)
}

func startTestProgram(p *tea.Program) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run()
	}()
	time.Sleep(10 * time.Millisecond)
	return done
}

func waitForProgram(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("tea.Program did not exit within 2 seconds")
	}
}

func TestNewTheme_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !NewTheme(false).NoColor {
		t.Error("NO_COLOR should disable colors")
	}
}

func TestHeadlessManager_Force(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("forced headless should be headless")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("forced interactive should not be headless")
	}
	hm.ClearForce()
	var nilManager *HeadlessManager
	if !nilManager.IsHeadless() {
		t.Error("nil manager should be headless")
	}
}

func TestHeadlessProgressBar_Lines(t *testing.T) {
	var buf strings.Builder
	bar := newProgressImpl(testTheme(), headless(), &buf).Start("Generating", 3)

	bar.SetTitle("directories")
	bar.Increment(1)
	bar.SetTitle("ignore")
	bar.Increment(5)
	bar.Done()

	want := "(1/3) directories\n(3/3) ignore\n(3/3) ignore\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestHeadlessSpinner_PrintsTitles(t *testing.T) {
	var buf strings.Builder
	sp := newProgressImpl(testTheme(), headless(), &buf).Spinner("Creating repository")
	sp.SetTitle("Pushing")
	sp.Stop()

	if buf.String() != "Creating repository\nPushing\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestStepReporter(t *testing.T) {
	var buf strings.Builder
	r := NewStepReporter(newProgressImpl(testTheme(), headless(), &buf), "Generating")

	r.Step("ignored before Begin")
	r.Begin(2)
	r.Step("manifest")
	r.Step("entry")
	r.End()
	r.End()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "(1/2) manifest" || lines[1] != "(2/2) entry" {
		t.Errorf("unexpected lines: %q", lines)
	}
}

func TestLiveIndicator_Spinner(t *testing.T) {
	p := newTestProgram(newSpinModel(testTheme(), "Cloning"))
	s := &liveIndicator{program: p}
	done := startTestProgram(p)

	s.SetTitle("Checking out")
	s.Stop()
	s.Stop()

	waitForProgram(t, done)
}

func TestLiveIndicator_Bar(t *testing.T) {
	p := newTestProgram(newBarModel(testTheme(), "Generating", 4))
	pb := &liveIndicator{program: p}
	done := startTestProgram(p)

	pb.Increment(1)
	pb.SetTitle("readme")
	pb.Increment(1)
	pb.Done()
	pb.Done()

	waitForProgram(t, done)
}

func TestIndicatorModel_BarClampsAndViews(t *testing.T) {
	m := newBarModel(NewTheme(false), "manifest", 2)
	updated, _ := m.Update(advanceMsg(5))
	im := updated.(indicatorModel)
	if im.current != 2 {
		t.Errorf("current = %d, want 2", im.current)
	}
	if !strings.Contains(im.View(), "(2/2) manifest") {
		t.Errorf("view = %q", im.View())
	}

	updated, _ = im.Update(progress.FrameMsg{})
	if updated.(indicatorModel).done {
		t.Error("FrameMsg should not finish the bar")
	}

	updated, cmd := im.Update(finishMsg{})
	if updated.(indicatorModel).View() != "" {
		t.Error("finished bar should render nothing")
	}
	if cmd == nil {
		t.Error("finish should quit the program")
	}
}

func TestIndicatorModel_SpinnerView(t *testing.T) {
	m := newSpinModel(testTheme(), "Cloning")
	if m.Init() == nil {
		t.Error("spinner should start ticking")
	}
	updated, _ := m.Update(retitleMsg("Pushing"))
	if !strings.Contains(updated.View(), "Pushing") {
		t.Errorf("view = %q", updated.View())
	}
}

func TestRenderMarkdown_Plain(t *testing.T) {
	out, err := RenderMarkdown(testTheme(), "# my-app\n\nA **fast** start.\n", 60)
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	if !strings.Contains(out, "my-app") || !strings.Contains(out, "fast") {
		t.Errorf("rendered output missing content: %q", out)
	}
}
