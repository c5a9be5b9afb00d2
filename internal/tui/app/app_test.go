package app

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leafecho/leafecho/internal/catalog"
	"github.com/leafecho/leafecho/internal/config"
	"github.com/leafecho/leafecho/internal/log"
	"github.com/leafecho/leafecho/internal/session"
	"github.com/leafecho/leafecho/internal/summarize"
	"github.com/leafecho/leafecho/internal/tui"
)

// ============================================================================
// Fakes and helpers
// ============================================================================

type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

type fakeSummarizer struct {
	calls int
}

func (f *fakeSummarizer) Summarize(ctx context.Context, pairs []summarize.Pair) (*summarize.Result, error) {
	f.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &summarize.Result{Keywords: []string{"勇气", "转折", "自由"}, Summary: "一年很长。"}, nil
}

func (f *fakeSummarizer) Name() string { return "fake" }

var fixedNow = time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, deps Deps) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Ritual.RingMs = 0
	cfg.Ritual.RevealMs = 0
	if deps.Machine == nil {
		deps.Machine = session.NewMachineWithSource(catalog.Default(), rand.New(rand.NewPCG(7, 11)))
	}
	if deps.Clipboard == nil {
		deps.Clipboard = &fakeClipboard{}
	}
	deps.Now = func() time.Time { return fixedNow }
	a := New(cfg, deps)
	a.Init()
	return a
}

// isAppMsg reports whether msg is produced by this application rather than a
// bubbles component (blink and spinner ticks are never pumped).
func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case tui.StartMsg, tui.ChooseModeMsg, tui.SelectTopicMsg, tui.ExitTOCMsg,
		tui.FinishTOCMsg, tui.DrawCompleteMsg, tui.ReflectionCompleteMsg,
		tui.ExitEditorMsg, tui.RestartMsg, tui.GoHomeMsg, tui.CopyMsg,
		tui.CopyResultMsg, tui.SummarizeMsg, tui.SummaryResultMsg, tui.RitualStepMsg:
		return true
	}
	return false
}

// pump feeds msg into the app and keeps feeding back application messages
// produced by the returned commands.
func pump(a *App, msg tea.Msg) {
	for i := 0; msg != nil && i < 50; i++ {
		_, cmd := a.Update(msg)
		if cmd == nil {
			return
		}
		next := cmd()
		if !isAppMsg(next) {
			return
		}
		msg = next
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// ring presses the chime and plays the ritual to the end.
func ring(t *testing.T, a *App) {
	t.Helper()
	if a.State().View != session.ViewShake {
		t.Fatalf("ring: view = %s, want shake", a.State().View)
	}
	a.Update(keyType(tea.KeyEnter))
	pump(a, tui.RitualStepMsg{Seq: a.ritualSeq})
}

func wantView(t *testing.T, a *App, want session.View) {
	t.Helper()
	if got := a.State().View; got != want {
		t.Fatalf("view = %s, want %s", got, want)
	}
}

// ============================================================================
// Scenarios
// ============================================================================

func TestQuickSessionFlow(t *testing.T) {
	clip := &fakeClipboard{}
	a := newTestApp(t, Deps{Clipboard: clip})

	pump(a, keyType(tea.KeyEnter))
	wantView(t, a, session.ViewModeSelect)

	pump(a, keyRunes("1"))
	wantView(t, a, session.ViewShake)

	ring(t, a)
	wantView(t, a, session.ViewEditor)
	if n := len(a.State().Queue); n != session.QuickDrawSize {
		t.Fatalf("queue length = %d, want %d", n, session.QuickDrawSize)
	}

	pump(a, keyRunes("辞职"))
	pump(a, keyType(tea.KeyCtrlD))
	pump(a, keyType(tea.KeyCtrlS))
	pump(a, keyRunes("学会了慢下来"))
	pump(a, keyType(tea.KeyCtrlD))

	wantView(t, a, session.ViewSummary)
	answers := a.State().Answers
	if len(answers) != 3 {
		t.Fatalf("answers = %d, want 3", len(answers))
	}
	if answers[0].Answer != "辞职" || !answers[1].Skipped() || answers[2].Answer != "学会了慢下来" {
		t.Errorf("unexpected answers: %+v", answers)
	}
	if !answers[0].Date.Equal(fixedNow) {
		t.Errorf("answer date = %v, want %v", answers[0].Date, fixedNow)
	}

	pump(a, keyRunes("c"))
	if !strings.HasPrefix(clip.text, "【"+answers[0].TopicTitle+"】") {
		t.Errorf("clipboard text = %q", clip.text)
	}
	if !strings.HasSuffix(clip.text, "#2024YearEndReflection") {
		t.Errorf("clipboard missing tag: %q", clip.text)
	}

	pump(a, keyType(tea.KeyRight))
	pump(a, keyRunes("c"))
	if !strings.Contains(clip.text, session.SkipSentinel) {
		t.Errorf("cursor did not advance: %q", clip.text)
	}

	pump(a, keyRunes("r"))
	wantView(t, a, session.ViewShake)
	if a.State().HasAnswers() {
		t.Error("restart kept answers")
	}
}

func TestDeepSessionFlow(t *testing.T) {
	a := newTestApp(t, Deps{})
	first := catalog.Default().Topics()[0]

	pump(a, tui.StartMsg{})
	pump(a, keyRunes("2"))
	wantView(t, a, session.ViewTOC)

	// Finishing without answers is refused by the view.
	pump(a, keyRunes("f"))
	wantView(t, a, session.ViewTOC)

	pump(a, keyType(tea.KeyEnter))
	wantView(t, a, session.ViewShake)
	if a.State().SelectedTopicID != first.ID {
		t.Fatalf("selected topic = %q, want %q", a.State().SelectedTopicID, first.ID)
	}

	ring(t, a)
	wantView(t, a, session.ViewEditor)
	for range first.Questions {
		pump(a, keyType(tea.KeyCtrlS))
	}

	wantView(t, a, session.ViewTOC)
	if !a.State().IsCompleted(first.ID) {
		t.Fatal("topic not marked completed")
	}
	if a.tocView.Selected() != 1 {
		t.Errorf("cursor should move past the completed topic, got %d", a.tocView.Selected())
	}

	// Selecting a completed topic is a no-op.
	pump(a, tui.SelectTopicMsg{TopicID: first.ID})
	wantView(t, a, session.ViewTOC)

	pump(a, keyRunes("f"))
	wantView(t, a, session.ViewSummary)
	if n := len(a.State().Answers); n != len(first.Questions) {
		t.Errorf("answers = %d, want %d", n, len(first.Questions))
	}

	pump(a, keyRunes("h"))
	wantView(t, a, session.ViewModeSelect)
	if a.State().HasAnswers() || len(a.State().CompletedTopicIDs) != 0 {
		t.Error("going home kept session data")
	}
}

func TestEditorRejectsBlankSubmit(t *testing.T) {
	a := newTestApp(t, Deps{})
	pump(a, tui.StartMsg{})
	pump(a, tui.ChooseModeMsg{Mode: session.ModeQuick})
	ring(t, a)

	pump(a, keyRunes("   "))
	pump(a, keyType(tea.KeyCtrlD))
	if got := a.editorView.Reflection().Index(); got != 0 {
		t.Errorf("blank submit advanced to %d", got)
	}

	pump(a, keyType(tea.KeyEsc))
	wantView(t, a, session.ViewModeSelect)
	if a.State().HasAnswers() {
		t.Error("exiting the editor recorded answers")
	}
}

func TestRejectedIntentIsLoggedAndIgnored(t *testing.T) {
	dir := t.TempDir()
	logger, err := log.NewLogger(dir, log.WithDebug(true), log.WithRun("test-run"))
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	a := newTestApp(t, Deps{Logger: logger})

	before := a.State()
	pump(a, tui.FinishTOCMsg{})
	pump(a, tui.ReflectionCompleteMsg{})
	if a.State().View != before.View {
		t.Fatalf("rejected intent changed view to %s", a.State().View)
	}
	logger.Close()

	events, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	rejected := 0
	for _, e := range events {
		if e.Event == log.EventIntentRejected {
			rejected++
			if e.Run != "test-run" {
				t.Errorf("run id = %q", e.Run)
			}
		}
	}
	if rejected != 2 {
		t.Errorf("rejected events = %d, want 2", rejected)
	}
}

func TestSummaryRequestSingleFlight(t *testing.T) {
	sum := &fakeSummarizer{}
	a := newTestApp(t, Deps{Summarizer: sum})
	reachSummary(t, a)

	pump(a, keyRunes("s"))
	if a.tracker.Status() != summarize.StatusDone {
		t.Fatalf("status = %s, want done", a.tracker.Status())
	}
	if !strings.Contains(a.View(), "勇气") {
		t.Error("keywords not rendered")
	}

	pump(a, keyRunes("s"))
	if sum.calls != 1 {
		t.Errorf("summarizer called %d times, want 1", sum.calls)
	}
}

func TestStaleSummaryIsDiscarded(t *testing.T) {
	sum := &fakeSummarizer{}
	a := newTestApp(t, Deps{Summarizer: sum})
	reachSummary(t, a)

	_, cmd := a.Update(tui.SummarizeMsg{})
	if cmd == nil {
		t.Fatal("expected a summary command")
	}
	if a.tracker.Status() != summarize.StatusPending {
		t.Fatalf("status = %s, want pending", a.tracker.Status())
	}

	pump(a, tui.GoHomeMsg{})
	wantView(t, a, session.ViewModeSelect)

	pump(a, cmd())
	if a.tracker.Status() != summarize.StatusIdle {
		t.Errorf("stale result applied: status = %s", a.tracker.Status())
	}
}

func TestSummarizeWithoutProvider(t *testing.T) {
	a := newTestApp(t, Deps{})
	reachSummary(t, a)

	pump(a, keyRunes("s"))
	if a.tracker.Status() != summarize.StatusIdle {
		t.Errorf("disabled provider started a request: %s", a.tracker.Status())
	}
}

func TestDoubleCtrlCQuits(t *testing.T) {
	a := newTestApp(t, Deps{})

	_, cmd := a.Update(keyType(tea.KeyCtrlC))
	if !a.model.CtrlCPending {
		t.Fatal("first ctrl+c should arm the confirmation")
	}
	if cmd == nil {
		t.Fatal("expected reset timer")
	}
	if !strings.Contains(a.View(), "Ctrl+C again") {
		t.Error("confirmation prompt not rendered")
	}

	_, cmd = a.Update(keyType(tea.KeyCtrlC))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("second ctrl+c should quit")
	}
}

func TestEveryViewHasARenderer(t *testing.T) {
	a := newTestApp(t, Deps{})
	for _, v := range session.Views() {
		if _, ok := a.render(v); !ok {
			t.Errorf("no renderer for view %q", v)
		}
	}
}

func TestEmptySummaryState(t *testing.T) {
	a := newTestApp(t, Deps{})
	a.model.State.View = session.ViewSummary
	a.enterView()

	if !strings.Contains(a.View(), "暂无回答") {
		t.Error("empty summary should render the empty state")
	}
	pump(a, keyRunes("c"))
	pump(a, keyType(tea.KeyRight))
	wantView(t, a, session.ViewSummary)
}

func reachSummary(t *testing.T, a *App) {
	t.Helper()
	pump(a, tui.StartMsg{})
	pump(a, tui.ChooseModeMsg{Mode: session.ModeQuick})
	ring(t, a)
	for i := 0; i < session.QuickDrawSize; i++ {
		pump(a, keyRunes("answer"))
		pump(a, keyType(tea.KeyCtrlD))
	}
	wantView(t, a, session.ViewSummary)
}
