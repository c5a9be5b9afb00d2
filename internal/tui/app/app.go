// Package app provides the main TUI application that wires all views together.
package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leafecho/leafecho/internal/catalog"
	"github.com/leafecho/leafecho/internal/config"
	"github.com/leafecho/leafecho/internal/log"
	"github.com/leafecho/leafecho/internal/session"
	"github.com/leafecho/leafecho/internal/share"
	"github.com/leafecho/leafecho/internal/summarize"
	"github.com/leafecho/leafecho/internal/tui"
	"github.com/leafecho/leafecho/internal/tui/commands"
	"github.com/leafecho/leafecho/internal/tui/views"
)

// ctrlCTimeout is how long the first Ctrl+C waits for a second one.
const ctrlCTimeout = time.Second

// Deps are the collaborators of an App. Nil fields get defaults.
type Deps struct {
	Machine    *session.Machine
	Summarizer summarize.Summarizer
	Clipboard  share.Clipboard
	Logger     *log.Logger
	Now        func() time.Time
}

// App is the main TUI application that wires all views together.
type App struct {
	model *tui.Model

	machine    *session.Machine
	summarizer summarize.Summarizer
	tracker    summarize.Tracker
	copier     *share.Copier
	logger     *log.Logger
	now        func() time.Time
	ctx        context.Context
	ritualSeq  int

	// View models
	welcomeView views.WelcomeModel
	modeView    views.ModeModel
	tocView     views.TOCModel
	shakeView   views.ShakeModel
	editorView  views.EditorModel
	summaryView views.SummaryModel
}

// New creates a new App with the given configuration.
func New(cfg *config.Config, deps Deps) *App {
	model := tui.NewModel(cfg)

	if deps.Machine == nil {
		deps.Machine = session.NewMachine(catalog.Default())
	}
	if deps.Summarizer == nil {
		deps.Summarizer = summarize.Disabled{}
	}
	if deps.Clipboard == nil {
		deps.Clipboard = share.SystemClipboard{}
	}
	if deps.Logger == nil {
		deps.Logger = log.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &App{
		model:       model,
		machine:     deps.Machine,
		summarizer:  deps.Summarizer,
		copier:      share.NewCopier(deps.Clipboard, model.Cfg.Share.Tag),
		logger:      deps.Logger,
		now:         deps.Now,
		ctx:         context.Background(),
		welcomeView: views.NewWelcomeModel(model.Width),
	}
}

// State returns the current session state.
func (a *App) State() session.State {
	return a.model.State
}

// Init returns the initial command for the TUI.
func (a *App) Init() tea.Cmd {
	a.logger.Append(log.LogEvent{Event: log.EventSessionStarted, View: string(a.model.State.View)})
	return a.welcomeView.Init()
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		return a, a.updateView(msg)

	case tea.KeyMsg:
		if msg.String() == tui.KeyCtrlC {
			if a.model.CtrlCPending {
				// Second press within timeout - exit
				a.shutdown()
				return a, tea.Quit
			}
			a.model.CtrlCPending = true
			return a, commands.CtrlCResetCmd(ctrlCTimeout)
		}

	case tui.CtrlCResetMsg:
		a.model.CtrlCPending = false
		return a, nil
	}

	if ev, ok := eventFor(msg); ok {
		return a, a.apply(ev)
	}

	switch msg := msg.(type) {
	case tui.CopyMsg:
		if a.model.State.View != session.ViewSummary {
			return a, nil
		}
		return a, commands.CopyCmd(a.copier, msg.Answer)

	case tui.CopyResultMsg:
		return a, a.handleCopyResult(msg)

	case tui.SummarizeMsg:
		return a, a.beginSummary()

	case tui.SummaryResultMsg:
		a.resolveSummary(msg)
		return a, nil
	}

	return a, a.updateView(msg)
}

// eventFor converts an intent message into a state machine event.
func eventFor(msg tea.Msg) (session.Event, bool) {
	switch msg := msg.(type) {
	case tui.StartMsg:
		return session.Start{}, true
	case tui.ChooseModeMsg:
		return session.ChooseMode{Mode: msg.Mode}, true
	case tui.SelectTopicMsg:
		return session.SelectTopic{TopicID: msg.TopicID}, true
	case tui.ExitTOCMsg:
		return session.ExitTOC{}, true
	case tui.FinishTOCMsg:
		return session.FinishTOC{}, true
	case tui.DrawCompleteMsg:
		return session.DrawComplete{}, true
	case tui.ReflectionCompleteMsg:
		return session.ReflectionComplete{Answers: msg.Answers}, true
	case tui.ExitEditorMsg:
		return session.ExitEditor{}, true
	case tui.RestartMsg:
		return session.Restart{}, true
	case tui.GoHomeMsg:
		return session.GoHome{}, true
	}
	return nil, false
}

// ============================================================================
// State Transitions
// ============================================================================

// apply runs ev through the machine. Rejected intents are logged at debug
// level and otherwise ignored.
func (a *App) apply(ev session.Event) tea.Cmd {
	prev := a.model.State
	next, err := a.machine.Apply(prev, ev)
	if err != nil {
		var rej *session.RejectedError
		reason := err.Error()
		if errors.As(err, &rej) {
			reason = rej.Reason
		}
		a.logger.Append(log.LogEvent{
			Event:  log.EventIntentRejected,
			View:   string(prev.View),
			Reason: session.EventName(ev) + ": " + reason,
		})
		return nil
	}

	a.model.State = next
	a.logTransition(prev, next, ev)

	if prev.View == session.ViewSummary {
		a.tracker.Reset()
	}
	return a.enterView()
}

func (a *App) logTransition(prev, next session.State, ev session.Event) {
	a.logger.Append(log.LogEvent{
		Event:  log.EventTransition,
		From:   string(prev.View),
		View:   string(next.View),
		Reason: session.EventName(ev),
	})

	switch e := ev.(type) {
	case session.ChooseMode:
		a.logger.Append(log.LogEvent{Event: log.EventModeSelected, Mode: string(e.Mode)})
	case session.SelectTopic:
		a.logger.Append(log.LogEvent{Event: log.EventTopicSelected, Mode: string(next.Mode), Topic: e.TopicID})
	case session.DrawComplete:
		a.logger.Append(log.LogEvent{
			Event: log.EventDrawComplete,
			Mode:  string(next.Mode),
			Topic: topicOf(next.Queue),
			Count: len(next.Queue),
		})
	case session.ReflectionComplete:
		a.logger.Append(log.LogEvent{
			Event: log.EventReflectionComplete,
			Mode:  string(next.Mode),
			Topic: prev.SelectedTopicID,
			Count: len(e.Answers),
		})
	}
}

func topicOf(queue []session.SessionItem) string {
	if len(queue) == 0 {
		return ""
	}
	return queue[0].Topic.ID
}

// enterView builds the view model for the current view.
func (a *App) enterView() tea.Cmd {
	s := a.model.State
	w := a.model.Width

	switch s.View {
	case session.ViewWelcome:
		a.welcomeView = views.NewWelcomeModel(w)
		return a.welcomeView.Init()

	case session.ViewModeSelect:
		a.modeView = views.NewModeModel(s.Mode, w)
		return a.modeView.Init()

	case session.ViewTOC:
		a.tocView = views.NewTOCModel(a.machine.Catalog().Topics(), s, w)
		return a.tocView.Init()

	case session.ViewShake:
		a.ritualSeq++
		title := ""
		if t, ok := a.machine.Catalog().Topic(s.SelectedTopicID); ok {
			title = t.TitleCn
		}
		a.shakeView = views.NewShakeModel(a.ritualSeq, s.Mode, title,
			a.model.Cfg.RingDuration(), a.model.Cfg.RevealDuration(), w)
		return a.shakeView.Init()

	case session.ViewEditor:
		a.editorView = views.NewEditorModel(s.Queue, w, session.WithClock(a.now))
		return a.editorView.Init()

	case session.ViewSummary:
		a.summaryView = views.NewSummaryModel(a.machine.Catalog(), s.Answers, summarize.Enabled(a.summarizer), w)
		return a.summaryView.Init()
	}
	return nil
}

// updateView forwards msg to the active view.
func (a *App) updateView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.model.State.View {
	case session.ViewWelcome:
		a.welcomeView, cmd = a.welcomeView.Update(msg)
	case session.ViewModeSelect:
		a.modeView, cmd = a.modeView.Update(msg)
	case session.ViewTOC:
		a.tocView, cmd = a.tocView.Update(msg)
	case session.ViewShake:
		a.shakeView, cmd = a.shakeView.Update(msg)
	case session.ViewEditor:
		a.editorView, cmd = a.editorView.Update(msg)
	case session.ViewSummary:
		a.summaryView, cmd = a.summaryView.Update(msg)
	}
	return cmd
}

// ============================================================================
// Summary Actions
// ============================================================================

func (a *App) handleCopyResult(msg tui.CopyResultMsg) tea.Cmd {
	if a.model.State.View != session.ViewSummary {
		return nil
	}
	if msg.Err != nil {
		a.summaryView.SetNotice(tui.ErrorStyle.Render("复制失败：" + msg.Err.Error()))
		a.logger.Append(log.LogEvent{Event: log.EventAnswerCopied, Error: msg.Err.Error()})
		return nil
	}
	a.summaryView.SetNotice(tui.SuccessStyle.Render("已复制到剪贴板 ✓"))
	a.logger.Append(log.LogEvent{Event: log.EventAnswerCopied, View: string(session.ViewSummary)})
	return nil
}

func (a *App) beginSummary() tea.Cmd {
	s := a.model.State
	if s.View != session.ViewSummary || !s.HasAnswers() || !summarize.Enabled(a.summarizer) {
		return nil
	}
	ctx, token, ok := a.tracker.Begin(a.ctx)
	if !ok {
		return nil
	}
	a.logger.Append(log.LogEvent{
		Event:    log.EventSummaryRequested,
		Provider: a.summarizer.Name(),
		Count:    len(s.Answers),
	})
	a.syncSummary()
	pairs := summarize.PairsFrom(s.Answers)
	return commands.SummarizeCmd(ctx, a.summarizer, pairs, token, a.model.Cfg.Summarizer.Timeout())
}

func (a *App) resolveSummary(msg tui.SummaryResultMsg) {
	if !a.tracker.Resolve(msg.Token, msg.Result, msg.Err) {
		return
	}
	if msg.Err != nil {
		a.logger.Append(log.LogEvent{Event: log.EventSummaryFailed, Provider: a.summarizer.Name(), Error: msg.Err.Error()})
	} else {
		a.logger.Append(log.LogEvent{Event: log.EventSummaryComplete, Provider: a.summarizer.Name(), Count: len(msg.Result.Keywords)})
	}
	a.syncSummary()
}

func (a *App) syncSummary() {
	a.summaryView.SetSummary(a.tracker.Status(), a.tracker.Result(), a.tracker.Err())
}

// shutdown abandons in-flight work and records the end of the session.
func (a *App) shutdown() {
	a.tracker.Reset()
	a.logger.Append(log.LogEvent{
		Event: log.EventSessionEnded,
		View:  string(a.model.State.View),
		Count: len(a.model.State.Answers),
	})
}

// ============================================================================
// Rendering
// ============================================================================

// View renders the current application state.
func (a *App) View() string {
	content, _ := a.render(a.model.State.View)
	return lipgloss.Place(
		a.model.Width,
		a.model.Height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// render draws view v. ok is false for a view without a renderer.
func (a *App) render(v session.View) (content string, ok bool) {
	p := a.model.CtrlCPending
	switch v {
	case session.ViewWelcome:
		a.welcomeView.SetCtrlCPending(p)
		return a.welcomeView.View(), true
	case session.ViewModeSelect:
		a.modeView.SetCtrlCPending(p)
		return a.modeView.View(), true
	case session.ViewTOC:
		a.tocView.SetCtrlCPending(p)
		return a.tocView.View(), true
	case session.ViewShake:
		a.shakeView.SetCtrlCPending(p)
		return a.shakeView.View(), true
	case session.ViewEditor:
		a.editorView.SetCtrlCPending(p)
		return a.editorView.View(), true
	case session.ViewSummary:
		a.summaryView.SetCtrlCPending(p)
		return a.summaryView.View(), true
	}
	return "Unknown state", false
}
