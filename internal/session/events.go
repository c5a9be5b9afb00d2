package session

// Event is a user intent applied to the state machine.
type Event interface {
	eventName() string
}

// Start leaves the welcome screen.
type Start struct{}

// ChooseMode picks quick or deep mode and resets the session.
type ChooseMode struct {
	Mode Mode
}

// SelectTopic picks a topic from the table of contents (deep mode).
type SelectTopic struct {
	TopicID string
}

// ExitTOC leaves the table of contents for mode selection.
type ExitTOC struct{}

// FinishTOC ends a deep session and shows the summary.
type FinishTOC struct{}

// DrawComplete fires when the ritual finishes; it builds the question queue.
type DrawComplete struct{}

// ReflectionComplete hands the answers of one editor run to the machine.
type ReflectionComplete struct {
	Answers []UserAnswer
}

// ExitEditor abandons the current editor run.
type ExitEditor struct{}

// Restart begins a new session in the same mode from the summary.
type Restart struct{}

// GoHome returns from the summary to mode selection.
type GoHome struct{}

func (Start) eventName() string              { return "start" }
func (ChooseMode) eventName() string         { return "choose_mode" }
func (SelectTopic) eventName() string        { return "select_topic" }
func (ExitTOC) eventName() string            { return "exit_toc" }
func (FinishTOC) eventName() string          { return "finish_toc" }
func (DrawComplete) eventName() string       { return "draw_complete" }
func (ReflectionComplete) eventName() string { return "reflection_complete" }
func (ExitEditor) eventName() string         { return "exit_editor" }
func (Restart) eventName() string            { return "restart" }
func (GoHome) eventName() string             { return "go_home" }

// EventName returns the stable name of ev, used in logs.
func EventName(ev Event) string {
	if ev == nil {
		return ""
	}
	return ev.eventName()
}
