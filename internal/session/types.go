// Package session implements the reflection session: its data model, the
// view state machine driving navigation, question drawing, answer
// accumulation and summary browsing.
package session

import (
	"slices"
	"time"

	"github.com/leafecho/leafecho/internal/catalog"
)

// Mode selects how questions are drawn for a session.
type Mode string

const (
	ModeQuick Mode = "quick" // one random topic, QuickDrawSize of its questions
	ModeDeep  Mode = "deep"  // topic by topic through the table of contents
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeQuick || m == ModeDeep
}

// View is the screen the session is currently on.
type View string

const (
	ViewWelcome    View = "welcome"
	ViewModeSelect View = "mode_select"
	ViewTOC        View = "toc"
	ViewShake      View = "shake"
	ViewEditor     View = "editor"
	ViewSummary    View = "summary"
)

// Views lists every view in flow order.
func Views() []View {
	return []View{ViewWelcome, ViewModeSelect, ViewTOC, ViewShake, ViewEditor, ViewSummary}
}

// SkipSentinel is stored as the answer text of a skipped question.
const SkipSentinel = "（跳过）"

// SessionItem pairs a question with the topic that owns it.
type SessionItem struct {
	Question catalog.Question
	Topic    catalog.Topic
}

// UserAnswer is one recorded answer. Question text and topic title are
// captured when the answer is made and never re-derived from the catalog.
type UserAnswer struct {
	QuestionID   int       `json:"question_id"`
	QuestionText string    `json:"question_text"`
	TopicTitle   string    `json:"topic_title"`
	Answer       string    `json:"answer"`
	Date         time.Time `json:"date"`
}

// Skipped reports whether the user chose not to answer.
func (a UserAnswer) Skipped() bool {
	return a.Answer == SkipSentinel
}

// State is the complete session state owned by the state machine.
type State struct {
	View              View
	Mode              Mode
	SelectedTopicID   string
	CompletedTopicIDs []string
	Queue             []SessionItem
	Answers           []UserAnswer
}

// NewState returns the initial state: the welcome view in quick mode.
func NewState() State {
	return State{
		View: ViewWelcome,
		Mode: ModeQuick,
	}
}

// IsCompleted reports whether topic id has been finished in this session.
func (s State) IsCompleted(id string) bool {
	return slices.Contains(s.CompletedTopicIDs, id)
}

// HasAnswers reports whether at least one answer has been recorded.
func (s State) HasAnswers() bool {
	return len(s.Answers) > 0
}

// clone returns a copy of s whose slices do not alias s.
func (s State) clone() State {
	s.CompletedTopicIDs = slices.Clone(s.CompletedTopicIDs)
	s.Queue = slices.Clone(s.Queue)
	s.Answers = slices.Clone(s.Answers)
	return s
}
