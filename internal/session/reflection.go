package session

import (
	"strings"
	"time"
)

// Reflection walks one editor run over a question queue, front to back.
// Draft text and hint visibility belong to the current question only and
// reset whenever the index moves.
type Reflection struct {
	items    []SessionItem
	index    int
	draft    string
	showHint bool
	answers  []UserAnswer
	now      func() time.Time
}

// ReflectionOption configures a Reflection.
type ReflectionOption func(*Reflection)

// WithClock overrides the clock used to stamp answers.
func WithClock(now func() time.Time) ReflectionOption {
	return func(r *Reflection) {
		r.now = now
	}
}

// NewReflection starts a run over items.
func NewReflection(items []SessionItem, opts ...ReflectionOption) *Reflection {
	r := &Reflection{
		items:   items,
		answers: make([]UserAnswer, 0, len(items)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len returns the queue length.
func (r *Reflection) Len() int { return len(r.items) }

// Index returns the zero-based position of the current question.
func (r *Reflection) Index() int { return r.index }

// Done reports whether every question has been answered or skipped.
func (r *Reflection) Done() bool { return r.index >= len(r.items) }

// Current returns the item being answered.
func (r *Reflection) Current() (SessionItem, bool) {
	if r.Done() {
		return SessionItem{}, false
	}
	return r.items[r.index], true
}

// IsLast reports whether the current question is the final one.
func (r *Reflection) IsLast() bool {
	return r.index == len(r.items)-1
}

// Progress returns the fraction of the run reached, counting the current
// question, in [0, 1].
func (r *Reflection) Progress() float64 {
	if len(r.items) == 0 {
		return 1
	}
	pos := r.index + 1
	if pos > len(r.items) {
		pos = len(r.items)
	}
	return float64(pos) / float64(len(r.items))
}

// Draft returns the text typed for the current question.
func (r *Reflection) Draft() string { return r.draft }

// SetDraft replaces the draft for the current question.
func (r *Reflection) SetDraft(text string) {
	if r.Done() {
		return
	}
	r.draft = text
}

// ShowHint reports whether the hint is visible.
func (r *Reflection) ShowHint() bool { return r.showHint }

// ToggleHint flips hint visibility for the current question.
func (r *Reflection) ToggleHint() {
	if r.Done() {
		return
	}
	r.showHint = !r.showHint
}

// CanSubmit reports whether the draft is non-blank.
func (r *Reflection) CanSubmit() bool {
	return !r.Done() && strings.TrimSpace(r.draft) != ""
}

// Submit records the draft as the answer to the current question.
// A blank draft is rejected (ok false). done is true once the run is over.
func (r *Reflection) Submit() (done bool, ok bool) {
	if !r.CanSubmit() {
		return r.Done(), false
	}
	r.record(r.draft)
	return r.Done(), true
}

// Skip records SkipSentinel for the current question.
func (r *Reflection) Skip() (done bool) {
	if r.Done() {
		return true
	}
	r.record(SkipSentinel)
	return r.Done()
}

// Answers returns the answers recorded so far, in answering order.
func (r *Reflection) Answers() []UserAnswer {
	out := make([]UserAnswer, len(r.answers))
	copy(out, r.answers)
	return out
}

func (r *Reflection) record(text string) {
	item := r.items[r.index]
	r.answers = append(r.answers, UserAnswer{
		QuestionID:   item.Question.ID,
		QuestionText: item.Question.Text,
		TopicTitle:   item.Topic.TitleCn,
		Answer:       text,
		Date:         r.now().UTC(),
	})
	r.index++
	r.draft = ""
	r.showHint = false
}
