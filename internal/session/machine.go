package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/leafecho/leafecho/internal/catalog"
)

// ErrRejected marks an intent that was not applied. Rejections are silent
// no-ops for the user; callers only log them.
var ErrRejected = errors.New("intent rejected")

// RejectedError describes why an event left the state unchanged.
type RejectedError struct {
	View   View
	Event  string
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s in %s: %s", e.Event, e.View, e.Reason)
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}

// Rand is the random source used to draw questions.
type Rand interface {
	IntN(n int) int
}

// Machine applies events to session state. It holds no session data itself;
// every transition is a function from (state, event) to a new state.
// A Machine must not be used from more than one goroutine.
type Machine struct {
	catalog *catalog.Catalog
	rng     Rand
}

// NewMachine returns a Machine over cat seeded from the clock.
func NewMachine(cat *catalog.Catalog) *Machine {
	seed := uint64(time.Now().UnixNano())
	return NewMachineWithSource(cat, rand.New(rand.NewPCG(seed, seed>>32|1)))
}

// NewMachineWithSource returns a Machine drawing from rng.
func NewMachineWithSource(cat *catalog.Catalog, rng Rand) *Machine {
	return &Machine{catalog: cat, rng: rng}
}

// Catalog returns the catalog the machine draws from.
func (m *Machine) Catalog() *catalog.Catalog {
	return m.catalog
}

// Apply returns the state that results from ev in s. s is never modified.
// A rejected event returns s unchanged and an error wrapping ErrRejected.
func (m *Machine) Apply(s State, ev Event) (State, error) {
	next := s.clone()

	reject := func(reason string) (State, error) {
		return s, &RejectedError{View: s.View, Event: EventName(ev), Reason: reason}
	}

	switch e := ev.(type) {
	case Start:
		if s.View != ViewWelcome {
			return reject("not on welcome")
		}
		next.View = ViewModeSelect

	case ChooseMode:
		if s.View != ViewModeSelect {
			return reject("not on mode selection")
		}
		if !e.Mode.Valid() {
			return reject(fmt.Sprintf("unknown mode %q", e.Mode))
		}
		next.Mode = e.Mode
		next.CompletedTopicIDs = nil
		next.Answers = nil
		next.SelectedTopicID = ""
		if e.Mode == ModeDeep {
			next.View = ViewTOC
		} else {
			next.View = ViewShake
		}

	case SelectTopic:
		if s.View != ViewTOC {
			return reject("not on table of contents")
		}
		if s.IsCompleted(e.TopicID) {
			return reject(fmt.Sprintf("topic %s already completed", e.TopicID))
		}
		if _, ok := m.catalog.Topic(e.TopicID); !ok {
			return reject(fmt.Sprintf("unknown topic %s", e.TopicID))
		}
		next.SelectedTopicID = e.TopicID
		next.View = ViewShake

	case ExitTOC:
		if s.View != ViewTOC {
			return reject("not on table of contents")
		}
		next.CompletedTopicIDs = nil
		next.Answers = nil
		next.View = ViewModeSelect

	case FinishTOC:
		if s.View != ViewTOC {
			return reject("not on table of contents")
		}
		next.View = ViewSummary

	case DrawComplete:
		if s.View != ViewShake {
			return reject("not on the ritual")
		}
		next.Queue = m.Draw(s.Mode, s.SelectedTopicID)
		if len(next.Queue) == 0 {
			// Inconsistent lookup: fall back to the summary, which shows its
			// empty state when nothing has been answered.
			next.View = ViewSummary
			break
		}
		next.View = ViewEditor

	case ReflectionComplete:
		if s.View != ViewEditor {
			return reject("not in the editor")
		}
		if len(e.Answers) == 0 {
			return reject("no answers")
		}
		next.Answers = append(next.Answers, e.Answers...)
		if s.Mode == ModeDeep && s.SelectedTopicID != "" {
			if !next.IsCompleted(s.SelectedTopicID) {
				next.CompletedTopicIDs = append(next.CompletedTopicIDs, s.SelectedTopicID)
			}
			next.SelectedTopicID = ""
			next.View = ViewTOC
		} else {
			next.View = ViewSummary
		}

	case ExitEditor:
		if s.View != ViewEditor {
			return reject("not in the editor")
		}
		next.Queue = nil
		next.SelectedTopicID = ""
		next.View = ViewModeSelect

	case Restart:
		if s.View != ViewSummary {
			return reject("not on the summary")
		}
		next.Answers = nil
		next.CompletedTopicIDs = nil
		next.SelectedTopicID = ""
		next.Queue = nil
		if s.Mode == ModeDeep {
			next.View = ViewTOC
		} else {
			next.View = ViewShake
		}

	case GoHome:
		if s.View != ViewSummary {
			return reject("not on the summary")
		}
		next.Answers = nil
		next.Queue = nil
		next.CompletedTopicIDs = nil
		next.View = ViewModeSelect

	default:
		return reject("unknown event")
	}

	return next, nil
}
