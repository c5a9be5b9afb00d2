// Package catalog holds the static bank of reflection topics and questions.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Question is a single reflection prompt. ID is unique across the whole catalog.
type Question struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Hint string `json:"hint,omitempty"`
}

// HintOr returns the question's own hint, or fallback when it has none.
func (q Question) HintOr(fallback string) string {
	if q.Hint != "" {
		return q.Hint
	}
	return fallback
}

// Topic is a named theme owning an ordered list of questions.
// Question order is the presentation order.
type Topic struct {
	ID        string     `json:"id"`
	Number    string     `json:"number"`
	TitleEn   string     `json:"title_en"`
	TitleCn   string     `json:"title_cn"`
	Color     string     `json:"color"`
	Questions []Question `json:"questions"`
}

// Catalog is an immutable, ordered set of topics.
// Every accessor returns copies; the underlying lists are never handed out.
type Catalog struct {
	topics []Topic
	byID   map[string]int
}

// New builds a Catalog from topics. The slice is deep-copied.
func New(topics []Topic) *Catalog {
	c := &Catalog{
		topics: make([]Topic, len(topics)),
		byID:   make(map[string]int, len(topics)),
	}
	for i, t := range topics {
		c.topics[i] = cloneTopic(t)
		if _, dup := c.byID[t.ID]; !dup {
			c.byID[t.ID] = i
		}
	}
	return c
}

// Len returns the number of topics.
func (c *Catalog) Len() int {
	return len(c.topics)
}

// Topics returns all topics in display order.
func (c *Catalog) Topics() []Topic {
	out := make([]Topic, len(c.topics))
	for i, t := range c.topics {
		out[i] = cloneTopic(t)
	}
	return out
}

// At returns the topic at position i in display order.
func (c *Catalog) At(i int) (Topic, bool) {
	if i < 0 || i >= len(c.topics) {
		return Topic{}, false
	}
	return cloneTopic(c.topics[i]), true
}

// Topic looks a topic up by id.
func (c *Catalog) Topic(id string) (Topic, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Topic{}, false
	}
	return cloneTopic(c.topics[i]), true
}

// TopicByTitle looks a topic up by its Chinese title. Answers only carry the
// title, so the summary card uses this to recover the topic's other fields.
func (c *Catalog) TopicByTitle(titleCn string) (Topic, bool) {
	for _, t := range c.topics {
		if t.TitleCn == titleCn {
			return cloneTopic(t), true
		}
	}
	return Topic{}, false
}

// Questions returns a copy of the question list of topic id, or nil.
func (c *Catalog) Questions(id string) []Question {
	t, ok := c.Topic(id)
	if !ok {
		return nil
	}
	return t.Questions
}

// Validate checks the catalog invariants: non-empty unique topic ids,
// question ids unique across all topics and non-empty question text.
func (c *Catalog) Validate() error {
	var errs []error
	topicIDs := make(map[string]bool, len(c.topics))
	questionIDs := make(map[int]string)

	for _, t := range c.topics {
		if strings.TrimSpace(t.ID) == "" {
			errs = append(errs, fmt.Errorf("topic %q: empty id", t.TitleEn))
			continue
		}
		if topicIDs[t.ID] {
			errs = append(errs, fmt.Errorf("topic %s: duplicate id", t.ID))
		}
		topicIDs[t.ID] = true

		for _, q := range t.Questions {
			if owner, seen := questionIDs[q.ID]; seen {
				errs = append(errs, fmt.Errorf("question %d: used by %s and %s", q.ID, owner, t.ID))
			}
			questionIDs[q.ID] = t.ID
			if strings.TrimSpace(q.Text) == "" {
				errs = append(errs, fmt.Errorf("question %d in %s: empty text", q.ID, t.ID))
			}
		}
	}
	return errors.Join(errs...)
}

func cloneTopic(t Topic) Topic {
	qs := make([]Question, len(t.Questions))
	copy(qs, t.Questions)
	t.Questions = qs
	return t
}
