package session

import "github.com/leafecho/leafecho/internal/catalog"

// QuickDrawSize is the number of questions drawn in quick mode.
const QuickDrawSize = 3

// Draw builds the question queue for one run.
//
// Quick mode picks one topic uniformly at random and samples QuickDrawSize of
// its questions without replacement. Deep mode takes every question of
// topicID in catalog order; an unknown topicID yields an empty queue.
func (m *Machine) Draw(mode Mode, topicID string) []SessionItem {
	if mode == ModeDeep {
		topic, ok := m.catalog.Topic(topicID)
		if !ok {
			return nil
		}
		return pair(topic, topic.Questions)
	}

	if m.catalog.Len() == 0 {
		return nil
	}
	topic, _ := m.catalog.At(m.rng.IntN(m.catalog.Len()))
	return pair(topic, sample(m.rng, topic.Questions, QuickDrawSize))
}

// sample returns up to n distinct elements of qs using a partial
// Fisher-Yates shuffle over a copy; qs itself is left untouched.
func sample(rng Rand, qs []catalog.Question, n int) []catalog.Question {
	pool := make([]catalog.Question, len(qs))
	copy(pool, qs)
	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

func pair(topic catalog.Topic, qs []catalog.Question) []SessionItem {
	if len(qs) == 0 {
		return nil
	}
	items := make([]SessionItem, len(qs))
	for i, q := range qs {
		items[i] = SessionItem{Question: q, Topic: topic}
	}
	return items
}
