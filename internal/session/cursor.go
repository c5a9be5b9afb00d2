package session

// Cursor browses the accumulated answer list on the summary card.
// Movement wraps around in both directions. An empty cursor never moves.
type Cursor struct {
	index  int
	length int
}

// NewCursor returns a cursor at index 0 over a list of length n.
func NewCursor(n int) Cursor {
	if n < 0 {
		n = 0
	}
	return Cursor{length: n}
}

// Index returns the current position.
func (c Cursor) Index() int { return c.index }

// Len returns the list length the cursor was built for.
func (c Cursor) Len() int { return c.length }

// Empty reports whether there is nothing to browse.
func (c Cursor) Empty() bool { return c.length == 0 }

// Next moves forward, wrapping to the start.
func (c Cursor) Next() Cursor {
	if c.Empty() {
		return c
	}
	c.index = (c.index + 1) % c.length
	return c
}

// Prev moves backward, wrapping to the end.
func (c Cursor) Prev() Cursor {
	if c.Empty() {
		return c
	}
	c.index = (c.index - 1 + c.length) % c.length
	return c
}

// Current returns the answer under the cursor.
func (c Cursor) Current(answers []UserAnswer) (UserAnswer, bool) {
	if c.Empty() || c.index >= len(answers) {
		return UserAnswer{}, false
	}
	return answers[c.index], true
}
