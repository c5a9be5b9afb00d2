package summarize

import "context"

// Status is the state of the summary request shown on the summary card.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusDone
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusDone:
		return "done"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Tracker keeps the auxiliary state of at most one summary request.
// It is separate from the session state; a failed or discarded request never
// touches answers. Tracker is driven from the UI goroutine only.
type Tracker struct {
	status Status
	gen    uint64
	result *Result
	err    error
	cancel context.CancelFunc
}

// Status returns the current request state.
func (t *Tracker) Status() Status { return t.status }

// Result returns the summary once Status is StatusDone.
func (t *Tracker) Result() *Result { return t.result }

// Err returns the last failure once Status is StatusFailed.
func (t *Tracker) Err() error { return t.err }

// Begin starts a request unless one is pending or already succeeded.
// The returned context is cancelled by Reset; token identifies the request
// to Resolve.
func (t *Tracker) Begin(parent context.Context) (ctx context.Context, token uint64, ok bool) {
	if t.status == StatusPending || t.status == StatusDone {
		return nil, 0, false
	}
	t.gen++
	ctx, t.cancel = context.WithCancel(parent)
	t.status = StatusPending
	t.err = nil
	return ctx, t.gen, true
}

// Resolve records the outcome of request token. Outcomes of requests that
// were reset or superseded are discarded and Resolve returns false.
func (t *Tracker) Resolve(token uint64, r *Result, err error) bool {
	if token != t.gen || t.status != StatusPending {
		return false
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if err != nil {
		t.status = StatusFailed
		t.err = err
		t.result = nil
		return true
	}
	t.status = StatusDone
	t.result = r
	return true
}

// Reset abandons any in-flight request and clears the outcome. It is called
// when the summary view is left.
func (t *Tracker) Reset() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.gen++
	t.status = StatusIdle
	t.result = nil
	t.err = nil
}
