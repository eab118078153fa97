package loads

import "sync"

// maxVoicemailAttempts caps recorded retries for one structurally-equal
// payload. The 1st through 3rd attempts forward; the 4th is rejected.
const maxVoicemailAttempts = 3

// Tracker holds the process-wide deduplication state.
//
// Invariants:
// - newCalls contains each accepted new-call payload at most once.
// - voicemailAttempts contains a given payload at most maxVoicemailAttempts times.
// - Entries are never updated or removed; both logs grow for the process lifetime.
//
// The check-and-append for each log is a single critical section, so
// concurrent structurally-equal submissions cannot both pass the duplicate
// check.
type Tracker struct {
	mu                sync.Mutex
	newCalls          []Call
	voicemailAttempts []Call
}

func NewTracker() *Tracker { return &Tracker{} }

// RecordNewCall appends the call unless an equal payload was already
// accepted. It reports whether the call was recorded.
func (t *Tracker) RecordNewCall(c Call) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, seen := range t.newCalls {
		if seen == c {
			return false
		}
	}
	t.newCalls = append(t.newCalls, c)
	return true
}

// RecordVoicemailAttempt appends the call unless the retry cap for this
// payload is already reached. It reports whether the attempt was recorded.
func (t *Tracker) RecordVoicemailAttempt(c Call) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, seen := range t.voicemailAttempts {
		if seen == c {
			n++
		}
	}
	if n >= maxVoicemailAttempts {
		return false
	}
	t.voicemailAttempts = append(t.voicemailAttempts, c)
	return true
}

// Counts returns the current log sizes. Intended for tests and diagnostics.
func (t *Tracker) Counts() (newCalls, voicemailAttempts int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.newCalls), len(t.voicemailAttempts)
}
