package testutil

import "github.com/comalice/statestore"

// CallLog records listener invocations in the order they happen.
type CallLog struct {
	calls []string
}

// Listener returns a listener that appends name to the log.
func (l *CallLog) Listener(name string) statestore.Listener {
	return func() {
		l.calls = append(l.calls, name)
	}
}

// Calls returns a copy of the recorded names.
func (l *CallLog) Calls() []string {
	return append([]string(nil), l.calls...)
}

// Count returns how many times name was recorded.
func (l *CallLog) Count(name string) int {
	n := 0
	for _, c := range l.calls {
		if c == name {
			n++
		}
	}
	return n
}

// Reset clears the log.
func (l *CallLog) Reset() {
	l.calls = nil
}
