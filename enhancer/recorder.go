package enhancer

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/comalice/statestore"
)

// DefaultLimit is the number of entries a Recorder keeps unless WithLimit is used.
const DefaultLimit = 100

// Entry is one recorded dispatch.
type Entry struct {
	Seq    uint64            `json:"seq" yaml:"seq"`
	Action statestore.Action `json:"action" yaml:"action"`
	State  statestore.State  `json:"state" yaml:"state"`
	Time   time.Time         `json:"time" yaml:"time"`
}

// Recorder keeps a bounded history of successful dispatches and the states they
// produced. It is a development aid: entries can be inspected and exported, never
// loaded back into a store.
//
// Recorded states are the store's own values; reducers must not mutate them.
type Recorder struct {
	mu      sync.Mutex
	limit   int
	seq     uint64
	entries []Entry
	now     func() time.Time
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithLimit bounds the history to the n most recent entries. n <= 0 keeps everything.
func WithLimit(n int) RecorderOption {
	return func(r *Recorder) {
		r.limit = n
	}
}

// WithClock sets the time source used to stamp entries.
func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRecorder creates an empty Recorder.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{
		limit: DefaultLimit,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Enhancer returns the enhancer that feeds this Recorder. Several stores may share
// one Recorder; their entries interleave in dispatch order.
func (r *Recorder) Enhancer() statestore.Enhancer {
	return observe(r.record)
}

// Entries returns a copy of the recorded history, oldest first.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.entries)
}

// Len reports the number of retained entries.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Reset drops all entries. Sequence numbers keep increasing.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

// ExportJSON serializes the history to indented JSON.
func (r *Recorder) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(r.Entries(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return data, nil
}

// ExportYAML serializes the history to YAML.
func (r *Recorder) ExportYAML() ([]byte, error) {
	data, err := yaml.Marshal(r.Entries())
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

func (r *Recorder) record(action statestore.Action, state statestore.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.entries = append(r.entries, Entry{
		Seq:    r.seq,
		Action: action,
		State:  state,
		Time:   r.now(),
	})
	if r.limit > 0 && len(r.entries) > r.limit {
		// Shift in place so the backing array does not grow without bound.
		n := copy(r.entries, r.entries[len(r.entries)-r.limit:])
		clear(r.entries[n:])
		r.entries = r.entries[:n]
	}
}
