// Package record holds arp.Sink implementations.
package record

import (
	"sync"

	"github.com/danmuck/arpscope/internal/arp"
	"github.com/rs/zerolog"
)

// Tree keeps entries in arrival order. It is safe for concurrent Add.
type Tree struct {
	mu      sync.Mutex
	entries []arp.Entry
}

func NewTree() *Tree {
	return &Tree{entries: make([]arp.Entry, 0, 10)}
}

func (t *Tree) Add(e arp.Entry) {
	t.mu.Lock()
	t.entries = append(t.entries, e)
	t.mu.Unlock()
}

// Entries returns a copy of the recorded entries.
func (t *Tree) Entries() []arp.Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]arp.Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Find returns the first entry for id.
func (t *Tree) Find(id arp.FieldID) (arp.Entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range t.entries {
		if e.Field == id {
			return e, true
		}
	}
	return arp.Entry{}, false
}

func (t *Tree) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Filter forwards only the fields a consumer subscribed to.
type Filter struct {
	next   arp.Sink
	wanted map[arp.FieldID]struct{}
}

// NewFilter forwards every field to next when ids is empty.
func NewFilter(next arp.Sink, ids ...arp.FieldID) *Filter {
	f := &Filter{next: next}
	if len(ids) > 0 {
		f.wanted = make(map[arp.FieldID]struct{}, len(ids))
		for _, id := range ids {
			f.wanted[id] = struct{}{}
		}
	}
	return f
}

// Wants reports whether entries for id reach the wrapped sink.
func (f *Filter) Wants(id arp.FieldID) bool {
	if f.next == nil {
		return false
	}
	if f.wanted == nil {
		return true
	}
	_, ok := f.wanted[id]
	return ok
}

func (f *Filter) Add(e arp.Entry) {
	if f.Wants(e.Field) {
		f.next.Add(e)
	}
}

// LogSink writes each entry as a structured log event.
type LogSink struct {
	Logger zerolog.Logger
	Level  zerolog.Level
}

func (s LogSink) Add(e arp.Entry) {
	s.Logger.WithLevel(s.Level).
		Str("field", e.Abbrev).
		Int("offset", e.Offset).
		Int("length", e.Length).
		Str("label", e.Label).
		Msg("arp entry")
}

// Tee fans entries out to several sinks in order.
type Tee []arp.Sink

func (t Tee) Add(e arp.Entry) {
	for _, s := range t {
		if s != nil {
			s.Add(e)
		}
	}
}
