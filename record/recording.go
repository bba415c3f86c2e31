package record

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fabiovitalba/piston"
)

// Recording is an ordered capture of events from one backend session.
type Recording struct {
	// Session is a UUID string; it names the file a Persister writes.
	Session string    `json:"session" yaml:"session"`
	Backend string    `json:"backend,omitempty" yaml:"backend,omitempty"`
	Created time.Time `json:"created" yaml:"created"`
	Entries []Entry   `json:"entries" yaml:"entries"`
}

// NewRecording starts an empty recording with a fresh session id.
func NewRecording(backend string) *Recording {
	return &Recording{
		Session: uuid.New().String(),
		Backend: backend,
		Created: time.Now().UTC(),
	}
}

// Append records v.
func (r *Recording) Append(v piston.Value) {
	r.Entries = append(r.Entries, EntryOf(v))
}

// SessionID parses Session.
func (r *Recording) SessionID() (uuid.UUID, error) {
	return uuid.Parse(r.Session)
}

// Events rebuilds every entry in order.
func (r *Recording) Events() ([]piston.Event, error) {
	out := make([]piston.Event, 0, len(r.Entries))
	for i, e := range r.Entries {
		ev, err := e.Event()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, ev)
	}
	return out, nil
}

// Inputs rebuilds the input entries in order, skipping ticks.
func (r *Recording) Inputs() ([]piston.Input, error) {
	var out []piston.Input
	for i, e := range r.Entries {
		id, ok := KindID(e.Kind)
		if ok && piston.IsTick(id) {
			continue
		}
		in, err := e.Input()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, in)
	}
	return out, nil
}
