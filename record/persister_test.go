package record

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/fabiovitalba/piston"
	"github.com/fabiovitalba/piston/testutil"
)

func sampleRecording(t *testing.T) *Recording {
	t.Helper()
	rec := NewRecording("test")
	for _, args := range testutil.Samples() {
		rec.Append(args)
	}
	rec.Append(piston.Wrap(piston.TextArgs{Text: "wrapped"}))
	return rec
}

func checkSame(t *testing.T, got, want Recording) {
	t.Helper()
	if got.Session != want.Session || got.Backend != want.Backend {
		t.Errorf("header mismatch: got %s/%s, want %s/%s", got.Session, got.Backend, want.Session, want.Backend)
	}
	if !got.Created.Equal(want.Created) {
		t.Errorf("created: got %v, want %v", got.Created, want.Created)
	}
	if len(got.Entries) != len(want.Entries) {
		t.Fatalf("got %d entries, want %d", len(got.Entries), len(want.Entries))
	}
	for i := range want.Entries {
		if got.Entries[i] != want.Entries[i] {
			t.Errorf("entry %d: got %v, want %v", i, got.Entries[i], want.Entries[i])
		}
	}
}

func TestPersisters_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		new  func(dir string) (Persister, error)
	}{
		{"json", func(dir string) (Persister, error) { return NewJSONPersister(dir) }},
		{"yaml", func(dir string) (Persister, error) { return NewYAMLPersister(dir) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.new(t.TempDir())
			if err != nil {
				t.Fatalf("new persister: %v", err)
			}
			rec := sampleRecording(t)
			if err := p.Save(context.Background(), *rec); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			loaded, err := p.Load(context.Background(), rec.Session)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			checkSame(t, loaded, *rec)

			_, err = p.Load(context.Background(), uuid.New().String())
			if !errors.Is(err, os.ErrNotExist) || !errors.Is(err, ErrNotFound) {
				t.Errorf("expected ErrNotFound wrapping os.ErrNotExist, got %v", err)
			}
		})
	}
}

func TestPersister_RejectsBadSession(t *testing.T) {
	p, err := NewJSONPersister(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	rec := Recording{Session: "../escape"}
	if err := p.Save(context.Background(), rec); err == nil {
		t.Error("Save accepted a non-UUID session")
	}
	if _, err := p.Load(context.Background(), "../escape"); err == nil {
		t.Error("Load accepted a non-UUID session")
	}
}

func TestPersister_CanceledContext(t *testing.T) {
	p, err := NewYAMLPersister(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Save(ctx, *NewRecording("x")); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestRecording_EventsAndInputs(t *testing.T) {
	rec := NewRecording("test")
	if _, err := rec.SessionID(); err != nil {
		t.Fatalf("session is not a UUID: %v", err)
	}
	rec.Append(piston.UpdateArgs{DT: 0.1})
	rec.Append(piston.Wrap(piston.PressArgs{Button: piston.KeyboardButton(piston.KeyA)}))
	rec.Append(piston.RenderArgs{})
	rec.Append(piston.Wrap(piston.CloseArgs{}))

	evs, err := rec.Events()
	if err != nil {
		t.Fatal(err)
	}
	if len(evs) != 4 || evs[0].EventID() != piston.Update || evs[3].EventID() != piston.Close {
		t.Errorf("events: %v", evs)
	}
	ins, err := rec.Inputs()
	if err != nil {
		t.Fatal(err)
	}
	if len(ins) != 2 || ins[0].EventID() != piston.Press || ins[1] != (piston.CloseArgs{}) {
		t.Errorf("inputs: %v", ins)
	}

	rec.Entries = append(rec.Entries, Entry{Kind: "focus", Args: piston.IdleArgs{}})
	if _, err := rec.Events(); !errors.Is(err, piston.ErrContract) {
		t.Errorf("got %v, want ErrContract", err)
	}
}
