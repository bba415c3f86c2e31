package record

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/fabiovitalba/piston"
	"github.com/fabiovitalba/piston/testutil"
)

func TestKindNamesCoverEveryID(t *testing.T) {
	seen := map[string]bool{}
	for _, id := range piston.IDs() {
		name := KindName(id)
		if name == "" {
			t.Fatalf("no name for %s", id)
		}
		if seen[name] {
			t.Fatalf("duplicate name %q", name)
		}
		seen[name] = true
		back, ok := KindID(name)
		if !ok || back != id {
			t.Errorf("KindID(%q) = %v, %v; want %v", name, back, ok, id)
		}
	}
	if KindName(0) != "" {
		t.Error("invalid id has a name")
	}
	if _, ok := KindID("nope"); ok {
		t.Error("KindID accepted an unknown name")
	}
}

func TestEntryJSONRoundTrip(t *testing.T) {
	for _, args := range testutil.Samples() {
		e := Entry{Kind: KindName(args.EventID()), Args: args}
		data, err := json.Marshal(e)
		if err != nil {
			t.Fatalf("marshal %v: %v", e, err)
		}
		var got Entry
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if got != e {
			t.Errorf("round trip %s: got %v, want %v", data, got, e)
		}
	}
}

func TestEntryYAMLRoundTrip(t *testing.T) {
	for _, args := range testutil.Samples() {
		e := Entry{Kind: KindName(args.EventID()), Args: args}
		data, err := yaml.Marshal(e)
		if err != nil {
			t.Fatalf("marshal %v: %v", e, err)
		}
		var got Entry
		if err := yaml.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if got != e {
			t.Errorf("round trip:\n%s\ngot %v, want %v", data, got, e)
		}
	}
}

func TestEntryMissingArgsDecodesZero(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"kind":"close"}`), &e); err != nil {
		t.Fatal(err)
	}
	if e.Args != (piston.CloseArgs{}) {
		t.Errorf("got %v", e.Args)
	}
	if err := yaml.Unmarshal([]byte("kind: after_render\n"), &e); err != nil {
		t.Fatal(err)
	}
	if e.Args != (piston.AfterRenderArgs{}) {
		t.Errorf("got %v", e.Args)
	}
}

func TestEntryUnknownKind(t *testing.T) {
	var e Entry
	err := json.Unmarshal([]byte(`{"kind":"warp","args":{}}`), &e)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("got %v, want ErrUnknownKind", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) || de.Kind != "warp" {
		t.Errorf("got %#v", err)
	}
}

func TestEntryBadArgs(t *testing.T) {
	var e Entry
	err := json.Unmarshal([]byte(`{"kind":"text","args":{"text":5}}`), &e)
	var de *DecodeError
	if !errors.As(err, &de) || de.Kind != "text" {
		t.Fatalf("got %v", err)
	}
}

func TestEntryMarshalMismatch(t *testing.T) {
	e := Entry{Kind: "focus", Args: piston.TextArgs{Text: "x"}}
	if _, err := json.Marshal(e); !errors.Is(err, piston.ErrContract) {
		t.Errorf("json: got %v, want ErrContract", err)
	}
	if _, err := e.Event(); !errors.Is(err, piston.ErrContract) {
		t.Errorf("Event: got %v, want ErrContract", err)
	}
	if _, err := e.Input(); !errors.Is(err, piston.ErrContract) {
		t.Errorf("Input: got %v, want ErrContract", err)
	}
}

func TestEntryOf(t *testing.T) {
	in := piston.FocusArgs{Focused: true}
	e := EntryOf(piston.Wrap(in))
	if e.Kind != "focus" || e.Args != in {
		t.Fatalf("got %v", e)
	}
	got, err := e.Input()
	if err != nil || got != in {
		t.Errorf("Input() = %v, %v", got, err)
	}
	ev, err := e.Event()
	if err != nil || ev != piston.Wrap(in) {
		t.Errorf("Event() = %v, %v", ev, err)
	}
}

func TestEntryTickIsNotInput(t *testing.T) {
	e := EntryOf(piston.UpdateArgs{DT: 0.5})
	if _, err := e.Input(); !errors.Is(err, ErrNotInput) {
		t.Errorf("got %v, want ErrNotInput", err)
	}
	ev, err := e.Event()
	if err != nil || ev != (piston.UpdateArgs{DT: 0.5}) {
		t.Errorf("Event() = %v, %v", ev, err)
	}
}

func TestEntryJSONShape(t *testing.T) {
	data, err := json.Marshal(EntryOf(piston.ResizeArgs{Width: 3, Height: 4}))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":"resize","args":{"width":3,"height":4}}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
	if !strings.Contains(EntryOf(piston.CloseArgs{}).String(), "close") {
		t.Error("String() lacks kind")
	}
}
