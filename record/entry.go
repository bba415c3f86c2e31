package record

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/fabiovitalba/piston"
)

// Entry is one serialized event: a stable kind name and its payload.
type Entry struct {
	Kind string
	Args piston.Args
}

// EntryOf captures v without knowing its kind.
func EntryOf(v piston.Value) Entry {
	return piston.WithArgs(v, func(a piston.Args) Entry {
		return Entry{Kind: KindName(a.EventID()), Args: a}
	})
}

// DecodeError reports an entry that could not be decoded or rebuilt.
type DecodeError struct {
	Kind string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("record: kind %q: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e Entry) id() (piston.EventID, error) {
	id, ok := KindID(e.Kind)
	if !ok {
		return 0, &DecodeError{Kind: e.Kind, Err: ErrUnknownKind}
	}
	if err := piston.CheckArgs(id, e.Args); err != nil {
		return 0, &DecodeError{Kind: e.Kind, Err: err}
	}
	return id, nil
}

// Input rebuilds the entry as an Input. Tick entries return ErrNotInput.
func (e Entry) Input() (piston.Input, error) {
	id, err := e.id()
	if err != nil {
		return nil, err
	}
	in, ok := piston.InputFromArgs(id, e.Args, nil)
	if !ok {
		return nil, &DecodeError{Kind: e.Kind, Err: ErrNotInput}
	}
	return in, nil
}

// Event rebuilds the entry as an Event.
func (e Entry) Event() (piston.Event, error) {
	id, err := e.id()
	if err != nil {
		return nil, err
	}
	ev, ok := piston.EventFromArgs(id, e.Args, nil)
	if !ok {
		return nil, &DecodeError{Kind: e.Kind, Err: ErrUnknownKind}
	}
	return ev, nil
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %+v", e.Kind, e.Args)
}

type entryJSON struct {
	Kind string      `json:"kind"`
	Args piston.Args `json:"args"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	if _, err := e.id(); err != nil {
		return nil, err
	}
	return json.Marshal(entryJSON{Kind: e.Kind, Args: e.Args})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind string          `json:"kind"`
		Args json.RawMessage `json:"args"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var unmarshal func(any) error
	if len(raw.Args) > 0 && string(raw.Args) != "null" {
		unmarshal = func(v any) error { return json.Unmarshal(raw.Args, v) }
	}
	return e.decode(raw.Kind, unmarshal)
}

type entryYAML struct {
	Kind string      `yaml:"kind"`
	Args piston.Args `yaml:"args"`
}

func (e Entry) MarshalYAML() (any, error) {
	if _, err := e.id(); err != nil {
		return nil, err
	}
	return entryYAML{Kind: e.Kind, Args: e.Args}, nil
}

func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Kind string    `yaml:"kind"`
		Args yaml.Node `yaml:"args"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	var unmarshal func(any) error
	if raw.Args.Kind != 0 {
		unmarshal = raw.Args.Decode
	}
	return e.decode(raw.Kind, unmarshal)
}

func (e *Entry) decode(kind string, unmarshal func(any) error) error {
	k, ok := kindsByName[kind]
	if !ok {
		return &DecodeError{Kind: kind, Err: ErrUnknownKind}
	}
	args, err := k.decode(unmarshal)
	if err != nil {
		return &DecodeError{Kind: kind, Err: err}
	}
	e.Kind, e.Args = kind, args
	return nil
}
