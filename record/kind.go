// Package record serializes events for logging and replay.
//
// Identifiers from package piston are never written. Each kind is stored
// under a stable name instead, next to its payload fields:
//
//	{"kind":"press","args":{"button":{"kind":0,"key":97,...}}}
//
// The same Entry shape is used for JSON, JSON lines and YAML.
package record

import (
	"errors"

	"github.com/fabiovitalba/piston"
)

var (
	// ErrUnknownKind is returned when a kind name is not recognized.
	ErrUnknownKind = errors.New("record: unknown event kind")
	// ErrNotInput is returned when a tick entry is read as an Input.
	ErrNotInput = errors.New("record: entry is not an input")
)

type kindCodec struct {
	id     piston.EventID
	name   string
	decode func(unmarshal func(any) error) (piston.Args, error)
}

func codec[P piston.Args](name string) kindCodec {
	return kindCodec{
		id:   piston.LensOf[P]().ID(),
		name: name,
		decode: func(unmarshal func(any) error) (piston.Args, error) {
			var p P
			if unmarshal != nil {
				if err := unmarshal(&p); err != nil {
					return nil, err
				}
			}
			return p, nil
		},
	}
}

var kinds = []kindCodec{
	codec[piston.ControllerAxisArgs]("controller_axis"),
	codec[piston.CursorArgs]("cursor"),
	codec[piston.FocusArgs]("focus"),
	codec[piston.CloseArgs]("close"),
	codec[piston.MouseCursorArgs]("mouse_cursor"),
	codec[piston.MouseRelativeArgs]("mouse_relative"),
	codec[piston.MouseScrollArgs]("mouse_scroll"),
	codec[piston.TouchArgs]("touch"),
	codec[piston.PressArgs]("press"),
	codec[piston.ReleaseArgs]("release"),
	codec[piston.ResizeArgs]("resize"),
	codec[piston.TextArgs]("text"),
	codec[piston.UpdateArgs]("update"),
	codec[piston.RenderArgs]("render"),
	codec[piston.AfterRenderArgs]("after_render"),
	codec[piston.IdleArgs]("idle"),
}

var (
	kindsByID   = map[piston.EventID]kindCodec{}
	kindsByName = map[string]kindCodec{}
)

func init() {
	for _, k := range kinds {
		kindsByID[k.id] = k
		kindsByName[k.name] = k
	}
}

// KindName returns the stable name for id, or "" if id is unknown.
func KindName(id piston.EventID) string {
	return kindsByID[id].name
}

// KindID resolves a stable name.
func KindID(name string) (piston.EventID, bool) {
	k, ok := kindsByName[name]
	return k.id, ok
}
