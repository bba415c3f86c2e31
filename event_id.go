package piston

import "fmt"

// EventID identifies an event kind. Values are only meaningful within one
// build of this package: compare them, never serialize them.
type EventID uint8

const (
	ControllerAxis EventID = iota + 1
	Cursor
	Focus
	Close
	MouseCursor
	MouseRelative
	MouseScroll
	Touch
	Press
	Release
	Resize
	Text
	Update
	Render
	AfterRender
	Idle

	lastID = Idle
)

var idNames = [...]string{
	ControllerAxis: "controller-axis",
	Cursor:         "cursor",
	Focus:          "focus",
	Close:          "close",
	MouseCursor:    "mouse-cursor",
	MouseRelative:  "mouse-relative",
	MouseScroll:    "mouse-scroll",
	Touch:          "touch",
	Press:          "press",
	Release:        "release",
	Resize:         "resize",
	Text:           "text",
	Update:         "update",
	Render:         "render",
	AfterRender:    "after-render",
	Idle:           "idle",
}

// Valid reports whether id names a known event kind.
func (id EventID) Valid() bool {
	return id >= ControllerAxis && id <= lastID
}

func (id EventID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("EventID(%d)", uint8(id))
	}
	return idNames[id]
}

// IDs returns every known identifier in declaration order.
func IDs() []EventID {
	ids := make([]EventID, 0, int(lastID))
	for id := ControllerAxis; id <= lastID; id++ {
		ids = append(ids, id)
	}
	return ids
}

// IsTick reports whether id is one of the application tick kinds handled by
// Event itself (update, render, after-render, idle).
func IsTick(id EventID) bool {
	switch id {
	case Update, Render, AfterRender, Idle:
		return true
	}
	return false
}
