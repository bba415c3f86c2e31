package terminal

import (
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/fabiovitalba/piston"
)

func press(k piston.Key) piston.Input   { return piston.PressArgs{Button: piston.KeyboardButton(k)} }
func release(k piston.Key) piston.Input { return piston.ReleaseArgs{Button: piston.KeyboardButton(k)} }

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want piston.Key
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), piston.KeyQ},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), piston.KeyQ},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), piston.Key7},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), piston.KeyReturn},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), piston.KeyEscape},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), piston.KeyLeft},
		{"function", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), piston.KeyF5},
		{"ctrl", tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl), piston.KeyX},
		{"unmapped", tcell.NewEventKey(tcell.KeyF40, 0, tcell.ModNone), piston.KeyUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapKey(tt.ev); got != tt.want {
				t.Errorf("MapKey = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestConvertKey(t *testing.T) {
	var c Converter
	got := c.Convert(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	want := []piston.Input{press(piston.KeyA), piston.TextArgs{Text: "a"}, release(piston.KeyA)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got = c.Convert(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	want = []piston.Input{press(piston.KeyUp), release(piston.KeyUp)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("special key: got %v, want %v", got, want)
	}

	got = c.Convert(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt))
	want = []piston.Input{press(piston.KeyX), release(piston.KeyX)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("alt key emitted text: got %v", got)
	}
}

func TestConvertMouse(t *testing.T) {
	var c Converter
	left := piston.MouseButtonOf(piston.MouseLeft)

	got := c.Convert(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))
	want := []piston.Input{piston.MouseCursorArgs{X: 3, Y: 4}, piston.PressArgs{Button: left}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("press: got %v, want %v", got, want)
	}

	// Drag: same button held, only the cursor moves.
	got = c.Convert(tcell.NewEventMouse(5, 4, tcell.Button1, tcell.ModNone))
	want = []piston.Input{piston.MouseCursorArgs{X: 5, Y: 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("drag: got %v, want %v", got, want)
	}

	got = c.Convert(tcell.NewEventMouse(5, 4, tcell.ButtonNone, tcell.ModNone))
	want = []piston.Input{piston.ReleaseArgs{Button: left}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("release: got %v, want %v", got, want)
	}

	got = c.Convert(tcell.NewEventMouse(5, 4, tcell.WheelDown|tcell.WheelRight, tcell.ModNone))
	want = []piston.Input{piston.MouseScrollArgs{DX: 1, DY: -1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wheel: got %v, want %v", got, want)
	}

	if got := c.Convert(tcell.NewEventMouse(5, 4, tcell.ButtonNone, tcell.ModNone)); len(got) != 0 {
		t.Errorf("idle mouse event produced %v", got)
	}
}

func TestConvertWindowEvents(t *testing.T) {
	var c Converter
	tests := []struct {
		name string
		ev   tcell.Event
		want []piston.Input
	}{
		{"resize", tcell.NewEventResize(80, 24), []piston.Input{piston.ResizeArgs{Width: 80, Height: 24}}},
		{"focus", tcell.NewEventFocus(false), []piston.Input{piston.FocusArgs{Focused: false}}},
		{"interrupt", tcell.NewEventInterrupt(nil), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Convert(tt.ev); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
