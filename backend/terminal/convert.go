// Package terminal produces piston inputs from a tcell screen.
//
// Terminals report key presses only, so every key becomes a Press followed
// by a Release. Mouse buttons are diffed against the previous event's mask.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/fabiovitalba/piston"
)

var specialKeys = map[tcell.Key]piston.Key{
	tcell.KeyBackspace:  piston.KeyBackspace,
	tcell.KeyTab:        piston.KeyTab,
	tcell.KeyBacktab:    piston.KeyTab,
	tcell.KeyEnter:      piston.KeyReturn,
	tcell.KeyEscape:     piston.KeyEscape,
	tcell.KeyDEL:        piston.KeyBackspace,
	tcell.KeyDelete:     piston.KeyDelete,
	tcell.KeyInsert:     piston.KeyInsert,
	tcell.KeyHome:       piston.KeyHome,
	tcell.KeyEnd:        piston.KeyEnd,
	tcell.KeyPgUp:       piston.KeyPageUp,
	tcell.KeyPgDn:       piston.KeyPageDown,
	tcell.KeyUp:         piston.KeyUp,
	tcell.KeyDown:       piston.KeyDown,
	tcell.KeyLeft:       piston.KeyLeft,
	tcell.KeyRight:      piston.KeyRight,
	tcell.KeyPrint:      piston.KeyPrintScreen,
	tcell.KeyPause:      piston.KeyPause,
	tcell.KeyCapsLock:   piston.KeyCapsLock,
	tcell.KeyScrollLock: piston.KeyScrollLock,
	tcell.KeyF1:         piston.KeyF1,
	tcell.KeyF2:         piston.KeyF2,
	tcell.KeyF3:         piston.KeyF3,
	tcell.KeyF4:         piston.KeyF4,
	tcell.KeyF5:         piston.KeyF5,
	tcell.KeyF6:         piston.KeyF6,
	tcell.KeyF7:         piston.KeyF7,
	tcell.KeyF8:         piston.KeyF8,
	tcell.KeyF9:         piston.KeyF9,
	tcell.KeyF10:        piston.KeyF10,
	tcell.KeyF11:        piston.KeyF11,
	tcell.KeyF12:        piston.KeyF12,
}

var mouseButtons = []struct {
	mask tcell.ButtonMask
	btn  piston.MouseButton
}{
	{tcell.Button1, piston.MouseLeft},
	{tcell.Button2, piston.MouseRight},
	{tcell.Button3, piston.MouseMiddle},
	{tcell.Button4, piston.MouseX1},
	{tcell.Button5, piston.MouseX2},
	{tcell.Button6, piston.MouseButton6},
	{tcell.Button7, piston.MouseButton7},
	{tcell.Button8, piston.MouseButton8},
}

const heldMask = tcell.Button1 | tcell.Button2 | tcell.Button3 | tcell.Button4 |
	tcell.Button5 | tcell.Button6 | tcell.Button7 | tcell.Button8

// MapKey translates a tcell key event to a piston keycode. Control
// combinations map to their letter.
func MapKey(ev *tcell.EventKey) piston.Key {
	k := ev.Key()
	if pk, ok := specialKeys[k]; ok {
		return pk
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return piston.KeyA + piston.Key(k-tcell.KeyCtrlA)
	}
	return piston.KeyFromRune(ev.Rune())
}

// Converter turns tcell events into inputs. It remembers the mouse state
// between events and is not safe for concurrent use.
type Converter struct {
	buttons tcell.ButtonMask
	x, y    int
	seen    bool
}

// Convert returns the inputs for ev in the order they happened. Events with
// no piston equivalent yield nil.
func (c *Converter) Convert(ev tcell.Event) []piston.Input {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.key(ev)
	case *tcell.EventMouse:
		return c.mouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return []piston.Input{piston.ResizeArgs{Width: uint32(w), Height: uint32(h)}}
	case *tcell.EventFocus:
		return []piston.Input{piston.FocusArgs{Focused: ev.Focused}}
	}
	return nil
}

func (c *Converter) key(ev *tcell.EventKey) []piston.Input {
	btn := piston.KeyboardButton(MapKey(ev))
	out := []piston.Input{piston.PressArgs{Button: btn}}
	if ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		out = append(out, piston.TextArgs{Text: string(ev.Rune())})
	}
	return append(out, piston.ReleaseArgs{Button: btn})
}

func (c *Converter) mouse(ev *tcell.EventMouse) []piston.Input {
	var out []piston.Input
	x, y := ev.Position()
	if !c.seen || x != c.x || y != c.y {
		out = append(out, piston.MouseCursorArgs{X: float64(x), Y: float64(y)})
		c.x, c.y, c.seen = x, y, true
	}

	mask := ev.Buttons()
	held := mask & heldMask
	for _, b := range mouseButtons {
		was, is := c.buttons&b.mask != 0, held&b.mask != 0
		switch {
		case is && !was:
			out = append(out, piston.PressArgs{Button: piston.MouseButtonOf(b.btn)})
		case was && !is:
			out = append(out, piston.ReleaseArgs{Button: piston.MouseButtonOf(b.btn)})
		}
	}
	c.buttons = held

	var scroll piston.MouseScrollArgs
	if mask&tcell.WheelUp != 0 {
		scroll.DY++
	}
	if mask&tcell.WheelDown != 0 {
		scroll.DY--
	}
	if mask&tcell.WheelLeft != 0 {
		scroll.DX--
	}
	if mask&tcell.WheelRight != 0 {
		scroll.DX++
	}
	if scroll != (piston.MouseScrollArgs{}) {
		out = append(out, scroll)
	}
	return out
}
