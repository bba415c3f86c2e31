package testutil

import (
	"reflect"
	"testing"

	"github.com/fabiovitalba/piston"
)

// Composite abstracts over the two composite types so the same lens-law
// checks run against Input and Event.
type Composite interface {
	Name() string
	// Accepts reports whether the composite can hold kind id.
	Accepts(id piston.EventID) bool
	// Build constructs a value of args' kind, using stale as the old value.
	Build(args piston.Args, stale piston.Value) (piston.Value, bool)
	// Stale returns an unrelated value to pass as the old event.
	Stale() piston.Value
}

// InputComposite drives piston.Input.
type InputComposite struct{}

func (InputComposite) Name() string { return "Input" }

func (InputComposite) Accepts(id piston.EventID) bool {
	return id.Valid() && !piston.IsTick(id)
}

func (InputComposite) Build(args piston.Args, stale piston.Value) (piston.Value, bool) {
	old, _ := stale.(piston.Input)
	in, ok := piston.InputFromArgs(args.EventID(), args, old)
	if !ok {
		return nil, false
	}
	return in, true
}

func (InputComposite) Stale() piston.Value {
	return piston.FocusArgs{Focused: false}
}

// EventComposite drives piston.Event.
type EventComposite struct{}

func (EventComposite) Name() string { return "Event" }

func (EventComposite) Accepts(id piston.EventID) bool {
	return id.Valid()
}

func (EventComposite) Build(args piston.Args, stale piston.Value) (piston.Value, bool) {
	old, _ := stale.(piston.Event)
	ev, ok := piston.EventFromArgs(args.EventID(), args, old)
	if !ok {
		return nil, false
	}
	return ev, true
}

func (EventComposite) Stale() piston.Value {
	return piston.UpdateArgs{DT: 0}
}

// InputLensComposite drives piston.Input through each kind's own lens
// instead of the facade.
type InputLensComposite struct{ InputComposite }

func (InputLensComposite) Name() string { return "InputLens" }

func (InputLensComposite) Build(args piston.Args, stale piston.Value) (piston.Value, bool) {
	old, _ := stale.(piston.Input)
	in, ok := Builders()[args.EventID()].Input(args, old)
	if !ok {
		return nil, false
	}
	return in, true
}

// EventLensComposite drives piston.Event through each kind's own lens.
type EventLensComposite struct{ EventComposite }

func (EventLensComposite) Name() string { return "EventLens" }

func (EventLensComposite) Build(args piston.Args, stale piston.Value) (piston.Value, bool) {
	old, _ := stale.(piston.Event)
	ev, ok := Builders()[args.EventID()].Event(args, old)
	if !ok {
		return nil, false
	}
	return ev, true
}

// Composites returns both composites, each built through the facade and
// through the lenses.
func Composites() []Composite {
	return []Composite{
		InputComposite{},
		EventComposite{},
		InputLensComposite{},
		EventLensComposite{},
	}
}

// Builder constructs one kind from an erased payload through its lens.
// args must belong to the kind.
type Builder struct {
	Input func(args piston.Args, old piston.Input) (piston.Input, bool)
	Event func(args piston.Args, old piston.Event) (piston.Event, bool)
}

func build[P piston.Args](l piston.Lens[P]) Builder {
	return Builder{
		Input: func(args piston.Args, old piston.Input) (piston.Input, bool) {
			return l.FromInput(args.(P), old)
		},
		Event: func(args piston.Args, old piston.Event) (piston.Event, bool) {
			return l.FromEvent(args.(P), old)
		},
	}
}

// Builders returns one builder per kind, keyed by identity.
func Builders() map[piston.EventID]Builder {
	return map[piston.EventID]Builder{
		piston.ControllerAxis: build(piston.ControllerAxisLens),
		piston.Cursor:         build(piston.CursorLens),
		piston.Focus:          build(piston.FocusLens),
		piston.Close:          build(piston.CloseLens),
		piston.MouseCursor:    build(piston.MouseCursorLens),
		piston.MouseRelative:  build(piston.MouseRelativeLens),
		piston.MouseScroll:    build(piston.MouseScrollLens),
		piston.Touch:          build(piston.TouchLens),
		piston.Press:          build(piston.PressLens),
		piston.Release:        build(piston.ReleaseLens),
		piston.Resize:         build(piston.ResizeLens),
		piston.Text:           build(piston.TextLens),
		piston.Update:         build(piston.UpdateLens),
		piston.Render:         build(piston.RenderLens),
		piston.AfterRender:    build(piston.AfterRenderLens),
		piston.Idle:           build(piston.IdleLens),
	}
}

// Extractor pulls an erased payload out of a value through one kind's lens.
type Extractor func(v piston.Value) (piston.Args, bool)

func extract[P piston.Args](l piston.Lens[P]) Extractor {
	return func(v piston.Value) (piston.Args, bool) {
		p, ok := l.Args(v)
		if !ok {
			return nil, false
		}
		return p, true
	}
}

// Extractors returns one extractor per kind, keyed by identity.
func Extractors() map[piston.EventID]Extractor {
	return map[piston.EventID]Extractor{
		piston.ControllerAxis: extract(piston.ControllerAxisLens),
		piston.Cursor:         extract(piston.CursorLens),
		piston.Focus:          extract(piston.FocusLens),
		piston.Close:          extract(piston.CloseLens),
		piston.MouseCursor:    extract(piston.MouseCursorLens),
		piston.MouseRelative:  extract(piston.MouseRelativeLens),
		piston.MouseScroll:    extract(piston.MouseScrollLens),
		piston.Touch:          extract(piston.TouchLens),
		piston.Press:          extract(piston.PressLens),
		piston.Release:        extract(piston.ReleaseLens),
		piston.Resize:         extract(piston.ResizeLens),
		piston.Text:           extract(piston.TextLens),
		piston.Update:         extract(piston.UpdateLens),
		piston.Render:         extract(piston.RenderLens),
		piston.AfterRender:    extract(piston.AfterRenderLens),
		piston.Idle:           extract(piston.IdleLens),
	}
}

// Samples returns payloads covering every kind, including boundary values.
func Samples() []piston.Args {
	return []piston.Args{
		piston.NewControllerAxisArgs(0, 1, 0.9),
		piston.NewControllerAxisArgs(0, 0, -1.0),
		piston.NewControllerAxisArgs(3, 5, 1.0),
		piston.NewControllerAxisArgs(-1, 255, 2.0),
		piston.CursorArgs{Visible: true},
		piston.CursorArgs{Visible: false},
		piston.FocusArgs{Focused: true},
		piston.FocusArgs{Focused: false},
		piston.CloseArgs{},
		piston.MouseCursorArgs{X: 10, Y: 20},
		piston.MouseCursorArgs{},
		piston.MouseRelativeArgs{DX: -3.5, DY: 0},
		piston.MouseRelativeArgs{},
		piston.MouseScrollArgs{DX: 0, DY: 1},
		piston.MouseScrollArgs{},
		piston.NewTouchArgs(1, 7, [2]float64{0.25, 0.75}, 0.5, piston.TouchStart),
		piston.NewTouchArgs3D(1, 7, [3]float64{0.1, 0.2, 0.3}, [3]float64{1, 1, 1}, piston.TouchCancel),
		piston.PressArgs{Button: piston.KeyboardButton(piston.KeyA)},
		piston.PressArgs{Button: piston.MouseButtonOf(piston.MouseLeft)},
		piston.ReleaseArgs{Button: piston.ControllerButtonOf(piston.ControllerButton{ID: 2, Button: 4})},
		piston.ReleaseArgs{Button: piston.HatButton(piston.ControllerHat{ID: 1, State: piston.HatLeftUp, Which: 0})},
		piston.ResizeArgs{Width: 640, Height: 480},
		piston.ResizeArgs{},
		piston.TextArgs{Text: "héllo"},
		piston.TextArgs{Text: ""},
		piston.UpdateArgs{DT: 1.0},
		piston.UpdateArgs{DT: 0},
		piston.RenderArgs{ExtDT: 0.004, Width: 800, Height: 600, DrawWidth: 1600, DrawHeight: 1200},
		piston.AfterRenderArgs{},
		piston.IdleArgs{DT: 0.002},
	}
}

// CheckRoundTrip verifies that building args in c and extracting through the
// kind's lens and through the facade returns args unchanged.
func CheckRoundTrip(t testing.TB, c Composite, args piston.Args) {
	t.Helper()

	id := args.EventID()
	v, ok := c.Build(args, c.Stale())
	if !c.Accepts(id) {
		if ok {
			t.Errorf("%s: built %v for kind %s it cannot hold", c.Name(), v, id)
		}
		return
	}
	if !ok {
		t.Fatalf("%s: build %s failed", c.Name(), id)
	}
	if got := v.EventID(); got != id {
		t.Errorf("%s: EventID() = %s, want %s", c.Name(), got, id)
	}

	got, ok := Extractors()[id](v)
	if !ok {
		t.Fatalf("%s: lens %s did not match its own value", c.Name(), id)
	}
	if !reflect.DeepEqual(got, args) {
		t.Errorf("%s: lens %s = %#v, want %#v", c.Name(), id, got, args)
	}

	erased := piston.WithArgs(v, func(a piston.Args) piston.Args { return a })
	if !reflect.DeepEqual(erased, args) {
		t.Errorf("%s: WithArgs = %#v, want %#v", c.Name(), erased, args)
	}
}

// CheckDisjoint verifies that every lens other than v's own rejects v.
func CheckDisjoint(t testing.TB, v piston.Value) {
	t.Helper()

	for id, ex := range Extractors() {
		_, ok := ex(v)
		if want := id == v.EventID(); ok != want {
			t.Errorf("lens %s on %s value: matched=%v, want %v", id, v.EventID(), ok, want)
		}
	}
}

// CheckOldIgnored verifies that the old value passed to c does not change
// what is built.
func CheckOldIgnored(t testing.TB, c Composite, args piston.Args) {
	t.Helper()

	withStale, ok1 := c.Build(args, c.Stale())
	withNil, ok2 := c.Build(args, nil)
	if ok1 != ok2 || !reflect.DeepEqual(withStale, withNil) {
		t.Errorf("%s: build %s depends on old: %v, %v vs %v, %v",
			c.Name(), args.EventID(), withStale, ok1, withNil, ok2)
	}
}

// RunLensLaws runs every check for every sample on every composite.
func RunLensLaws(t *testing.T) {
	for _, c := range Composites() {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			for _, args := range Samples() {
				CheckRoundTrip(t, c, args)
				CheckOldIgnored(t, c, args)
				if v, ok := c.Build(args, c.Stale()); ok {
					CheckDisjoint(t, v)
				}
			}
		})
	}
}
