package piston

// Lens is the construct/match pair for the event kind whose payload is P.
// P must be one of the payload record types; the interface types Args,
// Input and Motion satisfy the constraint but name no kind. The zero value
// is ready to use.
type Lens[P Args] struct{}

// LensOf returns the lens for payload type P.
func LensOf[P Args]() Lens[P] {
	return Lens[P]{}
}

var (
	ControllerAxisLens = Lens[ControllerAxisArgs]{}
	CursorLens         = Lens[CursorArgs]{}
	FocusLens          = Lens[FocusArgs]{}
	CloseLens          = Lens[CloseArgs]{}
	MouseCursorLens    = Lens[MouseCursorArgs]{}
	MouseRelativeLens  = Lens[MouseRelativeArgs]{}
	MouseScrollLens    = Lens[MouseScrollArgs]{}
	TouchLens          = Lens[TouchArgs]{}
	PressLens          = Lens[PressArgs]{}
	ReleaseLens        = Lens[ReleaseArgs]{}
	ResizeLens         = Lens[ResizeArgs]{}
	TextLens           = Lens[TextArgs]{}
	UpdateLens         = Lens[UpdateArgs]{}
	RenderLens         = Lens[RenderArgs]{}
	AfterRenderLens    = Lens[AfterRenderArgs]{}
	IdleLens           = Lens[IdleArgs]{}
)

// ID returns the identity of the lens's kind.
func (Lens[P]) ID() EventID {
	var p P
	if any(p) == nil {
		panic("piston: Lens type parameter is an interface, not a payload record")
	}
	return p.EventID()
}

// FromInput builds an Input of this kind. It reports false for tick kinds,
// which Input cannot hold. old is accepted for symmetry with FromEvent; no
// kind in this package reads it.
func (Lens[P]) FromInput(args P, old Input) (Input, bool) {
	in, ok := any(args).(Input)
	return in, ok
}

// FromEvent builds an Event of this kind. Input kinds are lifted as by
// Wrap. It always succeeds; old is not read.
func (Lens[P]) FromEvent(args P, old Event) (Event, bool) {
	switch a := any(args).(type) {
	case Event:
		return a, true
	case Input:
		return inputEvent{in: a}, true
	}
	return nil, false
}

// Args returns the payload if v is of this kind. v may be an Input or an
// Event; a wrapped input is looked through for input kinds.
func (l Lens[P]) Args(v Value) (P, bool) {
	if ie, ok := v.(inputEvent); ok {
		if IsTick(l.ID()) {
			var zero P
			return zero, false
		}
		v = ie.in
	}
	p, ok := v.(P)
	return p, ok
}

// Match calls f with the payload of v if v is of the lens's kind.
func Match[P Args, U any](v Value, l Lens[P], f func(P) U) (U, bool) {
	p, ok := l.Args(v)
	if !ok {
		var zero U
		return zero, false
	}
	return f(p), true
}

// FromDT builds an update event with delta time dt.
func FromDT(dt float64, old Event) (Event, bool) {
	return UpdateLens.FromEvent(UpdateArgs{DT: dt}, old)
}
