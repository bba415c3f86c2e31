package piston

// Value is anything that has an event identity: every payload record and
// every wrapped input. The set is closed; types outside this package cannot satisfy
// it.
type Value interface {
	EventID() EventID
	isValue()
}

// Args is an erased payload. Its concrete type is one of the payload records
// in this package, and its EventID names the kind that type belongs to.
type Args interface {
	Value
	isArgs()
}

// Input is one raw input occurrence from a device or window.
type Input interface {
	Args
	isInput()
}

// Motion is the subset of Input describing movement.
type Motion interface {
	Input
	isMotion()
}

// Event is an application event: a tick, or an Input lifted by Wrap.
type Event interface {
	Value
	isEvent()
}

// inputEvent is the Event variant carrying raw input. in is never nil.
type inputEvent struct {
	in Input
}

// Wrap lifts an Input into an Event. A nil in panics with *ContractError.
func Wrap(in Input) Event {
	if in == nil {
		panic(&ContractError{})
	}
	return inputEvent{in: in}
}

// InputOf returns the input carried by ev, if ev is a wrapped input.
func InputOf(ev Event) (Input, bool) {
	ie, ok := ev.(inputEvent)
	return ie.in, ok
}

// MotionOf returns the motion carried by in, if in is a motion input.
func MotionOf(in Input) (Motion, bool) {
	m, ok := in.(Motion)
	return m, ok
}

// Identity. Each payload type names exactly one kind.

func (ControllerAxisArgs) EventID() EventID { return ControllerAxis }
func (CursorArgs) EventID() EventID         { return Cursor }
func (FocusArgs) EventID() EventID          { return Focus }
func (CloseArgs) EventID() EventID          { return Close }
func (MouseCursorArgs) EventID() EventID    { return MouseCursor }
func (MouseRelativeArgs) EventID() EventID  { return MouseRelative }
func (MouseScrollArgs) EventID() EventID    { return MouseScroll }
func (TouchArgs) EventID() EventID          { return Touch }
func (PressArgs) EventID() EventID          { return Press }
func (ReleaseArgs) EventID() EventID        { return Release }
func (ResizeArgs) EventID() EventID         { return Resize }
func (TextArgs) EventID() EventID           { return Text }
func (UpdateArgs) EventID() EventID         { return Update }
func (RenderArgs) EventID() EventID         { return Render }
func (AfterRenderArgs) EventID() EventID    { return AfterRender }
func (IdleArgs) EventID() EventID           { return Idle }

// EventID of a wrapped input is the input's own identity.
func (e inputEvent) EventID() EventID { return e.in.EventID() }

func (ControllerAxisArgs) isValue() {}
func (CursorArgs) isValue()         {}
func (FocusArgs) isValue()          {}
func (CloseArgs) isValue()          {}
func (MouseCursorArgs) isValue()    {}
func (MouseRelativeArgs) isValue()  {}
func (MouseScrollArgs) isValue()    {}
func (TouchArgs) isValue()          {}
func (PressArgs) isValue()          {}
func (ReleaseArgs) isValue()        {}
func (ResizeArgs) isValue()         {}
func (TextArgs) isValue()           {}
func (UpdateArgs) isValue()         {}
func (RenderArgs) isValue()         {}
func (AfterRenderArgs) isValue()    {}
func (IdleArgs) isValue()           {}
func (inputEvent) isValue()         {}

func (ControllerAxisArgs) isArgs() {}
func (CursorArgs) isArgs()         {}
func (FocusArgs) isArgs()          {}
func (CloseArgs) isArgs()          {}
func (MouseCursorArgs) isArgs()    {}
func (MouseRelativeArgs) isArgs()  {}
func (MouseScrollArgs) isArgs()    {}
func (TouchArgs) isArgs()          {}
func (PressArgs) isArgs()          {}
func (ReleaseArgs) isArgs()        {}
func (ResizeArgs) isArgs()         {}
func (TextArgs) isArgs()           {}
func (UpdateArgs) isArgs()         {}
func (RenderArgs) isArgs()         {}
func (AfterRenderArgs) isArgs()    {}
func (IdleArgs) isArgs()           {}

func (ControllerAxisArgs) isInput() {}
func (CursorArgs) isInput()         {}
func (FocusArgs) isInput()          {}
func (CloseArgs) isInput()          {}
func (MouseCursorArgs) isInput()    {}
func (MouseRelativeArgs) isInput()  {}
func (MouseScrollArgs) isInput()    {}
func (TouchArgs) isInput()          {}
func (PressArgs) isInput()          {}
func (ReleaseArgs) isInput()        {}
func (ResizeArgs) isInput()         {}
func (TextArgs) isInput()           {}

func (ControllerAxisArgs) isMotion() {}
func (MouseCursorArgs) isMotion()    {}
func (MouseRelativeArgs) isMotion()  {}
func (MouseScrollArgs) isMotion()    {}
func (TouchArgs) isMotion()          {}

func (UpdateArgs) isEvent()      {}
func (RenderArgs) isEvent()      {}
func (AfterRenderArgs) isEvent() {}
func (IdleArgs) isEvent()        {}
func (inputEvent) isEvent()      {}
