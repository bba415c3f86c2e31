package piston

// Payload records. One type per event kind; each is an immutable value and
// is also the variant that carries it (see sealed.go).
//
// Fields are exported for construction and reading. Consumers must not
// mutate a payload after it has been handed to an Input or Event.

// ControllerAxisArgs is a controller axis position change. Not guaranteed
// consistent across backends.
type ControllerAxisArgs struct {
	// ID of the controller that moved.
	ID int32 `json:"id" yaml:"id"`
	// Axis that moved.
	Axis uint8 `json:"axis" yaml:"axis"`
	// Position is usually in [-1.0, 1.0], though backends may use a
	// different range for some devices.
	Position float64 `json:"position" yaml:"position"`
}

// NewControllerAxisArgs is intended for backends emitting axis events.
func NewControllerAxisArgs(id int32, axis uint8, position float64) ControllerAxisArgs {
	return ControllerAxisArgs{ID: id, Axis: axis, Position: position}
}

// CursorArgs reports whether the cursor is inside the window.
type CursorArgs struct {
	Visible bool `json:"visible" yaml:"visible"`
}

// FocusArgs reports window focus gained or lost.
type FocusArgs struct {
	Focused bool `json:"focused" yaml:"focused"`
}

// CloseArgs is a window close request. It carries no data.
type CloseArgs struct{}

// MouseCursorArgs is an absolute mouse position in window coordinates.
type MouseCursorArgs struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// MouseRelativeArgs is a relative mouse movement.
type MouseRelativeArgs struct {
	DX float64 `json:"dx" yaml:"dx"`
	DY float64 `json:"dy" yaml:"dy"`
}

// MouseScrollArgs is a scroll wheel or trackpad delta.
type MouseScrollArgs struct {
	DX float64 `json:"dx" yaml:"dx"`
	DY float64 `json:"dy" yaml:"dy"`
}

// TouchArgs is one touch point update.
type TouchArgs struct {
	// Device that produced the touch.
	Device int64 `json:"device" yaml:"device"`
	// ID of the touch point, stable from TouchStart to TouchEnd.
	ID int64 `json:"id" yaml:"id"`
	// Position in normalized coordinates. Z is zero for 2D devices.
	Position [3]float64 `json:"position" yaml:"position"`
	// Pressure per axis. 2D devices report a single pressure in X.
	Pressure [3]float64 `json:"pressure" yaml:"pressure"`
	Is3D     bool       `json:"is_3d" yaml:"is_3d"`
	Phase    TouchPhase `json:"phase" yaml:"phase"`
}

// NewTouchArgs creates a 2D touch.
func NewTouchArgs(device, id int64, pos [2]float64, pressure float64, phase TouchPhase) TouchArgs {
	return TouchArgs{
		Device:   device,
		ID:       id,
		Position: [3]float64{pos[0], pos[1], 0},
		Pressure: [3]float64{pressure, 0, 0},
		Phase:    phase,
	}
}

// NewTouchArgs3D creates a touch from a device that reports depth.
func NewTouchArgs3D(device, id int64, pos, pressure [3]float64, phase TouchPhase) TouchArgs {
	return TouchArgs{
		Device:   device,
		ID:       id,
		Position: pos,
		Pressure: pressure,
		Is3D:     true,
		Phase:    phase,
	}
}

// Position2D returns the X and Y coordinates.
func (a TouchArgs) Position2D() [2]float64 {
	return [2]float64{a.Position[0], a.Position[1]}
}

// Pressure2D returns the scalar pressure of a 2D touch.
func (a TouchArgs) Pressure2D() float64 {
	return a.Pressure[0]
}

// PressArgs is a button going down.
type PressArgs struct {
	Button Button `json:"button" yaml:"button"`
}

// ReleaseArgs is a button going up.
type ReleaseArgs struct {
	Button Button `json:"button" yaml:"button"`
}

// ResizeArgs is a new window size in points.
type ResizeArgs struct {
	Width  uint32 `json:"width" yaml:"width"`
	Height uint32 `json:"height" yaml:"height"`
}

// TextArgs is text input after keyboard layout and IME processing.
type TextArgs struct {
	Text string `json:"text" yaml:"text"`
}

// UpdateArgs asks the application to advance its state.
type UpdateArgs struct {
	// DT is the delta time in seconds.
	DT float64 `json:"dt" yaml:"dt"`
}

// RenderArgs asks the application to draw a frame.
type RenderArgs struct {
	// ExtDT is the extrapolated time in seconds since the last update, used
	// to interpolate positions between updates.
	ExtDT float64 `json:"ext_dt" yaml:"ext_dt"`
	// Width and Height are the window size in points.
	Width  uint32 `json:"width" yaml:"width"`
	Height uint32 `json:"height" yaml:"height"`
	// DrawWidth and DrawHeight are the framebuffer size in pixels.
	DrawWidth  uint32 `json:"draw_width" yaml:"draw_width"`
	DrawHeight uint32 `json:"draw_height" yaml:"draw_height"`
}

// Viewport describes the drawable area of a window.
type Viewport struct {
	Rect       [4]int32   `json:"rect" yaml:"rect"`
	DrawSize   [2]uint32  `json:"draw_size" yaml:"draw_size"`
	WindowSize [2]float64 `json:"window_size" yaml:"window_size"`
}

// Viewport returns the full-window viewport for this frame.
func (a RenderArgs) Viewport() Viewport {
	return Viewport{
		Rect:       [4]int32{0, 0, int32(a.DrawWidth), int32(a.DrawHeight)},
		DrawSize:   [2]uint32{a.DrawWidth, a.DrawHeight},
		WindowSize: [2]float64{float64(a.Width), float64(a.Height)},
	}
}

// AfterRenderArgs follows a completed render.
type AfterRenderArgs struct{}

// IdleArgs reports time the application has left before the next event.
type IdleArgs struct {
	DT float64 `json:"dt" yaml:"dt"`
}
