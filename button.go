package piston

import "fmt"

// ButtonKind selects which field of a Button is meaningful.
type ButtonKind uint8

const (
	ButtonKeyboard ButtonKind = iota
	ButtonMouse
	ButtonController
	ButtonHat
)

func (k ButtonKind) String() string {
	switch k {
	case ButtonKeyboard:
		return "keyboard"
	case ButtonMouse:
		return "mouse"
	case ButtonController:
		return "controller"
	case ButtonHat:
		return "hat"
	}
	return fmt.Sprintf("ButtonKind(%d)", uint8(k))
}

// Button identifies a pressed or released control. Only the field named by
// Kind is set; use the constructors.
type Button struct {
	Kind       ButtonKind       `json:"kind" yaml:"kind"`
	Key        Key              `json:"key,omitempty" yaml:"key,omitempty"`
	Mouse      MouseButton      `json:"mouse,omitempty" yaml:"mouse,omitempty"`
	Controller ControllerButton `json:"controller" yaml:"controller,omitempty"`
	Hat        ControllerHat    `json:"hat" yaml:"hat,omitempty"`
}

func KeyboardButton(k Key) Button {
	return Button{Kind: ButtonKeyboard, Key: k}
}

func MouseButtonOf(m MouseButton) Button {
	return Button{Kind: ButtonMouse, Mouse: m}
}

func ControllerButtonOf(c ControllerButton) Button {
	return Button{Kind: ButtonController, Controller: c}
}

func HatButton(h ControllerHat) Button {
	return Button{Kind: ButtonHat, Hat: h}
}

func (b Button) String() string {
	switch b.Kind {
	case ButtonKeyboard:
		return "key " + b.Key.String()
	case ButtonMouse:
		return "mouse " + b.Mouse.String()
	case ButtonController:
		return fmt.Sprintf("controller %d button %d", b.Controller.ID, b.Controller.Button)
	case ButtonHat:
		return fmt.Sprintf("controller %d hat %d %s", b.Hat.ID, b.Hat.Which, b.Hat.State)
	}
	return b.Kind.String()
}

// MouseButton is a mouse button.
type MouseButton uint8

const (
	MouseUnknown MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle
	MouseX1
	MouseX2
	MouseButton6
	MouseButton7
	MouseButton8
)

var mouseNames = [...]string{
	MouseUnknown: "unknown",
	MouseLeft:    "left",
	MouseRight:   "right",
	MouseMiddle:  "middle",
	MouseX1:      "x1",
	MouseX2:      "x2",
	MouseButton6: "button6",
	MouseButton7: "button7",
	MouseButton8: "button8",
}

func (m MouseButton) String() string {
	if int(m) < len(mouseNames) {
		return mouseNames[m]
	}
	return fmt.Sprintf("MouseButton(%d)", uint8(m))
}

// ControllerButton is a button on a game controller. Not guaranteed
// consistent across backends.
type ControllerButton struct {
	ID     int32 `json:"id" yaml:"id"`
	Button uint8 `json:"button" yaml:"button"`
}

// ControllerHat is a hat switch (d-pad) state change.
type ControllerHat struct {
	ID    int32    `json:"id" yaml:"id"`
	State HatState `json:"state" yaml:"state"`
	// Which hat on the controller.
	Which uint8 `json:"which" yaml:"which"`
}

// HatState is the direction a hat switch points.
type HatState uint8

const (
	HatCentered HatState = iota
	HatUp
	HatRight
	HatDown
	HatLeft
	HatRightUp
	HatRightDown
	HatLeftUp
	HatLeftDown
)

var hatNames = [...]string{
	HatCentered:  "centered",
	HatUp:        "up",
	HatRight:     "right",
	HatDown:      "down",
	HatLeft:      "left",
	HatRightUp:   "right-up",
	HatRightDown: "right-down",
	HatLeftUp:    "left-up",
	HatLeftDown:  "left-down",
}

func (h HatState) String() string {
	if int(h) < len(hatNames) {
		return hatNames[h]
	}
	return fmt.Sprintf("HatState(%d)", uint8(h))
}

// TouchPhase is the stage of a touch point's life.
type TouchPhase uint8

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
	TouchCancel
)

func (p TouchPhase) String() string {
	switch p {
	case TouchStart:
		return "start"
	case TouchMove:
		return "move"
	case TouchEnd:
		return "end"
	case TouchCancel:
		return "cancel"
	}
	return fmt.Sprintf("TouchPhase(%d)", uint8(p))
}
