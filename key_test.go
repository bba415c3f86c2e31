package piston_test

import (
	"testing"

	. "github.com/fabiovitalba/piston"
)

func TestKeyFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
	}{
		{'a', KeyA},
		{'Z', KeyZ},
		{'0', Key0},
		{'9', Key9},
		{' ', KeySpace},
		{'/', KeySlash},
		{'\t', KeyTab},
		{'\n', KeyReturn},
		{'!', KeyUnknown},
		{'é', KeyUnknown},
		{'\u212A', KeyUnknown},
		{'İ', KeyUnknown},
	}
	for _, tt := range tests {
		if got := KeyFromRune(tt.r); got != tt.want {
			t.Errorf("KeyFromRune(%q) = %s, want %s", tt.r, got, tt.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		k    Key
		want string
	}{
		{KeyA, "A"},
		{Key5, "5"},
		{KeyF11, "F11"},
		{KeyLShift, "LShift"},
		{Key(0x40000999), "Key(0x40000999)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("%#x.String() = %q, want %q", uint32(tt.k), got, tt.want)
		}
	}
}

func TestButtonString(t *testing.T) {
	tests := []struct {
		b    Button
		want string
	}{
		{KeyboardButton(KeyEscape), "key Escape"},
		{MouseButtonOf(MouseMiddle), "mouse middle"},
		{ControllerButtonOf(ControllerButton{ID: 1, Button: 3}), "controller 1 button 3"},
		{HatButton(ControllerHat{ID: 0, State: HatRightDown, Which: 2}), "controller 0 hat 2 right-down"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if MouseButton(42).String() != "MouseButton(42)" {
		t.Error("MouseButton fallback")
	}
	if TouchCancel.String() != "cancel" || TouchPhase(9).String() != "TouchPhase(9)" {
		t.Error("TouchPhase strings")
	}
	if HatCentered.String() != "centered" {
		t.Error("HatState strings")
	}
	if ButtonHat.String() != "hat" {
		t.Error("ButtonKind strings")
	}
}
