package piston

import (
	"fmt"
	"unicode"
)

// Key is a keyboard keycode. Printable keys use their lowercase ASCII value;
// everything else uses the 0x40000000 range.
type Key uint32

const (
	KeyUnknown   Key = 0x00
	KeyBackspace Key = 0x08
	KeyTab       Key = 0x09
	KeyReturn    Key = 0x0D
	KeyEscape    Key = 0x1B
	KeySpace     Key = 0x20
	KeyQuote     Key = 0x27
	KeyComma     Key = 0x2C
	KeyMinus     Key = 0x2D
	KeyPeriod    Key = 0x2E
	KeySlash     Key = 0x2F

	Key0 Key = 0x30
	Key1 Key = 0x31
	Key2 Key = 0x32
	Key3 Key = 0x33
	Key4 Key = 0x34
	Key5 Key = 0x35
	Key6 Key = 0x36
	Key7 Key = 0x37
	Key8 Key = 0x38
	Key9 Key = 0x39

	KeySemicolon    Key = 0x3B
	KeyEquals       Key = 0x3D
	KeyLeftBracket  Key = 0x5B
	KeyBackslash    Key = 0x5C
	KeyRightBracket Key = 0x5D
	KeyBackquote    Key = 0x60

	KeyA Key = 0x61
	KeyB Key = 0x62
	KeyC Key = 0x63
	KeyD Key = 0x64
	KeyE Key = 0x65
	KeyF Key = 0x66
	KeyG Key = 0x67
	KeyH Key = 0x68
	KeyI Key = 0x69
	KeyJ Key = 0x6A
	KeyK Key = 0x6B
	KeyL Key = 0x6C
	KeyM Key = 0x6D
	KeyN Key = 0x6E
	KeyO Key = 0x6F
	KeyP Key = 0x70
	KeyQ Key = 0x71
	KeyR Key = 0x72
	KeyS Key = 0x73
	KeyT Key = 0x74
	KeyU Key = 0x75
	KeyV Key = 0x76
	KeyW Key = 0x77
	KeyX Key = 0x78
	KeyY Key = 0x79
	KeyZ Key = 0x7A

	KeyDelete Key = 0x7F

	KeyCapsLock    Key = 0x40000039
	KeyF1          Key = 0x4000003A
	KeyF2          Key = 0x4000003B
	KeyF3          Key = 0x4000003C
	KeyF4          Key = 0x4000003D
	KeyF5          Key = 0x4000003E
	KeyF6          Key = 0x4000003F
	KeyF7          Key = 0x40000040
	KeyF8          Key = 0x40000041
	KeyF9          Key = 0x40000042
	KeyF10         Key = 0x40000043
	KeyF11         Key = 0x40000044
	KeyF12         Key = 0x40000045
	KeyPrintScreen Key = 0x40000046
	KeyScrollLock  Key = 0x40000047
	KeyPause       Key = 0x40000048
	KeyInsert      Key = 0x40000049
	KeyHome        Key = 0x4000004A
	KeyPageUp      Key = 0x4000004B
	KeyEnd         Key = 0x4000004D
	KeyPageDown    Key = 0x4000004E
	KeyRight       Key = 0x4000004F
	KeyLeft        Key = 0x40000050
	KeyDown        Key = 0x40000051
	KeyUp          Key = 0x40000052

	KeyLCtrl  Key = 0x400000E0
	KeyLShift Key = 0x400000E1
	KeyLAlt   Key = 0x400000E2
	KeyLGui   Key = 0x400000E3
	KeyRCtrl  Key = 0x400000E4
	KeyRShift Key = 0x400000E5
	KeyRAlt   Key = 0x400000E6
	KeyRGui   Key = 0x400000E7
)

var keyNames = map[Key]string{
	KeyUnknown:      "Unknown",
	KeyBackspace:    "Backspace",
	KeyTab:          "Tab",
	KeyReturn:       "Return",
	KeyEscape:       "Escape",
	KeySpace:        "Space",
	KeyQuote:        "Quote",
	KeyComma:        "Comma",
	KeyMinus:        "Minus",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeySemicolon:    "Semicolon",
	KeyEquals:       "Equals",
	KeyLeftBracket:  "LeftBracket",
	KeyBackslash:    "Backslash",
	KeyRightBracket: "RightBracket",
	KeyBackquote:    "Backquote",
	KeyDelete:       "Delete",
	KeyCapsLock:     "CapsLock",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
	KeyPrintScreen:  "PrintScreen",
	KeyScrollLock:   "ScrollLock",
	KeyPause:        "Pause",
	KeyInsert:       "Insert",
	KeyHome:         "Home",
	KeyPageUp:       "PageUp",
	KeyEnd:          "End",
	KeyPageDown:     "PageDown",
	KeyRight:        "Right",
	KeyLeft:         "Left",
	KeyDown:         "Down",
	KeyUp:           "Up",
	KeyLCtrl:        "LCtrl",
	KeyLShift:       "LShift",
	KeyLAlt:         "LAlt",
	KeyLGui:         "LGui",
	KeyRCtrl:        "RCtrl",
	KeyRShift:       "RShift",
	KeyRAlt:         "RAlt",
	KeyRGui:         "RGui",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune(k))
	case k >= KeyA && k <= KeyZ:
		return string(unicode.ToUpper(rune(k)))
	}
	return fmt.Sprintf("Key(%#x)", uint32(k))
}

// KeyFromRune maps a typed character to the key that usually produces it on
// a US layout. Shifted symbols and non-ASCII runes map to KeyUnknown.
func KeyFromRune(r rune) Key {
	if r > unicode.MaxASCII {
		return KeyUnknown
	}
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return Key(r)
	}
	switch r {
	case ' ', '\'', ',', '-', '.', '/', ';', '=', '[', '\\', ']', '`':
		return Key(r)
	case '\t':
		return KeyTab
	case '\r', '\n':
		return KeyReturn
	}
	return KeyUnknown
}
