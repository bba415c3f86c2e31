package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/fabiovitalba/piston"
)

var keys = map[ebiten.Key]piston.Key{
	ebiten.KeyA:            piston.KeyA,
	ebiten.KeyB:            piston.KeyB,
	ebiten.KeyC:            piston.KeyC,
	ebiten.KeyD:            piston.KeyD,
	ebiten.KeyE:            piston.KeyE,
	ebiten.KeyF:            piston.KeyF,
	ebiten.KeyG:            piston.KeyG,
	ebiten.KeyH:            piston.KeyH,
	ebiten.KeyI:            piston.KeyI,
	ebiten.KeyJ:            piston.KeyJ,
	ebiten.KeyK:            piston.KeyK,
	ebiten.KeyL:            piston.KeyL,
	ebiten.KeyM:            piston.KeyM,
	ebiten.KeyN:            piston.KeyN,
	ebiten.KeyO:            piston.KeyO,
	ebiten.KeyP:            piston.KeyP,
	ebiten.KeyQ:            piston.KeyQ,
	ebiten.KeyR:            piston.KeyR,
	ebiten.KeyS:            piston.KeyS,
	ebiten.KeyT:            piston.KeyT,
	ebiten.KeyU:            piston.KeyU,
	ebiten.KeyV:            piston.KeyV,
	ebiten.KeyW:            piston.KeyW,
	ebiten.KeyX:            piston.KeyX,
	ebiten.KeyY:            piston.KeyY,
	ebiten.KeyZ:            piston.KeyZ,
	ebiten.KeyDigit0:       piston.Key0,
	ebiten.KeyDigit1:       piston.Key1,
	ebiten.KeyDigit2:       piston.Key2,
	ebiten.KeyDigit3:       piston.Key3,
	ebiten.KeyDigit4:       piston.Key4,
	ebiten.KeyDigit5:       piston.Key5,
	ebiten.KeyDigit6:       piston.Key6,
	ebiten.KeyDigit7:       piston.Key7,
	ebiten.KeyDigit8:       piston.Key8,
	ebiten.KeyDigit9:       piston.Key9,
	ebiten.KeyF1:           piston.KeyF1,
	ebiten.KeyF2:           piston.KeyF2,
	ebiten.KeyF3:           piston.KeyF3,
	ebiten.KeyF4:           piston.KeyF4,
	ebiten.KeyF5:           piston.KeyF5,
	ebiten.KeyF6:           piston.KeyF6,
	ebiten.KeyF7:           piston.KeyF7,
	ebiten.KeyF8:           piston.KeyF8,
	ebiten.KeyF9:           piston.KeyF9,
	ebiten.KeyF10:          piston.KeyF10,
	ebiten.KeyF11:          piston.KeyF11,
	ebiten.KeyF12:          piston.KeyF12,
	ebiten.KeyArrowUp:      piston.KeyUp,
	ebiten.KeyArrowDown:    piston.KeyDown,
	ebiten.KeyArrowLeft:    piston.KeyLeft,
	ebiten.KeyArrowRight:   piston.KeyRight,
	ebiten.KeyBackspace:    piston.KeyBackspace,
	ebiten.KeyTab:          piston.KeyTab,
	ebiten.KeyEnter:        piston.KeyReturn,
	ebiten.KeyEscape:       piston.KeyEscape,
	ebiten.KeySpace:        piston.KeySpace,
	ebiten.KeyQuote:        piston.KeyQuote,
	ebiten.KeyComma:        piston.KeyComma,
	ebiten.KeyMinus:        piston.KeyMinus,
	ebiten.KeyPeriod:       piston.KeyPeriod,
	ebiten.KeySlash:        piston.KeySlash,
	ebiten.KeySemicolon:    piston.KeySemicolon,
	ebiten.KeyEqual:        piston.KeyEquals,
	ebiten.KeyBracketLeft:  piston.KeyLeftBracket,
	ebiten.KeyBracketRight: piston.KeyRightBracket,
	ebiten.KeyBackslash:    piston.KeyBackslash,
	ebiten.KeyBackquote:    piston.KeyBackquote,
	ebiten.KeyDelete:       piston.KeyDelete,
	ebiten.KeyInsert:       piston.KeyInsert,
	ebiten.KeyHome:         piston.KeyHome,
	ebiten.KeyEnd:          piston.KeyEnd,
	ebiten.KeyPageUp:       piston.KeyPageUp,
	ebiten.KeyPageDown:     piston.KeyPageDown,
	ebiten.KeyCapsLock:     piston.KeyCapsLock,
	ebiten.KeyScrollLock:   piston.KeyScrollLock,
	ebiten.KeyPause:        piston.KeyPause,
	ebiten.KeyPrintScreen:  piston.KeyPrintScreen,
	ebiten.KeyControlLeft:  piston.KeyLCtrl,
	ebiten.KeyControlRight: piston.KeyRCtrl,
	ebiten.KeyShiftLeft:    piston.KeyLShift,
	ebiten.KeyShiftRight:   piston.KeyRShift,
	ebiten.KeyAltLeft:      piston.KeyLAlt,
	ebiten.KeyAltRight:     piston.KeyRAlt,
	ebiten.KeyMetaLeft:     piston.KeyLGui,
	ebiten.KeyMetaRight:    piston.KeyRGui,
}

// MapKey translates an ebiten key. Unmapped keys are KeyUnknown.
func MapKey(k ebiten.Key) piston.Key {
	return keys[k]
}

var mouseButtons = map[ebiten.MouseButton]piston.MouseButton{
	ebiten.MouseButtonLeft:   piston.MouseLeft,
	ebiten.MouseButtonMiddle: piston.MouseMiddle,
	ebiten.MouseButtonRight:  piston.MouseRight,
	ebiten.MouseButton3:      piston.MouseX1,
	ebiten.MouseButton4:      piston.MouseX2,
}

// MapMouseButton translates an ebiten mouse button.
func MapMouseButton(b ebiten.MouseButton) piston.MouseButton {
	if m, ok := mouseButtons[b]; ok {
		return m
	}
	return piston.MouseUnknown
}
