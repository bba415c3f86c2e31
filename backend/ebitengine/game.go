// Package ebitengine drives a piston event loop from an Ebitengine game.
//
// Ebitengine reports input as per-tick state, so Game diffs that state on
// every Update and emits the changes as inputs, followed by an update tick.
// Draw emits a render and an after-render tick.
package ebitengine

import (
	"context"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/fabiovitalba/piston"
)

// Options configures a Game.
type Options struct {
	// Context ends the game when done. Defaults to context.Background().
	Context context.Context
	// Draw is called after the render event with the screen image.
	Draw func(screen *ebiten.Image)
	// Logger receives diagnostics. Defaults to log.Default().
	Logger *log.Logger
}

type axisKey struct {
	id   ebiten.GamepadID
	axis int
}

// Game implements ebiten.Game. Every event is passed to the handler on the
// game goroutine.
type Game struct {
	handle func(piston.Event)
	opts   Options

	mu            sync.Mutex
	width, height int

	sentW, sentH int
	focused      bool
	inside       bool
	cursorX      int
	cursorY      int
	started      bool
	closing      bool
	axes         map[axisKey]float64
	touches      map[ebiten.TouchID][2]float64

	keyBuf    []ebiten.Key
	runeBuf   []rune
	padBuf    []ebiten.GamepadID
	buttonBuf []ebiten.GamepadButton
	touchBuf  []ebiten.TouchID
}

// New creates a Game that sends its events to handle. The window close
// button is routed through a Close input instead of quitting immediately.
func New(handle func(piston.Event), opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	ebiten.SetWindowClosingHandled(true)
	return &Game{
		handle:  handle,
		opts:    opts,
		axes:    map[axisKey]float64{},
		touches: map[ebiten.TouchID][2]float64{},
	}
}

func (g *Game) input(in piston.Input) {
	g.handle(piston.Wrap(in))
}

// Update polls input state and emits an update tick. After the window has
// been asked to close it emits Close once and ends the game.
func (g *Game) Update() error {
	if g.opts.Context.Err() != nil {
		return ebiten.Termination
	}
	if !g.started {
		g.started = true
		g.focused = ebiten.IsFocused()
		g.input(piston.FocusArgs{Focused: g.focused})
	}

	g.pollWindow()
	g.pollKeys()
	g.pollMouse()
	g.pollGamepads()
	g.pollTouches()

	if ebiten.IsWindowBeingClosed() && !g.closing {
		g.closing = true
		g.input(piston.CloseArgs{})
		return ebiten.Termination
	}

	ev, _ := piston.FromDT(1/float64(ebiten.TPS()), nil)
	g.handle(ev)
	return nil
}

// Draw emits a render event, calls Options.Draw, then emits AfterRender.
// The draw size is the framebuffer size in device pixels.
func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	w, h := g.width, g.height
	g.mu.Unlock()

	scale := ebiten.Monitor().DeviceScaleFactor()
	g.handle(piston.RenderArgs{
		Width:      uint32(w),
		Height:     uint32(h),
		DrawWidth:  uint32(float64(w) * scale),
		DrawHeight: uint32(float64(h) * scale),
	})
	if g.opts.Draw != nil {
		g.opts.Draw(screen)
	}
	g.handle(piston.AfterRenderArgs{})
}

// Layout keeps the screen the size of the window. Size changes are
// reported as Resize on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.mu.Lock()
	g.width, g.height = outsideWidth, outsideHeight
	g.mu.Unlock()
	return outsideWidth, outsideHeight
}

func (g *Game) pollWindow() {
	g.mu.Lock()
	w, h := g.width, g.height
	g.mu.Unlock()
	if (w != g.sentW || h != g.sentH) && w > 0 && h > 0 {
		g.sentW, g.sentH = w, h
		g.input(piston.ResizeArgs{Width: uint32(w), Height: uint32(h)})
	}

	if f := ebiten.IsFocused(); f != g.focused {
		g.focused = f
		g.input(piston.FocusArgs{Focused: f})
	}
}

func (g *Game) pollKeys() {
	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		g.input(piston.PressArgs{Button: piston.KeyboardButton(MapKey(k))})
	}
	g.runeBuf = ebiten.AppendInputChars(g.runeBuf[:0])
	if len(g.runeBuf) > 0 {
		g.input(piston.TextArgs{Text: string(g.runeBuf)})
	}
	g.keyBuf = inpututil.AppendJustReleasedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		g.input(piston.ReleaseArgs{Button: piston.KeyboardButton(MapKey(k))})
	}
}

func (g *Game) pollMouse() {
	x, y := ebiten.CursorPosition()
	if x != g.cursorX || y != g.cursorY {
		if ebiten.CursorMode() == ebiten.CursorModeCaptured {
			g.input(piston.MouseRelativeArgs{DX: float64(x - g.cursorX), DY: float64(y - g.cursorY)})
		} else {
			g.input(piston.MouseCursorArgs{X: float64(x), Y: float64(y)})
		}
		g.cursorX, g.cursorY = x, y
	}

	inside := x >= 0 && y >= 0 && x < g.sentW && y < g.sentH
	if inside != g.inside {
		g.inside = inside
		g.input(piston.CursorArgs{Visible: inside})
	}

	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		switch {
		case inpututil.IsMouseButtonJustPressed(b):
			g.input(piston.PressArgs{Button: piston.MouseButtonOf(MapMouseButton(b))})
		case inpututil.IsMouseButtonJustReleased(b):
			g.input(piston.ReleaseArgs{Button: piston.MouseButtonOf(MapMouseButton(b))})
		}
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		g.input(piston.MouseScrollArgs{DX: dx, DY: dy})
	}
}

func (g *Game) pollGamepads() {
	for k := range g.axes {
		if inpututil.IsGamepadJustDisconnected(k.id) {
			delete(g.axes, k)
		}
	}

	g.padBuf = ebiten.AppendGamepadIDs(g.padBuf[:0])
	for _, id := range g.padBuf {
		n := ebiten.GamepadAxisCount(id)
		for a := 0; a < n; a++ {
			k := axisKey{id: id, axis: a}
			v := ebiten.GamepadAxisValue(id, a)
			if old, ok := g.axes[k]; ok && old == v {
				continue
			}
			g.axes[k] = v
			g.input(piston.NewControllerAxisArgs(int32(id), uint8(a), v))
		}

		g.buttonBuf = inpututil.AppendJustPressedGamepadButtons(id, g.buttonBuf[:0])
		for _, b := range g.buttonBuf {
			g.input(piston.PressArgs{Button: controllerButton(id, b)})
		}
		g.buttonBuf = inpututil.AppendJustReleasedGamepadButtons(id, g.buttonBuf[:0])
		for _, b := range g.buttonBuf {
			g.input(piston.ReleaseArgs{Button: controllerButton(id, b)})
		}
	}
}

func controllerButton(id ebiten.GamepadID, b ebiten.GamepadButton) piston.Button {
	return piston.ControllerButtonOf(piston.ControllerButton{ID: int32(id), Button: uint8(b)})
}

// pollTouches reports positions normalized to the window size.
func (g *Game) pollTouches() {
	if g.sentW == 0 || g.sentH == 0 {
		return
	}
	norm := func(x, y int) [2]float64 {
		return [2]float64{float64(x) / float64(g.sentW), float64(y) / float64(g.sentH)}
	}

	g.touchBuf = inpututil.AppendJustReleasedTouchIDs(g.touchBuf[:0])
	for _, id := range g.touchBuf {
		pos, ok := g.touches[id]
		if !ok {
			pos = norm(inpututil.TouchPositionInPreviousTick(id))
		}
		delete(g.touches, id)
		g.input(piston.NewTouchArgs(0, int64(id), pos, 0, piston.TouchEnd))
	}

	g.touchBuf = ebiten.AppendTouchIDs(g.touchBuf[:0])
	for _, id := range g.touchBuf {
		pos := norm(ebiten.TouchPosition(id))
		old, ok := g.touches[id]
		switch {
		case !ok:
			g.input(piston.NewTouchArgs(0, int64(id), pos, 1, piston.TouchStart))
		case old != pos:
			g.input(piston.NewTouchArgs(0, int64(id), pos, 1, piston.TouchMove))
		default:
			continue
		}
		g.touches[id] = pos
	}
}

// Run opens a window and runs g until it terminates.
func Run(g *Game, title string, width, height int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		g.opts.Logger.Printf("ebitengine: %v", err)
		return err
	}
	return nil
}
