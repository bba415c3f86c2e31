// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/fabiovitalba/piston"
	"github.com/fabiovitalba/piston/record"
)

// GenInputs returns n inputs cycling through every input kind.
func GenInputs(n int) []piston.Input {
	pool := []piston.Input{
		piston.NewControllerAxisArgs(0, 1, 0.5),
		piston.CursorArgs{Visible: true},
		piston.FocusArgs{Focused: true},
		piston.CloseArgs{},
		piston.MouseCursorArgs{X: 10, Y: 20},
		piston.MouseRelativeArgs{DX: 1, DY: -1},
		piston.MouseScrollArgs{DY: 1},
		piston.NewTouchArgs(0, 1, [2]float64{0.5, 0.5}, 1, piston.TouchMove),
		piston.PressArgs{Button: piston.KeyboardButton(piston.KeySpace)},
		piston.ReleaseArgs{Button: piston.KeyboardButton(piston.KeySpace)},
		piston.ResizeArgs{Width: 800, Height: 600},
		piston.TextArgs{Text: "x"},
	}
	out := make([]piston.Input, n)
	for i := range out {
		out[i] = pool[i%len(pool)]
	}
	return out
}

// GenEvents returns n events, one update tick after every three inputs.
func GenEvents(n int) []piston.Event {
	inputs := GenInputs(n)
	out := make([]piston.Event, n)
	for i := range out {
		if i%4 == 3 {
			out[i] = piston.UpdateArgs{DT: 1.0 / 60}
			continue
		}
		out[i] = piston.Wrap(inputs[i])
	}
	return out
}

// GenRecording builds a recording of n events.
func GenRecording(n int) record.Recording {
	rec := record.NewRecording(fmt.Sprintf("bench_%d", n))
	for _, ev := range GenEvents(n) {
		rec.Append(ev)
	}
	return *rec
}

// GenRecordingYAML generates YAML bytes for a recording of n events.
func GenRecordingYAML(n int) []byte {
	data, err := yaml.Marshal(GenRecording(n))
	if err != nil {
		panic(err)
	}
	return data
}

// GenRecordingJSON generates JSON bytes for a recording of n events.
func GenRecordingJSON(n int) []byte {
	data, err := json.Marshal(GenRecording(n))
	if err != nil {
		panic(err)
	}
	return data
}
