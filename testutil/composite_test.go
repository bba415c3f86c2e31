package testutil

import (
	"testing"

	"github.com/fabiovitalba/piston"
)

func TestLensLaws(t *testing.T) {
	RunLensLaws(t)
}

func TestSamplesCoverEveryKind(t *testing.T) {
	seen := map[piston.EventID]bool{}
	for _, a := range Samples() {
		seen[a.EventID()] = true
	}
	for _, id := range piston.IDs() {
		if !seen[id] {
			t.Errorf("no sample for kind %s", id)
		}
	}
}

func TestExtractorsCoverEveryKind(t *testing.T) {
	ex := Extractors()
	if len(ex) != len(piston.IDs()) {
		t.Errorf("got %d extractors, want %d", len(ex), len(piston.IDs()))
	}
	for _, id := range piston.IDs() {
		if _, ok := ex[id]; !ok {
			t.Errorf("no extractor for kind %s", id)
		}
	}
}

func TestCompositesAgreeOnInputKinds(t *testing.T) {
	in, ev := InputComposite{}, EventComposite{}
	for _, id := range piston.IDs() {
		if in.Accepts(id) && !ev.Accepts(id) {
			t.Errorf("Event rejects input kind %s", id)
		}
		if piston.IsTick(id) && in.Accepts(id) {
			t.Errorf("Input accepts tick kind %s", id)
		}
	}
}

func TestBuildersCoverEveryKind(t *testing.T) {
	b := Builders()
	for _, id := range piston.IDs() {
		if _, ok := b[id]; !ok {
			t.Errorf("no builder for kind %s", id)
		}
	}
}

func TestLensFromInputRejectsTicks(t *testing.T) {
	b := Builders()
	for _, args := range Samples() {
		id := args.EventID()
		in, ok := b[id].Input(args, piston.FocusArgs{})
		if piston.IsTick(id) {
			if ok || in != nil {
				t.Errorf("FromInput(%s) = %v, %v; want nil, false", id, in, ok)
			}
			continue
		}
		if !ok {
			t.Errorf("FromInput(%s) failed", id)
		}
	}
}

// The lens path and the facade path build identical values.
func TestLensAndFacadeAgree(t *testing.T) {
	pairs := [][2]Composite{
		{InputComposite{}, InputLensComposite{}},
		{EventComposite{}, EventLensComposite{}},
	}
	for _, p := range pairs {
		for _, args := range Samples() {
			a, okA := p[0].Build(args, p[0].Stale())
			b, okB := p[1].Build(args, p[1].Stale())
			if okA != okB || a != b {
				t.Errorf("%s vs %s on %s: %v, %v vs %v, %v",
					p[0].Name(), p[1].Name(), args.EventID(), a, okA, b, okB)
			}
		}
	}
}
