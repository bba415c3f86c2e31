package record

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fabiovitalba/piston"
	"github.com/fabiovitalba/piston/testutil"
)

func TestStreamRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	samples := testutil.Samples()
	for _, args := range samples {
		if err := enc.Encode(args); err != nil {
			t.Fatal(err)
		}
	}
	if n := strings.Count(buf.String(), "\n"); n != len(samples) {
		t.Fatalf("got %d lines, want %d", n, len(samples))
	}

	dec := NewDecoder(&buf)
	for i, want := range samples {
		e, err := dec.Decode()
		if err != nil {
			t.Fatalf("line %d: %v", i+1, err)
		}
		if e.Args != want {
			t.Errorf("line %d: got %v, want %v", i+1, e.Args, want)
		}
	}
	if _, err := dec.Decode(); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
}

func TestDecoderResumesPartialLine(t *testing.T) {
	var buf bytes.Buffer
	dec := NewDecoder(&buf)

	buf.WriteString(`{"kind":"focus","ar`)
	if _, err := dec.Decode(); err != io.EOF {
		t.Fatalf("got %v, want io.EOF", err)
	}
	buf.WriteString("gs\":{\"focused\":true}}\n\n")
	e, err := dec.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if e.Args != (piston.FocusArgs{Focused: true}) {
		t.Errorf("got %v", e.Args)
	}
	if _, err := dec.Decode(); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
}

func TestDecoderReportsLine(t *testing.T) {
	dec := NewDecoder(strings.NewReader("{\"kind\":\"close\"}\n{\"kind\":\"bogus\"}\n"))
	if _, err := dec.Decode(); err != nil {
		t.Fatal(err)
	}
	_, err := dec.Decode()
	if !errors.Is(err, ErrUnknownKind) || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("got %v", err)
	}
}
