package record

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fabiovitalba/piston"
)

// Encoder writes entries as JSON lines.
type Encoder struct {
	enc *json.Encoder
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(w)}
}

// Encode writes v as one line.
func (e *Encoder) Encode(v piston.Value) error {
	return e.EncodeEntry(EntryOf(v))
}

func (e *Encoder) EncodeEntry(entry Entry) error {
	return e.enc.Encode(entry)
}

// Decoder reads JSON lines written by Encoder.
//
// A line is only consumed once its newline has been read. At io.EOF any
// partial line is kept, so Decode may be called again after more data has
// been appended to the underlying file.
type Decoder struct {
	r       *bufio.Reader
	partial []byte
	line    int
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Decode returns the next entry, or io.EOF when no complete line is left.
// Blank lines are skipped.
func (d *Decoder) Decode() (Entry, error) {
	for {
		chunk, err := d.r.ReadBytes('\n')
		d.partial = append(d.partial, chunk...)
		if err != nil {
			return Entry{}, err
		}
		d.line++
		text := bytes.TrimSpace(d.partial)
		if len(text) == 0 {
			d.partial = d.partial[:0]
			continue
		}
		var e Entry
		err = json.Unmarshal(text, &e)
		d.partial = d.partial[:0]
		if err != nil {
			return Entry{}, fmt.Errorf("record: line %d: %w", d.line, err)
		}
		return e, nil
	}
}
