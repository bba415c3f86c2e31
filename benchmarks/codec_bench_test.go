package benchmarks

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/fabiovitalba/piston/record"
)

func BenchmarkEntryJSON(b *testing.B) {
	evs := GenEvents(256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data, err := json.Marshal(record.EntryOf(evs[i%len(evs)]))
		if err != nil {
			b.Fatal(err)
		}
		var e record.Entry
		if err := json.Unmarshal(data, &e); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecordingYAMLUnmarshal(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		data := GenRecordingYAML(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var rec record.Recording
				if err := yaml.Unmarshal(data, &rec); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRecordingJSONUnmarshal(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		data := GenRecordingJSON(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var rec record.Recording
				if err := json.Unmarshal(data, &rec); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkStreamDecode(b *testing.B) {
	var buf bytes.Buffer
	enc := record.NewEncoder(&buf)
	for _, ev := range GenEvents(1000) {
		if err := enc.Encode(ev); err != nil {
			b.Fatal(err)
		}
	}
	data := buf.Bytes()
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dec := record.NewDecoder(bytes.NewReader(data))
		for {
			if _, err := dec.Decode(); err == io.EOF {
				break
			} else if err != nil {
				b.Fatal(err)
			}
		}
	}
}
