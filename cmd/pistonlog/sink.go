package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/fabiovitalba/piston"
	"github.com/fabiovitalba/piston/internal/config"
	"github.com/fabiovitalba/piston/record"
	"github.com/fabiovitalba/piston/source"
)

// sink is where recorded values go.
type sink interface {
	Write(v piston.Value) error
	Close() error
}

func openSink(cfg config.Config, backend string, logger *log.Logger) (sink, error) {
	switch cfg.Format {
	case "jsonl":
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		return &streamSink{f: f, enc: record.NewEncoder(f)}, nil
	case "json", "yaml":
		var (
			p   record.Persister
			err error
		)
		if cfg.Format == "json" {
			p, err = record.NewJSONPersister(cfg.Output)
		} else {
			p, err = record.NewYAMLPersister(cfg.Output)
		}
		if err != nil {
			return nil, err
		}
		return &fileSink{p: p, rec: record.NewRecording(backend), logger: logger}, nil
	}
	return nil, fmt.Errorf("unknown format %q", cfg.Format)
}

// streamSink appends one line per value, so show -follow can tail it.
type streamSink struct {
	f   *os.File
	enc *record.Encoder
}

func (s *streamSink) Write(v piston.Value) error { return s.enc.Encode(v) }

func (s *streamSink) Close() error { return s.f.Close() }

// fileSink keeps the recording in memory and saves it on Close.
type fileSink struct {
	p      record.Persister
	rec    *record.Recording
	logger *log.Logger
}

func (s *fileSink) Write(v piston.Value) error {
	s.rec.Append(v)
	return nil
}

func (s *fileSink) Close() error {
	if err := s.p.Save(context.Background(), *s.rec); err != nil {
		return err
	}
	s.logger.Printf("saved session %s (%d entries)", s.rec.Session, len(s.rec.Entries))
	return nil
}

// drain writes every input of src to out until src is closed.
func drain(src source.Source, out sink) error {
	var first error
	for in := range src.Inputs() {
		if err := out.Write(in); err != nil && first == nil {
			first = err
		}
	}
	return first
}
