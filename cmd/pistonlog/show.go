package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fabiovitalba/piston/internal/config"
	"github.com/fabiovitalba/piston/record"
)

func runShow(ctx context.Context, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	follow := fs.Bool("follow", false, "keep printing a jsonl recording as it grows")
	dot := fs.Bool("dot", false, "print the kind transition graph in DOT format")
	summary := fs.Bool("summary", false, "print the number of entries per kind")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("show: expected one recording path")
	}
	path := fs.Arg(0)
	format, err := config.RecordingFormat(path)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}

	if *dot || *summary {
		if *follow {
			return errors.New("show: -follow cannot be combined with -dot or -summary")
		}
		rec, err := loadRecording(ctx, path, format)
		if err != nil {
			return err
		}
		if *dot {
			fmt.Fprint(w, record.ExportDOT(rec))
		}
		if *summary {
			for _, kc := range record.Summary(rec) {
				fmt.Fprintf(w, "%-16s %d\n", kc.Kind, kc.Count)
			}
		}
		return nil
	}

	if format != "jsonl" {
		if *follow {
			return errors.New("show: -follow needs a jsonl recording")
		}
		return showRecording(ctx, path, format, w)
	}
	return showStream(ctx, path, *follow, w)
}

// showRecording prints a file saved by a persister.
func showRecording(ctx context.Context, path, format string, w io.Writer) error {
	rec, err := loadSaved(ctx, path, format)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "session %s backend %s created %s\n", rec.Session, rec.Backend, rec.Created.Format(time.RFC3339))
	for _, e := range rec.Entries {
		fmt.Fprintln(w, e)
	}
	return nil
}

// loadRecording reads a whole recording of any format.
func loadRecording(ctx context.Context, path, format string) (record.Recording, error) {
	if format != "jsonl" {
		return loadSaved(ctx, path, format)
	}
	f, err := os.Open(path)
	if err != nil {
		return record.Recording{}, err
	}
	defer f.Close()

	var rec record.Recording
	dec := record.NewDecoder(f)
	for {
		e, err := dec.Decode()
		if err == io.EOF {
			return rec, nil
		}
		if err != nil {
			return rec, err
		}
		rec.Entries = append(rec.Entries, e)
	}
}

// loadSaved loads a file written by a persister. The file name is the
// session id.
func loadSaved(ctx context.Context, path, format string) (record.Recording, error) {
	ext := filepath.Ext(path)
	dir := filepath.Dir(path)
	session := strings.TrimSuffix(filepath.Base(path), ext)

	var (
		p   record.Persister
		err error
	)
	if format == "json" {
		p, err = record.NewJSONPersister(dir)
	} else {
		p, err = record.NewYAMLPersister(dir)
	}
	if err != nil {
		return record.Recording{}, err
	}
	return p.Load(ctx, session)
}

func showStream(ctx context.Context, path string, follow bool, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := record.NewDecoder(f)
	if err := printEntries(dec, w); err != nil || !follow {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("show: watch: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("show: watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Write) {
				if err := printEntries(dec, w); err != nil {
					return err
				}
			}
			if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("show: watch: %w", err)
		}
	}
}

// printEntries prints every complete line available now.
func printEntries(dec *record.Decoder, w io.Writer) error {
	for {
		e, err := dec.Decode()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w, e)
	}
}
