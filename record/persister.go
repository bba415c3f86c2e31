package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by Load when no recording exists for a session.
// It wraps os.ErrNotExist.
var ErrNotFound = fmt.Errorf("record: recording not found: %w", os.ErrNotExist)

// Persister stores whole recordings keyed by session.
type Persister interface {
	Save(ctx context.Context, rec Recording) error
	Load(ctx context.Context, session string) (Recording, error)
}

// JSONPersister writes one indented JSON file per session.
type JSONPersister struct {
	dir string
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister(dir string) (*JSONPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONPersister{dir: dir}, nil
}

func (p *JSONPersister) Save(ctx context.Context, rec Recording) error {
	fn, err := sessionFile(p.dir, rec.Session, ".json")
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (p *JSONPersister) Load(ctx context.Context, session string) (Recording, error) {
	data, err := readSession(ctx, p.dir, session, ".json")
	if err != nil {
		return Recording{}, err
	}
	var rec Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return Recording{}, fmt.Errorf("json unmarshal: %w", err)
	}
	rec.Session = session
	return rec, nil
}

// YAMLPersister writes one YAML file per session.
type YAMLPersister struct {
	dir string
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister(dir string) (*YAMLPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLPersister{dir: dir}, nil
}

func (p *YAMLPersister) Save(ctx context.Context, rec Recording) error {
	fn, err := sessionFile(p.dir, rec.Session, ".yaml")
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (p *YAMLPersister) Load(ctx context.Context, session string) (Recording, error) {
	data, err := readSession(ctx, p.dir, session, ".yaml")
	if err != nil {
		return Recording{}, err
	}
	var rec Recording
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Recording{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	rec.Session = session
	return rec, nil
}

// sessionFile rejects anything that is not a UUID so a session can never
// name a path outside dir.
func sessionFile(dir, session, ext string) (string, error) {
	if _, err := uuid.Parse(session); err != nil {
		return "", fmt.Errorf("record: invalid session %q: %w", session, err)
	}
	return filepath.Join(dir, session+ext), nil
}

func readSession(ctx context.Context, dir, session, ext string) ([]byte, error) {
	fn, err := sessionFile(dir, session, ext)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("session %q: %w", session, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", fn, err)
	}
	return data, nil
}
