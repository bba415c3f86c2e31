// Package source connects input producers (backends, network peers) to a
// consumer. Producers publish piston.Input values; the consumer ranges over
// Inputs until it is closed.
package source

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/fabiovitalba/piston"
)

// ErrClosed is returned when publishing to a closed source.
var ErrClosed = errors.New("source: closed")

// Source is the consumer side of an input stream.
type Source interface {
	// Inputs is closed after Close. Inputs buffered before Close are still
	// delivered.
	Inputs() <-chan piston.Input
	Done() <-chan struct{}
	Close() error
}

// Publisher is the producer side of an input stream.
type Publisher interface {
	Publish(ctx context.Context, in piston.Input) error
}

// ChannelSource is a Source and Publisher backed by a buffered channel. It
// is safe for concurrent use by any number of producers.
type ChannelSource struct {
	ch   chan piston.Input
	done chan struct{}
	once sync.Once

	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

// NewChannelSource creates a source buffering up to size inputs.
func NewChannelSource(size int) *ChannelSource {
	if size < 0 {
		size = 0
	}
	return &ChannelSource{
		ch:   make(chan piston.Input, size),
		done: make(chan struct{}),
	}
}

func (s *ChannelSource) Inputs() <-chan piston.Input { return s.ch }

func (s *ChannelSource) Done() <-chan struct{} { return s.done }

// Publish blocks until in is buffered, ctx is done, or the source closes.
func (s *ChannelSource) Publish(ctx context.Context, in piston.Input) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	select {
	case s.ch <- in:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return ErrClosed
	}
}

// TryPublish buffers in without blocking. It reports false when the buffer
// is full or the source is closed; full-buffer drops are counted.
func (s *ChannelSource) TryPublish(in piston.Input) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- in:
		return true
	default:
		s.dropped.Add(1)
		return false
	}
}

// Dropped returns how many inputs TryPublish discarded.
func (s *ChannelSource) Dropped() uint64 { return s.dropped.Load() }

// Close stops the source. It is safe to call more than once.
func (s *ChannelSource) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.mu.Lock()
		s.closed = true
		close(s.ch)
		s.mu.Unlock()
	})
	return nil
}
