package piston

import (
	"errors"
	"fmt"
)

// ErrContract is matched by every *ContractError.
var ErrContract = errors.New("piston: payload does not match event id")

// ContractError reports a payload whose kind disagrees with the identifier
// it was paired with. Got is nil when no payload was supplied.
type ContractError struct {
	ID  EventID
	Got Args
}

func (e *ContractError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("piston: event id %s paired with nil payload", e.ID)
	}
	return fmt.Sprintf("piston: event id %s paired with %T (id %s)", e.ID, e.Got, e.Got.EventID())
}

func (e *ContractError) Unwrap() error { return ErrContract }

// CheckArgs reports whether args is the payload type for id.
func CheckArgs(id EventID, args Args) error {
	if args == nil || args.EventID() != id {
		return &ContractError{ID: id, Got: args}
	}
	return nil
}

func mustMatch(id EventID, args Args) {
	if err := CheckArgs(id, args); err != nil {
		panic(err)
	}
}

// WithArgs calls f with the erased payload of v. For a wrapped input the
// payload is the input itself.
func WithArgs[U any](v Value, f func(Args) U) U {
	switch x := v.(type) {
	case inputEvent:
		return f(x.in)
	case Args:
		return f(x)
	}
	panic(fmt.Sprintf("piston: WithArgs on %T", v))
}

// InputFromArgs rebuilds an Input from an identifier and erased payload.
// It reports false when id is not an input kind. A payload that does not
// belong to id panics with *ContractError.
func InputFromArgs(id EventID, args Args, old Input) (Input, bool) {
	if !id.Valid() || IsTick(id) {
		return nil, false
	}
	mustMatch(id, args)
	return args.(Input), true
}

// EventFromArgs rebuilds an Event from an identifier and erased payload.
// Tick kinds are built directly; every other identifier is handed to
// InputFromArgs and a result is lifted with Wrap. A payload that does
// not belong to id panics with *ContractError.
func EventFromArgs(id EventID, args Args, old Event) (Event, bool) {
	if IsTick(id) {
		mustMatch(id, args)
		return args.(Event), true
	}
	oldInput, _ := InputOf(old)
	in, ok := InputFromArgs(id, args, oldInput)
	if !ok {
		return nil, false
	}
	return inputEvent{in: in}, true
}
