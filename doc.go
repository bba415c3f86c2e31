// Package piston provides backend-agnostic input and application events.
//
// Every event belongs to one of a closed set of kinds (button press, mouse
// motion, controller axis, resize, text, update tick, ...). Each kind has
// an identity (EventID) and one payload record type. The payload type is
// also the variant: a CursorArgs value is an Input, an UpdateArgs value is
// an Event, so a constructed value can never carry a payload that disagrees
// with its identity.
//
// # Composites
//
// Input is raw device/window input. Motion is the subset of Input that
// describes movement (mouse cursor, relative mouse, scroll, controller axis,
// touch). Event is the application-level value: update, render, after-render
// and idle ticks, or an Input lifted by Wrap.
//
//	in := piston.ResizeArgs{Width: 640, Height: 480} // an Input
//	ev := piston.Wrap(in)                              // an Event
//
// # Lenses
//
// A Lens is the construct/match pair for one kind. Code that knows the kind
// it cares about uses lenses directly:
//
//	if args, ok := piston.UpdateLens.Args(ev); ok {
//		world.Step(args.DT)
//	}
//	if pos, ok := piston.Match(ev, piston.MouseCursorLens, func(a piston.MouseCursorArgs) [2]float64 {
//		return [2]float64{a.X, a.Y}
//	}); ok {
//		cursor = pos
//	}
//
// On a wrapped input every input-kind lens looks through to the wrapped Input.
// Tick kinds are answered by the Event itself and never delegated.
//
// # Generic dispatch
//
// Code that must work without naming kinds (recorders, network bridges,
// generic event-loop glue) uses the facade instead:
//
//	id := ev.EventID()
//	args := piston.WithArgs(ev, func(a piston.Args) piston.Args { return a })
//	rebuilt, ok := piston.EventFromArgs(id, args, ev)
//
// EventFromArgs and InputFromArgs return false for identifiers the layer
// does not handle. A payload whose kind disagrees with the identifier is a
// broken caller contract and panics with a *ContractError; CheckArgs runs
// the same test and returns the error instead.
//
// Identifiers are opaque. Compare them, log them, but never persist their
// numeric value; the record package has its own stable kind names.
//
// # Concurrency
//
// Everything in this package is a pure function over immutable values. Values
// may be shared between goroutines freely.
package piston
