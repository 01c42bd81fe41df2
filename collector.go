// Package tgc implements a small, embeddable tracing garbage
// collector: a host links it in, registers the objects it manages,
// and on Collect gets told which registered objects are no longer
// reachable from its root set.
//
// The collector owns none of the host's memory. It only maintains two
// intrusive lists of Nodes (white: not yet proven reachable this
// cycle; alive: proven reachable) and a color byte per Node, and
// drives two host-supplied callbacks — ScanFunc to discover outgoing
// references, DeadFunc to report unreachable objects — during
// Collect.
package tgc

import "github.com/skipor/tgc/tgclog"

// AliveFunc is passed to ScanFunc; the host calls it once per outgoing
// reference discovered from the object (or root set) being scanned.
// Calling it more than once for the same target within one collection
// is safe and has no additional effect.
type AliveFunc func(c *Collector, target *Node)

// ScanFunc enumerates the outgoing references of obj, calling alive
// once per reference. obj is nil when the collector is asking for the
// root set instead of an object's edges.
//
// ScanFunc must not register new nodes, call Collect, or mutate any
// Node's links directly; it may call alive any number of times,
// including zero.
type ScanFunc func(c *Collector, obj *Node, alive AliveFunc)

// DeadFunc is called once per Node that Collect determined is
// unreachable. The host is free to destroy the containing object as
// soon as this call is made; the collector never touches the Node
// again afterward.
type DeadFunc func(c *Collector, obj *Node)

// Collector holds the registry of tracked Nodes and the two callbacks
// that drive a collection. The zero value is not usable; build one
// with New.
type Collector struct {
	white, alive *Node // sentinels
	scan         ScanFunc
	dead         DeadFunc
	whiteColor   color
	log          tgclog.Logger
}

// Option configures a Collector at construction time.
type Option func(*Collector)

// WithLogger makes the Collector emit Debugf-level traces of its mark
// and sweep phases to l. The default Collector logs nowhere.
func WithLogger(l tgclog.Logger) Option {
	return func(c *Collector) { c.log = l }
}

// New builds a Collector. scan and dead must be non-nil; both lists
// start empty and whiteColor starts at 0.
func New(scan ScanFunc, dead DeadFunc, opts ...Option) *Collector {
	if scan == nil || dead == nil {
		panic("tgc: New requires non-nil scan and dead funcs")
	}
	c := &Collector{
		white: newSentinel(),
		alive: newSentinel(),
		scan:  scan,
		dead:  dead,
		log:   tgclog.Nop,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
