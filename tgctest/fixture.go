// Package tgctest provides a small graph-building test harness around
// package tgc: named objects with explicit edges and an explicit
// expectation of which ones should die on the next Collect.
package tgctest

import (
	"sort"

	"github.com/google/go-cmp/cmp"

	"github.com/skipor/tgc"
)

// Object is a named, edge-holding collectible used by tests and by
// cmd/tgcdemo to build toy object graphs.
type Object struct {
	Name     string
	Node     tgc.Node
	Children []*Object

	// ShouldDie and IsDead record the test's expectation and the
	// actual outcome: the test declares ShouldDie up front, the dead
	// callback sets IsDead when it fires.
	ShouldDie bool
	IsDead    bool
}

// Refs records an outgoing edge from o to target.
func (o *Object) Refs(target *Object) {
	o.Children = append(o.Children, target)
}

// Fixture owns a Collector plus the named objects registered through
// it, and the current root set. It is intentionally not safe for
// concurrent use, matching the collector it wraps.
type Fixture struct {
	Collector *tgc.Collector
	objects   []*Object
	roots     []*Object
	dead      []*Object
}

// New builds a Fixture. opts are forwarded to tgc.New (e.g.
// tgc.WithLogger).
func New(opts ...tgc.Option) *Fixture {
	f := &Fixture{}
	f.Collector = tgc.New(f.scan, f.free, opts...)
	return f
}

// NewObject registers and returns a new named Object.
func (f *Fixture) NewObject(name string) *Object {
	o := &Object{Name: name}
	f.Collector.Register(&o.Node, o)
	f.objects = append(f.objects, o)
	return o
}

// AddRoot marks o as a member of the root set.
func (f *Fixture) AddRoot(o *Object) {
	f.roots = append(f.roots, o)
}

// RemoveRoot drops o from the root set, if present.
func (f *Fixture) RemoveRoot(o *Object) {
	kept := f.roots[:0]
	for _, r := range f.roots {
		if r != o {
			kept = append(kept, r)
		}
	}
	f.roots = kept
}

func (f *Fixture) scan(c *tgc.Collector, n *tgc.Node, alive tgc.AliveFunc) {
	if n == nil {
		for _, r := range f.roots {
			alive(c, &r.Node)
		}
		return
	}
	o := n.Owner().(*Object)
	for _, child := range o.Children {
		alive(c, &child.Node)
	}
}

func (f *Fixture) free(c *tgc.Collector, n *tgc.Node) {
	o := n.Owner().(*Object)
	o.IsDead = true
	f.dead = append(f.dead, o)
}

// Collect runs one collection cycle and returns every Object whose
// DeadFunc fired during it, in the order the collector delivered them.
func (f *Fixture) Collect() []*Object {
	f.dead = nil
	f.Collector.Collect()
	return f.dead
}

// AssertExpectations fails (via t) if the set of objects that actually
// died doesn't match the set that was expected to, reporting the
// mismatch as a diff of sorted names.
func (f *Fixture) AssertExpectations(t interface{ Fatalf(string, ...any) }) {
	var wantDead, gotDead []string
	for _, o := range f.objects {
		if o.ShouldDie {
			wantDead = append(wantDead, o.Name)
		}
		if o.IsDead {
			gotDead = append(gotDead, o.Name)
		}
	}
	sort.Strings(wantDead)
	sort.Strings(gotDead)
	if diff := cmp.Diff(wantDead, gotDead); diff != "" {
		t.Fatalf("dead object set mismatch (-want +got):\n%s", diff)
	}
}
