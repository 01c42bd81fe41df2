package tgc_test

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/skipor/tgc/tgctest"
)

// genGraph builds a random directed graph (objects 0..n-1, random
// edges, random root subset) and returns it alongside the plain-Go
// reachability set computed independently of package tgc, so the
// property checks below are never just re-deriving the collector's
// own answer.
func genGraph(t *rapid.T) (*tgctest.Fixture, []*tgctest.Object, map[string]bool) {
	n := rapid.IntRange(1, 24).Draw(t, "n")
	f := tgctest.New()
	objs := make([]*tgctest.Object, n)
	for i := range objs {
		objs[i] = f.NewObject(fmt.Sprintf("obj%d", i))
	}

	edgeGen := rapid.IntRange(0, n-1)
	for _, o := range objs {
		edgeCount := rapid.IntRange(0, 3).Draw(t, "edgeCount")
		for k := 0; k < edgeCount; k++ {
			j := edgeGen.Draw(t, "target")
			o.Refs(objs[j])
		}
	}

	roots := map[int]bool{}
	for i := range objs {
		if rapid.Bool().Draw(t, "isRoot") {
			roots[i] = true
			f.AddRoot(objs[i])
		}
	}

	reachable := map[string]bool{}
	var visit func(i int)
	visit = func(i int) {
		if reachable[objs[i].Name] {
			return
		}
		reachable[objs[i].Name] = true
		for _, c := range objs[i].Children {
			for j, o := range objs {
				if o == c {
					visit(j)
					break
				}
			}
		}
	}
	for i := range roots {
		visit(i)
	}

	return f, objs, reachable
}

func TestPropertyReachabilitySoundnessAndCompleteness(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f, objs, reachable := genGraph(t)

		dead := f.Collect()
		deadNames := map[string]bool{}
		for _, o := range dead {
			deadNames[o.Name] = true
		}

		for _, o := range objs {
			if reachable[o.Name] {
				if deadNames[o.Name] {
					t.Fatalf("reachable object %q was reported dead", o.Name)
				}
				if o.IsDead {
					t.Fatalf("reachable object %q has IsDead set", o.Name)
				}
			} else {
				if !o.IsDead {
					t.Fatalf("unreachable object %q was never collected", o.Name)
				}
			}
		}
	})
}

func TestPropertyCollectIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f, _, _ := genGraph(t)

		f.Collect()
		second := f.Collect()
		if len(second) != 0 {
			t.Fatalf("second collect reported %d dead objects, want 0", len(second))
		}
	})
}
