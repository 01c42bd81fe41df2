package tgc

import "github.com/skipor/tgc/internal/tag"

// Collect runs one full mark-and-sweep cycle: it asks the host (via
// ScanFunc) to discover everything reachable from the roots and from
// there the rest of the live graph, then calls DeadFunc exactly once
// for every registered Node that turned out unreachable.
//
// Calling Collect again with no intervening Register or mutation of
// the scanned graph is a no-op: it issues zero DeadFunc calls and
// leaves the surviving set, modulo the flipped white color, unchanged.
func (c *Collector) Collect() {
	assert(empty(c.alive), "Collect: alive list must be empty on entry")
	c.assertAllWhite()

	c.log.Debugf("tgc: collect: starting")
	c.mark()
	c.sweep()
	c.log.Debugf("tgc: collect: finished")
}

func (c *Collector) assertAllWhite() {
	if !tag.Debug {
		return
	}
	for cur := c.white.next; cur != c.white; cur = cur.next {
		assert(cur.col == c.whiteColor, "Collect: white-list node miscolored on entry")
	}
}
