package tgc

// mark walks the graph reachable from the root set. On entry every
// registered Node is on the white list colored whiteColor. On exit the
// alive list holds every node reachable from the roots, all colored
// black; everything left on the white list is unreachable.
func (c *Collector) mark() {
	c.log.Debugf("tgc: mark: seeding roots")
	c.scan(c, nil, c.markAlive)

	cur := c.alive.prev
	for cur != c.alive {
		assert(cur.col == grey, "mark: alive-list node not grey at scan time")
		cur.col = c.black()
		c.scan(c, cur, c.markAlive)
		// cur.prev must be read only now: if cur was the current head,
		// scanning it may have pushed fresh grey nodes onto the head,
		// which rewrites cur.prev from the sentinel to the first of
		// them pushed — exactly what lets the loop reach nodes discovered
		// during this same pass before it terminates.
		cur = cur.prev
	}
	c.log.Debugf("tgc: mark: done")
}

// markAlive is the AliveFunc passed to ScanFunc. White targets are
// promoted to the alive list and painted grey; grey/black targets are
// left untouched, which is what makes repeated or duplicate edges to
// the same target a no-op.
func (c *Collector) markAlive(_ *Collector, target *Node) {
	if target.col != c.whiteColor {
		return // already grey or black: nothing to do
	}
	remove(target)
	pushFront(c.alive, target)
	target.col = grey
}

// black is whichever of {0,1} isn't the current white.
func (c *Collector) black() color {
	return 1 - c.whiteColor
}
