package tgc

// sweep reports and reclaims every unreachable node. On entry the
// white list holds every unreachable node (all white) and the alive
// list holds every reachable node (all black). It reports the dead,
// splices survivors back onto the white list in O(1), and flips
// whiteColor so every survivor is already correctly colored for the
// next cycle without a repaint pass.
func (c *Collector) sweep() {
	cur := c.white.next
	for cur != c.white {
		assert(cur.col == c.whiteColor, "sweep: white-list node not white")
		dead := cur
		cur = cur.next // advance before the callback may free dead's owner
		dead.next, dead.prev = nil, nil
		c.log.Debugf("tgc: sweep: dead %v", dead.owner)
		c.dead(c, dead)
	}

	if !empty(c.alive) {
		// Splice the alive list onto (now-empty) white in O(1).
		first, last := c.alive.next, c.alive.prev
		link(c.white, first)
		link(last, c.white)
		link(c.alive, c.alive) // reset alive to an empty self-loop
	} else {
		link(c.white, c.white)
	}

	c.whiteColor = 1 - c.whiteColor
	c.log.Debugf("tgc: sweep: done, white=%d", c.whiteColor)
}
