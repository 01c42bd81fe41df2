package tgc

// Register adds n as a new collectible object owned by owner. n must
// be the zero value — freshly constructed, unlinked, uncolored; a node
// that is still linked (for example already registered) or has a
// non-zero color trips a debug-build assertion rather than corrupting a
// list. A node reported dead by Collect is unlinked but keeps its last
// color, so reusing it trips the assertion only when that color is
// non-zero.
//
// The host is expected to embed a Node in the type owner points to and
// pass its address here, e.g.:
//
//	type myObj struct {
//		node tgc.Node
//		...
//	}
//	obj := &myObj{}
//	c.Register(&obj.node, obj)
//
// Register must not be called while a Collect is in progress — the
// collector assumes its registry is stable for the duration of a
// collection. n is on the white list and visible to the next Collect
// once this returns.
func (c *Collector) Register(n *Node, owner any) {
	assert(!n.linked(), "Register: node must be unlinked")
	assert(n.col == 0, "Register: node must have zero color")
	n.owner = owner
	pushFront(c.white, n)
	n.col = c.whiteColor
}
