package tgc

// This file implements the intrusive doubly-linked list primitive the
// collector uses for both its white and alive registries: a
// sentinel-terminated circular list with pushFront and remove, so
// every list is non-nil and non-empty even when logically empty. That
// removes nil checks from the rest of the package's traversal code.

// newSentinel returns a Node that terminates an empty circular list:
// it links to itself and carries a color no real node ever has.
func newSentinel() *Node {
	s := &Node{col: sentinelColor}
	s.next = s
	s.prev = s
	return s
}

// link makes a.next and b.prev point at each other.
func link(a, b *Node) {
	a.next = b
	b.prev = a
}

// pushFront inserts n immediately after sentinel, so sentinel.next is
// always the most recently pushed node. Precondition: n is unlinked.
func pushFront(sentinel, n *Node) {
	assert(!n.linked(), "pushFront: node already linked")
	next := sentinel.next
	link(sentinel, n)
	link(n, next)
}

// remove splices n out of whichever list it's on and unlinks it.
// Precondition: n is linked.
func remove(n *Node) {
	assert(n.linked(), "remove: node not linked")
	link(n.prev, n.next)
	n.next = nil
	n.prev = nil
}

func empty(sentinel *Node) bool { return sentinel.next == sentinel }
