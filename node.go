package tgc

// color is the tri-color mark state of a Node, stored as a single
// byte. white alternates between 0 and 1 each cycle (Collector.whiteColor);
// grey is always 2; black is whichever of 0/1 white currently isn't.
type color byte

const grey color = 2

// sentinelColor is a distinguished value no registered Node ever
// carries. newSentinel paints sentinels with it so a sentinel never
// compares equal to white, grey or black.
const sentinelColor color = 100

// Node is the bookkeeping record a host embeds in every object it
// wants the collector to track. It carries no data of its own besides
// the list links, its color and the owner value; the host recovers its object from a
// Node via the owner value captured at Register time.
//
// A Node is linked onto exactly one of the collector's two lists at
// any time, except for the brief window between remove and
// push_front during relinking, when both links are nil.
type Node struct {
	next, prev *Node
	col        color
	owner      any
}

// Owner returns the value passed to Register for this Node, letting a
// callback recover the containing object without any unsafe pointer
// arithmetic.
func (n *Node) Owner() any { return n.owner }

func (n *Node) linked() bool { return n.next != nil || n.prev != nil }
