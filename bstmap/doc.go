/*
Package bstmap implements an ordered map with unique keys on top of a plain
(unbalanced) binary search tree.

Entries are stored as pair.Pair values of key and mapped value. The ordering
of keys is defined by a client-provided strict weak ordering, a LessFunc.
Two keys a and b are considered equivalent if neither Less(a, b) nor
Less(b, a) holds. Keys are never changed once inserted; mapped values may be
updated through iterators or references.

# Sentinels

Every map owns two sentinel nodes which never carry an entry: one past the
last entry ("end") and one before the first entry ("rend"). In a non-empty
map, end is the right child of the maximum and rend is the left child of the
minimum. This lets the in-order successor of the maximum be end and the
predecessor of the minimum be rend, with no special cases during iteration:

	         (m)
	        /   \
	     (a)     (z)
	    /           \
	[rend]          [end]

In an empty map there is no root, and rend is parked below end. Begin() and
End() are then equal.

# Complexity

The tree is not rebalanced. Find, Insert and Erase are O(h), where h is the
height of the tree; for sorted insertion sequences h degrades to n. LowerBound
and UpperBound are linear scans.

Iterators refer to tree nodes. Nodes never move, so iterators stay valid
across insertions and across erasure of other entries. Erasing an entry
invalidates iterators to it.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bstmap

import (
	"github.com/npillmayer/containers"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer of the containers module.
func tracer() tracing.Trace {
	return containers.T()
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
