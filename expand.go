// Package lazytree reconciles trees whose leaves may be lazy
// virtual nodes. Virtual nodes expand on demand into further
// subtrees; given several trees known to be isomorphic once fully
// materialized, Reconcile computes the minimal set of positions
// that must be forced to concrete form for the trees to agree
// structurally, leaving everything else lazy.
package lazytree

import (
	"github.com/signadot/lazytree/debug"
	"github.com/signadot/lazytree/ir"
)

// ExpandOneLayer peels exactly one layer of virtuality off n,
// returning the leaves of the node's immediate subtree and its
// structure. Children may themselves be virtual. Calling it on a
// non-virtual node is a programming error and panics.
func ExpandOneLayer(n *ir.Node) ([]*ir.Node, *ir.Structure) {
	if n.Type != ir.VirtualType {
		panic("lazytree: expand of non-virtual node")
	}
	leaves, s := ir.Flatten(n.Virt.Subtree())
	if debug.Expand() {
		debug.Logf("expand %s -> %d leaves %s", n.Virt.Meta(), len(leaves), s)
	}
	return leaves, s
}

// Materialize forces a leaf-position node to concrete form,
// stepping a virtual node's materialization until it yields a
// concrete leaf. Concrete leaves pass through unchanged.
func Materialize(n *ir.Node) *ir.Node {
	for n.Type == ir.VirtualType {
		n = n.Virt.MaterializeStep()
	}
	if n.Type != ir.LeafType {
		panic("lazytree: materialize step returned a container")
	}
	return n
}
