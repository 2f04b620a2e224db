package lazytree

import (
	"github.com/signadot/lazytree/debug"
	"github.com/signadot/lazytree/ir"
)

// Depth returns the maximum virtual-nesting depth of tree: the
// number of whole-frontier expansion rounds until no virtual
// node remains. A tree with no virtual nodes has depth 0.
//
// Depth terminates only if every virtual node's expansion
// eventually bottoms out in concrete leaves; that is a
// precondition on inputs, not checked here.
func Depth(tree *ir.Node) int {
	leaves, _ := ir.Flatten(tree)
	depth := 0
	for {
		var next []*ir.Node
		anyVirt := false
		for _, leaf := range leaves {
			if leaf.Type != ir.VirtualType {
				continue
			}
			anyVirt = true
			ls, _ := ExpandOneLayer(leaf)
			next = append(next, ls...)
		}
		if !anyVirt {
			if debug.Depth() {
				debug.Logf("depth %d", depth)
			}
			return depth
		}
		depth++
		leaves = next
	}
}
