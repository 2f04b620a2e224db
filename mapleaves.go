package lazytree

import (
	"github.com/signadot/lazytree/ir"
)

// mapLeavesWithPath applies f to every leaf reachable from
// leaves, addressing each by its integer path under prefix.
// Non-virtual leaves, and leaves for which stop fires, are passed
// to f directly; other virtual leaves are expanded one layer and
// recursed into, the mapped sublayer reassembled through its own
// structure.
func mapLeavesWithPath(
	f func(ir.Path, *ir.Node) *ir.Node,
	leaves []*ir.Node,
	stop func(ir.Path, *ir.Node) bool,
	prefix ir.Path,
) []*ir.Node {
	mapped := make([]*ir.Node, len(leaves))
	for i, leaf := range leaves {
		path := prefix.Child(i)
		if leaf.Type != ir.VirtualType || stop(path, leaf) {
			mapped[i] = f(path, leaf)
			continue
		}
		sub, subStruct := ExpandOneLayer(leaf)
		mappedSub := mapLeavesWithPath(f, sub, stop, path)
		t, err := subStruct.Unflatten(mappedSub)
		if err != nil {
			// same leaf count by construction
			panic(err)
		}
		mapped[i] = t
	}
	return mapped
}
