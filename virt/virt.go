// Package virt provides stock ir.Virtual implementations. Hosts
// with their own lazy representations implement ir.Virtual
// directly; these cover fixtures, the CLI and tests.
package virt

import (
	"github.com/signadot/lazytree/ir"
	"github.com/signadot/lazytree/tensor"
)

// FromTree returns a virtual node declaring meta whose one-layer
// expansion is tree. Materialization produces zeros of the
// declared metadata in a single step.
func FromTree(meta ir.Meta, tree *ir.Node) ir.Virtual {
	return &treeNode{meta: meta, tree: tree}
}

type treeNode struct {
	meta ir.Meta
	tree *ir.Node
}

func (v *treeNode) Meta() ir.Meta {
	return v.meta
}

func (v *treeNode) Subtree() *ir.Node {
	return v.tree.Clone()
}

func (v *treeNode) MaterializeStep() *ir.Node {
	return ir.FromLeaf(tensor.Zeros(v.meta))
}

// Chain returns a virtual node nested depth layers deep: each
// expansion yields a single-element array holding the next layer,
// bottoming out in a concrete zeros leaf. Materialization walks
// the same chain one virtual hop per step.
func Chain(depth int, meta ir.Meta) ir.Virtual {
	if depth < 1 {
		panic("virt: chain depth must be >= 1")
	}
	return &chainNode{meta: meta, depth: depth}
}

type chainNode struct {
	meta  ir.Meta
	depth int
}

func (v *chainNode) Meta() ir.Meta {
	return v.meta
}

func (v *chainNode) Subtree() *ir.Node {
	if v.depth == 1 {
		return ir.FromSlice([]*ir.Node{
			ir.FromLeaf(tensor.Zeros(v.meta)),
		})
	}
	return ir.FromSlice([]*ir.Node{
		ir.FromVirtual(&chainNode{meta: v.meta, depth: v.depth - 1}),
	})
}

func (v *chainNode) MaterializeStep() *ir.Node {
	if v.depth == 1 {
		return ir.FromLeaf(tensor.Zeros(v.meta))
	}
	return ir.FromVirtual(&chainNode{meta: v.meta, depth: v.depth - 1})
}

// Stepped returns a virtual node whose expansion bottoms out
// immediately but whose materialization takes steps calls to
// reach a concrete leaf. Exercises materialize loops.
func Stepped(meta ir.Meta, steps int) ir.Virtual {
	if steps < 1 {
		panic("virt: steps must be >= 1")
	}
	return &steppedNode{meta: meta, steps: steps}
}

type steppedNode struct {
	meta  ir.Meta
	steps int
}

func (v *steppedNode) Meta() ir.Meta {
	return v.meta
}

func (v *steppedNode) Subtree() *ir.Node {
	return ir.FromSlice([]*ir.Node{
		ir.FromLeaf(tensor.Zeros(v.meta)),
	})
}

func (v *steppedNode) MaterializeStep() *ir.Node {
	if v.steps == 1 {
		return ir.FromLeaf(tensor.Zeros(v.meta))
	}
	return ir.FromVirtual(&steppedNode{meta: v.meta, steps: v.steps - 1})
}

// Defer returns a virtual node whose one-layer subtree is
// computed by fn on first expansion.
func Defer(meta ir.Meta, fn func() *ir.Node) ir.Virtual {
	return &deferNode{meta: meta, fn: fn}
}

type deferNode struct {
	meta ir.Meta
	fn   func() *ir.Node
	tree *ir.Node
}

func (v *deferNode) Meta() ir.Meta {
	return v.meta
}

func (v *deferNode) Subtree() *ir.Node {
	if v.tree == nil {
		v.tree = v.fn()
	}
	return v.tree.Clone()
}

func (v *deferNode) MaterializeStep() *ir.Node {
	return ir.FromLeaf(tensor.Zeros(v.meta))
}
