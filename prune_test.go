package lazytree

import (
	"testing"

	"github.com/signadot/lazytree/ir"
	"github.com/signadot/lazytree/tensor"
	"github.com/signadot/lazytree/virt"
)

func TestPruningTransformIdentity(t *testing.T) {
	tree := ir.FromSlice([]*ir.Node{
		ir.FromVirtual(virt.Chain(2, f3)),
	})
	transform := PruningTransform(ir.NewPathSet())
	if got := transform(tree); got != tree {
		t.Error("empty path set is not the identity")
	}
}

func TestPruningTransformMaterializesAtPath(t *testing.T) {
	lazyKept := ir.FromVirtual(virt.Chain(2, f3))
	tree := ir.FromSlice([]*ir.Node{
		ir.FromVirtual(virt.Stepped(f3, 2)),
		lazyKept,
	})
	transform := PruningTransform(ir.NewPathSet(ir.Path{0}))
	got := transform(tree)

	if got.Values[0].Type != ir.LeafType {
		t.Fatalf("position 0 type = %v, want Leaf", got.Values[0].Type)
	}
	if !got.Values[0].Meta().Equal(f3) {
		t.Errorf("position 0 meta = %s, want %s", got.Values[0].Meta(), f3)
	}
	if got.Values[1].Type != ir.VirtualType {
		t.Fatal("position 1 lost laziness")
	}
	if got.Values[1].Virt != lazyKept.Virt {
		t.Error("position 1 virtual not referentially preserved")
	}
	// input untouched
	if tree.Values[0].Type != ir.VirtualType {
		t.Error("input tree mutated")
	}
}

func TestPruningTransformConcreteAtPath(t *testing.T) {
	concrete := tensor.Zeros(f3)
	tree := ir.FromSlice([]*ir.Node{ir.FromLeaf(concrete)})
	transform := PruningTransform(ir.NewPathSet(ir.Path{0}))
	got := transform(tree)
	if got.Values[0].Leaf != ir.Leaf(concrete) {
		t.Error("concrete leaf at stopped path replaced")
	}
}

func TestPruningTransformDescendsToDeepPath(t *testing.T) {
	inner := ir.FromVirtual(virt.Stepped(ir.Meta{Shape: []int{4}, DType: ir.F32}, 1))
	kept := ir.FromLeaf(tensor.Zeros(f3))
	root := ir.FromVirtual(virt.FromTree(
		ir.Meta{Shape: []int{8}, DType: ir.F32},
		ir.FromSlice([]*ir.Node{inner, kept}),
	))
	tree := ir.FromSlice([]*ir.Node{root})

	transform := PruningTransform(ir.NewPathSet(ir.Path{0, 0}))
	got := transform(tree)

	// the root virtual is expanded one layer to reach $[0][0]
	sub := got.Values[0]
	if sub.Type != ir.ArrayType {
		t.Fatalf("expanded subtree type = %v, want Array", sub.Type)
	}
	if sub.Values[0].Type != ir.LeafType {
		t.Errorf("position $[0][0] type = %v, want Leaf", sub.Values[0].Type)
	}
	if sub.Values[1].Type != ir.LeafType || !sub.Values[1].Meta().Equal(f3) {
		t.Errorf("position $[0][1] = %v %s", sub.Values[1].Type, sub.Values[1].Meta())
	}
}

func TestForceAt(t *testing.T) {
	tree := ir.FromSlice([]*ir.Node{
		ir.FromVirtual(virt.Stepped(f3, 1)),
		ir.FromVirtual(virt.Stepped(ir.Meta{Shape: []int{4}, DType: ir.F64}, 1)),
	})
	transform := PruningTransform(ir.NewPathSet(), ForceAt(func(p ir.Path, leaf *ir.Node) bool {
		return leaf.Type == ir.VirtualType && leaf.Meta().DType == ir.F64
	}))
	got := transform(tree)
	if got.Values[0].Type != ir.VirtualType {
		t.Error("unforced position materialized")
	}
	if got.Values[1].Type != ir.LeafType {
		t.Error("forced position not materialized")
	}
}
