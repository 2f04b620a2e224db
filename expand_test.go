package lazytree

import (
	"testing"

	"github.com/signadot/lazytree/ir"
	"github.com/signadot/lazytree/tensor"
	"github.com/signadot/lazytree/virt"
)

func TestExpandOneLayerRoundTrip(t *testing.T) {
	sub := ir.FromMap(map[string]*ir.Node{
		"a": ir.FromLeaf(tensor.Zeros(f3)),
		"b": ir.FromSlice([]*ir.Node{
			ir.FromVirtual(virt.Chain(2, f3)),
		}),
	})
	node := ir.FromVirtual(virt.FromTree(ir.Meta{Shape: []int{6}, DType: ir.F32}, sub))

	leaves, s := ExpandOneLayer(node)
	back, err := s.Unflatten(leaves)
	if err != nil {
		t.Fatal(err)
	}
	_, wantS := ir.Flatten(sub)
	_, gotS := ir.Flatten(back)
	if !gotS.Equal(wantS) {
		t.Errorf("structure %s, want %s", gotS, wantS)
	}
	wantLeaves, _ := ir.Flatten(sub)
	for i := range leaves {
		if !leaves[i].Meta().Equal(wantLeaves[i].Meta()) {
			t.Errorf("leaf %d meta %s, want %s", i, leaves[i].Meta(), wantLeaves[i].Meta())
		}
	}
}

func TestExpandOneLayerPeelsOne(t *testing.T) {
	node := ir.FromVirtual(virt.Chain(3, f3))
	leaves, _ := ExpandOneLayer(node)
	if len(leaves) != 1 {
		t.Fatalf("leaves = %d, want 1", len(leaves))
	}
	if leaves[0].Type != ir.VirtualType {
		t.Error("nested virtual not kept opaque")
	}
}

func TestExpandOneLayerPanicsOnConcrete(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	ExpandOneLayer(ir.FromLeaf(tensor.Zeros(f3)))
}

func TestMaterialize(t *testing.T) {
	n := ir.FromVirtual(virt.Stepped(f3, 3))
	got := Materialize(n)
	if got.Type != ir.LeafType {
		t.Fatalf("type = %v", got.Type)
	}
	if !got.Meta().Equal(f3) {
		t.Errorf("meta = %s, want %s", got.Meta(), f3)
	}
}

func TestMaterializeConcretePassThrough(t *testing.T) {
	n := ir.FromLeaf(tensor.Zeros(f3))
	if got := Materialize(n); got != n {
		t.Error("concrete leaf not passed through")
	}
}
