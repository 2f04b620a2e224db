package policy

import (
	"testing"

	"github.com/signadot/lazytree"
	"github.com/signadot/lazytree/ir"
	"github.com/signadot/lazytree/virt"
)

func TestCompileErr(t *testing.T) {
	for _, src := range []string{"", "dtype +", "path + 1", "shape"} {
		if _, err := Compile(src); err == nil {
			t.Errorf("Compile(%q): expected error", src)
		}
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		src  string
		path ir.Path
		meta ir.Meta
		want bool
	}{
		{
			src:  `dtype == "f32"`,
			path: ir.Path{0},
			meta: ir.Meta{Shape: []int{3}, DType: ir.F32},
			want: true,
		},
		{
			src:  `dtype == "f32"`,
			path: ir.Path{0},
			meta: ir.Meta{Shape: []int{3}, DType: ir.F64},
			want: false,
		},
		{
			src:  `depth > 1`,
			path: ir.Path{0, 1},
			meta: ir.Meta{DType: ir.F32},
			want: true,
		},
		{
			src:  `size >= 12`,
			path: ir.Path{0},
			meta: ir.Meta{Shape: []int{3, 4}, DType: ir.F32},
			want: true,
		},
		{
			src:  `path startsWith "$[1]"`,
			path: ir.Path{1, 0},
			meta: ir.Meta{DType: ir.F32},
			want: true,
		},
		{
			src:  `len(shape) == 2 && shape[0] == 3`,
			path: ir.Path{0},
			meta: ir.Meta{Shape: []int{3, 4}, DType: ir.F32},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p, err := Compile(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			got, err := p.Eval(tt.path, tt.meta)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Eval(%s, %s) = %v, want %v", tt.path, tt.meta, got, tt.want)
			}
		})
	}
}

func TestForceAtPrunes(t *testing.T) {
	f3 := ir.Meta{Shape: []int{3}, DType: ir.F32}
	f4 := ir.Meta{Shape: []int{4}, DType: ir.F64}
	tree := ir.FromSlice([]*ir.Node{
		ir.FromVirtual(virt.Stepped(f3, 1)),
		ir.FromVirtual(virt.Stepped(f4, 1)),
	})
	p, err := Compile(`dtype == "f64"`)
	if err != nil {
		t.Fatal(err)
	}
	transform := lazytree.PruningTransform(ir.NewPathSet(), lazytree.ForceAt(p.ForceAt()))
	got := transform(tree)
	if got.Values[0].Type != ir.VirtualType {
		t.Error("f32 position materialized")
	}
	if got.Values[1].Type != ir.LeafType {
		t.Error("f64 position not materialized")
	}
}
