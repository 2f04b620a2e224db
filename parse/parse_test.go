package parse

import (
	"strings"
	"testing"

	"github.com/signadot/lazytree/ir"
)

func TestTreeLeaves(t *testing.T) {
	tree, err := TreeString("- f32[3]\n- f64[]")
	if err != nil {
		t.Fatal(err)
	}
	if tree.Type != ir.ArrayType || len(tree.Values) != 2 {
		t.Fatalf("tree = %v with %d values", tree.Type, len(tree.Values))
	}
	if got := tree.Values[0].Meta().String(); got != "f32[3]" {
		t.Errorf("leaf 0 meta = %s", got)
	}
	if got := tree.Values[1].Meta().String(); got != "f64[]" {
		t.Errorf("leaf 1 meta = %s", got)
	}
}

func TestTreeObjectSortsKeys(t *testing.T) {
	tree, err := TreeString("b: f32[]\na: f32[]")
	if err != nil {
		t.Fatal(err)
	}
	if tree.Fields[0] != "a" || tree.Fields[1] != "b" {
		t.Errorf("fields = %v, want [a b]", tree.Fields)
	}
}

func TestTreeVirtual(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantSub int
	}{
		{
			name:    "bare",
			in:      "$virtual: f32[3]",
			wantSub: 1,
		},
		{
			name:    "with tree",
			in:      "$virtual: f32[6]\n$tree:\n  - f32[3]\n  - f32[3]",
			wantSub: 2,
		},
		{
			name:    "with depth",
			in:      "$virtual: f32[3]\n$depth: 2",
			wantSub: 1,
		},
		{
			name:    "with steps",
			in:      "$virtual: f32[3]\n$steps: 2",
			wantSub: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := TreeString(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if tree.Type != ir.VirtualType {
				t.Fatalf("type = %v, want Virtual", tree.Type)
			}
			sub := tree.Virt.Subtree()
			if len(sub.Values) != tt.wantSub {
				t.Errorf("subtree values = %d, want %d", len(sub.Values), tt.wantSub)
			}
		})
	}
}

func TestTreeNestedVirtual(t *testing.T) {
	tree, err := TreeString(`a:
  $virtual: f32[6]
  $tree:
    - $virtual: f32[3]
    - f32[3]
`)
	if err != nil {
		t.Fatal(err)
	}
	v := ir.Get(tree, "a")
	if v.Type != ir.VirtualType {
		t.Fatalf("a type = %v, want Virtual", v.Type)
	}
	sub := v.Virt.Subtree()
	if sub.Values[0].Type != ir.VirtualType {
		t.Error("nested virtual not parsed")
	}
	if sub.Values[1].Type != ir.LeafType {
		t.Error("nested leaf not parsed")
	}
}

func TestTreeErrs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bad meta", in: "- f32", want: "meta"},
		{name: "bad virtual key", in: "$virtual: f32[3]\n$bogus: 1", want: "$bogus"},
		{name: "bad depth", in: "$virtual: f32[3]\n$depth: x", want: "$depth"},
		{name: "non-string virtual", in: "$virtual: [1]", want: "$virtual"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TreeString(tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err %q does not mention %q", err, tt.want)
			}
		})
	}
}
