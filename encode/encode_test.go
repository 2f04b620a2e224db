package encode

import (
	"bytes"
	"testing"

	"github.com/signadot/lazytree/ir"
	"github.com/signadot/lazytree/parse"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "leaf",
			in:   "f32[3]",
			want: "f32[3]\n",
		},
		{
			name: "array",
			in:   "- f32[3]\n- f64[]",
			want: "- f32[3]\n- f64[]\n",
		},
		{
			name: "object",
			in:   "b: f32[]\na: f32[3]",
			want: "a: f32[3]\nb: f32[]\n",
		},
		{
			name: "virtual",
			in:   "$virtual: f32[6]",
			want: "virtual(f32[6])\n",
		},
		{
			name: "nested",
			in:   "a:\n  - f32[3]\n  - b: f32[]",
			want: "a:\n  - f32[3]\n  -\n    b: f32[]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := parse.TreeString(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			buf := &bytes.Buffer{}
			if err := Encode(tree, buf); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestEncodeEmptyContainers(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(ir.FromSlice(nil), buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "[]\n" {
		t.Errorf("empty array = %q", got)
	}
}
