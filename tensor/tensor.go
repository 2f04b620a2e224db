// Package tensor is a reference array value for lazytree: a
// dense row-major buffer carrying shape/dtype metadata. The core
// algorithms only consume ir.Leaf metadata; element access here
// exists for hosts, fixtures and tests.
package tensor

import (
	"fmt"
	"slices"

	"github.com/signadot/lazytree/ir"
)

type Tensor struct {
	meta ir.Meta
	data []float64
}

func New(dt ir.DType, shape ...int) *Tensor {
	return Zeros(ir.Meta{Shape: shape, DType: dt})
}

func Zeros(meta ir.Meta) *Tensor {
	return &Tensor{
		meta: ir.Meta{Shape: slices.Clone(meta.Shape), DType: meta.DType},
		data: make([]float64, meta.Size()),
	}
}

func Full(meta ir.Meta, v float64) *Tensor {
	res := Zeros(meta)
	for i := range res.data {
		res.data[i] = v
	}
	return res
}

func (t *Tensor) Meta() ir.Meta {
	return t.meta
}

func (t *Tensor) Size() int {
	return len(t.data)
}

func (t *Tensor) At(idx ...int) float64 {
	return t.data[t.offset(idx)]
}

func (t *Tensor) Set(v float64, idx ...int) {
	t.data[t.offset(idx)] = v
}

func (t *Tensor) offset(idx []int) int {
	if len(idx) != len(t.meta.Shape) {
		panic(fmt.Sprintf("tensor: %d indices for rank %d", len(idx), len(t.meta.Shape)))
	}
	off := 0
	for i, d := range t.meta.Shape {
		if idx[i] < 0 || idx[i] >= d {
			panic(fmt.Sprintf("tensor: index %d out of bounds for dim %d (size %d)", idx[i], i, d))
		}
		off = off*d + idx[i]
	}
	return off
}

func (t *Tensor) String() string {
	return "tensor(" + t.meta.String() + ")"
}
