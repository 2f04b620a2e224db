package lazytree

import (
	"errors"
	"fmt"

	"github.com/signadot/lazytree/ir"
)

var ErrMismatch = errors.New("trees do not reconcile")

// StructureError reports that an input tree's virtual-as-leaf
// flattening does not match tree 0's.
type StructureError struct {
	Index int
	Want  *ir.Structure
	Got   *ir.Structure
}

func (e *StructureError) Error() string {
	return fmt.Sprintf(
		"tree %d does not have tree 0's structure after virtual-as-leaf flattening: want %s, got %s",
		e.Index, e.Want, e.Got)
}

func (e *StructureError) Unwrap() error {
	return ErrMismatch
}

// MetaError reports that an input tree's declared leaf metadata
// disagrees with tree 0's at the same leaf position.
type MetaError struct {
	Index int
	Pos   int
	Want  ir.Meta
	Got   ir.Meta
}

func (e *MetaError) Error() string {
	return fmt.Sprintf(
		"tree %d declares %s at leaf %d where tree 0 declares %s",
		e.Index, e.Got, e.Pos, e.Want)
}

func (e *MetaError) Unwrap() error {
	return ErrMismatch
}
