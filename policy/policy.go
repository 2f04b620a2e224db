// Package policy compiles materialization policy expressions.
// A policy is a boolean expression over a leaf position, eg
//
//	depth > 2
//	dtype == "f32" && size > 1024
//	path startsWith "$[0]"
//
// evaluated against every leaf a pruning transform visits;
// positions it accepts are forced to concrete form in addition
// to the transform's own materialization paths.
package policy

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/lazytree/debug"
	"github.com/signadot/lazytree/ir"
)

// Env is the expression environment for one leaf position.
type Env struct {
	Path  string `expr:"path"`
	Depth int    `expr:"depth"`
	Shape []int  `expr:"shape"`
	DType string `expr:"dtype"`
	Size  int    `expr:"size"`
}

type Policy struct {
	src  string
	prog *vm.Program
}

func Compile(src string) (*Policy, error) {
	prog, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("policy %q: %w", src, err)
	}
	return &Policy{src: src, prog: prog}, nil
}

func (p *Policy) String() string {
	return p.src
}

// Eval evaluates the policy at a leaf position.
func (p *Policy) Eval(path ir.Path, meta ir.Meta) (bool, error) {
	res, err := expr.Run(p.prog, Env{
		Path:  path.String(),
		Depth: len(path),
		Shape: meta.Shape,
		DType: string(meta.DType),
		Size:  meta.Size(),
	})
	if err != nil {
		return false, fmt.Errorf("policy %q at %s: %w", p.src, path, err)
	}
	return res.(bool), nil
}

// ForceAt adapts the policy to a pruning predicate. Evaluation
// errors keep the position lazy; they are reported on stderr
// when LAZYTREE_DEBUG_POLICY is set.
func (p *Policy) ForceAt() func(ir.Path, *ir.Node) bool {
	return func(path ir.Path, leaf *ir.Node) bool {
		if leaf.Type != ir.VirtualType {
			return false
		}
		res, err := p.Eval(path, leaf.Meta())
		if err != nil {
			if debug.Policy() {
				debug.Logf("%v", err)
			}
			return false
		}
		if res && debug.Policy() {
			debug.Logf("policy %q forces %s", p.src, path)
		}
		return res
	}
}
