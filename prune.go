package lazytree

import (
	"github.com/signadot/lazytree/debug"
	"github.com/signadot/lazytree/ir"
)

// Transform rewrites a tree. Transforms returned by this package
// never mutate their input.
type Transform func(*ir.Node) *ir.Node

type pruneConfig struct {
	force []func(ir.Path, *ir.Node) bool
}

type PruneOption func(*pruneConfig)

// ForceAt adds a predicate forcing materialization at any leaf
// position the transform visits and the predicate accepts, in
// addition to the transform's path set. The transform visits the
// top-level leaves and the positions opened up on the way to its
// materialization paths. See the policy package for
// expression-driven predicates.
func ForceAt(p func(ir.Path, *ir.Node) bool) PruneOption {
	return func(c *pruneConfig) {
		c.force = append(c.force, p)
	}
}

// PruningTransform returns a transform that fully materializes
// the subtrees at the given paths and keeps every other leaf as
// lazily represented as in its input: a virtual node is expanded
// (one layer at a time) only when a materialization path lies
// strictly below it, and is otherwise passed through untouched.
// With an empty path set and no options the transform is the
// identity.
func PruningTransform(paths *ir.PathSet, opts ...PruneOption) Transform {
	cfg := &pruneConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if paths.Len() == 0 && len(cfg.force) == 0 {
		return func(tree *ir.Node) *ir.Node { return tree }
	}
	forced := func(p ir.Path, leaf *ir.Node) bool {
		for _, force := range cfg.force {
			if force(p, leaf) {
				return true
			}
		}
		return false
	}
	stop := func(p ir.Path, leaf *ir.Node) bool {
		if paths.Has(p) || forced(p, leaf) {
			return true
		}
		// nothing recorded below: stay lazy
		return !paths.HasExtensionOf(p)
	}
	f := func(p ir.Path, leaf *ir.Node) *ir.Node {
		if leaf.Type != ir.VirtualType {
			return leaf
		}
		if !paths.Has(p) && !forced(p, leaf) {
			return leaf
		}
		if debug.Prune() {
			debug.Logf("prune: materialize %s at %s", leaf.Virt.Meta(), p)
		}
		return Materialize(leaf)
	}
	return func(tree *ir.Node) *ir.Node {
		leaves, s := ir.Flatten(tree)
		mapped := mapLeavesWithPath(f, leaves, stop, nil)
		res, err := s.Unflatten(mapped)
		if err != nil {
			panic(err)
		}
		return res
	}
}
