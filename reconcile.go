package lazytree

import (
	"github.com/signadot/lazytree/debug"
	"github.com/signadot/lazytree/ir"
)

// Reconcile takes trees which are guaranteed to share a single
// structure once every virtual node is fully materialized, and
// returns one transform per tree producing the smallest common
// concrete structure: virtual subtrees are materialized exactly
// where topology or declared leaf metadata diverges between the
// trees, and stay lazy everywhere else.
//
// Reconcile fails with *StructureError if the trees' virtual-as-
// leaf flattenings disagree, and with *MetaError if a declared
// leaf metadata disagrees with tree 0's at the same position.
// Both wrap ErrMismatch. Faults are detected before any
// traversal; there is no partial result.
func Reconcile(trees []*ir.Node) ([]Transform, error) {
	identity := func(tree *ir.Node) *ir.Node { return tree }
	if len(trees) <= 1 {
		res := make([]Transform, len(trees))
		for i := range res {
			res[i] = identity
		}
		return res, nil
	}
	paths, err := ReconcilePaths(trees)
	if err != nil {
		return nil, err
	}
	res := make([]Transform, len(trees))
	for i := range trees {
		res[i] = PruningTransform(paths)
	}
	return res, nil
}

// ReconcilePaths computes the materialization frontier of
// Reconcile without building the transforms: the minimal set of
// paths at which the trees' expansions diverge. The returned set
// never contains two paths where one is a prefix of the other.
func ReconcilePaths(trees []*ir.Node) (*ir.PathSet, error) {
	paths := ir.NewPathSet()
	if len(trees) <= 1 {
		return paths, nil
	}

	allLeaves := make([][]*ir.Node, len(trees))
	var s0 *ir.Structure
	for i, tree := range trees {
		leaves, s := ir.Flatten(tree)
		if i == 0 {
			s0 = s
		} else if !s.Equal(s0) {
			return nil, &StructureError{Index: i, Want: s0, Got: s}
		}
		allLeaves[i] = leaves
	}
	want := make([]ir.Meta, len(allLeaves[0]))
	for j, leaf := range allLeaves[0] {
		want[j] = leaf.Meta()
	}
	for i := 1; i < len(trees); i++ {
		for j, leaf := range allLeaves[i] {
			if m := leaf.Meta(); !m.Equal(want[j]) {
				return nil, &MetaError{Index: i, Pos: j, Want: want[j], Got: m}
			}
		}
	}

	// Entries are independent: each is processed once and its
	// outcome depends only on the nodes it carries, so stack
	// order does not affect the result.
	type entry struct {
		path  ir.Path
		nodes []*ir.Node
	}
	stack := make([]entry, 0, len(want))
	for j := range want {
		nodes := make([]*ir.Node, len(trees))
		for i := range trees {
			nodes[i] = allLeaves[i][j]
		}
		stack = append(stack, entry{ir.Path{j}, nodes})
	}

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		anyVirt := false
		for _, n := range e.nodes {
			if n.Type == ir.VirtualType {
				anyVirt = true
				break
			}
		}
		if !anyVirt {
			continue
		}

		children := make([][]*ir.Node, len(e.nodes))
		var s *ir.Structure
		same := true
		for i, n := range e.nodes {
			ls, si := expandAtEntry(n)
			children[i] = ls
			if i == 0 {
				s = si
			} else if !si.Equal(s) {
				same = false
			}
		}
		if !same {
			if debug.Reconcile() {
				debug.Logf("reconcile: structure diverges at %s", e.path)
			}
			paths.Add(e.path)
			continue
		}

		metaDiff := false
		for j := range children[0] {
			m0 := children[0][j].Meta()
			for i := 1; i < len(children); i++ {
				if !children[i][j].Meta().Equal(m0) {
					metaDiff = true
					break
				}
			}
			if metaDiff {
				break
			}
		}
		if metaDiff {
			if debug.Reconcile() {
				debug.Logf("reconcile: metadata diverges under %s", e.path)
			}
			paths.Add(e.path)
			continue
		}

		for j := range children[0] {
			nodes := make([]*ir.Node, len(children))
			for i := range children {
				nodes[i] = children[i][j]
			}
			stack = append(stack, entry{e.path.Child(j), nodes})
		}
	}
	return paths, nil
}

// expandAtEntry peels one layer off a work-set node. Entries mix
// virtual and concrete nodes when only some trees are lazy at a
// position; a concrete node contributes itself under a bare-leaf
// structure, so it never structurally matches a virtual node
// that expands into a container.
func expandAtEntry(n *ir.Node) ([]*ir.Node, *ir.Structure) {
	if n.Type == ir.VirtualType {
		return ExpandOneLayer(n)
	}
	return ir.Flatten(n)
}
