package ir

import (
	"fmt"
	"strings"
)

// IsLeafFunc marks nodes that a walk must not descend into.
type IsLeafFunc func(*Node) bool

type walkConfig struct {
	extra IsLeafFunc
}

type WalkOption func(*walkConfig)

// LeafPredicate adds p to the walk's leaf test. The base test,
// concrete-or-virtual, always applies; p can only widen it, for
// example to stop at a designated container.
func LeafPredicate(p IsLeafFunc) WalkOption {
	return func(c *walkConfig) {
		c.extra = p
	}
}

func (c *walkConfig) isLeaf(n *Node) bool {
	if n.Type.IsLeaf() {
		return true
	}
	return c.extra != nil && c.extra(n)
}

// Structure is a topology fingerprint of a flattened tree:
// container kinds, arities and key sets, independent of what the
// leaves are. Two structures are Equal iff the trees they came
// from have identical topology down to their (virtual-as-)leaves.
type Structure struct {
	skel   *Node
	repr   string
	leaves int
}

func (s *Structure) Equal(o *Structure) bool {
	return s.repr == o.repr
}

func (s *Structure) String() string {
	return s.repr
}

func (s *Structure) NumLeaves() int {
	return s.leaves
}

// Flatten walks tree in container order (arrays by index, objects
// by key order) and returns its leaves together with a Structure
// that can rebuild the tree around substituted leaves. Virtual
// nodes are leaves; see LeafPredicate for widening.
func Flatten(tree *Node, opts ...WalkOption) ([]*Node, *Structure) {
	cfg := &walkConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	var leaves []*Node
	sb := &strings.Builder{}
	skel := flatten(tree, cfg, sb, &leaves)
	return leaves, &Structure{
		skel:   skel,
		repr:   sb.String(),
		leaves: len(leaves),
	}
}

func flatten(n *Node, cfg *walkConfig, sb *strings.Builder, leaves *[]*Node) *Node {
	if cfg.isLeaf(n) {
		*leaves = append(*leaves, n)
		sb.WriteByte('_')
		return &Node{Type: LeafType}
	}
	skel := &Node{
		Type:   n.Type,
		Values: make([]*Node, len(n.Values)),
	}
	switch n.Type {
	case ArrayType:
		sb.WriteByte('[')
		for i, v := range n.Values {
			if i > 0 {
				sb.WriteByte(',')
			}
			vSkel := flatten(v, cfg, sb, leaves)
			vSkel.Parent = skel
			vSkel.ParentIndex = i
			skel.Values[i] = vSkel
		}
		sb.WriteByte(']')
	case ObjectType:
		skel.Fields = make([]string, len(n.Fields))
		sb.WriteByte('{')
		for i, v := range n.Values {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(reprField(n.Fields[i]))
			sb.WriteByte(':')
			vSkel := flatten(v, cfg, sb, leaves)
			vSkel.Parent = skel
			vSkel.ParentIndex = i
			vSkel.ParentField = n.Fields[i]
			skel.Fields[i] = n.Fields[i]
			skel.Values[i] = vSkel
		}
		sb.WriteByte('}')
	default:
		panic("flatten: container expected")
	}
	return skel
}

func reprField(f string) string {
	if strings.IndexAny(f, "'{}[]:,_") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}

// Unflatten rebuilds a tree from this structure and a leaf list,
// substituting leaves into the structure's leaf slots in flatten
// order. Leaves may themselves be subtrees.
func (s *Structure) Unflatten(leaves []*Node) (*Node, error) {
	if len(leaves) != s.leaves {
		return nil, fmt.Errorf("unflatten: %d leaves for structure with %d slots", len(leaves), s.leaves)
	}
	i := 0
	return unflatten(s.skel, leaves, &i), nil
}

func unflatten(skel *Node, leaves []*Node, i *int) *Node {
	if skel.Type == LeafType {
		// clone so the caller's tree keeps its parent links
		leaf := leaves[*i].Clone()
		*i++
		return leaf
	}
	res := &Node{
		Type:   skel.Type,
		Fields: skel.Fields,
		Values: make([]*Node, len(skel.Values)),
	}
	for j, v := range skel.Values {
		c := unflatten(v, leaves, i)
		c.Parent = res
		c.ParentIndex = j
		c.ParentField = v.ParentField
		res.Values[j] = c
	}
	return res
}

// Map applies f to every leaf of tree, preserving structure.
func Map(f func(*Node) *Node, tree *Node, opts ...WalkOption) *Node {
	leaves, s := Flatten(tree, opts...)
	mapped := make([]*Node, len(leaves))
	for i, leaf := range leaves {
		mapped[i] = f(leaf)
	}
	res, err := s.Unflatten(mapped)
	if err != nil {
		panic(err)
	}
	return res
}
