package ir

import (
	"maps"
	"slices"
)

// Leaf is the capability surface required of a concrete array
// value. The core reads metadata only, never element data.
type Leaf interface {
	Meta() Meta
}

// Virtual is the capability surface required of a lazy node.
//
// Subtree reports one layer of the node's expansion as a tree
// whose leaves are concrete leaves or further Virtual nodes;
// exactly one level of virtuality is peeled. MaterializeStep
// advances one step toward a concrete value, returning a
// LeafType or VirtualType node; callers loop until a leaf is
// produced.
//
// Meta must be cheap: it declares the shape/type the node will
// eventually materialize to without computing anything. The core
// trusts the declaration (see Reconcile).
type Virtual interface {
	Meta() Meta
	Subtree() *Node
	MaterializeStep() *Node
}

// Node is a tree of ordered containers over concrete and virtual
// leaves. Arrays keep children in Values; objects keep sorted
// keys in Fields with values aligned in Values.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	Fields []string
	Values []*Node

	Leaf Leaf
	Virt Virtual
}

func FromLeaf(v Leaf) *Node {
	return &Node{Type: LeafType, Leaf: v}
}

func FromVirtual(v Virtual) *Node {
	return &Node{Type: VirtualType, Virt: v}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(vs)),
	}
	for i, v := range vs {
		res.Values[i] = v
		v.Parent = res
		v.ParentIndex = i
	}
	return res
}

func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	keys := slices.Sorted(maps.Keys(m))
	res.Fields = make([]string, len(keys))
	res.Values = make([]*Node, len(keys))
	for i, key := range keys {
		v := m[key]
		v.Parent = res
		v.ParentIndex = i
		v.ParentField = key
		res.Fields[i] = key
		res.Values[i] = v
	}
	return res
}

// Get returns the value at field, or nil.
func Get(n *Node, field string) *Node {
	for i := range n.Fields {
		if n.Fields[i] == field {
			return n.Values[i]
		}
	}
	return nil
}

// Meta returns the metadata of a leaf-position node: a concrete
// leaf's own metadata or a virtual node's declared metadata.
// Calling it on a container is a programming error.
func (n *Node) Meta() Meta {
	switch n.Type {
	case LeafType:
		return n.Leaf.Meta()
	case VirtualType:
		return n.Virt.Meta()
	default:
		panic("meta of container node")
	}
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

// CloneTo deep-copies containers; Leaf and Virt payloads are
// shared, they are immutable to this package.
func (n *Node) CloneTo(dst *Node) *Node {
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.ParentField = n.ParentField
	dst.Type = n.Type
	dst.Leaf = n.Leaf
	dst.Virt = n.Virt
	dst.Fields = slices.Clone(n.Fields)
	if n.Values == nil {
		dst.Values = nil
		return dst
	}
	dst.Values = make([]*Node, len(n.Values))
	for i, v := range n.Values {
		dstI := &Node{}
		v.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = v.ParentField
		dst.Values[i] = dstI
	}
	return dst
}

// Visit calls f on n in pre- and post-order. Returning dive=false
// from the pre-order call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
