package ir

import "fmt"

type Type int

const (
	LeafType Type = iota
	VirtualType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		LeafType:    "Leaf",
		VirtualType: "Virtual",
		ArrayType:   "Array",
		ObjectType:  "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Leaf":    LeafType,
		"Virtual": VirtualType,
		"Array":   ArrayType,
		"Object":  ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		LeafType,
		VirtualType,
		ArrayType,
		ObjectType,
	}
}

// IsLeaf reports whether t terminates a tree under the
// virtual-as-leaf convention: both concrete leaves and
// unexpanded virtual nodes count.
func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType:
		return false
	default:
		return true
	}
}
