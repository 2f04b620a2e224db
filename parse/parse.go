// Package parse reads the YAML fixture notation for lazy trees.
//
// Mappings become objects, sequences become arrays, and scalar
// leaves are metadata strings like "f32[3,4]". A mapping holding
// the reserved "$virtual" key describes a virtual node:
//
//	$virtual: f32[6]     # declared metadata
//	$tree:               # optional one-layer expansion
//	  - f32[3]
//	  - f32[3]
//	$depth: 3            # or: expansion chain of given depth
//	$steps: 2            # or: materialization steps to a leaf
//
// With none of $tree/$depth/$steps the node materializes in one
// step and expands to a single-leaf array.
package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/lazytree/ir"
	"github.com/signadot/lazytree/tensor"
	"github.com/signadot/lazytree/virt"
)

const (
	virtualKey = "$virtual"
	treeKey    = "$tree"
	depthKey   = "$depth"
	stepsKey   = "$steps"
)

func Tree(d []byte) (*ir.Node, error) {
	var doc any
	if err := yaml.Unmarshal(d, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return fromAny(doc)
}

func TreeString(s string) (*ir.Node, error) {
	return Tree([]byte(s))
}

func fromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case string:
		meta, err := ir.ParseMeta(x)
		if err != nil {
			return nil, err
		}
		return ir.FromLeaf(tensor.Zeros(meta)), nil
	case []any:
		vs := make([]*ir.Node, len(x))
		for i, item := range x {
			node, err := fromAny(item)
			if err != nil {
				return nil, err
			}
			vs[i] = node
		}
		return ir.FromSlice(vs), nil
	case map[string]any:
		if _, ok := x[virtualKey]; ok {
			return fromVirtual(x)
		}
		m := make(map[string]*ir.Node, len(x))
		for key, item := range x {
			node, err := fromAny(item)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", key, err)
			}
			m[key] = node
		}
		return ir.FromMap(m), nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for key, item := range x {
			ks, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("parse: non-string key %v", key)
			}
			m[ks] = item
		}
		return fromAny(m)
	default:
		return nil, fmt.Errorf("parse: unsupported value %v (%T)", v, v)
	}
}

func fromVirtual(m map[string]any) (*ir.Node, error) {
	ms, ok := m[virtualKey].(string)
	if !ok {
		return nil, fmt.Errorf("%s: expected metadata string, got %v", virtualKey, m[virtualKey])
	}
	meta, err := ir.ParseMeta(ms)
	if err != nil {
		return nil, err
	}
	for key := range m {
		switch key {
		case virtualKey, treeKey, depthKey, stepsKey:
		default:
			return nil, fmt.Errorf("%s: unexpected key %q", virtualKey, key)
		}
	}
	if sub, ok := m[treeKey]; ok {
		tree, err := fromAny(sub)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", treeKey, err)
		}
		return ir.FromVirtual(virt.FromTree(meta, tree)), nil
	}
	if d, ok := m[depthKey]; ok {
		depth, err := asInt(d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", depthKey, err)
		}
		return ir.FromVirtual(virt.Chain(depth, meta)), nil
	}
	if s, ok := m[stepsKey]; ok {
		steps, err := asInt(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", stepsKey, err)
		}
		return ir.FromVirtual(virt.Stepped(meta, steps)), nil
	}
	return ir.FromVirtual(virt.Stepped(meta, 1)), nil
}

func asInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case uint64:
		return int(x), nil
	case float64:
		return int(x), nil
	default:
		return 0, fmt.Errorf("expected integer, got %v (%T)", v, v)
	}
}
