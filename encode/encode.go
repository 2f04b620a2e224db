// Package encode renders lazy trees as indented text for
// inspection: objects as "field:" blocks, arrays as "- " items,
// concrete leaves as their metadata and virtual nodes as
// "virtual(<meta>)".
package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/lazytree/ir"
)

type encConfig struct {
	colors *Colors
	indent string
}

type EncodeOption func(*encConfig)

func EncodeColors(colors *Colors) EncodeOption {
	return func(c *encConfig) {
		c.colors = colors
	}
}

func EncodeIndent(indent string) EncodeOption {
	return func(c *encConfig) {
		c.indent = indent
	}
}

func Encode(n *ir.Node, w io.Writer, opts ...EncodeOption) error {
	cfg := &encConfig{indent: "  "}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.colors == nil {
		cfg.colors = noColors()
	}
	sb := &strings.Builder{}
	encode(n, cfg, sb, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

// inline reports whether n renders on the current line rather
// than as an indented block.
func inline(n *ir.Node) bool {
	return n.Type.IsLeaf() || len(n.Values) == 0
}

func encode(n *ir.Node, cfg *encConfig, sb *strings.Builder, indent string) {
	switch n.Type {
	case ir.LeafType:
		sb.WriteString(cfg.colors.Leaf(n.Leaf.Meta().String()))
		sb.WriteByte('\n')
	case ir.VirtualType:
		sb.WriteString(cfg.colors.Virtual("virtual(" + n.Virt.Meta().String() + ")"))
		sb.WriteByte('\n')
	case ir.ArrayType:
		if len(n.Values) == 0 {
			sb.WriteString(cfg.colors.Punct("[]"))
			sb.WriteByte('\n')
			return
		}
		for _, v := range n.Values {
			sb.WriteString(indent)
			if inline(v) {
				sb.WriteString(cfg.colors.Punct("- "))
				encode(v, cfg, sb, "")
				continue
			}
			sb.WriteString(cfg.colors.Punct("-"))
			sb.WriteByte('\n')
			encode(v, cfg, sb, indent+cfg.indent)
		}
	case ir.ObjectType:
		if len(n.Fields) == 0 {
			sb.WriteString(cfg.colors.Punct("{}"))
			sb.WriteByte('\n')
			return
		}
		for i, v := range n.Values {
			sb.WriteString(indent)
			sb.WriteString(cfg.colors.Field(n.Fields[i]))
			if inline(v) {
				sb.WriteString(cfg.colors.Punct(":"))
				sb.WriteByte(' ')
				encode(v, cfg, sb, "")
				continue
			}
			sb.WriteString(cfg.colors.Punct(":"))
			sb.WriteByte('\n')
			encode(v, cfg, sb, indent+cfg.indent)
		}
	default:
		panic(fmt.Sprintf("encode: unknown node type %d", n.Type))
	}
}
