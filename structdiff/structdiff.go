// Package structdiff renders readable diffs between structure
// fingerprints, for reporting why two trees fail to reconcile.
package structdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/lazytree/ir"
)

// Render returns a single-line merge of want and got where
// deleted runs appear as [-...-] and inserted runs as {+...+}.
func Render(want, got *ir.Structure) string {
	return RenderStrings(want.String(), got.String())
}

func RenderStrings(want, got string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(want, got, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	sb := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			sb.WriteString("[-")
			sb.WriteString(diff.Text)
			sb.WriteString("-]")
		case diffpatch.DiffInsert:
			sb.WriteString("{+")
			sb.WriteString(diff.Text)
			sb.WriteString("+}")
		case diffpatch.DiffEqual:
			sb.WriteString(diff.Text)
		}
	}
	return sb.String()
}
