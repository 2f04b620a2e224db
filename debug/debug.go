package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Expand    bool
	Depth     bool
	Prune     bool
	Reconcile bool
	Policy    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Expand = boolEnv("LAZYTREE_DEBUG_EXPAND")
	d.Depth = boolEnv("LAZYTREE_DEBUG_DEPTH")
	d.Prune = boolEnv("LAZYTREE_DEBUG_PRUNE")
	d.Reconcile = boolEnv("LAZYTREE_DEBUG_RECONCILE")
	d.Policy = boolEnv("LAZYTREE_DEBUG_POLICY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Expand() bool {
	return d.Expand
}
func Depth() bool {
	return d.Depth
}
func Prune() bool {
	return d.Prune
}
func Reconcile() bool {
	return d.Reconcile
}
func Policy() bool {
	return d.Policy
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
