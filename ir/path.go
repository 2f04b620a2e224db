package ir

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Path addresses a leaf position in a lazily expanded tree. The
// first element indexes the virtual-as-leaf flattening of the
// root tree; each further element indexes the flattening of one
// more expanded layer under the virtual node at the prefix.
type Path []int

func (p Path) String() string {
	sb := &strings.Builder{}
	sb.WriteByte('$')
	for _, i := range p {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(']')
	}
	return sb.String()
}

// Child returns p extended by i, without aliasing p's backing
// array.
func (p Path) Child(i int) Path {
	res := make(Path, len(p)+1)
	copy(res, p)
	res[len(p)] = i
	return res
}

// HasPrefix reports whether prefix addresses p or an ancestor
// position of p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	return slices.Equal(p[:len(prefix)], prefix)
}

func ParsePath(s string) (Path, error) {
	if len(s) == 0 || s[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", s)
	}
	res := Path{}
	rest := s[1:]
	for len(rest) > 0 {
		if rest[0] != '[' {
			return nil, fmt.Errorf("path %q: expected '[' <index> ']'", s)
		}
		j := strings.IndexByte(rest, ']')
		if j == -1 {
			return nil, fmt.Errorf("path %q: expected '[' <index> ']'", s)
		}
		u64, err := strconv.ParseUint(rest[1:j], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", s, err)
		}
		res = append(res, int(u64))
		rest = rest[j+1:]
	}
	return res, nil
}

// PathSet is a set of paths. As produced by reconciliation it is
// a materialization frontier: pairwise non-prefix-related, each
// path marking a maximal subtree whose laziness must be given up.
type PathSet struct {
	m map[string]Path
}

func NewPathSet(paths ...Path) *PathSet {
	res := &PathSet{m: map[string]Path{}}
	for _, p := range paths {
		res.Add(p)
	}
	return res
}

func (s *PathSet) Add(p Path) {
	s.m[p.String()] = p
}

func (s *PathSet) Has(p Path) bool {
	_, ok := s.m[p.String()]
	return ok
}

func (s *PathSet) Len() int {
	return len(s.m)
}

// HasPrefixOf reports whether the set contains a proper prefix or
// extension of p, in addition to p itself.
func (s *PathSet) HasPrefixOf(p Path) bool {
	for _, q := range s.m {
		if p.HasPrefix(q) || q.HasPrefix(p) {
			return true
		}
	}
	return false
}

// HasExtensionOf reports whether the set contains a path strictly
// below p.
func (s *PathSet) HasExtensionOf(p Path) bool {
	for _, q := range s.m {
		if len(q) > len(p) && q.HasPrefix(p) {
			return true
		}
	}
	return false
}

// Paths returns the set's paths in lexicographic order.
func (s *PathSet) Paths() []Path {
	res := make([]Path, 0, len(s.m))
	for _, p := range s.m {
		res = append(res, p)
	}
	slices.SortFunc(res, func(a, b Path) int {
		return slices.Compare(a, b)
	})
	return res
}

func (s *PathSet) String() string {
	paths := s.Paths()
	strs := make([]string, len(paths))
	for i, p := range paths {
		strs[i] = p.String()
	}
	return "{" + strings.Join(strs, " ") + "}"
}
