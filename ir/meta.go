package ir

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// DType is an opaque element type tag. The core never interprets
// it beyond equality.
type DType string

const (
	F32 DType = "f32"
	F64 DType = "f64"
	I32 DType = "i32"
	I64 DType = "i64"
	U8  DType = "u8"
	B1  DType = "bool"
)

// Meta is the shape/type metadata a leaf carries or a virtual
// node declares it will materialize to.
type Meta struct {
	Shape []int
	DType DType
}

func (m Meta) Equal(o Meta) bool {
	return m.DType == o.DType && slices.Equal(m.Shape, o.Shape)
}

// Size returns the number of elements of an array with this
// metadata, 1 for a scalar (rank 0).
func (m Meta) Size() int {
	n := 1
	for _, d := range m.Shape {
		n *= d
	}
	return n
}

func (m Meta) String() string {
	sb := &strings.Builder{}
	sb.WriteString(string(m.DType))
	sb.WriteByte('[')
	for i, d := range m.Shape {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(d))
	}
	sb.WriteByte(']')
	return sb.String()
}

// ParseMeta parses the textual form produced by Meta.String,
// eg "f32[3,4]". A rank-0 scalar is "f32[]".
func ParseMeta(s string) (Meta, error) {
	i := strings.IndexByte(s, '[')
	if i == -1 || s[len(s)-1] != ']' {
		return Meta{}, fmt.Errorf("meta %q: expected <dtype> '[' <dims> ']'", s)
	}
	if i == 0 {
		return Meta{}, fmt.Errorf("meta %q: empty dtype", s)
	}
	res := Meta{DType: DType(s[:i])}
	dims := s[i+1 : len(s)-1]
	if dims == "" {
		return res, nil
	}
	for _, ds := range strings.Split(dims, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(ds))
		if err != nil {
			return Meta{}, fmt.Errorf("meta %q: bad dim %q: %w", s, ds, err)
		}
		if d < 0 {
			return Meta{}, fmt.Errorf("meta %q: negative dim %d", s, d)
		}
		res.Shape = append(res.Shape, d)
	}
	return res, nil
}
