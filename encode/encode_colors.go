package encode

import (
	"fmt"

	"github.com/fatih/color"
)

type Colors struct {
	Field   func(string, ...any) string
	Leaf    func(string, ...any) string
	Virtual func(string, ...any) string
	Punct   func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Field:   color.RGB(196, 96, 16).SprintfFunc(),
		Leaf:    color.RGB(128, 216, 236).SprintfFunc(),
		Virtual: color.RGB(74, 92, 138).SprintfFunc(),
		Punct:   color.RGB(255, 0, 196).SprintfFunc(),
	}
}

func noColors() *Colors {
	plain := func(s string, args ...any) string {
		if len(args) == 0 {
			return s
		}
		return fmt.Sprintf(s, args...)
	}
	return &Colors{
		Field:   plain,
		Leaf:    plain,
		Virtual: plain,
		Punct:   plain,
	}
}
