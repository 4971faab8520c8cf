package lines

import (
	"github.com/fatih/color"
)

// Colors colorizes the segments of a block. A nil *Colors, or a nil
// segment func, leaves that segment plain.
type Colors struct {
	Header func(string) string
	Brace  func(string) string
	Key    func(string) string
	Value  func(string) string
	Sep    func(string) string
}

func NewColors() *Colors {
	return &Colors{
		Header: sprint(color.RGB(128, 168, 196)),
		Brace:  sprint(color.RGB(196, 128, 128)),
		Key:    sprint(color.RGB(196, 96, 16)),
		Value:  sprint(color.RGB(8, 196, 16)),
		Sep:    sprint(color.RGB(255, 0, 196)),
	}
}

func sprint(c *color.Color) func(string) string {
	f := c.SprintFunc()
	return func(s string) string { return f(s) }
}

func (c *Colors) header(s string) string {
	if c == nil {
		return s
	}
	return apply(c.Header, s)
}

func (c *Colors) brace(s string) string {
	if c == nil {
		return s
	}
	return apply(c.Brace, s)
}

func (c *Colors) key(s string) string {
	if c == nil {
		return s
	}
	return apply(c.Key, s)
}

func (c *Colors) value(s string) string {
	if c == nil {
		return s
	}
	return apply(c.Value, s)
}

func (c *Colors) sep(s string) string {
	if c == nil {
		return s
	}
	return apply(c.Sep, s)
}

func apply(f func(string) string, s string) string {
	if f == nil || s == "" {
		return s
	}
	return f(s)
}
