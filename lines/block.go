package lines

import (
	"fmt"
)

// braceTable maps a selector character to its open/close pair.
var braceTable = map[byte][2]string{
	'(': {"(", ")"},
	'[': {"[", "]"},
	'{': {"{", "}"},
}

// Field is one key=value entry of a block. Content is a slice of
// Field so the caller's insertion order carries through to the output.
type Field struct {
	Key, Value string
}

// MakeBlock renders a header+braces block:
//
//	MakeBlock("A", nil)                             == "A()"
//	MakeBlock("A", []Field{{"x", "1"}})             == "A(x=1)"
//	MakeBlock("A", []Field{{"x", "1"}, {"y", "2"}}) == "A(\n    x=1,\n    y=2,\n)"
//
// With 0 or 1 fields the block collapses to a single line and the
// trailing comma is dropped; with more, every entry gets its own
// indented line and a trailing comma, the closing brace returning to
// the header's level. An unrecognized brace selector fails with
// ErrUnknownBrace and produces no output.
func MakeBlock(header string, content []Field, opts ...BlockOption) (string, error) {
	bo := &blockOpts{open: "(", close: ")", indent: defaultIndentSize}
	for _, opt := range opts {
		opt(bo)
	}
	if bo.hasSelector {
		pair, ok := braceTable[bo.selector]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownBrace, string(bo.selector))
		}
		bo.open, bo.close = pair[0], pair[1]
	}

	collapse := len(content) <= 1
	trailing := ","
	if collapse {
		trailing = ""
	}

	c := bo.colors
	l := New(WithIndent(bo.indent))
	l.Append(c.header(header) + c.brace(bo.open))
	release := l.Indent()
	for _, f := range content {
		l.Append(c.key(f.Key) + c.sep("=") + c.value(f.Value) + c.sep(trailing))
	}
	release()
	l.Append(c.brace(bo.close))

	if collapse {
		return l.Collapse(), nil
	}
	return l.Join(), nil
}

// MustBlock is MakeBlock for static arguments that cannot fail.
func MustBlock(header string, content []Field, opts ...BlockOption) string {
	res, err := MakeBlock(header, content, opts...)
	if err != nil {
		panic(err)
	}
	return res
}
