package lines

import (
	"fmt"
	"iter"
	"strings"
)

// line is one queued record together with the indentation captured
// when it was appended. Records never change after append.
type line struct {
	content    string
	indentLvl  int
	indentSize int
}

// Lines accumulates lines of text with scoped indentation. A Lines is
// owned by a single caller; it is not safe for concurrent use.
//
// Construct with New.
type Lines struct {
	lines      []line
	indentSize int
	indentLvl  int
}

const defaultIndentSize = 4

func New(opts ...Option) *Lines {
	l := &Lines{indentSize: defaultIndentSize}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append queues one line at the current indent level. The content may
// itself contain newlines; Join indents every physical line of it.
func (l *Lines) Append(content string) {
	l.lines = append(l.lines, line{
		content:    content,
		indentLvl:  l.indentLvl,
		indentSize: l.indentSize,
	})
}

// AppendAny appends a value arriving from a dynamic boundary, such as
// a decoded document. Anything other than a string fails with
// ErrNotString, leaving the buffer unchanged.
func (l *Lines) AppendAny(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: %#v", ErrNotString, v)
	}
	l.Append(s)
	return nil
}

// Extend appends each line in order.
func (l *Lines) Extend(contents ...string) {
	for _, c := range contents {
		l.Append(c)
	}
}

// ExtendSeq appends each line produced by seq, in order.
func (l *Lines) ExtendSeq(seq iter.Seq[string]) {
	for c := range seq {
		l.Append(c)
	}
}

// ExtendAny is the per-item AppendAny over a dynamic sequence. It
// stops at the first non-string; values before it are already
// appended.
func (l *Lines) ExtendAny(vs ...any) error {
	for _, v := range vs {
		if err := l.AppendAny(v); err != nil {
			return err
		}
	}
	return nil
}

// Add is the operator form of Append, returning the receiver for
// chained accumulation.
func (l *Lines) Add(content string) *Lines {
	l.Append(content)
	return l
}

// Indent opens an indent scope and returns its release. Run the
// release with defer so the level is restored on every exit path,
// panics included:
//
//	defer l.Indent()()
//
// Scopes nest; releases run LIFO on unwind.
func (l *Lines) Indent() func() {
	l.indentLvl++
	return func() { l.indentLvl-- }
}

// Len reports the number of records appended so far.
func (l *Lines) Len() int {
	return len(l.lines)
}

// Join renders all records joined by newlines, each prefixed by the
// indentation captured when it was appended. Join reads the buffer
// without modifying it and may be called repeatedly.
func (l *Lines) Join() string {
	parts := make([]string, len(l.lines))
	for i, ln := range l.lines {
		parts[i] = indent(ln.content, strings.Repeat(" ", ln.indentLvl*ln.indentSize))
	}
	return strings.Join(parts, "\n")
}

// Collapse renders all records concatenated on a single line, with no
// separators and no indentation.
func (l *Lines) Collapse() string {
	b := &strings.Builder{}
	for _, ln := range l.lines {
		b.WriteString(ln.content)
	}
	return b.String()
}

// indent prefixes every physical line of content that is not blank.
func indent(content, prefix string) string {
	if prefix == "" {
		return content
	}
	segs := strings.Split(content, "\n")
	for i, seg := range segs {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		segs[i] = prefix + seg
	}
	return strings.Join(segs, "\n")
}
