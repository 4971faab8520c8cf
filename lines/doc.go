// Package lines builds indented, multi-line text programmatically.
//
// It is meant for pretty-print tools and human readable reprs: callers
// accumulate lines into a Lines buffer, opening indent scopes around
// nested content, then render the result with Join or Collapse.
//
// # Usage
//
//	l := lines.New()
//	l.Append("dict(")
//	func() {
//		defer l.Indent()()
//		l.Append("a=1,")
//		l.Append("b=2,")
//	}()
//	l.Append(")")
//	text := l.Join()
//
// Output:
//
//	dict(
//	    a=1,
//	    b=2,
//	)
//
// MakeBlock wraps the same accumulation into the canonical
// header+braces+key=value block shape, and Dedent strips a common
// leading margin from a static text block.
package lines
