package lines

import (
	"strings"
)

// Dedent strips the longest common leading-whitespace margin shared by
// all non-blank lines of text, then trims surrounding whitespace.
// Blank lines are ignored when computing the margin but still have it
// stripped when they carry it. Dedent accepts any input; Dedent("")
// is "".
func Dedent(text string) string {
	ls := strings.Split(text, "\n")
	margin, haveMargin := "", false
	for _, ln := range ls {
		trimmed := strings.TrimLeft(ln, " \t")
		if trimmed == "" {
			continue
		}
		lead := ln[:len(ln)-len(trimmed)]
		if !haveMargin {
			margin, haveMargin = lead, true
			continue
		}
		margin = commonPrefix(margin, lead)
	}
	if margin != "" {
		for i, ln := range ls {
			ls[i] = strings.TrimPrefix(ln, margin)
		}
	}
	return strings.TrimSpace(strings.Join(ls, "\n"))
}

func commonPrefix(a, b string) string {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return a[:i]
}
