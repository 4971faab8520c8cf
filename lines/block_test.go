package lines

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMakeBlock(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		content []Field
		opts    []BlockOption
		want    string
	}{
		{
			name:   "empty",
			header: "A",
			want:   "A()",
		},
		{
			name:    "one entry collapses",
			header:  "A",
			content: []Field{{"x", "1"}},
			want:    "A(x=1)",
		},
		{
			name:    "two entries",
			header:  "A",
			content: []Field{{"x", "1"}, {"y", "2"}},
			want:    "A(\n    x=1,\n    y=2,\n)",
		},
		{
			name:    "square braces",
			header:  "A",
			content: []Field{{"x", "1"}},
			opts:    []BlockOption{Braces('[')},
			want:    "A[x=1]",
		},
		{
			name:    "curly braces multi",
			header:  "A",
			content: []Field{{"x", "1"}, {"y", "2"}},
			opts:    []BlockOption{Braces('{')},
			want:    "A{\n    x=1,\n    y=2,\n}",
		},
		{
			name:    "explicit pair",
			header:  "A",
			content: []Field{{"x", "1"}},
			opts:    []BlockOption{BracePair("<", ">")},
			want:    "A<x=1>",
		},
		{
			name:    "indent width",
			header:  "A",
			content: []Field{{"x", "1"}, {"y", "2"}},
			opts:    []BlockOption{BlockIndent(2)},
			want:    "A(\n  x=1,\n  y=2,\n)",
		},
		{
			name:    "insertion order preserved",
			header:  "A",
			content: []Field{{"y", "2"}, {"x", "1"}},
			want:    "A(\n    y=2,\n    x=1,\n)",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MakeBlock(tc.header, tc.content, tc.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("MakeBlock mismatch (-want +got):\n%s", cmp.Diff(tc.want, got))
			}
		})
	}
}

func TestMakeBlockUnknownBrace(t *testing.T) {
	got, err := MakeBlock("A", []Field{{"x", "1"}}, Braces('?'))
	if !errors.Is(err, ErrUnknownBrace) {
		t.Fatalf("got %v, want ErrUnknownBrace", err)
	}
	if got != "" {
		t.Errorf("partial output on error: %q", got)
	}
}

func TestMakeBlockColors(t *testing.T) {
	c := &Colors{
		Key: func(s string) string { return "<" + s + ">" },
	}
	got, err := MakeBlock("A", []Field{{"x", "1"}, {"y", "2"}}, BlockColors(c))
	if err != nil {
		t.Fatal(err)
	}
	want := "A(\n    <x>=1,\n    <y>=2,\n)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMustBlock(t *testing.T) {
	if got := MustBlock("A", nil, Braces('{')); got != "A{}" {
		t.Errorf("got %q, want %q", got, "A{}")
	}
}
