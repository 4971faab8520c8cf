package lines

import (
	"testing"
)

func TestDedent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "common margin",
			in:   "\n   A(\n      x=1,\n   )\n",
			want: "A(\n   x=1,\n)",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "no margin",
			in:   "a\nb",
			want: "a\nb",
		},
		{
			name: "blank lines ignored for margin",
			in:   "  a\n\n  b\n",
			want: "a\n\nb",
		},
		{
			name: "tab margin",
			in:   "\t\ta\n\t\tb",
			want: "a\nb",
		},
		{
			name: "whitespace only",
			in:   "   \n  \n",
			want: "",
		},
		{
			name: "single line",
			in:   "  a  ",
			want: "a",
		},
		{
			name: "partial margin",
			in:   "  a\n    b\n  c\n",
			want: "a\n  b\nc",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Dedent(tc.in); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
