package lines

type Option func(*Lines)

// WithIndent sets the number of spaces per indent level.
func WithIndent(n int) Option {
	return func(l *Lines) { l.indentSize = n }
}

type blockOpts struct {
	open, close string
	selector    byte
	hasSelector bool
	indent      int
	colors      *Colors
}

type BlockOption func(*blockOpts)

// Braces selects the brace pair by its opening character: one of
// '(', '[' or '{'.
func Braces(b byte) BlockOption {
	return func(o *blockOpts) {
		o.selector = b
		o.hasSelector = true
	}
}

// BracePair supplies an explicit open/close pair.
func BracePair(open, close string) BlockOption {
	return func(o *blockOpts) {
		o.open, o.close = open, close
		o.hasSelector = false
	}
}

// BlockIndent sets the spaces per indent level of the block.
func BlockIndent(n int) BlockOption {
	return func(o *blockOpts) { o.indent = n }
}

// BlockColors colorizes the block segments.
func BlockColors(c *Colors) BlockOption {
	return func(o *blockOpts) { o.colors = c }
}
