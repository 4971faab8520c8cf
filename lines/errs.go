package lines

import (
	"errors"
)

var (
	ErrNotString    = errors.New("not a string")
	ErrUnknownBrace = errors.New("unknown brace")
)
