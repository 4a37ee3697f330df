package password

import "errors"

var (
	ErrUnsupportedAlgorithm = errors.New("password: unsupported hashing algorithm")
	ErrInvalidCost          = errors.New("password: bcrypt cost out of range")
)
