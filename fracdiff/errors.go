package fracdiff

import "errors"

var (
	ErrDomain  = errors.New("bad domain")
	ErrNumeric = errors.New("bad number")
)
