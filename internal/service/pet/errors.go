package pet

import "errors"

var (
	ErrNotFound = errors.New("pet not found")
)
