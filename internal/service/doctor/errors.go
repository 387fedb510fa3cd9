package doctor

import "errors"

var (
	ErrNotFound = errors.New("doctor not found")
)
