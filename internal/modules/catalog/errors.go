package catalog

import "errors"

var (
	ErrTestNotFound     = errors.New("lab test not found")
	ErrLocationNotFound = errors.New("location not found")
)
