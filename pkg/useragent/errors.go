package useragent

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyUserAgent    = errors.New("empty user agent string")
	ErrInvalidOperation  = errors.New("invalid detector operation")
	ErrUnknownCategory   = fmt.Errorf("%w: unknown category", ErrInvalidOperation)
	ErrInvalidExtensions = errors.New("invalid extension tables")
)
