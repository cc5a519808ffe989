package rules

import "errors"

// ErrInvalidTable is returned when rule data cannot be decoded into a Table.
var ErrInvalidTable = errors.New("invalid rule table")
