package crawler

import "errors"

var (
	ErrInvalidSignatures = errors.New("invalid crawler signatures")
	ErrNoCrawlerPatterns = errors.New("no crawler patterns defined")
)
