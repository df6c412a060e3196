package extract

import "errors"

var (
	// ErrUnsupportedFormat is returned when the file extension or content
	// is not in the configured allow-list.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrCorruptDocument is returned when no text at all can be extracted
	// from a document that should contain some.
	ErrCorruptDocument = errors.New("document is corrupt: no text could be extracted")

	// ErrSizeLimitExceeded is returned when the file exceeds the configured
	// maximum size or page count.
	ErrSizeLimitExceeded = errors.New("document exceeds configured size limit")
)
