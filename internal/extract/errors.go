package extract

import "errors"

var (
	// ErrUnsupportedFormat indicates the filename extension is not one of the
	// accepted document formats.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrNoText indicates the document parsed but contained no extractable text.
	ErrNoText = errors.New("no extractable text")
)
