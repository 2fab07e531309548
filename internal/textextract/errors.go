package textextract

import (
	"errors"
	"fmt"
)

// ErrEmptyContent is returned when a document yields no text, which is the
// case for image-only PDFs.
var ErrEmptyContent = errors.New("document has no extractable text")

// UnsupportedFormatError reports a file extension the extractor has no
// reader for.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return "unsupported document format: missing extension"
	}
	return fmt.Sprintf("unsupported document format: %q", e.Ext)
}
