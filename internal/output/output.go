package output

import (
	"fmt"
	"io"

	"github.com/dshills/crwrite/internal/store"
)

// Writer renders a review document in a specific format.
type Writer interface {
	Write(w io.Writer, doc *store.Document) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
