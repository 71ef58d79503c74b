package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dshills/crwrite/internal/store"
)

// TextWriter outputs a human-readable review summary.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, doc *store.Document) error {
	ew := &errWriter{w: w}

	ew.printf("Review document (v%d, source: %s)\n", doc.Version, doc.Source)
	ew.printf("Last modified: %s\n", time.UnixMilli(doc.LastModified).Local().Format(time.RFC1123))
	ew.println(strings.Repeat("─", 60))
	ew.printf("Files: %d | Comments: %d\n", doc.FileCount(), doc.CommentCount())
	ew.println(strings.Repeat("─", 60))

	if doc.FileCount() == 0 {
		ew.println("\nNo comments.")
		return ew.err
	}

	// Map iteration order is random; sort by composite key for stable output.
	keys := make([]string, 0, len(doc.Comments))
	for k := range doc.Comments {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fc := doc.Comments[key]
		ew.printf("\n%s%s\n", fc.FilePath, stagedLabel(fc.Staged))

		if fc.GeneralComment != "" {
			for _, line := range wrapText(fc.GeneralComment, 70) {
				ew.printf("  %s\n", line)
			}
		}

		for _, lc := range fc.LineComments {
			ew.printf("  L%s [%s] %s\n", lineRange(lc), lc.Side, lc.ID)
			if lc.LineContent != "" {
				ew.printf("    > %s\n", lc.LineContent)
			}
			for _, line := range wrapText(lc.Text, 70) {
				ew.printf("    %s\n", line)
			}
		}
	}

	return ew.err
}

func stagedLabel(staged bool) string {
	if staged {
		return " (staged)"
	}
	return ""
}

func lineRange(lc store.LineComment) string {
	if lc.StartLine == lc.EndLine {
		return fmt.Sprintf("%d", lc.StartLine)
	}
	return fmt.Sprintf("%d-%d", lc.StartLine, lc.EndLine)
}

// wrapText wraps text to the given width, preserving existing line breaks.
func wrapText(text string, width int) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if len(line)+1+len(word) > width {
				out = append(out, line)
				line = word
				continue
			}
			line += " " + word
		}
		out = append(out, line)
	}
	return out
}

// errWriter accumulates the first write error so the render loop stays flat.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) println(args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, args...)
}
