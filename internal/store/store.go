package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dshills/crwrite/internal/ident"
	"github.com/dshills/crwrite/internal/review"
)

// Version is the review document schema version understood by the viewer.
const Version = 2

// DefaultSource identifies crwrite as the producer of a review document.
const DefaultSource = "claude-code-review"

// LineComment is the persisted form of a line comment: the input fields plus
// an identifier and creation/update timestamps in epoch milliseconds.
type LineComment struct {
	ID           string      `json:"id"`
	StartLine    int         `json:"startLine"`
	EndLine      int         `json:"endLine"`
	LineContent  string      `json:"lineContent"`
	LineContents []string    `json:"lineContents"`
	Side         review.Side `json:"side"`
	Text         string      `json:"text"`
	CreatedAt    int64       `json:"createdAt"`
	UpdatedAt    int64       `json:"updatedAt"`
}

// FileComment is one entry in the document's comments map.
type FileComment struct {
	FilePath       string        `json:"filePath"`
	Staged         bool          `json:"staged"`
	GeneralComment string        `json:"generalComment"`
	LineComments   []LineComment `json:"lineComments"`
}

// Document is the top-level review file format.
type Document struct {
	Version      int                    `json:"version"`
	Source       string                 `json:"source"`
	Comments     map[string]FileComment `json:"comments"`
	LastModified int64                  `json:"lastModified"`
}

// Build converts a parsed comment set into a review document stamped with
// source and the single timestamp now. Entries sharing a composite key
// collapse to the last one in input order; line comments keep their input
// order within each entry.
func Build(set *review.CommentSet, now time.Time, source string) *Document {
	if source == "" {
		source = DefaultSource
	}
	ms := now.UnixMilli()
	doc := &Document{
		Version:      Version,
		Source:       source,
		Comments:     make(map[string]FileComment, len(set.Files)),
		LastModified: ms,
	}

	for _, fc := range set.Files {
		entry := FileComment{
			FilePath:       fc.FilePath,
			Staged:         fc.Staged,
			GeneralComment: fc.GeneralComment,
			LineComments:   make([]LineComment, 0, len(fc.LineComments)),
		}
		for _, lc := range fc.LineComments {
			entry.LineComments = append(entry.LineComments, LineComment{
				ID:           ident.New(),
				StartLine:    lc.StartLine,
				EndLine:      lc.EndLine,
				LineContent:  lc.LineContent,
				LineContents: lc.LineContents,
				Side:         lc.Side,
				Text:         lc.Text,
				CreatedAt:    ms,
				UpdatedAt:    ms,
			})
		}
		doc.Comments[fc.Key()] = entry
	}
	return doc
}

// FileCount returns the number of distinct composite keys in the document.
func (d *Document) FileCount() int {
	return len(d.Comments)
}

// CommentCount returns the total number of comments: every line comment plus
// one for each entry with a non-empty general comment.
func (d *Document) CommentCount() int {
	total := 0
	for _, fc := range d.Comments {
		total += len(fc.LineComments)
		if fc.GeneralComment != "" {
			total++
		}
	}
	return total
}

// WriteFile serializes the document with two-space indentation and writes it
// to path, replacing any existing content.
func (d *Document) WriteFile(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling review document: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing review document: %w", err)
	}
	return nil
}

// ReadFile loads a previously written review document from path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading review document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing review document: %w", err)
	}
	return &doc, nil
}
