package review

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// MalformedInputError indicates the payload could not be decoded at all: it
// was not valid JSON, its top level was not an object, or "comments" was
// present but not an array. Anything less broken than that is normalized,
// not rejected.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "malformed payload: " + e.Reason
}

// IsMalformedInput reports whether err is a MalformedInputError.
func IsMalformedInput(err error) bool {
	var target *MalformedInputError
	return errors.As(err, &target)
}

// Parse decodes a JSON payload into a normalized CommentSet.
//
// A missing "comments" key is treated as an empty list. Within each entry,
// absent or wrong-typed sub-fields fall back to their defaults: filePath "",
// staged false, generalComment "", startLine 1, endLine = startLine, side
// "new", text "", lineContent "", lineContents = [lineContent].
func Parse(payload string) (*CommentSet, error) {
	if !gjson.Valid(payload) {
		return nil, &MalformedInputError{Reason: "payload is not valid JSON"}
	}
	root := gjson.Parse(payload)
	if !root.IsObject() {
		return nil, &MalformedInputError{Reason: fmt.Sprintf("expected a JSON object, got %s", jsonKind(root))}
	}

	comments := root.Get("comments")
	if comments.Exists() && !comments.IsArray() {
		return nil, &MalformedInputError{Reason: fmt.Sprintf(`"comments" must be an array, got %s`, jsonKind(comments))}
	}

	set := &CommentSet{}
	for _, fc := range comments.Array() {
		set.Files = append(set.Files, parseFileComment(fc))
	}
	return set, nil
}

func parseFileComment(fc gjson.Result) FileComment {
	out := FileComment{
		FilePath:       fc.Get("filePath").String(),
		Staged:         fc.Get("staged").Bool(),
		GeneralComment: fc.Get("generalComment").String(),
	}
	if lcs := fc.Get("lineComments"); lcs.IsArray() {
		for _, lc := range lcs.Array() {
			out.LineComments = append(out.LineComments, parseLineComment(lc))
		}
	}
	return out
}

func parseLineComment(lc gjson.Result) LineComment {
	start := 1
	if v := lc.Get("startLine"); v.Exists() {
		start = int(v.Int())
	}
	end := start
	if v := lc.Get("endLine"); v.Exists() {
		end = int(v.Int())
	}

	side := SideNew
	if Side(lc.Get("side").String()) == SideOld {
		side = SideOld
	}

	content := lc.Get("lineContent").String()
	contents := []string{content}
	if v := lc.Get("lineContents"); v.IsArray() {
		contents = contents[:0]
		for _, item := range v.Array() {
			contents = append(contents, item.String())
		}
	}

	return LineComment{
		StartLine:    start,
		EndLine:      end,
		Side:         side,
		Text:         lc.Get("text").String(),
		LineContent:  content,
		LineContents: contents,
	}
}

// jsonKind names a gjson value for diagnostics.
func jsonKind(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return "a string"
	case gjson.Number:
		return "a number"
	case gjson.True, gjson.False:
		return "a boolean"
	case gjson.Null:
		return "null"
	case gjson.JSON:
		if r.IsArray() {
			return "an array"
		}
		return "an object"
	default:
		return "an unknown value"
	}
}
