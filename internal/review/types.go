package review

import "strconv"

// Side identifies which side of a diff a line comment is anchored to.
type Side string

const (
	// SideOld anchors a comment to the pre-change version of a line.
	SideOld Side = "old"
	// SideNew anchors a comment to the post-change version of a line.
	SideNew Side = "new"
)

// LineComment is a review comment anchored to a line range within a file.
// LineContent carries the original text of the first commented line so the
// viewer can re-anchor the comment if line numbers drift; LineContents covers
// the full range.
type LineComment struct {
	StartLine    int
	EndLine      int
	Side         Side
	Text         string
	LineContent  string
	LineContents []string
}

// FileComment groups the review comments attached to one file, distinguishing
// staged (index) content from the working tree.
type FileComment struct {
	FilePath       string
	Staged         bool
	GeneralComment string
	LineComments   []LineComment
}

// Key returns the composite map key for this entry: filePath + ":" + staged.
// Two input entries sharing a key collapse to one output entry; the later
// entry in input order wins.
func (f FileComment) Key() string {
	return f.FilePath + ":" + strconv.FormatBool(f.Staged)
}

// CommentSet is the normalized input payload: an ordered list of per-file
// comment groups.
type CommentSet struct {
	Files []FileComment
}
