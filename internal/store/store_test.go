package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/dshills/crwrite/internal/review"
)

var idPattern = regexp.MustCompile(`^[a-z0-9]{7}$`)

func sampleSet() *review.CommentSet {
	return &review.CommentSet{
		Files: []review.FileComment{
			{
				FilePath:       "src/main.go",
				GeneralComment: "Consider splitting this file.",
				LineComments: []review.LineComment{
					{StartLine: 10, EndLine: 12, Side: review.SideNew, Text: "off-by-one", LineContent: "for i := 0; i <= n; i++ {", LineContents: []string{"for i := 0; i <= n; i++ {"}},
					{StartLine: 30, EndLine: 30, Side: review.SideOld, Text: "dead code", LineContent: "return nil", LineContents: []string{"return nil"}},
				},
			},
		},
	}
}

func TestBuild_StampsBatchTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	doc := Build(sampleSet(), now, "")

	ms := now.UnixMilli()
	if doc.LastModified != ms {
		t.Errorf("LastModified = %d, want %d", doc.LastModified, ms)
	}
	entry, ok := doc.Comments["src/main.go:false"]
	if !ok {
		t.Fatalf("missing entry, keys: %v", keys(doc))
	}
	for i, lc := range entry.LineComments {
		if lc.CreatedAt != ms || lc.UpdatedAt != ms {
			t.Errorf("line %d timestamps = %d/%d, want %d", i, lc.CreatedAt, lc.UpdatedAt, ms)
		}
	}
}

func TestBuild_HeaderFields(t *testing.T) {
	doc := Build(&review.CommentSet{}, time.Now(), "")
	if doc.Version != 2 {
		t.Errorf("Version = %d, want 2", doc.Version)
	}
	if doc.Source != "claude-code-review" {
		t.Errorf("Source = %q, want claude-code-review", doc.Source)
	}

	doc = Build(&review.CommentSet{}, time.Now(), "my-review-bot")
	if doc.Source != "my-review-bot" {
		t.Errorf("Source = %q, want my-review-bot", doc.Source)
	}
}

func TestBuild_AssignsDistinctIDs(t *testing.T) {
	doc := Build(sampleSet(), time.Now(), "")
	entry := doc.Comments["src/main.go:false"]
	seen := make(map[string]bool)
	for _, lc := range entry.LineComments {
		if !idPattern.MatchString(lc.ID) {
			t.Errorf("id %q does not match 7-char lowercase alnum", lc.ID)
		}
		if seen[lc.ID] {
			t.Errorf("duplicate id %q", lc.ID)
		}
		seen[lc.ID] = true
	}
}

func TestBuild_KeyCollapseLastWriteWins(t *testing.T) {
	set := &review.CommentSet{
		Files: []review.FileComment{
			{FilePath: "a.go", GeneralComment: "first"},
			{FilePath: "a.go", Staged: true, GeneralComment: "staged copy"},
			{FilePath: "a.go", GeneralComment: "second"},
		},
	}
	doc := Build(set, time.Now(), "")

	if doc.FileCount() != 2 {
		t.Fatalf("FileCount = %d, want 2 (keys: %v)", doc.FileCount(), keys(doc))
	}
	if got := doc.Comments["a.go:false"].GeneralComment; got != "second" {
		t.Errorf("a.go:false generalComment = %q, want %q (later entry wins)", got, "second")
	}
	if got := doc.Comments["a.go:true"].GeneralComment; got != "staged copy" {
		t.Errorf("a.go:true generalComment = %q, want %q", got, "staged copy")
	}
}

func TestBuild_PreservesLineOrder(t *testing.T) {
	doc := Build(sampleSet(), time.Now(), "")
	entry := doc.Comments["src/main.go:false"]
	if len(entry.LineComments) != 2 {
		t.Fatalf("line comments = %d, want 2", len(entry.LineComments))
	}
	if entry.LineComments[0].Text != "off-by-one" || entry.LineComments[1].Text != "dead code" {
		t.Errorf("line comment order changed: %+v", entry.LineComments)
	}
}

func TestCommentCount(t *testing.T) {
	tests := []struct {
		name string
		set  *review.CommentSet
		want int
	}{
		{"empty", &review.CommentSet{}, 0},
		{"general comment plus two lines", sampleSet(), 3},
		{
			"empty general comment not counted",
			&review.CommentSet{Files: []review.FileComment{
				{FilePath: "a.go", LineComments: []review.LineComment{{StartLine: 1, EndLine: 1}}},
			}},
			1,
		},
		{
			"general comment only",
			&review.CommentSet{Files: []review.FileComment{
				{FilePath: "a.go", GeneralComment: "looks fine overall"},
			}},
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Build(tt.set, time.Now(), "")
			if got := doc.CommentCount(); got != tt.want {
				t.Errorf("CommentCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "review.json")
	doc := Build(sampleSet(), time.Now(), "")

	if err := doc.WriteFile(path); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if got.Version != doc.Version || got.Source != doc.Source || got.LastModified != doc.LastModified {
		t.Errorf("round trip header = %+v, want %+v", got, doc)
	}
	if len(got.Comments) != len(doc.Comments) {
		t.Errorf("round trip comments = %d entries, want %d", len(got.Comments), len(doc.Comments))
	}
}

func TestWriteFile_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "review.json")
	if err := os.WriteFile(path, []byte(`{"version": 1, "stale": true}`), 0o644); err != nil {
		t.Fatal(err)
	}

	doc := Build(&review.CommentSet{}, time.Now(), "")
	if err := doc.WriteFile(path); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("written file is not valid JSON: %v", err)
	}
	if _, stale := raw["stale"]; stale {
		t.Error("previous file content survived the write")
	}
	if v, ok := raw["version"].(float64); !ok || v != 2 {
		t.Errorf("version = %v, want 2", raw["version"])
	}
}

func TestWriteFile_EmptyDocumentShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "review.json")
	doc := Build(&review.CommentSet{}, time.Now(), "")
	if err := doc.WriteFile(path); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw struct {
		Comments map[string]any `json:"comments"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if raw.Comments == nil {
		t.Error(`"comments" serialized as null, want {}`)
	}
	if len(raw.Comments) != 0 {
		t.Errorf("comments = %v, want empty map", raw.Comments)
	}
}

func keys(d *Document) []string {
	out := make([]string, 0, len(d.Comments))
	for k := range d.Comments {
		out = append(out, k)
	}
	return out
}
