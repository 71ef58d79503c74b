package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dshills/crwrite/internal/store"
)

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, sampleDoc()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var parsed store.Document
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.Version != 2 {
		t.Errorf("version = %d, want 2", parsed.Version)
	}
	if len(parsed.Comments) != 2 {
		t.Errorf("comments = %d entries, want 2", len(parsed.Comments))
	}
	if parsed.Comments["src/main.go:false"].LineComments[0].ID != "a1b2c3d" {
		t.Errorf("line comment id lost in round trip")
	}
}

func TestGetWriter(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"markdown", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			w, err := GetWriter(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("GetWriter(%q) = %T, want error", tt.format, w)
				}
				return
			}
			if err != nil {
				t.Errorf("GetWriter(%q) error: %v", tt.format, err)
			}
		})
	}
}
