package ident

import (
	"regexp"
	"testing"
)

var idPattern = regexp.MustCompile(`^[a-z0-9]{7}$`)

func TestNew_Format(t *testing.T) {
	for i := 0; i < 200; i++ {
		id := New()
		if !idPattern.MatchString(id) {
			t.Fatalf("New() = %q, want 7 lowercase alphanumeric characters", id)
		}
	}
}

func TestNew_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[New()] = true
	}
	// 100 draws from a 36^7 space should essentially never repeat; the real
	// assertion here is that the generator is not returning a constant.
	if len(seen) < 2 {
		t.Errorf("New() produced %d distinct values in 100 draws", len(seen))
	}
}
