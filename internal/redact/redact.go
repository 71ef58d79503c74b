package redact

import (
	"regexp"

	"github.com/dshills/crwrite/internal/review"
)

const placeholder = "[REDACTED]"

// secretPatterns are regex heuristics for secret shapes that plausibly show
// up in commented code lines or review prose.
var secretPatterns = []*regexp.Regexp{
	// Generic API keys in assignments
	regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{20,})["']?`),
	// AWS access key IDs
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	// Generic secrets/tokens/passwords in assignments
	regexp.MustCompile(`(?i)(secret|token|password|passwd|credential)\s*[:=]\s*["']([^"']{8,})["']`),
	// Bearer tokens
	regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`),
	// JWTs (three base64url segments separated by dots)
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
	// Private key blocks
	regexp.MustCompile(`-----BEGIN\s+(RSA\s+)?PRIVATE KEY-----`),
	// GitHub tokens
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`),
}

// Secrets replaces detected secrets in text with [REDACTED].
func Secrets(text string) string {
	result := text
	for _, pat := range secretPatterns {
		result = pat.ReplaceAllString(result, placeholder)
	}
	return result
}

// CommentSet scrubs every free-text field of the set in place: general
// comments, comment text, and captured line content.
func CommentSet(set *review.CommentSet) {
	for i := range set.Files {
		fc := &set.Files[i]
		fc.GeneralComment = Secrets(fc.GeneralComment)
		for j := range fc.LineComments {
			lc := &fc.LineComments[j]
			lc.Text = Secrets(lc.Text)
			lc.LineContent = Secrets(lc.LineContent)
			for k := range lc.LineContents {
				lc.LineContents[k] = Secrets(lc.LineContents[k])
			}
		}
	}
}
