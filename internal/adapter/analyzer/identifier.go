package analyzer

import (
	"strings"

	"stubgen/internal/domain"
)

// commentMarker is stripped from identifiers wherever it appears.
const commentMarker = "//"

// Qualifies reports whether a line can become a stub: it must be non-empty
// and must not span more than one line.
func Qualifies(line string) bool {
	return len(line) > 0 && !strings.Contains(line, domain.LineBreak)
}

// Sanitize converts descriptive text into a method identifier: comment
// markers and double quotes are dropped, surrounding whitespace is trimmed
// and inner spaces become underscores. Markers go before the trim so that a
// leading "// " does not leave an underscore behind. The result is not
// checked for emptiness, keyword collisions or identifier legality.
func Sanitize(text string) string {
	id := strings.ReplaceAll(text, `"`, "")
	id = strings.ReplaceAll(id, commentMarker, "")
	id = strings.TrimSpace(id)
	return strings.ReplaceAll(id, " ", "_")
}

// ContainsTestClassMarker is a plain substring test over the whole document.
// A marker inside a comment or string literal also counts.
func ContainsTestClassMarker(document string) bool {
	return strings.Contains(document, domain.TestClassMarker)
}
