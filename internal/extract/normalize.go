// Package extract turns raw model output into structured content using
// marker search and positional heuristics. Every function in the package
// is total: malformed or empty input degrades to a documented fallback,
// never an error.
package extract

import (
	"regexp"
	"strings"
)

var (
	gluedPunctRE    = regexp.MustCompile(`([.,])(\p{Lu})`)
	hspaceRunRE     = regexp.MustCompile(`[ \t]+`)
	trailingBlankRE = regexp.MustCompile(`[ \t]+\n`)
	newlineRunRE    = regexp.MustCompile(`\n{3,}`)
)

// Normalize repairs common generation artifacts before extraction: glued
// sentence boundaries (".Palabra" becomes ". Palabra"), runs of spaces and
// tabs inside a line, and runs of three or more newlines. Paragraph breaks
// survive. Idempotent: normalizing twice equals normalizing once.
func Normalize(text string) string {
	s := strings.ReplaceAll(text, "\r\n", "\n")
	s = gluedPunctRE.ReplaceAllString(s, "${1} ${2}")
	s = hspaceRunRE.ReplaceAllString(s, " ")
	s = trailingBlankRE.ReplaceAllString(s, "\n")
	s = newlineRunRE.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
