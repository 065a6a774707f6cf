package extract

import (
	"regexp"
	"strings"
)

// Fallback titles used when no usable first line exists.
const (
	FallbackArticleTitle = "Artículo de blog"
	FallbackCaseTitle    = "Caso de Éxito"
)

var (
	metaLabelRE     = regexp.MustCompile(`(?i)meta descripción`)
	keywordsLabelRE = regexp.MustCompile(`(?i)palabras clave`)
)

// Article is the structured view of a single-section blog response. Body
// always carries the full original text.
type Article struct {
	Title           string   `json:"titulo"`
	Body            string   `json:"content"`
	MetaDescription string   `json:"meta_descripcion,omitempty"`
	Keywords        []string `json:"palabras_clave"`
}

// ExtractArticle parses a blog response. The first line becomes the title
// with a leading "# " stripped; "meta descripción" and "palabras clave"
// lines are scanned case-insensitively anywhere in the text. Empty input
// yields the fallback title and the original text as body.
func ExtractArticle(text string) Article {
	a := Article{
		Title:    FallbackArticleTitle,
		Body:     text,
		Keywords: []string{},
	}
	if strings.TrimSpace(text) == "" {
		return a
	}

	if line := firstLine(text); strings.TrimSpace(line) != "" {
		a.Title = stripHeading(line)
	}
	if v, ok := labeledValue(text, metaLabelRE); ok {
		a.MetaDescription = v
	}
	if v, ok := labeledValue(text, keywordsLabelRE); ok {
		a.Keywords = splitKeywords(v)
	}
	return a
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func firstNonEmptyLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}

// stripHeading drops a leading markdown heading marker from a title line.
func stripHeading(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "# ")
	return strings.TrimSpace(line)
}

// labeledValue finds the first case-insensitive occurrence of a label,
// takes its containing line (to end of text when no newline follows), and
// returns the trimmed remainder after the first ":". A label with no ":"
// on its line reports no value.
func labeledValue(text string, label *regexp.Regexp) (string, bool) {
	loc := label.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	line := text[loc[0]:]
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	_, rest, found := strings.Cut(line, ":")
	if !found {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

func splitKeywords(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
