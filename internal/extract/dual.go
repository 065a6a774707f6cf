package extract

import (
	"regexp"
	"strings"
)

// Marker alternatives per section role, tried in order. The first
// alternative found in the text wins for that role.
var (
	shortMarkerREs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)versión corta`),
		regexp.MustCompile(`(?i)resumen ejecutivo`),
	}
	fullMarkerREs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)versión completa`),
		regexp.MustCompile(`(?i)versión detallada`),
	}
)

// DualArticle is the structured view of a two-version success-case
// response: an executive summary plus the full narrative.
type DualArticle struct {
	Title           string   `json:"titulo"`
	ShortSummary    string   `json:"resumen_corto"`
	FullBody        string   `json:"contenido_completo"`
	MetaDescription string   `json:"meta_descripcion,omitempty"`
	Keywords        []string `json:"palabras_clave"`
}

// ExtractDual splits a response into summary and full sections by marker
// position. Section role follows the marker that opens each span, not the
// order the spans appear in. When either role's marker is missing the
// whole text becomes the full body and the summary falls back to the
// first 200 words. Meta description and keywords are scanned against the
// original text in every case.
//
// Known limitation: a marker phrase occurring inside the other section's
// narrative is indistinguishable from a real section label and shifts the
// split point.
func ExtractDual(text string) DualArticle {
	d := DualArticle{
		Title:    FallbackCaseTitle,
		FullBody: text,
		Keywords: []string{},
	}
	if strings.TrimSpace(text) == "" {
		return d
	}

	if v, ok := labeledValue(text, metaLabelRE); ok {
		d.MetaDescription = v
	}
	if v, ok := labeledValue(text, keywordsLabelRE); ok {
		d.Keywords = splitKeywords(v)
	}

	sStart, sEnd, sOK := findMarker(text, shortMarkerREs)
	fStart, fEnd, fOK := findMarker(text, fullMarkerREs)

	if !sOK || !fOK {
		if line := firstNonEmptyLine(text); line != "" {
			d.Title = stripHeading(line)
		}
		d.ShortSummary = firstWords(text, 200)
		return d
	}

	head := text[:min(sStart, fStart)]
	if line := firstNonEmptyLine(head); line != "" {
		d.Title = stripHeading(line)
	}

	// The span opened by the earlier marker runs to the later marker; the
	// later span runs to end of text.
	if sStart < fStart {
		d.ShortSummary = stripLabel(text[sStart:fStart], sEnd-sStart)
		d.FullBody = stripLabel(text[fStart:], fEnd-fStart)
	} else {
		d.FullBody = stripLabel(text[fStart:sStart], fEnd-fStart)
		d.ShortSummary = stripLabel(text[sStart:], sEnd-sStart)
	}
	return d
}

func findMarker(text string, res []*regexp.Regexp) (start, end int, ok bool) {
	for _, re := range res {
		if loc := re.FindStringIndex(text); loc != nil {
			return loc[0], loc[1], true
		}
	}
	return 0, 0, false
}

// stripLabel removes the matched marker text, an optional ":" after it,
// and surrounding whitespace from the start of a span.
func stripLabel(span string, labelLen int) string {
	s := span[labelLen:]
	s = strings.TrimPrefix(s, ":")
	return strings.TrimSpace(s)
}

// firstWords joins the first n whitespace-separated words with single
// spaces.
func firstWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
