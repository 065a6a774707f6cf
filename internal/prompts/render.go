package prompts

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// placeholderRE matches the named placeholders of a user template,
// e.g. {tema} or {comentarios_adicionales}.
var placeholderRE = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// RenderSystem composes the system prompt from a Config. Sections appear in
// a fixed order regardless of how the record was built: the role/objective
// header first, then TONO, ESTRUCTURA, FORMATO, LIMITACIONES, OPTIMIZACIÓN
// SEO, ESTILO, CONSEJOS DE ENGAGEMENT, and finally any additional
// instructions as a trailing free-form block. Empty optional fields omit
// their section entirely, header included.
func RenderSystem(c Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Eres un %s.\nTu objetivo es %s.\n", c.RoleDescription, c.ContentObjective)

	section := func(label, text string) {
		if text == "" {
			return
		}
		b.WriteString("\n")
		b.WriteString(label)
		b.WriteString(":\n")
		b.WriteString(text)
		b.WriteString("\n")
	}

	section("TONO", c.Tone)
	section("ESTRUCTURA", c.StructureDescription)
	section("FORMATO", c.FormatGuide)
	section("LIMITACIONES", c.Limitations)
	section("OPTIMIZACIÓN SEO", c.SEOGuidelines)
	section("ESTILO", c.StyleGuidance)
	section("CONSEJOS DE ENGAGEMENT", c.EngagementTips)

	if c.AdditionalInstructions != "" {
		b.WriteString("\n")
		b.WriteString(c.AdditionalInstructions)
		b.WriteString("\n")
	}

	return b.String()
}

// Placeholders returns the distinct placeholder names of a user template
// in order of first appearance.
func Placeholders(template string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderRE.FindAllStringSubmatch(template, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// RenderUser substitutes named variables into a user template. Every
// placeholder in the template must be present in vars; a missing variable
// is a hard error reported before anything is sent to a model. Extra
// entries in vars are ignored.
func RenderUser(template string, vars map[string]string) (string, error) {
	var missing []string
	for _, name := range Placeholders(template) {
		if _, ok := vars[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return "", &RenderError{Missing: missing}
	}
	out := placeholderRE.ReplaceAllStringFunc(template, func(m string) string {
		return vars[m[1:len(m)-1]]
	})
	return out, nil
}

// RenderError reports user-template placeholders with no supplied value.
type RenderError struct {
	Missing []string
}

func (e *RenderError) Error() string {
	return "prompts: missing template variables: " + strings.Join(e.Missing, ", ")
}
