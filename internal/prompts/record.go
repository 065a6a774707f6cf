// Package prompts provides prompt composition for the content generation
// agents: configuration records, template variants with per-variant default
// values, override merging, and rendering of the final system/user prompt
// pair sent to the model.
package prompts

// Field names accepted in override sets and customization requests.
// Each variant declares the subset it supports; see Variant.Fields.
const (
	FieldRoleDescription        = "role_description"
	FieldContentObjective       = "content_objective"
	FieldStyleGuidance          = "style_guidance"
	FieldStructureDescription   = "structure_description"
	FieldTone                   = "tone"
	FieldFormatGuide            = "format_guide"
	FieldSEOGuidelines          = "seo_guidelines"
	FieldEngagementTips         = "engagement_tips"
	FieldLimitations            = "limitations"
	FieldAdditionalInstructions = "additional_instructions"
)

// Config holds the named text fields that compose a system prompt.
// The first four fields are required at construction; the rest default to
// empty, which means "omit this section" when rendering.
//
// Config has value semantics: copies are independent and comparison is by
// field value.
type Config struct {
	RoleDescription        string `json:"role_description"`
	ContentObjective       string `json:"content_objective"`
	StyleGuidance          string `json:"style_guidance"`
	StructureDescription   string `json:"structure_description"`
	Tone                   string `json:"tone,omitempty"`
	FormatGuide            string `json:"format_guide,omitempty"`
	SEOGuidelines          string `json:"seo_guidelines,omitempty"`
	EngagementTips         string `json:"engagement_tips,omitempty"`
	Limitations            string `json:"limitations,omitempty"`
	AdditionalInstructions string `json:"additional_instructions,omitempty"`
}

// Validate checks the required fields of a Config.
func (c Config) Validate() error {
	switch {
	case c.RoleDescription == "":
		return &ConfigError{Field: FieldRoleDescription}
	case c.ContentObjective == "":
		return &ConfigError{Field: FieldContentObjective}
	case c.StyleGuidance == "":
		return &ConfigError{Field: FieldStyleGuidance}
	case c.StructureDescription == "":
		return &ConfigError{Field: FieldStructureDescription}
	}
	return nil
}

// ConfigError reports a missing required configuration field.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return "prompts: required field is empty: " + e.Field
}

// field returns the value of a named field.
func (c Config) field(name string) (string, bool) {
	switch name {
	case FieldRoleDescription:
		return c.RoleDescription, true
	case FieldContentObjective:
		return c.ContentObjective, true
	case FieldStyleGuidance:
		return c.StyleGuidance, true
	case FieldStructureDescription:
		return c.StructureDescription, true
	case FieldTone:
		return c.Tone, true
	case FieldFormatGuide:
		return c.FormatGuide, true
	case FieldSEOGuidelines:
		return c.SEOGuidelines, true
	case FieldEngagementTips:
		return c.EngagementTips, true
	case FieldLimitations:
		return c.Limitations, true
	case FieldAdditionalInstructions:
		return c.AdditionalInstructions, true
	}
	return "", false
}

// setField assigns a named field. Returns false for unknown names.
func (c *Config) setField(name, value string) bool {
	switch name {
	case FieldRoleDescription:
		c.RoleDescription = value
	case FieldContentObjective:
		c.ContentObjective = value
	case FieldStyleGuidance:
		c.StyleGuidance = value
	case FieldStructureDescription:
		c.StructureDescription = value
	case FieldTone:
		c.Tone = value
	case FieldFormatGuide:
		c.FormatGuide = value
	case FieldSEOGuidelines:
		c.SEOGuidelines = value
	case FieldEngagementTips:
		c.EngagementTips = value
	case FieldLimitations:
		c.Limitations = value
	case FieldAdditionalInstructions:
		c.AdditionalInstructions = value
	default:
		return false
	}
	return true
}

// IsField reports whether name is a recognized prompt field.
func IsField(name string) bool {
	var c Config
	return c.setField(name, "")
}

// Overrides maps field names to replacement values. A nil entry (JSON null)
// and an absent entry both mean "keep the current value".
type Overrides map[string]*string

// Set records an override value for a field name.
func (o Overrides) Set(name, value string) {
	o[name] = &value
}
