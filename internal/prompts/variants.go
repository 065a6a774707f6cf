package prompts

// Tag identifies a template variant: a content family for blog articles or
// a post style for LinkedIn.
type Tag string

// Blog content families.
const (
	TagGeneralInterest Tag = "general-interest"
	TagSuccessCase     Tag = "success-case"
)

// LinkedIn post styles.
const (
	TagLeadership      Tag = "leadership"
	TagBehindTheScenes Tag = "behind-the-scenes"
	TagWins            Tag = "wins"
	TagCEOJourney      Tag = "ceo-journey"
	TagHotTakes        Tag = "hot-takes"
)

// TagLinkedInBase is the plain LinkedIn variant used when a request names
// no registered style.
const TagLinkedInBase Tag = "linkedin"

// TagGeneric is the fallback variant returned for unrecognized tags.
const TagGeneric Tag = "generic"

// Family groups variants by the content channel they serve.
type Family string

const (
	FamilyBlog     Family = "blog"
	FamilyLinkedIn Family = "linkedin"
	FamilyGeneric  Family = "generic"
)

// Variant bundles a tag with its default configuration, its user-prompt
// template, and the closed set of field names it supports. The supported
// field set is declared statically per variant; the merge step consults it
// directly instead of inspecting the record shape at runtime.
type Variant struct {
	Tag          Tag
	Family       Family
	Defaults     Config
	UserTemplate string
	Fields       []string
}

// blogFields is the field set shared by the blog content families.
var blogFields = []string{
	FieldRoleDescription,
	FieldContentObjective,
	FieldStyleGuidance,
	FieldStructureDescription,
	FieldTone,
	FieldFormatGuide,
	FieldSEOGuidelines,
	FieldLimitations,
	FieldAdditionalInstructions,
}

// linkedinFields is the field set shared by the LinkedIn post styles.
// LinkedIn variants carry engagement tips instead of SEO guidelines.
var linkedinFields = []string{
	FieldRoleDescription,
	FieldContentObjective,
	FieldStyleGuidance,
	FieldStructureDescription,
	FieldTone,
	FieldFormatGuide,
	FieldEngagementTips,
	FieldLimitations,
	FieldAdditionalInstructions,
}

// Supports reports whether the variant accepts overrides for the named field.
func (v Variant) Supports(name string) bool {
	for _, f := range v.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// Merge applies an override set to the variant's defaults and returns a new
// variant. Entries whose field is outside the variant's declared field set
// are dropped, as are nil entries; the merge is non-strict by design so a
// caller reusing one override set across families never errors. Neither the
// receiver nor the registry defaults are mutated.
func Merge(v Variant, o Overrides) Variant {
	out := v
	out.Fields = append([]string(nil), v.Fields...)
	for name, value := range o {
		if value == nil || !out.Supports(name) {
			continue
		}
		out.Defaults.setField(name, *value)
	}
	return out
}

// Lookup returns the variant for a tag. Unrecognized tags map to the
// generic variant; lookup never fails. The returned value is a copy, so
// callers may modify it freely.
func Lookup(tag Tag) Variant {
	switch tag {
	case TagGeneralInterest:
		return generalInterestVariant()
	case TagSuccessCase:
		return successCaseVariant()
	case TagLeadership:
		return leadershipVariant()
	case TagBehindTheScenes:
		return behindTheScenesVariant()
	case TagWins:
		return winsVariant()
	case TagCEOJourney:
		return ceoJourneyVariant()
	case TagHotTakes:
		return hotTakesVariant()
	case TagLinkedInBase:
		return baseLinkedInVariant()
	default:
		return genericVariant()
	}
}

// IsStyle reports whether the tag names a registered LinkedIn post style.
func IsStyle(tag Tag) bool {
	for _, t := range StyleTags() {
		if t == tag {
			return true
		}
	}
	return false
}

// Tags lists every registered variant tag, blog families first.
func Tags() []Tag {
	return []Tag{
		TagGeneralInterest,
		TagSuccessCase,
		TagLeadership,
		TagBehindTheScenes,
		TagWins,
		TagCEOJourney,
		TagHotTakes,
		TagLinkedInBase,
	}
}

// StyleTags lists the LinkedIn post styles.
func StyleTags() []Tag {
	return []Tag{
		TagLeadership,
		TagBehindTheScenes,
		TagWins,
		TagCEOJourney,
		TagHotTakes,
	}
}

func genericVariant() Variant {
	return Variant{
		Tag:    TagGeneric,
		Family: FamilyGeneric,
		Defaults: Config{
			RoleDescription:      "especialista en creación de contenido digital",
			ContentObjective:     "generar contenido claro, útil y bien estructurado",
			StyleGuidance:        "Mantén un equilibrio entre profesional e informal según la temática.",
			StructureDescription: "Incluye título, introducción, desarrollo con subtítulos y conclusión.",
		},
		UserTemplate: "Genera contenido sobre el tema: {tema}\n\nComentarios adicionales: {comentarios_adicionales}\n",
		Fields:       blogFields,
	}
}
