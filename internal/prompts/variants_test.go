package prompts

import "testing"

func TestLookupUnknownTagFallsBack(t *testing.T) {
	v := Lookup(Tag("no-such-style"))
	if v.Tag != TagGeneric {
		t.Fatalf("want generic fallback, got %q", v.Tag)
	}
	if err := v.Defaults.Validate(); err != nil {
		t.Errorf("generic defaults invalid: %v", err)
	}
}

func TestLookupReturnsCopies(t *testing.T) {
	a := Lookup(TagLeadership)
	a.Defaults.Tone = "mutado"
	b := Lookup(TagLeadership)
	if b.Defaults.Tone == "mutado" {
		t.Fatal("Lookup must return independent copies")
	}
}

func TestMerge(t *testing.T) {
	t.Run("applies supported overrides", func(t *testing.T) {
		v := Lookup(TagGeneralInterest)
		o := Overrides{}
		o.Set(FieldTone, "muy formal")
		m := Merge(v, o)
		if m.Defaults.Tone != "muy formal" {
			t.Errorf("override not applied: %q", m.Defaults.Tone)
		}
		if v.Defaults.Tone == "muy formal" {
			t.Error("merge must not mutate its input")
		}
	})

	t.Run("drops unsupported fields silently", func(t *testing.T) {
		v := Lookup(TagGeneralInterest)
		o := Overrides{}
		o.Set(FieldEngagementTips, "tips")
		o.Set("campo_inexistente", "x")
		m := Merge(v, o)
		if m.Defaults.EngagementTips != "" {
			t.Error("blog variant must not accept engagement_tips")
		}
	})

	t.Run("nil entry keeps current value", func(t *testing.T) {
		v := Lookup(TagWins)
		m := Merge(v, Overrides{FieldTone: nil})
		if m.Defaults.Tone != v.Defaults.Tone {
			t.Errorf("nil override changed value: %q", m.Defaults.Tone)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		v := Lookup(TagHotTakes)
		o := Overrides{}
		o.Set(FieldLimitations, "ninguna")
		once := Merge(v, o)
		twice := Merge(once, o)
		if once.Defaults != twice.Defaults {
			t.Error("applying the same override set twice must be a no-op")
		}
	})
}

func TestFieldSets(t *testing.T) {
	blog := Lookup(TagSuccessCase)
	if blog.Supports(FieldEngagementTips) {
		t.Error("blog variants must not support engagement_tips")
	}
	if !blog.Supports(FieldSEOGuidelines) {
		t.Error("blog variants must support seo_guidelines")
	}
	li := Lookup(TagCEOJourney)
	if li.Supports(FieldSEOGuidelines) {
		t.Error("linkedin variants must not support seo_guidelines")
	}
	if !li.Supports(FieldEngagementTips) {
		t.Error("linkedin variants must support engagement_tips")
	}
}

func TestConfigValidate(t *testing.T) {
	c := Config{
		RoleDescription:      "rol",
		ContentObjective:     "objetivo",
		StyleGuidance:        "estilo",
		StructureDescription: "estructura",
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	c.StyleGuidance = ""
	err := c.Validate()
	cerr, ok := err.(*ConfigError)
	if !ok {
		t.Fatalf("want ConfigError, got %v", err)
	}
	if cerr.Field != FieldStyleGuidance {
		t.Errorf("wrong field reported: %q", cerr.Field)
	}
}

func TestPersonaInstructions(t *testing.T) {
	for _, id := range []string{"pablo", "aitor"} {
		if PersonaInstructions[id] == "" {
			t.Errorf("persona %q has no instructions", id)
		}
	}
}
