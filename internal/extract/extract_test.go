package extract

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"glued sentences", "Primera frase.Segunda frase,Tercera", "Primera frase. Segunda frase, Tercera"},
		{"space runs", "una   frase\tcon  espacios", "una frase con espacios"},
		{"newline runs", "párrafo uno\n\n\n\npárrafo dos", "párrafo uno\n\npárrafo dos"},
		{"paragraphs survive", "línea uno\nlínea dos\n\nlínea tres", "línea uno\nlínea dos\n\nlínea tres"},
		{"trim", "  texto  ", "texto"},
		{"lowercase after dot untouched", "ej.ejemplo", "ej.ejemplo"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hola.Mundo,Otra   vez\n\n\n\nfin ",
		"ya normalizado\n\npárrafo",
		"",
		"  \t \n\n\n ",
		"#Título\nmeta descripción: x.Y",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestExtractArticle(t *testing.T) {
	t.Run("full example", func(t *testing.T) {
		a := ExtractArticle("# Hello\nmeta descripción: Short desc\npalabras clave: a, b, c\nBody")
		if a.Title != "Hello" {
			t.Errorf("title = %q", a.Title)
		}
		if a.MetaDescription != "Short desc" {
			t.Errorf("meta = %q", a.MetaDescription)
		}
		if len(a.Keywords) != 3 || a.Keywords[0] != "a" || a.Keywords[2] != "c" {
			t.Errorf("keywords = %v", a.Keywords)
		}
		if !strings.Contains(a.Body, "Body") {
			t.Errorf("body must keep the original text: %q", a.Body)
		}
	})

	t.Run("empty input never fails", func(t *testing.T) {
		a := ExtractArticle("")
		if a.Title != FallbackArticleTitle {
			t.Errorf("title = %q", a.Title)
		}
		if a.MetaDescription != "" || len(a.Keywords) != 0 {
			t.Errorf("want empty optionals, got %+v", a)
		}
	})

	t.Run("plain first line as title", func(t *testing.T) {
		a := ExtractArticle("Un título sin marcador\ncuerpo")
		if a.Title != "Un título sin marcador" {
			t.Errorf("title = %q", a.Title)
		}
	})

	t.Run("labels are case-insensitive", func(t *testing.T) {
		a := ExtractArticle("T\nMETA DESCRIPCIÓN: Algo\nPALABRAS CLAVE: x, y")
		if a.MetaDescription != "Algo" {
			t.Errorf("meta = %q", a.MetaDescription)
		}
		if len(a.Keywords) != 2 {
			t.Errorf("keywords = %v", a.Keywords)
		}
	})

	t.Run("label without colon yields nothing", func(t *testing.T) {
		a := ExtractArticle("T\nmeta descripción sin dos puntos\n")
		if a.MetaDescription != "" {
			t.Errorf("meta = %q", a.MetaDescription)
		}
	})

	t.Run("label on last line without newline", func(t *testing.T) {
		a := ExtractArticle("T\nmeta descripción: al final")
		if a.MetaDescription != "al final" {
			t.Errorf("meta = %q", a.MetaDescription)
		}
	})
}

func TestExtractDual(t *testing.T) {
	t.Run("role follows marker not position", func(t *testing.T) {
		d := ExtractDual("# T\nversión completa: FULL TEXT\nversión corta: SHORT TEXT")
		if d.Title != "T" {
			t.Errorf("title = %q", d.Title)
		}
		if !strings.Contains(d.ShortSummary, "SHORT TEXT") {
			t.Errorf("short = %q", d.ShortSummary)
		}
		if !strings.Contains(d.FullBody, "FULL TEXT") {
			t.Errorf("full = %q", d.FullBody)
		}
		if strings.Contains(d.ShortSummary, "FULL TEXT") {
			t.Errorf("short span leaked full text: %q", d.ShortSummary)
		}
	})

	t.Run("natural order", func(t *testing.T) {
		d := ExtractDual("# Caso\n\nVersión corta:\nresumen breve\n\nVersión completa:\ncuerpo extenso")
		if d.Title != "Caso" {
			t.Errorf("title = %q", d.Title)
		}
		if d.ShortSummary != "resumen breve" {
			t.Errorf("short = %q", d.ShortSummary)
		}
		if d.FullBody != "cuerpo extenso" {
			t.Errorf("full = %q", d.FullBody)
		}
	})

	t.Run("marker alternatives", func(t *testing.T) {
		d := ExtractDual("T\nResumen ejecutivo: breve\nVersión detallada: largo")
		if d.ShortSummary != "breve" || d.FullBody != "largo" {
			t.Errorf("short = %q, full = %q", d.ShortSummary, d.FullBody)
		}
	})

	t.Run("missing markers fall back to 200 words", func(t *testing.T) {
		words := make([]string, 300)
		for i := range words {
			words[i] = "palabra"
		}
		text := "# Título\n" + strings.Join(words, " ")
		d := ExtractDual(text)
		if d.Title != "Título" {
			t.Errorf("title = %q", d.Title)
		}
		wantShort := strings.Join(strings.Fields(text)[:200], " ")
		if d.ShortSummary != wantShort {
			t.Errorf("short summary must be exactly the first 200 words")
		}
		if d.FullBody != text {
			t.Errorf("full body must be the entire original text")
		}
	})

	t.Run("meta scanned on original text", func(t *testing.T) {
		d := ExtractDual("T\nmeta descripción: Resumen del logro\npalabras clave: éxito, datos\nversión corta: s\nversión completa: f")
		if d.MetaDescription != "Resumen del logro" {
			t.Errorf("meta = %q", d.MetaDescription)
		}
		if len(d.Keywords) != 2 || d.Keywords[0] != "éxito" {
			t.Errorf("keywords = %v", d.Keywords)
		}
	})

	t.Run("empty input never fails", func(t *testing.T) {
		d := ExtractDual("")
		if d.Title != FallbackCaseTitle {
			t.Errorf("title = %q", d.Title)
		}
		if d.ShortSummary != "" || d.FullBody != "" {
			t.Errorf("got %+v", d)
		}
	})

	t.Run("no usable title before markers", func(t *testing.T) {
		d := ExtractDual("versión corta: s\nversión completa: f")
		if d.Title != FallbackCaseTitle {
			t.Errorf("title = %q", d.Title)
		}
	})
}

func TestHashtags(t *testing.T) {
	got := Hashtags("Gran día 🎉 #Innovación #IA y #team_work fin")
	want := []string{"Innovación", "IA", "team_work"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tag[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if n := len(Hashtags("sin etiquetas")); n != 0 {
		t.Errorf("want none, got %d", n)
	}
}
