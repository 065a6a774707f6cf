package export

import (
	"os"
	"strings"
	"testing"

	homedir "github.com/DISIA-TECH/tool-content-backend/internal/home"
)

func TestHTML(t *testing.T) {
	doc, err := HTML("Mi Artículo", "# Título\n\nPárrafo con **negrita**.")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(doc, "<title>Mi Artículo</title>") {
		t.Errorf("title missing:\n%s", doc)
	}
	if !strings.Contains(doc, "<h1>Título</h1>") || !strings.Contains(doc, "<strong>negrita</strong>") {
		t.Errorf("markdown not converted:\n%s", doc)
	}
}

func TestHTMLEscapesTitle(t *testing.T) {
	doc, err := HTML("<script>", "texto")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(doc, "<title><script></title>") {
		t.Error("title must be escaped")
	}
}

func TestWriteFile(t *testing.T) {
	dir, err := homedir.New(t.TempDir())
	if err != nil {
		t.Fatalf("home.New: %v", err)
	}
	path, err := WriteFile(dir, "articulo", "T", "contenido")
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if !strings.HasSuffix(path, "articulo.html") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "contenido") {
		t.Error("exported file missing content")
	}
}
