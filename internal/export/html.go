// Package export renders generated article markdown to standalone HTML
// files under the home exports directory.
package export

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/yuin/goldmark"

	homedir "github.com/DISIA-TECH/tool-content-backend/internal/home"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// HTML converts article markdown to an HTML document body wrapped in a
// minimal page shell.
func HTML(title, markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return fmt.Sprintf(pageTemplate, html.EscapeString(title), buf.String()), nil
}

// WriteFile renders the markdown and stores it under the exports
// directory, returning the written path.
func WriteFile(dir *homedir.Dir, name, title, markdown string) (string, error) {
	doc, err := HTML(title, markdown)
	if err != nil {
		return "", err
	}
	if err := dir.EnsureExists(); err != nil {
		return "", err
	}
	if !strings.HasSuffix(name, ".html") {
		name += ".html"
	}
	path := dir.ExportPath(name)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
