package endpoints

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/DISIA-TECH/tool-content-backend/internal/agent"
	"github.com/DISIA-TECH/tool-content-backend/internal/ingest"
	"github.com/DISIA-TECH/tool-content-backend/internal/svcctx"
)

// Multipart form memory limit for PDF uploads.
const maxUploadMemory = 32 << 20 // 32MB

// parseSuccessCaseForm reads a multipart success-case request. An attached
// PDF is validated and archived under the home sources directory; the
// generation itself works from the informacion_caso_exito text field.
func parseSuccessCaseForm(r *http.Request) (*agent.SuccessCaseRequest, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return nil, fmt.Errorf("failed to parse form: %v", err)
	}
	defer r.MultipartForm.RemoveAll()

	req := &agent.SuccessCaseRequest{
		Topic:             r.FormValue("tema"),
		PrimaryKeywords:   splitFormList(r.FormValue("palabras_clave_primarias")),
		SecondaryKeywords: splitFormList(r.FormValue("palabras_clave_secundarias")),
		Length:            r.FormValue("longitud"),
		Audience:          r.FormValue("publico_objetivo"),
		Objective:         r.FormValue("objetivo"),
		Tone:              r.FormValue("tono_especifico"),
		CallToAction:      r.FormValue("llamada_accion"),
		Avoid:             splitFormList(r.FormValue("elementos_evitar")),
		Comments:          r.FormValue("comentarios_adicionales"),
		SourceText:        r.FormValue("informacion_caso_exito"),
		Model:             r.FormValue("model"),
	}
	if v := r.FormValue("temperature"); v != "" {
		temp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid temperature: %q", v)
		}
		req.Temperature = &temp
	}

	files := r.MultipartForm.File["pdf"]
	if len(files) == 0 {
		return req, nil
	}

	fh := files[0]
	if !strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
		return nil, fmt.Errorf("file %s is not a PDF", fh.Filename)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %v", err)
	}

	homeDir := svcctx.HomeFrom(r.Context())
	if homeDir == nil {
		return nil, fmt.Errorf("home directory not initialized")
	}

	doc, err := ingest.ArchivePDF(homeDir, fh.Filename, data)
	if err != nil {
		return nil, err
	}
	if logger := svcctx.LoggerFrom(r.Context()); logger != nil {
		logger.Info("archived success case PDF",
			"id", doc.ID, "name", doc.Name, "pages", doc.Pages)
	}

	return req, nil
}

// splitFormList splits a comma-separated form value into trimmed items.
func splitFormList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
