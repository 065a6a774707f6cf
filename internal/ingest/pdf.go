package ingest

import (
	"bytes"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/DISIA-TECH/tool-content-backend/internal/home"
)

// Document describes an archived source document.
type Document struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Path  string `json:"path"`
	Pages int    `json:"pages"`
}

// ArchivePDF validates a PDF payload and stores it under the home sources
// directory. Invalid payloads are rejected before anything is written.
func ArchivePDF(homeDir *home.Dir, name string, data []byte) (*Document, error) {
	pages, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("invalid PDF %s: %w", name, err)
	}

	if err := homeDir.EnsureExists(); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	path := homeDir.SourcePath(id, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to archive PDF: %w", err)
	}

	return &Document{ID: id, Name: name, Path: path, Pages: pages}, nil
}
