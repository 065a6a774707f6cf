package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DISIA-TECH/tool-content-backend/internal/home"
)

func TestFetcherExtractsText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><style>body{color:red}</style></head>` +
			`<body><script>var x=1;</script><h1>Título</h1><p>Contenido útil.</p></body></html>`))
	}))
	defer srv.Close()

	got, err := NewFetcher().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !strings.Contains(got, "Título") || !strings.Contains(got, "Contenido útil.") {
		t.Errorf("text content missing: %q", got)
	}
	if strings.Contains(got, "var x=1") || strings.Contains(got, "color:red") {
		t.Errorf("script/style content leaked: %q", got)
	}
}

func TestFetcherRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("<p>ok</p>"))
	}))
	defer srv.Close()

	f := NewFetcher()
	f.delay = time.Millisecond
	got, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got != "ok" {
		t.Errorf("got %q", got)
	}
	if calls.Load() != 3 {
		t.Errorf("want 3 attempts, got %d", calls.Load())
	}
}

func TestArchivePDFRejectsInvalidData(t *testing.T) {
	dir, err := home.New(t.TempDir())
	if err != nil {
		t.Fatalf("home.New: %v", err)
	}
	if _, err := ArchivePDF(dir, "case.pdf", []byte("not a pdf")); err == nil {
		t.Fatal("want error for invalid PDF data")
	}
}
