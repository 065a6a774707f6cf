package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/DISIA-TECH/tool-content-backend/internal/api"
	"github.com/DISIA-TECH/tool-content-backend/internal/export"
	"github.com/DISIA-TECH/tool-content-backend/internal/svcctx"
)

// ExportRequest asks for an HTML export of a generated article.
type ExportRequest struct {
	Name     string `json:"name"`
	Title    string `json:"titulo"`
	Markdown string `json:"content"`
}

// ExportResponse reports the written export file.
type ExportResponse struct {
	Path string `json:"path"`
}

// ExportHTMLEndpoint handles POST /export/html.
type ExportHTMLEndpoint struct{}

var _ api.Endpoint = (*ExportHTMLEndpoint)(nil)

func (e *ExportHTMLEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/export/html", e.handler
}

func (e *ExportHTMLEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Export an article to HTML
//	@Description	Render article markdown to a standalone HTML file under the home exports directory
//	@Tags			export
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ExportRequest	true	"Export request"
//	@Success		200		{object}	ExportResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/export/html [post]
func (e *ExportHTMLEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	homeDir := svcctx.HomeFrom(r.Context())
	if homeDir == nil {
		writeError(w, http.StatusServiceUnavailable, "home directory not initialized")
		return
	}

	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Name == "" || req.Markdown == "" {
		writeError(w, http.StatusBadRequest, "name and content required")
		return
	}
	if req.Title == "" {
		req.Title = req.Name
	}

	path, err := export.WriteFile(homeDir, req.Name, req.Title, req.Markdown)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ExportResponse{Path: path})
}

func (e *ExportHTMLEndpoint) Command(getServerURL func() string) *cobra.Command {
	var title, contentFile string
	cmd := &cobra.Command{
		Use:   "html <name>",
		Short: "Export article markdown to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(contentFile)
			if err != nil {
				return err
			}

			req := ExportRequest{Name: args[0], Title: title, Markdown: string(data)}
			client := api.NewClient(getServerURL())
			var resp ExportResponse
			if err := client.Post(cmd.Context(), "/export/html", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Document title (defaults to the name)")
	cmd.Flags().StringVar(&contentFile, "content", "", "Markdown file to export")
	cmd.MarkFlagRequired("content")
	return cmd
}
