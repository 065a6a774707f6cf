package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/spf13/cobra"

	"github.com/DISIA-TECH/tool-content-backend/internal/agent"
	"github.com/DISIA-TECH/tool-content-backend/internal/api"
	"github.com/DISIA-TECH/tool-content-backend/internal/svcctx"
)

// LinkedInPostEndpoint handles POST /linkedin/post.
type LinkedInPostEndpoint struct{}

var _ api.Endpoint = (*LinkedInPostEndpoint)(nil)

func (e *LinkedInPostEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/linkedin/post", e.handler
}

func (e *LinkedInPostEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Generate a LinkedIn post
//	@Description	Generate a post in one of the registered styles, optionally as a named author persona
//	@Tags			linkedin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		agent.PostRequest	true	"Post request"
//	@Success		200		{object}	agent.PostResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/linkedin/post [post]
func (e *LinkedInPostEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	linkedin := svcctx.LinkedInFrom(r.Context())
	if linkedin == nil {
		writeError(w, http.StatusServiceUnavailable, "linkedin service not available")
		return
	}

	var req agent.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Topic == "" {
		writeError(w, http.StatusBadRequest, "tema required")
		return
	}

	resp, err := linkedin.Post(r.Context(), req)
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (e *LinkedInPostEndpoint) Command(getServerURL func() string) *cobra.Command {
	var req agent.PostRequest
	cmd := &cobra.Command{
		Use:   "post <topic>",
		Short: "Generate a LinkedIn post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Topic = args[0]

			client := api.NewClient(getServerURL())
			var resp agent.PostResponse
			if err := client.Post(cmd.Context(), "/linkedin/post", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&req.Style, "style", "", "Post style (see 'linkedin styles')")
	cmd.Flags().StringVar(&req.Persona, "author", "", "Author persona")
	cmd.Flags().StringVar(&req.ExtraInfo, "info", "", "Additional context for the post")
	cmd.Flags().StringVar(&req.Model, "model", "", "Model override")
	return cmd
}

// StylesResponse lists the registered LinkedIn post styles.
type StylesResponse struct {
	Styles []string `json:"styles"`
}

// ListStylesEndpoint handles GET /linkedin/styles.
type ListStylesEndpoint struct{}

var _ api.Endpoint = (*ListStylesEndpoint)(nil)

func (e *ListStylesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/linkedin/styles", e.handler
}

func (e *ListStylesEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		List LinkedIn post styles
//	@Tags			linkedin
//	@Produce		json
//	@Success		200	{object}	StylesResponse
//	@Router			/linkedin/styles [get]
func (e *ListStylesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	linkedin := svcctx.LinkedInFrom(r.Context())
	if linkedin == nil {
		writeError(w, http.StatusServiceUnavailable, "linkedin service not available")
		return
	}

	tags := linkedin.Styles()
	styles := make([]string, 0, len(tags))
	for _, tag := range tags {
		styles = append(styles, string(tag))
	}
	sort.Strings(styles)
	writeJSON(w, http.StatusOK, StylesResponse{Styles: styles})
}

func (e *ListStylesEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List LinkedIn post styles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp StylesResponse
			if err := client.Get(cmd.Context(), "/linkedin/styles", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// PersonasResponse lists the configured author personas.
type PersonasResponse struct {
	Personas []PersonaInfo `json:"personas"`
}

// PersonaInfo describes one configured persona.
type PersonaInfo struct {
	ID    string `json:"id"`
	Model string `json:"model,omitempty"`
}

// ListPersonasEndpoint handles GET /linkedin/personas.
type ListPersonasEndpoint struct{}

var _ api.Endpoint = (*ListPersonasEndpoint)(nil)

func (e *ListPersonasEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/linkedin/personas", e.handler
}

func (e *ListPersonasEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		List author personas
//	@Description	Configured author personas and their fine-tuned models
//	@Tags			linkedin
//	@Produce		json
//	@Success		200	{object}	PersonasResponse
//	@Router			/linkedin/personas [get]
func (e *ListPersonasEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	cm := svcctx.ConfigMgrFrom(r.Context())
	if cm == nil {
		writeError(w, http.StatusServiceUnavailable, "config not available")
		return
	}

	cfg := cm.Get()
	personas := make([]PersonaInfo, 0, len(cfg.Personas))
	for id, p := range cfg.Personas {
		personas = append(personas, PersonaInfo{ID: id, Model: p.Model})
	}
	sort.Slice(personas, func(i, j int) bool { return personas[i].ID < personas[j].ID })
	writeJSON(w, http.StatusOK, PersonasResponse{Personas: personas})
}

func (e *ListPersonasEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "personas",
		Short: "List author personas",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp PersonasResponse
			if err := client.Get(cmd.Context(), "/linkedin/personas", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
