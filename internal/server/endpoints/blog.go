package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DISIA-TECH/tool-content-backend/internal/agent"
	"github.com/DISIA-TECH/tool-content-backend/internal/api"
	"github.com/DISIA-TECH/tool-content-backend/internal/prompts"
	"github.com/DISIA-TECH/tool-content-backend/internal/svcctx"
)

// GeneralInterestEndpoint handles POST /blog/general-interest.
type GeneralInterestEndpoint struct{}

var _ api.Endpoint = (*GeneralInterestEndpoint)(nil)

func (e *GeneralInterestEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/blog/general-interest", e.handler
}

func (e *GeneralInterestEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Generate a general-interest blog article
//	@Description	Generate a blog article on a topic, optionally enriched with reference URL content
//	@Tags			blog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		agent.GeneralInterestRequest	true	"Article request"
//	@Success		200		{object}	agent.ArticleResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/blog/general-interest [post]
func (e *GeneralInterestEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	blog := svcctx.BlogFrom(r.Context())
	if blog == nil {
		writeError(w, http.StatusServiceUnavailable, "blog service not available")
		return
	}

	var req agent.GeneralInterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Topic == "" {
		writeError(w, http.StatusBadRequest, "tema required")
		return
	}

	resp, err := blog.GeneralInterest(r.Context(), req)
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (e *GeneralInterestEndpoint) Command(getServerURL func() string) *cobra.Command {
	var req agent.GeneralInterestRequest
	var primaryKeywords, secondaryKeywords, referenceURLs []string
	cmd := &cobra.Command{
		Use:   "general <topic>",
		Short: "Generate a general-interest blog article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Topic = args[0]
			req.PrimaryKeywords = primaryKeywords
			req.SecondaryKeywords = secondaryKeywords
			req.ReferenceURLs = referenceURLs

			client := api.NewClient(getServerURL())
			var resp agent.ArticleResponse
			if err := client.Post(cmd.Context(), "/blog/general-interest", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringSliceVar(&primaryKeywords, "keywords", nil, "Primary SEO keywords")
	cmd.Flags().StringSliceVar(&secondaryKeywords, "secondary-keywords", nil, "Secondary SEO keywords")
	cmd.Flags().StringSliceVar(&referenceURLs, "urls", nil, "Reference URLs to fetch")
	cmd.Flags().StringVar(&req.Length, "length", "", "Target article length")
	cmd.Flags().StringVar(&req.Audience, "audience", "", "Target audience")
	cmd.Flags().StringVar(&req.Objective, "objective", "", "Article objective")
	cmd.Flags().StringVar(&req.Tone, "tone", "", "Specific tone")
	cmd.Flags().StringVar(&req.Comments, "comments", "", "Additional comments")
	cmd.Flags().StringVar(&req.Model, "model", "", "Model override")
	return cmd
}

// SuccessCaseEndpoint handles POST /blog/success-case. It accepts either a
// JSON body with pre-extracted source text or a multipart form with an
// attached PDF, which is validated and archived before generation.
type SuccessCaseEndpoint struct{}

var _ api.Endpoint = (*SuccessCaseEndpoint)(nil)

func (e *SuccessCaseEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/blog/success-case", e.handler
}

func (e *SuccessCaseEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Generate a success-case article
//	@Description	Generate a dual-version success-case article from source material
//	@Tags			blog
//	@Accept			json
//	@Accept			mpfd
//	@Produce		json
//	@Param			request	body		agent.SuccessCaseRequest	true	"Article request"
//	@Success		200		{object}	agent.SuccessCaseResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/blog/success-case [post]
func (e *SuccessCaseEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	blog := svcctx.BlogFrom(r.Context())
	if blog == nil {
		writeError(w, http.StatusServiceUnavailable, "blog service not available")
		return
	}

	var req agent.SuccessCaseRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		parsed, err := parseSuccessCaseForm(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		req = *parsed
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
			return
		}
	}
	if req.Topic == "" {
		writeError(w, http.StatusBadRequest, "tema required")
		return
	}

	resp, err := blog.SuccessCase(r.Context(), req)
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (e *SuccessCaseEndpoint) Command(getServerURL func() string) *cobra.Command {
	var req agent.SuccessCaseRequest
	var primaryKeywords []string
	var sourceFile string
	cmd := &cobra.Command{
		Use:   "success-case <topic>",
		Short: "Generate a success-case article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Topic = args[0]
			req.PrimaryKeywords = primaryKeywords
			if sourceFile != "" {
				data, err := os.ReadFile(sourceFile)
				if err != nil {
					return err
				}
				req.SourceText = string(data)
			}

			client := api.NewClient(getServerURL())
			var resp agent.SuccessCaseResponse
			if err := client.Post(cmd.Context(), "/blog/success-case", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringSliceVar(&primaryKeywords, "keywords", nil, "Primary SEO keywords")
	cmd.Flags().StringVar(&req.Length, "length", "", "Target article length")
	cmd.Flags().StringVar(&req.Audience, "audience", "", "Target audience")
	cmd.Flags().StringVar(&req.Comments, "comments", "", "Additional comments")
	cmd.Flags().StringVar(&sourceFile, "source", "", "Text file with the success case material")
	cmd.Flags().StringVar(&req.Model, "model", "", "Model override")
	return cmd
}

// CustomizationEndpoint handles PUT /blog/customization.
type CustomizationEndpoint struct{}

var _ api.Endpoint = (*CustomizationEndpoint)(nil)

func (e *CustomizationEndpoint) Route() (string, string, http.HandlerFunc) {
	return "PUT", "/blog/customization", e.handler
}

func (e *CustomizationEndpoint) RequiresInit() bool { return true }

// CustomizationResponse confirms an applied customization.
type CustomizationResponse struct {
	Status  string   `json:"status"`
	Applied []string `json:"applied_fields"`
}

// handler godoc
//
//	@Summary		Customize blog prompt defaults
//	@Description	Permanently override prompt fields for both blog families; unsupported fields are dropped
//	@Tags			blog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		prompts.Overrides	true	"Field overrides"
//	@Success		200		{object}	CustomizationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/blog/customization [put]
func (e *CustomizationEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	blog := svcctx.BlogFrom(r.Context())
	if blog == nil {
		writeError(w, http.StatusServiceUnavailable, "blog service not available")
		return
	}

	var overrides prompts.Overrides
	if err := json.NewDecoder(r.Body).Decode(&overrides); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	blog.Customize(overrides)

	applied := make([]string, 0, len(overrides))
	for field, value := range overrides {
		if value != nil && prompts.IsField(field) {
			applied = append(applied, field)
		}
	}
	sort.Strings(applied)
	writeJSON(w, http.StatusOK, CustomizationResponse{Status: "ok", Applied: applied})
}

func (e *CustomizationEndpoint) Command(getServerURL func() string) *cobra.Command {
	var role, tone, structure, seo, instructions string
	cmd := &cobra.Command{
		Use:   "customize",
		Short: "Permanently override blog prompt defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := prompts.Overrides{}
			for field, value := range map[string]string{
				prompts.FieldRoleDescription:        role,
				prompts.FieldTone:                   tone,
				prompts.FieldStructureDescription:   structure,
				prompts.FieldSEOGuidelines:          seo,
				prompts.FieldAdditionalInstructions: instructions,
			} {
				if value != "" {
					overrides.Set(field, value)
				}
			}
			if len(overrides) == 0 {
				return fmt.Errorf("no overrides given")
			}

			client := api.NewClient(getServerURL())
			var resp CustomizationResponse
			if err := client.Put(cmd.Context(), "/blog/customization", overrides, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "Writer role")
	cmd.Flags().StringVar(&tone, "tone", "", "Tone description")
	cmd.Flags().StringVar(&structure, "structure", "", "Article structure")
	cmd.Flags().StringVar(&seo, "seo", "", "SEO guidelines")
	cmd.Flags().StringVar(&instructions, "instructions", "", "Additional instructions")
	return cmd
}

// writeGenerationError maps a generation failure to an HTTP status. Render
// errors are client mistakes; everything else is a provider failure.
func writeGenerationError(w http.ResponseWriter, err error) {
	var renderErr *prompts.RenderError
	if errors.As(err, &renderErr) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
