package endpoints

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DISIA-TECH/tool-content-backend/internal/api"
	"github.com/DISIA-TECH/tool-content-backend/internal/calllog"
	"github.com/DISIA-TECH/tool-content-backend/internal/svcctx"
)

// GenerationsResponse contains recent generation calls, newest first.
type GenerationsResponse struct {
	Calls []calllog.Call `json:"calls"`
	Total int            `json:"total"`
}

// ListGenerationsEndpoint handles GET /generations.
type ListGenerationsEndpoint struct{}

var _ api.Endpoint = (*ListGenerationsEndpoint)(nil)

func (e *ListGenerationsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/generations", e.handler
}

func (e *ListGenerationsEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		List generation calls
//	@Description	Recent generation call history, newest first
//	@Tags			generations
//	@Produce		json
//	@Param			limit	query		int	false	"Max results (default 50)"
//	@Success		200		{object}	GenerationsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/generations [get]
func (e *ListGenerationsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	store := svcctx.CallsFrom(r.Context())
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "call store not available")
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit: %q must be an integer", v))
			return
		}
		limit = n
	}

	calls := store.Recent(limit)
	writeJSON(w, http.StatusOK, GenerationsResponse{Calls: calls, Total: len(calls)})
}

func (e *ListGenerationsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent generation calls",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())

			path := "/generations"
			if limit > 0 {
				params := url.Values{}
				params.Set("limit", strconv.Itoa(limit))
				path += "?" + params.Encode()
			}

			var resp GenerationsResponse
			if err := client.Get(cmd.Context(), path, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Max results")
	return cmd
}
