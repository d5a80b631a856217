package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/PauloHFS/pagelinks/internal/config"
	"github.com/PauloHFS/pagelinks/internal/db"
	"github.com/PauloHFS/pagelinks/internal/logging"
	"github.com/PauloHFS/pagelinks/internal/metrics"
	"github.com/PauloHFS/pagelinks/internal/validator"
	"github.com/PauloHFS/pagelinks/internal/view"
)

type HandlerDeps struct {
	Pool    *db.DualPool
	Queries *db.Queries
	Links   *view.LinkCache
	Config  *config.Config
}

// AppHandler é um tipo customizado que permite retornar erros dos handlers
type AppHandler func(deps HandlerDeps, w http.ResponseWriter, r *http.Request) error

// HTTPError is returned by handlers to answer with a status other than 500.
type HTTPError struct {
	Status  int
	Message string
	Details any
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// Handle envolve nosso AppHandler para conformidade com http.HandlerFunc
func Handle(deps HandlerDeps, h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(deps, w, r)
		if err == nil {
			return
		}

		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			logging.AddToEvent(r.Context(),
				slog.String("outcome", "rejected"),
				slog.String("error_reason", httpErr.Message),
			)
			writeJSON(w, httpErr.Status, errorResponse{Error: httpErr.Message, Details: httpErr.Details})
			return
		}

		logging.Get().Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Get().Error("failed to encode response", slog.Any("error", err))
	}
}

type linkResponse struct {
	Kind    view.LinkKind `json:"kind"`
	Index   int           `json:"index"`
	Number  int           `json:"number,omitempty"`
	Current bool          `json:"current,omitempty"`
	Label   string        `json:"label"`
}

type windowResponse struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

type paginationResponse struct {
	PageCount    int             `json:"page_count"`
	CurrentIndex int             `json:"current_index"`
	CurrentPage  int             `json:"current_page"`
	MaxLinks     int             `json:"max_links"`
	Window       *windowResponse `json:"window,omitempty"`
	HasPrevious  bool            `json:"has_previous"`
	HasNext      bool            `json:"has_next"`
	Links        []linkResponse  `json:"links"`
}

func (deps HandlerDeps) links(p view.Pagination) []view.Link {
	if deps.Links != nil {
		return deps.Links.Links(p.PageCount, p.CurrentPage, p.MaxLinks)
	}
	return p.Links()
}

func (deps HandlerDeps) pagination(ctx context.Context, source string, p view.Pagination) paginationResponse {
	resp := paginationResponse{
		PageCount:    p.PageCount,
		CurrentIndex: p.CurrentPage,
		CurrentPage:  view.PageNumber(p.CurrentPage),
		MaxLinks:     p.MaxLinks,
		HasPrevious:  p.HasPrevious(),
		HasNext:      p.HasNext(),
		Links:        []linkResponse{},
	}

	if left, right := p.Window(); right >= left {
		resp.Window = &windowResponse{Left: left, Right: right}
	}

	truncated := false
	for _, l := range deps.links(p) {
		if l.Kind == view.LinkEllipsis {
			truncated = true
		}
		resp.Links = append(resp.Links, linkResponse{
			Kind:    l.Kind,
			Index:   l.Index,
			Number:  l.Number(),
			Current: l.Current,
			Label:   view.Label(ctx, l),
		})
	}

	metrics.LinksBuilt.WithLabelValues(source, strconv.FormatBool(truncated)).Inc()
	metrics.PageCount.WithLabelValues(source).Observe(float64(p.PageCount))

	logging.AddToEvent(ctx,
		slog.Int("page_count", p.PageCount),
		slog.Int("page_index", p.CurrentPage),
		slog.Int("max_links", p.MaxLinks),
		slog.Bool("truncated", truncated),
	)

	return resp
}

// --- Handler Implementations ---

func handleLinks(deps HandlerDeps, w http.ResponseWriter, r *http.Request) error {
	q, result := validator.ParseLinkQuery(r.URL.Query(), deps.Config.MaxLinks)
	if !result.Valid {
		return &HTTPError{Status: http.StatusBadRequest, Message: "invalid query", Details: result.Errors}
	}

	p := view.NewPagination(q.Pages, q.Page, q.MaxLinks)
	writeJSON(w, http.StatusOK, deps.pagination(r.Context(), "api", p))
	return nil
}

type itemsResponse struct {
	Items      []db.Item          `json:"items"`
	TotalItems int                `json:"total_items"`
	PerPage    int                `json:"per_page"`
	Pagination paginationResponse `json:"pagination"`
}

func handleItems(deps HandlerDeps, w http.ResponseWriter, r *http.Request) error {
	page := view.PageIndex(r.URL.Query().Get("page"))

	result, err := deps.Queries.ListItemsPage(r.Context(), db.PagingParams{
		Page:    page,
		PerPage: deps.Config.PerPage,
	})
	if err != nil {
		return fmt.Errorf("failed to load items page: %w", err)
	}

	p := view.NewPagination(result.TotalPages(), result.CurrentPage, deps.Config.MaxLinks)
	writeJSON(w, http.StatusOK, itemsResponse{
		Items:      result.Items,
		TotalItems: result.TotalItems,
		PerPage:    result.PerPage,
		Pagination: deps.pagination(r.Context(), "items", p),
	})
	return nil
}

func handleHealth(deps HandlerDeps, w http.ResponseWriter, r *http.Request) error {
	if err := deps.Pool.Ping(r.Context()); err != nil {
		logging.Get().Error("health check failed: db unreachable", slog.Any("error", err))
		return &HTTPError{Status: http.StatusServiceUnavailable, Message: "database unreachable"}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
	return nil
}
