// ABOUTME: HTTP handlers for the dashboard page and the JSON news API
// ABOUTME: Parses query/limit/tag parameters and renders articles

package web

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/hiroy72-cloud/ai-news-dashboard/core/domain"
	"github.com/hiroy72-cloud/ai-news-dashboard/core/interfaces"
)

//go:embed templates/*.html
var templateFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// NewsSearcher defines the methods needed from the news service
type NewsSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Article, string)
}

// Handler handles dashboard and news API requests
type Handler struct {
	news   NewsSearcher
	logger interfaces.Logger
	now    func() time.Time
}

// NewHandler creates a new web handler
func NewHandler(news NewsSearcher, logger interfaces.Logger) *Handler {
	return &Handler{
		news:   news,
		logger: logger,
		now:    time.Now,
	}
}

// searchParams extracts the effective query and limit from a request.
// A quick-tag submission overrides the query field for this one request.
func searchParams(r *http.Request) (string, int) {
	values := r.URL.Query()

	query := values.Get("q")
	if tag := values.Get("tag"); tag != "" {
		query = tag
	}
	if query == "" {
		query = defaultQuery
	}

	return query, clampLimit(values.Get("limit"))
}

// Dashboard handles GET / and renders the news card page
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	query, limit := searchParams(r)
	articles, _ := h.news.Search(r.Context(), query, limit)

	view := buildDashboardView(query, limit, articles, h.now())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, view); err != nil {
		h.logger.Error("Failed to render dashboard", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// newsResponse is the JSON payload for GET /api/news
type newsResponse struct {
	Count     int              `json:"count"`
	Query     string           `json:"query"`
	SourceURL string           `json:"source_url"`
	Articles  []domain.Article `json:"articles"`
}

// News handles GET /api/news and returns the sanitized articles as JSON
func (h *Handler) News(w http.ResponseWriter, r *http.Request) {
	query, limit := searchParams(r)
	articles, sourceURL := h.news.Search(r.Context(), query, limit)

	respondWithJSON(w, http.StatusOK, newsResponse{
		Count:     len(articles),
		Query:     query,
		SourceURL: sourceURL,
		Articles:  articles,
	})
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}
