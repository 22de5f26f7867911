// ABOUTME: Web server assembly with CORS, logging, and rate limit middleware
// ABOUTME: Wires the dashboard and API handlers into one http.Handler

package web

import (
	"net/http"

	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/hiroy72-cloud/ai-news-dashboard/core/interfaces"
	"github.com/hiroy72-cloud/ai-news-dashboard/web/middleware"
)

// ServerConfig holds middleware configuration for the web server
type ServerConfig struct {
	Logger         interfaces.Logger
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewServer builds the full handler chain for the dashboard application
func NewServer(h *Handler, cfg ServerConfig) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.Dashboard)
	mux.HandleFunc("/api/news", h.News)
	mux.HandleFunc("/healthz", h.Health)

	var handler http.Handler = mux

	if cfg.RateLimitRPS > 0 {
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
		handler = middleware.RateLimit(limiter)(handler)
	}

	if cfg.Logger != nil {
		handler = middleware.RequestLogging(cfg.Logger)(handler)
	}

	handler = cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}).Handler(handler)

	return handler
}
