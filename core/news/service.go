// ABOUTME: News service fetches and sanitizes Google News RSS search results
// ABOUTME: Provides business logic for keyword search independent of the HTTP layer

package news

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/hiroy72-cloud/ai-news-dashboard/core/domain"
	"github.com/hiroy72-cloud/ai-news-dashboard/core/interfaces"
	"github.com/hiroy72-cloud/ai-news-dashboard/pkg/textutil"
)

const (
	// summaryLimit is the maximum number of runes kept from an entry summary.
	summaryLimit = 300

	// ellipsisMarker is appended to summaries that were cut off.
	ellipsisMarker = "…"

	// noSummaryText is shown for entries that carry no summary at all.
	noSummaryText = "要約はありません。"

	// publishedLayout formats structured publish times for display.
	publishedLayout = "2006年01月02日 15:04"
)

// Config holds the search endpoint parameters and cache policy.
type Config struct {
	// Endpoint is the feed-search base URL.
	Endpoint string

	// Language and Country are the fixed locale parameters (hl / gl).
	Language string
	Country  string

	// Edition is the ceid locale parameter.
	Edition string

	// CacheTTL bounds how long a (query, limit) result is reused.
	CacheTTL time.Duration
}

// DefaultConfig returns the Google News RSS search configuration with the
// Japanese edition locale and a five minute result cache.
func DefaultConfig() Config {
	return Config{
		Endpoint: "https://news.google.com/rss/search",
		Language: "ja",
		Country:  "JP",
		Edition:  "JP:ja",
		CacheTTL: 5 * time.Minute,
	}
}

// Service fetches news articles matching a search keyword.
type Service struct {
	deps interfaces.Dependencies
	cfg  Config
}

// NewService creates a new news service instance.
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	if cfg.Endpoint == "" {
		cfg = DefaultConfig()
	}
	return &Service{
		deps: deps,
		cfg:  cfg,
	}
}

// searchResult is the cache envelope for one (query, limit) lookup.
type searchResult struct {
	Articles  []domain.Article `json:"articles"`
	SourceURL string           `json:"source_url"`
}

// Search returns at most limit sanitized articles matching query, in feed
// order, along with the request URL that produced them. Failures while
// fetching or parsing are absorbed: the caller always receives a renderable
// (possibly empty) article list.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]domain.Article, string) {
	if limit < 0 {
		limit = 0
	}

	sourceURL := s.buildURL(query)

	// Check cache first
	cacheKey := fmt.Sprintf("news:%s:%d", query, limit)
	if cached, ok := s.getCachedResult(ctx, cacheKey); ok {
		return cached.Articles, cached.SourceURL
	}

	articles, err := s.fetch(ctx, sourceURL, limit)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Error("Failed to fetch news feed", map[string]interface{}{
				"query": query,
				"url":   sourceURL,
				"error": err.Error(),
			})
		}
		return []domain.Article{}, sourceURL
	}

	s.cacheResult(ctx, cacheKey, searchResult{Articles: articles, SourceURL: sourceURL})

	return articles, sourceURL
}

// buildURL constructs the feed-search request URL for the given keyword.
func (s *Service) buildURL(query string) string {
	params := url.Values{}
	params.Set("q", query)
	params.Set("hl", s.cfg.Language)
	params.Set("gl", s.cfg.Country)
	params.Set("ceid", s.cfg.Edition)
	return s.cfg.Endpoint + "?" + params.Encode()
}

// fetch performs one network read and converts the feed entries.
func (s *Service) fetch(ctx context.Context, sourceURL string, limit int) ([]domain.Article, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, sourceURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode())
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	parser := gofeed.NewParser()
	feed, err := parser.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, err
	}

	entries := feed.Items
	if limit < len(entries) {
		entries = entries[:limit]
	}

	articles := make([]domain.Article, 0, len(entries))
	for _, entry := range entries {
		articles = append(articles, s.convertEntry(entry))
	}

	return articles, nil
}

// convertEntry derives one sanitized Article from a feed entry.
func (s *Service) convertEntry(entry *gofeed.Item) domain.Article {
	published := ""
	if entry.PublishedParsed != nil {
		published = entry.PublishedParsed.Format(publishedLayout)
	} else if entry.Published != "" {
		// No structured publish time; reuse the raw text field. Logged so
		// upstream format changes don't go unnoticed.
		published = entry.Published
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Using raw published field, structured time missing", map[string]interface{}{
				"link":      entry.Link,
				"published": entry.Published,
			})
		}
	}

	summary := textutil.StripTags(entry.Description)
	summary = textutil.CollapseWhitespace(summary)
	summary = textutil.TruncateRunes(summary, summaryLimit, ellipsisMarker)
	if summary == "" {
		summary = noSummaryText
	} else {
		summary = html.EscapeString(summary)
	}

	return domain.Article{
		Title:     html.EscapeString(entry.Title),
		Link:      entry.Link,
		Published: published,
		Summary:   summary,
	}
}

// getCachedResult retrieves a search result from cache.
func (s *Service) getCachedResult(ctx context.Context, key string) (searchResult, bool) {
	var result searchResult

	if s.deps.Cache == nil {
		return result, false
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return result, false
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return result, false
	}

	return result, true
}

// cacheResult stores a search result, ignoring cache errors.
func (s *Service) cacheResult(ctx context.Context, key string, result searchResult) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}

	_ = s.deps.Cache.Set(ctx, key, data, s.cfg.CacheTTL)
}
