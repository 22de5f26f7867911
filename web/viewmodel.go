// ABOUTME: View model construction for the dashboard page
// ABOUTME: Pure functions that turn articles into the rendered page structure

package web

import (
	"html/template"
	"strconv"
	"time"

	"github.com/hiroy72-cloud/ai-news-dashboard/core/domain"
)

const (
	defaultQuery = "Artificial Intelligence"
	defaultLimit = 15
	minLimit     = 5
	maxLimit     = 30
	limitStep    = 5
)

// quickTags are the predefined keyword shortcuts shown in the sidebar.
var quickTags = []string{"ChatGPT", "生成AI", "LLM", "機械学習", "ロボティクス", "自動運転"}

// cardView is one rendered news card. Title and Summary were escaped when
// the Article was built, so they are emitted as trusted fragments to avoid
// escaping them twice.
type cardView struct {
	Title     template.HTML
	Link      string
	Published string
	Summary   template.HTML
}

// dashboardView is the full page model.
type dashboardView struct {
	Query        string
	Limit        int
	LimitOptions []int
	QuickTags    []string
	Count        int
	GeneratedAt  string
	UpdatedAt    string
	LeftColumn   []cardView
	RightColumn  []cardView
	Empty        bool
}

// buildDashboardView assembles the page model. Cards alternate columns by
// index: even indexes go left, odd indexes go right.
func buildDashboardView(query string, limit int, articles []domain.Article, now time.Time) dashboardView {
	view := dashboardView{
		Query:        query,
		Limit:        limit,
		LimitOptions: limitOptions(),
		QuickTags:    quickTags,
		Count:        len(articles),
		GeneratedAt:  now.Format("2006/01/02 15:04"),
		UpdatedAt:    now.Format("15:04:05"),
		Empty:        len(articles) == 0,
	}

	for i, article := range articles {
		card := cardView{
			Title:     template.HTML(article.Title),
			Link:      article.Link,
			Published: article.Published,
			Summary:   template.HTML(article.Summary),
		}
		if i%2 == 0 {
			view.LeftColumn = append(view.LeftColumn, card)
		} else {
			view.RightColumn = append(view.RightColumn, card)
		}
	}

	return view
}

// limitOptions returns the selectable result counts (5 to 30 in steps of 5).
func limitOptions() []int {
	options := make([]int, 0, (maxLimit-minLimit)/limitStep+1)
	for n := minLimit; n <= maxLimit; n += limitStep {
		options = append(options, n)
	}
	return options
}

// clampLimit snaps a requested result count down to a step of 5 and bounds
// it to the selectable range. Unparseable input yields the default.
func clampLimit(raw string) int {
	n := defaultLimit
	if raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			n = parsed
		}
	}

	n -= n % limitStep
	if n < minLimit {
		n = minLimit
	}
	if n > maxLimit {
		n = maxLimit
	}
	return n
}
