package backend

import (
	"context"
	"net/url"
	"strconv"
)

// Suggest returns auto-complete candidates for a partial query.
func (c *Client) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 5
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	return get[[]string](ctx, c, "/api/search/suggest", q)
}

func (c *Client) TrendingSearches(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	return get[[]string](ctx, c, "/api/search/trending", q)
}

func (c *Client) PopularSearches(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("withScores", "false")
	return get[[]string](ctx, c, "/api/search/popular", q)
}

// ScoredSearch is a popular search term with its score attached.
type ScoredSearch struct {
	Query string  `json:"query"`
	Score float64 `json:"score"`
}

func (c *Client) PopularSearchesWithScores(ctx context.Context, limit int) ([]ScoredSearch, error) {
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("withScores", "true")
	return get[[]ScoredSearch](ctx, c, "/api/search/popular", q)
}

func (c *Client) SearchHistory(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 20
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	return get[[]string](ctx, c, "/api/search/history", q)
}
