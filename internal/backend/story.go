package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/nguyenedu/truyen-fe/internal/model"
)

// Trending window types accepted by /api/trending.
const (
	TrendingDaily  = "DAILY"
	TrendingWeekly = "WEEKLY"
)

func (c *Client) Stories(ctx context.Context, page, size int) (Page[model.Story], error) {
	if size <= 0 {
		size = 10
	}
	return get[Page[model.Story]](ctx, c, "/api/stories", pageQuery(page, size))
}

func (c *Client) Story(ctx context.Context, id int64) (model.Story, error) {
	return get[model.Story](ctx, c, fmt.Sprintf("/api/stories/%d", id), nil)
}

func (c *Client) SearchStories(ctx context.Context, keyword string, page, size int) (Page[model.Story], error) {
	if size <= 0 {
		size = 10
	}
	q := pageQuery(page, size)
	q.Set("keyword", keyword)
	return get[Page[model.Story]](ctx, c, "/api/stories/search", q)
}

func (c *Client) StoriesByCategory(ctx context.Context, categoryID int64, page, size int) (Page[model.Story], error) {
	if size <= 0 {
		size = 10
	}
	return get[Page[model.Story]](ctx, c, fmt.Sprintf("/api/stories/category/%d", categoryID), pageQuery(page, size))
}

// TrendingStories returns the hottest stories over the given window.
func (c *Client) TrendingStories(ctx context.Context, trendType string, limit int) ([]model.Story, error) {
	if trendType == "" {
		trendType = TrendingWeekly
	}
	if limit <= 0 {
		limit = 12
	}
	q := url.Values{}
	q.Set("type", trendType)
	q.Set("limit", strconv.Itoa(limit))
	return get[[]model.Story](ctx, c, "/api/trending", q)
}

func (c *Client) LatestStories(ctx context.Context, page, size int) (Page[model.Story], error) {
	if size <= 0 {
		size = 12
	}
	return get[Page[model.Story]](ctx, c, "/api/stories/latest", pageQuery(page, size))
}

// StoryFilter is the advanced browse query. Zero-valued optional fields
// are left out of the request entirely.
type StoryFilter struct {
	Keyword     string
	AuthorID    int64
	Status      string
	CategoryIDs []int64
	MinChapters int
	MaxChapters int
	StartDate   string
	EndDate     string
	Page        int
	Size        int
	Sort        string
}

// Query assembles the filter's query parameters. Defaults match what the
// browse views rely on for ordering: page=0, size=12, sort=id,desc.
func (f StoryFilter) Query() url.Values {
	size := f.Size
	if size <= 0 {
		size = 12
	}
	sort := f.Sort
	if sort == "" {
		sort = "id,desc"
	}

	q := pageQuery(f.Page, size)
	q.Set("sort", sort)

	if f.Keyword != "" {
		q.Set("keyword", f.Keyword)
	}
	if f.AuthorID > 0 {
		q.Set("authorId", strconv.FormatInt(f.AuthorID, 10))
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	for _, id := range f.CategoryIDs {
		q.Add("categoryIds", strconv.FormatInt(id, 10))
	}
	if f.MinChapters > 0 {
		q.Set("minChapters", strconv.Itoa(f.MinChapters))
	}
	if f.MaxChapters > 0 {
		q.Set("maxChapters", strconv.Itoa(f.MaxChapters))
	}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}

	return q
}

func (c *Client) FilterStories(ctx context.Context, f StoryFilter) (Page[model.Story], error) {
	return get[Page[model.Story]](ctx, c, "/api/stories/filter", f.Query())
}
