package web

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/nguyenedu/truyen-fe/internal/backend"
	"github.com/nguyenedu/truyen-fe/internal/model"
)

type sortOption struct {
	Label string
	Value string
}

var sortOptions = []sortOption{
	{"Mới nhất", "createdAt,desc"},
	{"Cũ nhất", "createdAt,asc"},
	{"Hot nhất (lượt xem)", "totalViews,desc"},
	{"Nhiều chương nhất", "totalChapters,desc"},
	{"Ít chương nhất", "totalChapters,asc"},
	{"A-Z", "title,asc"},
	{"Z-A", "title,desc"},
}

// filterFromQuery maps the browse form onto the backend filter. Empty
// and zero fields stay unset so they are omitted from the request. The
// sort default matches the first option the form renders, so the first
// submit does not reorder the page.
func filterFromQuery(q url.Values) backend.StoryFilter {
	sort := q.Get("sort")
	if sort == "" {
		sort = sortOptions[0].Value
	}

	f := backend.StoryFilter{
		Keyword:     q.Get("keyword"),
		Status:      q.Get("status"),
		StartDate:   q.Get("startDate"),
		EndDate:     q.Get("endDate"),
		Sort:        sort,
		Page:        queryInt(q, "page"),
		Size:        24,
		MinChapters: queryInt(q, "minChapters"),
		MaxChapters: queryInt(q, "maxChapters"),
	}
	for _, raw := range q["categoryIds"] {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			f.CategoryIDs = append(f.CategoryIDs, id)
		}
	}
	return f
}

type browseContent struct {
	Stories     []model.Story
	Filter      backend.StoryFilter
	SortOptions []sortOption
	Categories  []model.Category
	Pagination  Pagination
}

func (s *Server) browse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := filterFromQuery(r.URL.Query())

	page, err := s.api.FilterStories(ctx, filter)
	if err != nil {
		s.failPage(w, r, err, "Không tải được danh sách truyện")
		return
	}

	content := browseContent{
		Stories:     page.Content,
		Filter:      filter,
		SortOptions: sortOptions,
		Pagination:  paginate(filter.Page, filter.Size, page.TotalElements, pagerPrefix(r.URL.Query())),
	}

	if categories, err := s.api.Categories(ctx, 0, 50); err != nil {
		s.log.Warn("failed to load categories", zap.Error(err))
	} else {
		content.Categories = categories.Content
	}

	s.render(w, r, "browse.html", "Duyệt truyện", content)
}

type searchContent struct {
	Keyword    string
	Results    []model.Story
	Pagination Pagination
	Trending   []string
	Popular    []string
	History    []string
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	keyword := r.URL.Query().Get("keyword")
	content := searchContent{Keyword: keyword}

	if keyword == "" {
		if trending, err := s.api.TrendingSearches(ctx, 10); err == nil {
			content.Trending = trending
		}
		if popular, err := s.api.PopularSearches(ctx, 10); err == nil {
			content.Popular = popular
		}
		if s.store.IsAuthenticated(ctx) {
			if history, err := s.api.SearchHistory(ctx, 20); err == nil {
				content.History = history
			}
		}
		s.render(w, r, "search.html", "Tìm kiếm", content)
		return
	}

	page := queryInt(r.URL.Query(), "page")
	results, err := s.api.SearchStories(ctx, keyword, page, 24)
	if err != nil {
		s.failPage(w, r, err, "Tìm kiếm thất bại")
		return
	}

	content.Results = results.Content
	content.Pagination = paginate(page, 24, results.TotalElements, pagerPrefix(r.URL.Query()))
	s.render(w, r, "search.html", "Tìm kiếm", content)
}

// suggest backs the search box auto-complete with a small JSON payload.
func (s *Server) suggest(w http.ResponseWriter, r *http.Request) {
	terms, err := s.api.Suggest(r.Context(), r.URL.Query().Get("q"), 5)
	if err != nil {
		terms = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(terms)
}

type categoryContent struct {
	Category   model.Category
	Stories    []model.Story
	Pagination Pagination
}

func (s *Server) category(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	category, err := s.api.Category(ctx, id)
	if err != nil {
		s.failPage(w, r, err, "Không tải được thể loại")
		return
	}

	page := queryInt(r.URL.Query(), "page")
	stories, err := s.api.StoriesByCategory(ctx, id, page, 12)
	if err != nil {
		s.failPage(w, r, err, "Không tải được danh sách truyện")
		return
	}

	s.render(w, r, "category.html", category.Name, categoryContent{
		Category:   category,
		Stories:    stories.Content,
		Pagination: paginate(page, 12, stories.TotalElements, ""),
	})
}

// pagerPrefix rebuilds the current query without the page parameter so
// pager links can append their own.
func pagerPrefix(q url.Values) string {
	rest := url.Values{}
	for k, vs := range q {
		if k == "page" {
			continue
		}
		for _, v := range vs {
			rest.Add(k, v)
		}
	}
	if len(rest) == 0 {
		return ""
	}
	return rest.Encode() + "&"
}
