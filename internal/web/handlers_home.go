package web

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/nguyenedu/truyen-fe/internal/backend"
	"github.com/nguyenedu/truyen-fe/internal/model"
)

type homeContent struct {
	Trending   []model.Story
	Latest     []model.Story
	Categories []model.Category
}

// home renders whatever sections load; a failed section is logged and
// shown empty rather than taking the whole page down.
func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	content := homeContent{}

	trending, err := s.api.TrendingStories(ctx, backend.TrendingWeekly, 12)
	if err != nil {
		s.log.Warn("failed to load trending stories", zap.Error(err))
	} else {
		content.Trending = trending
	}

	latest, err := s.api.LatestStories(ctx, 0, 12)
	if err != nil {
		s.log.Warn("failed to load latest stories", zap.Error(err))
	} else {
		content.Latest = latest.Content
	}

	categories, err := s.api.Categories(ctx, 0, 20)
	if err != nil {
		s.log.Warn("failed to load categories", zap.Error(err))
	} else {
		content.Categories = categories.Content
	}

	s.render(w, r, "home.html", "Trang chủ", content)
}
