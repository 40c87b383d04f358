package web

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/nguyenedu/truyen-fe/internal/model"
)

type authorContent struct {
	Author  model.Author
	Stories []model.Story
}

func (s *Server) author(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	author, err := s.api.Author(ctx, id)
	if err != nil {
		s.failPage(w, r, err, "Không tải được tác giả")
		return
	}

	content := authorContent{Author: author}
	if stories, err := s.api.StoriesByAuthor(ctx, id); err != nil {
		s.log.Warn("failed to load author stories", zap.Int64("author", id), zap.Error(err))
	} else {
		content.Stories = stories
	}

	s.render(w, r, "author.html", author.Name, content)
}
