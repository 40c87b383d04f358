package web

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/nguyenedu/truyen-fe/internal/model"
)

type storyContent struct {
	Story         model.Story
	Chapters      []model.Chapter
	Rating        model.RatingSummary
	RatingValues  []int
	MyRating      *model.Rating
	Favorited     bool
	FavoriteCount int64
	CommentCount  int64
	Comments      []model.Comment
	LastRead      *model.HistoryEntry
}

func (s *Server) story(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	story, err := s.api.Story(ctx, id)
	if err != nil {
		s.failPage(w, r, err, "Không tải được truyện")
		return
	}

	content := storyContent{
		Story:        story,
		RatingValues: []int{1, 2, 3, 4, 5},
	}

	if content.Chapters, err = s.api.ChaptersByStory(ctx, id); err != nil {
		s.log.Warn("failed to load chapters", zap.Int64("story", id), zap.Error(err))
	}
	if content.Rating, err = s.api.StoryRating(ctx, id); err != nil {
		s.log.Warn("failed to load rating summary", zap.Int64("story", id), zap.Error(err))
	}
	if content.CommentCount, err = s.api.StoryCommentCount(ctx, id); err != nil {
		s.log.Warn("failed to count comments", zap.Int64("story", id), zap.Error(err))
	}
	if comments, err := s.api.StoryComments(ctx, id, 0, 10); err != nil {
		s.log.Warn("failed to load comments", zap.Int64("story", id), zap.Error(err))
	} else {
		content.Comments = comments.Content
	}
	if count, err := s.api.FavoriteCount(ctx, id); err != nil {
		s.log.Warn("failed to count favorites", zap.Int64("story", id), zap.Error(err))
	} else {
		content.FavoriteCount = count
	}

	// Per-user extras only make sense with a session.
	if s.store.IsAuthenticated(ctx) {
		if favorited, err := s.api.CheckFavorite(ctx, id); err == nil {
			content.Favorited = favorited
		}
		if mine, err := s.api.MyRating(ctx, id); err == nil && mine.Rating > 0 {
			content.MyRating = &mine
		}
		if last, err := s.api.StoryHistory(ctx, id); err == nil && last.ChapterID > 0 {
			content.LastRead = &last
		}
	}

	s.render(w, r, "story.html", story.Title, content)
}

type chapterContent struct {
	Story    model.Story
	Chapter  model.Chapter
	Prev     *model.Chapter
	Next     *model.Chapter
	Comments []model.Comment
}

func (s *Server) chapter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	storyID, err := idParam(r, "storyID")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	chapterID, err := idParam(r, "chapterID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	chapter, err := s.api.Chapter(ctx, chapterID)
	if err != nil {
		s.failPage(w, r, err, "Không tải được chương")
		return
	}

	story, err := s.api.Story(ctx, storyID)
	if err != nil {
		s.failPage(w, r, err, "Không tải được truyện")
		return
	}

	content := chapterContent{
		Story:   story,
		Chapter: chapter,
	}

	if chapters, err := s.api.ChaptersByStory(ctx, storyID); err != nil {
		s.log.Warn("failed to load chapter list", zap.Int64("story", storyID), zap.Error(err))
	} else {
		for i := range chapters {
			if chapters[i].ID != chapterID {
				continue
			}
			if i > 0 {
				content.Prev = &chapters[i-1]
			}
			if i+1 < len(chapters) {
				content.Next = &chapters[i+1]
			}
			break
		}
	}

	if comments, err := s.api.ChapterComments(ctx, chapterID, 0, 10); err != nil {
		s.log.Warn("failed to load comments", zap.Int64("chapter", chapterID), zap.Error(err))
	} else {
		content.Comments = comments.Content
	}

	// Best-effort: reading progress should never block reading.
	if s.store.IsAuthenticated(ctx) {
		if err := s.api.SaveHistory(ctx, storyID, chapterID); err != nil {
			s.log.Warn("failed to save reading history", zap.Int64("story", storyID), zap.Error(err))
		}
	}

	s.render(w, r, "chapter.html", story.Title, content)
}
