package web

import (
	"fmt"
	"net/http"
	"strconv"
)

// toggleFavorite flips the favorite state of a story for the current
// user and sends them back to where they were.
func (s *Server) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	favorited, err := s.api.CheckFavorite(ctx, id)
	if err != nil {
		s.failAction(w, r, err, "Có lỗi xảy ra khi cập nhật yêu thích")
		return
	}

	if favorited {
		err = s.api.RemoveFavorite(ctx, id)
	} else {
		err = s.api.AddFavorite(ctx, id)
	}
	if err != nil {
		s.failAction(w, r, err, "Có lỗi xảy ra khi cập nhật yêu thích")
		return
	}

	if favorited {
		s.toastSuccess(r, "Đã xóa", "Đã xóa khỏi danh sách yêu thích")
	} else {
		s.toastSuccess(r, "Đã thêm", "Đã thêm vào danh sách yêu thích")
	}
	s.redirectBack(w, r)
}

func (s *Server) rateStory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	rating, err := strconv.Atoi(r.PostForm.Get("rating"))
	if err != nil || rating < 1 || rating > 5 {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	review := r.PostForm.Get("review")

	if r.PostForm.Get("existing") == "1" {
		_, err = s.api.UpdateRating(ctx, id, rating, review)
	} else {
		_, err = s.api.RateStory(ctx, id, rating, review)
	}
	if err != nil {
		s.failAction(w, r, err, "Không gửi được đánh giá")
		return
	}

	s.toastSuccess(r, "Cảm ơn", "Đã ghi nhận đánh giá của bạn")
	http.Redirect(w, r, fmt.Sprintf("/story/%d", id), http.StatusSeeOther)
}

func (s *Server) deleteRating(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := s.api.DeleteRating(r.Context(), id); err != nil {
		s.failAction(w, r, err, "Không xóa được đánh giá")
		return
	}

	s.toastSuccess(r, "Đã xóa", "Đã xóa đánh giá của bạn")
	http.Redirect(w, r, fmt.Sprintf("/story/%d", id), http.StatusSeeOther)
}

func (s *Server) createComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	storyID, err := strconv.ParseInt(r.PostForm.Get("story_id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var chapterID *int64
	if raw := r.PostForm.Get("chapter_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			chapterID = &id
		}
	}

	content := r.PostForm.Get("content")
	if content == "" {
		s.redirectBack(w, r)
		return
	}

	if _, err := s.api.CreateComment(ctx, storyID, chapterID, content); err != nil {
		s.failAction(w, r, err, "Không gửi được bình luận")
		return
	}

	s.toastSuccess(r, "Đã gửi", "Bình luận của bạn đã được đăng")
	s.redirectBack(w, r)
}

func (s *Server) updateComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	content := r.PostForm.Get("content")
	if content == "" {
		s.redirectBack(w, r)
		return
	}

	if _, err := s.api.UpdateComment(r.Context(), id, content); err != nil {
		s.failAction(w, r, err, "Không sửa được bình luận")
		return
	}

	s.toastSuccess(r, "Đã lưu", "Bình luận đã được cập nhật")
	s.redirectBack(w, r)
}

func (s *Server) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := s.api.DeleteComment(r.Context(), id); err != nil {
		s.failAction(w, r, err, "Không xóa được bình luận")
		return
	}

	s.toastSuccess(r, "Đã xóa", "Đã xóa bình luận")
	s.redirectBack(w, r)
}

func (s *Server) toggleTheme(w http.ResponseWriter, r *http.Request) {
	s.sessions.ToggleTheme(r.Context())
	s.redirectBack(w, r)
}
