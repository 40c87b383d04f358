package web

import (
	"io"
	"net/http"

	"github.com/nguyenedu/truyen-fe/internal/model"
)

type profileContent struct {
	User *model.User
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Refresh from the backend so the page shows server truth; on
	// failure the persisted record still renders.
	s.store.FetchCurrentUser(ctx)

	s.render(w, r, "profile.html", "Thông tin cá nhân", profileContent{
		User: s.store.Current(ctx).User,
	})
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	// 8 MiB is plenty for an avatar.
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	user := s.store.Current(r.Context()).User
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	fields := map[string]string{}
	for _, name := range []string{"fullname", "email", "phone"} {
		if v := r.PostFormValue(name); v != "" {
			fields[name] = v
		}
	}

	var avatarName string
	var avatar io.Reader
	if file, header, err := r.FormFile("avatar"); err == nil {
		defer file.Close()
		avatarName = header.Filename
		avatar = file
	}

	result := s.store.UpdateProfile(r.Context(), user.ID, fields, avatarName, avatar)
	if !result.Success {
		s.toastError(r, nil, result.Message)
	} else {
		s.toastSuccess(r, "Đã lưu", "Cập nhật thông tin thành công")
	}

	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

type favoritesContent struct {
	Stories    []model.Story
	Pagination Pagination
}

func (s *Server) favorites(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r.URL.Query(), "page")

	favorites, err := s.api.Favorites(r.Context(), page, 10)
	if err != nil {
		s.failPage(w, r, err, "Không tải được danh sách yêu thích")
		return
	}

	s.render(w, r, "favorites.html", "Truyện yêu thích", favoritesContent{
		Stories:    favorites.Content,
		Pagination: paginate(page, 10, favorites.TotalElements, ""),
	})
}

type historyContent struct {
	Entries    []model.HistoryEntry
	Pagination Pagination
}

func (s *Server) history(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r.URL.Query(), "page")

	entries, err := s.api.ReadingHistory(r.Context(), page, 12)
	if err != nil {
		s.failPage(w, r, err, "Không tải được lịch sử đọc")
		return
	}

	s.render(w, r, "history.html", "Lịch sử đọc", historyContent{
		Entries:    entries.Content,
		Pagination: paginate(page, 12, entries.TotalElements, ""),
	})
}

func (s *Server) deleteStoryHistory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "storyID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := s.api.DeleteStoryHistory(r.Context(), id); err != nil {
		s.failAction(w, r, err, "Không xóa được lịch sử")
		return
	}

	s.toastSuccess(r, "Đã xóa", "Đã xóa truyện khỏi lịch sử")
	http.Redirect(w, r, "/history", http.StatusSeeOther)
}

func (s *Server) clearHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.api.ClearHistory(r.Context()); err != nil {
		s.failAction(w, r, err, "Không xóa được lịch sử")
		return
	}

	s.toastSuccess(r, "Đã xóa", "Đã xóa toàn bộ lịch sử đọc")
	http.Redirect(w, r, "/history", http.StatusSeeOther)
}
