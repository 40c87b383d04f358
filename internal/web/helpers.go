package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nguyenedu/truyen-fe/internal/backend"
	"github.com/nguyenedu/truyen-fe/internal/model"
	tmpl "github.com/nguyenedu/truyen-fe/internal/template"
)

const msgDefault = "Có lỗi xảy ra, vui lòng thử lại sau"

func (s *Server) render(w http.ResponseWriter, r *http.Request, name, title string, content any) {
	ctx := r.Context()
	data := &tmpl.Data{
		PageTitle: title,
		Session:   s.store.Current(ctx),
		Theme:     s.sessions.Theme(ctx),
		Toasts:    s.sessions.PopToasts(ctx),
		Content:   content,
	}

	if err := s.renderer.Render(w, name, data); err != nil {
		s.log.Error("render failed", zap.String("template", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// failPage handles a backend error while building a full page: expired
// sessions go back through login with the intended path preserved,
// everything else becomes a toast on the home page.
func (s *Server) failPage(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if errors.Is(err, backend.ErrUnauthorized) {
		http.Redirect(w, r, "/login?redirect="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
		return
	}

	s.log.Error("backend request failed", zap.String("path", r.URL.Path), zap.Error(err))
	s.toastError(r, err, fallback)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// failAction handles a backend error in a form action: toast and return
// to where the user came from. Expired sessions go back through login
// with the referring page preserved, like failPage.
func (s *Server) failAction(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if errors.Is(err, backend.ErrUnauthorized) {
		target := "/login"
		if ref, refErr := url.Parse(r.Referer()); refErr == nil && ref.Path != "" {
			target += "?redirect=" + url.QueryEscape(ref.RequestURI())
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	s.log.Warn("action failed", zap.String("path", r.URL.Path), zap.Error(err))
	s.toastError(r, err, fallback)
	s.redirectBack(w, r)
}

func (s *Server) toastError(r *http.Request, err error, fallback string) {
	s.sessions.Flash(r.Context(), model.Toast{
		Severity: "error",
		Summary:  "Lỗi",
		Detail:   backend.Message(err, fallback),
	})
}

func (s *Server) toastSuccess(r *http.Request, summary, detail string) {
	s.sessions.Flash(r.Context(), model.Toast{Severity: "success", Summary: summary, Detail: detail})
}

func (s *Server) redirectBack(w http.ResponseWriter, r *http.Request) {
	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func queryInt(q url.Values, name string) int {
	n, _ := strconv.Atoi(q.Get(name))
	if n < 0 {
		return 0
	}
	return n
}

// Pagination is the view-side pagination state shared by the list pages.
type Pagination struct {
	Page        int
	Size        int
	Total       int64
	TotalPages  int
	QueryPrefix string
}

func paginate(page, size int, total int64, queryPrefix string) Pagination {
	pages := int((total + int64(size) - 1) / int64(size))
	return Pagination{
		Page:        page,
		Size:        size,
		Total:       total,
		TotalPages:  pages,
		QueryPrefix: queryPrefix,
	}
}

func (p Pagination) HasPrev() bool { return p.Page > 0 }
func (p Pagination) HasNext() bool { return p.Page+1 < p.TotalPages }
func (p Pagination) PrevPage() int { return p.Page - 1 }
func (p Pagination) NextPage() int { return p.Page + 1 }
