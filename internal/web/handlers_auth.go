package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/nguyenedu/truyen-fe/internal/backend"
)

type loginContent struct {
	Redirect string
}

type resetContent struct {
	Token string
}

// sanitizeRedirect keeps post-login redirects on this site.
func sanitizeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	return target
}

func (s *Server) loginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "login.html", "Đăng nhập", loginContent{
		Redirect: sanitizeRedirect(r.URL.Query().Get("redirect")),
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	redirect := sanitizeRedirect(r.PostForm.Get("redirect"))
	result := s.store.Login(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
	if !result.Success {
		s.toastError(r, nil, result.Message)
		http.Redirect(w, r, "/login?redirect="+url.QueryEscape(redirect), http.StatusSeeOther)
		return
	}

	s.toastSuccess(r, "Xin chào", "Đăng nhập thành công")
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

func (s *Server) registerForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "register.html", "Đăng ký", nil)
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result := s.store.Register(r.Context(), backend.RegisterInput{
		Username: r.PostForm.Get("username"),
		Email:    r.PostForm.Get("email"),
		FullName: r.PostForm.Get("fullname"),
		Password: r.PostForm.Get("password"),
	})
	if !result.Success {
		s.toastError(r, nil, result.Message)
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	// Registration is not auto-login.
	s.toastSuccess(r, "Thành công", "Đăng ký thành công, hãy đăng nhập")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.store.Logout(r.Context())
	s.toastSuccess(r, "Tạm biệt", "Đã đăng xuất")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) forgotPasswordForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "forgot_password.html", "Quên mật khẩu", nil)
}

func (s *Server) forgotPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result := s.store.ForgotPassword(r.Context(), r.PostForm.Get("email"))
	if !result.Success {
		s.toastError(r, nil, result.Message)
		http.Redirect(w, r, "/forgot-password", http.StatusSeeOther)
		return
	}

	s.toastSuccess(r, "Đã gửi", "Kiểm tra email của bạn để đặt lại mật khẩu")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) resetPasswordForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "reset_password.html", "Đặt lại mật khẩu", resetContent{
		Token: r.URL.Query().Get("token"),
	})
}

func (s *Server) resetPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result := s.store.ResetPassword(r.Context(), r.PostForm.Get("token"), r.PostForm.Get("password"))
	if !result.Success {
		s.toastError(r, nil, result.Message)
		http.Redirect(w, r, "/reset-password?token="+r.PostForm.Get("token"), http.StatusSeeOther)
		return
	}

	s.toastSuccess(r, "Thành công", "Mật khẩu đã được đặt lại")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
