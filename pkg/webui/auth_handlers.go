package webui

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/edu2job/edu2job/pkg/auth"
)

const oauthStateCookie = "oauth_state"

// LoginPageData contains data for the login page
type LoginPageData struct {
	PageData
	Email string
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	data := LoginPageData{PageData: s.pageData("Sign in", "")}
	s.renderTemplate(w, s.templates.login, data)
}

func (s *Server) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	rememberMe := r.PostFormValue("remember_me") != ""

	if email == "" || password == "" {
		s.flashes.Notify(auth.SeverityError, "Email and password are required")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if s.manager.Login(r.Context(), email, password, rememberMe) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	// The manager has already queued the failure toast
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// RegisterPageData contains data for the register page
type RegisterPageData struct {
	PageData
	Name  string
	Email string
}

func (s *Server) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	data := RegisterPageData{PageData: s.pageData("Create an account", "")}
	s.renderTemplate(w, s.templates.register, data)
}

func (s *Server) handleRegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm_password")

	if email == "" || password == "" {
		s.flashes.Notify(auth.SeverityError, "Email and password are required")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}
	if password != confirm {
		s.flashes.Notify(auth.SeverityError, "Passwords do not match")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	if s.manager.Register(r.Context(), name, email, password) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/register", http.StatusSeeOther)
}

func (s *Server) handleGoogleStart(w http.ResponseWriter, r *http.Request) {
	if s.google == nil {
		s.flashes.Notify(auth.SeverityError, "Google login is not configured")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// State for CSRF protection, verified in the callback
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, s.google.AuthCodeURL(state), http.StatusFound)
}

func (s *Server) handleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	if s.google == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value == "" || r.URL.Query().Get("state") != stateCookie.Value {
		s.logger.Warn("OAuth2 state mismatch")
		s.flashes.Notify(auth.SeverityError, "Google login failed. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// Clear the state cookie, it is single use
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	code := r.URL.Query().Get("code")
	if code == "" {
		s.flashes.Notify(auth.SeverityError, "Google login failed. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	accessToken, err := s.google.ExchangeCode(r.Context(), code)
	if err != nil {
		s.logger.Error("OAuth2 code exchange failed", "error", err)
		s.flashes.Notify(auth.SeverityError, "Google login failed. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if _, err := s.manager.LoginWithGoogle(r.Context(), accessToken); err != nil {
		// The manager has already queued the failure toast
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if user := s.manager.User(); user != nil {
		s.cache.InvalidateUser(r.Context(), user.Email)
	}
	s.manager.Logout(r.Context())
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
