package webui

import "net/http"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) handleStylesCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(stylesCSS))
}

// handleLanding serves the marketing page. Authenticated users go
// straight to their dashboard.
func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	if s.manager.IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := struct {
		PageData
	}{PageData: s.pageData("Find your path", "")}
	s.renderTemplate(w, s.templates.landing, data)
}
