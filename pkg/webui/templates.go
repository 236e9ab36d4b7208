package webui

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/edu2job/edu2job/pkg/session"
)

// PageData contains common data for all pages
type PageData struct {
	Title         string
	User          *session.User
	Flashes       []Flash
	GoogleEnabled bool
	Active        string // nav highlight: dashboard, profile, predictions, support, admin
}

// Templates holds all parsed templates
type Templates struct {
	landing     *template.Template
	login       *template.Template
	register    *template.Template
	dashboard   *template.Template
	profile     *template.Template
	predictions *template.Template
	support     *template.Template
	adminHome   *template.Template
	adminUsers  *template.Template
	adminBoard  *template.Template
	adminLogs   *template.Template
	adminModel  *template.Template
	forbidden   *template.Template
	notFound    *template.Template
	server      *template.Template
}

// newTemplates creates and parses all templates
func newTemplates() (*Templates, error) {
	parse := func(name, text string) (*template.Template, error) {
		return template.New(name).Funcs(templateFuncs).Parse(pageShell + navPartial + flashPartial + text)
	}

	t := &Templates{}
	var err error

	if t.landing, err = parse("landing", landingTemplate); err != nil {
		return nil, err
	}
	if t.login, err = parse("login", loginTemplate); err != nil {
		return nil, err
	}
	if t.register, err = parse("register", registerTemplate); err != nil {
		return nil, err
	}
	if t.dashboard, err = parse("dashboard", dashboardTemplate); err != nil {
		return nil, err
	}
	if t.profile, err = parse("profile", profileTemplate); err != nil {
		return nil, err
	}
	if t.predictions, err = parse("predictions", predictionsTemplate); err != nil {
		return nil, err
	}
	if t.support, err = parse("support", supportTemplate); err != nil {
		return nil, err
	}
	if t.adminHome, err = parse("adminHome", adminHomeTemplate); err != nil {
		return nil, err
	}
	if t.adminUsers, err = parse("adminUsers", adminUsersTemplate); err != nil {
		return nil, err
	}
	if t.adminBoard, err = parse("adminBoard", adminTicketsTemplate); err != nil {
		return nil, err
	}
	if t.adminLogs, err = parse("adminLogs", adminLogsTemplate); err != nil {
		return nil, err
	}
	if t.adminModel, err = parse("adminModel", adminModelTemplate); err != nil {
		return nil, err
	}
	if t.forbidden, err = parse("forbidden", forbiddenTemplate); err != nil {
		return nil, err
	}
	if t.notFound, err = parse("notFound", notFoundTemplate); err != nil {
		return nil, err
	}
	if t.server, err = parse("server", serverErrorTemplate); err != nil {
		return nil, err
	}

	return t, nil
}

// percent clamps a 0..100 score to a whole percentage for bars.
var templateFuncs = template.FuncMap{
	"percent": func(f float64) int {
		if f < 0 {
			return 0
		}
		if f > 100 {
			return 100
		}
		return int(f + 0.5)
	},
}

// renderTemplate renders a template to the response writer
func (s *Server) renderTemplate(w http.ResponseWriter, tmpl *template.Template, data interface{}) {
	s.renderTemplateStatus(w, tmpl, data, http.StatusOK)
}

// renderTemplateStatus renders a template with a specific status code
func (s *Server) renderTemplateStatus(w http.ResponseWriter, tmpl *template.Template, data interface{}, statusCode int) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		s.logger.Error("Failed to render template", "template", tmpl.Name(), "error", err)
		if tmpl != s.templates.server {
			s.renderServerError(w)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Debug("Failed to write response", "error", err)
	}
}

// pageData builds common page data, draining queued flashes.
func (s *Server) pageData(title, active string) PageData {
	return PageData{
		Title:         title,
		User:          s.manager.User(),
		Flashes:       s.flashes.Drain(),
		GoogleEnabled: s.google != nil,
		Active:        active,
	}
}

func (s *Server) renderForbidden(w http.ResponseWriter) {
	data := struct {
		PageData
	}{PageData: s.pageData("Forbidden", "")}
	s.renderTemplateStatus(w, s.templates.forbidden, data, http.StatusForbidden)
}

func (s *Server) renderNotFound(w http.ResponseWriter) {
	data := struct {
		PageData
	}{PageData: s.pageData("Not Found", "")}
	s.renderTemplateStatus(w, s.templates.notFound, data, http.StatusNotFound)
}

func (s *Server) renderServerError(w http.ResponseWriter) {
	data := struct {
		PageData
	}{PageData: s.pageData("Something went wrong", "")}
	s.renderTemplateStatus(w, s.templates.server, data, http.StatusInternalServerError)
}
