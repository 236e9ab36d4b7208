package webui

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/edu2job/edu2job/pkg/api"
	"github.com/edu2job/edu2job/pkg/auth"
)

// SupportPageData contains data for the support page
type SupportPageData struct {
	PageData
	Tickets []api.SupportTicket
}

func (s *Server) handleSupport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := SupportPageData{PageData: s.pageData("Support", "support")}

	tickets, err := s.apiClient.MyTickets(ctx, s.token())
	if err != nil {
		if api.IsUnauthorized(err) {
			s.manager.Logout(ctx)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		s.logger.Error("Ticket fetch failed", "error", err)
		s.flashes.Notify(auth.SeverityError, "Could not load your tickets")
		data.Flashes = s.flashes.Drain()
	} else {
		data.Tickets = tickets
	}

	s.renderTemplate(w, s.templates.support, data)
}

func (s *Server) handleSupportCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	ticketType := r.PostFormValue("type")
	subject := strings.TrimSpace(r.PostFormValue("subject"))
	message := strings.TrimSpace(r.PostFormValue("message"))

	if subject == "" || message == "" {
		s.flashes.Notify(auth.SeverityError, "Subject and message are required")
		http.Redirect(w, r, "/support", http.StatusSeeOther)
		return
	}

	if _, err := s.apiClient.CreateTicket(r.Context(), s.token(), ticketType, subject, message); err != nil {
		s.logger.Error("Ticket create failed", "error", err)
		s.notifyAPIError(err, "Failed to submit your request")
	} else {
		s.flashes.Notify(auth.SeveritySuccess, "Support request submitted")
	}

	http.Redirect(w, r, "/support", http.StatusSeeOther)
}

func (s *Server) handleSupportDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if err := s.apiClient.DeleteTicket(r.Context(), s.token(), id); err != nil {
		s.logger.Error("Ticket delete failed", "error", err)
		s.notifyAPIError(err, "Failed to delete the ticket")
	} else {
		s.flashes.Notify(auth.SeveritySuccess, "Ticket deleted")
	}

	http.Redirect(w, r, "/support", http.StatusSeeOther)
}
