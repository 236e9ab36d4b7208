package webui

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/edu2job/edu2job/pkg/api"
	"github.com/edu2job/edu2job/pkg/auth"
)

// AdminHomePageData contains data for the admin analytics page
type AdminHomePageData struct {
	PageData
	Report api.AnalyticsReport
}

func (s *Server) handleAdminHome(w http.ResponseWriter, r *http.Request) {
	data := AdminHomePageData{PageData: s.pageData("Admin", "admin")}

	report, err := s.apiClient.Analytics(r.Context(), s.token())
	if err != nil {
		s.logger.Error("Analytics fetch failed", "error", err)
		s.flashes.Notify(auth.SeverityError, "Could not load analytics")
		data.Flashes = s.flashes.Drain()
	} else {
		data.Report = *report
	}

	s.renderTemplate(w, s.templates.adminHome, data)
}

// AdminUsersPageData contains data for the admin user list
type AdminUsersPageData struct {
	PageData
	Users []api.AdminUser
}

func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	data := AdminUsersPageData{PageData: s.pageData("Users", "admin")}

	users, err := s.apiClient.Users(r.Context(), s.token())
	if err != nil {
		s.logger.Error("User list fetch failed", "error", err)
		s.flashes.Notify(auth.SeverityError, "Could not load users")
		data.Flashes = s.flashes.Drain()
	} else {
		data.Users = users
	}

	s.renderTemplate(w, s.templates.adminUsers, data)
}

func (s *Server) handleAdminSetRole(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	role := r.PostFormValue("role")
	if role != "admin" && role != "student" {
		s.flashes.Notify(auth.SeverityError, "Unknown role")
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	if err := s.apiClient.SetUserRole(r.Context(), s.token(), id, role); err != nil {
		s.logger.Error("Role change failed", "user_id", id, "error", err)
		s.notifyAPIError(err, "Failed to change role")
	} else {
		s.flashes.Notify(auth.SeveritySuccess, "Role updated")
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (s *Server) handleAdminFlag(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	reason := strings.TrimSpace(r.PostFormValue("reason"))
	if reason == "" {
		s.flashes.Notify(auth.SeverityError, "A reason is required to flag a user")
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	if err := s.apiClient.FlagUser(r.Context(), s.token(), id, reason); err != nil {
		s.logger.Error("Flag failed", "user_id", id, "error", err)
		s.notifyAPIError(err, "Failed to flag user")
	} else {
		s.flashes.Notify(auth.SeveritySuccess, "User flagged")
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (s *Server) handleAdminUnflag(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if err := s.apiClient.UnflagUser(r.Context(), s.token(), id); err != nil {
		s.logger.Error("Unflag failed", "user_id", id, "error", err)
		s.notifyAPIError(err, "Failed to unflag user")
	} else {
		s.flashes.Notify(auth.SeveritySuccess, "User unflagged")
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (s *Server) handleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if err := s.apiClient.DeleteUser(r.Context(), s.token(), id); err != nil {
		s.logger.Error("User delete failed", "user_id", id, "error", err)
		s.notifyAPIError(err, "Failed to delete user")
	} else {
		s.flashes.Notify(auth.SeveritySuccess, "User deleted")
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// AdminTicketsPageData contains data for the admin support board
type AdminTicketsPageData struct {
	PageData
	Tickets []api.SupportTicket
}

func (s *Server) handleAdminTickets(w http.ResponseWriter, r *http.Request) {
	data := AdminTicketsPageData{PageData: s.pageData("Support board", "admin")}

	tickets, err := s.apiClient.SupportTickets(r.Context(), s.token())
	if err != nil {
		s.logger.Error("Ticket board fetch failed", "error", err)
		s.flashes.Notify(auth.SeverityError, "Could not load tickets")
		data.Flashes = s.flashes.Drain()
	} else {
		data.Tickets = tickets
	}

	s.renderTemplate(w, s.templates.adminBoard, data)
}

func (s *Server) handleAdminTicketReply(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	reply := strings.TrimSpace(r.PostFormValue("reply"))
	if reply == "" {
		s.flashes.Notify(auth.SeverityError, "Reply cannot be empty")
		http.Redirect(w, r, "/admin/tickets", http.StatusSeeOther)
		return
	}

	if err := s.apiClient.ReplyToTicket(r.Context(), s.token(), id, reply); err != nil {
		s.logger.Error("Ticket reply failed", "ticket_id", id, "error", err)
		s.notifyAPIError(err, "Failed to send reply")
	} else {
		s.flashes.Notify(auth.SeveritySuccess, "Reply sent")
	}

	http.Redirect(w, r, "/admin/tickets", http.StatusSeeOther)
}

func (s *Server) handleAdminTicketStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	status := r.PostFormValue("status")
	switch status {
	case "open", "in_progress", "resolved":
	default:
		s.flashes.Notify(auth.SeverityError, "Unknown ticket status")
		http.Redirect(w, r, "/admin/tickets", http.StatusSeeOther)
		return
	}

	if err := s.apiClient.SetTicketStatus(r.Context(), s.token(), id, status); err != nil {
		s.logger.Error("Ticket status change failed", "ticket_id", id, "error", err)
		s.notifyAPIError(err, "Failed to update ticket status")
	} else {
		s.flashes.Notify(auth.SeveritySuccess, "Ticket updated")
	}

	http.Redirect(w, r, "/admin/tickets", http.StatusSeeOther)
}

// AdminLogsPageData contains data for the admin logs page
type AdminLogsPageData struct {
	PageData
	Predictions []api.PredictionLogEntry
	Activity    []api.ActivityLogEntry
	Feedback    []api.FeedbackEntry
}

func (s *Server) handleAdminLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := AdminLogsPageData{PageData: s.pageData("Logs", "admin")}

	var failed bool
	if logs, err := s.apiClient.PredictionLogs(ctx, s.token()); err != nil {
		s.logger.Error("Prediction log fetch failed", "error", err)
		failed = true
	} else {
		data.Predictions = logs
	}
	if logs, err := s.apiClient.ActivityLogs(ctx, s.token()); err != nil {
		s.logger.Error("Activity log fetch failed", "error", err)
		failed = true
	} else {
		data.Activity = logs
	}
	if feedback, err := s.apiClient.PredictionFeedback(ctx, s.token()); err != nil {
		s.logger.Error("Feedback fetch failed", "error", err)
		failed = true
	} else {
		data.Feedback = feedback
	}

	if failed {
		s.flashes.Notify(auth.SeverityError, "Some logs could not be loaded")
		data.Flashes = s.flashes.Drain()
	}

	s.renderTemplate(w, s.templates.adminLogs, data)
}

// AdminModelPageData contains data for the model status page
type AdminModelPageData struct {
	PageData
	Status api.ModelStatus
}

func (s *Server) handleAdminModel(w http.ResponseWriter, r *http.Request) {
	data := AdminModelPageData{PageData: s.pageData("Model", "admin")}

	status, err := s.apiClient.ModelStatus(r.Context(), s.token())
	if err != nil {
		s.logger.Error("Model status fetch failed", "error", err)
		s.flashes.Notify(auth.SeverityError, "Could not load model status")
		data.Flashes = s.flashes.Drain()
	} else {
		data.Status = *status
	}

	s.renderTemplate(w, s.templates.adminModel, data)
}

func (s *Server) handleAdminRetrain(w http.ResponseWriter, r *http.Request) {
	if err := s.apiClient.RetrainModel(r.Context(), s.token()); err != nil {
		s.logger.Error("Retrain failed", "error", err)
		s.notifyAPIError(err, "Failed to start retraining")
	} else {
		s.flashes.Notify(auth.SeveritySuccess, "Model retraining started")
	}

	http.Redirect(w, r, "/admin/model", http.StatusSeeOther)
}
