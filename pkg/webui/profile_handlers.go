package webui

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/edu2job/edu2job/pkg/api"
	"github.com/edu2job/edu2job/pkg/auth"
	"github.com/edu2job/edu2job/pkg/cache"
)

// ProfilePageData contains data for the profile page
type ProfilePageData struct {
	PageData
	Profile api.ProfileResponse
	Skills  string // comma-separated for the edit form
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := s.manager.User()

	data := ProfilePageData{PageData: s.pageData("Profile", "profile")}

	profile, err := s.apiClient.Profile(ctx, s.token())
	if err != nil {
		if api.IsUnauthorized(err) {
			s.manager.Logout(ctx)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		s.logger.Error("Profile fetch failed", "error", err)
		s.flashes.Notify(auth.SeverityError, "Could not load your profile")
		data.Flashes = s.flashes.Drain()
		s.renderTemplate(w, s.templates.profile, data)
		return
	}

	data.Profile = *profile
	if profile.User != nil {
		data.Skills = strings.Join(profile.User.Skills, ", ")
		if user != nil {
			s.cache.Put(ctx, cache.FeatureProfile, user.Email, profile)
		}
	}

	s.renderTemplate(w, s.templates.profile, data)
}

func (s *Server) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	update := api.ProfileUpdate{
		Skills: splitSkills(r.PostFormValue("skills")),
	}

	degree := strings.TrimSpace(r.PostFormValue("degree"))
	if degree != "" {
		cgpa, _ := strconv.ParseFloat(r.PostFormValue("cgpa"), 64)
		year, _ := strconv.Atoi(r.PostFormValue("year_of_completion"))
		update.Education = &api.Education{
			Degree:           degree,
			Specialization:   strings.TrimSpace(r.PostFormValue("specialization")),
			University:       strings.TrimSpace(r.PostFormValue("university")),
			CGPA:             cgpa,
			YearOfCompletion: year,
		}
	}

	ctx := r.Context()
	if _, err := s.apiClient.UpdateProfile(ctx, s.token(), update); err != nil {
		s.logger.Error("Profile update failed", "error", err)
		s.notifyAPIError(err, "Failed to update profile")
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	s.flashes.Notify(auth.SeveritySuccess, "Profile updated")
	s.invalidateSnapshots(r)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (s *Server) handleCertificationAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	cert := api.Certification{
		Name:         strings.TrimSpace(r.PostFormValue("cert_name")),
		Organization: strings.TrimSpace(r.PostFormValue("issuing_organization")),
		IssueDate:    strings.TrimSpace(r.PostFormValue("issue_date")),
	}
	if cert.Name == "" {
		s.flashes.Notify(auth.SeverityError, "Certification name is required")
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	if _, err := s.apiClient.AddCertification(r.Context(), s.token(), cert); err != nil {
		s.logger.Error("Certification add failed", "error", err)
		s.notifyAPIError(err, "Failed to add certification")
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	s.flashes.Notify(auth.SeveritySuccess, "Certification added")
	s.invalidateSnapshots(r)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (s *Server) handleCertificationDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if err := s.apiClient.DeleteCertification(r.Context(), s.token(), id); err != nil {
		s.logger.Error("Certification delete failed", "error", err)
		s.notifyAPIError(err, "Failed to delete certification")
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	s.flashes.Notify(auth.SeveritySuccess, "Certification removed")
	s.invalidateSnapshots(r)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// notifyAPIError surfaces the backend's detail message when there is
// one, falling back to a generic toast.
func (s *Server) notifyAPIError(err error, fallback string) {
	if detail := api.ErrorDetail(err); detail != "" {
		s.flashes.Notify(auth.SeverityError, detail)
		return
	}
	s.flashes.Notify(auth.SeverityError, fallback)
}

// invalidateSnapshots drops the cached profile and dashboard views
// after a write so the next visit refetches.
func (s *Server) invalidateSnapshots(r *http.Request) {
	user := s.manager.User()
	if user == nil {
		return
	}
	s.cache.Invalidate(r.Context(), cache.FeatureProfile, user.Email)
	s.cache.Invalidate(r.Context(), cache.FeatureDashboard, user.Email)
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}
