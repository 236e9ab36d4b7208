package webui

import (
	"net/http"

	"github.com/edu2job/edu2job/pkg/cache"
)

// roleScore is one predicted role with its confidence, for display.
type roleScore struct {
	Role       string  `json:"role"`
	Confidence float64 `json:"confidence"`
}

// dashboardSnapshot is the cached dashboard payload. It is rebuilt
// from the backend on every visit and falls back to the cache when
// the backend is unreachable.
type dashboardSnapshot struct {
	Skills       []string    `json:"skills"`
	HasEducation bool        `json:"has_education"`
	Degree       string      `json:"degree"`
	University   string      `json:"university"`
	CertCount    int         `json:"cert_count"`
	TotalRuns    int         `json:"total_runs"`
	LatestRoles  []roleScore `json:"latest_roles"`
	LatestAt     string      `json:"latest_at"`
}

// DashboardPageData contains data for the dashboard page
type DashboardPageData struct {
	PageData
	Snapshot dashboardSnapshot
	Stale    bool // true when showing cached data because the backend was unreachable
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Pick up role and flag changes made since the last visit
	s.manager.RefreshUserData(ctx)

	user := s.manager.User()
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	data := DashboardPageData{PageData: s.pageData("Dashboard", "dashboard")}

	snapshot, err := s.buildDashboardSnapshot(r)
	if err != nil {
		s.logger.Debug("Dashboard fetch failed, trying cache", "error", err)
		var cached dashboardSnapshot
		if s.cache.Get(ctx, cache.FeatureDashboard, user.Email, &cached) {
			data.Snapshot = cached
			data.Stale = true
		}
	} else {
		data.Snapshot = *snapshot
		s.cache.Put(ctx, cache.FeatureDashboard, user.Email, snapshot)
	}

	s.renderTemplate(w, s.templates.dashboard, data)
}

func (s *Server) buildDashboardSnapshot(r *http.Request) (*dashboardSnapshot, error) {
	ctx := r.Context()
	token := s.token()

	profile, err := s.apiClient.Profile(ctx, token)
	if err != nil {
		return nil, err
	}

	snapshot := &dashboardSnapshot{
		CertCount: len(profile.Certifications),
	}
	if profile.User != nil {
		snapshot.Skills = profile.User.Skills
	}
	if profile.Education != nil {
		snapshot.HasEducation = true
		snapshot.Degree = profile.Education.Degree
		snapshot.University = profile.Education.University
	}

	// History failures leave the profile half of the snapshot intact
	history, err := s.apiClient.PredictionHistory(ctx, token)
	if err != nil {
		s.logger.Debug("Prediction history fetch failed", "error", err)
		return snapshot, nil
	}

	snapshot.TotalRuns = len(history)
	if len(history) > 0 {
		latest := history[0]
		snapshot.LatestAt = latest.Timestamp
		for i, role := range latest.PredictedRoles {
			score := roleScore{Role: role}
			if i < len(latest.ConfidenceScores) {
				score.Confidence = latest.ConfidenceScores[i]
			}
			snapshot.LatestRoles = append(snapshot.LatestRoles, score)
		}
	}

	return snapshot, nil
}
