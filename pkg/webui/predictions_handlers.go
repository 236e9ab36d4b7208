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

// PredictionsPageData contains data for the predictions page
type PredictionsPageData struct {
	PageData
	Latest  []api.Prediction
	History []api.PredictionRecord
}

func (s *Server) handlePredictions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := PredictionsPageData{PageData: s.pageData("Predictions", "predictions")}

	history, err := s.apiClient.PredictionHistory(ctx, s.token())
	if err != nil {
		if api.IsUnauthorized(err) {
			s.manager.Logout(ctx)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		s.logger.Error("Prediction history fetch failed", "error", err)
		s.flashes.Notify(auth.SeverityError, "Could not load prediction history")
		data.Flashes = s.flashes.Drain()
	} else {
		data.History = history
		if user := s.manager.User(); user != nil {
			s.cache.Put(ctx, cache.FeaturePredictions, user.Email, history)
		}
	}

	s.renderTemplate(w, s.templates.predictions, data)
}

// handlePredictionRun asks the backend for a fresh prediction from
// the user's current profile and shows the result above the history.
func (s *Server) handlePredictionRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	predictions, err := s.apiClient.Predict(ctx, s.token())
	if err != nil {
		s.logger.Error("Prediction failed", "error", err)
		// The backend explains missing prerequisites, like an empty skill list
		s.notifyAPIError(err, "Prediction failed. Please try again.")
		http.Redirect(w, r, "/predictions", http.StatusSeeOther)
		return
	}

	data := PredictionsPageData{
		PageData: s.pageData("Predictions", "predictions"),
		Latest:   predictions,
	}

	if history, err := s.apiClient.PredictionHistory(ctx, s.token()); err == nil {
		data.History = history
	}

	s.invalidateSnapshots(r)
	s.renderTemplate(w, s.templates.predictions, data)
}

func (s *Server) handlePredictionDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if err := s.apiClient.DeletePrediction(r.Context(), s.token(), id); err != nil {
		s.logger.Error("Prediction delete failed", "error", err)
		s.notifyAPIError(err, "Failed to delete prediction")
	} else {
		s.flashes.Notify(auth.SeveritySuccess, "Prediction deleted")
		s.invalidateSnapshots(r)
	}

	http.Redirect(w, r, "/predictions", http.StatusSeeOther)
}

func (s *Server) handlePredictionFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	rating, err := strconv.Atoi(r.PostFormValue("rating"))
	if err != nil || rating < 1 || rating > 5 {
		s.flashes.Notify(auth.SeverityError, "Rating must be between 1 and 5")
		http.Redirect(w, r, "/predictions", http.StatusSeeOther)
		return
	}
	comment := strings.TrimSpace(r.PostFormValue("comment"))

	if err := s.apiClient.SendPredictionFeedback(r.Context(), s.token(), id, rating, comment); err != nil {
		s.logger.Error("Feedback submit failed", "error", err)
		s.notifyAPIError(err, "Failed to submit feedback")
	} else {
		s.flashes.Notify(auth.SeveritySuccess, "Thanks for your feedback")
	}

	http.Redirect(w, r, "/predictions", http.StatusSeeOther)
}
