package api

import (
	"context"
	"fmt"
	"net/http"
)

// Predict runs the job-role prediction on the user's current profile.
// The model is an opaque backend service; the body is computed
// server-side from the stored education and skills.
func (c *Client) Predict(ctx context.Context, token string) ([]Prediction, error) {
	var resp struct {
		Predictions []Prediction `json:"predictions"`
	}
	if err := c.post(ctx, "/predictions/predict/", token, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.Predictions, nil
}

// PredictionHistory lists the user's saved prediction runs, newest
// first.
func (c *Client) PredictionHistory(ctx context.Context, token string) ([]PredictionRecord, error) {
	var records []PredictionRecord
	if err := c.get(ctx, "/predictions/history/", token, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeletePrediction removes a saved prediction run.
func (c *Client) DeletePrediction(ctx context.Context, token string, id int) error {
	path := fmt.Sprintf("/predictions/history/%d/", id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

// SendPredictionFeedback submits a rating and comment on a prediction.
func (c *Client) SendPredictionFeedback(ctx context.Context, token string, predictionID, rating int, comment string) error {
	body := map[string]interface{}{
		"prediction": predictionID,
		"rating":     rating,
		"comment":    comment,
	}
	return c.post(ctx, "/predictions/feedback/", token, body, nil)
}
