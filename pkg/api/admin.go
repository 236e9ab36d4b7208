package api

import (
	"context"
	"fmt"
	"net/http"
)

// Analytics fetches the backend-computed dashboard aggregates.
func (c *Client) Analytics(ctx context.Context, token string) (*AnalyticsReport, error) {
	var report AnalyticsReport
	if err := c.get(ctx, "/admin/analytics/", token, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Users lists all registered users.
func (c *Client) Users(ctx context.Context, token string) ([]AdminUser, error) {
	var users []AdminUser
	if err := c.get(ctx, "/admin/users/", token, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SetUserRole changes a user's role.
func (c *Client) SetUserRole(ctx context.Context, token string, userID int, role string) error {
	path := fmt.Sprintf("/admin/users/%d/role/", userID)
	return c.do(ctx, http.MethodPatch, path, token, map[string]string{"role": role}, nil)
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, token string, userID int) error {
	path := fmt.Sprintf("/admin/users/%d/", userID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

// FlagUser marks a user for moderation with a reason.
func (c *Client) FlagUser(ctx context.Context, token string, userID int, reason string) error {
	path := fmt.Sprintf("/admin/users/%d/flag/", userID)
	return c.post(ctx, path, token, map[string]string{"reason": reason}, nil)
}

// UnflagUser clears a user's moderation flag.
func (c *Client) UnflagUser(ctx context.Context, token string, userID int) error {
	path := fmt.Sprintf("/admin/users/%d/unflag/", userID)
	return c.post(ctx, path, token, struct{}{}, nil)
}

// SupportTickets lists all tickets for the admin console.
func (c *Client) SupportTickets(ctx context.Context, token string) ([]SupportTicket, error) {
	var tickets []SupportTicket
	if err := c.get(ctx, "/admin/support/", token, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// ReplyToTicket posts an admin reply on a ticket.
func (c *Client) ReplyToTicket(ctx context.Context, token string, ticketID int, reply string) error {
	path := fmt.Sprintf("/admin/support/%d/reply/", ticketID)
	return c.post(ctx, path, token, map[string]string{"reply": reply}, nil)
}

// SetTicketStatus updates a ticket's status ("open", "closed", ...).
func (c *Client) SetTicketStatus(ctx context.Context, token string, ticketID int, status string) error {
	body := map[string]interface{}{"id": ticketID, "status": status}
	return c.post(ctx, "/admin/support/status/", token, body, nil)
}

// PredictionLogs lists every prediction run across all users.
func (c *Client) PredictionLogs(ctx context.Context, token string) ([]PredictionLogEntry, error) {
	var logs []PredictionLogEntry
	if err := c.get(ctx, "/admin/predictions/", token, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// ActivityLogs lists admin actions (flags, role changes, retrains).
func (c *Client) ActivityLogs(ctx context.Context, token string) ([]ActivityLogEntry, error) {
	var logs []ActivityLogEntry
	if err := c.get(ctx, "/admin/logs/", token, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// PredictionFeedback lists user-submitted prediction feedback.
func (c *Client) PredictionFeedback(ctx context.Context, token string) ([]FeedbackEntry, error) {
	var entries []FeedbackEntry
	if err := c.get(ctx, "/admin/feedback/", token, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ModelStatus fetches the prediction model's training coverage.
func (c *Client) ModelStatus(ctx context.Context, token string) (*ModelStatus, error) {
	var status ModelStatus
	if err := c.get(ctx, "/admin/model/status/", token, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// RetrainModel asks the backend to retrain the prediction model.
func (c *Client) RetrainModel(ctx context.Context, token string) error {
	return c.post(ctx, "/admin/model/retrain/", token, struct{}{}, nil)
}
