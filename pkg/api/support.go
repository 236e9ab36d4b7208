package api

import (
	"context"
	"fmt"
	"net/http"
)

// CreateTicket opens a support ticket.
func (c *Client) CreateTicket(ctx context.Context, token, ticketType, subject, message string) (*SupportTicket, error) {
	body := map[string]string{
		"type":    ticketType,
		"subject": subject,
		"message": message,
	}

	var resp SupportTicket
	if err := c.post(ctx, "/support/tickets/", token, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MyTickets lists the user's own support tickets.
func (c *Client) MyTickets(ctx context.Context, token string) ([]SupportTicket, error) {
	var tickets []SupportTicket
	if err := c.get(ctx, "/support/my-tickets/", token, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// DeleteTicket removes one of the user's tickets.
func (c *Client) DeleteTicket(ctx context.Context, token string, id int) error {
	path := fmt.Sprintf("/support/tickets/%d/delete/", id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
