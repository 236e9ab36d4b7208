package api

import (
	"context"
	"fmt"
	"net/http"
)

// Profile fetches the authenticated user's profile, education, and
// certifications.
func (c *Client) Profile(ctx context.Context, token string) (*ProfileResponse, error) {
	var resp ProfileResponse
	if err := c.get(ctx, "/profile/", token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile updates education details and/or the skills list.
func (c *Client) UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (*ProfileResponse, error) {
	var resp ProfileResponse
	if err := c.do(ctx, http.MethodPut, "/profile/", token, update, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddCertification adds a certification to the profile.
func (c *Client) AddCertification(ctx context.Context, token string, cert Certification) (*Certification, error) {
	var resp Certification
	if err := c.post(ctx, "/profile/certifications/", token, cert, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteCertification removes a certification by id.
func (c *Client) DeleteCertification(ctx context.Context, token string, id int) error {
	path := fmt.Sprintf("/profile/certifications/%d/", id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
