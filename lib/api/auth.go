// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Login authenticates an owner with email and password. The returned
// token must be combined with a Me call to resolve the kiosk before a
// session is usable.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("api: email is required for login")
	}
	if password == "" {
		return nil, fmt.Errorf("api: password is required for login")
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	if err != nil {
		return nil, err
	}

	var response LoginResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("api: failed to parse login response: %w", err)
	}

	c.logger.Info("logged in", "email", email)
	return &response, nil
}

// AttendantLogin authenticates a staff member with their short code.
func (c *Client) AttendantLogin(ctx context.Context, code string) (*AttendantLoginResponse, error) {
	if code == "" {
		return nil, fmt.Errorf("api: code is required for attendant login")
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/api/atendentes/login", map[string]string{
		"codigo": code,
	}, nil)
	if err != nil {
		return nil, err
	}

	var response AttendantLoginResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("api: failed to parse attendant login response: %w", err)
	}

	c.logger.Info("logged in by code", "user_name", response.UserName)
	return &response, nil
}

// Me returns the authenticated user's profile, including the kiosk id
// that scopes every business endpoint.
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.get(ctx, "/api/users/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Register creates a new owner account with its kiosk. Registration is
// unauthenticated; the caller logs in afterwards.
func (c *Client) Register(ctx context.Context, request RegisterRequest) error {
	if request.Name == "" || request.Email == "" || request.Password == "" || request.Kiosk == "" {
		return fmt.Errorf("api: name, email, password, and kiosk are all required for registration")
	}

	_, err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", request, nil)
	if err != nil {
		return err
	}

	c.logger.Info("registered account", "email", request.Email, "kiosk", request.Kiosk)
	return nil
}
