// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListAttendants returns the kiosk's staff.
func (c *Client) ListAttendants(ctx context.Context, kioskID int64) ([]Attendant, error) {
	var attendants []Attendant
	path := fmt.Sprintf("/api/quiosques/%d/atendentes", kioskID)
	if err := c.get(ctx, path, nil, &attendants); err != nil {
		return nil, err
	}
	return attendants, nil
}

// CreateAttendant registers a staff member. The server generates the
// login code and includes it in the response.
func (c *Client) CreateAttendant(ctx context.Context, kioskID int64, name, email string) (*Attendant, error) {
	path := fmt.Sprintf("/api/quiosques/%d/atendentes", kioskID)
	body, err := c.doRequest(ctx, http.MethodPost, path, map[string]string{
		"nome":  name,
		"email": email,
	}, nil)
	if err != nil {
		return nil, err
	}

	var created Attendant
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("api: failed to parse created attendant: %w", err)
	}

	c.logger.Info("created attendant", "attendant_id", created.ID, "name", created.Name)
	return &created, nil
}

// RemoveAttendant deletes a staff member. Attendant ids are global,
// not kiosk-scoped.
func (c *Client) RemoveAttendant(ctx context.Context, attendantID int64) error {
	path := fmt.Sprintf("/api/atendentes/%d", attendantID)
	_, err := c.doRequest(ctx, http.MethodDelete, path, nil, nil)
	if err == nil {
		c.logger.Info("removed attendant", "attendant_id", attendantID)
	}
	return err
}
