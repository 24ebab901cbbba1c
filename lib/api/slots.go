// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListSlots returns the kiosk's umbrella slots.
func (c *Client) ListSlots(ctx context.Context, kioskID int64) ([]Slot, error) {
	var slots []Slot
	path := fmt.Sprintf("/api/quiosques/%d/guardasois", kioskID)
	if err := c.get(ctx, path, nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// CreateSlot adds an umbrella slot with the given identification
// label.
func (c *Client) CreateSlot(ctx context.Context, kioskID int64, label string) (*Slot, error) {
	path := fmt.Sprintf("/api/quiosques/%d/guardasois", kioskID)
	body, err := c.doRequest(ctx, http.MethodPost, path, map[string]string{
		"identificacao": label,
	}, nil)
	if err != nil {
		return nil, err
	}

	var created Slot
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("api: failed to parse created slot: %w", err)
	}

	c.logger.Info("created slot", "slot_id", created.ID, "label", created.Label)
	return &created, nil
}

// RenameSlot changes a slot's identification label.
func (c *Client) RenameSlot(ctx context.Context, kioskID, slotID int64, label string) (*Slot, error) {
	path := fmt.Sprintf("/api/quiosques/%d/guardasois/%d", kioskID, slotID)
	body, err := c.doRequest(ctx, http.MethodPut, path, map[string]string{
		"identificacao": label,
	}, nil)
	if err != nil {
		return nil, err
	}

	var updated Slot
	if err := json.Unmarshal(body, &updated); err != nil {
		return nil, fmt.Errorf("api: failed to parse renamed slot: %w", err)
	}
	return &updated, nil
}

// DeactivateSlot soft-deletes an umbrella slot.
func (c *Client) DeactivateSlot(ctx context.Context, kioskID, slotID int64) error {
	path := fmt.Sprintf("/api/quiosques/%d/guardasois/%d/desativar", kioskID, slotID)
	_, err := c.doRequest(ctx, http.MethodPatch, path, nil, nil)
	if err == nil {
		c.logger.Info("deactivated slot", "slot_id", slotID)
	}
	return err
}
