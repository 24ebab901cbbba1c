// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListTickets returns the kiosk's tickets in the given statuses, in
// server order.
func (c *Client) ListTickets(ctx context.Context, kioskID int64, statuses []TicketStatus) ([]Ticket, error) {
	query := url.Values{}
	query.Set("quiosqueId", strconv.FormatInt(kioskID, 10))
	for _, status := range statuses {
		query.Add("status", string(status))
	}

	var tickets []Ticket
	if err := c.get(ctx, "/api/comandas", query, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// GetTicket returns one ticket with its items.
func (c *Client) GetTicket(ctx context.Context, ticketID int64) (*Ticket, error) {
	var ticket Ticket
	path := fmt.Sprintf("/api/comandas/%d", ticketID)
	if err := c.get(ctx, path, nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// CreateTicket opens a new ticket on an umbrella slot. The server
// rejects occupied slots.
func (c *Client) CreateTicket(ctx context.Context, slotID int64) (*Ticket, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/api/comandas", map[string]int64{
		"guardaSolId": slotID,
	}, nil)
	if err != nil {
		return nil, err
	}

	var ticket Ticket
	if err := json.Unmarshal(body, &ticket); err != nil {
		return nil, fmt.Errorf("api: failed to parse created ticket: %w", err)
	}

	c.logger.Info("opened ticket", "ticket_id", ticket.ID, "slot_id", slotID)
	return &ticket, nil
}

// AddTicketItem orders a product onto a ticket. Callers re-fetch the
// ticket afterwards; the response body is not a full ticket.
func (c *Client) AddTicketItem(ctx context.Context, ticketID int64, item AddItemRequest) error {
	path := fmt.Sprintf("/api/comandas/%d/itens", ticketID)
	_, err := c.doRequest(ctx, http.MethodPost, path, item, nil)
	return err
}

// SendToKitchen moves an open ticket's pending items to the kitchen.
// Returns the updated ticket.
func (c *Client) SendToKitchen(ctx context.Context, ticketID int64) (*Ticket, error) {
	return c.patchTicket(ctx, ticketID, "enviar-cozinha")
}

// FinalizeTicket closes a ticket.
func (c *Client) FinalizeTicket(ctx context.Context, ticketID int64) error {
	path := fmt.Sprintf("/api/comandas/%d/finalizar", ticketID)
	_, err := c.doRequest(ctx, http.MethodPatch, path, nil, nil)
	if err == nil {
		c.logger.Info("finalized ticket", "ticket_id", ticketID)
	}
	return err
}

// CancelTicket cancels a ticket.
func (c *Client) CancelTicket(ctx context.Context, ticketID int64) error {
	path := fmt.Sprintf("/api/comandas/%d/cancelar", ticketID)
	_, err := c.doRequest(ctx, http.MethodPatch, path, nil, nil)
	if err == nil {
		c.logger.Info("cancelled ticket", "ticket_id", ticketID)
	}
	return err
}

// MarkItemDelivered marks one ready item as delivered. Item ids are
// global, not ticket-scoped.
func (c *Client) MarkItemDelivered(ctx context.Context, itemID int64) error {
	path := fmt.Sprintf("/api/comandas/itens/%d/marcar-entregue", itemID)
	_, err := c.doRequest(ctx, http.MethodPatch, path, nil, nil)
	return err
}

func (c *Client) patchTicket(ctx context.Context, ticketID int64, action string) (*Ticket, error) {
	path := fmt.Sprintf("/api/comandas/%d/%s", ticketID, action)
	body, err := c.doRequest(ctx, http.MethodPatch, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var ticket Ticket
	if err := json.Unmarshal(body, &ticket); err != nil {
		return nil, fmt.Errorf("api: failed to parse ticket from %s: %w", path, err)
	}
	return &ticket, nil
}
