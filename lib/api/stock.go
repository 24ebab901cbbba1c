// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListStock returns the kiosk's inventory items.
func (c *Client) ListStock(ctx context.Context, kioskID int64) ([]StockItem, error) {
	var items []StockItem
	path := fmt.Sprintf("/api/quiosques/%d/estoque", kioskID)
	if err := c.get(ctx, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListActiveStockItems returns the active inventory items, the set a
// recipe component may reference.
func (c *Client) ListActiveStockItems(ctx context.Context, kioskID int64) ([]StockItem, error) {
	var items []StockItem
	path := fmt.Sprintf("/api/quiosques/%d/itens-estoque", kioskID)
	if err := c.get(ctx, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// StockHistory returns the kiosk's movement ledger.
func (c *Client) StockHistory(ctx context.Context, kioskID int64) ([]StockMovement, error) {
	var movements []StockMovement
	path := fmt.Sprintf("/api/quiosques/%d/estoque/historico", kioskID)
	if err := c.get(ctx, path, nil, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

// CreateStockItem creates an inventory item together with its opening
// movement.
func (c *Client) CreateStockItem(ctx context.Context, kioskID int64, request NewStockItemRequest) error {
	path := fmt.Sprintf("/api/quiosques/%d/estoque/novo-com-movimento", kioskID)
	_, err := c.doRequest(ctx, http.MethodPost, path, request, nil)
	if err == nil {
		c.logger.Info("created stock item", "name", request.Name)
	}
	return err
}

// MoveStock records an inventory movement. The server enforces balance
// rules; the client sends whatever the user asked for.
func (c *Client) MoveStock(ctx context.Context, kioskID int64, request MoveStockRequest) error {
	path := fmt.Sprintf("/api/quiosques/%d/estoque/movimentacoes", kioskID)
	_, err := c.doRequest(ctx, http.MethodPost, path, request, nil)
	if err == nil {
		c.logger.Info("recorded stock movement",
			"stock_item_id", request.StockItemID,
			"type", request.Type,
			"quantity", request.Quantity,
		)
	}
	return err
}

// DeactivateStockItem soft-deletes an inventory item. Its ledger
// history is preserved.
func (c *Client) DeactivateStockItem(ctx context.Context, kioskID, itemID int64) error {
	path := fmt.Sprintf("/api/quiosques/%d/estoque/%d/desativar", kioskID, itemID)
	_, err := c.doRequest(ctx, http.MethodPatch, path, nil, nil)
	if err == nil {
		c.logger.Info("deactivated stock item", "stock_item_id", itemID)
	}
	return err
}
