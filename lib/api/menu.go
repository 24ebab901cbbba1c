// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListProducts returns the kiosk's menu.
func (c *Client) ListProducts(ctx context.Context, kioskID int64) ([]Product, error) {
	var products []Product
	path := fmt.Sprintf("/api/quiosques/%d/produtos", kioskID)
	if err := c.get(ctx, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct adds a menu item. imagePath, when non-empty, names a
// local image file uploaded alongside the product JSON in the same
// multipart request.
func (c *Client) CreateProduct(ctx context.Context, kioskID int64, product NewProduct, imagePath string) (*Product, error) {
	path := fmt.Sprintf("/api/quiosques/%d/produtos", kioskID)
	body, err := c.doMultipart(ctx, http.MethodPost, path, "produto", product, "imagem", imagePath)
	if err != nil {
		return nil, err
	}

	var created Product
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("api: failed to parse created product: %w", err)
	}

	c.logger.Info("created product", "product_id", created.ID, "name", created.Name)
	return &created, nil
}

// DeactivateProduct soft-deletes a menu item. Existing ticket items
// keep their denormalized name and price.
func (c *Client) DeactivateProduct(ctx context.Context, productID int64) error {
	path := fmt.Sprintf("/api/produtos/%d/desativar", productID)
	_, err := c.doRequest(ctx, http.MethodPatch, path, nil, nil)
	if err == nil {
		c.logger.Info("deactivated product", "product_id", productID)
	}
	return err
}

// ListRecipeComponents returns the stock items a product consumes.
func (c *Client) ListRecipeComponents(ctx context.Context, productID int64) ([]RecipeComponent, error) {
	var components []RecipeComponent
	path := fmt.Sprintf("/api/produtos/%d/componentes", productID)
	if err := c.get(ctx, path, nil, &components); err != nil {
		return nil, err
	}
	return components, nil
}

// AddRecipeComponent links a stock item to a product's recipe.
func (c *Client) AddRecipeComponent(ctx context.Context, productID int64, component AddComponentRequest) error {
	path := fmt.Sprintf("/api/produtos/%d/componentes", productID)
	_, err := c.doRequest(ctx, http.MethodPost, path, component, nil)
	return err
}

// RemoveRecipeComponent unlinks a recipe component. Component ids are
// global, not product-scoped.
func (c *Client) RemoveRecipeComponent(ctx context.Context, componentID int64) error {
	path := fmt.Sprintf("/api/produtos/componentes/%d", componentID)
	_, err := c.doRequest(ctx, http.MethodDelete, path, nil, nil)
	return err
}
