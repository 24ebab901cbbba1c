// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// KPIs returns the dashboard summary: average ticket, active orders,
// tickets closed today, and today's revenue.
func (c *Client) KPIs(ctx context.Context, kioskID int64) (*KPIs, error) {
	var kpis KPIs
	if err := c.getReport(ctx, kioskID, "kpis", nil, &kpis); err != nil {
		return nil, err
	}
	return &kpis, nil
}

// TopItems returns the best-selling products.
func (c *Client) TopItems(ctx context.Context, kioskID int64) ([]TopItem, error) {
	var items []TopItem
	if err := c.getReport(ctx, kioskID, "top-itens", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// BottomItems returns the products with the least movement.
func (c *Client) BottomItems(ctx context.Context, kioskID int64) ([]BottomItem, error) {
	var items []BottomItem
	if err := c.getReport(ctx, kioskID, "bottom-itens", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CriticalStock returns inventory items running low.
func (c *Client) CriticalStock(ctx context.Context, kioskID int64) ([]CriticalStockItem, error) {
	var items []CriticalStockItem
	if err := c.getReport(ctx, kioskID, "estoque-critico", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// TeamOverview returns per-attendant service counts for today.
func (c *Client) TeamOverview(ctx context.Context, kioskID int64) ([]TeamMember, error) {
	var members []TeamMember
	if err := c.getReport(ctx, kioskID, "visao-equipe", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// DailySales returns sales counts for the trailing days window.
func (c *Client) DailySales(ctx context.Context, kioskID int64, days int) ([]DailySales, error) {
	query := url.Values{"dias": []string{strconv.Itoa(days)}}
	var rows []DailySales
	if err := c.getReport(ctx, kioskID, "vendas-diarias", query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthlyRevenue returns revenue per month for a year.
func (c *Client) MonthlyRevenue(ctx context.Context, kioskID int64, year int) ([]MonthlyRevenue, error) {
	var rows []MonthlyRevenue
	if err := c.getReport(ctx, kioskID, "faturamento-mensal", yearQuery(year), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthlyRevenueExpense returns revenue vs expense per month for a
// year.
func (c *Client) MonthlyRevenueExpense(ctx context.Context, kioskID int64, year int) ([]MonthlyRevenueExpense, error) {
	var rows []MonthlyRevenueExpense
	if err := c.getReport(ctx, kioskID, "receita-despesa-mensal", yearQuery(year), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthlySalesPurchases returns sales vs purchases per month for a
// year.
func (c *Client) MonthlySalesPurchases(ctx context.Context, kioskID int64, year int) ([]MonthlySalesPurchases, error) {
	var rows []MonthlySalesPurchases
	if err := c.getReport(ctx, kioskID, "vendas-compras-mensal", yearQuery(year), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthlyOrdersByAttendant returns per-attendant order counts per
// month. Row keys beyond "mes" are attendant names, so rows decode as
// loose maps.
func (c *Client) MonthlyOrdersByAttendant(ctx context.Context, kioskID int64, year int) ([]map[string]any, error) {
	var rows []map[string]any
	if err := c.getReport(ctx, kioskID, "pedidos-por-atendente-mensal", yearQuery(year), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthlyOrders returns order counts per month for a year.
func (c *Client) MonthlyOrders(ctx context.Context, kioskID int64, year int) ([]MonthlyOrders, error) {
	var rows []MonthlyOrders
	if err := c.getReport(ctx, kioskID, "pedidos-mensais", yearQuery(year), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) getReport(ctx context.Context, kioskID int64, report string, query url.Values, out any) error {
	path := fmt.Sprintf("/api/quiosques/%d/relatorios/%s", kioskID, report)
	return c.get(ctx, path, query, out)
}

func yearQuery(year int) url.Values {
	return url.Values{"ano": []string{strconv.Itoa(year)}}
}
