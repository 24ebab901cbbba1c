// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package api

import "github.com/barb1424/SeaShadeFront/lib/money"

// TicketStatus is the lifecycle state of a ticket (comanda). The wire
// values are the backend's Portuguese enum names.
type TicketStatus string

const (
	TicketOpen      TicketStatus = "ABERTA"
	TicketInKitchen TicketStatus = "NA_COZINHA"
	TicketPreparing TicketStatus = "EM_PREPARO"
	TicketReady     TicketStatus = "PRONTO_PARA_ENTREGA"
	TicketClosed    TicketStatus = "FECHADA"
	TicketCancelled TicketStatus = "CANCELADA"
)

// ActiveTicketStatuses is the status set the board polls for.
var ActiveTicketStatuses = []TicketStatus{
	TicketOpen, TicketInKitchen, TicketPreparing, TicketReady,
}

// HistoryTicketStatuses is the status set the history view fetches.
var HistoryTicketStatuses = []TicketStatus{TicketClosed, TicketCancelled}

// Active reports whether a ticket in this status still appears on the
// board.
func (s TicketStatus) Active() bool {
	return s != TicketClosed && s != TicketCancelled
}

// ItemStatus is the lifecycle state of a single ticket item.
type ItemStatus string

const (
	ItemPending   ItemStatus = "PENDENTE"
	ItemInKitchen ItemStatus = "NA_COZINHA"
	ItemPreparing ItemStatus = "EM_PREPARO"
	ItemReady     ItemStatus = "PRONTO"
	ItemDelivered ItemStatus = "ENTREGUE"
)

// Slot is an umbrella slot (guarda-sol): the physical anchor a ticket
// is opened against.
type Slot struct {
	ID     int64  `json:"id"`
	Label  string `json:"identificacao"`
	Status string `json:"status"` // LIVRE or OCUPADO
	Active bool   `json:"ativo"`
}

// Free reports whether a new ticket can be opened on this slot.
func (s Slot) Free() bool { return s.Status == "LIVRE" }

// TicketItem is one ordered line on a ticket. The product name and
// unit price are denormalized onto the item at order time, so a later
// menu price change never rewrites an open ticket.
type TicketItem struct {
	ID          int64      `json:"id"`
	ProductName string     `json:"produtoNome"`
	UnitPrice   float64    `json:"precoUnitario"`
	Quantity    int        `json:"quantidade"`
	Notes       string     `json:"observacoes"`
	Status      ItemStatus `json:"status"`
}

// LineTotal is quantity times unit price, in centavos. Display only;
// never sent to the server.
func (i TicketItem) LineTotal() money.Centavos {
	return money.FromReais(i.UnitPrice).Mul(i.Quantity)
}

// Ticket is a comanda with its items.
type Ticket struct {
	ID       int64        `json:"id"`
	Number   int64        `json:"numeroComanda"`
	Status   TicketStatus `json:"status"`
	Slot     *Slot        `json:"guardaSol"`
	Items    []TicketItem `json:"itens"`
	OpenedAt Time         `json:"dataAbertura"`
	ClosedAt Time         `json:"dataFechamento"`
}

// Subtotal sums the line totals. Display only.
func (t Ticket) Subtotal() money.Centavos {
	var total money.Centavos
	for _, item := range t.Items {
		total += item.LineTotal()
	}
	return total
}

// SlotLabel returns the slot identification, or "?" when the slot
// reference is missing (slot deactivated after the ticket opened).
func (t Ticket) SlotLabel() string {
	if t.Slot == nil || t.Slot.Label == "" {
		return "?"
	}
	return t.Slot.Label
}

// AddItemRequest is the payload for adding an item to a ticket.
type AddItemRequest struct {
	ProductID int64  `json:"produtoId"`
	Quantity  int    `json:"quantidade"`
	Notes     string `json:"observacoes"`
}

// Product is a menu item.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco"`
	Category    string  `json:"categoria"`
	ImageURL    string  `json:"imagemUrl"`
	Active      bool    `json:"ativo"`
}

// PriceCentavos returns the menu price in centavos.
func (p Product) PriceCentavos() money.Centavos { return money.FromReais(p.Price) }

// NewProduct is the JSON part of the multipart product-creation
// request.
type NewProduct struct {
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco"`
	Category    string  `json:"categoria"`
}

// RecipeComponent links a product to a stock item it consumes.
type RecipeComponent struct {
	ID             int64   `json:"id"`
	IngredientName string  `json:"nomeIngrediente"`
	Unit           string  `json:"unidadeMedida"`
	QuantityUsed   float64 `json:"quantidadeUtilizada"`
}

// AddComponentRequest is the payload for adding a recipe component.
type AddComponentRequest struct {
	StockItemID  int64   `json:"itemEstoqueId"`
	QuantityUsed float64 `json:"quantidadeUtilizada"`
}

// StockItem is an inventory item with its current balance.
type StockItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"nome"`
	Quantity float64 `json:"quantidadeAtual"`
	Unit     string  `json:"unidadeMedida"`
	UnitCost float64 `json:"custoUnitario"`
	Active   bool    `json:"ativo"`
}

// StockItemRef is the abbreviated stock item embedded in movements.
type StockItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

// StockMovement is one entry in the inventory ledger.
type StockMovement struct {
	ID       int64        `json:"id"`
	Item     StockItemRef `json:"itemEstoque"`
	Type     string       `json:"tipoMovimento"` // ENTRADA or SAIDA
	Quantity float64      `json:"quantidade"`
	Reason   string       `json:"motivo"`
	Note     string       `json:"observacao"`
	At       Time         `json:"dataMovimento"`
}

// NewStockItemRequest creates a stock item together with its opening
// movement, so an item never exists without a ledger entry.
type NewStockItemRequest struct {
	Name     string  `json:"nome"`
	Unit     string  `json:"unidadeMedida"`
	Quantity float64 `json:"quantidade"`
	Reason   string  `json:"motivo"`
	Note     string  `json:"observacao"`
}

// MoveStockRequest records an inventory movement on an existing item.
type MoveStockRequest struct {
	StockItemID int64   `json:"itemEstoqueId"`
	Type        string  `json:"tipoMovimento"` // ENTRADA or SAIDA
	Quantity    float64 `json:"quantidade"`
	Reason      string  `json:"motivo"`
	Note        string  `json:"observacao"`
}

// Attendant is a staff member who logs in with a short code.
type Attendant struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Code  string `json:"codigo"`
}

// KPIs is the dashboard summary block.
type KPIs struct {
	AverageTicket float64 `json:"ticketMedio"`
	ActiveOrders  int     `json:"pedidosAtivos"`
	ClosedToday   int     `json:"pedidosFinalizadosHoje"`
	RevenueToday  float64 `json:"faturamentoHoje"`
}

// TopItem is one row of the best-sellers report.
type TopItem struct {
	Name     string `json:"nome"`
	Quantity int    `json:"qtd"`
}

// BottomItem is one row of the low-movers report.
type BottomItem struct {
	Name         string `json:"nome"`
	QuantitySold int    `json:"qtdVendida"`
}

// CriticalStockItem is one row of the low-inventory report.
type CriticalStockItem struct {
	Name     string  `json:"nome"`
	Quantity float64 `json:"quantidade"`
	Max      float64 `json:"max"`
}

// TeamMember is one row of the team-overview report.
type TeamMember struct {
	Name        string `json:"nome"`
	ServedToday int    `json:"totalAtendidos"`
}

// DailySales is one day of the daily-sales report.
type DailySales struct {
	Weekday  string `json:"diaSemana"`
	Quantity int    `json:"quantidade"`
}

// MonthlyRevenue is one month of the revenue report.
type MonthlyRevenue struct {
	Month   string  `json:"mes"`
	Revenue float64 `json:"faturamento"`
}

// MonthlyRevenueExpense is one month of the revenue-vs-expense report.
type MonthlyRevenueExpense struct {
	Month   string  `json:"mes"`
	Revenue float64 `json:"receita"`
	Expense float64 `json:"despesa"`
}

// MonthlySalesPurchases is one month of the sales-vs-purchases report.
type MonthlySalesPurchases struct {
	Month     string  `json:"mes"`
	Sales     float64 `json:"vendas"`
	Purchases float64 `json:"compras"`
}

// MonthlyOrders is one month of the order-count report.
type MonthlyOrders struct {
	Month    string `json:"mes"`
	Quantity int    `json:"quantidade"`
}

// LoginResponse is the owner login response.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"ExpiresIn"`
}

// Profile is the authenticated user's profile from /api/users/me.
type Profile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	KioskID int64  `json:"quiosqueId"`
}

// AttendantLoginResponse is the short-code login response. Unlike the
// owner flow, it carries the identity inline so no profile fetch is
// needed.
type AttendantLoginResponse struct {
	AccessToken string `json:"accessToken"`
	UserName    string `json:"userName"`
	UserRole    string `json:"userRole"`
	KioskID     int64  `json:"quiosqueId"`
}

// RegisterRequest creates a new owner account with its kiosk.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Kiosk    string `json:"quiosque"`
}
