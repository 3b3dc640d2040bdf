package http

import "time"

// Line is one (product, quantity) pair of an order body or response.
type Line struct {
	ProductCode int `json:"productCode"`
	Quantity    int `json:"quantity"`
}

// NewOrder is the request body for registering a customer order.
type NewOrder struct {
	OrderNumber  int    `json:"orderNumber"`
	CustomerCode int    `json:"customerCode"`
	Lines        []Line `json:"lines"`
}

// Order is one pending customer order in list responses.
type Order struct {
	OrderNumber  int       `json:"orderNumber"`
	CustomerCode int       `json:"customerCode"`
	PlacedAt     time.Time `json:"placedAt"`
}

// PurchaseOrder is a planned purchase order returned by restock and
// shortfall endpoints.
type PurchaseOrder struct {
	OrderNumber int    `json:"orderNumber"`
	PlacedAt    string `json:"placedAt"`
	Lines       []Line `json:"lines"`
}

// PickListItem is one picking instruction: how much of which product to take
// from which grid cell.
type PickListItem struct {
	Row         int `json:"row"`
	Col         int `json:"col"`
	ProductCode int `json:"productCode"`
	Quantity    int `json:"quantity"`
}

// Cell is one grid coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// OrderCost is the priced total of one order.
type OrderCost struct {
	OrderNumber int    `json:"orderNumber"`
	Cost        string `json:"cost"`
}

// StockLevel is the on-hand total of one product.
type StockLevel struct {
	ProductCode int `json:"productCode"`
	Quantity    int `json:"quantity"`
}

// Part is one catalog entry.
type Part struct {
	PartCode        int    `json:"partCode"`
	PartType        string `json:"partType"`
	TypeDescription string `json:"typeDescription"`
	Manufacturer    string `json:"manufacturer"`
	Description     string `json:"description"`
	Price           string `json:"price"`
}

// Error is the JSON error payload of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
