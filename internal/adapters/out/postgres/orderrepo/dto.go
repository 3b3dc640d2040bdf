// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. All three order kinds share one header table with a kind
// discriminator plus a common line-item table; the kind keeps order numbers
// unique across customer orders, purchase orders and deliveries.
package orderrepo

import (
	"time"

	"warehouse/internal/core/domain/model/stock"
)

// Order kind discriminators stored in the orders table.
const (
	kindCustomer = "customer"
	kindPurchase = "purchase"
	kindDelivery = "delivery"
)

// OrderDTO represents an order header in the database.
// CustomerCode is zero for purchase orders and deliveries. For deliveries the
// fulfilled column means "placed into the grid".
type OrderDTO struct {
	OrderNumber  int    `gorm:"primaryKey;column:order_number"`
	Kind         string `gorm:"index"`
	CustomerCode int
	PlacedAt     time.Time
	Fulfilled    bool
}

// TableName specifies the database table name for order headers.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line in the database.
type OrderItemDTO struct {
	OrderNumber int `gorm:"primaryKey;column:order_number"`
	ProductCode int `gorm:"primaryKey;column:product_code"`
	Quantity    int
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// itemsFromLines converts an order's line collection to its database rows.
func itemsFromLines(orderNumber int, lines *stock.BatchList) []OrderItemDTO {
	batches := lines.Batches()

	items := make([]OrderItemDTO, 0, len(batches))
	for _, batch := range batches {
		items = append(items, OrderItemDTO{
			OrderNumber: orderNumber,
			ProductCode: batch.ProductCode(),
			Quantity:    batch.Quantity(),
		})
	}
	return items
}

// lineAdder is the slice of an order header needed to attach loaded lines.
type lineAdder interface {
	AddBatch(batch *stock.Batch) error
}

// attachLines rebuilds an order's line collection from its database rows.
// Headers are restored first; lines are attached afterwards, the same order
// the reference data is loaded in.
func attachLines(header lineAdder, items []OrderItemDTO) error {
	for _, item := range items {
		batch, err := stock.NewBatch(item.ProductCode, item.Quantity)
		if err != nil {
			return err
		}
		if err := header.AddBatch(batch); err != nil {
			return err
		}
	}
	return nil
}
