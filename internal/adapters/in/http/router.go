package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes mounts the warehouse API on the given echo instance.
// Every request gets a UUID request id for log correlation.
func RegisterRoutes(e *echo.Echo, server *Server) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.GET("/stock", server.GetStockLevels)
	api.GET("/parts", server.GetCatalog)
	api.GET("/orders/unfulfilled", server.GetOrders)
	api.GET("/orders/:number/cost", server.GetOrderCost)
	api.POST("/orders", server.CreateOrder)
	api.POST("/orders/:number/fulfill", server.FulfillOrder)
	api.POST("/orders/:number/shortfall", server.CreateShortfallOrder)
	api.POST("/deliveries/:number/store", server.StoreDelivery)
	api.POST("/purchase-orders/restock", server.CreateRestockOrder)
}
