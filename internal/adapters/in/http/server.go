package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/warehouse"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the warehouse API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerOrderHandler commands.CreateCustomerOrderCommandHandler
	fulfillOrderHandler        commands.FulfillOrderCommandHandler
	storeDeliveryHandler       commands.StoreDeliveryCommandHandler
	createRestockOrderHandler  commands.CreateRestockOrderCommandHandler
	createShortfallHandler     commands.CreateShortfallOrderCommandHandler

	// Query handlers
	getStockLevelsHandler       queries.GetStockLevelsQueryHandler
	getUnfulfilledOrdersHandler queries.GetUnfulfilledOrdersQueryHandler
	getOrderCostHandler         queries.GetOrderCostQueryHandler
	getCatalogHandler           queries.GetCatalogQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerOrderHandler commands.CreateCustomerOrderCommandHandler,
	fulfillOrderHandler commands.FulfillOrderCommandHandler,
	storeDeliveryHandler commands.StoreDeliveryCommandHandler,
	createRestockOrderHandler commands.CreateRestockOrderCommandHandler,
	createShortfallHandler commands.CreateShortfallOrderCommandHandler,
	getStockLevelsHandler queries.GetStockLevelsQueryHandler,
	getUnfulfilledOrdersHandler queries.GetUnfulfilledOrdersQueryHandler,
	getOrderCostHandler queries.GetOrderCostQueryHandler,
	getCatalogHandler queries.GetCatalogQueryHandler,
) *Server {
	return &Server{
		createCustomerOrderHandler:  createCustomerOrderHandler,
		fulfillOrderHandler:         fulfillOrderHandler,
		storeDeliveryHandler:        storeDeliveryHandler,
		createRestockOrderHandler:   createRestockOrderHandler,
		createShortfallHandler:      createShortfallHandler,
		getStockLevelsHandler:       getStockLevelsHandler,
		getUnfulfilledOrdersHandler: getUnfulfilledOrdersHandler,
		getOrderCostHandler:         getOrderCostHandler,
		getCatalogHandler:           getCatalogHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - registers a new customer order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	lines := make([]commands.OrderLine, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = commands.OrderLine{
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
		}
	}

	cmd, err := commands.NewCreateCustomerOrderCommand(req.OrderNumber, req.CustomerCode, lines)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createCustomerOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr, "Failed to create order")
	}

	return ctx.NoContent(http.StatusCreated)
}

// FulfillOrder handles POST /api/v1/orders/:number/fulfill - fulfills a
// customer order from the grid and returns the pick list.
func (s *Server) FulfillOrder(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order number")
	}

	cmd, err := commands.NewFulfillOrderCommand(orderNumber)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order number: "+err.Error())
	}

	pickList, err := s.fulfillOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapCommandError(ctx, err, "Failed to fulfill order")
	}

	response := make([]PickListItem, len(pickList))
	for i, item := range pickList {
		response[i] = PickListItem{
			Row:         int(item.Location.Row()),
			Col:         int(item.Location.Col()),
			ProductCode: item.Batch.ProductCode(),
			Quantity:    item.Batch.Quantity(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// StoreDelivery handles POST /api/v1/deliveries/:number/store - places a
// delivery's stock into the grid and returns the touched cells.
func (s *Server) StoreDelivery(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order number")
	}

	cmd, err := commands.NewStoreDeliveryCommand(orderNumber)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order number: "+err.Error())
	}

	locations, err := s.storeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapCommandError(ctx, err, "Failed to store delivery")
	}

	response := make([]Cell, len(locations))
	for i, location := range locations {
		response[i] = Cell{
			Row: int(location.Row()),
			Col: int(location.Col()),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRestockOrder handles POST /api/v1/purchase-orders/restock - plans a
// purchase order for every out-of-stock catalog part.
func (s *Server) CreateRestockOrder(ctx echo.Context) error {
	cmd := commands.NewCreateRestockOrderCommand()

	purchaseOrder, err := s.createRestockOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapCommandError(ctx, err, "Failed to plan restock order")
	}
	if purchaseOrder == nil {
		// Every part is in stock, nothing was ordered.
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusCreated, purchaseOrderResponse(purchaseOrder))
}

// CreateShortfallOrder handles POST /api/v1/orders/:number/shortfall - plans a
// purchase order covering the quantities stock cannot fill for one order.
func (s *Server) CreateShortfallOrder(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order number")
	}

	cmd, err := commands.NewCreateShortfallOrderCommand(orderNumber)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order number: "+err.Error())
	}

	purchaseOrder, err := s.createShortfallHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapCommandError(ctx, err, "Failed to plan shortfall order")
	}

	return ctx.JSON(http.StatusCreated, purchaseOrderResponse(purchaseOrder))
}

// GetStockLevels handles GET /api/v1/stock - retrieves per-product totals.
// An optional comma-separated "products" query parameter restricts the result.
func (s *Server) GetStockLevels(ctx echo.Context) error {
	query := queries.NewGetStockLevelsQuery()
	if raw := ctx.QueryParam("products"); raw != "" {
		codes, err := parseProductCodes(raw)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid products filter")
		}
		query = queries.NewGetStockLevelsQueryForProducts(codes...)
	}

	levels, err := s.getStockLevelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve stock levels")
	}

	response := make([]StockLevel, len(levels))
	for i, level := range levels {
		response[i] = StockLevel{
			ProductCode: level.ProductCode,
			Quantity:    level.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /api/v1/orders/unfulfilled - retrieves pending
// customer orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetUnfulfilledOrdersQuery()

	orders, err := s.getUnfulfilledOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			OrderNumber:  o.OrderNumber,
			CustomerCode: o.CustomerCode,
			PlacedAt:     o.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCatalog handles GET /api/v1/parts - retrieves the catalog of sellable
// parts with their type descriptions.
func (s *Server) GetCatalog(ctx echo.Context) error {
	query := queries.NewGetCatalogQuery()

	parts, err := s.getCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve catalog")
	}

	response := make([]Part, len(parts))
	for i, part := range parts {
		response[i] = Part{
			PartCode:        part.PartCode,
			PartType:        part.PartType,
			TypeDescription: part.TypeDescription,
			Manufacturer:    part.Manufacturer,
			Description:     part.Description,
			Price:           part.Price.StringFixed(2),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderCost handles GET /api/v1/orders/:number/cost - prices one order
// against the catalog.
func (s *Server) GetOrderCost(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order number")
	}

	query, err := queries.NewGetOrderCostQuery(orderNumber)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order number: "+err.Error())
	}

	cost, err := s.getOrderCostHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if errors.As(err, &notFoundErr) {
			return errorJSON(ctx, http.StatusNotFound, "Order not found")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to compute order cost")
	}

	return ctx.JSON(http.StatusOK, OrderCost{
		OrderNumber: cost.OrderNumber,
		Cost:        cost.Cost.StringFixed(2),
	})
}

func orderNumberParam(ctx echo.Context) (int, error) {
	return strconv.Atoi(ctx.Param("number"))
}

func parseProductCodes(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")

	codes := make([]int, 0, len(parts))
	for _, part := range parts {
		code, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// mapCommandError translates application and domain errors into HTTP statuses.
func mapCommandError(ctx echo.Context, err error, fallback string) error {
	var notFoundErr *errs.ObjectNotFoundError
	switch {
	case errors.As(err, &notFoundErr):
		return errorJSON(ctx, http.StatusNotFound, "Order not found")
	case errors.Is(err, commands.ErrOrderCannotBeFilled):
		return errorJSON(ctx, http.StatusConflict, "Order cannot be filled from current stock")
	case errors.Is(err, warehouse.ErrGridCapacityExhausted):
		return errorJSON(ctx, http.StatusConflict, "Storage grid capacity exhausted")
	case errors.Is(err, order.ErrAlreadyFulfilled):
		return errorJSON(ctx, http.StatusConflict, "Order is already processed")
	default:
		return errorJSON(ctx, http.StatusInternalServerError, fallback)
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}

func purchaseOrderResponse(purchaseOrder *order.PurchaseOrder) PurchaseOrder {
	batches := purchaseOrder.Lines().Batches()

	lines := make([]Line, len(batches))
	for i, batch := range batches {
		lines[i] = Line{
			ProductCode: batch.ProductCode(),
			Quantity:    batch.Quantity(),
		}
	}

	return PurchaseOrder{
		OrderNumber: purchaseOrder.OrderNumber(),
		PlacedAt:    purchaseOrder.PlacedAt().Format(time.RFC3339),
		Lines:       lines,
	}
}
