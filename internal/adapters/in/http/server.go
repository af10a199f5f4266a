// Package http exposes the order lifecycle over a JSON API.
// It coordinates between HTTP handlers and application use cases; all
// business rules live in the domain and the handlers below only translate.
package http

import (
	"errors"
	"net/http"

	"github.com/vudinhquy04/NovaTechApp/internal/core/application/usecases/commands"
	"github.com/vudinhquy04/NovaTechApp/internal/core/application/usecases/queries"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/order"
	"github.com/vudinhquy04/NovaTechApp/internal/core/ports"
	"github.com/vudinhquy04/NovaTechApp/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// userHeader carries the authenticated account ID. Authentication itself is
// terminated upstream; this service trusts the header.
const userHeader = "X-User-Id"

// Server wires the JSON API to the application's command and query handlers.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
	advanceHandler     commands.AdvanceOrderStatusCommandHandler
	cancelHandler      commands.CancelOrderCommandHandler
	getOrderHandler    queries.GetOrderQueryHandler
	listByOwnerHandler queries.GetOrdersByOwnerQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceHandler commands.AdvanceOrderStatusCommandHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listByOwnerHandler queries.GetOrdersByOwnerQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		advanceHandler:     advanceHandler,
		cancelHandler:      cancelHandler,
		getOrderHandler:    getOrderHandler,
		listByOwnerHandler: listByOwnerHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.ListOrders)
	v1.GET("/orders/:orderId", s.GetOrder)
	v1.POST("/orders/:orderId/status", s.AdvanceOrderStatus)
	v1.POST("/orders/:orderId/cancel", s.CancelOrder)
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemRequest is one line item in an order placement request.
type ItemRequest struct {
	Name     string `json:"name"`
	Variant  string `json:"variant,omitempty"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// ReceiverRequest is the delivery contact in an order placement request.
type ReceiverRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// PaymentRequest is the payment block in an order placement request.
type PaymentRequest struct {
	Method string `json:"method"`
	Masked string `json:"masked,omitempty"`
	IsPaid bool   `json:"isPaid"`
}

// CreateOrderRequest is the order placement body.
type CreateOrderRequest struct {
	Receiver    ReceiverRequest `json:"receiver"`
	Items       []ItemRequest   `json:"items"`
	ShippingFee string          `json:"shippingFee"`
	Discount    string          `json:"discount"`
	Payment     PaymentRequest  `json:"payment"`
}

// AdvanceStatusRequest is the status advancement body.
type AdvanceStatusRequest struct {
	Target      string `json:"target"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// CancelOrderRequest is the cancellation body.
type CancelOrderRequest struct {
	Reason string  `json:"reason"`
	Notes  *string `json:"notes,omitempty"`
}

// ItemResponse is one line item in an order detail response.
type ItemResponse struct {
	Name     string `json:"name"`
	Variant  string `json:"variant,omitempty"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Subtotal string `json:"subtotal"`
}

// HistoryEntryResponse is one audit entry in an order detail response.
type HistoryEntryResponse struct {
	Status      string `json:"status"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Timestamp   string `json:"timestamp"`
}

// CancellationResponse is the cancellation block of an order detail response.
type CancellationResponse struct {
	Reason      string  `json:"reason"`
	Notes       *string `json:"notes,omitempty"`
	CancelledAt string  `json:"cancelledAt"`
}

// OrderResponse is the full order detail.
type OrderResponse struct {
	ID           string                 `json:"id"`
	Code         string                 `json:"code"`
	Status       string                 `json:"status"`
	Receiver     ReceiverRequest        `json:"receiver"`
	Items        []ItemResponse         `json:"items"`
	SubTotal     string                 `json:"subTotal"`
	ShippingFee  string                 `json:"shippingFee"`
	Discount     string                 `json:"discount"`
	Total        string                 `json:"total"`
	Payment      PaymentRequest         `json:"payment"`
	PaidAt       *string                `json:"paidAt,omitempty"`
	History      []HistoryEntryResponse `json:"history"`
	Cancellation *CancellationResponse  `json:"cancellation,omitempty"`
	CreatedAt    string                 `json:"createdAt"`
	UpdatedAt    string                 `json:"updatedAt"`
}

// OrderSummaryResponse is one row of the order listing.
type OrderSummaryResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Status    string `json:"status"`
	Total     string `json:"total"`
	ItemCount int    `json:"itemCount"`
	CreatedAt string `json:"createdAt"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	ownerID, err := requesterID(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "missing or invalid "+userHeader+" header")
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := buildCreateOrderCommand(ownerID, req)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid order data: "+err.Error())
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(placed))
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	requester, err := requesterID(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "missing or invalid "+userHeader+" header")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, requester)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	loaded, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(loaded))
}

// ListOrders handles GET /api/v1/orders with an optional status filter.
func (s *Server) ListOrders(ctx echo.Context) error {
	requester, err := requesterID(ctx)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "missing or invalid "+userHeader+" header")
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return jsonError(ctx, http.StatusBadRequest, "invalid status filter")
		}
		statusFilter = &status
	}

	query, err := queries.NewGetOrdersByOwnerQuery(requester, statusFilter)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	rows, err := s.listByOwnerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(rows))
	for i, row := range rows {
		response[i] = OrderSummaryResponse{
			ID:        row.ID.String(),
			Code:      row.Code,
			Status:    row.Status.String(),
			Total:     row.Total.String(),
			ItemCount: row.ItemCount,
			CreatedAt: row.CreatedAt.UTC().Format(timeFormat),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdvanceOrderStatus handles POST /api/v1/orders/:orderId/status.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req AdvanceStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid request body")
	}

	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid target status")
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, target, req.Label, req.Description)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	updated, err := s.advanceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid request body")
	}

	reason, err := order.CancellationReasonFromString(req.Reason)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "invalid cancellation reason")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, reason, req.Notes)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	cancelled, err := s.cancelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(cancelled))
}

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

func requesterID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(userHeader))
}

func jsonError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// mapDomainError translates application errors into HTTP status codes:
// validation failures are 400, missing objects 404, rejected transitions
// and lost write races 409, exhausted code allocation 503.
func mapDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrOrderAlreadyTerminal),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, ports.ErrConcurrentModification):
		return jsonError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, commands.ErrCodeAllocationExhausted):
		return jsonError(ctx, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	default:
		return jsonError(ctx, http.StatusInternalServerError, "internal error")
	}
}

func buildCreateOrderCommand(ownerID kernel.UUID, req CreateOrderRequest) (commands.CreateOrderCommand, error) {
	receiver, err := order.NewReceiver(req.Receiver.Name, req.Receiver.Phone, req.Receiver.Address)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		price, priceErr := kernel.NewMoneyFromString(itemReq.Price)
		if priceErr != nil {
			return commands.CreateOrderCommand{}, priceErr
		}

		item, itemErr := order.NewItem(itemReq.Name, itemReq.Variant, itemReq.Quantity, price)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, itemErr
		}
		items = append(items, item)
	}

	shippingFee, err := kernel.NewMoneyFromString(req.ShippingFee)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	discount, err := kernel.NewMoneyFromString(req.Discount)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	payment, err := order.NewPaymentInfo(req.Payment.Method, req.Payment.Masked, req.Payment.IsPaid)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(ownerID, receiver, items, shippingFee, discount, payment)
}

func orderToResponse(o *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemResponse{
			Name:     item.Name(),
			Variant:  item.Variant(),
			Quantity: item.Quantity(),
			Price:    item.Price().String(),
			Subtotal: item.Subtotal().String(),
		})
	}

	history := make([]HistoryEntryResponse, 0, len(o.History()))
	for _, entry := range o.History() {
		history = append(history, HistoryEntryResponse{
			Status:      entry.Status().String(),
			Label:       entry.Label(),
			Description: entry.Description(),
			Timestamp:   entry.Timestamp().UTC().Format(timeFormat),
		})
	}

	response := OrderResponse{
		ID:     o.ID().String(),
		Code:   o.Code(),
		Status: o.Status().String(),
		Receiver: ReceiverRequest{
			Name:    o.Receiver().Name(),
			Phone:   o.Receiver().Phone(),
			Address: o.Receiver().Address(),
		},
		Items:       items,
		SubTotal:    o.Settlement().SubTotal().String(),
		ShippingFee: o.Settlement().ShippingFee().String(),
		Discount:    o.Settlement().Discount().String(),
		Total:       o.Settlement().Total().String(),
		Payment: PaymentRequest{
			Method: o.Payment().Method(),
			Masked: o.Payment().Masked(),
			IsPaid: o.Payment().IsPaid(),
		},
		History:   history,
		CreatedAt: o.CreatedAt().UTC().Format(timeFormat),
		UpdatedAt: o.UpdatedAt().UTC().Format(timeFormat),
	}

	if paidAt := o.PaidAt(); paidAt != nil {
		formatted := paidAt.UTC().Format(timeFormat)
		response.PaidAt = &formatted
	}

	if cancellation := o.Cancellation(); cancellation != nil {
		response.Cancellation = &CancellationResponse{
			Reason:      cancellation.Reason().String(),
			Notes:       cancellation.Notes(),
			CancelledAt: cancellation.CancelledAt().UTC().Format(timeFormat),
		}
	}

	return response
}
