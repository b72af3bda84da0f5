package http

import (
	"net/http"

	"stockyard/internal/core/application/usecases/commands"
	"stockyard/internal/core/application/usecases/queries"
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements ServerInterface. The driver kiosk talks to the session
// endpoints, the operator task board to the order endpoints.
type Server struct {
	// Command handlers
	startSessionHandler  commands.StartDriverSessionCommandHandler
	applyEventHandler    commands.ApplyFlowEventCommandHandler
	startLoadingHandler  commands.StartLoadingCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler
	addOrderNoteHandler  commands.AddOrderNoteCommandHandler

	// Query handlers
	getSessionHandler    queries.GetDriverSessionQueryHandler
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler
	getCatalogHandler    queries.GetCatalogQueryHandler
	lookupPlateHandler   queries.LookupPlateQueryHandler
}

func NewServer(
	startSessionHandler commands.StartDriverSessionCommandHandler,
	applyEventHandler commands.ApplyFlowEventCommandHandler,
	startLoadingHandler commands.StartLoadingCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	addOrderNoteHandler commands.AddOrderNoteCommandHandler,
	getSessionHandler queries.GetDriverSessionQueryHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
	getCatalogHandler queries.GetCatalogQueryHandler,
	lookupPlateHandler queries.LookupPlateQueryHandler,
) *Server {
	return &Server{
		startSessionHandler:  startSessionHandler,
		applyEventHandler:    applyEventHandler,
		startLoadingHandler:  startLoadingHandler,
		completeOrderHandler: completeOrderHandler,
		addOrderNoteHandler:  addOrderNoteHandler,
		getSessionHandler:    getSessionHandler,
		getOpenOrdersHandler: getOpenOrdersHandler,
		getCatalogHandler:    getCatalogHandler,
		lookupPlateHandler:   lookupPlateHandler,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// StartSession handles POST /api/v1/sessions.
func (s *Server) StartSession(ctx echo.Context) error {
	cmd, err := commands.NewStartDriverSessionCommand(kernel.NewUUID())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.startSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.writeSession(ctx, http.StatusCreated, cmd.SessionID())
}

// GetSession handles GET /api/v1/sessions/{sessionId}.
func (s *Server) GetSession(ctx echo.Context, sessionID openapi_types.UUID) error {
	id, err := kernel.UUIDFromRaw(sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.writeSession(ctx, http.StatusOK, id)
}

// ApplySessionEvent handles POST /api/v1/sessions/{sessionId}/events.
func (s *Server) ApplySessionEvent(ctx echo.Context, sessionID openapi_types.UUID) error {
	id, err := kernel.UUIDFromRaw(sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	var body Event
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	event, err := s.toFlowEvent(ctx.Request().Context(), body)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApplyFlowEventCommand(id, event)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err := s.applyEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.writeSession(ctx, http.StatusOK, id)
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	cat, err := s.getCatalogHandler.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Product, len(cat.Products))
	for i, p := range cat.Products {
		response[i] = toProduct(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAddresses handles GET /api/v1/addresses.
func (s *Server) GetAddresses(ctx echo.Context) error {
	cat, err := s.getCatalogHandler.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Address, len(cat.Addresses))
	for i, a := range cat.Addresses {
		response[i] = *toAddress(&a)
	}

	return ctx.JSON(http.StatusOK, response)
}

// LookupPlate handles GET /api/v1/plates/{plate}.
func (s *Server) LookupPlate(ctx echo.Context, plate string) error {
	query, err := queries.NewLookupPlateQuery(plate)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.lookupPlateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PlateLookup{
		NumberPlate:  result.NumberPlate,
		CustomerName: result.CustomerName,
		Known:        result.Known,
		IsRegistered: result.IsRegistered,
	})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOpenOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// StartOrderLoading handles POST /api/v1/orders/{orderId}/start.
func (s *Server) StartOrderLoading(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromRaw(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewStartLoadingCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.startLoadingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromRaw(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderNote handles POST /api/v1/orders/{orderId}/notes.
func (s *Server) AddOrderNote(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromRaw(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	var body NewNote
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAddOrderNoteCommand(id, body.Text)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addOrderNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) writeSession(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetDriverSessionQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getSessionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	formatter := services.NewDocumentFormatterForHeader(ctx.Request().Header.Get("Accept-Language"))
	return ctx.JSON(status, toSession(view, formatter))
}
