// Package http exposes the board over a REST API. It coordinates between
// HTTP handlers and application use cases; all domain decisions stay in
// the engine.
package http

import (
	"errors"
	"net/http"

	"orderboard/internal/core/application/board"
	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/stage"
	"orderboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MoveRequest is the body of POST /api/v1/orders/:id/move.
type MoveRequest struct {
	Category string `json:"category"`
	ToStage  string `json:"toStage"`
	ToIndex  int    `json:"toIndex"`
}

// TransitionRequest is the body of the advance and retreat endpoints.
type TransitionRequest struct {
	Category string `json:"category"`
}

// Server wires HTTP routes to command and query handlers.
type Server struct {
	advanceHandler  commands.AdvanceOrderCommandHandler
	retreatHandler  commands.RetreatOrderCommandHandler
	moveHandler     commands.MoveOrderCommandHandler
	boardHandler    queries.GetBoardQueryHandler
	pipelineHandler queries.GetPipelineQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	advanceHandler commands.AdvanceOrderCommandHandler,
	retreatHandler commands.RetreatOrderCommandHandler,
	moveHandler commands.MoveOrderCommandHandler,
	boardHandler queries.GetBoardQueryHandler,
	pipelineHandler queries.GetPipelineQueryHandler,
) *Server {
	return &Server{
		advanceHandler:  advanceHandler,
		retreatHandler:  retreatHandler,
		moveHandler:     moveHandler,
		boardHandler:    boardHandler,
		pipelineHandler: pipelineHandler,
	}
}

// RegisterRoutes attaches all board routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/api/v1/board", s.GetBoard)
	e.GET("/api/v1/pipelines/:category", s.GetPipeline)
	e.POST("/api/v1/orders/:id/advance", s.AdvanceOrder)
	e.POST("/api/v1/orders/:id/retreat", s.RetreatOrder)
	e.POST("/api/v1/orders/:id/move", s.MoveOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetBoard handles GET /api/v1/board?category= - renders the column
// snapshot for one category.
func (s *Server) GetBoard(ctx echo.Context) error {
	category, err := order.CategoryFromString(ctx.QueryParam("category"))
	if err != nil {
		return badRequest(ctx, "Invalid category")
	}

	query, err := queries.NewGetBoardQuery(category)
	if err != nil {
		return badRequest(ctx, "Invalid category")
	}

	resp, err := s.boardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return operationError(ctx, err, "Failed to render board")
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetPipeline handles GET /api/v1/pipelines/:category - describes the
// stage sequence clients build their columns from.
func (s *Server) GetPipeline(ctx echo.Context) error {
	category, err := order.CategoryFromString(ctx.Param("category"))
	if err != nil {
		return badRequest(ctx, "Invalid category")
	}

	query, err := queries.NewGetPipelineQuery(category)
	if err != nil {
		return badRequest(ctx, "Invalid category")
	}

	resp, err := s.pipelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return operationError(ctx, err, "Failed to describe pipeline")
	}

	return ctx.JSON(http.StatusOK, resp)
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance. A 200 response
// covers genuine no-ops: last stage, cancelled, or a transition already
// in flight.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, category, ok := s.bindTransition(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewAdvanceOrderCommand(category, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.advanceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return operationError(ctx, err, "Failed to advance order")
	}

	return ctx.NoContent(http.StatusOK)
}

// RetreatOrder handles POST /api/v1/orders/:id/retreat.
func (s *Server) RetreatOrder(ctx echo.Context) error {
	orderID, category, ok := s.bindTransition(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewRetreatOrderCommand(category, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.retreatHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return operationError(ctx, err, "Failed to retreat order")
	}

	return ctx.NoContent(http.StatusOK)
}

// MoveOrder handles POST /api/v1/orders/:id/move - drag-and-drop
// placement into a stage at an index.
func (s *Server) MoveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req MoveRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	category, err := order.CategoryFromString(req.Category)
	if err != nil {
		return badRequest(ctx, "Invalid category")
	}

	cmd, err := commands.NewMoveOrderCommand(category, orderID, stage.ID(req.ToStage), req.ToIndex)
	if err != nil {
		return badRequest(ctx, "Invalid move data: "+err.Error())
	}

	if err = s.moveHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return operationError(ctx, err, "Failed to move order")
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) bindTransition(ctx echo.Context) (kernel.UUID, order.Category, bool) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		_ = badRequest(ctx, "Invalid order id")
		return kernel.UUID{}, order.Unknown, false
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		_ = badRequest(ctx, "Invalid request body")
		return kernel.UUID{}, order.Unknown, false
	}

	category, err := order.CategoryFromString(req.Category)
	if err != nil {
		_ = badRequest(ctx, "Invalid category")
		return kernel.UUID{}, order.Unknown, false
	}

	return orderID, category, true
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// operationError maps engine failures onto the response taxonomy: unknown
// orders are 404, rejected transitions 422, a closed board 503, anything
// else 500.
func operationError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, board.ErrTransitionFailed):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, board.ErrBoardClosed):
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Board is shutting down",
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
