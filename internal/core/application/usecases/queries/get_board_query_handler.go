package queries

import (
	"context"
)

// GetBoardQueryHandler renders the current board snapshot from the
// in-memory engine. No persistence call is made; the engine's collection
// is the render source even while transitions are in flight.
type GetBoardQueryHandler struct {
	boards BoardProvider
}

// NewGetBoardQueryHandler creates a handler for board snapshot queries.
func NewGetBoardQueryHandler(boards BoardProvider) GetBoardQueryHandler {
	return GetBoardQueryHandler{boards: boards}
}

// Handle renders the board for the query's category. Columns come back
// in pipeline order; an empty stage is an empty column, never omitted.
func (h GetBoardQueryHandler) Handle(
	ctx context.Context,
	query GetBoardQuery,
) (GetBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBoardQueryResponse{}, err
	}

	b, err := h.boards.BoardFor(query.Category())
	if err != nil {
		return GetBoardQueryResponse{}, err
	}

	columns := b.Columns()
	resp := GetBoardQueryResponse{
		Category: query.Category().String(),
		Columns:  make([]ColumnResponse, 0, len(columns)),
	}
	for _, col := range columns {
		resp.Columns = append(resp.Columns, newColumnResponse(col.Stage, col.Orders))
	}

	return resp, nil
}
