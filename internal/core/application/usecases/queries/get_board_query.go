package queries

import (
	"errors"
	"time"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/stage"
	"orderboard/internal/pkg/guard"
)

var ErrGetBoardQueryIsNotConstructed = errors.New(
	"GetBoardQuery must be created via NewGetBoardQuery constructor",
)

// GetBoardQuery retrieves the rendered column snapshot for one
// fulfillment category. The terminal stage is not rendered, so cancelled
// orders do not appear in any column.
//
// Example:
//
//	query, err := NewGetBoardQuery(order.Delivery)
//	if err != nil {
//	    return err
//	}
//	snapshot, err := handler.Handle(ctx, query)
type GetBoardQuery struct { //nolint:recvcheck //using for validation
	category order.Category

	guard guard.ConstructorGuard
}

// NewGetBoardQuery creates a query for one category's board snapshot.
func NewGetBoardQuery(category order.Category) (GetBoardQuery, error) {
	q := GetBoardQuery{guard: guard.NewConstructorGuard()}

	if err := q.setCategory(category); err != nil {
		return GetBoardQuery{}, err
	}

	return q, nil
}

// Category returns the fulfillment category to render.
func (q GetBoardQuery) Category() order.Category {
	return q.category
}

// Validate ensures the query was created through the constructor.
func (q *GetBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetBoardQueryIsNotConstructed)
}

func (q *GetBoardQuery) setCategory(category order.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	q.category = category
	return nil
}

// GetBoardQueryResponse is the rendered board: one column per pipeline
// stage, in pipeline order, each holding its orders in collection order.
type GetBoardQueryResponse struct {
	Category string           `json:"category"`
	Columns  []ColumnResponse `json:"columns"`
}

// ColumnResponse is one stage column with its display metadata.
type ColumnResponse struct {
	StageID string          `json:"stageId"`
	Label   string          `json:"label"`
	Color   string          `json:"color"`
	Orders  []OrderResponse `json:"orders"`
}

// OrderResponse is one order card.
type OrderResponse struct {
	ID          string             `json:"id"`
	FormOwnerID string             `json:"formOwnerId"`
	StageID     string             `json:"stageId"`
	Items       []LineItemResponse `json:"items"`
	Total       string             `json:"total"`
	SubmittedAt time.Time          `json:"submittedAt"`
}

// LineItemResponse is one purchased item on an order card.
type LineItemResponse struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

func newOrderResponse(o *order.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, LineItemResponse{
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().String(),
		})
	}

	return OrderResponse{
		ID:          o.ID().String(),
		FormOwnerID: o.FormOwnerID().String(),
		StageID:     string(o.CurrentStage()),
		Items:       items,
		Total:       o.Total().String(),
		SubmittedAt: o.SubmittedAt(),
	}
}

func newColumnResponse(s stage.Stage, orders []*order.Order) ColumnResponse {
	cards := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		cards = append(cards, newOrderResponse(o))
	}

	return ColumnResponse{
		StageID: string(s.ID()),
		Label:   s.Label(),
		Color:   s.Color(),
		Orders:  cards,
	}
}
