package queries

import (
	"errors"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/guard"
)

var ErrGetPipelineQueryIsNotConstructed = errors.New(
	"GetPipelineQuery must be created via NewGetPipelineQuery constructor",
)

// GetPipelineQuery retrieves the stage sequence for one fulfillment
// category, terminal stage included. Clients use the response to build
// column headers without hardcoding the stage set.
type GetPipelineQuery struct { //nolint:recvcheck //using for validation
	category order.Category

	guard guard.ConstructorGuard
}

// NewGetPipelineQuery creates a query for one category's stage sequence.
func NewGetPipelineQuery(category order.Category) (GetPipelineQuery, error) {
	q := GetPipelineQuery{guard: guard.NewConstructorGuard()}

	if err := q.setCategory(category); err != nil {
		return GetPipelineQuery{}, err
	}

	return q, nil
}

// Category returns the fulfillment category whose pipeline to describe.
func (q GetPipelineQuery) Category() order.Category {
	return q.category
}

// Validate ensures the query was created through the constructor.
func (q *GetPipelineQuery) Validate() error {
	return q.guard.Validate(ErrGetPipelineQueryIsNotConstructed)
}

func (q *GetPipelineQuery) setCategory(category order.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	q.category = category
	return nil
}

// GetPipelineQueryResponse lists the stages of one pipeline in traversal
// order. Terminal marks the stage that ends the lifecycle early.
type GetPipelineQueryResponse struct {
	Category string          `json:"category"`
	Stages   []StageResponse `json:"stages"`
}

// StageResponse is one stage's display metadata.
type StageResponse struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Color    string `json:"color"`
	Terminal bool   `json:"terminal"`
}
