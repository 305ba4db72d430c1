package queries

import (
	"context"
)

// GetPipelineQueryHandler describes a category's stage pipeline. The
// pipeline is static configuration resolved from the category, so the
// handler needs no collaborators.
type GetPipelineQueryHandler struct{}

// NewGetPipelineQueryHandler creates a handler for pipeline queries.
func NewGetPipelineQueryHandler() GetPipelineQueryHandler {
	return GetPipelineQueryHandler{}
}

// Handle returns the stage sequence for the query's category, in
// traversal order with the terminal stage last.
func (h GetPipelineQueryHandler) Handle(
	_ context.Context,
	query GetPipelineQuery,
) (GetPipelineQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPipelineQueryResponse{}, err
	}

	pipeline := query.Category().Pipeline()
	resp := GetPipelineQueryResponse{
		Category: query.Category().String(),
		Stages:   make([]StageResponse, 0, len(pipeline.Stages())),
	}
	for _, s := range pipeline.Stages() {
		resp.Stages = append(resp.Stages, StageResponse{
			ID:       string(s.ID()),
			Label:    s.Label(),
			Color:    s.Color(),
			Terminal: pipeline.IsTerminal(s.ID()),
		})
	}

	return resp, nil
}
