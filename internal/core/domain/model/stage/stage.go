package stage

import (
	"orderboard/internal/pkg/errs"
)

// ID identifies a stage within a pipeline. IDs are unique per pipeline and
// stable across deployments; they are the only stage attribute the engine's
// logic depends on.
type ID string

// Stage is a value object describing one step of a fulfillment pipeline.
//
// Label and display color are presentation metadata passed through to the
// board untouched; adjacency is defined by the stage's position within its
// Pipeline, not by any field on the stage itself.
type Stage struct {
	id    ID
	label string
	color string
}

// NewStage creates a validated Stage.
//
// Returns an error if the id or label is empty. The color is optional;
// consumers fall back to their own default when it is empty.
func NewStage(id ID, label, color string) (Stage, error) {
	if id == "" {
		return Stage{}, errs.NewValueIsRequiredError("stage id")
	}
	if label == "" {
		return Stage{}, errs.NewValueIsRequiredError("stage label")
	}
	return Stage{id: id, label: label, color: color}, nil
}

// ID returns the stage identifier.
func (s Stage) ID() ID {
	return s.id
}

// Label returns the human-readable stage name.
func (s Stage) Label() string {
	return s.label
}

// Color returns the display color for the stage's board column.
func (s Stage) Color() string {
	return s.color
}

// IsZero reports whether the stage is an unconstructed zero value.
func (s Stage) IsZero() bool {
	return s.id == ""
}
