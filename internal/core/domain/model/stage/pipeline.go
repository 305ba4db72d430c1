package stage

import (
	"fmt"

	"orderboard/internal/pkg/errs"
)

// Pipeline is an immutable ordered sequence of stages for one order
// category, with exactly one designated terminal (cancellation) stage.
//
// Pipeline invariants:
//   - Stage ids are unique within the pipeline
//   - The terminal stage is present in the sequence
//   - At least two non-terminal stages exist, so traversal is meaningful
//
// Traversal via Next and Previous is strictly single-step and never enters
// or leaves the terminal stage. Both methods are pure queries: an unknown
// id or a boundary position yields (Stage{}, false), which callers treat
// as "no legal transition", not as an error.
type Pipeline struct {
	stages     []Stage
	terminalID ID
}

// RestorePipeline builds a Pipeline from externally sourced stage metadata,
// validating every invariant once at the boundary.
//
// Used when stage definitions come from remote settings rather than the
// built-in defaults. The stages are copied, so the caller's slice may be
// reused afterwards.
func RestorePipeline(stages []Stage, terminalID ID) (Pipeline, error) {
	if len(stages) == 0 {
		return Pipeline{}, errs.NewValueIsRequiredError("stages")
	}
	if terminalID == "" {
		return Pipeline{}, errs.NewValueIsRequiredError("terminal stage id")
	}

	seen := make(map[ID]struct{}, len(stages))
	terminalFound := false
	for _, s := range stages {
		if s.IsZero() {
			return Pipeline{}, errs.NewValueIsInvalidError("stage")
		}
		if _, dup := seen[s.id]; dup {
			return Pipeline{}, errs.NewValueIsInvalidErrorWithCause(
				"stages",
				fmt.Errorf("duplicate stage id %q", s.id),
			)
		}
		seen[s.id] = struct{}{}
		if s.id == terminalID {
			terminalFound = true
		}
	}

	if !terminalFound {
		return Pipeline{}, errs.NewValueIsInvalidErrorWithCause(
			"terminal stage id",
			fmt.Errorf("%q is not part of the pipeline", terminalID),
		)
	}
	if len(stages) < 3 {
		return Pipeline{}, errs.NewValueIsInvalidErrorWithCause(
			"stages",
			fmt.Errorf("pipeline needs at least two traversable stages, got %d", len(stages)-1),
		)
	}

	copied := make([]Stage, len(stages))
	copy(copied, stages)
	return Pipeline{stages: copied, terminalID: terminalID}, nil
}

// Stages returns a copy of the ordered stage sequence, terminal included.
func (p Pipeline) Stages() []Stage {
	out := make([]Stage, len(p.stages))
	copy(out, p.stages)
	return out
}

// Columns returns the ordered stages shown on the board, which is the
// stage sequence with the terminal stage removed.
func (p Pipeline) Columns() []Stage {
	out := make([]Stage, 0, len(p.stages)-1)
	for _, s := range p.stages {
		if s.id != p.terminalID {
			out = append(out, s)
		}
	}
	return out
}

// TerminalID returns the id of the terminal (cancellation) stage.
func (p Pipeline) TerminalID() ID {
	return p.terminalID
}

// IsTerminal reports whether the given id is the pipeline's terminal stage.
func (p Pipeline) IsTerminal(id ID) bool {
	return id == p.terminalID
}

// First returns the initial stage of the pipeline. Orders without an
// explicit stage are treated as sitting in this stage.
func (p Pipeline) First() Stage {
	return p.stages[0]
}

// Find locates a stage by id. The second return value is false when the
// id is not part of the pipeline.
func (p Pipeline) Find(id ID) (Stage, bool) {
	for _, s := range p.stages {
		if s.id == id {
			return s, true
		}
	}
	return Stage{}, false
}

// Contains reports whether the id belongs to this pipeline.
func (p Pipeline) Contains(id ID) bool {
	_, ok := p.Find(id)
	return ok
}

// Next returns the stage immediately following the given one.
//
// Returns (Stage{}, false) when the id is unknown, when the given stage is
// the last one, or when the following stage is the terminal stage. There is
// no error case: an absent successor is a normal outcome that callers use
// to disable the forward action.
func (p Pipeline) Next(id ID) (Stage, bool) {
	idx := p.indexOf(id)
	if idx < 0 || id == p.terminalID || idx+1 >= len(p.stages) {
		return Stage{}, false
	}
	next := p.stages[idx+1]
	if next.id == p.terminalID {
		return Stage{}, false
	}
	return next, true
}

// Previous returns the stage immediately preceding the given one.
//
// Symmetric to Next: returns (Stage{}, false) when the id is unknown, when
// the given stage is the first one, or when the preceding stage is the
// terminal stage.
func (p Pipeline) Previous(id ID) (Stage, bool) {
	idx := p.indexOf(id)
	if idx <= 0 || id == p.terminalID {
		return Stage{}, false
	}
	prev := p.stages[idx-1]
	if prev.id == p.terminalID {
		return Stage{}, false
	}
	return prev, true
}

func (p Pipeline) indexOf(id ID) int {
	for i, s := range p.stages {
		if s.id == id {
			return i
		}
	}
	return -1
}
