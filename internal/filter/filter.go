// Package filter narrows an audited element population by warning level, warning type
// and element class.
package filter

import (
	"slices"

	"github.com/jmylchreest/a11ykit/internal/element"
	"github.com/jmylchreest/a11ykit/internal/warning"
)

// Target is anything the engine can filter.
type Target interface {
	ObjectClass() element.Class
	WarningTypes() []warning.Type
}

// State is the engine's conceptual state.
type State int

const (
	// StateIdle means no constraint is active.
	StateIdle State = iota
	// StateActive means at least one dimension constrains the population.
	StateActive
)

// String returns the state name.
func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

// Engine holds three toggle sets. An empty set imposes no constraint. The selected types
// are always a subset of the selectable types derived from the active levels.
// An Engine is not safe for concurrent use.
type Engine struct {
	levels  set[warning.Level]
	types   set[warning.Type]
	classes set[element.Class]

	selectable []warning.Type
	targets    []Target
}

// NewEngine creates an idle engine.
func NewEngine() *Engine {
	e := &Engine{}
	e.Reset()
	return e
}

// ToggleLevel flips membership of a level and recomputes the selectable types.
func (e *Engine) ToggleLevel(l warning.Level) {
	e.levels.toggle(l)
	e.RecomputeSelectableTypes()
}

// ToggleType flips membership of a warning type. Types that are not selectable under the
// active levels are ignored and leave the selection unchanged. It reports whether the
// toggle was applied.
func (e *Engine) ToggleType(t warning.Type) bool {
	if !slices.Contains(e.selectable, t) {
		return false
	}
	e.types.toggle(t)
	return true
}

// ToggleClass flips membership of an element class.
func (e *Engine) ToggleClass(c element.Class) {
	e.classes.toggle(c)
}

// RecomputeSelectableTypes derives the selectable types from the active levels and prunes
// selected types that are no longer selectable. With no active level every type is
// selectable, so a type filter can be used without a level filter. Once a level is
// active, only the types at active levels are selectable.
func (e *Engine) RecomputeSelectableTypes() {
	if len(e.levels) == 0 {
		e.selectable = warning.AllTypes()
	} else {
		e.selectable = warning.TypesForLevels(e.levels.members())
	}
	for t := range e.types {
		if !slices.Contains(e.selectable, t) {
			delete(e.types, t)
		}
	}
}

// SelectableTypes returns the types that may currently be selected, in catalog order.
func (e *Engine) SelectableTypes() []warning.Type {
	return slices.Clone(e.selectable)
}

// Levels returns the active levels, most severe first.
func (e *Engine) Levels() []warning.Level {
	levels := e.levels.members()
	slices.Reverse(levels)
	return levels
}

// Types returns the selected warning types in catalog order.
func (e *Engine) Types() []warning.Type {
	return e.types.members()
}

// Classes returns the active element classes.
func (e *Engine) Classes() []element.Class {
	return e.classes.members()
}

// Matches reports whether a single target passes every active dimension.
func (e *Engine) Matches(t Target) bool {
	if len(e.classes) > 0 && !e.classes.has(t.ObjectClass()) {
		return false
	}
	types := t.WarningTypes()
	if len(e.levels) > 0 && !e.levels.has(warning.HighestLevelOf(types)) {
		return false
	}
	if len(e.types) > 0 && !slices.ContainsFunc(types, e.types.has) {
		return false
	}
	return true
}

// Apply returns the targets that pass the filter, preserving order.
func Apply[T Target](e *Engine, targets []T) []T {
	var out []T
	for _, t := range targets {
		if e.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// SetTargets replaces the population Count works on.
func (e *Engine) SetTargets(targets []Target) {
	e.targets = targets
}

// Count returns how many targets of the current population pass the filter.
func (e *Engine) Count() int {
	return len(Apply(e, e.targets))
}

// Reset clears all three sets.
func (e *Engine) Reset() {
	e.levels = set[warning.Level]{}
	e.types = set[warning.Type]{}
	e.classes = set[element.Class]{}
	e.RecomputeSelectableTypes()
}

// State reports whether any constraint is active.
func (e *Engine) State() State {
	if len(e.levels)+len(e.types)+len(e.classes) > 0 {
		return StateActive
	}
	return StateIdle
}

type set[T ~int] map[T]struct{}

func (s set[T]) toggle(v T) {
	if _, ok := s[v]; ok {
		delete(s, v)
		return
	}
	s[v] = struct{}{}
}

func (s set[T]) has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s set[T]) members() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
