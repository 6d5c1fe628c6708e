// Package astar defines the engine types, configuration options, and
// sentinel errors for A* grid search in github.com/tilenav/tilenav.
package astar

import (
	"errors"

	"github.com/tilenav/tilenav/gridmap"
)

// Sentinel errors returned by the A* engine.
var (
	// ErrGridNotInitialized indicates a refresh or search was requested
	// before InitializeGrid configured any node storage.
	ErrGridNotInitialized = errors.New("astar: grid not initialized")

	// ErrBadBounds indicates InitializeGrid was given a non-positive
	// width or height; the pathfinder is left without a grid.
	ErrBadBounds = errors.New("astar: bounds must have positive width and height")

	// ErrOutOfBounds indicates a start or end coordinate with no
	// corresponding grid node.
	ErrOutOfBounds = errors.New("astar: coordinate outside grid bounds")

	// ErrNoPath indicates the search exhausted the frontier without
	// reaching the end under current walkability. This is the expected
	// negative result of a well-formed request, not a fault.
	ErrNoPath = errors.New("astar: no path between start and end")
)

// Unit step costs of the octile metric: 10 per cardinal move, 14 ≈ 10·√2
// per diagonal move.
const (
	CardinalCost = 10
	DiagonalCost = 14
)

// Bounds describes the host map's rectangular extent: every coordinate in
// [Origin, Origin+size) gets one grid node.
type Bounds struct {
	Origin        gridmap.Coord
	Width, Height int
}

// TilePredicate reports whether the host map has a tile at c. It is
// queried once per cell during grid construction and retained for grid
// rebuilds; it must be cheap and side-effect free.
type TilePredicate func(c gridmap.Coord) bool

// WarnFunc receives advisory conditions: situations that do not abort an
// operation but that the host may want to log (for example a search
// endpoint currently marked unwalkable).
type WarnFunc func(format string, args ...any)

// Options configures a Pathfinder at construction time.
//
// AllowDiagonal – initial diagonal-movement setting; mutable afterwards
// via the Pathfinder.AllowDiagonal field.
// Warnf         – advisory hook; nil means advisories are dropped.
type Options struct {
	AllowDiagonal bool
	Warnf         WarnFunc
}

// Option represents a functional option for configuring a Pathfinder.
type Option func(*Options)

// WithDiagonalMovement enables the four diagonal neighbor offsets in
// addition to the cardinal ones. Equivalent to setting AllowDiagonal on
// the constructed Pathfinder.
func WithDiagonalMovement() Option {
	return func(o *Options) {
		o.AllowDiagonal = true
	}
}

// WithWarnf routes advisory conditions to fn (for example a host
// logger's Printf). A nil fn panics: pass no option to drop advisories.
func WithWarnf(fn WarnFunc) Option {
	return func(o *Options) {
		if fn == nil {
			panic("astar: WithWarnf requires a non-nil WarnFunc")
		}
		o.Warnf = fn
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: cardinal-only movement, advisories dropped.
func DefaultOptions() Options {
	return Options{
		AllowDiagonal: false,
		Warnf:         nil,
	}
}
