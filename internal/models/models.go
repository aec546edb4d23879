package models

import (
	"errors"
	"math"
)

// ErrInvalidModel is returned from save hooks when a row breaks an invariant.
var ErrInvalidModel = errors.New("invalid model")

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{&Checkpoint{}, &Route{}, &RouteSegment{}, &Vehicle{}, &Convoy{}}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
