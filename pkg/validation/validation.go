// Package validation checks per-frame host input before it reaches the
// simulation. The simulation itself assumes finite numbers.
package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/opd-ai/go-hitscan/pkg/physics"
)

var (
	ErrNonFiniteDelta = errors.New("frame delta is not finite")
	ErrNegativeDelta  = errors.New("frame delta is negative")
	ErrNonFiniteAim   = errors.New("aim target is not finite")
)

// ValidateFrame rejects a frame whose dt or aim target would corrupt the
// simulation. A nil return means the frame may be stepped.
func ValidateFrame(dt float64, aim physics.Vector2D) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("invalid frame: %w (dt=%v)", ErrNonFiniteDelta, dt)
	}
	if dt < 0 {
		return fmt.Errorf("invalid frame: %w (dt=%v)", ErrNegativeDelta, dt)
	}
	return ValidateAim(aim)
}

// ValidateAim rejects a non-finite aim target. Hosts that let the game
// measure its own dt use it on its own.
func ValidateAim(aim physics.Vector2D) error {
	if !aim.IsFinite() {
		return fmt.Errorf("invalid frame: %w (aim=%v,%v)", ErrNonFiniteAim, aim.X, aim.Y)
	}
	return nil
}

// Reason returns a short stable label for a ValidateFrame error, for use as a
// log or metrics key.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNonFiniteDelta):
		return "non_finite_delta"
	case errors.Is(err, ErrNegativeDelta):
		return "negative_delta"
	case errors.Is(err, ErrNonFiniteAim):
		return "non_finite_aim"
	default:
		return "unknown"
	}
}
