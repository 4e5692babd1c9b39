// pkg/entity/weapon.go
package entity

// Default hitscan weapon tuning.
const (
	ReloadInterval = 0.12   // seconds between shots, about 8.3 shots/sec
	WeaponRange    = 2000.0 // trace cutoff, beyond any arena diagonal
	WeaponDamage   = 1.0
)

// FireState is the weapon's two-state gate.
type FireState int

const (
	Ready FireState = iota
	Cooling
)

func (s FireState) String() string {
	if s == Ready {
		return "ready"
	}
	return "cooling"
}

// FireControl gates the hitscan weapon by a countdown in seconds.
//
// Cooldown is decremented every frame and is never clamped at zero; only
// Cooldown <= 0 matters for gating.
type FireControl struct {
	Cooldown       float64
	ReloadInterval float64
	Range          float64
	Damage         float64
}

// NewFireControl creates a ready weapon with the default tuning.
func NewFireControl() *FireControl {
	return &FireControl{
		ReloadInterval: ReloadInterval,
		Range:          WeaponRange,
		Damage:         WeaponDamage,
	}
}

// Tick advances the cooldown by dt seconds.
func (f *FireControl) Tick(dt float64) {
	f.Cooldown -= dt
}

// State reports whether the weapon may fire.
func (f *FireControl) State() FireState {
	if f.Cooldown <= 0 {
		return Ready
	}
	return Cooling
}

// TryFire fires if the trigger is held and the weapon is ready, resetting
// the cooldown to the reload interval. It reports whether a shot went off.
func (f *FireControl) TryFire(triggerHeld bool) bool {
	if !triggerHeld || f.State() != Ready {
		return false
	}
	f.Cooldown = f.ReloadInterval
	return true
}
