// internal/component/run_state.go
package component

// RunState — компонент для хранения состояния одного забега.
// Сбрасывается при каждом рестарте; за пределами забега ничего не хранится.
type RunState struct {
	Coins           int
	Kills           map[string]int // per-archetype kill tally
	WeaponsOwned    []string
	CurrentWeapon   string
	Multiplier      float64 // current spawn-rate multiplier, mirrored for the HUD
	Over            bool
	SurvivalSeconds int // set once at defeat
}

// NewRunState returns a fresh run with the starting weapon owned.
func NewRunState(startingWeapon string) *RunState {
	return &RunState{
		Kills:         make(map[string]int),
		WeaponsOwned:  []string{startingWeapon},
		CurrentWeapon: startingWeapon,
		Multiplier:    1.0,
	}
}

// Owns reports whether the weapon has been bought this run.
func (r *RunState) Owns(weaponID string) bool {
	for _, owned := range r.WeaponsOwned {
		if owned == weaponID {
			return true
		}
	}
	return false
}
