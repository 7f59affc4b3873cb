// internal/component/player.go
package component

// Player отмечает сущность игрока.
type Player struct {
	Radius float64
	Speed  float64
	// Input direction for the current tick, set by the presentation layer.
	// Not normalized; the movement system scales it.
	InputX, InputY float64
	// Seconds until the current weapon may fire again.
	FireCooldown float64
}
