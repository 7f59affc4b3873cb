// internal/component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity is a per-tick velocity vector in world units per second.
// Zombie velocities are recomputed every tick toward the player.
type Velocity struct {
	X, Y float64
}
