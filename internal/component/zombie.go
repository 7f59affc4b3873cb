// internal/component/zombie.go
package component

// Zombie представляет враждебную сущность.
type Zombie struct {
	DefID string // ID из zombies.json
}
