// internal/event/types.go
package event

import (
	"github.com/aeft/zombie-shooter-game/internal/types"
)

const (
	ZombieSpawned       EventType = "ZombieSpawned"       // Зомби появился на карте
	ZombieDamaged       EventType = "ZombieDamaged"       // Зомби получил урон
	ZombieKilled        EventType = "ZombieKilled"        // Зомби уничтожен
	ObstacleDestroyed   EventType = "ObstacleDestroyed"   // Препятствие разрушено
	ExplosionTriggered  EventType = "ExplosionTriggered"  // Бочка взорвалась
	DifficultyIncreased EventType = "DifficultyIncreased" // Множитель сложности вырос
	PlayerDefeated      EventType = "PlayerDefeated"      // Игрок проиграл
	WeaponPurchased     EventType = "WeaponPurchased"     // Оружие куплено
)

// KillData is the payload for ZombieKilled.
type KillData struct {
	ID     types.EntityID
	DefID  string
	Reward int
}

// ObstacleData is the payload for ObstacleDestroyed.
type ObstacleData struct {
	ID   types.EntityID
	Kind string
	X    float64
	Y    float64
}

// ExplosionData is the payload for ExplosionTriggered.
type ExplosionData struct {
	X      float64
	Y      float64
	Radius float64
}

// DefeatData is the payload for PlayerDefeated. It carries the full run
// statistics; nothing is persisted after the presentation layer reads it.
type DefeatData struct {
	SurvivalSeconds int
	Coins           int
	Kills           map[string]int
	WeaponsOwned    []string
}
