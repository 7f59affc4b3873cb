// internal/defs/zombies.go
package defs

import (
	"image/color"
)

// ZombieDefinition holds all the static data for a specific type of zombie.
type ZombieDefinition struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Health         int     `json:"health"`
	Speed          float64 `json:"speed"`
	Weight         int     `json:"weight"`
	Reward         int     `json:"reward"`
	MinSpawnTimeMs int     `json:"min_spawn_time_ms"`
	Guaranteed     bool    `json:"guaranteed"`
	Elite          bool    `json:"elite"`
	Visuals        Visuals `json:"visuals"`
}

// ZombieDefs lists every zombie definition in selection order. The spawner
// scans this slice, so earlier entries win weight ties.
var ZombieDefs = []ZombieDefinition{
	{
		ID:      "ZOMBIE_WALKER",
		Name:    "Walker",
		Health:  1,
		Speed:   55,
		Weight:  50,
		Reward:  10,
		Visuals: Visuals{Color: color.RGBA{R: 95, G: 160, B: 80, A: 255}, Radius: 12},
	},
	{
		ID:      "ZOMBIE_RUNNER",
		Name:    "Runner",
		Health:  1,
		Speed:   95,
		Weight:  30,
		Reward:  15,
		Visuals: Visuals{Color: color.RGBA{R: 170, G: 190, B: 70, A: 255}, Radius: 10},
	},
	{
		ID:             "ZOMBIE_BRUTE",
		Name:           "Brute",
		Health:         3,
		Speed:          40,
		Weight:         15,
		Reward:         30,
		MinSpawnTimeMs: 45000,
		Visuals:        Visuals{Color: color.RGBA{R: 140, G: 80, B: 60, A: 255}, Radius: 16},
	},
	{
		ID:             "ZOMBIE_BOSS",
		Name:           "Boss",
		Health:         8,
		Speed:          35,
		Weight:         5,
		Reward:         100,
		MinSpawnTimeMs: 15000,
		Guaranteed:     true,
		Elite:          true,
		Visuals:        Visuals{Color: color.RGBA{R: 130, G: 60, B: 150, A: 255}, Radius: 20, HasStroke: true},
	},
}

// ZombieLibrary maps zombie definitions by their ID.
var ZombieLibrary map[string]ZombieDefinition

func init() {
	ZombieLibrary = make(map[string]ZombieDefinition, len(ZombieDefs))
	for _, def := range ZombieDefs {
		ZombieLibrary[def.ID] = def
	}
}
