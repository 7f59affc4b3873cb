// internal/entity/ecs.go
package entity

import (
	"github.com/aeft/zombie-shooter-game/internal/component"
	"github.com/aeft/zombie-shooter-game/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Players       map[types.EntityID]*component.Player
	Zombies       map[types.EntityID]*component.Zombie
	Projectiles   map[types.EntityID]*component.Projectile
	Beams         map[types.EntityID]*component.Beam
	Obstacles     map[types.EntityID]*component.Obstacle
	MoveShapes    map[types.EntityID]*component.MoveShape
	HitShapes     map[types.EntityID]*component.HitShape
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Explosions    map[types.EntityID]*component.Explosion
	Run           *component.RunState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Players:       make(map[types.EntityID]*component.Player),
		Zombies:       make(map[types.EntityID]*component.Zombie),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Beams:         make(map[types.EntityID]*component.Beam),
		Obstacles:     make(map[types.EntityID]*component.Obstacle),
		MoveShapes:    make(map[types.EntityID]*component.MoveShape),
		HitShapes:     make(map[types.EntityID]*component.HitShape),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Explosions:    make(map[types.EntityID]*component.Explosion),
		Run:           component.NewRunState("WEAPON_PISTOL"),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}
