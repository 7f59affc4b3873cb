// internal/system/combat.go
package system

import (
	"log"
	"math"

	"github.com/aeft/zombie-shooter-game/internal/component"
	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/defs"
	"github.com/aeft/zombie-shooter-game/internal/entity"
	"github.com/aeft/zombie-shooter-game/internal/event"
	"github.com/aeft/zombie-shooter-game/internal/types"
)

// CombatGameContext определяет методы, которые CombatSystem требует от Game.
// Это помогает избежать циклических зависимостей.
type CombatGameContext interface {
	Defeat()
}

// CombatSystem управляет стрельбой, снарядами и контактным поражением.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	collision       *CollisionSystem
	explosion       *ExplosionSystem
	game            CombatGameContext
	pendingBarrels  []types.EntityID
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, collision *CollisionSystem, explosion *ExplosionSystem, game CombatGameContext) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		collision:       collision,
		explosion:       explosion,
		game:            game,
	}
}

// FireWeapon fires the current weapon from the player toward aimAngle.
// Ignored while the weapon cools down or after the run has ended.
func (s *CombatSystem) FireWeapon(aimAngle float64) {
	if s.ecs.Run.Over {
		return
	}

	_, player, pos := s.playerEntity()
	if player == nil || player.FireCooldown > 0 {
		return
	}

	weapon, ok := defs.WeaponLibrary[s.ecs.Run.CurrentWeapon]
	if !ok {
		log.Printf("Error: weapon definition not found for ID: %s", s.ecs.Run.CurrentWeapon)
		return
	}
	player.FireCooldown = float64(weapon.FireCooldownMs) / 1000

	muzzle := player.Radius + config.ProjectileRadius
	originX := pos.X + math.Cos(aimAngle)*muzzle
	originY := pos.Y + math.Sin(aimAngle)*muzzle

	switch weapon.Kind {
	case defs.ProjectileBeam:
		s.fireBeam(originX, originY, aimAngle, weapon)
	default:
		pellets := weapon.PelletCount
		if pellets < 1 {
			pellets = 1
		}
		for i := 0; i < pellets; i++ {
			s.spawnProjectile(originX, originY, aimAngle+pelletOffset(i, pellets, weapon.SpreadRad), weapon)
		}
	}
}

// pelletOffset spreads pellets into an even fan across [-spread, spread].
func pelletOffset(i, count int, spread float64) float64 {
	if count <= 1 || spread == 0 {
		return 0
	}
	step := 2 * spread / float64(count-1)
	return -spread + float64(i)*step
}

func (s *CombatSystem) spawnProjectile(x, y, angle float64, weapon defs.WeaponDefinition) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Projectiles[id] = &component.Projectile{
		Kind:      defs.ProjectilePoint,
		Damage:    weapon.Damage,
		Speed:     weapon.ProjectileSpeed,
		Direction: angle,
		TTL:       float64(weapon.ProjectileLifeMs) / 1000,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.ProjectileColor,
		Radius: config.ProjectileRadius,
	}
}

// fireBeam resolves a hitscan beam: damage lands immediately, the entity
// only carries the flash for rendering.
func (s *CombatSystem) fireBeam(x, y, angle float64, weapon defs.WeaponDefinition) {
	endX := x + math.Cos(angle)*weapon.BeamRange
	endY := y + math.Sin(angle)*weapon.BeamRange

	if hit, ok := s.collision.BeamFirstHit(x, y, endX, endY); ok {
		endX = x + (endX-x)*hit.T
		endY = y + (endY-y)*hit.T
		if hit.IsZombie {
			s.damageZombie(hit.ID, weapon.Damage)
		} else {
			s.hitObstacle(hit.ID, weapon.Damage)
		}
	}

	id := s.ecs.NewEntity()
	s.ecs.Beams[id] = &component.Beam{X1: x, Y1: y, X2: endX, Y2: endY, Width: weapon.BeamWidth}
	s.ecs.Projectiles[id] = &component.Projectile{
		Kind: defs.ProjectileBeam,
		TTL:  float64(weapon.ProjectileLifeMs) / 1000,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, player := range s.ecs.Players {
		if player.FireCooldown > 0 {
			player.FireCooldown -= deltaTime
		}
	}

	s.updateProjectiles(deltaTime)
	s.checkZombieTouch()

	// Все пары снаряд-препятствие разобраны, теперь можно взрывать.
	pending := s.pendingBarrels
	s.pendingBarrels = nil
	for _, barrelID := range pending {
		s.explosion.Explode(barrelID)
	}
}

func (s *CombatSystem) updateProjectiles(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		proj.TTL -= deltaTime
		if proj.TTL <= 0 {
			s.removeProjectile(id)
			continue
		}
		if proj.Kind == defs.ProjectileBeam {
			continue
		}

		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.removeProjectile(id)
			continue
		}
		pos.X += math.Cos(proj.Direction) * proj.Speed * deltaTime
		pos.Y += math.Sin(proj.Direction) * proj.Speed * deltaTime

		if zombieID, hit := s.collision.ZombieAt(pos.X, pos.Y, config.ProjectileRadius); hit {
			s.damageZombie(zombieID, proj.Damage)
			s.removeProjectile(id)
			continue
		}
		if obstacleID, hit := s.collision.HitObstacleAt(pos.X, pos.Y, config.ProjectileRadius); hit {
			s.hitObstacle(obstacleID, proj.Damage)
			s.removeProjectile(id)
		}
	}
}

// checkZombieTouch ends the run on direct contact, no grace period.
func (s *CombatSystem) checkZombieTouch() {
	if s.ecs.Run.Over {
		return
	}
	_, player, playerPos := s.playerEntity()
	if player == nil {
		return
	}

	for id := range s.ecs.Zombies {
		pos, hasPos := s.ecs.Positions[id]
		render, hasRender := s.ecs.Renderables[id]
		if !hasPos || !hasRender {
			continue
		}
		reach := player.Radius + float64(render.Radius)
		dx, dy := pos.X-playerPos.X, pos.Y-playerPos.Y
		if dx*dx+dy*dy < reach*reach {
			s.game.Defeat()
			return
		}
	}
}

func (s *CombatSystem) damageZombie(id types.EntityID, damage int) {
	ApplyDamage(s.ecs, id, damage)
	if health, ok := s.ecs.Healths[id]; ok && health.Value > 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.ZombieDamaged, Data: id})
	}
}

// hitObstacle handles a projectile landing on an obstacle's hit shape.
// Barrels queue an explosion; everything else spends hit points.
func (s *CombatSystem) hitObstacle(id types.EntityID, damage int) {
	obstacle, ok := s.ecs.Obstacles[id]
	if !ok {
		return
	}

	if obstacle.Kind == defs.ObstacleBarrel {
		if !obstacle.Exploding {
			obstacle.Exploding = true
			s.pendingBarrels = append(s.pendingBarrels, id)
		}
		return
	}

	obstacle.Health -= damage
	if obstacle.Health > 0 {
		return
	}
	data := event.ObstacleData{ID: id, Kind: string(obstacle.Kind)}
	if pos, ok := s.ecs.Positions[id]; ok {
		data.X, data.Y = pos.X, pos.Y
	}
	RemoveEntity(s.ecs, id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ObstacleDestroyed, Data: data})
}

func (s *CombatSystem) removeProjectile(id types.EntityID) {
	delete(s.ecs.Positions, id)
	delete(s.ecs.Projectiles, id)
	delete(s.ecs.Beams, id)
	delete(s.ecs.Renderables, id)
}

func (s *CombatSystem) playerEntity() (types.EntityID, *component.Player, *component.Position) {
	for id, player := range s.ecs.Players {
		if pos, ok := s.ecs.Positions[id]; ok {
			return id, player, pos
		}
	}
	return 0, nil, nil
}
