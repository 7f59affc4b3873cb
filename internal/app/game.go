// internal/app/game.go
package app

import (
	"log"

	"github.com/aeft/zombie-shooter-game/internal/component"
	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/defs"
	"github.com/aeft/zombie-shooter-game/internal/entity"
	"github.com/aeft/zombie-shooter-game/internal/event"
	"github.com/aeft/zombie-shooter-game/internal/level"
	"github.com/aeft/zombie-shooter-game/internal/schedule"
	"github.com/aeft/zombie-shooter-game/internal/system"
	"github.com/aeft/zombie-shooter-game/internal/types"
	"github.com/aeft/zombie-shooter-game/internal/utils"
	"github.com/aeft/zombie-shooter-game/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game holds the main game state and logic.
type Game struct {
	ECS                *entity.ECS
	CollisionSystem    *system.CollisionSystem
	MovementSystem     *system.MovementSystem
	SpawnSystem        *system.SpawnSystem
	CombatSystem       *system.CombatSystem
	ExplosionSystem    *system.ExplosionSystem
	VisualEffectSystem *system.VisualEffectSystem
	PlayerSystem       *system.PlayerSystem
	RenderSystem       *system.RenderSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	Queue              *schedule.Queue
	Layout             level.Layout
	PlayerID           types.EntityID

	gameTime float64
	isPaused bool
	seed     int64
}

// NewGame initializes a new game instance. Seed 0 means time-based.
func NewGame(seed int64) *Game {
	g := &Game{seed: seed}
	g.build()
	return g
}

// build wires a fresh world: new ECS, new systems, new layout, armed
// spawner. Everything from the previous run is dropped wholesale, so no
// stale timers can fire into the new world.
func (g *Game) build() {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()

	g.ECS = ecs
	g.EventDispatcher = eventDispatcher
	g.Rng = utils.NewPRNGService(g.seed)
	g.Queue = schedule.NewQueue()
	g.gameTime = 0
	g.isPaused = false

	g.CollisionSystem = system.NewCollisionSystem(ecs)
	g.MovementSystem = system.NewMovementSystem(ecs, g.CollisionSystem)
	g.ExplosionSystem = system.NewExplosionSystem(ecs, eventDispatcher, g.Queue, g)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, g.CollisionSystem, g.ExplosionSystem, g)
	g.SpawnSystem = system.NewSpawnSystem(ecs, eventDispatcher, g.Rng, g.Queue)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.PlayerSystem = system.NewPlayerSystem(ecs)
	g.RenderSystem = system.NewRenderSystem(ecs)

	eventDispatcher.Subscribe(event.ZombieKilled, g.PlayerSystem)

	g.Layout = level.DefaultLayout()
	g.spawnObstacles(g.Layout)
	g.spawnPlayer()
	g.SpawnSystem.Start()
}

// Reset tears the current run down and starts a fresh one.
func (g *Game) Reset() {
	g.SpawnSystem.Stop()
	g.Queue.Clear()
	g.build()
}

func (g *Game) Update(deltaTime float64) {
	if g.isPaused {
		return
	}
	if g.ECS.Run.Over {
		// Мир заморожен, дорисовываем только эффекты.
		g.VisualEffectSystem.Update(deltaTime)
		return
	}

	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.Queue.Advance(deltaTime)
	g.SpawnSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
	g.cleanupDestroyedEntities()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.RenderSystem.Draw(screen)
}

// cleanupDestroyedEntities removes dead zombies and credits their kills.
func (g *Game) cleanupDestroyedEntities() {
	for id := range g.ECS.Zombies {
		health, hasHealth := g.ECS.Healths[id]
		if !hasHealth || health.Value > 0 {
			continue
		}

		defID := g.ECS.Zombies[id].DefID
		reward := 0
		if def, ok := defs.ZombieLibrary[defID]; ok {
			reward = def.Reward
		}

		system.RemoveEntity(g.ECS, id)
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.ZombieKilled,
			Data: event.KillData{ID: id, DefID: defID, Reward: reward},
		})
	}
}

// Defeat ends the run exactly once and freezes the simulation.
func (g *Game) Defeat() {
	if g.ECS.Run.Over {
		return
	}
	run := g.ECS.Run
	run.Over = true
	run.SurvivalSeconds = int(g.gameTime)

	g.SpawnSystem.Stop()
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.PlayerDefeated,
		Data: event.DefeatData{
			SurvivalSeconds: run.SurvivalSeconds,
			Coins:           run.Coins,
			Kills:           run.Kills,
			WeaponsOwned:    run.WeaponsOwned,
		},
	})
}

// FireWeapon стреляет из текущего оружия в направлении aimAngle.
func (g *Game) FireWeapon(aimAngle float64) {
	if g.isPaused {
		return
	}
	g.CombatSystem.FireWeapon(aimAngle)
}

// PurchaseWeapon buys the weapon if affordable, or just switches to it
// when it is already owned. Reports whether anything was applied.
func (g *Game) PurchaseWeapon(itemID string) bool {
	if g.ECS.Run.Over {
		return false
	}
	weapon, ok := defs.WeaponLibrary[itemID]
	if !ok {
		log.Printf("Error: weapon definition not found for ID: %s", itemID)
		return false
	}

	run := g.ECS.Run
	for _, owned := range run.WeaponsOwned {
		if owned == itemID {
			run.CurrentWeapon = itemID
			return true
		}
	}

	if run.Coins < weapon.Cost {
		return false
	}
	run.Coins -= weapon.Cost
	run.WeaponsOwned = append(run.WeaponsOwned, itemID)
	run.CurrentWeapon = itemID

	g.EventDispatcher.Dispatch(event.Event{Type: event.WeaponPurchased, Data: itemID})
	return true
}

// SetPlayerInput passes the raw movement direction for this tick.
func (g *Game) SetPlayerInput(dx, dy float64) {
	if player, ok := g.ECS.Players[g.PlayerID]; ok {
		player.InputX = dx
		player.InputY = dy
	}
}

func (g *Game) TogglePause() {
	g.isPaused = !g.isPaused
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

func (g *Game) spawnObstacles(layout level.Layout) {
	for _, placement := range layout.All() {
		moveHalf, hitHalf := obstacleHalves(placement.Kind)

		id := g.ECS.NewEntity()
		g.ECS.Positions[id] = &component.Position{X: placement.X, Y: placement.Y}
		g.ECS.Obstacles[id] = &component.Obstacle{
			Kind:     placement.Kind,
			Health:   config.ObstacleStartHealth,
			Landmark: placement.Landmark,
		}
		g.ECS.MoveShapes[id] = &component.MoveShape{HalfW: moveHalf, HalfH: moveHalf}
		g.ECS.HitShapes[id] = &component.HitShape{HalfW: hitHalf, HalfH: hitHalf}
	}
}

func obstacleHalves(kind defs.ObstacleKind) (float64, float64) {
	switch kind {
	case defs.ObstacleTree:
		return config.TreeMoveHalf, config.TreeHitHalf
	case defs.ObstacleBarrel:
		return config.BarrelMoveHalf, config.BarrelHitHalf
	default:
		return config.WallMoveHalf, config.WallHitHalf
	}
}

func (g *Game) spawnPlayer() {
	bounds := geom.Rect{
		X:     config.ScreenWidth / 2,
		Y:     config.ScreenHeight / 2,
		HalfW: config.ScreenWidth / 2,
		HalfH: config.ScreenHeight / 2,
	}
	x, y := level.FindSafeSpawn(g.Layout.All(), bounds, g.Rng)

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Players[id] = &component.Player{
		Radius: config.PlayerRadius,
		Speed:  config.PlayerSpeed,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  config.PlayerColor,
		Radius: float32(config.PlayerRadius),
	}
	g.PlayerID = id
}
