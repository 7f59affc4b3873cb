// internal/app/game_test.go
package app

import (
	"testing"

	"github.com/aeft/zombie-shooter-game/internal/component"
	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/defs"
	"github.com/aeft/zombie-shooter-game/internal/event"
	"github.com/aeft/zombie-shooter-game/internal/types"
	"github.com/aeft/zombie-shooter-game/pkg/geom"
)

type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(eventType event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

func plantZombie(g *Game, defID string, x, y float64, health int) types.EntityID {
	def := defs.ZombieLibrary[defID]
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Healths[id] = &component.Health{Value: health}
	g.ECS.Zombies[id] = &component.Zombie{DefID: defID}
	g.ECS.Renderables[id] = &component.Renderable{Color: def.Visuals.Color, Radius: def.Visuals.Radius}
	return id
}

func plantBarrel(g *Game, x, y float64) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Obstacles[id] = &component.Obstacle{Kind: defs.ObstacleBarrel, Health: config.ObstacleStartHealth}
	g.ECS.MoveShapes[id] = &component.MoveShape{HalfW: config.BarrelMoveHalf, HalfH: config.BarrelMoveHalf}
	g.ECS.HitShapes[id] = &component.HitShape{HalfW: config.BarrelHitHalf, HalfH: config.BarrelHitHalf}
	return id
}

func TestNewGameBuildsSafeWorld(t *testing.T) {
	g := NewGame(1)

	placements := g.Layout.All()
	if len(g.ECS.Obstacles) != len(placements) {
		t.Fatalf("%d obstacle entities for %d placements", len(g.ECS.Obstacles), len(placements))
	}
	// Обе рамки живут на той же сущности, что и препятствие.
	if len(g.ECS.MoveShapes) != len(placements) || len(g.ECS.HitShapes) != len(placements) {
		t.Fatalf("shape maps out of step: %d move, %d hit, want %d each",
			len(g.ECS.MoveShapes), len(g.ECS.HitShapes), len(placements))
	}

	playerPos, ok := g.ECS.Positions[g.PlayerID]
	if !ok {
		t.Fatal("no player entity after build")
	}
	for _, p := range placements {
		if d := geom.Dist(playerPos.X, playerPos.Y, p.X, p.Y); d < config.SpawnSafeDistance {
			t.Fatalf("player spawned %.1f from a %s, want >= %v", d, p.Kind, config.SpawnSafeDistance)
		}
	}

	count := len(g.ECS.Zombies)
	if count < 4*config.InitialEdgeMinCount || count > 4*config.InitialEdgeMaxCount {
		t.Fatalf("initial batch of %d zombies, want between %d and %d",
			count, 4*config.InitialEdgeMinCount, 4*config.InitialEdgeMaxCount)
	}

	run := g.ECS.Run
	if run.Coins != 0 || run.Over || run.CurrentWeapon != "WEAPON_PISTOL" || run.Multiplier != 1.0 {
		t.Fatalf("stale run state after build: %+v", run)
	}
}

func TestTouchDefeatFreezesTheRun(t *testing.T) {
	g := NewGame(2)
	recorder := &eventRecorder{}
	g.EventDispatcher.Subscribe(event.PlayerDefeated, recorder)

	for i := 0; i < 5; i++ {
		g.Update(0.5)
	}

	playerPos := g.ECS.Positions[g.PlayerID]
	plantZombie(g, "ZOMBIE_WALKER", playerPos.X, playerPos.Y, 1)
	g.Update(1.0 / 60)

	if !g.ECS.Run.Over {
		t.Fatal("touching zombie did not end the run")
	}
	if got := g.ECS.Run.SurvivalSeconds; got != 2 {
		t.Fatalf("SurvivalSeconds = %d, want 2 (floor of elapsed time)", got)
	}
	if got := recorder.count(event.PlayerDefeated); got != 1 {
		t.Fatalf("PlayerDefeated dispatched %d times, want 1", got)
	}
	data, ok := recorder.events[0].Data.(event.DefeatData)
	if !ok || data.SurvivalSeconds != 2 {
		t.Fatalf("defeat payload = %#v, want SurvivalSeconds 2", recorder.events[0].Data)
	}

	// Мир заморожен: время и толпа больше не меняются.
	frozenTime := g.GetGameTime()
	frozenCount := len(g.ECS.Zombies)
	for i := 0; i < 10; i++ {
		g.Update(0.5)
	}
	if g.GetGameTime() != frozenTime {
		t.Fatalf("game time advanced after defeat: %.2f -> %.2f", frozenTime, g.GetGameTime())
	}
	if len(g.ECS.Zombies) != frozenCount {
		t.Fatalf("zombie count changed after defeat: %d -> %d", frozenCount, len(g.ECS.Zombies))
	}

	g.Defeat()
	if got := recorder.count(event.PlayerDefeated); got != 1 {
		t.Fatalf("repeated Defeat dispatched again: %d events", got)
	}
}

func TestKillCreditFlowsThroughCleanup(t *testing.T) {
	g := NewGame(3)
	recorder := &eventRecorder{}
	g.EventDispatcher.Subscribe(event.ZombieKilled, recorder)

	id := plantZombie(g, "ZOMBIE_WALKER", 100, 100, 1)
	g.ECS.Healths[id].Value = 0
	g.Update(1.0 / 60)

	if _, ok := g.ECS.Zombies[id]; ok {
		t.Fatal("dead zombie not removed by cleanup")
	}
	if _, ok := g.ECS.Positions[id]; ok {
		t.Fatal("dead zombie left a position behind")
	}
	if got := recorder.count(event.ZombieKilled); got != 1 {
		t.Fatalf("ZombieKilled dispatched %d times, want 1", got)
	}
	kill := recorder.events[0].Data.(event.KillData)
	if kill.ID != id || kill.DefID != "ZOMBIE_WALKER" || kill.Reward != 10 {
		t.Fatalf("kill payload = %+v", kill)
	}

	run := g.ECS.Run
	if run.Coins != 10 {
		t.Fatalf("Coins = %d, want the walker reward 10", run.Coins)
	}
	if run.Kills["ZOMBIE_WALKER"] != 1 {
		t.Fatalf("kill tally = %v, want one walker", run.Kills)
	}
}

func TestPurchaseWeaponFlow(t *testing.T) {
	g := NewGame(4)
	recorder := &eventRecorder{}
	g.EventDispatcher.Subscribe(event.WeaponPurchased, recorder)
	run := g.ECS.Run

	if g.PurchaseWeapon("WEAPON_SHOTGUN") {
		t.Fatal("bought a shotgun with no coins")
	}
	if run.CurrentWeapon != "WEAPON_PISTOL" {
		t.Fatalf("failed purchase switched the weapon to %s", run.CurrentWeapon)
	}

	run.Coins = 150
	if !g.PurchaseWeapon("WEAPON_SHOTGUN") {
		t.Fatal("purchase failed with exact funds")
	}
	if run.Coins != 0 || run.CurrentWeapon != "WEAPON_SHOTGUN" || !run.Owns("WEAPON_SHOTGUN") {
		t.Fatalf("purchase left run in a bad state: coins %d, current %s", run.Coins, run.CurrentWeapon)
	}
	if got := recorder.count(event.WeaponPurchased); got != 1 {
		t.Fatalf("WeaponPurchased dispatched %d times, want 1", got)
	}

	// Повторный выбор купленного — переключение, не покупка.
	if !g.PurchaseWeapon("WEAPON_PISTOL") {
		t.Fatal("switching to an owned weapon failed")
	}
	if run.CurrentWeapon != "WEAPON_PISTOL" || run.Coins != 0 {
		t.Fatalf("switch mutated the purse: coins %d, current %s", run.Coins, run.CurrentWeapon)
	}
	if got := recorder.count(event.WeaponPurchased); got != 1 {
		t.Fatalf("switching announced a purchase: %d events", got)
	}

	if g.PurchaseWeapon("WEAPON_UNKNOWN") {
		t.Fatal("bought a weapon that has no definition")
	}

	g.Defeat()
	if g.PurchaseWeapon("WEAPON_RAILGUN") {
		t.Fatal("shop still open after the run ended")
	}
}

func TestChainExplosionRunsOnGameTicks(t *testing.T) {
	g := NewGame(5)
	recorder := &eventRecorder{}
	g.EventDispatcher.Subscribe(event.ExplosionTriggered, recorder)

	first := plantBarrel(g, 400, 400)
	second := plantBarrel(g, 470, 400)

	g.ExplosionSystem.Explode(first)
	if got := recorder.count(event.ExplosionTriggered); got != 1 {
		t.Fatalf("trigger produced %d explosions, want 1", got)
	}
	if !g.ECS.Obstacles[second].Exploding {
		t.Fatal("nearby barrel not chained")
	}

	// Задержка цепи отрабатывает на обычных тиках игры.
	g.Update(0.06)
	if got := recorder.count(event.ExplosionTriggered); got != 1 {
		t.Fatalf("chained barrel fired before its delay: %d explosions", got)
	}
	g.Update(0.06)
	if got := recorder.count(event.ExplosionTriggered); got != 2 {
		t.Fatalf("chained barrel missed its delay: %d explosions", got)
	}
	if _, ok := g.ECS.Obstacles[second]; ok {
		t.Fatal("chained barrel still present after detonating")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := NewGame(6)

	g.TogglePause()
	if !g.IsPaused() {
		t.Fatal("TogglePause did not pause")
	}

	count := len(g.ECS.Zombies)
	g.Update(5.0)
	if g.GetGameTime() != 0 {
		t.Fatalf("time advanced while paused: %.2f", g.GetGameTime())
	}
	if len(g.ECS.Zombies) != count {
		t.Fatalf("spawns ticked while paused: %d -> %d", count, len(g.ECS.Zombies))
	}

	g.FireWeapon(0)
	if len(g.ECS.Projectiles) != 0 {
		t.Fatal("weapon fired while paused")
	}

	g.TogglePause()
	g.Update(0.5)
	if g.GetGameTime() != 0.5 {
		t.Fatalf("time did not resume: %.2f", g.GetGameTime())
	}
}

func TestResetStartsFreshRun(t *testing.T) {
	g := NewGame(7)
	g.Update(0.5)
	g.Update(0.5)
	g.ECS.Run.Coins = 99
	g.Defeat()

	oldECS := g.ECS
	g.Reset()

	if g.ECS == oldECS {
		t.Fatal("Reset reused the old world")
	}
	run := g.ECS.Run
	if run.Over || run.Coins != 0 || run.SurvivalSeconds != 0 {
		t.Fatalf("run state survived the reset: %+v", run)
	}
	if g.GetGameTime() != 0 {
		t.Fatalf("game time survived the reset: %.2f", g.GetGameTime())
	}
	if len(g.ECS.Obstacles) != len(g.Layout.All()) {
		t.Fatalf("rebuilt world has %d obstacles, want %d", len(g.ECS.Obstacles), len(g.Layout.All()))
	}
	if len(g.ECS.Zombies) == 0 {
		t.Fatal("no opening batch after reset")
	}
	if g.Queue.Len() == 0 {
		t.Fatal("no spawn task armed after reset")
	}

	g.Update(0.5)
	if g.GetGameTime() != 0.5 {
		t.Fatalf("rebuilt game does not tick: %.2f", g.GetGameTime())
	}
}
