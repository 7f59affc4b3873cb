// internal/system/spawn.go
package system

import (
	"log"
	"math"

	"github.com/aeft/zombie-shooter-game/internal/component"
	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/defs"
	"github.com/aeft/zombie-shooter-game/internal/entity"
	"github.com/aeft/zombie-shooter-game/internal/event"
	"github.com/aeft/zombie-shooter-game/internal/schedule"
	"github.com/aeft/zombie-shooter-game/internal/types"
	"github.com/aeft/zombie-shooter-game/internal/utils"
)

const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
	edgeCount
)

// SpawnSystem выпускает зомби с краёв экрана и управляет темпом спавна.
type SpawnSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	queue           *schedule.Queue
	spawnTask       *schedule.Task
	eliteSpawned    bool
}

func NewSpawnSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, queue *schedule.Queue) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		queue:           queue,
	}
}

// Start places the opening batch and arms the repeating spawn task.
func (s *SpawnSystem) Start() {
	s.spawnInitialBatch()
	s.spawnTask = s.queue.Every(config.BaseSpawnInterval.Seconds(), func() { s.SpawnOne() })
}

// Stop cancels the repeating spawn task.
func (s *SpawnSystem) Stop() {
	if s.spawnTask != nil {
		s.spawnTask.Cancel()
		s.spawnTask = nil
	}
}

// Update пересчитывает множитель сложности по прошедшему времени.
func (s *SpawnSystem) Update(deltaTime float64) {
	s.RecalculateSpawnRate(s.ecs.GameTime)
}

// DifficultyMultiplier returns the spawn-rate multiplier for the given
// elapsed run time: flat for the first minute, then exponential growth
// every half minute, capped.
func DifficultyMultiplier(elapsedSeconds float64) float64 {
	if elapsedSeconds < config.DifficultyRampDelay {
		return 1.0
	}
	steps := math.Floor((elapsedSeconds - config.DifficultyRampDelay) / config.DifficultyWindow)
	multiplier := math.Pow(config.DifficultyGrowth, steps)
	if multiplier > config.DifficultyCap {
		return config.DifficultyCap
	}
	return multiplier
}

// RecalculateSpawnRate applies the multiplier for the given elapsed time.
// On a real change the spawn interval shrinks and the presentation layer
// is notified once.
func (s *SpawnSystem) RecalculateSpawnRate(elapsedSeconds float64) {
	multiplier := DifficultyMultiplier(elapsedSeconds)
	if math.Abs(multiplier-s.ecs.Run.Multiplier) <= config.DifficultyEpsilon {
		return
	}

	s.ecs.Run.Multiplier = multiplier
	if s.spawnTask != nil {
		s.queue.Reschedule(s.spawnTask, config.BaseSpawnInterval.Seconds()/multiplier)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.DifficultyIncreased, Data: multiplier})
}

// spawnInitialBatch выпускает стартовую толпу: по несколько обычных зомби
// с каждого края.
func (s *SpawnSystem) spawnInitialBatch() {
	for edge := 0; edge < edgeCount; edge++ {
		count := s.rng.IntnRange(config.InitialEdgeMinCount, config.InitialEdgeMaxCount)
		for i := 0; i < count; i++ {
			defID := s.chooseArchetype(true)
			if defID == "" {
				continue
			}
			x, y := s.edgePoint(edge)
			s.spawnZombie(defID, x, y)
		}
	}
}

// SpawnOne spawns a single zombie at a random edge. The guaranteed elite
// pre-empts weighted selection exactly once, as soon as its gate opens.
func (s *SpawnSystem) SpawnOne() types.EntityID {
	defID := ""
	if !s.eliteSpawned {
		if elite, ok := s.dueGuaranteedElite(); ok {
			s.eliteSpawned = true
			defID = elite
		}
	}
	if defID == "" {
		defID = s.chooseArchetype(false)
	}
	if defID == "" {
		return 0
	}

	x, y := s.edgePoint(s.rng.Intn(edgeCount))
	return s.spawnZombie(defID, x, y)
}

func (s *SpawnSystem) dueGuaranteedElite() (string, bool) {
	elapsedMs := s.ecs.GameTime * 1000
	for _, def := range defs.ZombieDefs {
		if def.Guaranteed && elapsedMs >= float64(def.MinSpawnTimeMs) {
			return def.ID, true
		}
	}
	return "", false
}

// chooseArchetype filters the roster by elapsed time and draws a weighted
// pick. Guaranteed archetypes never enter the pool; the one-shot path is
// their only way in.
func (s *SpawnSystem) chooseArchetype(initialBatch bool) string {
	elapsedMs := s.ecs.GameTime * 1000

	eligible := make([]defs.ZombieDefinition, 0, len(defs.ZombieDefs))
	for _, def := range defs.ZombieDefs {
		if def.Guaranteed {
			continue
		}
		if initialBatch && def.Elite {
			continue
		}
		if float64(def.MinSpawnTimeMs) > elapsedMs {
			continue
		}
		eligible = append(eligible, def)
	}
	if len(eligible) == 0 {
		log.Printf("WARNING: no eligible zombie archetypes at t=%.1fs", s.ecs.GameTime)
		return ""
	}

	if defID := s.rng.ChooseWeighted(eligible); defID != "" {
		return defID
	}
	return eligible[0].ID
}

// edgePoint returns a spawn point just outside the chosen screen edge,
// randomized along its span and kept away from the corners.
func (s *SpawnSystem) edgePoint(edge int) (float64, float64) {
	inset := config.InitialEdgeInset
	alongX := s.rng.FloatRange(inset, config.ScreenWidth-inset)
	alongY := s.rng.FloatRange(inset, config.ScreenHeight-inset)

	switch edge {
	case edgeTop:
		return alongX, -config.SpawnEdgeOffset
	case edgeRight:
		return config.ScreenWidth + config.SpawnEdgeOffset, alongY
	case edgeBottom:
		return alongX, config.ScreenHeight + config.SpawnEdgeOffset
	default:
		return -config.SpawnEdgeOffset, alongY
	}
}

func (s *SpawnSystem) spawnZombie(defID string, x, y float64) types.EntityID {
	def, ok := defs.ZombieLibrary[defID]
	if !ok {
		log.Printf("Error: zombie definition not found for ID: %s", defID)
		return 0
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.ecs.Healths[id] = &component.Health{Value: def.Health}
	s.ecs.Zombies[id] = &component.Zombie{DefID: defID}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    def.Visuals.Radius,
		HasStroke: def.Visuals.HasStroke,
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.ZombieSpawned, Data: id})
	return id
}
