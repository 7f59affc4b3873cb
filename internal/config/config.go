// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 960
	MaxDeltaTime = 0.06

	PlayerRadius = 14.0
	PlayerSpeed  = 170.0

	ProjectileRadius = 4.0

	// Layout generation (distances between placements).
	TreeWallMinDistance = 50.0
	BarrelMinDistance   = 60.0
	PlayerZoneRadius    = 150.0
	LandmarkZoneRadius  = 170.0

	// Spawn safety search.
	SpawnSafeDistance   = 80.0
	SpawnSearchAttempts = 100
	SpawnSearchRadius   = 200.0

	// Zombie spawning and difficulty.
	BaseSpawnInterval   = 2 * time.Second
	SpawnEdgeOffset     = 36.0
	InitialEdgeMinCount = 3
	InitialEdgeMaxCount = 5
	InitialEdgeInset    = 60.0
	DifficultyRampDelay = 60.0 // seconds before the multiplier starts growing
	DifficultyWindow    = 30.0 // seconds per growth step
	DifficultyGrowth    = 1.3
	DifficultyCap       = 3.0
	DifficultyEpsilon   = 0.01

	// Chain reactions.
	BarrelExplosionRadius = 130.0
	ChainDelayBase        = 100 * time.Millisecond
	ChainDelayStep        = 50 * time.Millisecond

	// Visual feedback timers.
	ExplosionEffectDuration = 0.4
	DamageFlashDuration     = 0.15
	BannerDuration          = 2.5
)

// Obstacle bounds: movement half extents are tight so bodies brush past,
// hit half extents are generous so projectiles connect believably.
const (
	WallMoveHalf   = 20.0
	WallHitHalf    = 26.0
	TreeMoveHalf   = 13.0
	TreeHitHalf    = 29.0
	BarrelMoveHalf = 11.0
	BarrelHitHalf  = 20.0

	// Projectile hits an obstacle can absorb before it breaks.
	ObstacleStartHealth = 1
)

var (
	BackgroundColor = color.RGBA{24, 26, 20, 255}
	PlayerColor     = color.RGBA{240, 240, 230, 255}
	WallColor       = color.RGBA{110, 110, 120, 255}
	TreeColor       = color.RGBA{52, 120, 60, 255}
	TreeTrunkColor  = color.RGBA{96, 70, 44, 255}
	BarrelColor     = color.RGBA{190, 70, 40, 255}
	ProjectileColor = color.RGBA{255, 230, 120, 255}
	BeamColor       = color.RGBA{120, 220, 255, 255}
	ExplosionColor  = color.RGBA{255, 150, 40, 160}
	EliteStroke     = color.RGBA{255, 215, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{150, 150, 150, 255}
	DefeatColor     = color.RGBA{220, 60, 60, 255}
	BannerColor     = color.RGBA{255, 170, 60, 255}
	FlashColor      = color.RGBA{255, 255, 255, 255}
)
