// internal/level/candidates.go
package level

import (
	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/defs"
	"github.com/aeft/zombie-shooter-game/pkg/geom"
)

// The landmark glyph is a block-letter Z built from wall segments near the
// top of the arena. Its center anchors the landmark protected zone.
const (
	glyphCenterX = 640.0
	glyphCenterY = 200.0
)

func wall(x, y float64) Placement {
	return Placement{Kind: defs.ObstacleWall, X: x, Y: y}
}

func glyphWall(x, y float64) Placement {
	return Placement{Kind: defs.ObstacleWall, X: x, Y: y, Landmark: true}
}

func tree(x, y float64) Placement {
	return Placement{Kind: defs.ObstacleTree, X: x, Y: y}
}

func barrel(x, y float64) Placement {
	return Placement{Kind: defs.ObstacleBarrel, X: x, Y: y}
}

// DefaultWallCandidates returns the authored wall list: the landmark glyph
// first, then the structural clusters scattered around the arena.
func DefaultWallCandidates() []Placement {
	return []Placement{
		// Верхняя перекладина буквы Z.
		glyphWall(552, 112), glyphWall(596, 112), glyphWall(640, 112), glyphWall(684, 112), glyphWall(728, 112),
		// Диагональ.
		glyphWall(684, 156), glyphWall(640, 200), glyphWall(596, 244),
		// Нижняя перекладина.
		glyphWall(552, 288), glyphWall(596, 288), glyphWall(640, 288), glyphWall(684, 288), glyphWall(728, 288),

		// Structural clusters.
		wall(250, 700), wall(294, 700), wall(250, 656),
		wall(1030, 700), wall(986, 700), wall(1030, 744),
		wall(200, 300), wall(200, 344),
		wall(1080, 260), wall(1080, 304),
		wall(900, 480), wall(944, 480),
		wall(380, 140),
	}
}

// DefaultTreeCandidates returns the authored tree list. A few entries sit
// deliberately close to walls or inside protected zones and are expected
// to be filtered out.
func DefaultTreeCandidates() []Placement {
	return []Placement{
		tree(150, 480),
		tree(330, 850),
		tree(950, 860),
		tree(1150, 560),
		tree(180, 760),
		tree(450, 380),
		tree(830, 620),
		tree(1060, 120),
		tree(90, 90),
		tree(1190, 880),
		tree(520, 760),
		tree(760, 90),  // прижато к глифу — отсеется
		tree(270, 690), // прижато к кластеру стен — отсеется
		tree(620, 470), // внутри зоны игрока — отсеется
	}
}

// DefaultBarrelCandidates returns the authored barrel list, again with a
// couple of entries that the filter is expected to drop.
func DefaultBarrelCandidates() []Placement {
	return []Placement{
		barrel(420, 620),
		barrel(860, 330),
		barrel(150, 150),
		barrel(1130, 820),
		barrel(640, 840),
		barrel(320, 240),
		barrel(300, 680), // прижато к кластеру стен — отсеется
		barrel(700, 520), // внутри зоны игрока — отсеется
	}
}

// DefaultZones returns the protected zones for the authored arena: one
// around the player spawn, one around the landmark glyph.
func DefaultZones() []Zone {
	return []Zone{
		{
			Circle:         geom.Circle{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2, Radius: config.PlayerZoneRadius},
			LandmarkExempt: true,
		},
		{
			Circle:         geom.Circle{X: glyphCenterX, Y: glyphCenterY, Radius: config.LandmarkZoneRadius},
			LandmarkExempt: true,
		},
	}
}

// DefaultLayout runs the generator over the authored candidate lists.
func DefaultLayout() Layout {
	return Generate(DefaultWallCandidates(), DefaultTreeCandidates(), DefaultBarrelCandidates(), DefaultZones())
}
