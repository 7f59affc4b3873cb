// internal/defs/types.go
package defs

import (
	"image/color"
)

// ObstacleKind defines the category of a static obstacle.
type ObstacleKind string

const (
	ObstacleWall   ObstacleKind = "WALL"
	ObstacleTree   ObstacleKind = "TREE"
	ObstacleBarrel ObstacleKind = "BARREL"
)

// ProjectileKind defines how a weapon's shot travels and collides.
type ProjectileKind string

const (
	ProjectilePoint ProjectileKind = "POINT"
	ProjectileBeam  ProjectileKind = "BEAM"
)

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color     color.RGBA `json:"color"`
	Radius    float32    `json:"radius"`
	HasStroke bool       `json:"has_stroke"`
}
