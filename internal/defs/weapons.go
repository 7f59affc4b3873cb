// internal/defs/weapons.go
package defs

// WeaponDefinition holds all the static data for a specific weapon.
type WeaponDefinition struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Kind             ProjectileKind `json:"kind"`
	Damage           int            `json:"damage"`
	Cost             int            `json:"cost"`
	FireCooldownMs   int            `json:"fire_cooldown_ms"`
	ProjectileSpeed  float64        `json:"projectile_speed"`
	ProjectileLifeMs int            `json:"projectile_life_ms"`
	PelletCount      int            `json:"pellet_count"`
	SpreadRad        float64        `json:"spread_rad"`
	BeamRange        float64        `json:"beam_range"`
	BeamWidth        float64        `json:"beam_width"`
}

// WeaponDefs lists every weapon definition in shop display order.
var WeaponDefs = []WeaponDefinition{
	{
		ID:               "WEAPON_PISTOL",
		Name:             "Pistol",
		Kind:             ProjectilePoint,
		Damage:           1,
		Cost:             0,
		FireCooldownMs:   350,
		ProjectileSpeed:  480,
		ProjectileLifeMs: 900,
		PelletCount:      1,
	},
	{
		ID:               "WEAPON_SHOTGUN",
		Name:             "Shotgun",
		Kind:             ProjectilePoint,
		Damage:           1,
		Cost:             150,
		FireCooldownMs:   800,
		ProjectileSpeed:  420,
		ProjectileLifeMs: 500,
		PelletCount:      5,
		SpreadRad:        0.35,
	},
	{
		ID:               "WEAPON_RAILGUN",
		Name:             "Railgun",
		Kind:             ProjectileBeam,
		Damage:           3,
		Cost:             400,
		FireCooldownMs:   1200,
		ProjectileLifeMs: 120,
		BeamRange:        600,
		BeamWidth:        6,
	},
}

// WeaponLibrary maps weapon definitions by their ID.
var WeaponLibrary map[string]WeaponDefinition

func init() {
	WeaponLibrary = make(map[string]WeaponDefinition, len(WeaponDefs))
	for _, def := range WeaponDefs {
		WeaponLibrary[def.ID] = def
	}
}
