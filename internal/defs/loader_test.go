// internal/defs/loader_test.go
package defs

import (
	"os"
	"path/filepath"
	"testing"
)

// snapshotDefs restores the built-in libraries after a test that loads
// replacement files.
func snapshotDefs(t *testing.T) {
	t.Helper()
	oldZombieDefs, oldZombieLibrary := ZombieDefs, ZombieLibrary
	oldWeaponDefs, oldWeaponLibrary := WeaponDefs, WeaponLibrary
	t.Cleanup(func() {
		ZombieDefs, ZombieLibrary = oldZombieDefs, oldZombieLibrary
		WeaponDefs, WeaponLibrary = oldWeaponDefs, oldWeaponLibrary
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestLoadZombieDefinitionsReplacesRoster(t *testing.T) {
	snapshotDefs(t)
	path := filepath.Join(t.TempDir(), "zombies.json")
	writeFile(t, path, `[
		{
			"id": "ZOMBIE_CRAWLER",
			"name": "Crawler",
			"health": 4,
			"speed": 25,
			"weight": 10,
			"reward": 40,
			"min_spawn_time_ms": 30000,
			"visuals": {"color": {"R": 10, "G": 20, "B": 30, "A": 255}, "radius": 18}
		}
	]`)

	if err := LoadZombieDefinitions(path); err != nil {
		t.Fatalf("LoadZombieDefinitions: %v", err)
	}

	if len(ZombieDefs) != 1 {
		t.Fatalf("roster has %d entries, want 1", len(ZombieDefs))
	}
	def, ok := ZombieLibrary["ZOMBIE_CRAWLER"]
	if !ok {
		t.Fatal("loaded zombie missing from the library")
	}
	if def.Health != 4 || def.Speed != 25 || def.MinSpawnTimeMs != 30000 {
		t.Fatalf("loaded definition mangled: %+v", def)
	}
	if def.Visuals.Radius != 18 || def.Visuals.Color.B != 30 {
		t.Fatalf("loaded visuals mangled: %+v", def.Visuals)
	}
	if _, ok := ZombieLibrary["ZOMBIE_WALKER"]; ok {
		t.Fatal("built-in roster not replaced")
	}
}

func TestLoadWeaponDefinitionsReplacesArsenal(t *testing.T) {
	snapshotDefs(t)
	path := filepath.Join(t.TempDir(), "weapons.json")
	writeFile(t, path, `[
		{
			"id": "WEAPON_SMG",
			"name": "SMG",
			"kind": "POINT",
			"damage": 1,
			"cost": 250,
			"fire_cooldown_ms": 120,
			"projectile_speed": 520,
			"projectile_life_ms": 700,
			"pellet_count": 1
		}
	]`)

	if err := LoadWeaponDefinitions(path); err != nil {
		t.Fatalf("LoadWeaponDefinitions: %v", err)
	}

	def, ok := WeaponLibrary["WEAPON_SMG"]
	if !ok {
		t.Fatal("loaded weapon missing from the library")
	}
	if def.Kind != ProjectilePoint || def.FireCooldownMs != 120 || def.Cost != 250 {
		t.Fatalf("loaded definition mangled: %+v", def)
	}
}

func TestLoadAllKeepsBuiltinsOnMissingDir(t *testing.T) {
	snapshotDefs(t)

	if err := LoadAll(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}

	if _, ok := ZombieLibrary["ZOMBIE_WALKER"]; !ok {
		t.Fatal("built-in zombie roster lost after a failed load")
	}
	if _, ok := WeaponLibrary["WEAPON_PISTOL"]; !ok {
		t.Fatal("built-in arsenal lost after a failed load")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	snapshotDefs(t)
	path := filepath.Join(t.TempDir(), "zombies.json")
	writeFile(t, path, `{"not": "a list"`)

	if err := LoadZombieDefinitions(path); err == nil {
		t.Fatal("expected an unmarshal error")
	}
}
