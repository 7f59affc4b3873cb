// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadAll replaces the built-in definitions with the JSON files under dir.
// The built-ins stay in place when the directory is missing.
func LoadAll(dir string) error {
	if err := LoadZombieDefinitions(filepath.Join(dir, "zombies.json")); err != nil {
		return err
	}
	if err := LoadWeaponDefinitions(filepath.Join(dir, "weapons.json")); err != nil {
		return err
	}
	return nil
}

// LoadZombieDefinitions reads the zombie configuration file and replaces the
// built-in roster with its contents.
func LoadZombieDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read zombie definitions file: %w", err)
	}

	var zombieDefs []ZombieDefinition
	if err := json.Unmarshal(file, &zombieDefs); err != nil {
		return fmt.Errorf("failed to unmarshal zombie definitions: %w", err)
	}

	ZombieDefs = zombieDefs
	ZombieLibrary = make(map[string]ZombieDefinition, len(zombieDefs))
	for _, def := range zombieDefs {
		ZombieLibrary[def.ID] = def
	}

	fmt.Printf("Loaded %d zombie definitions\n", len(ZombieLibrary))
	return nil
}

// LoadWeaponDefinitions reads the weapon configuration file and replaces the
// built-in arsenal with its contents.
func LoadWeaponDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(file, &weaponDefs); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	WeaponDefs = weaponDefs
	WeaponLibrary = make(map[string]WeaponDefinition, len(weaponDefs))
	for _, def := range weaponDefs {
		WeaponLibrary[def.ID] = def
	}

	fmt.Printf("Loaded %d weapon definitions\n", len(WeaponLibrary))
	return nil
}
