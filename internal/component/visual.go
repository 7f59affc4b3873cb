// internal/component/visual.go
package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}

// Explosion is the expanding ring drawn for an explosion event.
type Explosion struct {
	MaxRadius    float64
	Duration     float64
	CurrentTimer float64
}
