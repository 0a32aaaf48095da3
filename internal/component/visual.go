// internal/component/visual.go
package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // сколько ещё длится эффект
	Duration float64 // общая продолжительность эффекта
}

// Intensity returns how strong the flash still is, from 1 down to 0.
func (f *DamageFlash) Intensity() float64 {
	if f.Duration <= 0 || f.Timer <= 0 {
		return 0
	}
	return f.Timer / f.Duration
}
