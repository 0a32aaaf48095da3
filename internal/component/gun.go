package component

// GunState is exactly one of Ready, Shooting or Reloading.
type GunState interface {
	gunState()
}

// Ready — оружие свободно: можно стрелять или начать перезарядку.
type Ready struct{}

// Shooting — окно отдачи после выстрела. Remaining в секундах, >= 0.
type Shooting struct {
	Remaining float64
}

// Reloading — перезарядка. По истечении Remaining патроны восполняются.
type Reloading struct {
	Remaining float64
}

func (Ready) gunState()     {}
func (Shooting) gunState()  {}
func (Reloading) gunState() {}

// Gun — оружие игрока.
type Gun struct {
	Angle      float64 // угол прицела, (−π, π]
	FacingLeft bool    // курсор левее центра окна
	State      GunState
	Ammo       int
	MaxAmmo    int
}

// NewGun returns a loaded gun in the Ready state.
func NewGun(maxAmmo int) Gun {
	return Gun{
		State:   Ready{},
		Ammo:    maxAmmo,
		MaxAmmo: maxAmmo,
	}
}

// IsReady reports whether the gun is idle.
func (g *Gun) IsReady() bool {
	_, ok := g.State.(Ready)
	return ok
}
