package component

// Enemy представляет вражескую сущность, преследующую игрока.
type Enemy struct {
	DefID  string
	Health float64
	Speed  float64
	Radius float64
}

// EnemyAnimation — покадровая анимация с повторяющимся таймером.
type EnemyAnimation struct {
	Elapsed       float64
	FrameDuration float64
	FrameCount    int
	Frame         int
	Changed       bool // кадр сменился на последнем тике
}
