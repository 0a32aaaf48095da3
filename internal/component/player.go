// internal/component/player.go
package component

// Player помечает сущность игрока.
type Player struct {
	Speed  float64
	Radius float64
}

// Level — корневой контейнер уровня. Всё, что к нему привязано,
// удаляется вместе с ним.
type Level struct {
	Name string
}

// Camera следует за игроком.
type Camera struct {
	X, Y float64
}
