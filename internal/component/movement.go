// component/movement.go
package component

import "math"

// Transform — положение и поворот сущности относительно родителя.
// Ось Y направлена вверх, Rotation в радианах против часовой стрелки.
type Transform struct {
	X, Y     float64
	Rotation float64
}

// Compose returns child expressed in the frame this transform describes.
func (t Transform) Compose(child Transform) Transform {
	sin, cos := math.Sincos(t.Rotation)
	return Transform{
		X:        t.X + child.X*cos - child.Y*sin,
		Y:        t.Y + child.X*sin + child.Y*cos,
		Rotation: t.Rotation + child.Rotation,
	}
}

// Velocity — скорость для ручного интегрирования (пикселей в секунду).
type Velocity struct {
	X, Y float64
}
