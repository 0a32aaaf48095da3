// internal/utils/math.go
package utils

import "math"

// NormalizeAngle нормализует угол в диапазон (−π, π].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle <= -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// FromAngle возвращает единичный вектор направления angle.
func FromAngle(angle float64) (x, y float64) {
	sin, cos := math.Sincos(angle)
	return cos, sin
}

// Normalize возвращает единичный вектор (x, y) и его длину.
// Нулевой вектор остаётся нулевым.
func Normalize(x, y float64) (nx, ny, length float64) {
	length = math.Hypot(x, y)
	if length == 0 {
		return 0, 0, 0
	}
	return x / length, y / length, length
}

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
