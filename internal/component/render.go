// component/render.go
package component

import "go-top-down-shooter/internal/assets"

// Sprite — компонент для отрисовки
type Sprite struct {
	Image assets.Handle
	FlipY bool
	Frame int
}
