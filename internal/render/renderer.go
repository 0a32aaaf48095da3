// internal/render/renderer.go
package render

import (
	"image/color"
	"math"
	"slices"

	"go-top-down-shooter/internal/component"
	"go-top-down-shooter/internal/config"
	"go-top-down-shooter/internal/entity"
	"go-top-down-shooter/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteImage *ebiten.Image

// fillPath заливает замкнутый путь одним цветом.
func fillPath(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(color.White)
	}
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(vs, is, whiteImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Renderer рисует мир вокруг камеры. Мировые координаты: Y вверх, экранные: Y вниз.
type Renderer struct {
	sprites      *SpriteManager
	palette      Palette
	screenWidth  int
	screenHeight int
}

func NewRenderer(sprites *SpriteManager, palette Palette, screenWidth, screenHeight int) *Renderer {
	return &Renderer{
		sprites:      sprites,
		palette:      palette,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// WorldToScreen converts a world point to screen pixels for a camera at (camX, camY).
func (r *Renderer) WorldToScreen(x, y, camX, camY float64) (float64, float64) {
	return x - camX + float64(r.screenWidth)/2, float64(r.screenHeight)/2 - (y - camY)
}

func (r *Renderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.Fill(r.palette.Background)
	r.drawGrid(screen, ecs.Camera)

	// Порядок слоёв: враги, игрок, снаряды, оружие поверх всего.
	for _, id := range sortedKeys(ecs.Enemies) {
		r.drawEnemy(screen, ecs, id)
	}
	for _, id := range sortedKeys(ecs.Players) {
		r.drawSprite(screen, ecs, id, 1)
	}
	for _, id := range sortedKeys(ecs.Projectiles) {
		scale := 1.0
		if p := ecs.Projectiles[id]; p.Radius > 0 {
			scale = p.Radius / bulletSpriteRadius
		}
		r.drawSprite(screen, ecs, id, scale)
	}
	for _, id := range sortedKeys(ecs.Guns) {
		r.drawSprite(screen, ecs, id, 1)
	}
}

func (r *Renderer) drawGrid(screen *ebiten.Image, cam *component.Camera) {
	cell := config.BackgroundGridCells
	w, h := float64(r.screenWidth), float64(r.screenHeight)
	left := cam.X - w/2
	bottom := cam.Y - h/2

	for x := math.Floor(left/cell) * cell; x <= left+w; x += cell {
		sx, _ := r.WorldToScreen(x, 0, cam.X, cam.Y)
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(h), 1, r.palette.Grid, false)
	}
	for y := math.Floor(bottom/cell) * cell; y <= bottom+h; y += cell {
		_, sy := r.WorldToScreen(0, y, cam.X, cam.Y)
		vector.StrokeLine(screen, 0, float32(sy), float32(w), float32(sy), 1, r.palette.Grid, false)
	}

	// Границы мира.
	x0, y0 := r.WorldToScreen(-config.WorldWidth/2, config.WorldHeight/2, cam.X, cam.Y)
	vector.StrokeRect(screen, float32(x0), float32(y0), config.WorldWidth, config.WorldHeight,
		r.palette.StrokeWidth, DarkenColor(r.palette.EnemyStroke), false)
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID) {
	sprite, ok := ecs.Sprites[id]
	if !ok {
		return
	}
	img, ok := r.sprites.Frame(sprite.Image, sprite.Frame)
	if !ok {
		wt := ecs.WorldTransform(id)
		sx, sy := r.WorldToScreen(wt.X, wt.Y, ecs.Camera.X, ecs.Camera.Y)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), config.EnemyRadius, r.palette.Enemy, true)
		return
	}
	r.drawImage(screen, ecs, id, img, sprite.FlipY, 1)

	if flash, ok := ecs.DamageFlashes[id]; ok {
		c := config.DamageFlashColor
		c.A = uint8(180 * flash.Intensity())
		radius := float32(config.EnemyRadius)
		if enemy, ok := ecs.Enemies[id]; ok {
			radius = float32(enemy.Radius)
		}
		wt := ecs.WorldTransform(id)
		sx, sy := r.WorldToScreen(wt.X, wt.Y, ecs.Camera.X, ecs.Camera.Y)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), radius*0.6, c, true)
	}
}

func (r *Renderer) drawSprite(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID, scale float64) {
	sprite, ok := ecs.Sprites[id]
	if !ok {
		return
	}
	img, ok := r.sprites.Image(sprite.Image)
	if !ok {
		return
	}
	r.drawImage(screen, ecs, id, img, sprite.FlipY, scale)
}

// drawImage рисует img с центром в мировой позиции сущности. Мировой угол
// против часовой стрелки, поэтому на экране поворот инвертируется.
func (r *Renderer) drawImage(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID, img *ebiten.Image, flipY bool, scale float64) {
	wt := ecs.WorldTransform(id)
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	if flipY {
		op.GeoM.Scale(1, -1)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(-wt.Rotation)
	sx, sy := r.WorldToScreen(wt.X, wt.Y, ecs.Camera.X, ecs.Camera.Y)
	op.GeoM.Translate(sx, sy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// sortedKeys даёт стабильный порядок отрисовки.
func sortedKeys[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
