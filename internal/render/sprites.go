// internal/render/sprites.go
package render

import (
	"image"
	"log"
	"math"

	"go-top-down-shooter/internal/assets"
	"go-top-down-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// bulletSpriteRadius is the radius the bullet image is generated at; bullets
// are scaled to their collider radius when drawn.
const bulletSpriteRadius = 8

// SpriteManager генерирует, кэширует и выгружает изображения по handle.
type SpriteManager struct {
	palette Palette
	images  map[assets.Handle]*ebiten.Image
	frames  map[assets.Handle]int
}

// NewSpriteManager создает пустой менеджер спрайтов.
func NewSpriteManager(palette Palette) *SpriteManager {
	return &SpriteManager{
		palette: palette,
		images:  make(map[assets.Handle]*ebiten.Image),
		frames:  make(map[assets.Handle]int),
	}
}

// Load builds every sprite of the library that is not cached yet. Unknown
// handles are skipped with a warning and draw as nothing.
func (m *SpriteManager) Load(lib assets.Library) {
	for _, h := range lib.All() {
		if h == "" {
			continue
		}
		if _, ok := m.images[h]; ok {
			continue
		}
		switch h {
		case lib.Gun.Gun:
			m.images[h] = m.gunImage()
		case lib.Gun.Bullet:
			m.images[h] = m.bulletImage()
		case lib.Enemy.Image:
			m.images[h] = m.enemySheet()
			m.frames[h] = config.EnemyFrameCount
		case lib.Level.Player:
			m.images[h] = m.playerImage()
		case lib.Level.Background:
			// Фон рисуется сеткой каждый кадр, отдельного изображения нет.
			continue
		default:
			log.Printf("WARNING: no generator for sprite %q", h)
			continue
		}
		log.Printf("Successfully generated sprite %s", h)
	}
}

// Cleanup выгружает все изображения.
func (m *SpriteManager) Cleanup() {
	for h, img := range m.images {
		img.Deallocate()
		delete(m.images, h)
	}
	m.frames = make(map[assets.Handle]int)
	log.Println("All sprites unloaded.")
}

// Reload выгружает все изображения и генерирует их заново.
func (m *SpriteManager) Reload(lib assets.Library) {
	log.Println("Reloading all sprites...")
	m.Cleanup()
	m.Load(lib)
	log.Println("All sprites reloaded.")
}

// Image returns the whole image for h.
func (m *SpriteManager) Image(h assets.Handle) (*ebiten.Image, bool) {
	img, ok := m.images[h]
	return img, ok
}

// Frame returns frame i of a sprite sheet. Single images ignore i.
func (m *SpriteManager) Frame(h assets.Handle, i int) (*ebiten.Image, bool) {
	img, ok := m.images[h]
	if !ok {
		return nil, false
	}
	count := m.frames[h]
	if count <= 1 {
		return img, true
	}
	i = ((i % count) + count) % count
	w := img.Bounds().Dx() / count
	height := img.Bounds().Dy()
	return img.SubImage(image.Rect(i*w, 0, (i+1)*w, height)).(*ebiten.Image), true
}

// gunImage — ствол вдоль +X, рукоять снизу.
func (m *SpriteManager) gunImage() *ebiten.Image {
	length := float32(config.GunLength)
	thick := float32(config.GunThickness)
	img := ebiten.NewImage(int(length), int(thick*2))
	vector.DrawFilledRect(img, 0, 0, length, thick, m.palette.Gun, true)
	vector.DrawFilledRect(img, length-4, 0, 4, thick, m.palette.Muzzle, true)
	vector.DrawFilledRect(img, 2, thick, thick*0.75, thick, DarkenColor(m.palette.Gun), true)
	return img
}

func (m *SpriteManager) bulletImage() *ebiten.Image {
	size := bulletSpriteRadius * 2
	img := ebiten.NewImage(size, size)
	r := float32(bulletSpriteRadius)
	vector.DrawFilledCircle(img, r, r, r, m.palette.Projectile, true)
	vector.DrawFilledCircle(img, r, r, r*0.5, LightenColor(m.palette.Projectile), true)
	return img
}

func (m *SpriteManager) playerImage() *ebiten.Image {
	r := float32(config.PlayerRadius)
	size := int(math.Ceil(float64(r)*2)) + 2
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	vector.DrawFilledCircle(img, c, c, r, m.palette.Player, true)
	vector.StrokeCircle(img, c, c, r, m.palette.StrokeWidth, LightenColor(m.palette.Player), true)
	return img
}

// enemySheet — лента из EnemyFrameCount кадров: тетраэдр, поворачивающийся
// на полный оборот за цикл анимации.
func (m *SpriteManager) enemySheet() *ebiten.Image {
	size := config.EnemySpriteSize
	img := ebiten.NewImage(size*config.EnemyFrameCount, size)
	r := float32(size)/2 - 2
	for f := 0; f < config.EnemyFrameCount; f++ {
		cx := float32(f*size) + float32(size)/2
		cy := float32(size) / 2
		base := 2 * math.Pi * float64(f) / config.EnemyFrameCount

		var path vector.Path
		for k := 0; k < 3; k++ {
			a := base + 2*math.Pi*float64(k)/3
			x := cx + r*float32(math.Cos(a))
			y := cy + r*float32(math.Sin(a))
			if k == 0 {
				path.MoveTo(x, y)
			} else {
				path.LineTo(x, y)
			}
		}
		path.Close()
		fillPath(img, &path, m.palette.Enemy)
		vector.DrawFilledCircle(img, cx, cy, r*0.25, m.palette.EnemyStroke, true)
	}
	return img
}
