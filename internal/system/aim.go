package system

import (
	"math"

	"go-top-down-shooter/internal/entity"
	"go-top-down-shooter/internal/input"
	"go-top-down-shooter/internal/types"
	"go-top-down-shooter/internal/utils"
)

// AimAngle returns the angle between the +X axis and the vector from the
// window centre to the cursor, with the screen Y axis flipped to point up.
// The result lies in (−π, π].
func AimAngle(cursorX, cursorY, width, height float64) float64 {
	dx := cursorX - width/2
	dy := -(cursorY - height/2)
	return utils.NormalizeAngle(math.Atan2(dy, dx))
}

// AimSystem turns the gun toward the cursor.
type AimSystem struct {
	ecs *entity.ECS
}

func NewAimSystem(ecs *entity.ECS) *AimSystem {
	return &AimSystem{ecs: ecs}
}

// Update stores the aim angle and facing on the gun. Without a cursor
// position the gun keeps its previous orientation and false is returned.
func (s *AimSystem) Update(gunID types.EntityID, in input.Snapshot) bool {
	if !in.HasCursor {
		return false
	}
	gun, ok := s.ecs.Guns[gunID]
	if !ok {
		return false
	}
	gun.Angle = AimAngle(in.CursorX, in.CursorY, in.WindowWidth, in.WindowHeight)
	gun.FacingLeft = in.CursorX-in.WindowWidth/2 < 0
	if sprite, ok := s.ecs.Sprites[gunID]; ok {
		sprite.FlipY = gun.FacingLeft
	}
	return true
}
