// internal/system/movement.go
package system

import (
	"go-top-down-shooter/internal/config"
	"go-top-down-shooter/internal/entity"
	"go-top-down-shooter/internal/input"
	"go-top-down-shooter/internal/types"
	"go-top-down-shooter/internal/utils"
)

// MovementSystem двигает игрока по вводу и врагов в сторону игрока.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// MovePlayer applies the movement axes of in to the player, keeping it
// inside the world.
func (s *MovementSystem) MovePlayer(playerID types.EntityID, in input.Snapshot, deltaTime float64) {
	player, ok := s.ecs.Players[playerID]
	if !ok {
		return
	}
	pos := s.ecs.Transforms[playerID]
	if pos == nil {
		return
	}
	dx, dy, length := utils.Normalize(in.MoveX, in.MoveY)
	if length == 0 {
		return
	}
	// Диагональ не быстрее прямого движения, но аналоговый ввод < 1 сохраняется.
	if length > 1 {
		length = 1
	}
	step := player.Speed * length * deltaTime
	halfW := config.WorldWidth/2 - player.Radius
	halfH := config.WorldHeight/2 - player.Radius
	pos.X = utils.Clamp(pos.X+dx*step, -halfW, halfW)
	pos.Y = utils.Clamp(pos.Y+dy*step, -halfH, halfH)
}

// Chase moves every enemy straight toward the target at its own speed.
func (s *MovementSystem) Chase(targetID types.EntityID, deltaTime float64) {
	if _, ok := s.ecs.Transforms[targetID]; !ok {
		return
	}
	target := s.ecs.WorldTransform(targetID)
	for id, enemy := range s.ecs.Enemies {
		pos := s.ecs.Transforms[id]
		if pos == nil {
			continue
		}
		dx, dy, dist := utils.Normalize(target.X-pos.X, target.Y-pos.Y)
		if dist == 0 {
			continue
		}
		moveDistance := enemy.Speed * deltaTime
		if dist <= moveDistance {
			pos.X, pos.Y = target.X, target.Y
			continue
		}
		pos.X += dx * moveDistance
		pos.Y += dy * moveDistance
	}
}

// CameraSystem keeps the camera on the player.
type CameraSystem struct {
	ecs *entity.ECS
}

func NewCameraSystem(ecs *entity.ECS) *CameraSystem {
	return &CameraSystem{ecs: ecs}
}

func (s *CameraSystem) Update(playerID types.EntityID) {
	if _, ok := s.ecs.Transforms[playerID]; !ok {
		return
	}
	wt := s.ecs.WorldTransform(playerID)
	s.ecs.Camera.X, s.ecs.Camera.Y = wt.X, wt.Y
}
