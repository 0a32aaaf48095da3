// internal/entity/ecs.go
package entity

import (
	"errors"
	"fmt"
	"slices"

	"go-top-down-shooter/internal/component"
	"go-top-down-shooter/internal/physics"
	"go-top-down-shooter/internal/types"
)

var (
	// ErrNoGun means the session lost its only gun entity.
	ErrNoGun = errors.New("no gun entity")
	// ErrMultipleGuns means more than one gun entity exists; only one
	// player-controlled gun per session is supported.
	ErrMultipleGuns = errors.New("more than one gun entity")
)

type ECS struct {
	GameTime        float64
	NextID          types.EntityID
	Transforms      map[types.EntityID]*component.Transform
	Parents         map[types.EntityID]types.EntityID
	Sprites         map[types.EntityID]*component.Sprite
	Velocities      map[types.EntityID]*component.Velocity
	Guns            map[types.EntityID]*component.Gun
	Projectiles     map[types.EntityID]*component.Projectile
	RigidBodies     map[types.EntityID]*component.RigidBody
	Players         map[types.EntityID]*component.Player
	Enemies         map[types.EntityID]*component.Enemy
	EnemyAnimations map[types.EntityID]*component.EnemyAnimation
	Levels          map[types.EntityID]*component.Level
	DamageFlashes   map[types.EntityID]*component.DamageFlash
	Camera          *component.Camera
}

func NewECS() *ECS {
	return &ECS{
		NextID:          1,
		Transforms:      make(map[types.EntityID]*component.Transform),
		Parents:         make(map[types.EntityID]types.EntityID),
		Sprites:         make(map[types.EntityID]*component.Sprite),
		Velocities:      make(map[types.EntityID]*component.Velocity),
		Guns:            make(map[types.EntityID]*component.Gun),
		Projectiles:     make(map[types.EntityID]*component.Projectile),
		RigidBodies:     make(map[types.EntityID]*component.RigidBody),
		Players:         make(map[types.EntityID]*component.Player),
		Enemies:         make(map[types.EntityID]*component.Enemy),
		EnemyAnimations: make(map[types.EntityID]*component.EnemyAnimation),
		Levels:          make(map[types.EntityID]*component.Level),
		DamageFlashes:   make(map[types.EntityID]*component.DamageFlash),
		Camera:          &component.Camera{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// SetParent attaches child under parent. A zero parent detaches it.
func (ecs *ECS) SetParent(child, parent types.EntityID) {
	if parent == 0 {
		delete(ecs.Parents, child)
		return
	}
	ecs.Parents[child] = parent
}

// Children returns the direct children of id in creation order.
func (ecs *ECS) Children(id types.EntityID) []types.EntityID {
	var children []types.EntityID
	for child, parent := range ecs.Parents {
		if parent == id {
			children = append(children, child)
		}
	}
	slices.Sort(children)
	return children
}

// Descendants returns every entity below id, deepest first, so the result
// can be despawned in order without orphaning anything.
func (ecs *ECS) Descendants(id types.EntityID) []types.EntityID {
	var out []types.EntityID
	for _, child := range ecs.Children(id) {
		out = append(out, ecs.Descendants(child)...)
		out = append(out, child)
	}
	return out
}

// WorldTransform composes the transform of id with all of its parents.
// Entities without a Transform sit at the origin of their parent.
func (ecs *ECS) WorldTransform(id types.EntityID) component.Transform {
	var local component.Transform
	if t, ok := ecs.Transforms[id]; ok {
		local = *t
	}
	parent, hasParent := ecs.Parents[id]
	if !hasParent {
		return local
	}
	return ecs.WorldTransform(parent).Compose(local)
}

// Despawn removes every component of a single entity and detaches its
// children. If the entity owned a physics body its id is returned so the
// caller can remove it from the simulator.
func (ecs *ECS) Despawn(id types.EntityID) (physics.BodyID, bool) {
	var body physics.BodyID
	rb, hasBody := ecs.RigidBodies[id]
	if hasBody {
		body = rb.Body
	}
	delete(ecs.Transforms, id)
	delete(ecs.Parents, id)
	delete(ecs.Sprites, id)
	delete(ecs.Velocities, id)
	delete(ecs.Guns, id)
	delete(ecs.Projectiles, id)
	delete(ecs.RigidBodies, id)
	delete(ecs.Players, id)
	delete(ecs.Enemies, id)
	delete(ecs.EnemyAnimations, id)
	delete(ecs.Levels, id)
	delete(ecs.DamageFlashes, id)
	for child, parent := range ecs.Parents {
		if parent == id {
			delete(ecs.Parents, child)
		}
	}
	return body, hasBody
}

// SingleGun returns the one gun entity of the session. Zero or several guns
// violate the session invariant and are reported as errors.
func (ecs *ECS) SingleGun() (types.EntityID, *component.Gun, error) {
	switch len(ecs.Guns) {
	case 0:
		return 0, nil, ErrNoGun
	case 1:
		for id, gun := range ecs.Guns {
			return id, gun, nil
		}
	}
	return 0, nil, fmt.Errorf("%w: found %d", ErrMultipleGuns, len(ecs.Guns))
}
