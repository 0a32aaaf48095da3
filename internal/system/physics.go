package system

import (
	"go-top-down-shooter/internal/component"
	"go-top-down-shooter/internal/entity"
	"go-top-down-shooter/internal/event"
	"go-top-down-shooter/internal/physics"
	"go-top-down-shooter/internal/types"
)

// PhysicsSystem keeps ECS entities and simulator bodies in sync.
type PhysicsSystem struct {
	ecs             *entity.ECS
	sim             physics.Simulator
	eventDispatcher *event.Dispatcher
	owners          map[physics.BodyID]types.EntityID
}

func NewPhysicsSystem(ecs *entity.ECS, sim physics.Simulator, eventDispatcher *event.Dispatcher) *PhysicsSystem {
	return &PhysicsSystem{
		ecs:             ecs,
		sim:             sim,
		eventDispatcher: eventDispatcher,
		owners:          make(map[physics.BodyID]types.EntityID),
	}
}

// Attach creates a body for id and records the link on the entity.
func (s *PhysicsSystem) Attach(id types.EntityID, def physics.BodyDef) physics.BodyID {
	body := s.sim.CreateBody(def)
	s.ecs.RigidBodies[id] = &component.RigidBody{Body: body}
	s.owners[body] = id
	return body
}

// Detach removes a body returned by entity.ECS.Despawn.
func (s *PhysicsSystem) Detach(body physics.BodyID) {
	delete(s.owners, body)
	s.sim.RemoveBody(body)
}

// Step pushes kinematic positions into the simulator, advances it, copies
// dynamic bodies back into their transforms and dispatches ProjectileHit for
// the first enemy each projectile touches. Entities whose bodies left the
// simulated area are returned.
func (s *PhysicsSystem) Step(deltaTime float64) []types.EntityID {
	for id, rb := range s.ecs.RigidBodies {
		st, ok := s.sim.Body(rb.Body)
		if !ok || st.Kind != physics.Kinematic {
			continue
		}
		wt := s.ecs.WorldTransform(id)
		s.sim.SetPosition(rb.Body, wt.X, wt.Y)
	}

	res := s.sim.Step(deltaTime)

	for id, rb := range s.ecs.RigidBodies {
		st, ok := s.sim.Body(rb.Body)
		if !ok || st.Kind != physics.Dynamic {
			continue
		}
		if t, ok := s.ecs.Transforms[id]; ok {
			t.X, t.Y, t.Rotation = st.X, st.Y, st.Rotation
		}
	}

	hit := make(map[types.EntityID]bool)
	for _, c := range res.Contacts {
		projectile, okA := s.owners[c.A]
		target, okB := s.owners[c.B]
		if !okA || !okB || hit[projectile] {
			continue
		}
		if _, isProjectile := s.ecs.Projectiles[projectile]; !isProjectile {
			continue
		}
		if _, isEnemy := s.ecs.Enemies[target]; !isEnemy {
			continue
		}
		hit[projectile] = true
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ProjectileHit,
			Data: event.ProjectileHitData{Projectile: projectile, Target: target},
		})
	}

	var escaped []types.EntityID
	for _, body := range res.Escaped {
		if id, ok := s.owners[body]; ok {
			escaped = append(escaped, id)
		}
	}
	return escaped
}
