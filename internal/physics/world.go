package physics

import (
	"math"
	"slices"

	"github.com/solarlune/resolv"
)

var (
	tagProjectile = resolv.NewTag("projectile")
	tagEnemy      = resolv.NewTag("enemy")
)

type body struct {
	BodyState
	angularVelocity float64
	lockRotation    bool
	escaped         bool
	shape           resolv.IShape
}

// World is a Simulator over a fixed rectangular area centred on the origin.
type World struct {
	space   *resolv.Space
	halfW   float64
	halfH   float64
	bodies  map[BodyID]*body
	byShape map[resolv.IShape]BodyID
	nextID  BodyID
}

var _ Simulator = (*World)(nil)

// NewWorld creates a world spanning width x height world units, centred on
// (0, 0), with a broad-phase grid of cellSize.
func NewWorld(width, height, cellSize int) *World {
	return &World{
		space:   resolv.NewSpace(width, height, cellSize, cellSize),
		halfW:   float64(width) / 2,
		halfH:   float64(height) / 2,
		bodies:  make(map[BodyID]*body),
		byShape: make(map[resolv.IShape]BodyID),
		nextID:  1,
	}
}

func layerTag(l Layer) resolv.Tags {
	switch l {
	case LayerProjectile:
		return tagProjectile
	case LayerEnemy:
		return tagEnemy
	}
	return 0
}

// collisionMask returns the tags a body on layer l reports contacts with.
// Enemies are only targets; every contact is reported from the projectile.
func collisionMask(l Layer) resolv.Tags {
	switch l {
	case LayerProjectile:
		return tagEnemy
	}
	return 0
}

// toSpace converts centred world coordinates into resolv space coordinates,
// clamped to the space so shapes never leave the cell grid.
func (w *World) toSpace(x, y float64) (float64, float64) {
	sx := math.Max(0, math.Min(2*w.halfW, x+w.halfW))
	sy := math.Max(0, math.Min(2*w.halfH, y+w.halfH))
	return sx, sy
}

func (w *World) inBounds(x, y float64) bool {
	return x >= -w.halfW && x <= w.halfW && y >= -w.halfH && y <= w.halfH
}

// CreateBody adds a circular body and returns its id.
func (w *World) CreateBody(def BodyDef) BodyID {
	id := w.nextID
	w.nextID++

	sx, sy := w.toSpace(def.X, def.Y)
	shape := resolv.NewCircle(sx, sy, def.Radius)
	if tag := layerTag(def.Layer); tag != 0 {
		shape.Tags().Set(tag)
	}
	w.space.Add(shape)

	w.bodies[id] = &body{
		BodyState: BodyState{
			Kind:      def.Kind,
			Layer:     def.Layer,
			X:         def.X,
			Y:         def.Y,
			VelocityX: def.VelocityX,
			VelocityY: def.VelocityY,
			Rotation:  def.Rotation,
			Radius:    def.Radius,
		},
		angularVelocity: def.AngularVelocity,
		lockRotation:    def.LockRotation,
		shape:           shape,
	}
	w.byShape[shape] = id
	return id
}

// RemoveBody deletes a body. Unknown ids are ignored.
func (w *World) RemoveBody(id BodyID) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	w.space.Remove(b.shape)
	delete(w.byShape, b.shape)
	delete(w.bodies, id)
}

// SetPosition teleports a body, used for kinematic bodies driven by game code.
func (w *World) SetPosition(id BodyID, x, y float64) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	b.X, b.Y = x, y
	b.shape.SetPosition(w.toSpace(x, y))
}

// Body returns the current state of a body.
func (w *World) Body(id BodyID) (BodyState, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return BodyState{}, false
	}
	return b.BodyState, true
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

func (w *World) sortedIDs() []BodyID {
	ids := make([]BodyID, 0, len(w.bodies))
	for id := range w.bodies {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Step integrates dynamic bodies by dt and reports contacts and escapes.
// Kinematic projectiles are positioned by the caller and only tested.
func (w *World) Step(dt float64) StepResult {
	var res StepResult
	ids := w.sortedIDs()

	for _, id := range ids {
		b := w.bodies[id]
		if b.escaped {
			continue
		}
		if b.Kind == Kinematic && b.Layer == LayerProjectile && !w.inBounds(b.X, b.Y) {
			b.escaped = true
			res.Escaped = append(res.Escaped, id)
			continue
		}
		if b.Kind != Dynamic {
			continue
		}
		b.X += b.VelocityX * dt
		b.Y += b.VelocityY * dt
		if !b.lockRotation {
			b.Rotation += b.angularVelocity * dt
		}
		if !w.inBounds(b.X, b.Y) {
			b.escaped = true
			res.Escaped = append(res.Escaped, id)
			continue
		}
		b.shape.SetPosition(w.toSpace(b.X, b.Y))
	}

	for _, id := range ids {
		b := w.bodies[id]
		if b.Kind == Static || b.escaped {
			continue
		}
		mask := collisionMask(b.Layer)
		if mask == 0 {
			continue
		}
		b.shape.IntersectionTest(resolv.IntersectionTestSettings{
			TestAgainst: b.shape.SelectTouchingCells(0).FilterShapes().ByTags(mask),
			OnIntersect: func(set resolv.IntersectionSet) bool {
				if other, ok := w.byShape[set.OtherShape]; ok {
					res.Contacts = append(res.Contacts, Contact{A: id, B: other})
				}
				return true
			},
		})
	}
	return res
}
