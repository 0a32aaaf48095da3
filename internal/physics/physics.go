// Package physics is the rigid-body collaborator projectiles can be handed to.
// World is a minimal 2D integrator with circle-circle contacts backed by a
// resolv space; anything implementing Simulator can replace it.
package physics

// BodyID identifies a body inside a Simulator. Zero is never issued.
type BodyID uint32

// BodyKind selects who moves a body.
type BodyKind int

const (
	// Dynamic bodies are integrated by the simulator from their velocity.
	Dynamic BodyKind = iota
	// Kinematic bodies are moved by game code through SetPosition.
	Kinematic
	// Static bodies never move.
	Static
)

// Layer decides which bodies report contacts with each other.
type Layer int

const (
	LayerNone Layer = iota
	LayerProjectile
	LayerEnemy
)

// BodyDef describes a body at creation time.
type BodyDef struct {
	Kind            BodyKind
	Layer           Layer
	X, Y            float64
	VelocityX       float64
	VelocityY       float64
	Rotation        float64
	AngularVelocity float64
	LockRotation    bool
	Radius          float64
}

// BodyState is a snapshot of a body after the last step.
type BodyState struct {
	Kind      BodyKind
	Layer     Layer
	X, Y      float64
	VelocityX float64
	VelocityY float64
	Rotation  float64
	Radius    float64
}

// Contact pairs a dynamic body (A) with the body it overlaps (B).
type Contact struct {
	A, B BodyID
}

// StepResult reports what happened during one Step.
type StepResult struct {
	Contacts []Contact
	// Escaped lists dynamic bodies that left the simulated area. They stop
	// taking part in contact detection until removed.
	Escaped []BodyID
}

// Simulator is the capability the game needs from a physics engine.
type Simulator interface {
	CreateBody(def BodyDef) BodyID
	RemoveBody(id BodyID)
	SetPosition(id BodyID, x, y float64)
	Body(id BodyID) (BodyState, bool)
	Step(dt float64) StepResult
}
