package component

import "github.com/jakecoffman/cp"

type ColliderShape int

const (
	ColliderCircle ColliderShape = iota
	ColliderBox
)

// PhysicsBody is the collider description plus the Chipmunk2D runtime
// objects, which the physics system fills in on first sync.
type PhysicsBody struct {
	Body    *cp.Body
	Shape   *cp.Shape
	Kind    ColliderShape
	Radius  float64
	Width   float64
	Height  float64
	Sensor  bool
	Dynamic bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
