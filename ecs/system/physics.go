package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
)

// PhysicsSystem mirrors PhysicsBody components into a Chipmunk2D space.
// Enemies are dynamic bodies so they shove each other apart; everything else
// is a kinematic sensor that only takes part in overlap queries. Transforms
// of kinematic entities are pushed into the space before the step and
// dynamic bodies are pulled back out after it.
type PhysicsSystem struct {
	space  *cp.Space
	bodies map[ecs.Entity]*component.PhysicsBody
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:  newSpace(),
		bodies: make(map[ecs.Entity]*component.PhysicsBody),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Reset drops every body, used when a round is torn down. Components that
// survive are re-added on the next Update.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	for _, pb := range ps.bodies {
		pb.Body = nil
		pb.Shape = nil
	}
	ps.space = newSpace()
	ps.bodies = make(map[ecs.Entity]*component.PhysicsBody)
}

func (ps *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.Reset()
	}

	ps.removeDead(w)
	ps.syncEntities(w)
	if dt > 0 {
		ps.space.Step(dt)
	}
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) removeDead(w *ecs.World) {
	for e, pb := range ps.bodies {
		current, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if ok && current == pb {
			continue
		}
		ps.removeBody(pb)
		delete(ps.bodies, e)
	}
}

func (ps *PhysicsSystem) removeBody(pb *component.PhysicsBody) {
	if pb == nil {
		return
	}
	if pb.Shape != nil && ps.space.ContainsShape(pb.Shape) {
		ps.space.RemoveShape(pb.Shape)
	}
	if pb.Body != nil && ps.space.ContainsBody(pb.Body) {
		ps.space.RemoveBody(pb.Body)
	}
	pb.Shape = nil
	pb.Body = nil
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		pos := cp.Vector{X: t.X, Y: t.Y}
		if pb.Body == nil {
			ps.createBody(e, pb, pos)
			return
		}
		if !pb.Dynamic {
			pb.Body.SetPosition(pos)
		}
	})
}

func (ps *PhysicsSystem) createBody(e ecs.Entity, pb *component.PhysicsBody, pos cp.Vector) {
	var body *cp.Body
	if pb.Dynamic {
		body = cp.NewBody(1, math.Inf(1))
	} else {
		body = cp.NewKinematicBody()
	}
	body.SetPosition(pos)
	body.UserData = e

	var shape *cp.Shape
	switch pb.Kind {
	case component.ColliderBox:
		shape = cp.NewBox(body, pb.Width, pb.Height, 0)
	default:
		shape = cp.NewCircle(body, pb.Radius, cp.Vector{})
	}
	shape.SetSensor(pb.Sensor || !pb.Dynamic)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.UserData = e

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	pb.Body = body
	pb.Shape = shape
	ps.bodies[e] = pb
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if !pb.Dynamic || pb.Body == nil {
			return
		}
		p := pb.Body.Position()
		t.X = p.X
		t.Y = p.Y
	})
}

// Overlapping returns the live entities whose colliders touch e's collider.
// Results reflect positions as of the last physics step.
func Overlapping(w *ecs.World, e ecs.Entity) []ecs.Entity {
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Shape == nil || pb.Shape.Space() == nil {
		return nil
	}

	var out []ecs.Entity
	pb.Shape.Space().ShapeQuery(pb.Shape, func(shape *cp.Shape, _ *cp.ContactPointSet) {
		other, ok := shape.UserData.(ecs.Entity)
		if !ok || other == e || !w.IsAlive(other) {
			return
		}
		out = append(out, other)
	})
	return out
}

// OverlappingWith filters Overlapping to entities carrying kind.
func OverlappingWith[T any](w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) []ecs.Entity {
	var out []ecs.Entity
	for _, other := range Overlapping(w, e) {
		if ecs.Has(w, other, kind) {
			out = append(out, other)
		}
	}
	return out
}

// Overlaps reports whether a and b currently touch.
func Overlaps(w *ecs.World, a, b ecs.Entity) bool {
	for _, other := range Overlapping(w, a) {
		if other == b {
			return true
		}
	}
	return false
}

// setVelocity drives a dynamic body, or moves the transform directly when
// the entity has not been synced into the space yet.
func setVelocity(w *ecs.World, e ecs.Entity, vx, vy, dt float64) {
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Dynamic && pb.Body != nil {
		pb.Body.SetVelocity(vx, vy)
		return
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X += vx * dt
		t.Y += vy * dt
	}
}
