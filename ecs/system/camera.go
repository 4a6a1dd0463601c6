package system

import (
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
)

// CameraSystem centres the camera on the player.
type CameraSystem struct {
	warn missingWarner
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World, _ float64) {
	if cs == nil || w == nil {
		return
	}
	camEnt, ok := ecs.First(w, component.CameraTagComponent.Kind(), component.TransformComponent.Kind())
	if !ok {
		cs.warn.missing("camera", "camera")
		return
	}
	_, _, pt, ok := playerEntity(w, &cs.warn, "camera")
	if !ok {
		return
	}
	ct, _ := ecs.Get(w, camEnt, component.TransformComponent.Kind())
	ct.X = pt.X
	ct.Y = pt.Y
}
