package entity

import (
	"github.com/milk9111/pizzasurvivor/common"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	viewHeight := spec.ViewHeight
	if viewHeight <= 0 {
		viewHeight = common.ViewHeight
	}
	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return build(w, "camera",
		with("camera tag", component.CameraTagComponent.Kind(), &component.CameraTag{}),
		with("camera", component.CameraComponent.Kind(), &component.Camera{Zoom: zoom, ViewHeight: viewHeight}),
		with("transform", component.TransformComponent.Kind(), transformAt(0, 0)),
		gameplay(),
	)
}
