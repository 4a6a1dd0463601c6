package system

import (
	"math"
	"testing"

	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/ecs/entity"
)

func TestPlayerMovement(t *testing.T) {
	cases := []struct {
		name       string
		x, y       float64
		wantX      float64
		wantY      float64
		wantFacing component.Facing
	}{
		{"idle", 0, 0, 0, 0, component.FacingRight},
		{"right", 1, 0, 3, 0, component.FacingRight},
		{"left", -1, 0, -3, 0, component.FacingLeft},
		{"diagonal_normalized", 1, 1, 3 / math.Sqrt2, 3 / math.Sqrt2, component.FacingRight},
		{"vertical_keeps_facing", 0, -1, 0, -3, component.FacingRight},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _, pe := newPlayerWorld(t)
			input := NewInputSystem(InputSourceFunc(func() (float64, float64) { return c.x, c.y }))
			move := NewPlayerMovementSystem()

			input.Update(w, 1)
			move.Update(w, 1)

			tr, _ := ecs.Get(w, pe, component.TransformComponent.Kind())
			if !near(tr.X, c.wantX, 1e-9) || !near(tr.Y, c.wantY, 1e-9) {
				t.Fatalf("expected (%v, %v), got (%v, %v)", c.wantX, c.wantY, tr.X, tr.Y)
			}
			if got := playerOf(t, w, pe).Facing; got != c.wantFacing {
				t.Fatalf("expected facing %v, got %v", c.wantFacing, got)
			}
		})
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	w, tuning, pe := newPlayerWorld(t)
	cam, err := entity.NewCamera(w, tuning.Camera)
	if err != nil {
		t.Fatal(err)
	}
	pt, _ := ecs.Get(w, pe, component.TransformComponent.Kind())
	pt.X, pt.Y = 4, -2

	NewCameraSystem().Update(w, frame)

	ct, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	if ct.X != 4 || ct.Y != -2 {
		t.Fatalf("expected camera at (4, -2), got (%v, %v)", ct.X, ct.Y)
	}
}

func TestAttachmentRemovedWithOwner(t *testing.T) {
	w, tuning, pe := newPlayerWorld(t)
	whip, err := entity.NewWhip(w, tuning.Whip, pe, tuning.Whip.Offset)
	if err != nil {
		t.Fatal(err)
	}
	ecs.DestroyEntity(w, pe)

	NewAttachmentSystem().Update(w, frame)
	if w.IsAlive(whip) {
		t.Fatalf("expected whip removed with its owner")
	}
}

func TestPhysicsOverlap(t *testing.T) {
	w, tuning, pe := newPlayerWorld(t)
	touching := spawnEnemy(t, w, tuning, component.EnemyTemplate{Health: 1}, cpVec(1.5, 0))
	apart := spawnEnemy(t, w, tuning, component.EnemyTemplate{Health: 1}, cpVec(5, 0))

	physics := NewPhysicsSystem()
	physics.Update(w, frame)

	if !Overlaps(w, pe, touching) {
		t.Fatalf("expected player and nearby enemy to overlap")
	}
	if Overlaps(w, pe, apart) {
		t.Fatalf("expected far enemy not to overlap")
	}

	ecs.DestroyEntity(w, touching)
	physics.Update(w, frame)
	if got := OverlappingWith(w, pe, component.EnemyComponent.Kind()); len(got) != 0 {
		t.Fatalf("expected destroyed enemy gone from the space, got %v", got)
	}

	physics.Reset()
	if len(physics.bodies) != 0 {
		t.Fatalf("expected reset to drop bodies")
	}
}
