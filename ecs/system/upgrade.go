package system

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pizzasurvivor/ecs"
	"github.com/milk9111/pizzasurvivor/ecs/component"
	"github.com/milk9111/pizzasurvivor/ecs/entity"
	"github.com/milk9111/pizzasurvivor/prefabs"
)

var (
	ErrNoPlayer       = errors.New("upgrade: no player")
	ErrUnknownUpgrade = errors.New("upgrade: unknown kind")
)

type Upgrade int

const (
	UpgradeWhip Upgrade = iota
	UpgradeCloseShot
	UpgradeAreaShot
	UpgradeHealthUp
	UpgradeSpeedUp
)

// Upgrades is the fixed pool level-up choices are drawn from.
var Upgrades = []Upgrade{
	UpgradeWhip,
	UpgradeCloseShot,
	UpgradeAreaShot,
	UpgradeHealthUp,
	UpgradeSpeedUp,
}

func (u Upgrade) String() string {
	switch u {
	case UpgradeWhip:
		return "Ramen"
	case UpgradeCloseShot:
		return "BURRITOS!"
	case UpgradeAreaShot:
		return "Nacho Cheese"
	case UpgradeHealthUp:
		return "Health Up 10%"
	case UpgradeSpeedUp:
		return "Speed Up 10%"
	default:
		return fmt.Sprintf("Upgrade(%d)", int(u))
	}
}

// DrawUpgrades picks n distinct upgrades without replacement. n is capped at
// the pool size.
func DrawUpgrades(rng *rand.Rand, n int) []Upgrade {
	pool := append([]Upgrade(nil), Upgrades...)
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}
	if rng != nil {
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	}
	return pool[:n]
}

// ApplyUpgrade applies u to the player and its loadout. It returns the
// entities it created or changed.
func ApplyUpgrade(w *ecs.World, u Upgrade, tuning *prefabs.Tuning) ([]ecs.Entity, error) {
	if w == nil || tuning == nil {
		return nil, fmt.Errorf("upgrade %s: world and tuning are required", u)
	}
	pe, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return nil, ErrNoPlayer
	}
	p, okP := ecs.Get(w, pe, component.PlayerComponent.Kind())
	loadout, okL := ecs.Get(w, pe, component.LoadoutComponent.Kind())
	if !okP || !okL {
		return nil, ErrNoPlayer
	}
	bonus := 1 + tuning.Upgrades.Increment

	switch u {
	case UpgradeHealthUp:
		inc := p.MaxHealth * tuning.Upgrades.Increment
		p.Health += inc
		p.MaxHealth += inc
		return []ecs.Entity{pe}, nil
	case UpgradeSpeedUp:
		p.Speed *= bonus
		return []ecs.Entity{pe}, nil
	case UpgradeWhip:
		return upgradeWhip(w, pe, p, loadout, tuning.Whip, bonus)
	case UpgradeCloseShot:
		if e, live := liveSlot(w, loadout.CloseShot); live {
			if cs, ok := ecs.Get(w, e, component.CloseShotComponent.Kind()); ok {
				cs.DamageScale *= bonus
			}
			return []ecs.Entity{e}, nil
		}
		e, err := entity.NewCloseShot(w, tuning.CloseShot, pe)
		if err != nil {
			return nil, fmt.Errorf("upgrade %s: %w", u, err)
		}
		loadout.CloseShot = uint64(e)
		return []ecs.Entity{e}, nil
	case UpgradeAreaShot:
		if e, live := liveSlot(w, loadout.AreaShot); live {
			if as, ok := ecs.Get(w, e, component.AreaShotComponent.Kind()); ok {
				as.DamageScale *= bonus
			}
			return []ecs.Entity{e}, nil
		}
		e, err := entity.NewAreaShot(w, tuning.AreaShot, pe)
		if err != nil {
			return nil, fmt.Errorf("upgrade %s: %w", u, err)
		}
		loadout.AreaShot = uint64(e)
		return []ecs.Entity{e}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownUpgrade, int(u))
	}
}

func liveSlot(w *ecs.World, raw uint64) (ecs.Entity, bool) {
	if raw == 0 {
		return 0, false
	}
	e := ecs.Entity(raw)
	return e, ecs.IsAlive(w, e)
}

// upgradeWhip walks the whip ladder: the first pick adds a whip on the
// facing side, the second mirrors it and staggers the pair, later picks
// raise damage.
func upgradeWhip(w *ecs.World, pe ecs.Entity, p *component.Player, loadout *component.Loadout, spec prefabs.WhipSpec, bonus float64) ([]ecs.Entity, error) {
	var live []ecs.Entity
	for i, raw := range loadout.Whips {
		if e, ok := liveSlot(w, raw); ok {
			live = append(live, e)
		} else {
			loadout.Whips[i] = 0
		}
	}

	switch len(live) {
	case 0:
		e, err := entity.NewWhip(w, spec, pe, spec.Offset*p.Facing.Sign())
		if err != nil {
			return nil, fmt.Errorf("upgrade %s: %w", UpgradeWhip, err)
		}
		loadout.Whips = [component.MaxWhips]uint64{uint64(e)}
		return []ecs.Entity{e}, nil
	case 1:
		first := live[0]
		if a, ok := ecs.Get(w, first, component.AttachmentComponent.Kind()); ok {
			a.Offset = cp.Vector{X: -spec.Offset}
		}
		if sprite, ok := ecs.Get(w, first, component.SpriteComponent.Kind()); ok {
			sprite.FlipX = true
		}
		if whip, ok := ecs.Get(w, first, component.WhipComponent.Kind()); ok {
			whip.Timer.SetElapsed(spec.PhaseOffset)
		}
		second, err := entity.NewWhip(w, spec, pe, spec.Offset)
		if err != nil {
			return nil, fmt.Errorf("upgrade %s: %w", UpgradeWhip, err)
		}
		if sprite, ok := ecs.Get(w, second, component.SpriteComponent.Kind()); ok {
			sprite.FlipX = false
		}
		loadout.Whips = [component.MaxWhips]uint64{uint64(first), uint64(second)}
		return []ecs.Entity{first, second}, nil
	default:
		for _, e := range live {
			if whip, ok := ecs.Get(w, e, component.WhipComponent.Kind()); ok {
				whip.Damage *= bonus
			}
		}
		return live, nil
	}
}
