package component

const MaxWhips = 2

// Loadout is the player's weapon inventory, stored as raw ecs.Entity values.
// Zero means the slot is empty.
type Loadout struct {
	Whips     [MaxWhips]uint64
	CloseShot uint64
	AreaShot  uint64
}

// WhipCount returns the number of filled whip slots.
func (l *Loadout) WhipCount() int {
	if l == nil {
		return 0
	}
	n := 0
	for _, w := range l.Whips {
		if w != 0 {
			n++
		}
	}
	return n
}

var LoadoutComponent = NewComponent[Loadout]()
