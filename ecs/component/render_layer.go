package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

const (
	LayerBackground = -10
	LayerPickups    = 0
	LayerEnemies    = 1
	LayerPlayer     = 2
	LayerWeapons    = 3
	LayerEffects    = 5
	LayerOverlay    = 10
)

var RenderLayerComponent = NewComponent[RenderLayer]()
