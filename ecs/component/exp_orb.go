package component

type ExpOrb struct {
	Value           int
	CollectionSpeed float64
	Collecting      bool
}

var ExpOrbComponent = NewComponent[ExpOrb]()
