package component

// Input stores per-frame movement intent for an entity.
type Input struct {
	MoveX float64
	MoveY float64
}

var InputComponent = NewComponent[Input]()
