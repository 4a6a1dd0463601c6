package component

type Whip struct {
	Timer  Timer
	Damage float64
}

var WhipComponent = NewComponent[Whip]()
