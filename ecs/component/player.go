package component

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign is +1 when facing right and -1 when facing left.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

type Player struct {
	Exp          int
	NextLevelExp int
	Level        int
	Speed        float64
	Health       float64
	MaxHealth    float64
	Facing       Facing
}

var PlayerComponent = NewComponent[Player]()
