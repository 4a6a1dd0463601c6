package component

// DamageNumber is floating combat text in world space. Expiry is handled by
// a TTL on the same entity; Life is the starting TTL, used to fade the text.
type DamageNumber struct {
	Value float64
	Life  float64
	VelX  float64
	VelY  float64
}

var DamageNumberComponent = NewComponent[DamageNumber]()
