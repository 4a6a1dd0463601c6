package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// GameplayEntity marks everything that belongs to one round and is torn
// down when the round ends.
type GameplayEntity struct{}

var GameplayEntityComponent = NewComponent[GameplayEntity]()

// LevelUpParticle marks the falling coins shown while an upgrade is picked.
type LevelUpParticle struct{}

var LevelUpParticleComponent = NewComponent[LevelUpParticle]()

type BackgroundTile struct{}

var BackgroundTileComponent = NewComponent[BackgroundTile]()
