package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const TuningFile = "tuning.yaml"

var (
	ErrNoWaves       = errors.New("prefabs: tuning has no waves")
	ErrInvalidTuning = errors.New("prefabs: invalid tuning")
)

// Tuning is every gameplay number the game reads at round start.
type Tuning struct {
	Player        PlayerSpec       `yaml:"player"`
	Enemy         EnemySpec        `yaml:"enemy"`
	Whip          WhipSpec         `yaml:"whip"`
	CloseShot     CloseShotSpec    `yaml:"close_shot"`
	AreaShot      AreaShotSpec     `yaml:"area_shot"`
	Orb           OrbSpec          `yaml:"orb"`
	Upgrades      UpgradeSpec      `yaml:"upgrades"`
	DamageNumbers DamageNumberSpec `yaml:"damage_numbers"`
	Waves         WavesSpec        `yaml:"waves"`
	LevelUp       LevelUpSpec      `yaml:"level_up"`
	Background    BackgroundSpec   `yaml:"background"`
	Camera        CameraSpec       `yaml:"camera"`
}

type PlayerSpec struct {
	Speed          float64   `yaml:"speed"`
	Health         float64   `yaml:"health"`
	NextLevelExp   int       `yaml:"next_level_exp"`
	LevelGrowth    float64   `yaml:"level_growth"`
	ColliderRadius float64   `yaml:"collider_radius"`
	Size           float64   `yaml:"size"`
	Color          YAMLColor `yaml:"color"`
}

type EnemySpec struct {
	ColliderRadius float64   `yaml:"collider_radius"`
	Size           float64   `yaml:"size"`
	Color          YAMLColor `yaml:"color"`
	FlashColor     YAMLColor `yaml:"flash_color"`
	FlashSeconds   float64   `yaml:"flash_seconds"`
	DespawnRadius  float64   `yaml:"despawn_radius"`
	OrbDropChance  float64   `yaml:"orb_drop_chance"`
}

type WhipSpec struct {
	Interval        float64   `yaml:"interval"`
	Damage          float64   `yaml:"damage"`
	Width           float64   `yaml:"width"`
	Height          float64   `yaml:"height"`
	Offset          float64   `yaml:"offset"`
	VisibleFraction float64   `yaml:"visible_fraction"`
	PhaseOffset     float64   `yaml:"phase_offset"`
	Color           YAMLColor `yaml:"color"`
}

type CloseShotSpec struct {
	Interval       float64   `yaml:"interval"`
	BulletLifetime float64   `yaml:"bullet_lifetime"`
	BulletDamage   float64   `yaml:"bullet_damage"`
	BulletSpeed    float64   `yaml:"bullet_speed"`
	BulletSize     float64   `yaml:"bullet_size"`
	Color          YAMLColor `yaml:"color"`
}

type AreaShotSpec struct {
	Interval       float64   `yaml:"interval"`
	Lifetime       float64   `yaml:"lifetime"`
	PulseInterval  float64   `yaml:"pulse_interval"`
	DamagePerPulse float64   `yaml:"damage_per_pulse"`
	Size           float64   `yaml:"size"`
	Ring           float64   `yaml:"ring"`
	Offset         float64   `yaml:"offset"`
	Color          YAMLColor `yaml:"color"`
}

type OrbSpec struct {
	Value           int       `yaml:"value"`
	CollectionSpeed float64   `yaml:"collection_speed"`
	ColliderRadius  float64   `yaml:"collider_radius"`
	CollectDistance float64   `yaml:"collect_distance"`
	Size            float64   `yaml:"size"`
	Color           YAMLColor `yaml:"color"`
}

type UpgradeSpec struct {
	// Increment is the fractional bonus of every stat upgrade (0.10 = +10%).
	Increment float64 `yaml:"increment"`
	Choices   int     `yaml:"choices"`
}

type DamageNumberSpec struct {
	Lifetime  float64   `yaml:"lifetime"`
	RiseSpeed float64   `yaml:"rise_speed"`
	Color     YAMLColor `yaml:"color"`
}

type EnemyTemplateSpec struct {
	Speed           float64 `yaml:"speed"`
	Health          float64 `yaml:"health"`
	DamagePerSecond float64 `yaml:"damage_per_second"`
	Asset           string  `yaml:"asset"`
	Script          string  `yaml:"script"`
}

type WaveSpec struct {
	SpawnEvery float64           `yaml:"spawn_every"`
	Size       int               `yaml:"size"`
	Enemy      EnemyTemplateSpec `yaml:"enemy"`
}

type WavesSpec struct {
	Window    float64    `yaml:"window"`
	Growth    float64    `yaml:"growth"`
	SpawnRing float64    `yaml:"spawn_ring"`
	Jitter    float64    `yaml:"jitter"`
	List      []WaveSpec `yaml:"list"`
}

type LevelUpSpec struct {
	Particles    int       `yaml:"particles"`
	SpreadX      float64   `yaml:"spread_x"`
	SpreadY      float64   `yaml:"spread_y"`
	OffsetY      float64   `yaml:"offset_y"`
	FallSpeed    float64   `yaml:"fall_speed"`
	Bottom       float64   `yaml:"bottom"`
	Top          float64   `yaml:"top"`
	FrameSeconds float64   `yaml:"frame_seconds"`
	Size         float64   `yaml:"size"`
	ColorA       YAMLColor `yaml:"color_a"`
	ColorB       YAMLColor `yaml:"color_b"`
}

type BackgroundSpec struct {
	Columns    int       `yaml:"columns"`
	Rows       int       `yaml:"rows"`
	TileWidth  float64   `yaml:"tile_width"`
	TileHeight float64   `yaml:"tile_height"`
	ColorA     YAMLColor `yaml:"color_a"`
	ColorB     YAMLColor `yaml:"color_b"`
}

type CameraSpec struct {
	ViewHeight float64 `yaml:"view_height"`
	Zoom       float64 `yaml:"zoom"`
}

// LoadTuning reads and validates tuning.yaml.
func LoadTuning() (*Tuning, error) {
	data, err := Load(TuningFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", TuningFile, err)
	}
	return ParseTuning(data)
}

func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", TuningFile, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate rejects values that would stall or break a round.
func (t *Tuning) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil", ErrInvalidTuning)
	}
	if len(t.Waves.List) == 0 {
		return ErrNoWaves
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"player.speed", t.Player.Speed},
		{"player.health", t.Player.Health},
		{"player.level_growth", t.Player.LevelGrowth},
		{"whip.interval", t.Whip.Interval},
		{"close_shot.interval", t.CloseShot.Interval},
		{"close_shot.bullet_lifetime", t.CloseShot.BulletLifetime},
		{"area_shot.interval", t.AreaShot.Interval},
		{"area_shot.lifetime", t.AreaShot.Lifetime},
		{"area_shot.pulse_interval", t.AreaShot.PulseInterval},
		{"orb.collection_speed", t.Orb.CollectionSpeed},
		{"waves.window", t.Waves.Window},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, p.name, p.value)
		}
	}

	if t.Player.NextLevelExp <= 0 {
		return fmt.Errorf("%w: player.next_level_exp must be positive", ErrInvalidTuning)
	}
	if t.Waves.Growth < 1 {
		return fmt.Errorf("%w: waves.growth must be >= 1, got %v", ErrInvalidTuning, t.Waves.Growth)
	}
	if t.Enemy.OrbDropChance < 0 || t.Enemy.OrbDropChance > 1 {
		return fmt.Errorf("%w: enemy.orb_drop_chance must be in [0, 1]", ErrInvalidTuning)
	}
	if t.Upgrades.Choices < 1 {
		return fmt.Errorf("%w: upgrades.choices must be at least 1", ErrInvalidTuning)
	}
	for i, w := range t.Waves.List {
		if w.SpawnEvery <= 0 {
			return fmt.Errorf("%w: waves.list[%d].spawn_every must be positive", ErrInvalidTuning, i)
		}
		if w.Size < 1 {
			return fmt.Errorf("%w: waves.list[%d].size must be at least 1", ErrInvalidTuning, i)
		}
	}
	return nil
}

// Clone returns a deep copy so a running round is unaffected by reloads.
func (t *Tuning) Clone() *Tuning {
	if t == nil {
		return nil
	}
	c := *t
	c.Waves.List = append([]WaveSpec(nil), t.Waves.List...)
	return &c
}
