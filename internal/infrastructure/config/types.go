package config

// Config is the root of the game tuning document (game.yaml).
type Config struct {
	Display   DisplayConfig         `yaml:"display"`
	Player    PlayerConfig          `yaml:"player"`
	Items     map[string]ItemConfig `yaml:"items"`
	ItemSpeed SpeedRange            `yaml:"itemSpeed"`
	Levels    []LevelConfig         `yaml:"levels"`
	Fallback  LevelConfig           `yaml:"fallback"`
}

// DisplayConfig sets the logical resolution and tick rate.
type DisplayConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Framerate int    `yaml:"framerate"`
	Title     string `yaml:"title"`
}

// PlayerConfig holds the player's tuning numbers and sprite paths.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	Lives           int     `yaml:"lives"`
	ShieldDuration  float64 `yaml:"shieldDuration"`
	ShieldCooldown  float64 `yaml:"shieldCooldown"`
	SlipDuration    float64 `yaml:"slipDuration"`
	BoostMultiplier float64 `yaml:"boostMultiplier"`
	BoostDuration   float64 `yaml:"boostDuration"`
	Sprite          string  `yaml:"sprite"`
	ShieldSprite    string  `yaml:"shieldSprite"`
}

// ItemConfig describes one falling item kind.
type ItemConfig struct {
	Value  int     `yaml:"value"`
	Effect string  `yaml:"effect"` // "", "slip" or "boost"
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Sprite string  `yaml:"sprite"`
}

// SpeedRange is the base vertical fall speed range, scaled per level.
type SpeedRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// LevelConfig is one row of the level table.
type LevelConfig struct {
	Level           int          `yaml:"level"`
	SpawnInterval   float64      `yaml:"spawnInterval"`
	MaxItems        int          `yaml:"maxItems"`
	SpeedMultiplier float64      `yaml:"speedMultiplier"`
	AdvanceScore    int          `yaml:"advanceScore"`
	Music           string       `yaml:"music"`
	Weights         []ItemWeight `yaml:"weights"`
	Boss            *BossConfig  `yaml:"boss"`
}

// ItemWeight is one entry of a level's weighted item table. Slice order is
// the table-declaration order the sampler walks.
type ItemWeight struct {
	Kind   string `yaml:"kind"`
	Weight int    `yaml:"weight"`
}

// BossConfig describes the boss encounter of a level, when present.
type BossConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	FireInterval  float64 `yaml:"fireInterval"`
	MaxHits       int     `yaml:"maxHits"`
	MissileSpeed  float64 `yaml:"missileSpeed"`
	MissileWidth  float64 `yaml:"missileWidth"`
	MissileHeight float64 `yaml:"missileHeight"`
	Bonus         int     `yaml:"bonus"`
	Sprite        string  `yaml:"sprite"`
	MissileSprite string  `yaml:"missileSprite"`
}

// LevelFor returns the table row for the given level number, or the
// designated fallback row when the table has no entry for it.
func (c *Config) LevelFor(n int) LevelConfig {
	for _, lvl := range c.Levels {
		if lvl.Level == n {
			return lvl
		}
	}
	fb := c.Fallback
	fb.Level = n
	return fb
}

// HasLevel reports whether the table has an explicit row for n.
func (c *Config) HasLevel(n int) bool {
	for _, lvl := range c.Levels {
		if lvl.Level == n {
			return true
		}
	}
	return false
}

// MaxLevel returns the highest level number in the table.
func (c *Config) MaxLevel() int {
	max := 0
	for _, lvl := range c.Levels {
		if lvl.Level > max {
			max = lvl.Level
		}
	}
	return max
}
