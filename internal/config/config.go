// Package config provides YAML-based game tunables and difficulty
// management for the gameforge platform.
package config

// ShooterConfig contains all configuration for the space shooter.
type ShooterConfig struct {
	Player     ShooterPlayer    `yaml:"player"`
	Enemies    ShooterEnemies   `yaml:"enemies"`
	Powerups   ShooterPowerups  `yaml:"powerups"`
	Scoring    ShooterScoring   `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterPlayer defines the player ship parameters.
type ShooterPlayer struct {
	Speed         float64 `yaml:"speed"`
	MaxHealth     int     `yaml:"max_health"`
	ShootCooldown int     `yaml:"shoot_cooldown"` // Ticks between shots
	BulletSpeed   float64 `yaml:"bullet_speed"`
}

// ShooterEnemies defines the falling enemy wave parameters.
type ShooterEnemies struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	MaxDrift float64 `yaml:"max_drift"`
}

// ShooterPowerups defines drop chances for pickups.
type ShooterPowerups struct {
	HealChance float64 `yaml:"heal_chance"`
	HealAmount int     `yaml:"heal_amount"`
	FallSpeed  float64 `yaml:"fall_speed"`
}

// ShooterScoring defines point values and damage.
type ShooterScoring struct {
	KillPoints      int `yaml:"kill_points"`
	CollisionDamage int `yaml:"collision_damage"`
}

// TowerDefConfig contains all configuration for the tower defense game.
type TowerDefConfig struct {
	Towers     TowerDefTowers   `yaml:"towers"`
	Enemies    TowerDefEnemies  `yaml:"enemies"`
	Waves      TowerDefWaves    `yaml:"waves"`
	Gameplay   TowerDefGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TowerDefTowers defines tower stats and placement rules.
type TowerDefTowers struct {
	Cost          int     `yaml:"cost"`
	Damage        int     `yaml:"damage"`
	Range         float64 `yaml:"range"`
	AttackTicks   int     `yaml:"attack_ticks"` // Ticks between shots
	PathClearance int     `yaml:"path_clearance"`
}

// TowerDefEnemies defines creep stats.
type TowerDefEnemies struct {
	BaseHealth    int     `yaml:"base_health"`
	HealthPerWave int     `yaml:"health_per_wave"`
	Speed         float64 `yaml:"speed"`
	Reward        int     `yaml:"reward"`
}

// TowerDefWaves defines wave composition and pacing.
type TowerDefWaves struct {
	BaseCount  int `yaml:"base_count"`
	PerWave    int `yaml:"per_wave"`
	SpawnTicks int `yaml:"spawn_ticks"`
	ClearBonus int `yaml:"clear_bonus"`
}

// TowerDefGameplay defines starting resources.
type TowerDefGameplay struct {
	StartGold int `yaml:"start_gold"`
	Lives     int `yaml:"lives"`
}

// JumperConfig contains all configuration for the vertical jumper.
type JumperConfig struct {
	Physics    JumperPhysics    `yaml:"physics"`
	Platforms  JumperPlatforms  `yaml:"platforms"`
	Camera     JumperCamera     `yaml:"camera"`
	Scoring    JumperScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// JumperPhysics defines gravity and jump impulses.
type JumperPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	SuperImpulse float64 `yaml:"super_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	MoveSpeed    float64 `yaml:"move_speed"`
}

// JumperPlatforms defines platform generation parameters.
type JumperPlatforms struct {
	MinWidth int `yaml:"min_width"`
	MaxWidth int `yaml:"max_width"`
	// ReachFactor scales the theoretical max jump height when deciding
	// whether the next platform needs a super-jump pad.
	ReachFactor float64 `yaml:"reach_factor"`
}

// JumperCamera defines camera follow behavior.
type JumperCamera struct {
	FollowRate float64 `yaml:"follow_rate"`
	// KillFactor is how many screen heights below the camera the player
	// may fall before the run ends.
	KillFactor float64 `yaml:"kill_factor"`
}

// JumperScoring defines point values.
type JumperScoring struct {
	PlatformPoints int `yaml:"platform_points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`
	SpacingReduction int     `yaml:"spacing_reduction"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
