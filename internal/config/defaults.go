package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/towerdef.yaml
var defaultTowerDefYAML []byte

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultShooterConfig returns the default space shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: ShooterPlayer{
			Speed:         1.0,
			MaxHealth:     100,
			ShootCooldown: 15, // 250ms at 60 ticks/sec
			BulletSpeed:   1.2,
		},
		Enemies: ShooterEnemies{
			Count:    8,
			MinSpeed: 0.1,
			MaxSpeed: 0.5,
			MaxDrift: 0.2,
		},
		Powerups: ShooterPowerups{
			HealChance: 0.01,
			HealAmount: 20,
			FallSpeed:  0.2,
		},
		Scoring: ShooterScoring{
			KillPoints:      50,
			CollisionDamage: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultTowerDefConfig returns the default tower defense configuration.
func DefaultTowerDefConfig() TowerDefConfig {
	return TowerDefConfig{
		Towers: TowerDefTowers{
			Cost:          50,
			Damage:        10,
			Range:         11,
			AttackTicks:   60, // 1 shot/sec at 60 ticks/sec
			PathClearance: 2,
		},
		Enemies: TowerDefEnemies{
			BaseHealth:    30,
			HealthPerWave: 10,
			Speed:         0.15,
			Reward:        10,
		},
		Waves: TowerDefWaves{
			BaseCount:  5,
			PerWave:    2,
			SpawnTicks: 60,
			ClearBonus: 50,
		},
		Gameplay: TowerDefGameplay{
			StartGold: 100,
			Lives:     20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultJumperConfig returns the default vertical jumper configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Physics: JumperPhysics{
			Gravity:      0.07,
			JumpImpulse:  -1.3,
			SuperImpulse: -2.6,
			MaxFallSpeed: 1.5,
			MoveSpeed:    0.9,
		},
		Platforms: JumperPlatforms{
			MinWidth:    5,
			MaxWidth:    12,
			ReachFactor: 0.8,
		},
		Camera: JumperCamera{
			FollowRate: 0.1,
			KillFactor: 1.2,
		},
		Scoring: JumperScoring{
			PlatformPoints: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.3,
				SpacingReduction: 2,
			},
		},
	}
}
