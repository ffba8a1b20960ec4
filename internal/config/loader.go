package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShooter loads the space shooter configuration.
// Search order: customPath -> ~/.gameforge/configs/shooter.yaml ->
// ./configs/shooter.yaml -> embedded default.
func LoadShooter(customPath string) (ShooterConfig, error) {
	var cfg ShooterConfig
	if done, err := loadFrom(customPath, "shooter.yaml", &cfg); done {
		return cfg, err
	}
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig(), nil
	}
	return cfg, nil
}

// LoadTowerDef loads the tower defense configuration.
// Search order: customPath -> ~/.gameforge/configs/towerdef.yaml ->
// ./configs/towerdef.yaml -> embedded default.
func LoadTowerDef(customPath string) (TowerDefConfig, error) {
	var cfg TowerDefConfig
	if done, err := loadFrom(customPath, "towerdef.yaml", &cfg); done {
		return cfg, err
	}
	if err := yaml.Unmarshal(defaultTowerDefYAML, &cfg); err != nil {
		return DefaultTowerDefConfig(), nil
	}
	return cfg, nil
}

// LoadJumper loads the vertical jumper configuration.
// Search order: customPath -> ~/.gameforge/configs/jumper.yaml ->
// ./configs/jumper.yaml -> embedded default.
func LoadJumper(customPath string) (JumperConfig, error) {
	var cfg JumperConfig
	if done, err := loadFrom(customPath, "jumper.yaml", &cfg); done {
		return cfg, err
	}
	if err := yaml.Unmarshal(defaultJumperYAML, &cfg); err != nil {
		return DefaultJumperConfig(), nil
	}
	return cfg, nil
}

// loadFrom tries the explicit path, then the user and local config
// directories. Returns done=true when a source was found (or the explicit
// path failed, which is an error the caller should see).
func loadFrom(customPath, filename string, out any) (bool, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return true, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return true, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return true, nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return true, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return true, nil
		}
	}

	return false, nil
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gameforge", "configs", filename)
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Count = 6
	case DifficultyHard:
		cfg.Enemies.Count = 10
		cfg.Scoring.CollisionDamage = 34
	}
}

// ApplyTowerDefPreset modifies the config based on a difficulty preset.
func ApplyTowerDefPreset(cfg *TowerDefConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.StartGold = 150
		cfg.Gameplay.Lives = 30
	case DifficultyHard:
		cfg.Gameplay.Lives = 10
		cfg.Enemies.HealthPerWave = 15
	}
}

// ApplyJumperPreset modifies the config based on a difficulty preset.
func ApplyJumperPreset(cfg *JumperConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Platforms.MinWidth = 7
	case DifficultyHard:
		cfg.Platforms.MinWidth = 3
		cfg.Platforms.MaxWidth = 8
	}
}

func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}
