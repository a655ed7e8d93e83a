package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the on-disk override layout. Keys that are absent keep the
// defaults populated in init.
type File struct {
	Game     Config         `yaml:"game"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Orb      OrbConfig      `yaml:"orb"`
	Pushable PushableConfig `yaml:"pushable"`
	Level    LevelConfig    `yaml:"level"`
	Puzzle   PuzzleConfig   `yaml:"puzzle"`
	Death    DeathConfig    `yaml:"death"`
	UI       UIConfig       `yaml:"ui"`
	Audio    AudioConfig    `yaml:"audio"`
	Debug    DebugConfig    `yaml:"debug"`
}

func current() File {
	return File{
		Game:     *C,
		Physics:  Physics,
		Player:   Player,
		Orb:      Orb,
		Pushable: Pushable,
		Level:    Level,
		Puzzle:   Puzzle,
		Death:    Death,
		UI:       UI,
		Audio:    Audio,
		Debug:    Debug,
	}
}

func (f File) apply() {
	game := f.Game
	C = &game
	Physics = f.Physics
	Player = f.Player
	Orb = f.Orb
	Pushable = f.Pushable
	Level = f.Level
	Puzzle = f.Puzzle
	Death = f.Death
	UI = f.UI
	Audio = f.Audio
	Debug = f.Debug
}

// ApplyYAML merges a YAML document over the current configuration.
func ApplyYAML(data []byte) error {
	f := current()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	f.apply()
	return nil
}

// LoadOverrides applies the first override file found.
// Search order: customPath -> ~/.dietowin/config.yaml -> ./configs/dietowin.yaml.
// Returns the path that was applied, or "" when the defaults are in use.
func LoadOverrides(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := ApplyYAML(data); err != nil {
			return "", fmt.Errorf("%s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "dietowin.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := ApplyYAML(data); err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// DataDir returns ~/.dietowin, or "" when the home directory is unavailable.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dietowin")
}

func userConfigPath(filename string) string {
	dir := DataDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}
