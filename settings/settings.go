// Package settings holds the player-facing configuration file. Values feed
// the window setup and the atomic camera resize at startup and whenever the
// file is re-applied.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Settings is the on-disk configuration. Zero values are replaced by
// defaults on load so a partial file stays valid.
type Settings struct {
	// ViewWidth/ViewHeight are the internal render resolution, which is also
	// the camera viewport size in world pixels.
	ViewWidth  int `yaml:"view_width"`
	ViewHeight int `yaml:"view_height"`

	Fullscreen bool `yaml:"fullscreen"`

	// CameraSmooth is the camera follow factor in (0, 1].
	CameraSmooth float64 `yaml:"camera_smooth"`
}

// Default returns the baseline configuration.
func Default() Settings {
	return Settings{
		ViewWidth:    640,
		ViewHeight:   384,
		CameraSmooth: 0.15,
	}
}

// Load reads settings from path. A missing file yields defaults silently; a
// malformed file yields defaults with a warning. Neither is fatal.
func Load(path string) Settings {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("could not read settings, using defaults", "path", path, "err", err)
		}
		return s
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		log.Warn("could not parse settings, using defaults", "path", path, "err", err)
		return Default()
	}
	s.fillDefaults()
	return s
}

// Save writes the settings to path.
func Save(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}

func (s *Settings) fillDefaults() {
	def := Default()
	if s.ViewWidth <= 0 {
		s.ViewWidth = def.ViewWidth
	}
	if s.ViewHeight <= 0 {
		s.ViewHeight = def.ViewHeight
	}
	if s.CameraSmooth <= 0 || s.CameraSmooth > 1 {
		s.CameraSmooth = def.CameraSmooth
	}
}
