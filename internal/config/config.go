package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sync"

	"github.com/BurntSushi/toml"
)

// FileName is the optional config file looked up in the working directory.
const FileName = "learngl.toml"

// Window holds window and context settings
type Window struct {
	GLMajor     int  `toml:"gl_major"`
	GLMinor     int  `toml:"gl_minor"`
	VSync       bool `toml:"vsync"`
	FPSLimit    int  `toml:"fps_limit"`
	SlowFrameMS int  `toml:"slow_frame_ms"`
}

// Overlay holds stats overlay settings
type Overlay struct {
	Enabled bool `toml:"enabled"`
}

// Assets holds asset location settings
type Assets struct {
	Dir   string `toml:"dir"`
	Watch bool   `toml:"watch"`
}

// Log holds logging switches
type Log struct {
	Resources bool `toml:"resources"`
}

// Config is the whole learngl.toml file.
type Config struct {
	Window  Window  `toml:"window"`
	Overlay Overlay `toml:"overlay"`
	Assets  Assets  `toml:"assets"`
	Log     Log     `toml:"log"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Window: Window{
			GLMajor:     4,
			GLMinor:     1,
			VSync:       true,
			FPSLimit:    0,
			SlowFrameMS: 50,
		},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	c := Default()
	if _, err := toml.DecodeFile(path, &c); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("could not read config file %s: %w", path, err)
	}
	c.clamp()
	return c, nil
}

func (c *Config) clamp() {
	// core profile contexts below 3.3 cannot run the demo shaders
	if c.Window.GLMajor < 3 || (c.Window.GLMajor == 3 && c.Window.GLMinor < 3) {
		log.Printf("config: GL %d.%d too old, using 3.3", c.Window.GLMajor, c.Window.GLMinor)
		c.Window.GLMajor, c.Window.GLMinor = 3, 3
	}
	c.Window.FPSLimit = clampInt(c.Window.FPSLimit, 0, 1000)
	if c.Window.SlowFrameMS <= 0 {
		c.Window.SlowFrameMS = Default().Window.SlowFrameMS
	}
	if c.Assets.Dir == "" {
		c.Assets.Watch = false
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RuntimeSettings holds the values read every frame
type RuntimeSettings struct {
	mu       sync.RWMutex
	fpsLimit int
}

var globalRuntimeSettings = &RuntimeSettings{}

// Apply makes c the active runtime configuration.
func Apply(c Config) {
	SetFPSLimit(c.Window.FPSLimit)
}

// GetFPSLimit returns the frame cap, 0 meaning unlimited
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	globalRuntimeSettings.fpsLimit = clampInt(limit, 0, 1000)
}
