// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Asteroid  AsteroidConfig  `yaml:"asteroid"`
	Debris    DebrisConfig    `yaml:"debris"`
	Players   []PlayerConfig  `yaml:"players"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds per-tick kinematics parameters.
// Turning speed is fixed at one third of a rotation per second, so the
// per-tick turn rate is derived from ticks_per_second.
type PhysicsConfig struct {
	Thrust         float64 `yaml:"thrust"`           // velocity gain per tick while accelerating
	Drag           float64 `yaml:"drag"`             // isotropic velocity damping factor per tick
	TicksPerSecond int     `yaml:"ticks_per_second"` // nominal tick rate the constants assume
}

// BulletConfig holds bullet spawn parameters.
type BulletConfig struct {
	TTL          int     `yaml:"ttl"`           // lifetime in ticks
	Speed        float64 `yaml:"speed"`         // muzzle velocity added along the firer heading
	MuzzleOffset float64 `yaml:"muzzle_offset"` // spawn distance ahead of the firer
}

// AsteroidSizeConfig defines the procedural outline for one asteroid size.
type AsteroidSizeConfig struct {
	Verts     int     `yaml:"verts"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
}

// AsteroidSpawnConfig places one asteroid in the initial roster.
// Entries spawned outside the playfield should set enter_offscreen so
// they drift fully into view before wrap-around takes effect.
type AsteroidSpawnConfig struct {
	Size           int     `yaml:"size"`
	X              float64 `yaml:"x"`
	Y              float64 `yaml:"y"`
	VelX           float64 `yaml:"vel_x"`
	VelY           float64 `yaml:"vel_y"`
	EnterOffscreen bool    `yaml:"enter_offscreen"`
}

// AsteroidConfig holds asteroid geometry and split parameters.
type AsteroidConfig struct {
	SplitImpulse float64               `yaml:"split_impulse"` // child velocity offset on split
	Sizes        []AsteroidSizeConfig  `yaml:"sizes"`         // outline per size, smallest first
	Initial      []AsteroidSpawnConfig `yaml:"initial"`
}

// DebrisConfig holds debris particle parameters.
type DebrisConfig struct {
	TTL       int     `yaml:"ttl"`
	Speed     float64 `yaml:"speed"` // impulse magnitude in a random direction
	Verts     int     `yaml:"verts"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
}

// KeyNamesConfig holds the key binding names for one player.
// Names map to key codes in the game package; an empty name leaves the
// action unbound.
type KeyNamesConfig struct {
	Fire       string `yaml:"fire"`
	Accelerate string `yaml:"accelerate"`
	TurnLeft   string `yaml:"turn_left"`
	TurnRight  string `yaml:"turn_right"`
}

// PlayerConfig holds one player's spawn position and key bindings.
type PlayerConfig struct {
	X    float64        `yaml:"x"`
	Y    float64        `yaml:"y"`
	Keys KeyNamesConfig `yaml:"keys"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // window size in simulation seconds
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT       float64 // seconds per tick
	TurnRate float64 // radians per tick while a turn intent is held
	ScreenW  float64 // Screen.Width as float64
	ScreenH  float64 // Screen.Height as float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations the simulation cannot run with.
func (c *Config) validate() error {
	if c.Physics.TicksPerSecond <= 0 {
		return fmt.Errorf("physics.ticks_per_second must be positive, got %d", c.Physics.TicksPerSecond)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if len(c.Asteroid.Sizes) != 3 {
		return fmt.Errorf("asteroid.sizes must define exactly 3 sizes, got %d", len(c.Asteroid.Sizes))
	}
	for i, s := range c.Asteroid.Sizes {
		if s.Verts < 3 {
			return fmt.Errorf("asteroid.sizes[%d].verts must be at least 3, got %d", i, s.Verts)
		}
		if s.MinRadius <= 0 || s.MaxRadius < s.MinRadius {
			return fmt.Errorf("asteroid.sizes[%d] radius range [%v, %v] is invalid", i, s.MinRadius, s.MaxRadius)
		}
	}
	for i, a := range c.Asteroid.Initial {
		if a.Size < 1 || a.Size > 3 {
			return fmt.Errorf("asteroid.initial[%d].size must be in 1..3, got %d", i, a.Size)
		}
	}
	if c.Debris.Verts < 3 {
		return fmt.Errorf("debris.verts must be at least 3, got %d", c.Debris.Verts)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT = 1.0 / float64(c.Physics.TicksPerSecond)
	// One third of a rotation per second at the nominal tick rate.
	c.Derived.TurnRate = 2 * math.Pi / float64(c.Physics.TicksPerSecond*3)
	c.Derived.ScreenW = float64(c.Screen.Width)
	c.Derived.ScreenH = float64(c.Screen.Height)
}

// WriteYAML saves the configuration to the given path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
