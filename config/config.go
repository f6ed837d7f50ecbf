// Package config loads runtime settings from defaults, an optional config
// file, WALLCAST_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	minFovDegrees = 30
	maxFovDegrees = 150
)

var ErrInvalid = errors.New("invalid configuration")

type Window struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

type Map struct {
	Path string `mapstructure:"path"`
}

type Player struct {
	MoveSpeed      float64 `mapstructure:"move_speed"`
	RotateSpeed    float64 `mapstructure:"rotate_speed"`
	FovDegrees     float64 `mapstructure:"fov_degrees"`
	HeadingDegrees float64 `mapstructure:"heading_degrees"`
}

type Frame struct {
	// MaxDelta caps the elapsed seconds fed to a single step.
	MaxDelta float64 `mapstructure:"max_delta"`
}

type Config struct {
	Window Window `mapstructure:"window"`
	Map    Map    `mapstructure:"map"`
	Player Player `mapstructure:"player"`
	Frame  Frame  `mapstructure:"frame"`
}

// Fov returns the configured field of view in radians.
func (p Player) Fov() float64 {
	return radians(p.FovDegrees)
}

// Heading returns the configured initial heading in radians.
func (p Player) Heading() float64 {
	return radians(p.HeadingDegrees)
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "wallcast")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("map.path", "")
	v.SetDefault("player.move_speed", 3.0)
	v.SetDefault("player.rotate_speed", 1.0)
	v.SetDefault("player.fov_degrees", 66.0)
	v.SetDefault("player.heading_degrees", 0.0)
	v.SetDefault("frame.max_delta", 0.1)
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (yaml, toml or json)")
	fs.String("map", "", "map file to load (.png or text)")
	fs.Int("width", 0, "window width in pixels")
	fs.Int("height", 0, "window height in pixels")
	fs.Float64("move-speed", 0, "player move speed in grid units per second")
	fs.Float64("rotate-speed", 0, "player turn speed in quarter turns per second")
	fs.Float64("fov", 0, "horizontal field of view in degrees")
	return fs
}

var flagKeys = map[string]string{
	"map":          "map.path",
	"width":        "window.width",
	"height":       "window.height",
	"move-speed":   "player.move_speed",
	"rotate-speed": "player.rotate_speed",
	"fov":          "player.fov_degrees",
}

// Load resolves the configuration for a program invoked with args (without
// the program name).
func Load(name string, args []string) (*Config, error) {
	fs := newFlagSet(name)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("WALLCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("wallcast")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// only flags given on the command line override lower layers
	for flagName, key := range flagKeys {
		if f := fs.Lookup(flagName); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalid)
	}
	if c.Player.MoveSpeed <= 0 {
		return fmt.Errorf("move speed %g: %w", c.Player.MoveSpeed, ErrInvalid)
	}
	if c.Player.RotateSpeed <= 0 {
		return fmt.Errorf("rotate speed %g: %w", c.Player.RotateSpeed, ErrInvalid)
	}
	if c.Frame.MaxDelta <= 0 {
		return fmt.Errorf("frame max delta %g: %w", c.Frame.MaxDelta, ErrInvalid)
	}
	c.Player.FovDegrees = geom.Clamp(c.Player.FovDegrees, minFovDegrees, maxFovDegrees)
	return nil
}

// ClampDelta bounds a measured frame time to [0, MaxDelta].
func (f Frame) ClampDelta(dt float64) float64 {
	return geom.Clamp(dt, 0, f.MaxDelta)
}
