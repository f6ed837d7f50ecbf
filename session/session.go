// Package session owns one running simulation: the loaded level, the player
// and the per-frame column samples. Frontends feed it elapsed time and input
// and read back distances to draw.
package session

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/jinzhu/copier"

	"wallcast/config"
	"wallcast/level"
	"wallcast/model"
	"wallcast/raycast"
)

//go:embed maps/default.map
var defaultMap []byte

type Session struct {
	Level  *level.Level
	Player *model.Player
	Intent model.Intent

	spawn        model.Player
	frame        config.Frame
	sampler      *raycast.Sampler
	distances    []float64
	orientations []raycast.Orientation
	stale        bool
}

// New loads the configured map, or the built-in room when none is set, and
// places the player on its spawn.
func New(cfg *config.Config, columns int) (*Session, error) {
	var lvl *level.Level
	var err error
	if cfg.Map.Path != "" {
		lvl, err = level.Load(cfg.Map.Path)
	} else {
		lvl, err = level.ParseText(bytes.NewReader(defaultMap))
	}
	if err != nil {
		return nil, fmt.Errorf("load map: %w", err)
	}

	p, err := model.NewPlayerFacing(
		lvl.Grid, lvl.Spawn,
		cfg.Player.Heading(), cfg.Player.Fov(),
		cfg.Player.MoveSpeed, cfg.Player.RotateSpeed,
	)
	if err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}

	s := &Session{
		Level:   lvl,
		Player:  p,
		spawn:   *p,
		frame:   cfg.Frame,
		sampler: raycast.NewSampler(columns),
		stale:   true,
	}
	return s, nil
}

// Step advances one frame: it derives the intent from the current input and
// applies it with the clamped elapsed time.
func (s *Session) Step(dt float64, in model.Input) model.Intent {
	s.Intent = model.IntentFor(in)
	s.Player.Apply(s.Level.Grid, s.frame.ClampDelta(dt), s.Intent)
	return s.Intent
}

// Reset puts the player back on the spawn with its starting basis.
func (s *Session) Reset() error {
	if err := copier.CopyWithOption(s.Player, &s.spawn, copier.Option{DeepCopy: true}); err != nil {
		return err
	}
	s.Player.Moved = true
	return nil
}

// Columns returns the perpendicular distances and orientations for the given
// screen width. The previous result is reused while the player has not moved.
func (s *Session) Columns(width int) ([]float64, []raycast.Orientation) {
	if width != s.sampler.Columns() {
		s.sampler.Resize(width)
		s.stale = true
	}
	if s.Player.Moved || s.stale {
		s.distances, s.orientations = s.sampler.Sample(*s.Player, s.Level.Grid)
		s.Player.Moved = false
		s.stale = false
	}
	return s.distances, s.orientations
}
