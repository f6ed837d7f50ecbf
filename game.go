package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"wallcast/config"
	"wallcast/hud"
	"wallcast/session"
)

// main game object
type Game struct {
	session *session.Session
	hud     *hud.HUD
	minimap *ebiten.Image

	// logical screen size, follows the window
	screenWidth  int
	screenHeight int

	lastUpdate time.Time
	showHUD    bool
}

func NewGame(cfg *config.Config) (*Game, error) {
	s, err := session.New(cfg, cfg.Window.Width)
	if err != nil {
		return nil, err
	}

	face, err := hud.NewFace(16)
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}

	source := cfg.Map.Path
	if source == "" {
		source = "built-in map"
	}
	g := s.Level.Grid
	log.Printf("loaded %s: %dx%d, spawn at %.1f,%.1f", source, g.Width(), g.Height(), s.Level.Spawn.X, s.Level.Spawn.Y)

	game := &Game{
		session:      s,
		hud:          hud.New(face),
		screenWidth:  cfg.Window.Width,
		screenHeight: cfg.Window.Height,
		showHUD:      true,
	}
	game.generateStaticMinimap()
	return game, nil
}

// Layout keeps one logical pixel per window pixel so every column gets a ray.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth, g.screenHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now

	if err := g.handleInput(dt); err != nil {
		return err
	}

	if g.showHUD {
		g.hud.Update(g.session.Player, g.session.Intent, ebiten.ActualFPS())
	}
	return nil
}

// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWalls(screen)
	g.drawMinimap(screen)
	if g.showHUD {
		g.hud.Draw(screen)
	}
}
