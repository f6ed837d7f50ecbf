package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wallcast/level"
	"wallcast/model"
)

const (
	minimapScale  int = 6
	minimapMargin int = 10
)

var (
	minimapWall  = color.RGBA{50, 50, 50, 255}
	minimapBlock = color.RGBA{110, 90, 140, 255}
	minimapFloor = color.RGBA{200, 200, 200, 255}
	minimapView  = color.RGBA{255, 255, 0, 160}
)

// generateStaticMinimap draws the grid once; only the player marker changes
// from frame to frame.
func (g *Game) generateStaticMinimap() {
	grid := g.session.Level.Grid
	g.minimap = ebiten.NewImage(grid.Width()*minimapScale, grid.Height()*minimapScale)
	s := float32(minimapScale)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			tileColor := minimapFloor
			switch grid.At(x, y) {
			case model.Open:
			case level.Wall:
				tileColor = minimapWall
			default:
				tileColor = minimapBlock
			}
			vector.DrawFilledRect(g.minimap, float32(x)*s, float32(y)*s, s, s, tileColor, false)
		}
	}
}

func (g *Game) minimapOrigin() (float32, float32) {
	return float32(g.screenWidth - g.minimap.Bounds().Dx() - minimapMargin), float32(minimapMargin)
}

func (g *Game) drawMinimap(screen *ebiten.Image) {
	ox, oy := g.minimapOrigin()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ox), float64(oy))
	screen.DrawImage(g.minimap, op)

	p := g.session.Player
	s := float32(minimapScale)
	px := ox + float32(p.Position.X)*s
	py := oy + float32(p.Position.Y)*s

	// view cone edges follow the outermost rays, dir -/+ plane
	left := p.Direction.Sub(p.Plane)
	right := p.Direction.Add(p.Plane)
	reach := 2 * s
	vector.StrokeLine(screen, px, py, px+float32(left.X)*reach, py+float32(left.Y)*reach, 1, minimapView, false)
	vector.StrokeLine(screen, px, py, px+float32(right.X)*reach, py+float32(right.Y)*reach, 1, minimapView, false)

	vector.DrawFilledCircle(screen, px, py, s/2, color.RGBA{255, 0, 0, 255}, false)
}
