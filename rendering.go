package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wallcast/raycast"
)

var (
	ceilingColor = color.RGBA{160, 227, 254, 255}
	floorColor   = color.RGBA{30, 30, 30, 255}
	wallColor    = color.RGBA{200, 200, 200, 255}
)

// drawWalls paints ceiling and floor halves, then one vertical strip per
// screen column from the sampled distances.
func (g *Game) drawWalls(screen *ebiten.Image) {
	w, h := g.screenWidth, g.screenHeight
	horizon := float32(h / 2)
	vector.DrawFilledRect(screen, 0, 0, float32(w), horizon, ceilingColor, false)
	vector.DrawFilledRect(screen, 0, horizon, float32(w), float32(h)-horizon, floorColor, false)

	distances, orientations := g.session.Columns(w)
	if len(distances) == 0 {
		ebitenutil.DebugPrint(screen, "no columns to draw")
		return
	}

	for x, dist := range distances {
		drawStart, drawEnd := raycast.Strip(dist, h)
		c := raycast.Shade(wallColor, orientations[x])
		vector.DrawFilledRect(screen, float32(x), float32(drawStart), 1, float32(drawEnd-drawStart+1), c, false)
	}
}
