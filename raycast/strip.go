package raycast

import "image/color"

// minDistance stands in for a zero distance when the player touches a wall.
const minDistance = 1e-3

// Strip returns the top and bottom rows of a wall strip centered on the
// horizon, clipped to the screen. The strip height is inversely proportional
// to the perpendicular distance.
func Strip(dist float64, screenHeight int) (int, int) {
	if dist < minDistance {
		dist = minDistance
	}

	lineHeight := int(float64(screenHeight) / dist)
	drawStart := -lineHeight/2 + screenHeight/2
	drawEnd := lineHeight/2 + screenHeight/2

	if drawStart < 0 {
		drawStart = 0
	}
	if drawEnd >= screenHeight {
		drawEnd = screenHeight - 1
	}
	return drawStart, drawEnd
}

// Shade halves the brightness of vertical faces so the two wall families
// read apart.
func Shade(base color.RGBA, o Orientation) color.RGBA {
	if o == Horizontal {
		return base
	}
	return color.RGBA{R: base.R / 2, G: base.G / 2, B: base.B / 2, A: base.A}
}
