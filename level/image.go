package level

import (
	"image"
	"image/color"
	_ "image/png"
	"io"

	"wallcast/model"
)

// Colour keys for image maps.
var (
	ColorOpen   = color.RGBA{255, 255, 255, 255}
	ColorWall   = color.RGBA{0, 0, 0, 255}
	ColorSpawn  = color.RGBA{0, 0, 255, 255}
	ColorPillar = color.RGBA{255, 255, 0, 255}
)

// DecodeImage builds a level from an image, one pixel per cell. White is
// open, blue is the open spawn cell, yellow is a pillar (code 2) and every
// other colour is plain wall.
func DecodeImage(r io.Reader) (*Level, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	rows := make([][]int, bounds.Dy())
	var spawn *[2]int

	for y := 0; y < bounds.Dy(); y++ {
		rows[y] = make([]int, bounds.Dx())
		for x := 0; x < bounds.Dx(); x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)

			switch c {
			case ColorOpen:
				rows[y][x] = model.Open
			case ColorSpawn:
				rows[y][x] = model.Open
				if spawn == nil {
					spawn = &[2]int{x, y}
				}
			case ColorPillar:
				rows[y][x] = 2
			default:
				rows[y][x] = Wall
			}
		}
	}

	return build(rows, spawn)
}
