// Package hud draws the text overlay on top of the rendered walls.
package hud

import (
	"fmt"
	"image/color"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"wallcast/model"
)

var textColor = color.RGBA{230, 230, 230, 255}

// NewFace parses the bundled Go Regular font at the given point size.
func NewFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

type HUD struct {
	ui       *ebitenui.UI
	position *widget.Text
	heading  *widget.Text
	status   *widget.Text
}

func New(face font.Face) *HUD {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	h := &HUD{
		position: widget.NewText(widget.TextOpts.Text("", face, textColor)),
		heading:  widget.NewText(widget.TextOpts.Text("", face, textColor)),
		status:   widget.NewText(widget.TextOpts.Text("", face, textColor)),
	}
	root.AddChild(h.position)
	root.AddChild(h.heading)
	root.AddChild(h.status)
	root.AddChild(widget.NewText(widget.TextOpts.Text("arrows/WASD to move and turn, ESC to exit", face, textColor)))

	h.ui = &ebitenui.UI{Container: root}
	return h
}

// Update refreshes the labels from the player and frame stats.
func (h *HUD) Update(p *model.Player, in model.Intent, fps float64) {
	h.position.Label = fmt.Sprintf("pos %.2f, %.2f", p.Position.X, p.Position.Y)
	h.heading.Label = fmt.Sprintf("heading %.0f°  fov %.0f°", headingDegrees(p.Heading()), degrees(p.FOV()))
	h.status.Label = fmt.Sprintf("%s  %.0f fps", in.Action, fps)
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

func headingDegrees(rad float64) float64 {
	d := degrees(rad)
	if d < 0 {
		d += 360
	}
	return d
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
