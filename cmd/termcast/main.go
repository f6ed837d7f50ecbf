// termcast renders the same walls as the window build, one terminal cell
// per column sample.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"wallcast/config"
	"wallcast/model"
	"wallcast/raycast"
	"wallcast/session"
)

const tick = 15 * time.Millisecond

var (
	skyStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	floorStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDarkGreen)
	wallStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorSlateGray)
	infoStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow)
)

var errQuit = errors.New("quit")

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("start tcell: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init tcell screen: %v", err)
	}

	err = run(screen, cfg)
	screen.Fini()
	if err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}

func run(screen tcell.Screen, cfg *config.Config) error {
	screen.HideCursor()
	screen.SetStyle(skyStyle)
	screen.Clear()

	width, _ := screen.Size()
	s, err := session.New(cfg, width)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	last := time.Now()

	for range ticker.C {
		// terminals report key presses, not held keys, so each frame acts
		// on the presses that arrived since the last one
		var in model.Input
	drain:
		for {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if quit := readKey(ev, &in); quit {
						return errQuit
					}
					if ev.Rune() == 'r' || ev.Rune() == 'R' {
						if err := s.Reset(); err != nil {
							return err
						}
					}
				case *tcell.EventResize:
					screen.Sync()
				}
			default:
				break drain
			}
		}

		now := time.Now()
		s.Step(now.Sub(last).Seconds(), in)
		last = now

		draw(screen, s)
	}
	return nil
}

func readKey(ev *tcell.EventKey, in *model.Input) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		in.Forward = true
	case tcell.KeyDown:
		in.Backward = true
	case tcell.KeyLeft:
		in.TurnLeft = true
	case tcell.KeyRight:
		in.TurnRight = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			in.Forward = true
		case 's', 'S':
			in.Backward = true
		case 'a', 'A':
			in.TurnLeft = true
		case 'd', 'D':
			in.TurnRight = true
		case 'q', 'Q':
			return true
		}
	}
	return false
}

func draw(screen tcell.Screen, s *session.Session) {
	width, height := screen.Size()
	distances, orientations := s.Columns(width)

	for x := 0; x < width; x++ {
		top, bottom := raycast.Strip(distances[x], height)
		shade := shadeRune(distances[x], orientations[x])
		for y := 0; y < height; y++ {
			switch {
			case y < top:
				screen.SetContent(x, y, ' ', nil, skyStyle)
			case y <= bottom:
				screen.SetContent(x, y, shade, nil, wallStyle)
			default:
				screen.SetContent(x, y, floorRune(y, height), nil, floorStyle)
			}
		}
	}

	p := s.Player
	info := fmt.Sprintf("x=%.2f y=%.2f %s", p.Position.X, p.Position.Y, s.Intent.Action)
	for i, r := range info {
		if i >= width {
			break
		}
		screen.SetContent(i, 0, r, nil, infoStyle)
	}

	screen.Show()
}

// shadeRune picks a denser block for nearer walls. Vertical faces use one
// step lighter so corners stay readable.
func shadeRune(dist float64, o raycast.Orientation) rune {
	shades := []rune{'█', '▓', '▒', '░', ' '}
	i := 4
	switch {
	case dist < 2:
		i = 0
	case dist < 4:
		i = 1
	case dist < 8:
		i = 2
	case dist < 16:
		i = 3
	}
	if o == raycast.Vertical && i < 4 {
		i++
	}
	return shades[i]
}

func floorRune(y, height int) rune {
	b := 1 - (float64(y)-float64(height)/2)/(float64(height)/2)
	switch {
	case b < 0.25:
		return '#'
	case b < 0.5:
		return 'x'
	case b < 0.75:
		return '.'
	case b < 0.9:
		return '-'
	}
	return ' '
}
