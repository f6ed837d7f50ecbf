package raycast

import (
	"image/color"
	"math"
	"testing"

	"wallcast/model"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func approxVec(a, b model.Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func mustGrid(t *testing.T, rows [][]int) *model.Grid {
	t.Helper()
	g, err := model.NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func squareGrid(t *testing.T) *model.Grid {
	return mustGrid(t, [][]int{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	})
}

// boxGrid returns a closed room with the given number of open rows and columns.
func boxGrid(t *testing.T, openW, openH int) *model.Grid {
	t.Helper()
	rows := make([][]int, openH+2)
	for y := range rows {
		rows[y] = make([]int, openW+2)
		for x := range rows[y] {
			if x == 0 || y == 0 || x == openW+1 || y == openH+1 {
				rows[y][x] = 1
			}
		}
	}
	return mustGrid(t, rows)
}

func TestCastScenarios(t *testing.T) {
	g := squareGrid(t)

	tests := []struct {
		name   string
		origin model.Vec2
		dir    model.Vec2
		point  model.Vec2
		orient Orientation
	}{
		{"diagonal corner", model.Vec2{X: 1, Y: 1}, model.Vec2{X: 1, Y: 1}, model.Vec2{X: 3, Y: 3}, Horizontal},
		{"along x", model.Vec2{X: 1, Y: 1}, model.Vec2{X: 1, Y: 0}, model.Vec2{X: 3, Y: 1}, Vertical},
		{"along y", model.Vec2{X: 1, Y: 1}, model.Vec2{X: 0, Y: 1}, model.Vec2{X: 1, Y: 3}, Horizontal},
		{"shallow slope", model.Vec2{X: 1, Y: 1}, model.Vec2{X: 2, Y: 1}, model.Vec2{X: 3, Y: 2}, Vertical},
		{"steep slope", model.Vec2{X: 1, Y: 1}, model.Vec2{X: 1, Y: 2}, model.Vec2{X: 2, Y: 3}, Horizontal},
		{"center diagonal", model.Vec2{X: 1.5, Y: 1.5}, model.Vec2{X: 1, Y: 1}, model.Vec2{X: 3, Y: 3}, Horizontal},
		{"center shallow", model.Vec2{X: 1.5, Y: 1.5}, model.Vec2{X: 2, Y: 1}, model.Vec2{X: 3, Y: 2.25}, Vertical},
		{"center west", model.Vec2{X: 1.5, Y: 1.5}, model.Vec2{X: -1, Y: 0}, model.Vec2{X: 1, Y: 1.5}, Vertical},
		{"center north", model.Vec2{X: 1.5, Y: 1.5}, model.Vec2{X: 0, Y: -3}, model.Vec2{X: 1.5, Y: 1}, Horizontal},
		{"center north west", model.Vec2{X: 2.5, Y: 2.5}, model.Vec2{X: -1, Y: -2}, model.Vec2{X: 1.75, Y: 1}, Horizontal},
		{"on west edge facing west", model.Vec2{X: 1, Y: 1.5}, model.Vec2{X: -1, Y: 0}, model.Vec2{X: 1, Y: 1.5}, Vertical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := Cast(tt.origin, tt.dir, g)
			got := tt.origin.Add(hit.Offset)
			if !approxVec(got, tt.point) {
				t.Errorf("Expected hit point %v, got %v", tt.point, got)
			}
			if hit.Orientation != tt.orient {
				t.Errorf("Expected orientation %v, got %v", tt.orient, hit.Orientation)
			}
			if g.At(hit.CellX, hit.CellY) == model.Open {
				t.Errorf("Expected hit cell (%d,%d) to be a wall", hit.CellX, hit.CellY)
			}
		})
	}
}

func TestCastDistanceMatchesOffset(t *testing.T) {
	g := squareGrid(t)
	hit := Cast(model.Vec2{X: 1.5, Y: 1.5}, model.Vec2{X: 4, Y: 0}, g)
	if !approx(hit.Distance(), 1.5) {
		t.Errorf("Expected distance 1.5, got %v", hit.Distance())
	}
}

func TestCastAlwaysTerminatesOnBoundary(t *testing.T) {
	g := boxGrid(t, 7, 5)
	origins := []model.Vec2{{X: 1, Y: 1}, {X: 4.2, Y: 3.7}, {X: 7.99, Y: 5.99}, {X: 1.01, Y: 5.5}}

	for _, origin := range origins {
		for i := 0; i < 360; i += 7 {
			a := float64(i) * math.Pi / 180
			dir := model.Vec2{X: math.Cos(a), Y: math.Sin(a)}
			hit := Cast(origin, dir, g)

			p := origin.Add(hit.Offset)
			if p.X < 1-eps || p.Y < 1-eps || p.X > 8+eps || p.Y > 6+eps {
				t.Errorf("origin %v angle %d: hit %v lies inside the wall ring", origin, i, p)
			}
			onX := approx(p.X, 1) || approx(p.X, 8)
			onY := approx(p.Y, 1) || approx(p.Y, 6)
			if !onX && !onY {
				t.Errorf("origin %v angle %d: hit %v is not on the boundary", origin, i, p)
			}
			if hit.Orientation == Vertical && !onX {
				t.Errorf("origin %v angle %d: vertical hit %v off a vertical face", origin, i, p)
			}
			if hit.Orientation == Horizontal && !onY {
				t.Errorf("origin %v angle %d: horizontal hit %v off a horizontal face", origin, i, p)
			}
		}
	}
}

func TestCastStopsAtInteriorWall(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1, 1, 1, 1},
		{1, 0, 0, 2, 0, 1},
		{1, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1},
	})

	hit := Cast(model.Vec2{X: 1.5, Y: 1.5}, model.Vec2{X: 1, Y: 0}, g)
	if hit.CellX != 3 || hit.CellY != 1 {
		t.Errorf("Expected hit cell (3,1), got (%d,%d)", hit.CellX, hit.CellY)
	}
	if !approx(hit.Distance(), 1.5) {
		t.Errorf("Expected distance 1.5, got %v", hit.Distance())
	}

	hit = Cast(model.Vec2{X: 1.5, Y: 2.5}, model.Vec2{X: 1, Y: 0}, g)
	if hit.CellX != 5 {
		t.Errorf("Expected ray below the pillar to reach x=5, got %d", hit.CellX)
	}
}

func TestPerpendicularOffsetIsOrthogonalToPlane(t *testing.T) {
	plane := model.Vec2{X: 0.3, Y: -0.7}
	offsets := []model.Vec2{{X: 2, Y: 1}, {X: -1, Y: 4}, {X: 0.3, Y: -0.7}, {X: 5, Y: 0}}

	for _, off := range offsets {
		perp := PerpendicularOffset(off, plane)
		if !approx(perp.Dot(plane), 0) {
			t.Errorf("offset %v: Expected zero projection, got %v", off, perp.Dot(plane))
		}
		again := PerpendicularOffset(perp, plane)
		if !approxVec(again, perp) {
			t.Errorf("offset %v: Expected reprojection to be stable, got %v vs %v", off, again, perp)
		}
	}
}

func TestSampleFlatWallHasNoFisheye(t *testing.T) {
	g := boxGrid(t, 4, 7)
	p, err := model.NewPlayer(g, model.Vec2{X: 1.5, Y: 4.5}, model.Vec2{X: 1, Y: 0}, model.Vec2{X: 0, Y: 0.66}, 1, 1)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	dists, orients := Sample(*p, g, 320)
	if len(dists) != 320 || len(orients) != 320 {
		t.Fatalf("Expected 320 columns, got %d/%d", len(dists), len(orients))
	}
	for x := range dists {
		if !approx(dists[x], 3.5) {
			t.Errorf("column %d: Expected perpendicular distance 3.5, got %v", x, dists[x])
		}
		if orients[x] != Vertical {
			t.Errorf("column %d: Expected vertical wall, got %v", x, orients[x])
		}
	}
}

func TestSampleMatchesSequentialCast(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 2, 0, 0, 3, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 4, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
	})
	p, err := model.NewPlayerFacing(g, model.Vec2{X: 3.3, Y: 3.6}, -0.4, math.Pi/3, 1, 1)
	if err != nil {
		t.Fatalf("NewPlayerFacing: %v", err)
	}

	const columns = 1000
	dists, orients := Sample(*p, g, columns)

	for x := 0; x < columns; x++ {
		cameraX := 2*float64(x)/float64(columns) - 1
		ray := p.Direction.Add(p.Plane.Scale(cameraX))
		hit := Cast(p.Position, ray, g)
		want := PerpendicularOffset(hit.Offset, p.Plane).Len()
		if dists[x] != want || orients[x] != hit.Orientation {
			t.Fatalf("column %d: Expected (%v,%v), got (%v,%v)", x, want, hit.Orientation, dists[x], orients[x])
		}
	}
}

func TestSampleColumnOrder(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1},
	})
	p, _ := model.NewPlayer(g, model.Vec2{X: 3.5, Y: 5.5}, model.Vec2{X: 0, Y: -1}, model.Vec2{X: 0.66, Y: 0}, 1, 1)

	dists, _ := Sample(*p, g, 100)
	// facing north, the left column looks north-west and must not be mirrored
	left := Cast(p.Position, p.Direction.Sub(p.Plane), g)
	if !approx(dists[0], PerpendicularOffset(left.Offset, p.Plane).Len()) {
		t.Errorf("Expected column 0 to sample dir - plane")
	}
	if left.Offset.X >= 0 {
		t.Errorf("Expected column 0 to look west, got offset %v", left.Offset)
	}
}

func TestSampleEmpty(t *testing.T) {
	g := squareGrid(t)
	p, _ := model.NewPlayer(g, model.Vec2{X: 1.5, Y: 1.5}, model.Vec2{X: 1, Y: 0}, model.Vec2{X: 0, Y: 1}, 1, 1)

	for _, n := range []int{0, -3} {
		dists, orients := Sample(*p, g, n)
		if len(dists) != 0 || len(orients) != 0 {
			t.Errorf("columns %d: Expected empty output, got %d/%d", n, len(dists), len(orients))
		}
	}
}

func TestSamplerReusesBuffers(t *testing.T) {
	g := squareGrid(t)
	p, _ := model.NewPlayer(g, model.Vec2{X: 1.5, Y: 1.5}, model.Vec2{X: 1, Y: 0}, model.Vec2{X: 0, Y: 1}, 1, 1)

	s := NewSampler(200)
	first, _ := s.Sample(*p, g)
	second, _ := s.Sample(*p, g)
	if &first[0] != &second[0] {
		t.Error("Expected buffers to be reused between frames")
	}

	s.Resize(50)
	if s.Columns() != 50 {
		t.Errorf("Expected 50 columns, got %d", s.Columns())
	}
	third, _ := s.Sample(*p, g)
	if len(third) != 50 {
		t.Errorf("Expected 50 distances, got %d", len(third))
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name       string
		dist       float64
		height     int
		start, end int
	}{
		{"one unit fills the screen", 1, 600, 0, 599},
		{"two units", 2, 600, 150, 450},
		{"four units", 4, 600, 225, 375},
		{"touching clamps", 0, 600, 0, 599},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Strip(tt.dist, tt.height)
			if start != tt.start || end != tt.end {
				t.Errorf("Expected (%d,%d), got (%d,%d)", tt.start, tt.end, start, end)
			}
		})
	}
}

func TestShade(t *testing.T) {
	base := color.RGBA{R: 0, G: 255, B: 255, A: 255}
	if got := Shade(base, Horizontal); got != base {
		t.Errorf("Expected horizontal faces at full brightness, got %v", got)
	}
	if got := Shade(base, Vertical); got != (color.RGBA{R: 0, G: 127, B: 127, A: 255}) {
		t.Errorf("Expected vertical faces halved, got %v", got)
	}
}
