package raycast

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"wallcast/model"
)

// minChunk keeps tiny column counts on a single goroutine.
const minChunk = 64

// Sample casts one ray per screen column, left to right, and returns the
// perpendicular wall distance and wall orientation for each column.
func Sample(p model.Player, g *model.Grid, columns int) ([]float64, []Orientation) {
	s := NewSampler(columns)
	return s.Sample(p, g)
}

// Sampler keeps its output buffers between frames. The slices it returns are
// overwritten by the next call to Sample.
type Sampler struct {
	columns      int
	distances    []float64
	orientations []Orientation
	maxWorkers   int
}

func NewSampler(columns int) *Sampler {
	if columns < 0 {
		columns = 0
	}
	return &Sampler{
		columns:      columns,
		distances:    make([]float64, columns),
		orientations: make([]Orientation, columns),
		maxWorkers:   runtime.GOMAXPROCS(0),
	}
}

func (s *Sampler) Columns() int {
	return s.columns
}

// Resize reallocates the buffers when the column count changes.
func (s *Sampler) Resize(columns int) {
	if columns < 0 {
		columns = 0
	}
	if columns == s.columns {
		return
	}
	s.columns = columns
	s.distances = make([]float64, columns)
	s.orientations = make([]Orientation, columns)
}

func (s *Sampler) Sample(p model.Player, g *model.Grid) ([]float64, []Orientation) {
	if s.columns == 0 {
		return s.distances, s.orientations
	}

	chunk := s.columns / s.maxWorkers
	if chunk < minChunk {
		chunk = minChunk
	}

	// each goroutine owns a disjoint column range; p and g are only read
	var eg errgroup.Group
	eg.SetLimit(s.maxWorkers)
	for start := 0; start < s.columns; start += chunk {
		start, end := start, start+chunk
		if end > s.columns {
			end = s.columns
		}
		eg.Go(func() error {
			for x := start; x < end; x++ {
				s.distances[x], s.orientations[x] = castColumn(p, g, x, s.columns)
			}
			return nil
		})
	}
	_ = eg.Wait()

	return s.distances, s.orientations
}

func castColumn(p model.Player, g *model.Grid, x, columns int) (float64, Orientation) {
	cameraX := 2*float64(x)/float64(columns) - 1
	rayDir := p.Direction.Add(p.Plane.Scale(cameraX))
	hit := Cast(p.Position, rayDir, g)
	return PerpendicularOffset(hit.Offset, p.Plane).Len(), hit.Orientation
}

// PerpendicularOffset removes from offset its component along the camera
// plane, leaving the part measured straight out of the screen. Using its
// length instead of the ray length keeps flat walls flat.
func PerpendicularOffset(offset, plane model.Vec2) model.Vec2 {
	pp := plane.Dot(plane)
	if pp == 0 {
		return offset
	}
	return offset.Sub(plane.Scale(offset.Dot(plane) / pp))
}
