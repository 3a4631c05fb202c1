// Package terrain generates height-field terrain meshes from coherent noise.
package terrain

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Variant selects the height formula used by a Field.
type Variant string

const (
	VariantPerlin   Variant = "perlin"
	VariantSimplex  Variant = "simplex"
	VariantRidged   Variant = "ridged"
	VariantBillow   Variant = "billow"
	VariantVoronoi  Variant = "voronoi"
	VariantCombined Variant = "combined"
)

// ParseVariant maps a noise type string to a Variant.
// Unknown strings fall back to perlin rather than erroring.
func ParseVariant(s string) Variant {
	switch Variant(s) {
	case VariantPerlin, VariantSimplex, VariantRidged, VariantBillow, VariantVoronoi, VariantCombined:
		return Variant(s)
	default:
		return VariantPerlin
	}
}

// Params holds noise generation parameters. Immutable for the lifetime
// of one generated terrain; a new terrain requires a full regeneration.
type Params struct {
	Variant     Variant
	Seed        int64
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Scale       float64
	HeightScale float64
}

const voronoiPointCount = 10

// Field evaluates one scalar height per grid cell. All samplers are
// seeded at construction, so identical inputs always produce identical
// output.
type Field struct {
	params Params

	perlin *perlin.Perlin

	simplex opensimplex.Noise
	// Second simplex basis at an offset seed, decorrelated from the
	// primary layers for the combined variant.
	simplexOffset opensimplex.Noise

	// Voronoi feature points, drawn once from the seeded generator.
	// The reference redraws the same set per cell; the reseed makes it
	// invariant, so hoisting it here does not change output.
	voronoiPoints [voronoiPointCount][2]float64
}

// NewField creates a noise field for the given parameters.
func NewField(p Params) *Field {
	if p.Octaves < 1 {
		p.Octaves = 1
	}
	if p.Persistence <= 0 {
		p.Persistence = 0.5
	}

	f := &Field{
		params:        p,
		perlin:        perlin.NewPerlin(1.0/p.Persistence, p.Lacunarity, int32(p.Octaves), p.Seed),
		simplex:       opensimplex.New(p.Seed),
		simplexOffset: opensimplex.New(p.Seed + 1000),
	}

	rng := rand.New(rand.NewSource(p.Seed))
	for i := range f.voronoiPoints {
		f.voronoiPoints[i] = [2]float64{rng.Float64() * 10, rng.Float64() * 10}
	}

	return f
}

// Params returns the parameters the field was built with.
func (f *Field) Params() Params {
	return f.params
}

// Height evaluates the height for grid cell (i, j) on a size x size
// grid. Output is approximately in [-1, 1].
func (f *Field) Height(i, j, size int) float64 {
	nx := float64(i) / float64(size) * f.params.Scale
	ny := float64(j) / float64(size) * f.params.Scale

	switch f.params.Variant {
	case VariantSimplex:
		return f.fractalSimplex(f.simplex, nx, ny)
	case VariantRidged:
		// Invert the absolute value to produce sharp ridges
		return 1.0 - math.Abs(f.fractalSimplex(f.simplex, nx, ny))
	case VariantBillow:
		// Rescale the absolute value to full range for rounded hills
		return math.Abs(f.perlin.Noise2D(nx, ny))*2.0 - 1.0
	case VariantVoronoi:
		return f.voronoi(nx, ny)
	case VariantCombined:
		p := f.perlin.Noise2D(nx, ny)
		s := f.fractalSimplex(f.simplexOffset, nx*2, ny*2)
		return (p + s) * 0.5
	default:
		return f.perlin.Noise2D(nx, ny)
	}
}

// fractalSimplex sums octaves of simplex noise, normalized by the total
// amplitude so the result stays in [-1, 1].
func (f *Field) fractalSimplex(n opensimplex.Noise, x, y float64) float64 {
	var total, maxAmplitude float64
	frequency := 1.0
	amplitude := 1.0

	for i := 0; i < f.params.Octaves; i++ {
		total += n.Eval2(x*frequency, y*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= f.params.Persistence
		frequency *= f.params.Lacunarity
	}

	return total / maxAmplitude
}

// voronoi returns a distance-field value in [-0.5, 0.5]: the Euclidean
// distance to the nearest feature point, mapped via dist/2 - 0.5.
func (f *Field) voronoi(x, y float64) float64 {
	minDist := math.Inf(1)
	for _, pt := range f.voronoiPoints {
		dx := x - pt[0]
		dy := y - pt[1]
		if d := math.Sqrt(dx*dx + dy*dy); d < minDist {
			minDist = d
		}
	}
	return minDist/2.0 - 0.5
}

// HeightGrid is a square row-major matrix of scalar heights.
type HeightGrid struct {
	Size    int
	Heights []float64
}

// At returns the height at grid cell (i, j).
func (g *HeightGrid) At(i, j int) float64 {
	return g.Heights[i*g.Size+j]
}

// Grid evaluates the field over a size x size grid. The grid is fully
// populated before it is returned; mesh construction never sees a
// partial grid.
func (f *Field) Grid(size int) *HeightGrid {
	if size < 0 {
		size = 0
	}

	g := &HeightGrid{
		Size:    size,
		Heights: make([]float64, size*size),
	}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			g.Heights[i*size+j] = f.Height(i, j, size)
		}
	}
	return g
}
