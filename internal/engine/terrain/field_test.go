package terrain

import (
	"math"
	"testing"
)

func testParams(v Variant) Params {
	return Params{
		Variant:     v,
		Seed:        42,
		Octaves:     6,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Scale:       5.0,
		HeightScale: 2.0,
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
	}{
		{"perlin", VariantPerlin},
		{"simplex", VariantSimplex},
		{"ridged", VariantRidged},
		{"billow", VariantBillow},
		{"voronoi", VariantVoronoi},
		{"combined", VariantCombined},
		{"", VariantPerlin},
		{"fractal", VariantPerlin},
		{"PERLIN", VariantPerlin},
	}

	for _, tt := range tests {
		if got := ParseVariant(tt.in); got != tt.want {
			t.Errorf("ParseVariant(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHeightDeterministic(t *testing.T) {
	variants := []Variant{
		VariantPerlin, VariantSimplex, VariantRidged,
		VariantBillow, VariantVoronoi, VariantCombined,
	}

	for _, v := range variants {
		t.Run(string(v), func(t *testing.T) {
			a := NewField(testParams(v))
			b := NewField(testParams(v))

			for i := 0; i < 8; i++ {
				for j := 0; j < 8; j++ {
					ha := a.Height(i, j, 8)
					hb := b.Height(i, j, 8)
					if ha != hb {
						t.Fatalf("Height(%d,%d) not deterministic: %v != %v", i, j, ha, hb)
					}
					// Repeated evaluation on the same field too
					if again := a.Height(i, j, 8); again != ha {
						t.Fatalf("Height(%d,%d) changed on re-evaluation: %v != %v", i, j, again, ha)
					}
				}
			}
		})
	}
}

func TestSeedChangesOutput(t *testing.T) {
	a := NewField(testParams(VariantPerlin))
	p := testParams(VariantPerlin)
	p.Seed = 43
	b := NewField(p)

	differs := false
	for i := 0; i < 16 && !differs; i++ {
		for j := 0; j < 16; j++ {
			if a.Height(i, j, 16) != b.Height(i, j, 16) {
				differs = true
				break
			}
		}
	}
	if !differs {
		t.Error("different seeds produced identical height fields")
	}
}

func TestRidgedBounds(t *testing.T) {
	f := NewField(testParams(VariantRidged))

	for i := 0; i < 32; i++ {
		for j := 0; j < 32; j++ {
			h := f.Height(i, j, 32)
			if h < 0 || h > 1 {
				t.Fatalf("ridged Height(%d,%d) = %v, want [0, 1]", i, j, h)
			}
		}
	}
}

func TestVoronoiBounds(t *testing.T) {
	f := NewField(testParams(VariantVoronoi))

	// minDist/2 - 0.5 with points in [0,10)^2 and queries in [0,5)^2:
	// never below -0.5, never above the domain's worst-case separation.
	maxDist := math.Sqrt(200) // corner (0,0) to corner (10,10)
	for i := 0; i < 32; i++ {
		for j := 0; j < 32; j++ {
			h := f.Height(i, j, 32)
			if h < -0.5 {
				t.Fatalf("voronoi Height(%d,%d) = %v, below -0.5", i, j, h)
			}
			if h > maxDist/2-0.5 {
				t.Fatalf("voronoi Height(%d,%d) = %v, beyond worst-case separation", i, j, h)
			}
		}
	}
}

func TestVoronoiNearestPoint(t *testing.T) {
	f := NewField(testParams(VariantVoronoi))

	size := 16
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			nx := float64(i) / float64(size) * f.params.Scale
			ny := float64(j) / float64(size) * f.params.Scale

			minDist := math.Inf(1)
			for _, pt := range f.voronoiPoints {
				d := math.Hypot(nx-pt[0], ny-pt[1])
				if d < minDist {
					minDist = d
				}
			}

			want := minDist/2.0 - 0.5
			if got := f.Height(i, j, size); got != want {
				t.Fatalf("voronoi Height(%d,%d) = %v, want %v (nearest of %d points)",
					i, j, got, want, len(f.voronoiPoints))
			}
		}
	}
}

func TestBillowBounds(t *testing.T) {
	f := NewField(testParams(VariantBillow))

	for i := 0; i < 32; i++ {
		for j := 0; j < 32; j++ {
			h := f.Height(i, j, 32)
			if h < -1 || h > 1 {
				t.Fatalf("billow Height(%d,%d) = %v, want [-1, 1]", i, j, h)
			}
		}
	}
}

func TestOctavesClampedToOne(t *testing.T) {
	p := testParams(VariantSimplex)
	p.Octaves = 0

	f := NewField(p)
	h := f.Height(3, 4, 8)
	if h != h { // NaN check
		t.Error("zero octaves produced NaN")
	}
	if f.Params().Octaves != 1 {
		t.Errorf("expected octaves clamped to 1, got %d", f.Params().Octaves)
	}
}

func TestGridFullyPopulated(t *testing.T) {
	f := NewField(testParams(VariantPerlin))
	g := f.Grid(8)

	if g.Size != 8 {
		t.Fatalf("expected grid size 8, got %d", g.Size)
	}
	if len(g.Heights) != 64 {
		t.Fatalf("expected 64 heights, got %d", len(g.Heights))
	}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if g.At(i, j) != f.Height(i, j, 8) {
				t.Fatalf("grid value (%d,%d) does not match field evaluation", i, j)
			}
		}
	}
}
