package network

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// noise2D yields smooth values in roughly [-1, 1].
type noise2D interface {
	Eval(x, y float64) float64
}

type perlinNoise struct {
	p *perlin.Perlin
}

func (n perlinNoise) Eval(x, y float64) float64 {
	return n.p.Noise2D(x, y)
}

type simplexNoise struct {
	n opensimplex.Noise
}

func (n simplexNoise) Eval(x, y float64) float64 {
	return n.n.Eval2(x, y)
}

func newNoise(kind string, seed int64) noise2D {
	if kind == "simplex" {
		return simplexNoise{n: opensimplex.New(seed)}
	}
	return perlinNoise{p: perlin.NewPerlin(2, 2, 3, seed)}
}

// Sample frequency for grid coordinates; whole numbers would land on lattice
// points where perlin noise is zero.
const noiseScale = 0.37

// displace offsets a sampled position by up to amount pixels on each axis
// and keeps it on the surface.
func displace(n noise2D, col, row int, x, y, amount, width, height float64) (float64, float64) {
	fx, fy := float64(col)*noiseScale, float64(row)*noiseScale
	x += clampUnit(n.Eval(fx, fy)) * amount
	y += clampUnit(n.Eval(fx+101.3, fy+57.9)) * amount
	return math.Max(0, math.Min(width, x)), math.Max(0, math.Min(height, y))
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
