package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing
type Sampler interface {
	// Get1D returns a value in [0, 1)
	Get1D() float32
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// RandomInRange returns a value uniformly distributed in [min, max)
func RandomInRange(sampler Sampler, min, max float32) float32 {
	return min + (max-min)*sampler.Get1D()
}

// RandomVec3InRange returns a vector with each component independently in [min, max)
func RandomVec3InRange(sampler Sampler, min, max float32) Vec3 {
	x := RandomInRange(sampler, min, max)
	y := RandomInRange(sampler, min, max)
	z := RandomInRange(sampler, min, max)
	return NewVec3(x, y, z)
}

// RandomUnitVector returns a direction uniformly distributed on the unit sphere.
// Points are drawn from the enclosing cube and rejected unless they fall inside
// the unit ball and away from the origin, where normalizing is unstable.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := RandomVec3InRange(sampler, -1, 1)
		lensq := p.LengthSquared()
		// 1e-160 underflows float32, so the lower bound is checked in float64
		if 1e-160 < float64(lensq) && lensq <= 1 {
			return p.Divide(p.Length())
		}
	}
}

// RandomOnHemisphere returns a unit vector in the hemisphere around normal
func RandomOnHemisphere(sampler Sampler, normal Vec3) Vec3 {
	onUnitSphere := RandomUnitVector(sampler)
	if onUnitSphere.Dot(normal) > 0 {
		return onUnitSphere
	}
	return onUnitSphere.Negate()
}

// SampleSquare returns a jitter offset in [-0.5, 0.5) x [-0.5, 0.5) on the XY plane
func SampleSquare(sampler Sampler) Vec3 {
	x := sampler.Get1D() - 0.5
	y := sampler.Get1D() - 0.5
	return NewVec3(x, y, 0)
}
