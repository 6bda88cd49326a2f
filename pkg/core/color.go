package core

import (
	"image/color"

	"github.com/chewxy/math32"
)

// intensity keeps quantized channels strictly below 256
var intensity = NewInterval(0.0, 0.999)

// LinearToGamma maps a linear component to gamma 2 space. Non-positive and NaN inputs map to 0.
func LinearToGamma(x float32) float32 {
	if x > 0 {
		return math32.Sqrt(x)
	}
	return 0
}

// GammaCorrect applies LinearToGamma to each component
func (v Vec3) GammaCorrect() Vec3 {
	return Vec3{
		X: LinearToGamma(v.X),
		Y: LinearToGamma(v.Y),
		Z: LinearToGamma(v.Z),
	}
}

// ToColor quantizes each component to 8 bits as floor(clamp(c, 0, 0.999) * 255.99).
// The vector is taken as already gamma corrected.
func (v Vec3) ToColor() color.RGBA {
	return color.RGBA{
		R: quantize(v.X),
		G: quantize(v.Y),
		B: quantize(v.Z),
		A: 255,
	}
}

func quantize(c float32) uint8 {
	c = intensity.Clamp(c)
	if math32.IsNaN(c) {
		// float to integer conversion of NaN is implementation defined
		return 0
	}
	return uint8(math32.Floor(c * 255.99))
}
