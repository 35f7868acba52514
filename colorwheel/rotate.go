package colorwheel

import (
	"math"

	"github.com/gogpu/sketch"
)

// RotateHue turns the hue of c by angle radians around the luma axis of
// YUV space. Luma is kept, so lightness survives the rotation. Alpha is
// preserved exactly.
func RotateHue(c sketch.Color, angle float64) sketch.Color {
	deg := float32(angle * 180 / math.Pi)

	var cm, tmp ColorMatrix
	cm.SetRGB2YUV()
	tmp.SetRotate(0, deg)
	cm.PostConcat(&tmp)
	tmp.SetYUV2RGB()
	cm.PostConcat(&tmp)

	return cm.Apply(c)
}
