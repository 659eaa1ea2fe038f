package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vk/scenec/internal/scene"
)

// singularity is the |x*y + z*w| bound past which the attitude is treated
// as straight up or down and bank is forced to zero.
const singularity = 0.499

// EulerToQuat converts Euler degrees (X bank, Y heading, Z attitude) to a
// unit quaternion using the YZX sequence.
func EulerToQuat(e scene.Vec4) mgl64.Quat {
	t1 := mgl64.DegToRad(e.Y)
	t2 := mgl64.DegToRad(e.Z)
	t3 := mgl64.DegToRad(e.X)
	c1, s1 := math.Cos(t1/2), math.Sin(t1/2)
	c2, s2 := math.Cos(t2/2), math.Sin(t2/2)
	c3, s3 := math.Cos(t3/2), math.Sin(t3/2)

	q := mgl64.Quat{
		W: -s1*s2*s3 + c1*c2*c3,
		V: mgl64.Vec3{
			s1*s2*c3 + s3*c1*c2,
			s1*c2*c3 + s2*s3*c1,
			-s1*s3*c2 + s2*c1*c3,
		},
	}
	return q.Normalize()
}

// QuatToEuler converts a unit quaternion back to Euler degrees. The result
// has W set to 1.
func QuatToEuler(q mgl64.Quat) scene.Vec4 {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.W

	var heading, attitude, bank float64
	test := x*y + z*w
	switch {
	case test > singularity:
		heading = 2 * math.Atan2(x, w)
		attitude = math.Pi / 2
	case test < -singularity:
		heading = -2 * math.Atan2(x, w)
		attitude = -math.Pi / 2
	default:
		sqx, sqy, sqz := x*x, y*y, z*z
		heading = math.Atan2(2*y*w-2*x*z, 1-2*sqy-2*sqz)
		attitude = math.Asin(2 * test)
		bank = math.Atan2(2*x*w-2*y*z, 1-2*sqx-2*sqz)
	}
	return scene.Point(mgl64.RadToDeg(bank), mgl64.RadToDeg(heading), mgl64.RadToDeg(attitude))
}

// rotate rotates the spatial part of v by q. W is kept.
func rotate(q mgl64.Quat, v scene.Vec4) scene.Vec4 {
	r := q.Rotate(mgl64.Vec3{v.X, v.Y, v.Z})
	return scene.Vec4{X: r[0], Y: r[1], Z: r[2], W: v.W}
}
