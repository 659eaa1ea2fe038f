package scene

// Vec4 is a homogeneous vector. Spatial attributes (position, rotation,
// scale) keep W at 1; colors use W as their alpha channel.
type Vec4 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
	W float64 `json:"w" yaml:"w"`
}

// Point returns a spatial vector with W set to 1.
func Point(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 1}
}

// Mul multiplies v by o elementwise on the three spatial components.
func (v Vec4) Mul(o Vec4) Vec4 {
	return Vec4{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z, W: v.W}
}
