// Package transform composes the state a node inherits from the template
// instances it was expanded under: position, rotation, scale, alpha, layer
// and the enabled flag.
//
// Rotations are authored as Euler angles in degrees. Composition goes
// through unit quaternions using the YZX rotation sequence (heading about
// Y, attitude about Z, bank about X) and converts back afterwards.
package transform
