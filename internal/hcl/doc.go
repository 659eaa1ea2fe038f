// Package hcl decodes GUI scene files written in HCL into scene.Scene
// values. It is responsible for parsing, schema decoding, and converting
// vector and scalar attributes from cty values into the scene model.
package hcl
