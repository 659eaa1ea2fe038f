// Package jsonc decodes GUI scene files written as JSON with comments.
//
// The document mirrors scene.Scene: vectors are {"x", "y", "z", "w"}
// objects and keys use the same names as the HCL format. Comments and
// trailing commas are stripped before decoding. Attributes left out keep
// their runtime defaults.
package jsonc
