// Package scene defines the format-agnostic model of a GUI scene: nodes,
// layouts and the named resources they reference.
//
// The model is what the loaders produce and what the engine rewrites. It
// carries no knowledge of any file format. Values are passed and returned
// by value; a Scene that has to be mutated independently of its origin is
// obtained with Clone.
package scene
