// Package engine compiles an authored GUI scene into a single flattened
// scene.
//
// Transform walks the scene's nodes once. Every template node is replaced
// by the nodes of the scene it references: the referenced scene is read
// through the Reader (once per path and run), compiled recursively, and
// its nodes are namespaced under the template node's id, merged with the
// outer scene's per-layout overrides and appended to every layout. The
// referenced scene's resources are folded into the outer registry.
//
// Only the outermost call flattens: template nodes are dropped and the
// nodes that hung off them inherit their transform, alpha, layer and
// enabled state (see package transform).
//
// A Transform call is synchronous and keeps all of its state, including
// the scene cache, in a per-call session. Independent scenes can be
// compiled concurrently with the same Engine.
package engine
