// Package registry collects the named resources of a scene being compiled.
//
// A Registry is created per scene merge pass. Resources the scene declares
// itself are registered with Register, which rejects duplicate names and,
// in compile mode, rewrites source paths to their compiled extensions.
// Resources coming from merged templates are added with Fold, where the
// first registration of a name wins and later ones are silently skipped.
// Node references are checked with ValidateReference and ValidateNode once
// the declarations are known.
//
// In editor mode (compiling = false) paths are left untouched and no
// validation error is raised except for template nodes without a template
// path.
package registry
