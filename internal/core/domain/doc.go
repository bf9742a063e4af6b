// Package domain defines the core entities for nades.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Map: A seeded reference entity (a game level) with a display image
//   - Shortcut: A key combination and description bound to one Map
//   - Media: An attachment bound to one Shortcut
//
// JSON tags use lower camel case because these records cross the
// presentation boundary as-is.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
