// Package resourceio provides the shared JSON load/save plumbing used by
// both the animgraph and spriteanim resource documents: file reading with
// not-found detection, indented marshaling, and nil-safe structured logging
// around each operation.
package resourceio
