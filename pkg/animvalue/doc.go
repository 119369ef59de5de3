// Package animvalue defines the typed animation value kinds that property
// tracks and cross-fade blending operate over, along with the per-kind
// blend and interpolation rules shared by the state machine runtime and the
// sprite animation engine's property-track sampling path.
package animvalue
