// Package animcore wires the state machine runtime (pkg/animgraph) and the
// sprite animation engine (pkg/spriteanim) together behind two external
// collaborator interfaces — a clip duration provider and a property
// writer — so a host's scene graph, renderer, and node system stay out of
// this module entirely. Orchestrator is the single per-entity type a host
// drives once per tick.
package animcore
