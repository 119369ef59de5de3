// Package animgraph implements the layered state machine runtime: a typed
// parameter store, an exit-time-and-condition transition predicate, and the
// per-layer advancement algorithm that turns a StateMachineResource plus a
// stream of delta times into (layer, active clip, blend weight) outputs.
//
// The resource model mirrors an authored ".statemachine" JSON document
// (Unity-Animator style): named parameters, named layers each holding a
// graph of named states connected by condition-and-exit-time-gated
// transitions. The runtime that walks this graph performs no I/O and
// allocates nothing on its hot Update path.
package animgraph
