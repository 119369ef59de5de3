package animcore

import "github.com/opd-ai/animcore/pkg/animvalue"

// ClipDurationProvider resolves an authored clip name to its playback
// duration in seconds. Returning ok=false (or a duration <= 0) signals an
// unknown duration, engaging the exit-time fallback documented on
// animgraph.CanFire.
type ClipDurationProvider interface {
	DurationOf(clipName string) (seconds float64, ok bool)
}

// NodeHandle is an opaque reference to a node in the host's scene graph,
// resolved once per path by PropertyWriter.ResolveNode and reused across
// ticks by the orchestrator.
type NodeHandle interface{}

// PropertyWriter resolves node paths and applies sampled animation values
// to the host's scene graph. The orchestrator never inspects a NodeHandle;
// it is meaningful only to the PropertyWriter that produced it.
type PropertyWriter interface {
	ResolveNode(path string) (NodeHandle, bool)
	SetProperty(node NodeHandle, property string, value animvalue.Value, weight float64)
	GetProperty(node NodeHandle, property string) (animvalue.Value, bool)
}

// AdditivePropertyWriter is an optional extension of PropertyWriter for
// hosts that support additive layer blending. The orchestrator type-asserts
// for it when applying an additive layer's output, falling back to
// SetProperty when a writer does not implement it.
type AdditivePropertyWriter interface {
	PropertyWriter
	AddProperty(node NodeHandle, property string, value animvalue.Value, weight float64)
}
