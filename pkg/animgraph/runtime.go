package animgraph

import "fmt"

// ClipDurationFunc resolves an authored clip name to its playback duration
// in seconds. The runtime itself has no notion of what a clip contains —
// duration lookup is supplied by the host on every Update call, mirroring
// the ClipDurationProvider collaborator interface the orchestrator wires in.
type ClipDurationFunc func(clipName string) (seconds float64, ok bool)

// ParameterStore holds the current value of every parameter declared on a
// Resource. Reads and writes are allocation-free; trigger reset runs once
// per Update.
type ParameterStore struct {
	values map[string]ParameterValue
}

func newParameterStore(r *Resource) *ParameterStore {
	s := &ParameterStore{values: make(map[string]ParameterValue, len(r.Parameters))}
	for name, p := range r.Parameters {
		s.values[name] = p.DefaultValue
	}
	return s
}

// Get returns a parameter's current value and whether it is declared.
func (s *ParameterStore) Get(name string) (ParameterValue, bool) {
	v, ok := s.values[name]
	return v, ok
}

// SetBool assigns a Bool parameter. Returns ErrKindMismatch if name is not
// declared as Bool, ErrReferenceError if undeclared.
func (s *ParameterStore) SetBool(name string, v bool) error {
	return s.set(name, Bool, NewBoolValue(v))
}

// SetInt assigns an Int parameter.
func (s *ParameterStore) SetInt(name string, v int) error {
	return s.set(name, Int, NewIntValue(v))
}

// SetFloat assigns a Float parameter.
func (s *ParameterStore) SetFloat(name string, v float64) error {
	return s.set(name, Float, NewFloatValue(v))
}

// SetTrigger raises a Trigger parameter. It is automatically cleared back
// to false at the end of the Update call that observes it.
func (s *ParameterStore) SetTrigger(name string) error {
	return s.set(name, Trigger, NewTriggerValue(true))
}

func (s *ParameterStore) set(name string, kind ParameterKind, v ParameterValue) error {
	existing, ok := s.values[name]
	if !ok {
		return fmt.Errorf("animgraph: set parameter: %w: %q", ErrReferenceError, name)
	}
	if existing.Kind != kind {
		return fmt.Errorf("animgraph: set parameter %q: %w: want %s, got %s", name, ErrKindMismatch, existing.Kind, kind)
	}
	s.values[name] = v
	return nil
}

func (s *ParameterStore) resetTriggers() {
	for name, v := range s.values {
		if v.Kind == Trigger && v.BoolValue {
			v.BoolValue = false
			s.values[name] = v
		}
	}
}

// layerRuntime is the transient, mutable playback cursor for one layer: the
// current state, an optional in-flight transition to a next state, and how
// long each has been playing. At most one transition is ever in flight per
// layer.
type layerRuntime struct {
	currentState     string
	currentStateTime float64
	nextState        string
	blendElapsed     float64
	blendDuration    float64
	playing          bool
}

// Runtime walks a Resource's layers against a ParameterStore, advancing
// each layer's state machine on every Update call. It performs no I/O and
// its Update path allocates nothing.
type Runtime struct {
	resource *Resource
	Params   *ParameterStore
	layers   map[string]*layerRuntime
	order    []string
}

// NewRuntime creates a Runtime over resource, initializing every layer at
// its DefaultState and every parameter at its declared default value. A
// freshly-bound layer is not playing; an explicit Play or PlayAll call is
// required before Update will advance it.
func NewRuntime(resource *Resource) *Runtime {
	rt := &Runtime{
		resource: resource,
		Params:   newParameterStore(resource),
		layers:   make(map[string]*layerRuntime, len(resource.Layers)),
		order:    resource.LayerNames(),
	}
	for _, name := range rt.order {
		layer := resource.Layers[name]
		rt.layers[name] = &layerRuntime{
			currentState: layer.DefaultState,
		}
	}
	return rt
}

// Play sets a layer playing. It does not reset current state, elapsed
// time, or any in-flight transition — a paused or stopped layer resumes
// exactly where it left off. A no-op if the layer does not exist.
func (rt *Runtime) Play(layerName string) {
	if lr, ok := rt.layers[layerName]; ok {
		lr.playing = true
	}
}

// Stop halts a layer, clears any in-flight transition, and resets its
// elapsed-in-state time to zero. The layer's current state is left as-is;
// Play/Resume continues from that state at time zero.
func (rt *Runtime) Stop(layerName string) {
	lr, ok := rt.layers[layerName]
	if !ok {
		return
	}
	lr.playing = false
	lr.nextState = ""
	lr.blendElapsed = 0
	lr.blendDuration = 0
	lr.currentStateTime = 0
}

// Pause freezes a layer's playback time in place; Update is a no-op for it
// until Resume is called.
func (rt *Runtime) Pause(layerName string) {
	if lr, ok := rt.layers[layerName]; ok {
		lr.playing = false
	}
}

// Resume continues a paused layer from exactly where it was frozen.
func (rt *Runtime) Resume(layerName string) {
	if lr, ok := rt.layers[layerName]; ok {
		lr.playing = true
	}
}

// PlayAll sets every layer playing, per §4.3's `Play(layer=None)` form.
func (rt *Runtime) PlayAll() {
	for _, name := range rt.order {
		rt.Play(name)
	}
}

// StopAll stops every layer, per §4.3's `Stop()` form.
func (rt *Runtime) StopAll() {
	for _, name := range rt.order {
		rt.Stop(name)
	}
}

// PauseAll pauses every layer, per §4.3's `Pause()` form.
func (rt *Runtime) PauseAll() {
	for _, name := range rt.order {
		rt.Pause(name)
	}
}

// ResumeAll resumes every layer, per §4.3's `Resume()` form.
func (rt *Runtime) ResumeAll() {
	for _, name := range rt.order {
		rt.Resume(name)
	}
}

// IsPlaying reports whether a layer is currently advancing on Update.
func (rt *Runtime) IsPlaying(layerName string) bool {
	lr, ok := rt.layers[layerName]
	return ok && lr.playing
}

// LayerNames returns the layer names in the resource's declared order —
// the order Update evaluates them in.
func (rt *Runtime) LayerNames() []string {
	out := make([]string, len(rt.order))
	copy(out, rt.order)
	return out
}

// Update advances every layer by dt seconds, in the resource's declared
// layer order, then clears every trigger parameter that was observed this
// tick. clipDuration resolves an authored clip name to its playback length;
// a layer whose current state names an unknown or empty clip treats
// duration as unknown (0), falling back to raw elapsed time for exit-time
// gating.
func (rt *Runtime) Update(dt float64, clipDuration ClipDurationFunc) {
	for _, name := range rt.order {
		rt.updateLayer(rt.resource.Layers[name], rt.layers[name], dt, clipDuration)
	}
	rt.Params.resetTriggers()
}

func (rt *Runtime) updateLayer(layer Layer, lr *layerRuntime, dt float64, clipDuration ClipDurationFunc) {
	if !lr.playing {
		return
	}

	if lr.nextState != "" {
		lr.blendElapsed += dt
		if lr.blendElapsed >= lr.blendDuration {
			lr.currentState = lr.nextState
			lr.currentStateTime = 0
			lr.nextState = ""
			lr.blendElapsed = 0
			lr.blendDuration = 0
		}
		// The newly entered state begins at t=0 next tick; no further work
		// for this layer this tick even when dt overshoots a zero-length
		// transition.
		return
	}

	lr.currentStateTime += dt

	duration := rt.stateDuration(&layer, lr.currentState, clipDuration)
	// Walk the layer's transitions in place, in declaration order, rather
	// than through TransitionsFromState, which builds a new slice.
	for i := range layer.Transitions {
		t := &layer.Transitions[i]
		if t.FromState != lr.currentState {
			continue
		}
		if CanFire(t, lr.currentState, rt.Params.values, lr.currentStateTime, duration) {
			lr.nextState = t.ToState
			lr.blendDuration = t.TransitionDuration
			lr.blendElapsed = 0
			break
		}
	}
}

func (rt *Runtime) stateDuration(layer *Layer, stateName string, clipDuration ClipDurationFunc) float64 {
	state, ok := layer.StateByName(stateName)
	if !ok || state.AnimationClip == "" || clipDuration == nil {
		return 0
	}
	d, ok := clipDuration(state.AnimationClip)
	if !ok {
		return 0
	}
	return d
}

// CurrentState returns the layer's current state name.
func (rt *Runtime) CurrentState(layerName string) (string, bool) {
	lr, ok := rt.layers[layerName]
	if !ok {
		return "", false
	}
	return lr.currentState, true
}

// CurrentStateTime returns how long the layer has been in its current
// state, in seconds.
func (rt *Runtime) CurrentStateTime(layerName string) (float64, bool) {
	lr, ok := rt.layers[layerName]
	if !ok {
		return 0, false
	}
	return lr.currentStateTime, true
}

// CurrentStateNormalizedTime returns the layer's current state time divided
// by its clip's duration, or the raw elapsed time if the duration is
// unknown.
func (rt *Runtime) CurrentStateNormalizedTime(layerName string, clipDuration ClipDurationFunc) (float64, bool) {
	lr, ok := rt.layers[layerName]
	if !ok {
		return 0, false
	}
	layer := rt.resource.Layers[layerName]
	d := rt.stateDuration(&layer, lr.currentState, clipDuration)
	if d <= 0 {
		return lr.currentStateTime, true
	}
	return lr.currentStateTime / d, true
}

// Blend describes a layer's current output: the clip to sample for the
// current state, the clip to sample for an in-flight next state (nil if
// none), how far through the crossfade it is (0..1), and the layer's
// authored weight and additive flag.
type Blend struct {
	FromClip    string
	FromTime    float64
	ToClip      string
	HasTo       bool
	ToTime      float64
	BlendFactor float64
	Weight      float64
	Additive    bool
}

// ActiveBlend reports the layer's current output for sampling.
func (rt *Runtime) ActiveBlend(layerName string) (Blend, bool) {
	lr, ok := rt.layers[layerName]
	if !ok {
		return Blend{}, false
	}
	layer := rt.resource.Layers[layerName]

	b := Blend{Weight: layer.Weight, Additive: layer.Additive}
	if state, ok := layer.StateByName(lr.currentState); ok {
		b.FromClip = state.AnimationClip
		b.FromTime = lr.currentStateTime
	}

	if lr.nextState == "" {
		return b, true
	}

	b.HasTo = true
	if state, ok := layer.StateByName(lr.nextState); ok {
		b.ToClip = state.AnimationClip
		b.ToTime = lr.blendElapsed
	}
	if lr.blendDuration <= 0 {
		b.BlendFactor = 1
	} else {
		b.BlendFactor = lr.blendElapsed / lr.blendDuration
	}
	return b, true
}
