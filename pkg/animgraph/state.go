package animgraph

import (
	"fmt"

	"github.com/google/uuid"
)

// ComparisonOperator is the operator a TransitionCondition applies between
// a parameter's current value and its authored compare value. Eq/Ne apply
// to every kind; the ordered comparisons are meaningful only for Int/Float.
type ComparisonOperator int

const (
	Eq ComparisonOperator = iota
	Ne
	Gt
	Ge
	Lt
	Le
)

// TransitionCondition gates a transition on one parameter. Invariant:
// CompareValue.Kind must equal the referenced parameter's kind; conditions
// over a missing parameter evaluate false (see CanFire).
type TransitionCondition struct {
	ParameterName string
	Operator      ComparisonOperator
	CompareValue  ParameterValue
}

// State is a node in a layer's graph: a name unique within the layer,
// pointing at a clip (which may be empty for a no-op state) plus playback
// metadata. EditorPosition round-trips opaquely; the runtime never reads it.
type State struct {
	ID             uuid.UUID
	Name           string
	AnimationClip  string
	Speed          float64
	Looping        bool
	EditorPosition [2]float64
}

// NewState returns a State with a freshly generated ID and the documented
// defaults (speed 1.0).
func NewState(name, clip string) State {
	return State{
		ID:            uuid.New(),
		Name:          name,
		AnimationClip: clip,
		Speed:         1.0,
		Looping:       true,
	}
}

// Transition is a directed edge between two states in the same layer,
// guarded by an ordered list of conditions (all must hold) and an optional
// exit-time gate.
type Transition struct {
	ID                 uuid.UUID
	FromState          string
	ToState            string
	Conditions         []TransitionCondition
	TransitionDuration float64
	ExitTime           float64
	HasExitTime        bool
	CanTransitionToSelf bool
}

// NewTransition returns a Transition with a freshly generated ID and the
// documented defaults (transition_duration 0.25s, exit_time 1.0).
func NewTransition(from, to string) Transition {
	return Transition{
		ID:                 uuid.New(),
		FromState:          from,
		ToState:            to,
		TransitionDuration: 0.25,
		ExitTime:           1.0,
	}
}

// Layer is an independently evaluated sub-state-machine: a named,
// weighted graph of states and transitions. Invariant: DefaultState, if
// non-empty, names a state present in States.
type Layer struct {
	Name         string
	Weight       float64
	Additive     bool
	DefaultState string
	States       []State
	Transitions  []Transition
}

// NewLayer returns a Layer with the documented default weight (1.0).
func NewLayer(name string) Layer {
	return Layer{Name: name, Weight: 1.0}
}

// StateByName returns the named state and whether it was found.
func (l *Layer) StateByName(name string) (*State, bool) {
	for i := range l.States {
		if l.States[i].Name == name {
			return &l.States[i], true
		}
	}
	return nil, false
}

// TransitionsFromState returns every transition in the layer whose
// FromState matches, in declaration order — the same order the runtime
// evaluates them in. Supplemental query helper (not on the simulation hot
// path) mirroring the original resource's GetTransitionsFromState.
func (l *Layer) TransitionsFromState(state string) []*Transition {
	var out []*Transition
	for i := range l.Transitions {
		if l.Transitions[i].FromState == state {
			out = append(out, &l.Transitions[i])
		}
	}
	return out
}

// TransitionsToState returns every transition in the layer whose ToState
// matches. Mirrors the original resource's GetTransitionsToState.
func (l *Layer) TransitionsToState(state string) []*Transition {
	var out []*Transition
	for i := range l.Transitions {
		if l.Transitions[i].ToState == state {
			out = append(out, &l.Transitions[i])
		}
	}
	return out
}

// Resource is the in-memory, immutably-shared representation of an
// authored ".statemachine" document: a uniquely-named parameter set and a
// uniquely-named set of layers.
type Resource struct {
	Parameters map[string]Parameter
	Layers     map[string]Layer
	// layerOrder preserves layer declaration order for iteration, since Go
	// map iteration order is unspecified and the runtime's ordering
	// guarantees (§5) require a stable per-layer evaluation order.
	layerOrder []string
}

// NewResource returns an empty resource ready for programmatic population
// via AddParameter/AddLayer.
func NewResource() *Resource {
	return &Resource{
		Parameters: make(map[string]Parameter),
		Layers:     make(map[string]Layer),
	}
}

// NewSingleStateResource builds a minimal one-layer, parameter-free
// resource around a single state — the data-only equivalent of the
// original engine's lighter-weight single-clip driver, for hosts that just
// want to loop one clip without authoring a full graph.
func NewSingleStateResource(layerName, stateName, clip string) *Resource {
	r := NewResource()
	layer := NewLayer(layerName)
	layer.States = append(layer.States, NewState(stateName, clip))
	layer.DefaultState = stateName
	r.AddLayer(layer)
	return r
}

// AddParameter adds or replaces a parameter by name.
func (r *Resource) AddParameter(p Parameter) {
	if r.Parameters == nil {
		r.Parameters = make(map[string]Parameter)
	}
	r.Parameters[p.Name] = p
}

// RemoveParameter deletes a parameter by name; a no-op if absent.
func (r *Resource) RemoveParameter(name string) {
	delete(r.Parameters, name)
}

// ParameterNames returns every declared parameter name, order unspecified.
func (r *Resource) ParameterNames() []string {
	out := make([]string, 0, len(r.Parameters))
	for name := range r.Parameters {
		out = append(out, name)
	}
	return out
}

// AddLayer adds or replaces a layer by name, appending to the declaration
// order the first time the name is seen.
func (r *Resource) AddLayer(l Layer) {
	if r.Layers == nil {
		r.Layers = make(map[string]Layer)
	}
	if _, exists := r.Layers[l.Name]; !exists {
		r.layerOrder = append(r.layerOrder, l.Name)
	}
	r.Layers[l.Name] = l
}

// RemoveLayer deletes a layer by name; a no-op if absent.
func (r *Resource) RemoveLayer(name string) {
	if _, exists := r.Layers[name]; !exists {
		return
	}
	delete(r.Layers, name)
	for i, n := range r.layerOrder {
		if n == name {
			r.layerOrder = append(r.layerOrder[:i], r.layerOrder[i+1:]...)
			break
		}
	}
}

// LayerNames returns layer names in declaration order — the order Update
// evaluates layers in (§5's ordering guarantee).
func (r *Resource) LayerNames() []string {
	out := make([]string, len(r.layerOrder))
	copy(out, r.layerOrder)
	return out
}

// AddState adds a state to the named layer. Returns an error wrapping
// ErrReferenceError if the layer doesn't exist.
func (r *Resource) AddState(layerName string, s State) error {
	l, ok := r.Layers[layerName]
	if !ok {
		return fmt.Errorf("animgraph: add state: %w: layer %q", ErrReferenceError, layerName)
	}
	l.States = append(l.States, s)
	r.Layers[layerName] = l
	return nil
}

// RemoveState removes a state by name from the named layer, along with any
// transition referencing it as FromState or ToState — a state machine left
// with a dangling edge into or out of a state that no longer exists is
// invalid, so the cleanup is cascaded rather than left to the caller.
func (r *Resource) RemoveState(layerName, stateName string) error {
	l, ok := r.Layers[layerName]
	if !ok {
		return fmt.Errorf("animgraph: remove state: %w: layer %q", ErrReferenceError, layerName)
	}
	for i, s := range l.States {
		if s.Name == stateName {
			l.States = append(l.States[:i], l.States[i+1:]...)

			kept := l.Transitions[:0]
			for _, t := range l.Transitions {
				if t.FromState == stateName || t.ToState == stateName {
					continue
				}
				kept = append(kept, t)
			}
			l.Transitions = kept

			r.Layers[layerName] = l
			return nil
		}
	}
	return fmt.Errorf("animgraph: remove state: %w: state %q", ErrReferenceError, stateName)
}

// AddTransition adds a transition to the named layer.
func (r *Resource) AddTransition(layerName string, t Transition) error {
	l, ok := r.Layers[layerName]
	if !ok {
		return fmt.Errorf("animgraph: add transition: %w: layer %q", ErrReferenceError, layerName)
	}
	l.Transitions = append(l.Transitions, t)
	r.Layers[layerName] = l
	return nil
}

// RemoveTransition removes a transition by ID from the named layer.
func (r *Resource) RemoveTransition(layerName string, id uuid.UUID) error {
	l, ok := r.Layers[layerName]
	if !ok {
		return fmt.Errorf("animgraph: remove transition: %w: layer %q", ErrReferenceError, layerName)
	}
	for i, t := range l.Transitions {
		if t.ID == id {
			l.Transitions = append(l.Transitions[:i], l.Transitions[i+1:]...)
			r.Layers[layerName] = l
			return nil
		}
	}
	return fmt.Errorf("animgraph: remove transition: %w: id %s", ErrReferenceError, id)
}
