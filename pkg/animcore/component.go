package animcore

import "fmt"

// Component identifies a piece of per-entity state by a short type tag, the
// same shape a host's own entity/component system uses to dispatch
// updates. AnimationComponent is the only component this package defines;
// everything else about an entity (transform, rendering, input) is the
// host's concern.
type Component interface {
	Type() string
}

// AnimationComponent pairs an Orchestrator with a human-readable name,
// used to label errors returned by OrchestratorSystem.Update.
type AnimationComponent struct {
	Name         string
	Orchestrator *Orchestrator
}

// Type returns the component type identifier.
func (c *AnimationComponent) Type() string {
	return "animation"
}

// System processes a batch of components once per tick, matching the
// shape a host's own system scheduler expects.
type System interface {
	Update(components []Component, dt float64) error
}

// OrchestratorSystem is a System that advances every AnimationComponent's
// Orchestrator by dt, in slice order, stopping at the first error.
type OrchestratorSystem struct{}

// NewOrchestratorSystem returns a ready-to-use OrchestratorSystem.
func NewOrchestratorSystem() *OrchestratorSystem {
	return &OrchestratorSystem{}
}

// Update advances every AnimationComponent found in components. Components
// of any other type are skipped.
func (s *OrchestratorSystem) Update(components []Component, dt float64) error {
	for _, c := range components {
		ac, ok := c.(*AnimationComponent)
		if !ok || ac.Orchestrator == nil {
			continue
		}
		if err := ac.Orchestrator.Update(dt); err != nil {
			return fmt.Errorf("animcore: update %q: %w", ac.Name, err)
		}
	}
	return nil
}
