package animcore

import (
	"testing"

	"github.com/opd-ai/animcore/pkg/animgraph"
	"github.com/opd-ai/animcore/pkg/animvalue"
	"github.com/opd-ai/animcore/pkg/spriteanim"
)

type fixedClipDurations map[string]float64

func (f fixedClipDurations) DurationOf(clip string) (float64, bool) {
	d, ok := f[clip]
	return d, ok
}

type recordingWriter struct {
	resolved map[string]NodeHandle
	writes   []propertyWrite
}

type propertyWrite struct {
	node     NodeHandle
	property string
	value    animvalue.Value
	weight   float64
}

func newRecordingWriter(paths ...string) *recordingWriter {
	w := &recordingWriter{resolved: make(map[string]NodeHandle)}
	for _, p := range paths {
		w.resolved[p] = p
	}
	return w
}

func (w *recordingWriter) ResolveNode(path string) (NodeHandle, bool) {
	node, ok := w.resolved[path]
	return node, ok
}

func (w *recordingWriter) SetProperty(node NodeHandle, property string, value animvalue.Value, weight float64) {
	w.writes = append(w.writes, propertyWrite{node: node, property: property, value: value, weight: weight})
}

func (w *recordingWriter) GetProperty(node NodeHandle, property string) (animvalue.Value, bool) {
	return animvalue.Value{}, false
}

func buildSpriteGraph() *animgraph.Resource {
	r := animgraph.NewResource()
	layer := animgraph.NewLayer("Base Layer")
	layer.DefaultState = "Idle"
	layer.States = append(layer.States, animgraph.NewState("Idle", "idle"))
	r.AddLayer(layer)
	return r
}

func buildSpriteResource() *spriteanim.Resource {
	r := spriteanim.NewResource("atlas.png")
	r.AddAnimation(spriteanim.Animation{
		Name:       "idle",
		Looping:    true,
		SpeedScale: 1.0,
		Frames: []spriteanim.Frame{
			{Region: spriteanim.Rect{W: 1, H: 1}, Duration: 0.1},
			{Region: spriteanim.Rect{X: 0.5, W: 1, H: 1}, Duration: 0.1},
		},
	})
	return r
}

func TestOrchestratorDrivesSpriteCursor(t *testing.T) {
	orch := NewOrchestrator(buildSpriteGraph()).
		WithSpriteResource(buildSpriteResource())
	orch.Runtime().PlayAll()

	if err := orch.Update(0.05); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	out, ok := orch.SpriteOutput("Base Layer")
	if !ok {
		t.Fatal("expected sprite output after update")
	}
	if out.HasTo {
		t.Error("expected no in-flight transition for a single-state layer")
	}
	if out.FromRegion.W != 1 {
		t.Errorf("unexpected region: %+v", out.FromRegion)
	}
}

func buildPropertyGraph() *animgraph.Resource {
	r := animgraph.NewResource()
	r.AddParameter(animgraph.Parameter{Name: "Go", Kind: animgraph.Trigger, DefaultValue: animgraph.NewTriggerValue(false)})

	layer := animgraph.NewLayer("Base Layer")
	layer.DefaultState = "Idle"
	layer.States = append(layer.States, animgraph.NewState("Idle", "idle_clip"), animgraph.NewState("Wave", "wave_clip"))
	tr := animgraph.NewTransition("Idle", "Wave")
	tr.TransitionDuration = 0
	tr.Conditions = []animgraph.TransitionCondition{
		{ParameterName: "Go", Operator: animgraph.Eq, CompareValue: animgraph.NewTriggerValue(true)},
	}
	layer.Transitions = append(layer.Transitions, tr)
	r.AddLayer(layer)
	return r
}

func TestOrchestratorAppliesPropertyClip(t *testing.T) {
	clips := map[string]*animvalue.Clip{
		"idle_clip": {
			Name:     "idle_clip",
			Duration: 1,
			Tracks: []animvalue.Track{
				{TargetPath: "arm", Property: "rotation", Keyframes: []animvalue.Keyframe{
					{Time: 0, Value: animvalue.Float(0)},
					{Time: 1, Value: animvalue.Float(10)},
				}},
			},
		},
	}

	writer := newRecordingWriter("arm")
	orch := NewOrchestrator(buildPropertyGraph()).
		WithPropertyWriter(writer).
		WithPropertyClips(clips).
		WithClipDurationProvider(fixedClipDurations{"idle_clip": 1, "wave_clip": 1})
	orch.Runtime().PlayAll()

	if err := orch.Update(0.5); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if len(writer.writes) == 0 {
		t.Fatal("expected at least one property write")
	}
	got := writer.writes[0]
	if got.property != "rotation" {
		t.Errorf("expected rotation property, got %q", got.property)
	}
	if got.value.Float != 5 {
		t.Errorf("expected sampled value 5 at t=0.5, got %v", got.value.Float)
	}
}

func TestOrchestratorSkipsWritesForUnresolvedNode(t *testing.T) {
	clips := map[string]*animvalue.Clip{
		"idle_clip": {
			Name:     "idle_clip",
			Duration: 1,
			Tracks: []animvalue.Track{
				{TargetPath: "missing", Property: "x", Keyframes: []animvalue.Keyframe{
					{Time: 0, Value: animvalue.Float(1)},
				}},
			},
		},
	}

	writer := newRecordingWriter() // resolves nothing
	orch := NewOrchestrator(buildPropertyGraph()).
		WithPropertyWriter(writer).
		WithPropertyClips(clips)
	orch.Runtime().PlayAll()

	if err := orch.Update(0.1); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(writer.writes) != 0 {
		t.Errorf("expected no writes for an unresolved node, got %d", len(writer.writes))
	}
}

func TestOrchestratorSystemUpdatesAllComponents(t *testing.T) {
	a := &AnimationComponent{Name: "a", Orchestrator: NewOrchestrator(buildSpriteGraph()).WithSpriteResource(buildSpriteResource())}
	b := &AnimationComponent{Name: "b", Orchestrator: NewOrchestrator(buildSpriteGraph()).WithSpriteResource(buildSpriteResource())}
	a.Orchestrator.Runtime().PlayAll()
	b.Orchestrator.Runtime().PlayAll()

	sys := NewOrchestratorSystem()
	if err := sys.Update([]Component{a, b}, 0.05); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if _, ok := a.Orchestrator.SpriteOutput("Base Layer"); !ok {
		t.Error("expected component a to have advanced")
	}
	if _, ok := b.Orchestrator.SpriteOutput("Base Layer"); !ok {
		t.Error("expected component b to have advanced")
	}
}
