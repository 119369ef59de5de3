package animcore

import (
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/animcore/pkg/animgraph"
	"github.com/opd-ai/animcore/pkg/animvalue"
	"github.com/opd-ai/animcore/pkg/spriteanim"
)

// SpriteOutput is a layer's sprite-world output for one tick: the region
// to show for the current state and, mid-crossfade, the region to show
// for the next state plus how far through the blend it is.
type SpriteOutput struct {
	FromRegion spriteanim.Rect
	ToRegion   spriteanim.Rect
	HasTo      bool
	BlendT     float64
}

// Orchestrator drives one animated entity's state machine runtime and its
// sprite cursors or property samplers for one tick, resolving node lookups
// through a PropertyWriter and clip durations through a
// ClipDurationProvider. A host owns one Orchestrator per animated entity
// and calls Update once per frame.
type Orchestrator struct {
	runtime      *animgraph.Runtime
	clipDuration ClipDurationProvider
	writer       PropertyWriter

	spriteResource *spriteanim.Resource
	fromCursors    map[string]*spriteanim.Cursor
	toCursors      map[string]*spriteanim.Cursor

	propertyClips map[string]*animvalue.Clip
	resolvedNodes map[string]NodeHandle
	loggedMissing map[missingKey]bool

	logger *logrus.Entry
}

type missingKey struct {
	path     string
	property string
}

// NewOrchestrator creates an Orchestrator over resource, with its own
// independent runtime state. Collaborators are attached afterward with the
// With* methods; an Orchestrator with no PropertyWriter or sprite resource
// attached still advances its state machine correctly, it simply produces
// no writes or sprite output.
func NewOrchestrator(resource *animgraph.Resource) *Orchestrator {
	return &Orchestrator{
		runtime:       animgraph.NewRuntime(resource),
		fromCursors:   make(map[string]*spriteanim.Cursor),
		toCursors:     make(map[string]*spriteanim.Cursor),
		resolvedNodes: make(map[string]NodeHandle),
		loggedMissing: make(map[missingKey]bool),
	}
}

// WithClipDurationProvider attaches the clip duration collaborator.
func (o *Orchestrator) WithClipDurationProvider(p ClipDurationProvider) *Orchestrator {
	o.clipDuration = p
	return o
}

// WithPropertyWriter attaches the property writer collaborator, enabling
// the property-animation world.
func (o *Orchestrator) WithPropertyWriter(w PropertyWriter) *Orchestrator {
	o.writer = w
	return o
}

// WithSpriteResource attaches a sprite-animation resource whose animation
// names are addressed by the state machine's clip names, enabling the
// sprite-animation world.
func (o *Orchestrator) WithSpriteResource(r *spriteanim.Resource) *Orchestrator {
	o.spriteResource = r
	return o
}

// WithPropertyClips attaches the set of property-animation clips addressed
// by the state machine's clip names.
func (o *Orchestrator) WithPropertyClips(clips map[string]*animvalue.Clip) *Orchestrator {
	o.propertyClips = clips
	return o
}

// WithLogger scopes diagnostic logging (dropped writes, unresolved nodes)
// to logger, which may be nil.
func (o *Orchestrator) WithLogger(logger *logrus.Logger) *Orchestrator {
	if logger != nil {
		o.logger = logger.WithField("component", "animcore")
	}
	return o
}

// Runtime returns the underlying state machine runtime, for parameter
// setters and direct queries.
func (o *Orchestrator) Runtime() *animgraph.Runtime {
	return o.runtime
}

func (o *Orchestrator) clipDurationFunc() animgraph.ClipDurationFunc {
	if o.clipDuration == nil {
		return nil
	}
	return func(clip string) (float64, bool) { return o.clipDuration.DurationOf(clip) }
}

// Update advances the state machine by dt, then drives every playing
// layer's sprite cursors and/or property samplers from the resulting
// blend state.
func (o *Orchestrator) Update(dt float64) error {
	o.runtime.Update(dt, o.clipDurationFunc())

	for _, layerName := range o.runtime.LayerNames() {
		if !o.runtime.IsPlaying(layerName) {
			continue
		}
		blend, ok := o.runtime.ActiveBlend(layerName)
		if !ok {
			continue
		}

		if o.spriteResource != nil {
			o.advanceSprites(layerName, blend, dt)
		}
		if o.writer != nil && o.propertyClips != nil {
			o.applyPropertyClips(layerName, blend)
		}
	}

	return nil
}

func (o *Orchestrator) advanceSprites(layerName string, blend animgraph.Blend, dt float64) {
	from, ok := o.fromCursors[layerName]
	if !ok {
		from = spriteanim.NewCursor(o.spriteResource)
		o.fromCursors[layerName] = from
	}
	if from.CurrentAnimation() != blend.FromClip {
		from.SetAnimation(blend.FromClip)
	}
	from.Advance(dt)

	if !blend.HasTo {
		return
	}

	to, ok := o.toCursors[layerName]
	if !ok {
		to = spriteanim.NewCursor(o.spriteResource)
		o.toCursors[layerName] = to
	}
	if to.CurrentAnimation() != blend.ToClip {
		to.SetAnimation(blend.ToClip)
	}
	to.Advance(dt)
}

// SpriteOutput reports the sprite-world output for layerName after the
// most recent Update call.
func (o *Orchestrator) SpriteOutput(layerName string) (SpriteOutput, bool) {
	from, ok := o.fromCursors[layerName]
	if !ok {
		return SpriteOutput{}, false
	}
	region, ok := from.CurrentRegion()
	if !ok {
		return SpriteOutput{}, false
	}

	out := SpriteOutput{FromRegion: region}
	if to, ok := o.toCursors[layerName]; ok {
		if toRegion, ok := to.CurrentRegion(); ok {
			blend, _ := o.runtime.ActiveBlend(layerName)
			out.ToRegion = toRegion
			out.HasTo = blend.HasTo
			out.BlendT = blend.BlendFactor
		}
	}
	return out, true
}

func (o *Orchestrator) applyPropertyClips(layerName string, blend animgraph.Blend) {
	from := o.propertyClips[blend.FromClip]
	var to *animvalue.Clip
	if blend.HasTo {
		to = o.propertyClips[blend.ToClip]
	}
	if from == nil && to == nil {
		return
	}

	fromValues := map[string]map[string]animvalue.Value{}
	if from != nil {
		fromValues = from.SampleAt(blend.FromTime)
	}
	toValues := map[string]map[string]animvalue.Value{}
	if to != nil {
		toValues = to.SampleAt(blend.ToTime)
	}

	for path, props := range fromValues {
		for property, value := range props {
			o.writeBlended(path, property, value, toValues, blend)
		}
	}
	for path, props := range toValues {
		if _, alreadyWritten := fromValues[path]; alreadyWritten {
			continue
		}
		for property := range props {
			o.writeBlended(path, property, animvalue.Value{}, toValues, blend)
		}
	}
}

func (o *Orchestrator) writeBlended(path, property string, fromValue animvalue.Value, toValues map[string]map[string]animvalue.Value, blend animgraph.Blend) {
	var final animvalue.Value
	if toVal, ok := toValues[path][property]; ok && blend.HasTo {
		blended, ok := animvalue.Blend(fromValue, toVal, blend.BlendFactor)
		if ok {
			final = blended
		} else {
			final = toVal
		}
	} else {
		final = fromValue
	}

	node, ok := o.resolveNode(path)
	if !ok {
		o.logMissingOnce(path, property, "node not resolved")
		return
	}

	weight := blend.Weight
	if blend.Additive {
		if additive, ok := o.writer.(AdditivePropertyWriter); ok {
			additive.AddProperty(node, property, final, weight)
			return
		}
	}
	o.writer.SetProperty(node, property, final, weight)
}

func (o *Orchestrator) resolveNode(path string) (NodeHandle, bool) {
	if node, ok := o.resolvedNodes[path]; ok {
		return node, true
	}
	node, ok := o.writer.ResolveNode(path)
	if !ok {
		return nil, false
	}
	o.resolvedNodes[path] = node
	return node, true
}

func (o *Orchestrator) logMissingOnce(path, property, reason string) {
	key := missingKey{path: path, property: property}
	if o.loggedMissing[key] {
		return
	}
	o.loggedMissing[key] = true
	if o.logger != nil {
		o.logger.WithFields(logrus.Fields{"path": path, "property": property}).Warn(reason)
	}
}
