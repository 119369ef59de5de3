package spriteanim

// Rect is a frame's source rectangle in normalized UV space (0..1 over the
// shared texture atlas), regardless of how it was authored (pixel rect or
// grid index).
type Rect struct {
	X, Y, W, H float64
}

// Frame is one step of an animation sequence: the region to display and
// how long to hold it, in seconds, before advancing.
type Frame struct {
	Region   Rect
	Duration float64
}

// Animation is a named, orderable sequence of frames sharing one texture.
type Animation struct {
	Name       string
	Looping    bool
	SpeedScale float64
	Frames     []Frame
}

// Resource is the in-memory, immutably-shared representation of an
// authored sprite-animation document: one texture atlas and a
// uniquely-named set of animations.
type Resource struct {
	TexturePath string
	// AtlasWidth/AtlasHeight are the atlas's pixel dimensions, used to
	// normalize pixel-rect and grid-index frames on load and to re-emit
	// pixel rects on save. Zero means unknown: frames must already be
	// authored in normalized form.
	AtlasWidth  int
	AtlasHeight int
	// CellWidth/CellHeight are the grid cell size used to resolve
	// grid_index-authored frames. Zero means the document uses explicit
	// regions instead of a grid.
	CellWidth        int
	CellHeight       int
	DefaultAnimation string

	Animations map[string]Animation
	order      []string
}

// NewResource returns an empty resource ready for programmatic population
// via AddAnimation.
func NewResource(texturePath string) *Resource {
	return &Resource{
		TexturePath: texturePath,
		Animations:  make(map[string]Animation),
	}
}

// AddAnimation adds or replaces an animation by name, appending to
// declaration order the first time the name is seen.
func (r *Resource) AddAnimation(a Animation) {
	if r.Animations == nil {
		r.Animations = make(map[string]Animation)
	}
	if _, exists := r.Animations[a.Name]; !exists {
		r.order = append(r.order, a.Name)
	}
	r.Animations[a.Name] = a
}

// RemoveAnimation deletes an animation by name; a no-op if absent.
func (r *Resource) RemoveAnimation(name string) {
	if _, exists := r.Animations[name]; !exists {
		return
	}
	delete(r.Animations, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// AnimationNames returns animation names in declaration order.
func (r *Resource) AnimationNames() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
