package spriteanim

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/animcore/pkg/resourceio"
)

const (
	docType    = "SpriteAnimation"
	docVersion = "1.0"
)

type frameDoc struct {
	// Region is [x, y, w, h]: a pixel rect when the atlas size is known and
	// any component exceeds 1, else a normalized UV rect. Used when
	// GridIndex is absent.
	Region []float64 `json:"region,omitempty"`
	// GridIndex addresses a cell in a CellWidth x CellHeight grid; takes
	// precedence over Region when present.
	GridIndex *int    `json:"grid_index,omitempty"`
	Duration  float64 `json:"duration"`
}

type animationDoc struct {
	Looping    bool       `json:"looping"`
	SpeedScale float64    `json:"speed_scale"`
	Frames     []frameDoc `json:"frames"`
}

type resourceDoc struct {
	Type             string                  `json:"type"`
	Version          string                  `json:"version"`
	TexturePath      string                  `json:"texture_path"`
	AtlasWidth       int                     `json:"atlas_width,omitempty"`
	AtlasHeight      int                     `json:"atlas_height,omitempty"`
	CellWidth        int                     `json:"cell_width,omitempty"`
	CellHeight       int                     `json:"cell_height,omitempty"`
	DefaultAnimation string                  `json:"default_animation,omitempty"`
	Animations       map[string]animationDoc `json:"animations"`
}

// Load reads a sprite-animation resource document from path.
func Load(path string) (*Resource, error) {
	return LoadWithLogger(path, nil)
}

// LoadWithLogger reads a sprite-animation resource document from path,
// logging dropped references through logger (which may be nil).
func LoadWithLogger(path string, logger *logrus.Logger) (*Resource, error) {
	var entry *logrus.Entry
	if logger != nil {
		entry = logger.WithField("component", "spriteanim")
	}

	var doc resourceDoc
	if err := resourceio.NewLoader(logger).Load(path, &doc); err != nil {
		if errors.Is(err, resourceio.ErrNotFound) {
			return nil, fmt.Errorf("spriteanim: load %s: %w", path, ErrFileNotFound)
		}
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			return nil, fmt.Errorf("spriteanim: load %s: %w: %v", path, ErrInvalidFormat, err)
		}
		return nil, err
	}
	if doc.Type != docType {
		return nil, fmt.Errorf("spriteanim: load %s: %w: unrecognised type %q", path, ErrInvalidFormat, doc.Type)
	}

	return decodeResource(&doc, entry)
}

func decodeResource(doc *resourceDoc, logger *logrus.Entry) (*Resource, error) {
	r := NewResource(doc.TexturePath)
	r.AtlasWidth = doc.AtlasWidth
	r.AtlasHeight = doc.AtlasHeight
	r.CellWidth = doc.CellWidth
	r.CellHeight = doc.CellHeight
	r.DefaultAnimation = doc.DefaultAnimation

	for name, ad := range doc.Animations {
		anim := Animation{Name: name, Looping: ad.Looping, SpeedScale: ad.SpeedScale}
		for _, fd := range ad.Frames {
			region, err := decodeRegion(r, fd)
			if err != nil {
				return nil, fmt.Errorf("spriteanim: animation %q: %w", name, err)
			}
			anim.Frames = append(anim.Frames, Frame{Region: region, Duration: fd.Duration})
		}
		r.AddAnimation(anim)
	}

	if r.DefaultAnimation != "" {
		if _, ok := r.Animations[r.DefaultAnimation]; !ok {
			if logger != nil {
				logger.WithField("default_animation", r.DefaultAnimation).
					Warn("default_animation references a missing animation, clearing")
			}
			r.DefaultAnimation = ""
		}
	}

	return r, nil
}

// decodeRegion normalizes a frame's authored region (explicit pixel rect or
// grid index) into UV space using the resource's atlas dimensions. A
// frame authored without atlas_size known is assumed already normalized.
func decodeRegion(r *Resource, fd frameDoc) (Rect, error) {
	if fd.GridIndex != nil {
		if r.CellWidth <= 0 || r.CellHeight <= 0 || r.AtlasWidth <= 0 || r.AtlasHeight <= 0 {
			return Rect{}, fmt.Errorf("%w: grid_index requires known cell and atlas size", ErrInvalidFormat)
		}
		cols := r.AtlasWidth / r.CellWidth
		if cols <= 0 {
			return Rect{}, fmt.Errorf("%w: invalid grid geometry", ErrInvalidFormat)
		}
		idx := *fd.GridIndex
		col := idx % cols
		row := idx / cols
		return Rect{
			X: float64(col*r.CellWidth) / float64(r.AtlasWidth),
			Y: float64(row*r.CellHeight) / float64(r.AtlasHeight),
			W: float64(r.CellWidth) / float64(r.AtlasWidth),
			H: float64(r.CellHeight) / float64(r.AtlasHeight),
		}, nil
	}

	if len(fd.Region) == 4 {
		x, y, w, h := fd.Region[0], fd.Region[1], fd.Region[2], fd.Region[3]
		if r.AtlasWidth > 0 && r.AtlasHeight > 0 && (x > 1 || y > 1 || w > 1 || h > 1) {
			return Rect{
				X: x / float64(r.AtlasWidth),
				Y: y / float64(r.AtlasHeight),
				W: w / float64(r.AtlasWidth),
				H: h / float64(r.AtlasHeight),
			}, nil
		}
		return Rect{X: x, Y: y, W: w, H: h}, nil
	}

	return Rect{}, fmt.Errorf("%w: frame has neither region nor grid_index", ErrInvalidFormat)
}

// Save writes resource to path as a pretty-printed, versioned JSON
// document. Regions are emitted as pixel rects when the atlas size is
// known, else as normalized UV rects.
func Save(path string, resource *Resource) error {
	return SaveWithLogger(path, resource, nil)
}

// SaveWithLogger writes resource to path, logging through logger (which
// may be nil).
func SaveWithLogger(path string, resource *Resource, logger *logrus.Logger) error {
	doc := encodeResource(resource)
	return resourceio.NewLoader(logger).Save(path, &doc)
}

func encodeResource(r *Resource) resourceDoc {
	doc := resourceDoc{
		Type:             docType,
		Version:          docVersion,
		TexturePath:      r.TexturePath,
		AtlasWidth:       r.AtlasWidth,
		AtlasHeight:      r.AtlasHeight,
		CellWidth:        r.CellWidth,
		CellHeight:       r.CellHeight,
		DefaultAnimation: r.DefaultAnimation,
		Animations:       make(map[string]animationDoc, len(r.Animations)),
	}

	atlasKnown := r.AtlasWidth > 0 && r.AtlasHeight > 0
	for _, name := range r.AnimationNames() {
		anim := r.Animations[name]
		ad := animationDoc{Looping: anim.Looping, SpeedScale: anim.SpeedScale}
		for _, f := range anim.Frames {
			fd := frameDoc{Duration: f.Duration}
			if atlasKnown {
				fd.Region = []float64{
					f.Region.X * float64(r.AtlasWidth),
					f.Region.Y * float64(r.AtlasHeight),
					f.Region.W * float64(r.AtlasWidth),
					f.Region.H * float64(r.AtlasHeight),
				}
			} else {
				fd.Region = []float64{f.Region.X, f.Region.Y, f.Region.W, f.Region.H}
			}
			ad.Frames = append(ad.Frames, fd)
		}
		doc.Animations[name] = ad
	}

	return doc
}
