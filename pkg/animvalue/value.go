package animvalue

import "fmt"

// Kind identifies which field of a Value is populated.
type Kind int

const (
	KindFloat Kind = iota
	KindVec2
	KindVec3
	KindVec4
	KindColor
	KindBool
	KindString
)

// String returns the lower-case name of the kind, matching the JSON
// encoding used at the resource boundary.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindVec4:
		return "vec4"
	case KindColor:
		return "color"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Vec2, Vec3, Vec4 are plain component vectors; they carry no behaviour of
// their own, matching how the state machine's parameter model keeps its
// payload types inert data.
type Vec2 struct{ X, Y float64 }
type Vec3 struct{ X, Y, Z float64 }
type Vec4 struct{ X, Y, Z, W float64 }

// Color is a normalised (0..1 per channel) RGBA color.
type Color struct{ R, G, B, A float64 }

// Value is a tagged union over the animation value kinds a property track
// or cross-fade can carry. Only the field matching Kind is meaningful.
type Value struct {
	Kind   Kind
	Float  float64
	Vec2   Vec2
	Vec3   Vec3
	Vec4   Vec4
	Color  Color
	Bool   bool
	Str    string
}

func Float(v float64) Value  { return Value{Kind: KindFloat, Float: v} }
func NewVec2(v Vec2) Value   { return Value{Kind: KindVec2, Vec2: v} }
func NewVec3(v Vec3) Value   { return Value{Kind: KindVec3, Vec3: v} }
func NewVec4(v Vec4) Value   { return Value{Kind: KindVec4, Vec4: v} }
func NewColor(v Color) Value { return Value{Kind: KindColor, Color: v} }
func Bool(v bool) Value      { return Value{Kind: KindBool, Bool: v} }
func String(v string) Value  { return Value{Kind: KindString, Str: v} }

// Blend interpolates between two values of the same kind by weight t, where
// t=0 yields a and t=1 yields b. Numeric kinds lerp component-wise; bool and
// string kinds snap to the nearer endpoint (t<0.5 -> a, else b), per the
// blend contract in the animation value model. Returns ok=false if the two
// values don't share a kind — the caller should treat that as "no blend"
// rather than guessing.
func Blend(a, b Value, t float64) (Value, bool) {
	if a.Kind != b.Kind {
		return Value{}, false
	}

	switch a.Kind {
	case KindFloat:
		return Float(lerp(a.Float, b.Float, t)), true
	case KindVec2:
		return NewVec2(Vec2{
			X: lerp(a.Vec2.X, b.Vec2.X, t),
			Y: lerp(a.Vec2.Y, b.Vec2.Y, t),
		}), true
	case KindVec3:
		return NewVec3(Vec3{
			X: lerp(a.Vec3.X, b.Vec3.X, t),
			Y: lerp(a.Vec3.Y, b.Vec3.Y, t),
			Z: lerp(a.Vec3.Z, b.Vec3.Z, t),
		}), true
	case KindVec4:
		return NewVec4(Vec4{
			X: lerp(a.Vec4.X, b.Vec4.X, t),
			Y: lerp(a.Vec4.Y, b.Vec4.Y, t),
			Z: lerp(a.Vec4.Z, b.Vec4.Z, t),
			W: lerp(a.Vec4.W, b.Vec4.W, t),
		}), true
	case KindColor:
		return NewColor(Color{
			R: lerp(a.Color.R, b.Color.R, t),
			G: lerp(a.Color.G, b.Color.G, t),
			B: lerp(a.Color.B, b.Color.B, t),
			A: lerp(a.Color.A, b.Color.A, t),
		}), true
	case KindBool:
		if t < 0.5 {
			return a, true
		}
		return b, true
	case KindString:
		if t < 0.5 {
			return a, true
		}
		return b, true
	default:
		return Value{}, false
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Scale multiplies a numeric value's magnitude by weight; bool/string values
// are returned unchanged since they have no notion of magnitude. The
// orchestrator does not call Scale; it passes the layer weight to the
// PropertyWriter as the write's weight argument.
func Scale(v Value, weight float64) Value {
	switch v.Kind {
	case KindFloat:
		return Float(v.Float * weight)
	case KindVec2:
		return NewVec2(Vec2{X: v.Vec2.X * weight, Y: v.Vec2.Y * weight})
	case KindVec3:
		return NewVec3(Vec3{X: v.Vec3.X * weight, Y: v.Vec3.Y * weight, Z: v.Vec3.Z * weight})
	case KindVec4:
		return NewVec4(Vec4{X: v.Vec4.X * weight, Y: v.Vec4.Y * weight, Z: v.Vec4.Z * weight, W: v.Vec4.W * weight})
	case KindColor:
		return NewColor(Color{R: v.Color.R * weight, G: v.Color.G * weight, B: v.Color.B * weight, A: v.Color.A * weight})
	default:
		return v
	}
}

// String implements fmt.Stringer for debugging/log output.
func (v Value) String() string {
	return fmt.Sprintf("%s(%v)", v.Kind, v.raw())
}

func (v Value) raw() interface{} {
	switch v.Kind {
	case KindFloat:
		return v.Float
	case KindVec2:
		return v.Vec2
	case KindVec3:
		return v.Vec3
	case KindVec4:
		return v.Vec4
	case KindColor:
		return v.Color
	case KindBool:
		return v.Bool
	case KindString:
		return v.Str
	default:
		return nil
	}
}
