package animvalue

import "testing"

func TestBlendFloat(t *testing.T) {
	a := Float(0.0)
	b := Float(10.0)

	got, ok := Blend(a, b, 0.3)
	if !ok {
		t.Fatal("expected blend to succeed for matching kinds")
	}
	if got.Float != 3.0 {
		t.Errorf("expected 3.0, got %v", got.Float)
	}

	got, ok = Blend(a, b, 0.5)
	if !ok || got.Float != 5.0 {
		t.Errorf("expected 5.0, got %v (ok=%v)", got.Float, ok)
	}
}

func TestBlendKindMismatch(t *testing.T) {
	_, ok := Blend(Float(1), Bool(true), 0.5)
	if ok {
		t.Error("expected blend of mismatched kinds to fail")
	}
}

func TestBlendBoolNearestNeighbour(t *testing.T) {
	a := Bool(true)
	b := Bool(false)

	got, ok := Blend(a, b, 0.49)
	if !ok || got.Bool != true {
		t.Errorf("expected a (true) below 0.5, got %v", got.Bool)
	}

	got, ok = Blend(a, b, 0.5)
	if !ok || got.Bool != false {
		t.Errorf("expected b (false) at 0.5, got %v", got.Bool)
	}
}

func TestBlendStringNearestNeighbour(t *testing.T) {
	got, ok := Blend(String("walk"), String("run"), 0.9)
	if !ok || got.Str != "run" {
		t.Errorf("expected run, got %v", got.Str)
	}
}

func TestBlendVec2(t *testing.T) {
	a := NewVec2(Vec2{X: 0, Y: 0})
	b := NewVec2(Vec2{X: 10, Y: 20})

	got, ok := Blend(a, b, 0.5)
	if !ok {
		t.Fatal("expected ok")
	}
	if got.Vec2.X != 5 || got.Vec2.Y != 10 {
		t.Errorf("expected (5,10), got %+v", got.Vec2)
	}
}

func TestScale(t *testing.T) {
	got := Scale(Float(10), 0.5)
	if got.Float != 5 {
		t.Errorf("expected 5, got %v", got.Float)
	}

	// bool/string are unaffected by scale
	b := Scale(Bool(true), 0.5)
	if b.Bool != true {
		t.Errorf("expected bool unaffected by scale, got %v", b.Bool)
	}
}
