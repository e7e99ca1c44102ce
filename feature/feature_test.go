package feature

import "testing"

func TestDiscreteFeature(t *testing.T) {
	f := NewDiscreteFeature("color", []string{"red", "green"})
	if ok, err := f.Valid("red"); !ok || err != nil {
		t.Errorf("expected red to be valid, got %v and %v", ok, err)
	}
	for _, v := range []interface{}{"blue", 1.0, nil} {
		if ok, err := f.Valid(v); ok || err == nil {
			t.Errorf("%v: expected an invalid value", v)
		}
	}
	if v, err := f.Parse("green"); err != nil || v != "green" {
		t.Errorf("expected green, got %v and %v", v, err)
	}
	if _, err := f.Parse("blue"); err == nil {
		t.Errorf("expected an error parsing blue")
	}
}

func TestContinuousFeature(t *testing.T) {
	f := NewContinuousFeature("length")
	if ok, err := f.Valid(1.5); !ok || err != nil {
		t.Errorf("expected 1.5 to be valid, got %v and %v", ok, err)
	}
	if ok, _ := f.Valid("1.5"); ok {
		t.Errorf("expected strings to be invalid")
	}
	if v, err := f.Parse("4.7"); err != nil || v != 4.7 {
		t.Errorf("expected 4.7, got %v and %v", v, err)
	}
	if _, err := f.Parse("long"); err == nil {
		t.Errorf("expected an error parsing long")
	}
}

func TestIndexAndNames(t *testing.T) {
	features := []Feature{NewContinuousFeature("a"), NewDiscreteFeature("b", nil)}
	if i := Index(features, "b"); i != 1 {
		t.Errorf("expected index 1, got %d", i)
	}
	if i := Index(features, "c"); i != -1 {
		t.Errorf("expected index -1, got %d", i)
	}
	names := Names(features)
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("unexpected names %v", names)
	}
}
