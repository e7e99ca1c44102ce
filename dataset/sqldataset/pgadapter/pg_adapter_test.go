package pgadapter

import (
	"testing"

	"github.com/bendazz/stacking/feature"
)

func TestPlaceholder(t *testing.T) {
	a := &adapter{}
	for n, expected := range map[int]string{1: "$1", 2: "$2", 12: "$12"} {
		if p := a.Placeholder(n); p != expected {
			t.Errorf("expected %s, got %s", expected, p)
		}
	}
}

func TestColumnType(t *testing.T) {
	a := &adapter{}
	ct, err := a.ColumnType(feature.NewContinuousFeature("length"))
	if err != nil || ct != "DOUBLE PRECISION" {
		t.Errorf("expected DOUBLE PRECISION, got %q and %v", ct, err)
	}
	ct, err = a.ColumnType(feature.NewDiscreteFeature("color", []string{"red"}))
	if err != nil || ct != "TEXT" {
		t.Errorf("expected TEXT, got %q and %v", ct, err)
	}
	if _, err = a.ColumnName("id"); err == nil {
		t.Errorf("expected id to be reserved")
	}
}
