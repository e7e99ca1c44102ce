package stacking

import (
	"math/rand"
	"testing"

	"github.com/bendazz/stacking/dataset"
)

func TestTrainBaggedTreesShape(t *testing.T) {
	rows := loadIris(t).Rows[:60]
	for _, n := range []int{1, 3, 5} {
		ensemble, err := TrainBaggedTrees(rows, n, 1, 2, rand.New(rand.NewSource(int64(n))))
		if err != nil {
			t.Fatalf("%d trees: unexpected error %v", n, err)
		}
		if len(ensemble) != n {
			t.Fatalf("expected %d members, got %d", n, len(ensemble))
		}
		for i, m := range ensemble {
			if len(m.SampleIndices) != len(rows) {
				t.Errorf("member %d: expected %d sample indices, got %d", i, len(rows), len(m.SampleIndices))
			}
			for _, idx := range m.SampleIndices {
				if idx < 0 || idx >= len(rows) {
					t.Errorf("member %d: sample index %d out of range", i, idx)
				}
			}
			if d := m.Tree.Depth(); d > 1 {
				t.Errorf("member %d: expected depth at most 1, got %d", i, d)
			}
		}
	}
}

func TestTrainBaggedTreesUsesTheSample(t *testing.T) {
	rows := []dataset.Row{{1.0, "a"}, {2.0, "b"}, {3.0, "c"}}
	ensemble, err := TrainBaggedTrees(rows, 4, 0, 0, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	for i, m := range ensemble {
		labels := make([]interface{}, len(m.SampleIndices))
		for j, idx := range m.SampleIndices {
			labels[j] = rows[idx].Label()
		}
		expected, _ := MostCommonLabel(labels)
		p, err := m.Tree.Predict(dataset.Row{0.0, "?"})
		if err != nil {
			t.Fatalf("member %d: unexpected error %v", i, err)
		}
		if p != expected {
			t.Errorf("member %d: expected the majority of its sample %v, got %v", i, expected, p)
		}
	}
}

func TestTrainBaggedTreesErrors(t *testing.T) {
	rows := []dataset.Row{{1.0, "a"}}
	if _, err := TrainBaggedTrees(rows, 0, 1, 0, rand.New(rand.NewSource(1))); err != ErrInvalidEnsembleSize {
		t.Errorf("expected ErrInvalidEnsembleSize, got %v", err)
	}
	if _, err := TrainBaggedTrees(nil, 2, 1, 0, rand.New(rand.NewSource(1))); err != ErrEmptySet {
		t.Errorf("expected ErrEmptySet, got %v", err)
	}
}

func TestBootstrap(t *testing.T) {
	indices := Bootstrap(50, rand.New(rand.NewSource(5)))
	if len(indices) != 50 {
		t.Fatalf("expected 50 indices, got %d", len(indices))
	}
	seen := make(map[int]bool)
	for _, idx := range indices {
		seen[idx] = true
	}
	if len(seen) == 50 {
		t.Errorf("expected repeated indices in a bootstrap sample of 50")
	}
}
