package tree

import (
	"strings"
	"testing"

	"github.com/bendazz/stacking/dataset"
)

func sampleTree() *Tree {
	return New(&ThresholdSplit{
		ThresholdCriterion{Feature: 0, Threshold: 2.5},
		&Leaf{Label: "small", Count: 3},
		&EqualitySplit{
			EqualityCriterion{Feature: 1, Value: "red"},
			&Leaf{Label: "apple", Count: 2},
			&Leaf{Label: "plum", Count: 4},
		},
	})
}

func TestPredict(t *testing.T) {
	tr := sampleTree()
	testCases := []struct {
		row      dataset.Row
		expected interface{}
	}{
		{dataset.Row{1.0, "red", "?"}, "small"},
		{dataset.Row{2.5, "green", "?"}, "small"},
		{dataset.Row{3.0, "red", "?"}, "apple"},
		{dataset.Row{3.0, "blue", "?"}, "plum"},
	}
	for _, tc := range testCases {
		p, err := tr.Predict(tc.row)
		if err != nil {
			t.Errorf("row %v: unexpected error %v", tc.row, err)
			continue
		}
		if p != tc.expected {
			t.Errorf("row %v: expected %v, got %v", tc.row, tc.expected, p)
		}
	}
}

func TestPredictErrors(t *testing.T) {
	testCases := []struct {
		name string
		node Node
		row  dataset.Row
		err  error
	}{
		{"nil node", nil, dataset.Row{1.0, "a"}, ErrMalformedNode},
		{"nil leaf", (*Leaf)(nil), dataset.Row{1.0, "a"}, ErrMalformedNode},
		{"nil child", &ThresholdSplit{ThresholdCriterion{0, 1}, nil, &Leaf{"a", 1}}, dataset.Row{0.0, "a"}, ErrMalformedNode},
		{"empty leaf", &Leaf{}, dataset.Row{1.0, "a"}, ErrEmptyLeaf},
		{"out of range", &EqualitySplit{EqualityCriterion{5, "x"}, &Leaf{"a", 1}, &Leaf{"b", 1}}, dataset.Row{1.0, "a"}, ErrFeatureOutOfRange},
		{"non numeric", &ThresholdSplit{ThresholdCriterion{0, 1}, &Leaf{"a", 1}, &Leaf{"b", 1}}, dataset.Row{"x", "a"}, ErrNonNumericValue},
	}
	for _, tc := range testCases {
		_, err := Predict(tc.node, tc.row)
		if err != tc.err {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.err, err)
		}
	}
}

func TestDepthAndLeaves(t *testing.T) {
	tr := sampleTree()
	if d := tr.Depth(); d != 2 {
		t.Errorf("expected depth 2, got %d", d)
	}
	leaves := tr.Leaves()
	if len(leaves) != 3 {
		t.Fatalf("expected 3 leaves, got %d", len(leaves))
	}
	if leaves[0].Label != "small" || leaves[2].Label != "plum" {
		t.Errorf("unexpected leaf order %v", leaves)
	}
	if d := New(&Leaf{"a", 1}).Depth(); d != 0 {
		t.Errorf("expected depth 0 for a single leaf, got %d", d)
	}
}

func TestTraverseStopsOnError(t *testing.T) {
	var visited int
	err := sampleTree().Traverse(func(_ int, n Node) error {
		visited++
		if _, ok := n.(*EqualitySplit); ok {
			return ErrMalformedNode
		}
		return nil
	})
	if err != ErrMalformedNode {
		t.Errorf("expected traversal error, got %v", err)
	}
	if visited != 3 {
		t.Errorf("expected traversal to stop after 3 nodes, visited %d", visited)
	}
}

func TestString(t *testing.T) {
	s := sampleTree().String()
	for _, expected := range []string{"x[0] <= 2.5", "x[1] is red", "predict plum (4)", "|__"} {
		if !strings.Contains(s, expected) {
			t.Errorf("expected %q in tree rendering:\n%s", expected, s)
		}
	}
}

func TestPredictUntrainedLeafWithLabel(t *testing.T) {
	n := &ThresholdSplit{ThresholdCriterion{0, 5}, &Leaf{"a", 3}, &Leaf{"a", 0}}
	p, err := Predict(n, dataset.Row{6.0, "?"})
	if err != nil || p != "a" {
		t.Errorf("expected a, got %v (%v)", p, err)
	}
}
