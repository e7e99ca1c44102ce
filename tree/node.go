package tree

import (
	"fmt"

	"github.com/bendazz/stacking/dataset"
)

/*
Node is a node of a decision tree. It is one of *Leaf, *ThresholdSplit or
*EqualitySplit; no other type implements it.
*/
type Node interface {
	node()
}

/*
Leaf is a terminal node. It predicts Label for every row that reaches it and
records the number of training rows it was built from. A leaf with Count 0
was trained on an empty set of rows and predicts the majority label of its
parent.
*/
type Leaf struct {
	Label interface{}
	Count int
}

/*
ThresholdSplit is an internal node sending rows whose value for Feature is
lower or equal than Threshold to Left and the rest to Right.
*/
type ThresholdSplit struct {
	ThresholdCriterion
	Left, Right Node
}

/*
EqualitySplit is an internal node sending rows whose value for Feature equals
Value to Left and the rest to Right.
*/
type EqualitySplit struct {
	EqualityCriterion
	Left, Right Node
}

func (*Leaf) node()           {}
func (*ThresholdSplit) node() {}
func (*EqualitySplit) node()  {}

/*
Criterion is the condition an internal node imposes on rows.

Its SatisfiedBy method takes a row and returns whether it satisfies the
condition, that is, whether it belongs on the left side of the split.

Its Branch method takes the two subtrees of a split and returns the internal
node holding the criterion and them.
*/
type Criterion interface {
	SatisfiedBy(dataset.Row) (bool, error)
	Branch(left, right Node) Node
}

// ThresholdCriterion holds for rows whose value for Feature is <= Threshold
type ThresholdCriterion struct {
	Feature   int
	Threshold float64
}

// EqualityCriterion holds for rows whose value for Feature equals Value
type EqualityCriterion struct {
	Feature int
	Value   interface{}
}

/*
SatisfiedBy returns true if the row value for the criterion feature is a
float64 lower than or equal to the threshold. It returns ErrFeatureOutOfRange
if the row has no value for the feature, and ErrNonNumericValue if the value
is not a float64.
*/
func (c ThresholdCriterion) SatisfiedBy(r dataset.Row) (bool, error) {
	if c.Feature < 0 || c.Feature >= len(r) {
		return false, ErrFeatureOutOfRange
	}
	v, ok := r[c.Feature].(float64)
	if !ok {
		return false, ErrNonNumericValue
	}
	return v <= c.Threshold, nil
}

// Branch returns a *ThresholdSplit with the criterion and the given subtrees
func (c ThresholdCriterion) Branch(left, right Node) Node {
	return &ThresholdSplit{c, left, right}
}

func (c ThresholdCriterion) String() string {
	return fmt.Sprintf("x[%d] <= %g", c.Feature, c.Threshold)
}

/*
SatisfiedBy returns true if the row value for the criterion feature equals
the criterion value. It returns ErrFeatureOutOfRange if the row has no value
for the feature.
*/
func (c EqualityCriterion) SatisfiedBy(r dataset.Row) (bool, error) {
	if c.Feature < 0 || c.Feature >= len(r) {
		return false, ErrFeatureOutOfRange
	}
	return r[c.Feature] == c.Value, nil
}

// Branch returns an *EqualitySplit with the criterion and the given subtrees
func (c EqualityCriterion) Branch(left, right Node) Node {
	return &EqualitySplit{c, left, right}
}

func (c EqualityCriterion) String() string {
	return fmt.Sprintf("x[%d] is %v", c.Feature, c.Value)
}

func (l *Leaf) String() string {
	if l.Label == nil {
		return "empty"
	}
	return fmt.Sprintf("predict %v (%d)", l.Label, l.Count)
}

// Children returns the subtrees of an internal node, or nil for leaves
func Children(n Node) []Node {
	switch n := n.(type) {
	case *ThresholdSplit:
		return []Node{n.Left, n.Right}
	case *EqualitySplit:
		return []Node{n.Left, n.Right}
	}
	return nil
}
