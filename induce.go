package stacking

import (
	"fmt"

	"github.com/bendazz/stacking/dataset"
	"github.com/bendazz/stacking/tree"
)

// Error is the type of the sentinel errors returned by this package
type Error string

const (
	// ErrEmptySet is returned when an operation that needs rows or values
	// receives none.
	ErrEmptySet = Error("empty set")
	// ErrUnboundedDepth is returned when a rule that cannot guarantee
	// progress is asked to grow a tree without a depth limit.
	ErrUnboundedDepth = Error("unguarded threshold trees need a depth limit")
	// ErrNoProgress is returned when growing without a depth limit meets
	// a split that leaves all rows on one side.
	ErrNoProgress = Error("split does not separate rows and depth is unbounded")
	// ErrInvalidEnsembleSize is returned when an ensemble of less than one
	// tree is requested.
	ErrInvalidEnsembleSize = Error("ensembles need at least one tree")
)

func (e Error) Error() string {
	return string(e)
}

// Unbounded is the depth limit for trees trained to purity
const Unbounded = -1

/*
Split is a partition of a set of rows in two. Rows satisfying Criterion make up
Left, the rest make up Right. Gain is the decrease of Gini impurity it achieves.
*/
type Split struct {
	Criterion   tree.Criterion
	Left, Right []dataset.Row
	Gain        float64
}

/*
SplitRule is an interface wrapping the Split method, which decides how a node
of a growing tree divides its rows.

The Split method takes the rows reaching a node, which are never empty nor of a
single label, and returns the split to apply, nil if the node must become a
leaf, or an error.
*/
type SplitRule interface {
	Split(rows []dataset.Row) (*Split, error)
}

/*
SplitRuleFunc wraps a function with the Split method signature to implement
the SplitRule interface
*/
type SplitRuleFunc func(rows []dataset.Row) (*Split, error)

// Split calls the SplitRuleFunc with the given rows
func (srf SplitRuleFunc) Split(rows []dataset.Row) (*Split, error) {
	return srf(rows)
}

/*
FixedThreshold splits every node on the same feature at the median of the
feature values of the node rows. It applies the split even when one of its
sides is empty; the empty side becomes a leaf with Count 0 predicting the
majority label of its parent.
*/
type FixedThreshold struct {
	Feature int
}

/*
GuardedThreshold splits every node on the same feature at the median of the
feature values of the node rows, unless one of the sides would be empty, in
which case the node becomes a leaf.
*/
type GuardedThreshold struct {
	Feature int
}

/*
Greedy searches among every feature and every value of it present on a node
for the equality split with the greatest positive impurity gain. Features are
visited in ascending order and values in order of first appearance; the first
candidate reaching the best gain wins. Nodes without a candidate of positive
gain become leaves.
*/
type Greedy struct{}

// Split returns the median split of the rows on the rule feature
func (ft FixedThreshold) Split(rows []dataset.Row) (*Split, error) {
	return medianSplit(rows, ft.Feature)
}

// Split returns the median split of the rows on the rule feature, or nil if
// either of its sides is empty
func (gt GuardedThreshold) Split(rows []dataset.Row) (*Split, error) {
	s, err := medianSplit(rows, gt.Feature)
	if err != nil {
		return nil, err
	}
	if len(s.Left) == 0 || len(s.Right) == 0 {
		return nil, nil
	}
	return s, nil
}

// Split returns the equality split with the greatest positive gain or nil
func (Greedy) Split(rows []dataset.Row) (*Split, error) {
	parent := Gini(dataset.Labels(rows))
	var best *Split
	bestGain := 0.0
	for f := 0; f < len(rows[0])-1; f++ {
		seen := make(map[interface{}]bool)
		for _, r := range rows {
			v := r[f]
			if seen[v] {
				continue
			}
			seen[v] = true
			c := tree.EqualityCriterion{Feature: f, Value: v}
			left, right, err := partition(rows, c)
			if err != nil {
				return nil, err
			}
			gain := parent - WeightedImpurity(dataset.Labels(left), dataset.Labels(right))
			if gain > bestGain {
				bestGain = gain
				best = &Split{c, left, right, gain}
			}
		}
	}
	return best, nil
}

func medianSplit(rows []dataset.Row, f int) (*Split, error) {
	values := make([]float64, len(rows))
	for i, r := range rows {
		if f < 0 || f >= len(r)-1 {
			return nil, fmt.Errorf("splitting on feature %d of rows with %d features: %v", f, len(r)-1, tree.ErrFeatureOutOfRange)
		}
		v, ok := r[f].(float64)
		if !ok {
			return nil, fmt.Errorf("splitting on feature %d: value %v of type %T: %v", f, r[f], r[f], tree.ErrNonNumericValue)
		}
		values[i] = v
	}
	threshold, err := Median(values)
	if err != nil {
		return nil, err
	}
	c := tree.ThresholdCriterion{Feature: f, Threshold: threshold}
	left, right, err := partition(rows, c)
	if err != nil {
		return nil, err
	}
	gain := Gini(dataset.Labels(rows)) - WeightedImpurity(dataset.Labels(left), dataset.Labels(right))
	return &Split{c, left, right, gain}, nil
}

func partition(rows []dataset.Row, c tree.Criterion) (left, right []dataset.Row, err error) {
	for _, r := range rows {
		ok, err := c.SatisfiedBy(r)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	return left, right, nil
}

/*
Grow takes a slice of rows, a split rule and a maximum depth and returns the
decision tree induced from the rows.

Starting from the root at depth 0, a node becomes a leaf predicting the most
common label of its rows when all of them share one label, when its depth
reaches maxDepth or when the rule returns no split for it. Otherwise the node
takes the split the rule returns and its two sides are grown recursively one
level deeper. A negative maxDepth (Unbounded) grows until every leaf is pure
or cannot be split; in that case a split that leaves every row on one side
makes Grow fail with ErrNoProgress. A split side without rows becomes a leaf
with Count 0 that predicts the most common label of its parent node.

It returns ErrEmptySet for an empty slice of rows and dataset.ErrInvalidArity
or dataset.ErrRaggedRows for rows that do not form a valid dataset.
*/
func Grow(rows []dataset.Row, rule SplitRule, maxDepth int) (*tree.Tree, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySet
	}
	if err := dataset.Validate(rows); err != nil {
		return nil, err
	}
	root, err := grow(rows, rule, 0, maxDepth, nil)
	if err != nil {
		return nil, err
	}
	return tree.New(root), nil
}

func grow(rows []dataset.Row, rule SplitRule, depth, maxDepth int, parentLabel interface{}) (tree.Node, error) {
	if len(rows) == 0 {
		return &tree.Leaf{Label: parentLabel}, nil
	}
	labels := dataset.Labels(rows)
	label, err := MostCommonLabel(labels)
	if err != nil {
		return nil, err
	}
	leaf := &tree.Leaf{Label: label, Count: len(rows)}
	if pure(labels) || (maxDepth >= 0 && depth >= maxDepth) {
		return leaf, nil
	}
	s, err := rule.Split(rows)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return leaf, nil
	}
	if maxDepth < 0 && (len(s.Left) == len(rows) || len(s.Right) == len(rows)) {
		return nil, ErrNoProgress
	}
	left, err := grow(s.Left, rule, depth+1, maxDepth, label)
	if err != nil {
		return nil, err
	}
	right, err := grow(s.Right, rule, depth+1, maxDepth, label)
	if err != nil {
		return nil, err
	}
	return s.Criterion.Branch(left, right), nil
}

/*
TrainSimpleTree takes a slice of rows, a feature index and a maximum depth and
grows a tree with the FixedThreshold rule on that feature. maxDepth must not be
negative (ErrUnboundedDepth).
*/
func TrainSimpleTree(rows []dataset.Row, feature, maxDepth int) (*tree.Tree, error) {
	if maxDepth < 0 {
		return nil, ErrUnboundedDepth
	}
	return Grow(rows, FixedThreshold{feature}, maxDepth)
}

/*
TrainTupleTree takes a slice of rows and a maximum depth and grows a tree with
the GuardedThreshold rule on the first feature.
*/
func TrainTupleTree(rows []dataset.Row, maxDepth int) (*tree.Tree, error) {
	return TrainTupleTreeOn(rows, 0, maxDepth)
}

/*
TrainTupleTreeOn is TrainTupleTree with a configurable feature index.
*/
func TrainTupleTreeOn(rows []dataset.Row, feature, maxDepth int) (*tree.Tree, error) {
	return Grow(rows, GuardedThreshold{feature}, maxDepth)
}

/*
TrainGreedyTree takes a slice of rows and a maximum depth (Unbounded to train
to purity) and grows a tree with the Greedy rule.
*/
func TrainGreedyTree(rows []dataset.Row, maxDepth int) (*tree.Tree, error) {
	return Grow(rows, Greedy{}, maxDepth)
}
