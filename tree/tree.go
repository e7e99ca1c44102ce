/*
Package tree provides the representation of trained decision trees and the
traversal that makes predictions with them.
*/
package tree

import (
	"fmt"
	"strings"

	"github.com/bendazz/stacking/dataset"
)

// PredictionError represents an error related with predictions
type PredictionError string

const (
	// ErrMalformedNode is returned when a traversal reaches a nil node or
	// a node of an unknown type.
	ErrMalformedNode = PredictionError("malformed tree node")
	// ErrEmptyLeaf is returned when a traversal reaches a leaf without a
	// label to predict.
	ErrEmptyLeaf = PredictionError("no prediction available: leaf has no label")
	// ErrFeatureOutOfRange is returned when a row has no value for the
	// feature a split asks about.
	ErrFeatureOutOfRange = PredictionError("row has no value for split feature")
	// ErrNonNumericValue is returned when a threshold split meets a
	// value that is not a float64.
	ErrNonNumericValue = PredictionError("threshold split on non-numeric value")
)

func (pe PredictionError) Error() string {
	return string(pe)
}

// Tree is a trained decision tree. It is not modified once trained.
type Tree struct {
	Root Node
}

// New takes the root node of a tree and returns the tree
func New(root Node) *Tree {
	return &Tree{root}
}

// Predict takes a row and returns the label the tree predicts for it or an
// error, as Predict does for the tree root.
func (t *Tree) Predict(r dataset.Row) (interface{}, error) {
	if t == nil {
		return nil, fmt.Errorf("nil tree cannot predict rows")
	}
	return Predict(t.Root, r)
}

/*
Predict takes a node and a row and descends from the node until a leaf is
reached: left on a threshold split when the row value is lower than or equal
to the threshold, left on an equality split when the row value equals the
split value, and right otherwise. It returns the label of the reached leaf.

An error is returned when a nil or unknown node is found (ErrMalformedNode),
when the reached leaf has no label (ErrEmptyLeaf) or when the row does not
have a suitable value for a split (ErrFeatureOutOfRange, ErrNonNumericValue).
*/
func Predict(n Node, r dataset.Row) (interface{}, error) {
	for {
		var left, right Node
		var c Criterion
		switch node := n.(type) {
		case *Leaf:
			if node == nil {
				return nil, ErrMalformedNode
			}
			if node.Label == nil {
				return nil, ErrEmptyLeaf
			}
			return node.Label, nil
		case *ThresholdSplit:
			if node == nil {
				return nil, ErrMalformedNode
			}
			c, left, right = node.ThresholdCriterion, node.Left, node.Right
		case *EqualitySplit:
			if node == nil {
				return nil, ErrMalformedNode
			}
			c, left, right = node.EqualityCriterion, node.Left, node.Right
		default:
			return nil, ErrMalformedNode
		}
		ok, err := c.SatisfiedBy(r)
		if err != nil {
			return nil, err
		}
		if ok {
			n = left
		} else {
			n = right
		}
	}
}

/*
Traverse takes a function on a depth and a node and calls it for every node
of the tree in preorder, the root being at depth 0. If the function returns
an error the traversal is aborted and the error returned.
*/
func (t *Tree) Traverse(f func(depth int, n Node) error) error {
	return traverse(t.Root, 0, f)
}

func traverse(n Node, depth int, f func(int, Node) error) error {
	if err := f(depth, n); err != nil {
		return err
	}
	for _, c := range Children(n) {
		if err := traverse(c, depth+1, f); err != nil {
			return err
		}
	}
	return nil
}

// Depth returns the length of the longest path from the root to a leaf
func (t *Tree) Depth() int {
	var max int
	t.Traverse(func(depth int, _ Node) error {
		if depth > max {
			max = depth
		}
		return nil
	})
	return max
}

// Leaves returns the leaves of the tree from left to right
func (t *Tree) Leaves() []*Leaf {
	var leaves []*Leaf
	t.Traverse(func(_ int, n Node) error {
		if l, ok := n.(*Leaf); ok {
			leaves = append(leaves, l)
		}
		return nil
	})
	return leaves
}

func (t *Tree) String() string {
	return subtreeString(t.Root)
}

func subtreeString(n Node) string {
	var result string
	switch n := n.(type) {
	case *Leaf:
		result = fmt.Sprintf("{ %v }\n", n)
	case *ThresholdSplit:
		result = fmt.Sprintf("{ %v }\n|\n", n.ThresholdCriterion)
	case *EqualitySplit:
		result = fmt.Sprintf("{ %v }\n|\n", n.EqualityCriterion)
	default:
		return "ERROR: malformed node\n"
	}
	children := Children(n)
	for i, c := range children {
		for j, line := range strings.Split(subtreeString(c), "\n") {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else {
					if i == len(children)-1 {
						result = fmt.Sprintf("%s   %s\n", result, line)
					} else {
						result = fmt.Sprintf("%s|  %s\n", result, line)
					}
				}
			}
		}
	}
	return result
}
