/*
Package json converts trees into the generic node/children hierarchy that
rendering layers draw, and serializes it as JSON.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bendazz/stacking/tree"
)

/*
Node is the JSON form of a tree node:
* "kind": one of "leaf", "threshold" or "equality"
* "feature": the index of the feature a split asks about
* "featureName": the name of that feature, when known
* "threshold": the threshold of a threshold split
* "value": the value of an equality split
* "label" and "count": the prediction and training row count of a leaf
* "children": the left and right subtrees of a split
*/
type Node struct {
	Kind        string      `json:"kind"`
	Feature     *int        `json:"feature,omitempty"`
	FeatureName string      `json:"featureName,omitempty"`
	Threshold   *float64    `json:"threshold,omitempty"`
	Value       interface{} `json:"value,omitempty"`
	Label       interface{} `json:"label,omitempty"`
	Count       *int        `json:"count,omitempty"`
	Children    []*Node     `json:"children,omitempty"`
}

/*
Hierarchy takes a tree node and a slice of feature names (which may be nil)
and returns its JSON hierarchy or an error if a malformed node is found.
*/
func Hierarchy(n tree.Node, names []string) (*Node, error) {
	var jn *Node
	switch n := n.(type) {
	case *tree.Leaf:
		if n == nil {
			return nil, tree.ErrMalformedNode
		}
		count := n.Count
		jn = &Node{Kind: "leaf", Label: n.Label, Count: &count}
		return jn, nil
	case *tree.ThresholdSplit:
		if n == nil {
			return nil, tree.ErrMalformedNode
		}
		f, threshold := n.Feature, n.Threshold
		jn = &Node{Kind: "threshold", Feature: &f, Threshold: &threshold}
	case *tree.EqualitySplit:
		if n == nil {
			return nil, tree.ErrMalformedNode
		}
		f := n.Feature
		jn = &Node{Kind: "equality", Feature: &f, Value: n.Value}
	default:
		return nil, tree.ErrMalformedNode
	}
	if *jn.Feature < len(names) {
		jn.FeatureName = names[*jn.Feature]
	}
	for _, c := range tree.Children(n) {
		jc, err := Hierarchy(c, names)
		if err != nil {
			return nil, err
		}
		jn.Children = append(jn.Children, jc)
	}
	return jn, nil
}

/*
WriteJSONTree takes a tree, a slice of feature names (which may be nil) and an
io.Writer and serializes the hierarchy of the tree as JSON onto the writer.
An error is returned if the tree is malformed or cannot be written.
*/
func WriteJSONTree(t *tree.Tree, names []string, w io.Writer) error {
	jn, err := Hierarchy(t.Root, names)
	if err != nil {
		return fmt.Errorf("converting tree to JSON hierarchy: %v", err)
	}
	return json.NewEncoder(w).Encode(jn)
}
