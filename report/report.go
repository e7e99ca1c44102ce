/*
Package report builds a JSON serializable summary of a pipeline run:
the partition of the dataset, the trees of the bagging ensemble along with
their bootstrap samples, the stacked tree and the measured accuracies. Trees
are given in the node/children hierarchy of the tree/json package so a
rendering layer can draw them directly.
*/
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bendazz/stacking"
	"github.com/bendazz/stacking/feature"
	treejson "github.com/bendazz/stacking/tree/json"
)

// Accuracy is the JSON form of a stacking.Accuracy
type Accuracy struct {
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Partition holds the original dataset indices of every subset of a run
type Partition struct {
	Train []int `json:"train"`
	Test  []int `json:"test"`
	T0    []int `json:"t0"`
	T1    []int `json:"t1"`
}

// Member describes a bagged tree
type Member struct {
	Tree *treejson.Node `json:"tree"`
	// SampleIndices are indices into T0
	SampleIndices []int    `json:"sampleIndices"`
	T1Accuracy    Accuracy `json:"t1Accuracy"`
}

// Report is the summary of a pipeline run
type Report struct {
	Config               stacking.Config `json:"config"`
	Features             []string        `json:"features,omitempty"`
	Partition            Partition       `json:"partition"`
	Members              []Member        `json:"members"`
	Meta                 *treejson.Node  `json:"meta"`
	StackedTrainAccuracy Accuracy        `json:"stackedTrainAccuracy"`
	TestAccuracy         Accuracy        `json:"testAccuracy"`
}

func accuracy(a stacking.Accuracy) Accuracy {
	return Accuracy{a.Correct, a.Total, a.Percentage()}
}

/*
MetaFeatureNames takes the size of an ensemble and the name of the label
feature and returns names for the columns of a meta-dataset.
*/
func MetaFeatureNames(size int, label string) []string {
	names := make([]string, 0, size+1)
	for i := 0; i < size; i++ {
		names = append(names, fmt.Sprintf("tree %d", i))
	}
	return append(names, label)
}

/*
New takes the result of a pipeline run and the features of its dataset, which
may be nil, and returns its report or an error if any of its trees is
malformed.
*/
func New(result *stacking.PipelineResult, features []feature.Feature) (*Report, error) {
	var names []string
	label := "label"
	if len(features) > 0 {
		names = feature.Names(features)
		label = names[len(names)-1]
	}
	r := &Report{
		Config:   result.Config,
		Features: names,
		Partition: Partition{
			Train: result.Partition.Train.Indices,
			Test:  result.Partition.Test.Indices,
			T0:    result.Partition.T0.Indices,
			T1:    result.Partition.T1.Indices,
		},
		StackedTrainAccuracy: accuracy(result.StackedTrainAccuracy),
		TestAccuracy:         accuracy(result.TestAccuracy),
	}
	for i, m := range result.Ensemble {
		jn, err := treejson.Hierarchy(m.Tree.Root, names)
		if err != nil {
			return nil, fmt.Errorf("converting bagged tree %d: %v", i, err)
		}
		member := Member{Tree: jn, SampleIndices: m.SampleIndices}
		if i < len(result.BaseAccuracies) {
			member.T1Accuracy = accuracy(result.BaseAccuracies[i])
		}
		r.Members = append(r.Members, member)
	}
	var err error
	r.Meta, err = treejson.Hierarchy(result.Meta.Root, MetaFeatureNames(len(result.Ensemble), label))
	if err != nil {
		return nil, fmt.Errorf("converting stacked tree: %v", err)
	}
	return r, nil
}

// Encode returns the JSON encoding of the report
func Encode(r *Report) ([]byte, error) {
	return json.Marshal(r)
}

// Write serializes the report as indented JSON onto the writer
func Write(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
