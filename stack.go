package stacking

import (
	"fmt"

	"github.com/bendazz/stacking/dataset"
	"github.com/bendazz/stacking/tree"
)

/*
MetaRow takes an ensemble and a row and returns the row of the meta-dataset
for it: the predictions of every tree of the ensemble followed by the label
of the row.
*/
func MetaRow(e Ensemble, r dataset.Row) (dataset.Row, error) {
	predictions, err := e.Predictions(r)
	if err != nil {
		return nil, err
	}
	return append(dataset.Row(predictions), r.Label()), nil
}

/*
BuildMetaDataset takes the stacking-training rows t1 and an ensemble and returns
the meta-dataset with one MetaRow per row of t1, in the same order.
*/
func BuildMetaDataset(t1 []dataset.Row, e Ensemble) ([]dataset.Row, error) {
	meta := make([]dataset.Row, len(t1))
	for i, r := range t1 {
		mr, err := MetaRow(e, r)
		if err != nil {
			return nil, fmt.Errorf("building meta row %d: %v", i, err)
		}
		meta[i] = mr
	}
	return meta, nil
}

/*
TrainStackedTree takes a meta-dataset and trains on it a Greedy tree to
purity.
*/
func TrainStackedTree(metaRows []dataset.Row) (*tree.Tree, error) {
	return Grow(metaRows, Greedy{}, Unbounded)
}

// Stack is a two-stage predictor: a bagging ensemble and the meta-tree
// trained on its predictions.
type Stack struct {
	Ensemble Ensemble
	Meta     *tree.Tree
}

// Predict takes a row and returns the prediction of the meta-tree for the
// predictions the ensemble makes on the row.
func (s *Stack) Predict(r dataset.Row) (interface{}, error) {
	mr, err := MetaRow(s.Ensemble, r)
	if err != nil {
		return nil, err
	}
	return s.Meta.Predict(mr)
}
