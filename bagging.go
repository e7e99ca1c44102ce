package stacking

import (
	"fmt"

	"github.com/bendazz/stacking/dataset"
	"github.com/bendazz/stacking/tree"
)

/*
Member is a tree of a bagging ensemble along with the indices, into the
base-training rows, of the bootstrap sample it was trained on. Indices may
repeat and are kept to trace a tree back to its training rows; predictions
do not use them.
*/
type Member struct {
	Tree          *tree.Tree
	SampleIndices []int
}

// Ensemble is an ordered collection of bagged trees
type Ensemble []Member

/*
Bootstrap takes a sample size n and a Rand and returns n indices drawn
independently and uniformly from [0, n), that is, with replacement.
*/
func Bootstrap(n int, r dataset.Rand) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = r.Intn(n)
	}
	return indices
}

/*
TrainBaggedTrees takes the base-training rows t0, the number of trees in the
ensemble, the maximum depth of each tree, the feature they split on and a Rand.
For every member it draws a bootstrap sample of len(t0) rows and trains on it a
tree with TrainSimpleTree. It returns the ensemble, ErrInvalidEnsembleSize if
numTrees is lower than 1, ErrEmptySet if t0 is empty or any error from the
tree induction.
*/
func TrainBaggedTrees(t0 []dataset.Row, numTrees, treeDepth, feature int, r dataset.Rand) (Ensemble, error) {
	if numTrees < 1 {
		return nil, ErrInvalidEnsembleSize
	}
	if len(t0) == 0 {
		return nil, ErrEmptySet
	}
	ensemble := make(Ensemble, 0, numTrees)
	for i := 0; i < numTrees; i++ {
		sampleIndices := Bootstrap(len(t0), r)
		sample := make([]dataset.Row, len(sampleIndices))
		for j, idx := range sampleIndices {
			sample[j] = t0[idx]
		}
		t, err := TrainSimpleTree(sample, feature, treeDepth)
		if err != nil {
			return nil, fmt.Errorf("training bagged tree %d: %v", i, err)
		}
		ensemble = append(ensemble, Member{t, sampleIndices})
	}
	return ensemble, nil
}

/*
Predictions takes a row and returns the prediction of every tree of the
ensemble for it, in ensemble order, or the first error found.
*/
func (e Ensemble) Predictions(r dataset.Row) ([]interface{}, error) {
	predictions := make([]interface{}, len(e))
	for i, m := range e {
		p, err := m.Tree.Predict(r)
		if err != nil {
			return nil, fmt.Errorf("predicting with bagged tree %d: %v", i, err)
		}
		predictions[i] = p
	}
	return predictions, nil
}
