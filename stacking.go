/*
Package stacking trains small decision trees over a tabular dataset, combines
them with bootstrap aggregation and stacks a second-stage tree on top of their
predictions.

A run partitions the dataset into a base-training subset T0, a
stacking-training subset T1 and a held-out subset, bags threshold trees on T0,
trains a greedy equality-split tree on the predictions the bagged trees make
on T1 and measures the accuracy of the whole on the held-out rows.
*/
package stacking

import (
	"fmt"

	"github.com/bendazz/stacking/dataset"
	"github.com/bendazz/stacking/tree"
)

/*
Config holds the parameters of a pipeline run
*/
type Config struct {
	// TestRatio is the fraction of the dataset held out for evaluation
	TestRatio float64 `yaml:"test-ratio"`
	// NumTrees is the number of bagged trees
	NumTrees int `yaml:"trees"`
	// TreeDepth is the maximum depth of every bagged tree
	TreeDepth int `yaml:"depth"`
	// Feature is the index of the feature bagged trees split on
	Feature int `yaml:"feature"`
}

/*
DefaultConfig returns the configuration of the classic demonstration over
the iris table: 20% held out, 5 trees of depth 1 splitting on the third
feature (petal length).
*/
func DefaultConfig() Config {
	return Config{TestRatio: 0.2, NumTrees: 5, TreeDepth: 1, Feature: 2}
}

// Validate returns an error if the configuration cannot drive a run
func (c Config) Validate() error {
	if c.TestRatio < 0 || c.TestRatio > 1 {
		return dataset.ErrInvalidRatio
	}
	if c.NumTrees < 1 {
		return ErrInvalidEnsembleSize
	}
	if c.TreeDepth < 0 {
		return ErrUnboundedDepth
	}
	if c.Feature < 0 {
		return fmt.Errorf("invalid feature index %d", c.Feature)
	}
	return nil
}

/*
Partition holds the subsets of a run. Train is split into T0 and T1; the
indices of every subset refer to the rows given to RunPipeline.
*/
type Partition struct {
	Train, Test dataset.Subset
	T0, T1      dataset.Subset
}

/*
PipelineResult holds everything a run derives from its dataset
*/
type PipelineResult struct {
	Config    Config
	Partition Partition
	Ensemble  Ensemble
	// MetaRows is the meta-dataset built on T1
	MetaRows []dataset.Row
	// Meta is the tree stacked on the ensemble predictions
	Meta *tree.Tree
	// BaseAccuracies holds the accuracy of every bagged tree on T1,
	// in ensemble order
	BaseAccuracies []Accuracy
	// StackedTrainAccuracy is the accuracy of the stack on T1
	StackedTrainAccuracy Accuracy
	// TestAccuracy is the accuracy of the stack on the held-out subset.
	// It is zero when nothing is held out.
	TestAccuracy Accuracy
}

// Stack returns the two-stage predictor of the run
func (pr *PipelineResult) Stack() *Stack {
	return &Stack{pr.Ensemble, pr.Meta}
}

/*
RunPipeline takes the rows of a dataset, a configuration and a Rand and runs
the whole stacking process over them: partitioning, bagging on T0, stacking on
T1 and evaluation on the held-out rows. All randomness comes from the given
Rand, so equal seeds give equal results.
*/
func RunPipeline(rows []dataset.Row, c Config, r dataset.Rand) (*PipelineResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := dataset.Validate(rows); err != nil {
		return nil, err
	}
	train, test, err := dataset.TrainTestSplit(rows, c.TestRatio, r)
	if err != nil {
		return nil, err
	}
	t0, t1 := dataset.SplitTrainSet(train)
	if t0.Len() == 0 || t1.Len() == 0 {
		return nil, fmt.Errorf("partitioning %d rows with test ratio %v: %v", len(rows), c.TestRatio, ErrEmptySet)
	}
	result := &PipelineResult{
		Config:    c,
		Partition: Partition{Train: train, Test: test, T0: t0, T1: t1},
	}
	result.Ensemble, err = TrainBaggedTrees(t0.Rows, c.NumTrees, c.TreeDepth, c.Feature, r)
	if err != nil {
		return nil, err
	}
	for i, m := range result.Ensemble {
		a, err := Evaluate(m.Tree, t1.Rows)
		if err != nil {
			return nil, fmt.Errorf("evaluating bagged tree %d on T1: %v", i, err)
		}
		result.BaseAccuracies = append(result.BaseAccuracies, a)
	}
	result.MetaRows, err = BuildMetaDataset(t1.Rows, result.Ensemble)
	if err != nil {
		return nil, err
	}
	result.Meta, err = TrainStackedTree(result.MetaRows)
	if err != nil {
		return nil, fmt.Errorf("training stacked tree: %v", err)
	}
	s := result.Stack()
	result.StackedTrainAccuracy, err = Evaluate(s, t1.Rows)
	if err != nil {
		return nil, fmt.Errorf("evaluating stack on T1: %v", err)
	}
	if test.Len() > 0 {
		result.TestAccuracy, err = Evaluate(s, test.Rows)
		if err != nil {
			return nil, fmt.Errorf("evaluating stack on held-out rows: %v", err)
		}
	}
	return result, nil
}
