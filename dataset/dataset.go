/*
Package dataset provides the in-memory tabular data the learners work on:
rows of feature values ending with a class label, and the randomized
partitioning of a dataset into training and held-out subsets.
*/
package dataset

import (
	"fmt"

	"github.com/bendazz/stacking/feature"
)

// Error is the type of the sentinel errors returned by this package
type Error string

const (
	// ErrInvalidArity is returned when a row does not hold at least one
	// feature value and a label.
	ErrInvalidArity = Error("rows must have at least one feature and a label")
	// ErrRaggedRows is returned when the rows of a dataset do not share
	// the same length.
	ErrRaggedRows = Error("rows of a dataset must have the same length")
	// ErrInvalidRatio is returned when a test ratio falls outside [0, 1].
	ErrInvalidRatio = Error("test ratio must be between 0 and 1")
)

func (e Error) Error() string {
	return string(e)
}

/*
Row is an ordered sequence of feature values followed by a class label.
Continuous values are float64 and discrete values are strings. Rows are not
modified once loaded.
*/
type Row []interface{}

// Label returns the last value of the row
func (r Row) Label() interface{} {
	return r[len(r)-1]
}

// Features returns the values of the row, without its label
func (r Row) Features() []interface{} {
	return r[:len(r)-1]
}

/*
Dataset is an ordered collection of rows sharing the same arity, along with
the features that describe its columns. The last feature is the label.
Features may be nil for datasets built without metadata, such as the
meta-datasets of a stacked learner.
*/
type Dataset struct {
	Features []feature.Feature
	Rows     []Row
}

/*
New takes a slice of features and a slice of rows and returns a dataset with
them, or an error if the rows do not satisfy the dataset invariants: at least
two values per row, the same length for all of them, and, when features are
given, one valid value per feature.
*/
func New(features []feature.Feature, rows []Row) (*Dataset, error) {
	if err := Validate(rows); err != nil {
		return nil, err
	}
	if len(features) > 0 {
		for i, r := range rows {
			if len(r) != len(features) {
				return nil, fmt.Errorf("row %d has %d values for %d features", i, len(r), len(features))
			}
			for j, f := range features {
				if _, err := f.Valid(r[j]); err != nil {
					return nil, fmt.Errorf("row %d: %v", i, err)
				}
			}
		}
	}
	return &Dataset{Features: features, Rows: rows}, nil
}

/*
Validate takes a slice of rows and returns ErrInvalidArity if any row has fewer
than two values or ErrRaggedRows if they do not all share the same length.
An empty slice is valid.
*/
func Validate(rows []Row) error {
	for _, r := range rows {
		if len(r) < 2 {
			return ErrInvalidArity
		}
		if len(r) != len(rows[0]) {
			return ErrRaggedRows
		}
	}
	return nil
}

// Len returns the number of rows
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Label returns the label feature or nil if the dataset has no metadata
func (d *Dataset) Label() feature.Feature {
	if len(d.Features) == 0 {
		return nil
	}
	return d.Features[len(d.Features)-1]
}

/*
Labels takes a slice of rows and returns the labels of every row in order.
*/
func Labels(rows []Row) []interface{} {
	labels := make([]interface{}, len(rows))
	for i, r := range rows {
		labels[i] = r.Label()
	}
	return labels
}

/*
Subset is an ordered selection of rows from a dataset along with the indices
those rows had in their source. Rows[i] came from position Indices[i].
*/
type Subset struct {
	Rows    []Row
	Indices []int
}

// Len returns the number of rows in the subset
func (s Subset) Len() int {
	return len(s.Rows)
}

/*
Select takes a slice of rows and a slice of indices into it and returns the
subset with the rows at those indices, in the order the indices are given.
*/
func Select(rows []Row, indices []int) Subset {
	s := Subset{Rows: make([]Row, len(indices)), Indices: make([]int, len(indices))}
	for i, idx := range indices {
		s.Rows[i] = rows[idx]
		s.Indices[i] = idx
	}
	return s
}
