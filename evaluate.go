package stacking

import (
	"fmt"

	"github.com/bendazz/stacking/dataset"
)

/*
Predictor is an interface wrapping the Predict method, which takes a row and
returns the label predicted for it or an error. *tree.Tree and *Stack
implement it.
*/
type Predictor interface {
	Predict(dataset.Row) (interface{}, error)
}

// Accuracy is the number of correct predictions out of a total
type Accuracy struct {
	Correct int
	Total   int
}

// Percentage returns 100 * Correct / Total, or 0 when Total is 0
func (a Accuracy) Percentage() float64 {
	if a.Total == 0 {
		return 0
	}
	return 100 * float64(a.Correct) / float64(a.Total)
}

func (a Accuracy) String() string {
	return fmt.Sprintf("%d/%d (%.2f%%)", a.Correct, a.Total, a.Percentage())
}

/*
Evaluate takes a predictor and a slice of rows and returns how many of the rows
it predicts the label of. It returns ErrEmptySet for an empty slice and the
first prediction error otherwise.
*/
func Evaluate(p Predictor, rows []dataset.Row) (Accuracy, error) {
	if len(rows) == 0 {
		return Accuracy{}, ErrEmptySet
	}
	result := Accuracy{Total: len(rows)}
	for i, r := range rows {
		prediction, err := p.Predict(r)
		if err != nil {
			return Accuracy{}, fmt.Errorf("evaluating row %d: %v", i, err)
		}
		if prediction == r.Label() {
			result.Correct++
		}
	}
	return result, nil
}
