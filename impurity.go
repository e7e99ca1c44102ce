package stacking

import "sort"

/*
Median takes a slice of float64 values and returns its median: the middle
value of a sorted copy for odd lengths, and the mean of the two central values
for even lengths. It returns ErrEmptySet for an empty slice.
*/
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptySet
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

/*
Gini takes a slice of labels and returns its Gini impurity, 1 - sum(p_c^2)
over the frequency p_c of each label. It is 0 for a single label and for an
empty slice.
*/
func Gini(labels []interface{}) float64 {
	if len(labels) == 0 {
		return 0
	}
	order, counts := countLabels(labels)
	result := 1.0
	total := float64(len(labels))
	for _, l := range order {
		p := float64(counts[l]) / total
		result -= p * p
	}
	return result
}

/*
WeightedImpurity takes the labels on both sides of a split and returns the
mean of their Gini impurities weighted by the size of each side.
*/
func WeightedImpurity(left, right []interface{}) float64 {
	total := float64(len(left) + len(right))
	if total == 0 {
		return 0
	}
	return float64(len(left))/total*Gini(left) + float64(len(right))/total*Gini(right)
}

/*
MostCommonLabel takes a slice of labels and returns the most frequent one.
Ties go to the label that appears first in the slice. It returns ErrEmptySet
for an empty slice.
*/
func MostCommonLabel(labels []interface{}) (interface{}, error) {
	if len(labels) == 0 {
		return nil, ErrEmptySet
	}
	order, counts := countLabels(labels)
	best := order[0]
	for _, l := range order[1:] {
		if counts[l] > counts[best] {
			best = l
		}
	}
	return best, nil
}

func pure(labels []interface{}) bool {
	for _, l := range labels[1:] {
		if l != labels[0] {
			return false
		}
	}
	return true
}

// countLabels returns the distinct labels in order of first appearance and
// the number of times each appears. Gini sums in this order so that equal
// inputs always give identical float64 results.
func countLabels(labels []interface{}) ([]interface{}, map[interface{}]int) {
	counts := make(map[interface{}]int)
	var order []interface{}
	for _, l := range labels {
		if counts[l] == 0 {
			order = append(order, l)
		}
		counts[l]++
	}
	return order, counts
}
