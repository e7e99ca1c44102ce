package dataset

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func numberedRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{float64(i), "c"}
	}
	return rows
}

func TestTrainTestSplitSizes(t *testing.T) {
	testCases := []struct {
		n        int
		ratio    float64
		testSize int
	}{
		{150, 0.2, 30},
		{10, 0.25, 2},
		{7, 0.5, 3},
		{5, 0, 0},
		{5, 1, 5},
		{0, 0.2, 0},
	}
	for _, tc := range testCases {
		rows := numberedRows(tc.n)
		train, test, err := TrainTestSplit(rows, tc.ratio, rand.New(rand.NewSource(7)))
		if err != nil {
			t.Fatalf("n=%d ratio=%v: unexpected error %v", tc.n, tc.ratio, err)
		}
		if test.Len() != tc.testSize {
			t.Errorf("n=%d ratio=%v: expected %d test rows, got %d", tc.n, tc.ratio, tc.testSize, test.Len())
		}
		if train.Len()+test.Len() != tc.n {
			t.Errorf("n=%d ratio=%v: expected %d rows in total, got %d", tc.n, tc.ratio, tc.n, train.Len()+test.Len())
		}
		all := append(append([]int{}, train.Indices...), test.Indices...)
		sort.Ints(all)
		for i, idx := range all {
			if idx != i {
				t.Fatalf("n=%d ratio=%v: indices do not reconstruct the dataset: %v", tc.n, tc.ratio, all)
			}
		}
		for i, r := range test.Rows {
			if r[0].(float64) != float64(test.Indices[i]) {
				t.Errorf("test row %d does not match its index %d", i, test.Indices[i])
			}
		}
		for i, r := range train.Rows {
			if r[0].(float64) != float64(train.Indices[i]) {
				t.Errorf("train row %d does not match its index %d", i, train.Indices[i])
			}
		}
	}
}

func TestTrainTestSplitInvalidRatio(t *testing.T) {
	for _, ratio := range []float64{-0.1, 1.5} {
		_, _, err := TrainTestSplit(numberedRows(4), ratio, rand.New(rand.NewSource(1)))
		if err != ErrInvalidRatio {
			t.Errorf("ratio %v: expected ErrInvalidRatio, got %v", ratio, err)
		}
	}
}

func TestTrainTestSplitIsDeterministicForASeed(t *testing.T) {
	rows := numberedRows(40)
	train1, test1, _ := TrainTestSplit(rows, 0.3, rand.New(rand.NewSource(42)))
	train2, test2, _ := TrainTestSplit(rows, 0.3, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(train1.Indices, train2.Indices) || !reflect.DeepEqual(test1.Indices, test2.Indices) {
		t.Errorf("expected identical partitions for the same seed")
	}
}

type sequenceRand []int

func (s *sequenceRand) Intn(n int) int {
	v := (*s)[0] % n
	*s = (*s)[1:]
	return v
}

func TestShuffleIsFisherYates(t *testing.T) {
	indices := []int{0, 1, 2, 3}
	// swaps: i=3 with 0, i=2 with 2, i=1 with 0
	r := &sequenceRand{0, 2, 0}
	Shuffle(indices, r)
	expected := []int{1, 3, 2, 0}
	if !reflect.DeepEqual(indices, expected) {
		t.Errorf("expected %v, got %v", expected, indices)
	}
}

func TestSplitTrainSet(t *testing.T) {
	rows := numberedRows(9)
	train := Subset{Rows: rows, Indices: []int{10, 11, 12, 13, 14, 15, 16, 17, 18}}
	t0, t1 := SplitTrainSet(train)
	if t0.Len() != 4 || t1.Len() != 5 {
		t.Fatalf("expected halves of 4 and 5 rows, got %d and %d", t0.Len(), t1.Len())
	}
	if !reflect.DeepEqual(t0.Indices, []int{10, 11, 12, 13}) {
		t.Errorf("unexpected t0 indices %v", t0.Indices)
	}
	if !reflect.DeepEqual(t1.Indices, []int{14, 15, 16, 17, 18}) {
		t.Errorf("unexpected t1 indices %v", t1.Indices)
	}
	if t1.Rows[0][0].(float64) != 4 {
		t.Errorf("expected t1 to start with the fifth row, got %v", t1.Rows[0])
	}
}
