package dataset

import (
	"math"
	"math/rand"
	"time"
)

/*
Rand is a source of uniformly distributed random integers.

Its Intn method returns an int in [0, n). *math/rand.Rand satisfies it.
*/
type Rand interface {
	Intn(n int) int
}

/*
NewRand takes a seed and returns a Rand seeded with it. A seed of 0 seeds
the generator with the current time.
*/
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

/*
Shuffle takes a slice of ints and a Rand and permutes the slice in place with
a Fisher-Yates shuffle running from the last position down.
*/
func Shuffle(indices []int, r Rand) {
	for i := len(indices) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}
}

/*
TrainTestSplit takes a slice of rows, a test ratio and a Rand and returns a
training and a held-out subset. The row indices are shuffled and the first
floor(len(rows) * testRatio) of them make up the held-out subset, the rest the
training subset. Both subsets keep the shuffled order and the indices of their
rows in the given slice.

It returns ErrInvalidRatio if testRatio is not in [0, 1].
*/
func TrainTestSplit(rows []Row, testRatio float64, r Rand) (train, test Subset, err error) {
	if math.IsNaN(testRatio) || testRatio < 0 || testRatio > 1 {
		return Subset{}, Subset{}, ErrInvalidRatio
	}
	indices := make([]int, len(rows))
	for i := range indices {
		indices[i] = i
	}
	Shuffle(indices, r)
	testSize := int(math.Floor(float64(len(rows)) * testRatio))
	test = Select(rows, indices[:testSize])
	train = Select(rows, indices[testSize:])
	return train, test, nil
}

/*
SplitTrainSet takes a training subset and splits it at its midpoint,
floor(len/2): the first half becomes the base-training subset t0 and the
second half the stacking-training subset t1. No further shuffling takes place.
*/
func SplitTrainSet(train Subset) (t0, t1 Subset) {
	mid := len(train.Rows) / 2
	t0 = Subset{Rows: train.Rows[:mid:mid], Indices: train.Indices[:mid:mid]}
	t1 = Subset{Rows: train.Rows[mid:], Indices: train.Indices[mid:]}
	return t0, t1
}
