/*
Package inputrow provides a way to build a dataset.Row from values read from
an io.Reader, one per line, such as a user answering on a terminal.
*/
package inputrow

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bendazz/stacking/dataset"
	"github.com/bendazz/stacking/feature"
)

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(feature.Feature) error
	RejectValueFor(feature.Feature, string) error
}

/*
Read takes an io.Reader, a slice of features, with the label feature last, and
a FeatureValueRequester and returns a row with a value for every feature but
the label, whose position is left nil.

Before reading the value for a feature it is requested with the
FeatureValueRequester. Values are read a line at a time and parsed with the
feature Parse method; lines that do not parse are rejected with the
FeatureValueRequester RejectValueFor method and the next line is read. An error
is returned if the reader is exhausted before every value is obtained.
*/
func Read(r io.Reader, features []feature.Feature, fvr FeatureValueRequester) (dataset.Row, error) {
	if len(features) < 2 {
		return nil, dataset.ErrInvalidArity
	}
	scanner := bufio.NewScanner(r)
	row := make(dataset.Row, len(features))
	for i, f := range features[:len(features)-1] {
		err := fvr.RequestValueFor(f)
		if err != nil {
			return nil, err
		}
		row[i], err = readValue(scanner, f, fvr)
		if err != nil {
			return nil, fmt.Errorf("reading value for %s: %v", f.Name(), err)
		}
	}
	return row, nil
}

func readValue(scanner *bufio.Scanner, f feature.Feature, fvr FeatureValueRequester) (interface{}, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		value, err := f.Parse(line)
		if err == nil {
			return value, nil
		}
		err = fvr.RejectValueFor(f, line)
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.ErrUnexpectedEOF
}
