/*
Package csv reads datasets from and writes rows to CSV streams.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/bendazz/stacking/dataset"
	"github.com/bendazz/stacking/feature"
)

/*
Writer is an interface for a destination to which rows can be written to.
*/
type Writer interface {
	// Write will attempt to write the given rows and will return the
	// actually written number of rows and an error (if not all rows
	// could be written)
	Write([]dataset.Row) (int, error)
	// Count returns the total number of rows written to the writer
	Count() int
	// Flush ensures any pending written operations finish
	// before returning. It returns an error if that cannot
	// be ensured.
	Flush() error
}

type csvWriter struct {
	count    int
	features []feature.Feature
	w        *csv.Writer
}

/*
ReadDataset takes an io.Reader for a CSV stream and a slice of features and
returns the dataset parsed from the reader or an error.

The header or first row of the CSV content is expected to consist of the names
of the given features, in any order. The rest of the rows should consist of
valid values for all of them. Values are placed in the rows in the order of the
features slice, so its last feature becomes the label.
*/
func ReadDataset(reader io.Reader, features []feature.Feature) (*dataset.Dataset, error) {
	rows := []dataset.Row{}
	err := ReadDatasetByRow(reader, features, func(_ int, r dataset.Row) (bool, error) {
		rows = append(rows, r)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dataset.New(features, rows)
}

/*
ReadDatasetByRow takes an io.Reader for a CSV stream, a slice of features and a
lambda function on an integer and a dataset.Row that returns a boolean value.
It parses the rows from the reader and for each it calls the lambda function
with its index and the row as parameters. If the lambda function returns true,
it will continue processing the next row, otherwise it will stop. An error is
returned if something goes wrong when reading the stream or parsing a row.
*/
func ReadDatasetByRow(reader io.Reader, features []feature.Feature, lambda func(int, dataset.Row) (bool, error)) error {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading header: %v", err)
	}
	columns, err := parseColumnsFromCSVHeader(header, features)
	if err != nil {
		return err
	}
	for l := 2; ; l++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading body: %v", err)
		}
		row, err := parseRowFromCSVRecord(record, columns, features)
		if err != nil {
			return fmt.Errorf("parsing line %d: %v", l, err)
		}
		ok, err := lambda(l-2, row)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadDatasetFromFilePath takes a filepath string and a slice of features, opens
the file to which the filepath points to (os.Stdin if it is "") and uses
ReadDataset to return the dataset read from it or an error.
*/
func ReadDatasetFromFilePath(filepath string, features []feature.Feature) (*dataset.Dataset, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %v", err)
		}
		defer f.Close()
	}
	d, err := ReadDataset(f, features)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return d, err
}

/*
NewWriter takes an io.Writer and a slice of feature.Features and returns a
Writer that will write rows with a value per feature on the io.Writer, after
a header with the feature names.
*/
func NewWriter(writer io.Writer, features []feature.Feature) (Writer, error) {
	w := csv.NewWriter(writer)
	err := w.Write(feature.Names(features))
	if err != nil {
		return nil, fmt.Errorf("writing CSV header: %v", err)
	}
	return &csvWriter{features: features, w: w}, nil
}

/*
WriteRows takes a writer, a slice of features and a slice of rows and dumps
the rows to the writer in CSV format. It returns an error if something went
wrong when writing to the writer.
*/
func WriteRows(writer io.Writer, features []feature.Feature, rows []dataset.Row) error {
	cw, err := NewWriter(writer, features)
	if err != nil {
		return err
	}
	_, err = cw.Write(rows)
	if err != nil {
		return err
	}
	return cw.Flush()
}

// parseColumnsFromCSVHeader returns, for every feature, the CSV column holding
// its values.
func parseColumnsFromCSVHeader(header []string, features []feature.Feature) ([]int, error) {
	columns := make([]int, len(features))
	for i, f := range features {
		columns[i] = -1
		for j, name := range header {
			if name == f.Name() {
				columns[i] = j
				break
			}
		}
		if columns[i] < 0 {
			return nil, fmt.Errorf("parsing header: no column for feature %s", f.Name())
		}
	}
	return columns, nil
}

func parseRowFromCSVRecord(record []string, columns []int, features []feature.Feature) (dataset.Row, error) {
	row := make(dataset.Row, len(features))
	for i, f := range features {
		if columns[i] >= len(record) {
			return nil, fmt.Errorf("no value for feature %s", f.Name())
		}
		v, err := f.Parse(record[columns[i]])
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) Write(rows []dataset.Row) (int, error) {
	for n, r := range rows {
		if err := cw.writeRow(r); err != nil {
			return n, err
		}
	}
	return len(rows), nil
}

func (cw *csvWriter) writeRow(r dataset.Row) error {
	if len(r) != len(cw.features) {
		return fmt.Errorf("writing CSV row %d: %d values for %d features", cw.count+1, len(r), len(cw.features))
	}
	record := make([]string, len(r))
	for j, v := range r {
		record[j] = fmt.Sprintf("%v", v)
	}
	err := cw.w.Write(record)
	if err != nil {
		return fmt.Errorf("writing CSV row %d: %v", cw.count+1, err)
	}
	cw.count++
	return nil
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
