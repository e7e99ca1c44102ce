package main

import (
	"path/filepath"
	"testing"

	"github.com/bendazz/stacking/dataset"
	"github.com/bendazz/stacking/dataset/csv"
	"github.com/bendazz/stacking/feature"
)

func TestWriteCSV(t *testing.T) {
	features := []feature.Feature{
		feature.NewContinuousFeature("length"),
		feature.NewDiscreteFeature("fruit", []string{"apple", "pear"}),
	}
	rows := []dataset.Row{{1.5, "apple"}, {2.0, "pear"}}
	path := filepath.Join(t.TempDir(), "rows.csv")
	if err := writeCSV(path, features, rows); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	d, err := csv.ReadDatasetFromFilePath(path, features)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if d.Len() != 2 || d.Rows[1][0] != 2.0 || d.Rows[1].Label() != "pear" {
		t.Errorf("unexpected rows read back %v", d.Rows)
	}
	if err = writeCSV(filepath.Join(t.TempDir(), "missing", "rows.csv"), features, rows); err == nil {
		t.Errorf("expected an error creating a file in a missing directory")
	}
	if err = writeCSV(path, features, []dataset.Row{{1.5}}); err == nil {
		t.Errorf("expected the write error to be returned")
	}
}
