package sqlite3adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/bendazz/stacking/dataset"
	"github.com/bendazz/stacking/dataset/sqldataset"
	"github.com/bendazz/stacking/feature"
)

func testFeatures() []feature.Feature {
	return []feature.Feature{
		feature.NewContinuousFeature("length"),
		feature.NewDiscreteFeature("color", []string{"red", "green"}),
		feature.NewDiscreteFeature("fruit", []string{"apple", "pear"}),
	}
}

func TestWriteAndReadRows(t *testing.T) {
	ctx := context.Background()
	a, err := New(filepath.Join(t.TempDir(), "rows.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer a.Close()
	var rows []dataset.Row
	for i := 0; i < 25; i++ {
		color, fruit := "red", "apple"
		if i%3 == 0 {
			color, fruit = "green", "pear"
		}
		rows = append(rows, dataset.Row{float64(i) / 2, color, fruit})
	}
	n, err := sqldataset.Write(ctx, a, "fruits", testFeatures(), rows)
	if err != nil {
		t.Fatalf("writing rows: %v", err)
	}
	if n != len(rows) {
		t.Fatalf("expected %d rows written, got %d", len(rows), n)
	}
	d, err := sqldataset.Read(ctx, a, "fruits", testFeatures())
	if err != nil {
		t.Fatalf("reading rows: %v", err)
	}
	if d.Len() != len(rows) {
		t.Fatalf("expected %d rows read, got %d", len(rows), d.Len())
	}
	for i, r := range d.Rows {
		if fmt.Sprint(r) != fmt.Sprint(rows[i]) {
			t.Errorf("row %d: expected %v, got %v", i, rows[i], r)
		}
	}
}

func TestReadByRowStops(t *testing.T) {
	ctx := context.Background()
	a, err := New(filepath.Join(t.TempDir(), "rows.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer a.Close()
	rows := []dataset.Row{{1.0, "red", "apple"}, {2.0, "red", "apple"}, {3.0, "green", "pear"}}
	if _, err = sqldataset.Write(ctx, a, "fruits", testFeatures(), rows); err != nil {
		t.Fatalf("writing rows: %v", err)
	}
	count := 0
	err = sqldataset.ReadByRow(ctx, a, "fruits", testFeatures(), func(i int, r dataset.Row) (bool, error) {
		count++
		return i < 1, nil
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if count != 2 {
		t.Errorf("expected reading to stop after 2 rows, read %d", count)
	}
}

func TestColumnName(t *testing.T) {
	a := &adapter{}
	for _, name := range []string{"id", "", `bad"name`} {
		if _, err := a.ColumnName(name); err == nil {
			t.Errorf("%q: expected an error", name)
		}
	}
	if c, err := a.ColumnName("petal length"); err != nil || c != "petal length" {
		t.Errorf("expected the name unchanged, got %q and %v", c, err)
	}
}

func TestReplaceSupersedesPreviousRows(t *testing.T) {
	ctx := context.Background()
	a, err := New(filepath.Join(t.TempDir(), "rows.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer a.Close()
	first := []dataset.Row{{1.0, "red", "apple"}, {2.0, "red", "apple"}, {3.0, "green", "pear"}}
	second := []dataset.Row{{4.0, "green", "pear"}}
	for _, rows := range [][]dataset.Row{first, second} {
		if _, err = sqldataset.Replace(ctx, a, "t0", testFeatures(), rows); err != nil {
			t.Fatalf("replacing rows: %v", err)
		}
	}
	d, err := sqldataset.Read(ctx, a, "t0", testFeatures())
	if err != nil {
		t.Fatalf("reading rows: %v", err)
	}
	if d.Len() != 1 || d.Rows[0][0] != 4.0 {
		t.Errorf("expected only the rows of the last replacement, got %v", d.Rows)
	}
	if _, err = sqldataset.Write(ctx, a, "t0", testFeatures(), first); err != nil {
		t.Fatalf("writing rows: %v", err)
	}
	if d, _ = sqldataset.Read(ctx, a, "t0", testFeatures()); d.Len() != 4 {
		t.Errorf("expected Write to append to the table, got %d rows", d.Len())
	}
}
