package report

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/bendazz/stacking"
	"github.com/bendazz/stacking/dataset/csv"
	"github.com/bendazz/stacking/feature/yaml"
)

func irisResult(t *testing.T) (*stacking.PipelineResult, *Report) {
	t.Helper()
	features, err := yaml.ReadFeaturesFromFile("../testdata/iris.yml")
	if err != nil {
		t.Fatalf("reading iris metadata: %v", err)
	}
	d, err := csv.ReadDatasetFromFilePath("../testdata/iris.csv", features)
	if err != nil {
		t.Fatalf("reading iris dataset: %v", err)
	}
	result, err := stacking.RunPipeline(d.Rows, stacking.DefaultConfig(), rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("running pipeline: %v", err)
	}
	r, err := New(result, features)
	if err != nil {
		t.Fatalf("building report: %v", err)
	}
	return result, r
}

func TestNew(t *testing.T) {
	result, r := irisResult(t)
	if len(r.Members) != len(result.Ensemble) {
		t.Fatalf("expected %d members, got %d", len(result.Ensemble), len(r.Members))
	}
	if len(r.Partition.Test) != 30 || len(r.Partition.T0) != 60 || len(r.Partition.T1) != 60 {
		t.Errorf("unexpected partition sizes in %+v", r.Partition)
	}
	root := r.Members[0].Tree
	if root.Kind != "threshold" || root.FeatureName != "petal length" {
		t.Errorf("expected bagged trees to split on petal length, got %+v", root)
	}
	if r.TestAccuracy.Total != 30 || r.TestAccuracy.Percentage != result.TestAccuracy.Percentage() {
		t.Errorf("unexpected test accuracy %+v", r.TestAccuracy)
	}
	if r.Meta.Kind == "equality" && r.Meta.FeatureName == "" {
		t.Errorf("expected meta tree splits to be named")
	}
}

func TestWrite(t *testing.T) {
	_, r := irisResult(t)
	var buf bytes.Buffer
	if err := Write(&buf, r); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding report: %v", err)
	}
	for _, key := range []string{"config", "features", "partition", "members", "meta", "testAccuracy"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected key %s in report", key)
		}
	}
}

func TestMetaFeatureNames(t *testing.T) {
	names := MetaFeatureNames(2, "class")
	if len(names) != 3 || names[0] != "tree 0" || names[2] != "class" {
		t.Errorf("unexpected names %v", names)
	}
}
