package inputrow

import (
	"io"
	"strings"
	"testing"

	"github.com/bendazz/stacking/feature"
)

type recordingRequester struct {
	requested []string
	rejected  []string
}

func (rr *recordingRequester) RequestValueFor(f feature.Feature) error {
	rr.requested = append(rr.requested, f.Name())
	return nil
}

func (rr *recordingRequester) RejectValueFor(f feature.Feature, v string) error {
	rr.rejected = append(rr.rejected, f.Name()+"="+v)
	return nil
}

func testFeatures() []feature.Feature {
	return []feature.Feature{
		feature.NewContinuousFeature("length"),
		feature.NewDiscreteFeature("color", []string{"red", "green"}),
		feature.NewDiscreteFeature("fruit", []string{"apple", "pear"}),
	}
}

func TestRead(t *testing.T) {
	rr := &recordingRequester{}
	row, err := Read(strings.NewReader("long\n 3.5 \nblue\ngreen\n"), testFeatures(), rr)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(row) != 3 || row[0] != 3.5 || row[1] != "green" || row.Label() != nil {
		t.Errorf("unexpected row %v", row)
	}
	if strings.Join(rr.requested, ",") != "length,color" {
		t.Errorf("expected requests for length and color, got %v", rr.requested)
	}
	if strings.Join(rr.rejected, ",") != "length=long,color=blue" {
		t.Errorf("unexpected rejections %v", rr.rejected)
	}
}

func TestReadEOF(t *testing.T) {
	_, err := Read(strings.NewReader("3.5\n"), testFeatures(), &recordingRequester{})
	if err == nil || !strings.Contains(err.Error(), io.ErrUnexpectedEOF.Error()) {
		t.Errorf("expected an unexpected EOF error, got %v", err)
	}
}
