package catalog

import "testing"

const casHeaderSpectrum = "##TITLE=Ethyl acetate\n##CAS REGISTRY NO= 141-78-6 (neat)\n##XUNITS=1/CM\n##XYPOINTS=(XY..XY)\n1000, 0.5\n##END="

const headerOnlySpectrum = "##TITLE=Header only\n##XUNITS=1/CM\n##YUNITS=ABSORBANCE\n##END="

func TestDescribeFallsBackToFileName(t *testing.T) {
	entry := describe("/data/Mystery Sample.jdx", "##XUNITS=1/CM\n##XYPOINTS=(XY..XY)\n1000, 0.5\n1100, 0.4\n##END=", nil)
	if entry.Title != "Mystery Sample" {
		t.Fatalf("unexpected title: got %q", entry.Title)
	}
	if entry.CASNumber != "" {
		t.Fatalf("unexpected CAS: got %q", entry.CASNumber)
	}
	if entry.Points != 2 || entry.Encoding != "AFFN" {
		t.Fatalf("unexpected decode summary: %d points, %q", entry.Points, entry.Encoding)
	}
	if len(entry.FunctionalGroups) != 0 || entry.FunctionalGroups == nil {
		t.Fatalf("expected empty non-nil functional groups, got %#v", entry.FunctionalGroups)
	}
}

func TestDescribeHeaderCASWinsOverFileName(t *testing.T) {
	entry := describe("/data/x_67-64-1.jdx", casHeaderSpectrum, nil)
	if entry.CASNumber != "141-78-6" {
		t.Fatalf("unexpected CAS: got %q", entry.CASNumber)
	}
}

func TestDescribeRecordsDecodeFailure(t *testing.T) {
	entry := describe("/data/none.jdx", headerOnlySpectrum, nil)
	if entry.DecodeError == "" || entry.Points != 0 {
		t.Fatalf("expected decode failure, got %+v", entry)
	}
	if entry.YUnits != "ABSORBANCE" || entry.XUnits != "1/CM" {
		t.Fatalf("unexpected units: %q %q", entry.XUnits, entry.YUnits)
	}
}
