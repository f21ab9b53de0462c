package jcamp

import (
	"errors"
	"math"
	"strings"
	"testing"

	"irspec/internal/units"
)

func lines(parts ...string) string { return strings.Join(parts, "\n") }

func assertFloats(t *testing.T, name string, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s length mismatch: got %v, want %v", name, got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("%s[%d] mismatch: got %v, want %v (all %v)", name, i, got[i], want[i], got)
		}
	}
}

func hasWarning(warnings []Warning, kind WarningKind) bool {
	for _, w := range warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}

func TestDecodeMinimalAFFN(t *testing.T) {
	text := lines(
		"##TITLE=synthetic",
		"##XUNITS=1/CM",
		"##YUNITS=TRANSMITTANCE",
		"##XFACTOR=1",
		"##YFACTOR=1",
		"##FIRSTX=4000",
		"##DELTAX=-1",
		"##XYDATA=(X++(Y..Y))",
		"4000 0.9 0.91 0.92",
		"##END=",
	)
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	assertFloats(t, "x", result.Signal.X, []float64{3998, 3999, 4000})
	assertFloats(t, "y", result.Signal.Y, []float64{0.92, 0.91, 0.9})
	if result.Signal.YUnits != units.Transmittance {
		t.Fatalf("unexpected y units: got %v", result.Signal.YUnits)
	}
	if result.Signal.XUnits != units.Wavenumber {
		t.Fatalf("unexpected x units: got %v", result.Signal.XUnits)
	}
	if result.Title != "synthetic" {
		t.Fatalf("unexpected title: got %q", result.Title)
	}
	if result.Signal.MinWavenumber() != 3998 || result.Signal.MaxWavenumber() != 4000 {
		t.Fatalf("unexpected span: %v..%v", result.Signal.MinWavenumber(), result.Signal.MaxWavenumber())
	}
	if result.Encoding.Scheme != SchemeAFFN || result.Encoding.Confidence != Confident {
		t.Fatalf("unexpected encoding: %+v", result.Encoding)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
}

func TestDecodeSortsOutOfOrderLines(t *testing.T) {
	text := lines(
		"##DELTAX=1",
		"##XYDATA=(X++(Y..Y))",
		"1000 1 2",
		"1002 3 4",
		"998 5 6",
		"##END=",
	)
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	x := result.Signal.X
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			t.Fatalf("x not strictly ascending at %d: %v", i, x)
		}
	}
	assertFloats(t, "x", x, []float64{998, 999, 1000, 1001, 1002, 1003})
	assertFloats(t, "y", result.Signal.Y, []float64{5, 6, 1, 2, 3, 4})
	if !hasWarning(result.Warnings, WarnXDrift) {
		t.Fatalf("expected x drift warning, got %v", result.Warnings)
	}
}

func TestDecodeSQZ(t *testing.T) {
	text := lines("##DELTAX=1", "##XYDATA=(X++(Y..Y))", "100@A1B2", "##END=")
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if result.Encoding.Scheme != SchemeSQZ {
		t.Fatalf("unexpected scheme: got %s", result.Encoding.Scheme)
	}
	assertFloats(t, "x", result.Signal.X, []float64{100, 101, 102})
	assertFloats(t, "y", result.Signal.Y, []float64{0, 11, 22})
}

func TestDecodeDIFWithYCheck(t *testing.T) {
	text := lines("##DELTAX=1", "##XYDATA=(X++(Y..Y))", "100A0JJ%j", "104A1K", "##END=")
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if result.Encoding.Scheme != SchemeDIF {
		t.Fatalf("unexpected scheme: got %s", result.Encoding.Scheme)
	}
	assertFloats(t, "x", result.Signal.X, []float64{100, 101, 102, 103, 104, 105})
	assertFloats(t, "y", result.Signal.Y, []float64{10, 11, 12, 12, 11, 13})
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
}

func TestDecodeDIFYCheckMismatchWarns(t *testing.T) {
	text := lines("##DELTAX=1", "##XYDATA=(X++(Y..Y))", "100A0J", "101A5J", "##END=")
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !hasWarning(result.Warnings, WarnYCheck) {
		t.Fatalf("expected y check warning, got %v", result.Warnings)
	}
	assertFloats(t, "y", result.Signal.Y, []float64{10, 11, 16})
}

func TestDecodeDUP(t *testing.T) {
	text := lines("##DELTAX=1", "##XYDATA=(X++(Y..Y))", "200A0JT%U", "##END=")
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	report := result.Encoding
	if report.Scheme != SchemeDUP || !report.HasDIF || !report.HasSQZ {
		t.Fatalf("unexpected encoding: %+v", report)
	}
	assertFloats(t, "x", result.Signal.X, []float64{200, 201, 202, 203, 204, 205})
	assertFloats(t, "y", result.Signal.Y, []float64{10, 11, 12, 12, 12, 12})
}

func TestDecodeDUPRepeatsValues(t *testing.T) {
	text := lines("##DELTAX=1", "##XYDATA=(X++(Y..Y))", "300AT", "##END=")
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	assertFloats(t, "y", result.Signal.Y, []float64{1, 1})
}

func TestDecodeAppliesFactors(t *testing.T) {
	text := lines(
		"##XFACTOR=2",
		"##YFACTOR=0.001",
		"##DELTAX=2",
		"##XYDATA=(X++(Y..Y))",
		"500 100 200",
		"##END=",
	)
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	assertFloats(t, "x", result.Signal.X, []float64{1000, 1002})
	assertFloats(t, "y", result.Signal.Y, []float64{0.1, 0.2})
}

func TestDecodeConvertsMicrometerPairs(t *testing.T) {
	text := lines(
		"##XUNITS=MICROMETERS",
		"##YUNITS=ABSORBANCE",
		"##XYPOINTS=(XY..XY)",
		"2.5, 0.5",
		"5, 0.6",
		"10, 0.7",
		"##END=",
	)
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	assertFloats(t, "x", result.Signal.X, []float64{1000, 2000, 4000})
	assertFloats(t, "y", result.Signal.Y, []float64{0.7, 0.6, 0.5})
	if result.Signal.YUnits != units.Absorbance {
		t.Fatalf("unexpected y units: got %v", result.Signal.YUnits)
	}
}

func TestDecodePeakTableTriples(t *testing.T) {
	text := lines("##PEAK TABLE=(XYW..XYW)", "1700, 0.2, 5 1600, 0.4, 3", "##END=")
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	assertFloats(t, "x", result.Signal.X, []float64{1600, 1700})
	assertFloats(t, "y", result.Signal.Y, []float64{0.4, 0.2})
}

func TestDecodeNoSpectralData(t *testing.T) {
	cases := map[string]string{
		"no data label": lines("##TITLE=empty", "##END="),
		"empty block":   lines("##TITLE=empty", "##XYDATA=(X++(Y..Y))", "##END="),
		"garbage":       lines("##XYDATA=(X++(Y..Y))", "xx zz", "##END="),
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(text)
			if !errors.Is(err, ErrNoSpectralData) {
				t.Fatalf("expected ErrNoSpectralData, got %v", err)
			}
		})
	}
}

func TestDecodeSkipsMalformedToken(t *testing.T) {
	text := lines("##DELTAX=1", "##XYDATA=(X++(Y..Y))", "100 1 2.3.4 5", "##END=")
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	assertFloats(t, "x", result.Signal.X, []float64{100, 102})
	assertFloats(t, "y", result.Signal.Y, []float64{1, 5})
	if !hasWarning(result.Warnings, WarnMalformedToken) {
		t.Fatalf("expected malformed token warning, got %v", result.Warnings)
	}
	if result.Warnings[0].Line != 3 {
		t.Fatalf("unexpected warning line: got %d want 3", result.Warnings[0].Line)
	}
}

func TestDecodeAmbiguousFallsBackToAFFN(t *testing.T) {
	text := lines("##DELTAX=1", "##XYDATA=(X++(Y..Y))", "100 1 2 x A", "##END=")
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if result.Encoding.Scheme != SchemeAFFN || result.Encoding.Confidence != Ambiguous {
		t.Fatalf("unexpected encoding: %+v", result.Encoding)
	}
	if !hasWarning(result.Warnings, WarnAmbiguousEncoding) {
		t.Fatalf("expected ambiguity warning, got %v", result.Warnings)
	}
	assertFloats(t, "y", result.Signal.Y, []float64{1, 2})
}

func countWarnings(warnings []Warning, kind WarningKind) int {
	n := 0
	for _, w := range warnings {
		if w.Kind == kind {
			n++
		}
	}
	return n
}

func TestDecodeSQZWithOnlyExponentLetters(t *testing.T) {
	text := lines("##DELTAX=1", "##XYDATA=(X++(Y..Y))", "100E5e5", "103E5", "##END=")
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	assertFloats(t, "x", result.Signal.X, []float64{100, 101, 103})
	assertFloats(t, "y", result.Signal.Y, []float64{55, -55, 55})
	if result.Encoding.Confidence != Ambiguous {
		t.Fatalf("expected ambiguous encoding, got %+v", result.Encoding)
	}
	if result.Encoding.Scheme != SchemeSQZ {
		t.Fatalf("unexpected scheme: got %s want %s", result.Encoding.Scheme, SchemeSQZ)
	}
	if !hasWarning(result.Warnings, WarnAmbiguousEncoding) {
		t.Fatalf("expected ambiguity warning, got %v", result.Warnings)
	}
	if hasWarning(result.Warnings, WarnMalformedToken) {
		t.Fatalf("AFFN attempt warnings leaked into result: %v", result.Warnings)
	}
}

func TestDecodeSQZWithStrayLetter(t *testing.T) {
	text := lines("##DELTAX=1", "##XYDATA=(X++(Y..Y))", "10A0xA2A3", "##END=")
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	assertFloats(t, "x", result.Signal.X, []float64{10, 12, 13})
	assertFloats(t, "y", result.Signal.Y, []float64{10, 12, 13})
	if got := countWarnings(result.Warnings, WarnMalformedToken); got != 1 {
		t.Fatalf("expected one malformed token warning, got %d (%v)", got, result.Warnings)
	}
	if !hasWarning(result.Warnings, WarnAmbiguousEncoding) {
		t.Fatalf("expected ambiguity warning, got %v", result.Warnings)
	}
}

func TestDecodeOrphanASDFTokensKeepPosition(t *testing.T) {
	tests := []struct {
		name string
		line string
		x    []float64
		y    []float64
	}{
		{"difference without value", "10J5A0A1", []float64{11, 12}, []float64{10, 11}},
		{"duplicate without value", "10TA1A2", []float64{11, 12}, []float64{11, 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := lines("##DELTAX=1", "##XYDATA=(X++(Y..Y))", tt.line, "##END=")
			result, err := Decode(text)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			assertFloats(t, "x", result.Signal.X, tt.x)
			assertFloats(t, "y", result.Signal.Y, tt.y)
			if !hasWarning(result.Warnings, WarnMalformedToken) {
				t.Fatalf("expected malformed token warning, got %v", result.Warnings)
			}
		})
	}
}

func TestDecodeMissingValuesKeepPosition(t *testing.T) {
	text := lines("##DELTAX=1", "##XYDATA=(X++(Y..Y))", "100 1 ? 3", "##END=")
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	assertFloats(t, "x", result.Signal.X, []float64{100, 102})
	assertFloats(t, "y", result.Signal.Y, []float64{1, 3})
}

func TestDecodeResolvesDeltaX(t *testing.T) {
	t.Run("from first and last", func(t *testing.T) {
		text := lines("##FIRSTX=100", "##LASTX=106", "##NPOINTS=4", "##XYDATA=(X++(Y..Y))", "100 1 2 3 4", "##END=")
		result, err := Decode(text)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		assertFloats(t, "x", result.Signal.X, []float64{100, 102, 104, 106})
		if len(result.Warnings) != 0 {
			t.Fatalf("expected no warnings, got %v", result.Warnings)
		}
	})
	t.Run("from line starts", func(t *testing.T) {
		text := lines("##XYDATA=(X++(Y..Y))", "100 1 2", "102 3 4", "##END=")
		result, err := Decode(text)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		assertFloats(t, "x", result.Signal.X, []float64{100, 101, 102, 103})
	})
}

func TestDecodePointCountMismatchWarns(t *testing.T) {
	text := lines("##DELTAX=1", "##NPOINTS=5", "##XYDATA=(X++(Y..Y))", "100 1 2", "##END=")
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !hasWarning(result.Warnings, WarnPointCount) {
		t.Fatalf("expected point count warning, got %v", result.Warnings)
	}
}

func TestDecodeDuplicateX(t *testing.T) {
	text := lines("##XYPOINTS=(XY..XY)", "100, 1", "100, 2", "101, 3", "##END=")

	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	assertFloats(t, "x", result.Signal.X, []float64{100, 101})
	assertFloats(t, "y", result.Signal.Y, []float64{2, 3})

	result, err = Decode(text, WithDuplicatePolicy(KeepFirst))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	assertFloats(t, "y first", result.Signal.Y, []float64{1, 3})
}

func TestDecodeUnknownUnitsPassThrough(t *testing.T) {
	text := lines("##XUNITS=SECONDS", "##YUNITS=COUNTS", "##DELTAX=1", "##XYDATA=(X++(Y..Y))", "5 1 2", "##END=")
	result, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if result.Signal.XUnits != units.UnknownX {
		t.Fatalf("unexpected x units: got %v", result.Signal.XUnits)
	}
	assertFloats(t, "x", result.Signal.X, []float64{5, 6})
	count := 0
	for _, w := range result.Warnings {
		if w.Kind == WarnUnsupportedUnits {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected two unsupported unit warnings, got %v", result.Warnings)
	}
}

func TestDecodeDefaultTitle(t *testing.T) {
	result, err := Decode(lines("##XYPOINTS=(XY..XY)", "1000, 0.5", "##END="))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if result.Title != "Spectrum" {
		t.Fatalf("unexpected title: got %q", result.Title)
	}
}
