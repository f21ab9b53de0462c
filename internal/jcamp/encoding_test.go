package jcamp

import "testing"

func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		scheme     Scheme
		confidence Confidence
	}{
		{"affn", []string{"4000 0.9 0.91", "3997 0.93"}, SchemeAFFN, Confident},
		{"affn exponent", []string{"4000 1.5E-03 2e+1"}, SchemeAFFN, Confident},
		{"affn negative", []string{"4000 -0.5 -0.25"}, SchemeAFFN, Confident},
		{"pac", []string{"100+12-13+14"}, SchemePAC, Confident},
		{"sqz", []string{"100@A1B2"}, SchemeSQZ, Confident},
		{"dif", []string{"100A0JJ%j"}, SchemeDIF, Confident},
		{"dup", []string{"200A0JT%U"}, SchemeDUP, Confident},
		{"unknown letters only", []string{"100 xx"}, SchemeAFFN, Confident},
		{"ambiguous", []string{"100 1 x A"}, SchemeAFFN, Ambiguous},
		{"bare exponents", []string{"100E5e5"}, SchemeAFFN, Ambiguous},
		{"separated exponent", []string{"100 1E5"}, SchemeAFFN, Confident},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := DetectEncoding(tt.lines)
			if report.Scheme != tt.scheme {
				t.Fatalf("unexpected scheme: got %s want %s", report.Scheme, tt.scheme)
			}
			if report.Confidence != tt.confidence {
				t.Fatalf("unexpected confidence: got %s want %s", report.Confidence, tt.confidence)
			}
		})
	}
}

func TestEncodingReportCompressed(t *testing.T) {
	if (EncodingReport{Scheme: SchemePAC}).Compressed() {
		t.Fatal("PAC should not need the ASDF decoder")
	}
	if !(EncodingReport{Scheme: SchemeDUP}).Compressed() {
		t.Fatal("DUP should need the ASDF decoder")
	}
}

func TestLooksCompressed(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  bool
	}{
		{"plain", "##XYDATA=(X++(Y..Y))\n4000 0.9 0.91\n##END=", false},
		{"comments skipped", "##XYDATA=(X++(Y..Y))\n$$ checkpoint\n4000 0.9\n##END=", false},
		{"dif", "##XYDATA=(X++(Y..Y))\n100A0JJ%j\n##END=", true},
		{"pac", "##XYDATA=(X++(Y..Y))\n100+12-13\n##END=", true},
		{"empty", "##XYDATA=(X++(Y..Y))\n##END=", false},
		{"bare exponents", "##XYDATA=(X++(Y..Y))\n100E5e5\n##END=", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksCompressed(tt.block); got != tt.want {
				t.Fatalf("LooksCompressed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenizeLineStrayByteInASDF(t *testing.T) {
	tokens := tokenizeLine("10A0xA2", true)
	kinds := []tokenKind{tokenValue, tokenValue, tokenInvalid, tokenValue}
	if len(tokens) != len(kinds) {
		t.Fatalf("unexpected token count: got %d want %d (%v)", len(tokens), len(kinds), tokens)
	}
	for i, kind := range kinds {
		if tokens[i].kind != kind {
			t.Fatalf("token %d: got kind %d want %d (%v)", i, tokens[i].kind, kind, tokens)
		}
	}
	if tokens[2].text != "x" {
		t.Fatalf("unexpected invalid token: got %q want %q", tokens[2].text, "x")
	}
}

func TestTokenizeLineExponent(t *testing.T) {
	tokens := tokenizeLine("4000 1.5E-03", false)
	if len(tokens) != 2 {
		t.Fatalf("unexpected token count: got %d want 2 (%v)", len(tokens), tokens)
	}
	v, ok := tokens[1].float()
	if !ok || v != 1.5e-3 {
		t.Fatalf("unexpected exponent value: got %v ok=%v", v, ok)
	}
}
