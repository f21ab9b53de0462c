package jcamp

import (
	"regexp"
	"strings"
)

// Scheme is the numeric encoding of a data block.
type Scheme string

const (
	SchemeAFFN Scheme = "AFFN"
	SchemePAC  Scheme = "PAC"
	SchemeSQZ  Scheme = "SQZ"
	SchemeDIF  Scheme = "DIF"
	SchemeDUP  Scheme = "DUP"
)

// Confidence qualifies a detected scheme.
type Confidence string

const (
	Confident Confidence = "confident"
	Ambiguous Confidence = "ambiguous"
)

// EncodingReport is the result of classifying a data block. Scheme names the
// richest form present (DUP implies SQZ and usually DIF); the Has flags list
// every character class seen.
type EncodingReport struct {
	Scheme     Scheme     `json:"scheme"`
	Confidence Confidence `json:"confidence"`
	HasPAC     bool       `json:"has_pac,omitempty"`
	HasSQZ     bool       `json:"has_sqz,omitempty"`
	HasDIF     bool       `json:"has_dif,omitempty"`
	HasDUP     bool       `json:"has_dup,omitempty"`
	// Unknown counts characters outside every alphabet.
	Unknown int `json:"unknown,omitempty"`
	// BareExponents counts E/e markers that read as exponents only because a
	// digit sits on both sides; they are equally valid SQZ characters.
	BareExponents int `json:"bare_exponents,omitempty"`
}

// Compressed reports whether the block must go through the ASDF decoder.
func (r EncodingReport) Compressed() bool {
	switch r.Scheme {
	case SchemeSQZ, SchemeDIF, SchemeDUP:
		return true
	}
	return false
}

// asdfScheme names the compressed scheme the ASDF decoder would read the
// block as. Bare exponent markers count as SQZ.
func (r EncodingReport) asdfScheme() Scheme {
	switch {
	case r.HasDUP:
		return SchemeDUP
	case r.HasDIF:
		return SchemeDIF
	}
	return SchemeSQZ
}

// asdfEvidence reports whether any character could belong to the ASDF
// alphabet.
func (r EncodingReport) asdfEvidence() bool {
	return r.HasSQZ || r.HasDIF || r.HasDUP || r.BareExponents > 0
}

func sqzDigit(c byte) (byte, bool, bool) {
	switch {
	case c == '@':
		return '0', false, true
	case c >= 'A' && c <= 'I':
		return '1' + (c - 'A'), false, true
	case c >= 'a' && c <= 'i':
		return '1' + (c - 'a'), true, true
	}
	return 0, false, false
}

func difDigit(c byte) (byte, bool, bool) {
	switch {
	case c == '%':
		return '0', false, true
	case c >= 'J' && c <= 'R':
		return '1' + (c - 'J'), false, true
	case c >= 'j' && c <= 'r':
		return '1' + (c - 'j'), true, true
	}
	return 0, false, false
}

func dupDigit(c byte) (byte, bool) {
	switch {
	case c >= 'S' && c <= 'Z':
		return '1' + (c - 'S'), true
	case c == 's':
		return '9', true
	}
	return 0, false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', ',', ';':
		return true
	}
	return false
}

// isExponent reports whether line[i] ('E' or 'e') reads as the exponent
// marker of an AFFN number such as 1.5E-03.
func isExponent(line string, i int) bool {
	if i == 0 || i+1 >= len(line) {
		return false
	}
	prev := line[i-1]
	if !isDigit(prev) && prev != '.' {
		return false
	}
	next := line[i+1]
	if next == '+' || next == '-' {
		return i+2 < len(line) && isDigit(line[i+2])
	}
	return isDigit(next)
}

// DetectEncoding classifies data lines by the character classes they use.
// Letters outside the ASDF alphabet next to ASDF characters make the block
// ambiguous, as do exponent markers with no other AFFN evidence around them
// (no decimal point in the mantissa, no separator before them on the line).
// Ambiguous reports fall back to AFFN.
func DetectEncoding(lines []string) EncodingReport {
	var report EncodingReport
	for _, line := range lines {
		separated, dotted := false, false
		for i := 0; i < len(line); i++ {
			c := line[i]
			switch {
			case isSeparator(c):
				separated, dotted = true, false
			case c == '.':
				dotted = true
			case isDigit(c), c == '?':
			case c == '+' || c == '-':
				dotted = false
				if i > 0 && (isDigit(line[i-1]) || line[i-1] == '.') {
					report.HasPAC = true
				}
			case (c == 'E' || c == 'e') && isExponent(line, i):
				if !separated && !dotted {
					report.BareExponents++
				}
				// exponent in AFFN; skip its sign so it is not read as PAC
				if i+1 < len(line) && (line[i+1] == '+' || line[i+1] == '-') {
					i++
				}
			default:
				if _, _, ok := sqzDigit(c); ok {
					report.HasSQZ = true
					continue
				}
				if _, _, ok := difDigit(c); ok {
					report.HasDIF = true
					continue
				}
				if _, ok := dupDigit(c); ok {
					report.HasDUP = true
					continue
				}
				report.Unknown++
			}
		}
	}

	asdf := report.HasSQZ || report.HasDIF || report.HasDUP
	switch {
	case asdf && report.Unknown > 0,
		!asdf && report.BareExponents > 0 && report.Unknown == 0:
		report.Scheme = SchemeAFFN
		report.Confidence = Ambiguous
		return report
	case report.HasDUP:
		report.Scheme = SchemeDUP
	case report.HasDIF:
		report.Scheme = SchemeDIF
	case report.HasSQZ:
		report.Scheme = SchemeSQZ
	case report.HasPAC:
		report.Scheme = SchemePAC
	default:
		report.Scheme = SchemeAFFN
	}
	report.Confidence = Confident
	return report
}

var plainLinePattern = regexp.MustCompile(`^\d[\d.\s]*$`)

// LooksCompressed reports whether a data block (label line included) holds
// anything other than plain one-value-per-column decimals. A block whose
// first numeric line is plain digits is treated as readable; an ambiguous
// block counts as compressed when it carries ASDF characters.
func LooksCompressed(block string) bool {
	lines, _ := splitLines(block)
	var data []string
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if i == 0 || trimmed == "" || strings.HasPrefix(trimmed, "$$") {
			continue
		}
		if strings.HasPrefix(trimmed, "##") {
			break
		}
		data = append(data, trimmed)
	}
	if len(data) == 0 {
		return false
	}
	if plainLinePattern.MatchString(data[0]) {
		return false
	}
	report := DetectEncoding(data)
	if report.Confidence == Ambiguous {
		return report.asdfEvidence()
	}
	return report.Scheme != SchemeAFFN
}
