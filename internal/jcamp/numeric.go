package jcamp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// rawPoint is a decoded pair before factors and unit conversion.
type rawPoint struct {
	x, y float64
}

// blockParams are the header values the numeric decoder depends on. DeltaX,
// FirstX and LastX are in scaled (real) units as the header states them.
type blockParams struct {
	xFactor, yFactor float64
	deltaX           float64
	firstX, lastX    float64
	nPoints          int
}

func (d Document) blockParams() (blockParams, []Warning) {
	var warnings []Warning
	p := blockParams{
		xFactor: 1,
		yFactor: 1,
		deltaX:  math.NaN(),
		firstX:  math.NaN(),
		lastX:   math.NaN(),
	}
	number := func(label string) (float64, bool) {
		raw, ok := d.Lookup(label)
		if !ok || strings.TrimSpace(raw) == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			warnings = append(warnings, Warning{
				Kind:   WarnMalformedToken,
				Detail: fmt.Sprintf("##%s=%s is not a number", label, strings.TrimSpace(raw)),
			})
			return 0, false
		}
		return v, true
	}
	if v, ok := number(labelXFactor); ok && v != 0 {
		p.xFactor = v
	}
	if v, ok := number(labelYFactor); ok && v != 0 {
		p.yFactor = v
	}
	if v, ok := number(labelDeltaX); ok && v != 0 {
		p.deltaX = v
	}
	if v, ok := number(labelFirstX); ok {
		p.firstX = v
	}
	if v, ok := number(labelLastX); ok {
		p.lastX = v
	}
	if v, ok := number(labelNPoints); ok && v > 0 {
		p.nPoints = int(v)
	}
	return p, warnings
}

// decodedLine is one (X++(Y..Y)) line. ys holds NaN for missing values.
type decodedLine struct {
	no      int
	x       float64
	ys      []float64
	endsDif bool
	// checked marks that ys[0] is a repeat of the previous line's last Y.
	checked bool
}

type numericDecoder struct {
	asdf     bool
	warnings []Warning
}

func (n *numericDecoder) warn(kind WarningKind, lineNo int, format string, args ...any) {
	n.warnings = append(n.warnings, Warning{Kind: kind, Line: lineNo + 1, Detail: fmt.Sprintf(format, args...)})
}

// decodeYLine expands the Y tokens of one line. prev is the last decoded Y of
// the previous line (NaN when none) so a line may open with a difference.
func (n *numericDecoder) decodeYLine(no int, tokens []token, prev float64) ([]float64, bool) {
	var (
		ys       []float64
		last     = prev
		lastDiff float64
		lastKind = tokenValue
		haveLast = !math.IsNaN(prev)
	)
	for _, tok := range tokens {
		switch tok.kind {
		case tokenValue:
			v, ok := tok.float()
			if !ok {
				n.warn(WarnMalformedToken, no, "skipped token %q", tok.text)
				ys = append(ys, math.NaN())
				lastKind = tokenMissing
				continue
			}
			ys = append(ys, v)
			last, haveLast, lastKind = v, true, tokenValue
		case tokenDiff:
			d, ok := tok.float()
			if !ok || !haveLast {
				n.warn(WarnMalformedToken, no, "skipped difference %q with no preceding value", tok.text)
				ys = append(ys, math.NaN())
				lastKind = tokenMissing
				continue
			}
			last += d
			ys = append(ys, last)
			lastDiff, lastKind = d, tokenDiff
		case tokenDup:
			count, ok := tok.count()
			if !ok || len(ys) == 0 {
				n.warn(WarnMalformedToken, no, "skipped duplicate count %q with nothing to repeat", tok.text)
				ys = append(ys, math.NaN())
				lastKind = tokenMissing
				continue
			}
			for i := 1; i < count; i++ {
				switch lastKind {
				case tokenDiff:
					last += lastDiff
					ys = append(ys, last)
				case tokenMissing:
					ys = append(ys, math.NaN())
				default:
					ys = append(ys, last)
				}
			}
		case tokenMissing:
			ys = append(ys, math.NaN())
			lastKind = tokenMissing
		default:
			n.warn(WarnMalformedToken, no, "skipped token %q", tok.text)
			ys = append(ys, math.NaN())
			lastKind = tokenMissing
		}
	}
	return ys, lastKind == tokenDiff
}

// decodeLines reads (X++(Y..Y)) data into points in raw file units and file
// order.
func (n *numericDecoder) decodeLines(lines []numericLine, p blockParams) []rawPoint {
	decoded := make([]decodedLine, 0, len(lines))
	prevY := math.NaN()
	prevDif := false
	for _, line := range lines {
		tokens := tokenizeLine(line.text, n.asdf)
		if len(tokens) == 0 {
			continue
		}
		x, ok := math.NaN(), false
		if tokens[0].kind == tokenValue {
			x, ok = tokens[0].float()
		}
		if !ok {
			n.warn(WarnMalformedToken, line.no, "line skipped: leading X %q is not a number", tokens[0].text)
			prevDif = false
			continue
		}
		ys, endsDif := n.decodeYLine(line.no, tokens[1:], prevY)
		dl := decodedLine{no: line.no, x: x, ys: ys, endsDif: endsDif}
		if prevDif && len(ys) > 0 {
			dl.checked = true
			if !math.IsNaN(prevY) && !math.IsNaN(ys[0]) && !closeTo(ys[0], prevY) {
				n.warn(WarnYCheck, line.no, "Y check value %g does not match previous %g", ys[0], prevY)
			}
		}
		decoded = append(decoded, dl)
		prevDif = endsDif
		if last, ok := lastValue(ys); ok {
			prevY = last
		}
	}
	if len(decoded) == 0 {
		return nil
	}

	step := n.resolveStep(decoded, p)
	points := make([]rawPoint, 0, len(decoded)*8)
	for i, dl := range decoded {
		if i > 0 {
			prev := decoded[i-1]
			expected := prev.x + float64(len(prev.ys))*step
			if dl.checked {
				expected -= step
			}
			if math.Abs(dl.x-expected) > math.Abs(step)*1.0001 {
				n.warn(WarnXDrift, dl.no, "line X %g, expected %g", dl.x, expected)
			}
		}
		for pos, y := range dl.ys {
			if pos == 0 && dl.checked {
				continue
			}
			if math.IsNaN(y) {
				continue
			}
			points = append(points, rawPoint{x: dl.x + float64(pos)*step, y: y})
		}
	}
	if p.nPoints > 0 && len(points) != p.nPoints {
		n.warn(WarnPointCount, decoded[0].no, "decoded %d points, header declares %d", len(points), p.nPoints)
	}
	return points
}

// resolveStep returns the X increment per Y value in raw units: ##DELTAX,
// then (LASTX-FIRSTX)/(NPOINTS-1), then the spacing between line starts.
func (n *numericDecoder) resolveStep(decoded []decodedLine, p blockParams) float64 {
	if !math.IsNaN(p.deltaX) {
		return p.deltaX / p.xFactor
	}
	if !math.IsNaN(p.firstX) && !math.IsNaN(p.lastX) && p.nPoints > 1 {
		return (p.lastX - p.firstX) / float64(p.nPoints-1) / p.xFactor
	}
	for i := 1; i < len(decoded); i++ {
		positions := len(decoded[i-1].ys)
		if decoded[i].checked {
			positions--
		}
		if positions > 0 && decoded[i].x != decoded[i-1].x {
			return (decoded[i].x - decoded[i-1].x) / float64(positions)
		}
	}
	if !math.IsNaN(p.firstX) && !math.IsNaN(p.lastX) {
		total := 0
		for _, dl := range decoded {
			total += len(dl.ys)
			if dl.checked {
				total--
			}
		}
		if total > 1 {
			return (p.lastX - p.firstX) / float64(total-1) / p.xFactor
		}
	}
	return 1
}

// decodePairs reads (XY..XY) or (XYW..XYW) data, stride values per point.
// Values are grouped per line; a trailing partial group is reported.
func (n *numericDecoder) decodePairs(lines []numericLine, stride int) []rawPoint {
	var points []rawPoint
	for _, line := range lines {
		var vals []float64
		for _, tok := range tokenizeLine(line.text, n.asdf) {
			switch tok.kind {
			case tokenValue:
				v, ok := tok.float()
				if !ok {
					n.warn(WarnMalformedToken, line.no, "skipped token %q", tok.text)
					continue
				}
				vals = append(vals, v)
			case tokenMissing:
				vals = append(vals, math.NaN())
			default:
				n.warn(WarnMalformedToken, line.no, "skipped token %q", tok.text)
			}
		}
		full := len(vals) - len(vals)%stride
		if full != len(vals) {
			n.warn(WarnMalformedToken, line.no, "dropped %d trailing values", len(vals)-full)
		}
		for i := 0; i < full; i += stride {
			x, y := vals[i], vals[i+1]
			if math.IsNaN(x) || math.IsNaN(y) {
				continue
			}
			points = append(points, rawPoint{x: x, y: y})
		}
	}
	return points
}

// pairStride reports the values per point for a tabular data label value
// such as (XY..XY), or 0 for (X++(Y..Y)) line data.
func pairStride(value string) int {
	v := strings.ToUpper(strings.ReplaceAll(value, " ", ""))
	switch {
	case strings.Contains(v, "++"):
		return 0
	case strings.Contains(v, "XYW") || strings.Contains(v, "XYM"):
		return 3
	case strings.Contains(v, "XY"):
		return 2
	}
	return 0
}

func lastValue(ys []float64) (float64, bool) {
	for i := len(ys) - 1; i >= 0; i-- {
		if !math.IsNaN(ys[i]) {
			return ys[i], true
		}
	}
	return 0, false
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// decodeRaw detects the encoding and decodes the data block of d into raw
// points in file order.
func (d Document) decodeRaw() ([]rawPoint, blockParams, EncodingReport, []Warning) {
	p, warnings := d.blockParams()
	lines := d.numericLines()
	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.text
	}
	report := DetectEncoding(texts)
	if report.Confidence == Ambiguous {
		no := 0
		if len(lines) > 0 {
			no = lines[0].no
		}
		detail := fmt.Sprintf("%d characters outside the ASDF alphabet; reading as AFFN", report.Unknown)
		if report.Unknown == 0 {
			detail = fmt.Sprintf("%d exponent markers could be SQZ digits; reading as AFFN", report.BareExponents)
		}
		warnings = append(warnings, Warning{Kind: WarnAmbiguousEncoding, Line: no + 1, Detail: detail})
	}

	_, value, _ := d.DataLabel()
	decode := func(asdf bool) ([]rawPoint, []Warning) {
		dec := &numericDecoder{asdf: asdf, warnings: append([]Warning(nil), warnings...)}
		if stride := pairStride(value); stride > 0 {
			return dec.decodePairs(lines, stride), dec.warnings
		}
		return dec.decodeLines(lines, p), dec.warnings
	}

	points, decoded := decode(report.Compressed())
	if len(points) == 0 && report.Confidence == Ambiguous && report.asdfEvidence() {
		// AFFN read nothing; the ASDF reading is the only one left
		if retried, retryWarnings := decode(true); len(retried) > 0 {
			report.Scheme = report.asdfScheme()
			return retried, p, report, retryWarnings
		}
	}
	return points, p, report, decoded
}
