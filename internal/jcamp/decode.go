package jcamp

import (
	"fmt"
	"sort"
	"strings"

	"irspec/internal/units"
)

// Signal is a decoded spectrum: X strictly ascending in wavenumbers (or raw
// values when the X unit is unknown) with Y aligned to it.
type Signal struct {
	X      []float64    `json:"x"`
	Y      []float64    `json:"y"`
	XUnits units.XUnits `json:"x_units"`
	YUnits units.YUnits `json:"y_units"`
}

// Len returns the number of points.
func (s Signal) Len() int { return len(s.X) }

// MinWavenumber returns the first abscissa.
func (s Signal) MinWavenumber() float64 {
	if len(s.X) == 0 {
		return 0
	}
	return s.X[0]
}

// MaxWavenumber returns the last abscissa.
func (s Signal) MaxWavenumber() float64 {
	if len(s.X) == 0 {
		return 0
	}
	return s.X[len(s.X)-1]
}

// DisplayY returns the ordinates converted to the requested semantic.
func (s Signal) DisplayY(display units.YUnits) []float64 {
	return units.DisplayY(s.Y, s.YUnits, display)
}

// Result is everything Decode learned about a file.
type Result struct {
	Title    string         `json:"title"`
	Signal   Signal         `json:"signal"`
	Document Document       `json:"-"`
	Encoding EncodingReport `json:"encoding"`
	Warnings []Warning      `json:"warnings,omitempty"`
}

// DuplicatePolicy picks which Y survives when several points share an X.
type DuplicatePolicy string

const (
	KeepLast  DuplicatePolicy = "last"
	KeepFirst DuplicatePolicy = "first"
)

type decodeOptions struct {
	duplicates DuplicatePolicy
}

// Option configures Decode.
type Option func(*decodeOptions)

// WithDuplicatePolicy sets how points with equal X are collapsed. The
// default keeps the last one in file order.
func WithDuplicatePolicy(policy DuplicatePolicy) Option {
	return func(o *decodeOptions) {
		if policy == KeepFirst || policy == KeepLast {
			o.duplicates = policy
		}
	}
}

// Decode parses JCAMP-DX text into a Signal. It fails only with
// ErrNoSpectralData; every other anomaly is reported in Result.Warnings.
func Decode(text string, opts ...Option) (*Result, error) {
	options := decodeOptions{duplicates: KeepLast}
	for _, opt := range opts {
		opt(&options)
	}

	doc := ParseDocument(text)
	if doc.DataBlock == "" {
		return nil, fmt.Errorf("no data-start label: %w", ErrNoSpectralData)
	}

	raw, params, report, warnings := doc.decodeRaw()
	if len(raw) == 0 {
		return nil, fmt.Errorf("data block yielded no valid points: %w", ErrNoSpectralData)
	}

	rawXUnits, _ := doc.Lookup(labelXUnits)
	xKind := units.ClassifyXUnits(rawXUnits)
	if xKind == units.UnknownX {
		warnings = append(warnings, Warning{
			Kind:   WarnUnsupportedUnits,
			Detail: fmt.Sprintf("XUNITS %q not recognized; X values left unconverted", strings.TrimSpace(rawXUnits)),
		})
	}
	rawYUnits, _ := doc.Lookup(labelYUnits)
	yKind, recognized := units.ResolveYUnits(rawYUnits)
	if !recognized && strings.TrimSpace(rawYUnits) != "" {
		warnings = append(warnings, Warning{
			Kind:   WarnUnsupportedUnits,
			Detail: fmt.Sprintf("YUNITS %q not recognized; treated as %s", strings.TrimSpace(rawYUnits), yKind),
		})
	}

	x := make([]float64, len(raw))
	y := make([]float64, len(raw))
	for i, pt := range raw {
		x[i] = pt.x * params.xFactor
		y[i] = pt.y * params.yFactor
	}
	x = units.ToWavenumbers(x, xKind)
	x, y = sortCollapse(x, y, options.duplicates)

	title, ok := doc.Lookup(labelTitle)
	if !ok || strings.TrimSpace(title) == "" {
		title = "Spectrum"
	}

	return &Result{
		Title:    strings.TrimSpace(title),
		Signal:   Signal{X: x, Y: y, XUnits: xKind, YUnits: yKind},
		Document: doc,
		Encoding: report,
		Warnings: warnings,
	}, nil
}

// sortCollapse orders the pairs by X (stable, so file order breaks ties) and
// keeps one point per distinct X.
func sortCollapse(x, y []float64, policy DuplicatePolicy) ([]float64, []float64) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

	outX := make([]float64, 0, len(x))
	outY := make([]float64, 0, len(y))
	for _, i := range idx {
		n := len(outX)
		if n > 0 && outX[n-1] == x[i] {
			if policy == KeepLast {
				outY[n-1] = y[i]
			}
			continue
		}
		outX = append(outX, x[i])
		outY = append(outY, y[i])
	}
	return outX, outY
}
