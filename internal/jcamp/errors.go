package jcamp

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSpectralData is returned when a file has no data block or the block
	// yields no valid points.
	ErrNoSpectralData = errors.New("no spectral data found in JCAMP-DX file")
	// ErrLabelExists is returned by Document.Add for a label already present.
	ErrLabelExists = errors.New("label already present")
)

// WarningKind classifies a recovered decoding anomaly.
type WarningKind string

const (
	// WarnMalformedToken marks a numeric token that failed to parse and was skipped.
	WarnMalformedToken WarningKind = "malformed_token"
	// WarnAmbiguousEncoding marks a data block whose encoding could not be
	// classified; it was decoded as AFFN.
	WarnAmbiguousEncoding WarningKind = "ambiguous_encoding"
	// WarnUnsupportedUnits marks a unit label that matched no known spelling.
	WarnUnsupportedUnits WarningKind = "unsupported_units"
	// WarnXDrift marks a line whose starting X disagrees with the running X.
	WarnXDrift WarningKind = "x_drift"
	// WarnYCheck marks a DIF y-check value that disagrees with the previous line.
	WarnYCheck WarningKind = "y_check_mismatch"
	// WarnPointCount marks a decoded point count that differs from NPOINTS.
	WarnPointCount WarningKind = "point_count_mismatch"
)

// Warning is a non-fatal anomaly. Line is 1-based, 0 when not tied to a line.
type Warning struct {
	Kind   WarningKind `json:"kind"`
	Line   int         `json:"line,omitempty"`
	Detail string      `json:"detail"`
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", w.Kind, w.Line, w.Detail)
	}
	return fmt.Sprintf("%s: %s", w.Kind, w.Detail)
}
