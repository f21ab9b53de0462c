package catalog

import "time"

// Entry is one cataloged spectrum.
type Entry struct {
	ID               string    `json:"id"`
	FileName         string    `json:"file_name"`
	SourcePath       string    `json:"source_path"`
	Title            string    `json:"title"`
	CASNumber        string    `json:"cas_number,omitempty"`
	Names            string    `json:"names,omitempty"`
	FunctionalGroups []string  `json:"functional_groups"`
	Owner            string    `json:"owner,omitempty"`
	Origin           string    `json:"origin,omitempty"`
	Citation         string    `json:"citation,omitempty"`
	XUnits           string    `json:"x_units"`
	YUnits           string    `json:"y_units"`
	Points           int       `json:"points"`
	MinWavenumber    float64   `json:"min_wavenumber"`
	MaxWavenumber    float64   `json:"max_wavenumber"`
	Encoding         string    `json:"encoding,omitempty"`
	WarningCount     int       `json:"warning_count"`
	DecodeError      string    `json:"decode_error,omitempty"`
	ScanID           string    `json:"scan_id,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Decoded reports whether the spectrum decoded to at least one point.
func (e Entry) Decoded() bool {
	return e.Points > 0
}

// ScanResult summarizes one scan run.
type ScanResult struct {
	ScanID    string    `json:"scan_id"`
	Directory string    `json:"directory"`
	Entries   []Entry   `json:"entries"`
	Failed    int       `json:"failed"`
	StartedAt time.Time `json:"started_at"`
	Duration  string    `json:"duration"`
}
