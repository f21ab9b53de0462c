package jcamp

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// labelPattern matches a labelled data record: ##LABEL=value.
var labelPattern = regexp.MustCompile(`^##([A-Za-z0-9][A-Za-z0-9 /_\-]*)=(.*)$`)

var upper = cases.Upper(language.Und)

// Canonical label forms used by the decoder.
const (
	labelTitle      = "TITLE"
	labelXUnits     = "XUNITS"
	labelYUnits     = "YUNITS"
	labelXFactor    = "XFACTOR"
	labelYFactor    = "YFACTOR"
	labelDeltaX     = "DELTAX"
	labelFirstX     = "FIRSTX"
	labelLastX      = "LASTX"
	labelNPoints    = "NPOINTS"
	labelEnd        = "END"
	labelAuditTrail = "AUDITTRAIL"
)

var dataStartLabels = map[string]struct{}{
	"XYDATA":    {},
	"PEAKTABLE": {},
	"XYPOINTS":  {},
	"DATATABLE": {},
}

// CanonicalLabel folds a label to the form JCAMP-DX compares on: upper case
// with spaces, hyphens, slashes and underscores removed, so "X_FACTOR",
// "X FACTOR" and "xfactor" are the same label.
func CanonicalLabel(label string) string {
	folded := upper.String(strings.TrimSpace(label))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '/', '_', '\t':
			return -1
		}
		return r
	}, folded)
}

// SameLabel reports whether two labels are equal in canonical form.
func SameLabel(a, b string) bool {
	return CanonicalLabel(a) == CanonicalLabel(b)
}

// IsDataStartLabel reports whether label opens a numeric data block.
func IsDataStartLabel(label string) bool {
	_, ok := dataStartLabels[CanonicalLabel(label)]
	return ok
}

func parseLabelLine(line string) (key, value string, ok bool) {
	m := labelPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

// KnownLabels lists the header labels the editor offers, in display order.
var KnownLabels = []string{
	"TITLE",
	"AUDIT TRAIL",
	"JCAMP-DX",
	"DATA TYPE",
	"ORIGIN",
	"OWNER",
	"CAS REGISTRY NO",
	"FUNCTIONAL GROUPS",
	"DATE",
	"XUNITS",
	"YUNITS",
	"XLABEL",
	"YLABEL",
	"MOLFORM",
	"STATE",
	"NAMES",
	"CLASS",
	"SAMPLE DESCRIPTION",
	"CAS NAME",
	"CITATION",
	"SOURCE REFERENCE",
	"SPECTROMETER/DATA SYSTEM",
	"INSTRUMENT PARAMETERS",
	"SAMPLING PROCEDURE",
	"DATA PROCESSING",
	"RESOLUTION",
	"PATH LENGTH",
	"XFACTOR",
	"YFACTOR",
	"DELTAX",
	"FIRSTX",
	"LASTX",
	"FIRSTY",
	"MAXX",
	"MINX",
	"MAXY",
	"MINY",
	"NPOINTS",
}

// GroupEditLabels are the labels typically applied to a whole batch of files.
var GroupEditLabels = []string{"ORIGIN", "OWNER", "CITATION", "SOURCE REFERENCE", "DATE"}

var formatGuides = map[string]string{
	"TITLE":                  "Concise spectrum description, suitable as plot title. Free text.",
	"JCAMPDX":                "Version, e.g. 4.24.",
	"DATATYPE":               "E.g. INFRARED SPECTRUM, RAMAN SPECTRUM.",
	"ORIGIN":                 "Organization, address, contributor. Required.",
	"OWNER":                  `Owner or copyright holder. Use "PUBLIC DOMAIN" if freely copyable. Required.`,
	"CASREGISTRYNO":          "CAS number, e.g. 111-36-4.",
	"FUNCTIONALGROUPS":       "Comma-separated list, e.g. Ester, Carbonyl, Aromatic.",
	"DATE":                   "YY/MM/DD (year/month/day).",
	"TIME":                   "HH:MM:SS.",
	"XUNITS":                 "Abscissa units: 1/CM, MICROMETERS, NANOMETERS, SECONDS.",
	"YUNITS":                 "Ordinate: TRANSMITTANCE, ABSORBANCE, REFLECTANCE, ARBITRARY UNITS.",
	"XLABEL":                 "Axis label, e.g. Wavenumbers (cm⁻¹).",
	"YLABEL":                 "Axis label, e.g. % Transmission.",
	"MOLFORM":                "C first, then H, then others alphabetically. E.g. C4 H8 O2.",
	"STATE":                  "Sample state: solid, liquid, gas, solution, etc.",
	"NAMES":                  "Common or trade names. Multiple names on separate lines.",
	"CLASS":                  "Coblentz class (1–4) and IUPAC class (A, B, C).",
	"SAMPLEDESCRIPTION":      "Composition, origin, appearance. Free text.",
	"CASNAME":                "Chemical Abstracts name. Greek spelled out, / for subscript, ^ for superscript.",
	"CITATION":               "Reference citation for the spectrum. Free text or formatted reference.",
	"SOURCEREFERENCE":        "File name, library name, serial number.",
	"SPECTROMETERDATASYSTEM": "Manufacturer, model, software.",
	"INSTRUMENTPARAMETERS":   "Pertinent instrumental settings.",
	"SAMPLINGPROCEDURE":      "MODE first (transmission, ATR, etc.), then accessories, cell, etc.",
	"DATAPROCESSING":         "Background, smoothing, etc.",
	"RESOLUTION":             "Nominal resolution in XUNITS. Single number or R1,X1; R2,X2.",
	"PATHLENGTH":             "Cell path in cm, e.g. 0.012.",
	"XFACTOR":                "Factor to multiply X-values. Often 1.0.",
	"YFACTOR":                "Factor to multiply Y-values. E.g. 0.001 for absorbance.",
	"DELTAX":                 "Nominal X spacing between points.",
	"FIRSTX":                 "First abscissa value in data.",
	"LASTX":                  "Last abscissa value in data.",
	"FIRSTY":                 "First ordinate value in data.",
	"MAXX":                   "Maximum X in spectrum.",
	"MINX":                   "Minimum X in spectrum.",
	"MAXY":                   "Maximum Y in spectrum.",
	"MINY":                   "Minimum Y in spectrum.",
	"NPOINTS":                "Number of data points.",
	"AUDITTRAIL":             "Provenance and processing history. Multi-line free text.",
}

// FormatGuide returns a short formatting hint for label, or false when the
// label has no guide.
func FormatGuide(label string) (string, bool) {
	guide, ok := formatGuides[CanonicalLabel(label)]
	return guide, ok
}
