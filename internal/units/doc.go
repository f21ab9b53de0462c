// Package units classifies and converts the axis units found in infrared
// spectra.
//
// JCAMP-DX files label their abscissa as wavenumbers (1/CM) or wavelengths
// (MICROMETERS, NANOMETERS) and their ordinate as transmittance or
// absorbance, with a long tail of spellings. Everything downstream works in
// wavenumbers plus one chosen display ordinate, so the conversion happens
// once at ingestion through this package.
//
// All functions are pure and total: empty or unknown strings resolve to
// explicit defaults and degenerate numeric input clamps instead of failing.
package units
