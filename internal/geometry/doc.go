// Package geometry maps decoded spectra into plot coordinates.
//
// The horizontal axis follows the IR convention: wavenumber decreases left to
// right and, when the visible window straddles IRBreak (2000 cm⁻¹), each side
// of the break takes exactly half of the plot width. WavenumberToNormX and
// NormXToWavenumber are exact inverses of each other over the visible range.
//
// Every function here is pure and total. Degenerate ranges and empty inputs
// produce boundary values rather than errors.
package geometry
