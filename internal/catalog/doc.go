// Package catalog persists the sample-spectrum library in SQLite.
//
// A scan walks one directory of JCAMP-DX files, extracts the descriptive
// header labels (title, CAS registry number, names, functional groups,
// owner, origin, citation), decodes each spectrum for its point count and
// wavenumber span, and upserts one entry per file. The file text itself is
// stored so entries stay usable after the source file moves.
//
// Scans are serialized across processes by a lock file; readers rely on the
// WAL journal and never block a running scan.
package catalog
