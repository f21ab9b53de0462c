// Package jcamp decodes JCAMP-DX infrared spectra and edits their headers.
//
// Decode turns raw file text into a Signal: ascending wavenumbers paired with
// ordinate values, after expanding whichever numeric encoding the data block
// uses (AFFN, PAC, or the ASDF family SQZ/DIF/DUP), applying XFACTOR/YFACTOR,
// and converting wavelength abscissas to wavenumbers. The encoding is not
// declared by the files, so DetectEncoding classifies the data block by its
// character classes and falls back to AFFN when the result is ambiguous.
//
// ParseDocument splits the same text into an ordered list of header entries,
// the data block, and any trailing lines. Entries that are not edited are
// serialized back byte-for-byte, which is what lets the header editing helpers
// (Set, ApplyGroupEdits, AppendAuditTrail) rewrite labels without disturbing
// anything else in the file.
//
// Only ErrNoSpectralData is returned as a failure. Everything else found in
// non-conformant files in the wild is reported as a Warning and decoding
// continues on a best-effort basis.
package jcamp
