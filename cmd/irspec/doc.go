// Package main hosts the irspec CLI entrypoint and command graph.
//
// The Cobra-based command tree decodes JCAMP-DX infrared spectra, exports
// compressed data blocks as plain AFFN, lists peaks, renders SVG path data,
// edits headers one file or a whole batch at a time, and maintains the
// SQLite sample catalog. Configuration resolution and structured logging
// setup live here so subcommands only format results.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
