// Package fileutil writes exported spectrum files: single files atomically,
// batches as a zip bundle.
package fileutil
