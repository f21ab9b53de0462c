// Package textutil provides filename and identifier sanitizing for catalog
// entries and exported spectrum files.
package textutil
