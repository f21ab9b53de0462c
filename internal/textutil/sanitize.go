package textutil

import (
	"path/filepath"
	"regexp"
	"strings"
)

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters are removed. The result is trimmed of leading/trailing whitespace.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// SanitizeID replaces every character other than ASCII letters, digits and
// hyphens with a hyphen. Returns "unknown" for empty input.
func SanitizeID(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return '-'
	}, value)
}

var casPattern = regexp.MustCompile(`\d+-\d+-\d+`)

// FindCAS returns the first CAS registry number embedded in s, such as the
// "141-78-6" in "ethyl_acetate_141-78-6.jdx".
func FindCAS(s string) (string, bool) {
	m := casPattern.FindString(s)
	return m, m != ""
}

// CatalogID derives the identifier of a spectrum: the CAS number with
// whitespace removed when known, otherwise the sanitized base file name.
func CatalogID(cas, fileName string) string {
	if id := strings.Join(strings.Fields(cas), ""); id != "" {
		return SanitizeID(id)
	}
	return SanitizeID(BaseName(fileName))
}

// UniqueID disambiguates an identifier already taken by another file.
func UniqueID(id, fileName string) string {
	return SanitizeID(id + "-" + filepath.Base(fileName))
}

// BaseName returns the file name without directory or extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DerivedName builds "<base><suffix><ext>" for an exported file, e.g.
// DerivedName("in/acetone.dx", "_decoded", ".jdx") is "acetone_decoded.jdx".
func DerivedName(path, suffix, ext string) string {
	return SanitizeFileName(BaseName(path)+suffix) + ext
}
