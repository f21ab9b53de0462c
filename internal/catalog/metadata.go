package catalog

import (
	"path/filepath"
	"strings"

	"irspec/internal/jcamp"
	"irspec/internal/textutil"
	"irspec/internal/units"
)

// Descriptive labels lifted into catalog columns.
const (
	labelTitle            = "TITLE"
	labelCAS              = "CAS REGISTRY NO"
	labelNames            = "NAMES"
	labelFunctionalGroups = "FUNCTIONAL GROUPS"
	labelOwner            = "OWNER"
	labelOrigin           = "ORIGIN"
	labelCitation         = "CITATION"
	labelXUnits           = "XUNITS"
	labelYUnits           = "YUNITS"
)

// describe builds an entry from one file without touching the database.
// Decode failures are recorded on the entry, never returned.
func describe(path, content string, opts []jcamp.Option) Entry {
	fileName := filepath.Base(path)
	doc := jcamp.ParseDocument(content)
	lookup := func(label string) string {
		value, _ := doc.Lookup(label)
		return strings.TrimSpace(value)
	}

	entry := Entry{
		FileName:         fileName,
		SourcePath:       path,
		Title:            firstLine(lookup(labelTitle)),
		Names:            lookup(labelNames),
		FunctionalGroups: splitList(lookup(labelFunctionalGroups)),
		Owner:            lookup(labelOwner),
		Origin:           lookup(labelOrigin),
		Citation:         lookup(labelCitation),
	}
	if entry.Title == "" {
		entry.Title = textutil.BaseName(fileName)
	}
	if fields := strings.Fields(lookup(labelCAS)); len(fields) > 0 {
		entry.CASNumber = fields[0]
	} else if cas, ok := textutil.FindCAS(fileName); ok {
		entry.CASNumber = cas
	}

	result, err := jcamp.Decode(content, opts...)
	if err != nil {
		entry.DecodeError = err.Error()
		entry.XUnits = units.ClassifyXUnits(lookup(labelXUnits)).String()
		entry.YUnits = units.ClassifyYUnits(lookup(labelYUnits)).String()
		return entry
	}
	sig := result.Signal
	entry.XUnits = sig.XUnits.String()
	entry.YUnits = sig.YUnits.String()
	entry.Points = sig.Len()
	entry.MinWavenumber = sig.MinWavenumber()
	entry.MaxWavenumber = sig.MaxWavenumber()
	entry.Encoding = string(result.Encoding.Scheme)
	entry.WarningCount = len(result.Warnings)
	return entry
}

func firstLine(value string) string {
	line, _, _ := strings.Cut(value, "\n")
	return strings.TrimSpace(line)
}

func splitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
