package jcamp

import (
	"strings"
)

// EntryKind distinguishes header entries.
type EntryKind int

const (
	// EntryMetadata is a ##KEY=value record with continuation lines folded in.
	EntryMetadata EntryKind = iota
	// EntryRawLine is any line kept verbatim: comments, custom labels,
	// structural markers, blank lines.
	EntryRawLine
)

// HeaderEntry is one element of the ordered header. Metadata entries use Key
// and Value; raw lines use Content.
type HeaderEntry struct {
	Kind    EntryKind
	Key     string
	Value   string
	Content string

	// source holds the lines a parsed metadata entry came from. They are
	// re-emitted as long as Key and Value still match what was parsed.
	source      []string
	sourceKey   string
	sourceValue string
}

// NewMetadata builds a metadata entry that serializes as ##key=value.
func NewMetadata(key, value string) HeaderEntry {
	return HeaderEntry{Kind: EntryMetadata, Key: strings.TrimSpace(key), Value: value}
}

// NewRawLine builds a verbatim entry.
func NewRawLine(content string) HeaderEntry {
	return HeaderEntry{Kind: EntryRawLine, Content: content}
}

// IsMetadata reports whether the entry is a labelled record.
func (e HeaderEntry) IsMetadata() bool { return e.Kind == EntryMetadata }

// Modified reports whether a parsed metadata entry has been edited.
func (e HeaderEntry) Modified() bool {
	if e.Kind != EntryMetadata {
		return false
	}
	return len(e.source) == 0 || e.Key != e.sourceKey || e.Value != e.sourceValue
}

// Lines renders the entry as file lines.
func (e HeaderEntry) Lines() []string {
	if e.Kind == EntryRawLine {
		return []string{e.Content}
	}
	if !e.Modified() {
		out := make([]string, len(e.source))
		copy(out, e.source)
		return out
	}
	valueLines := strings.Split(e.Value, "\n")
	out := make([]string, 0, len(valueLines))
	out = append(out, "##"+e.Key+"="+valueLines[0])
	out = append(out, valueLines[1:]...)
	return out
}

// Document is a JCAMP-DX file split into header entries, the numeric data
// block and whatever follows ##END=.
type Document struct {
	Header []HeaderEntry
	// DataBlock runs from the data-start label through ##END= (or EOF),
	// joined with Newline. Empty when the file has no data-start label.
	DataBlock string
	Trailer   []string
	Newline   string

	// dataLine is the zero-based line index of the data-start label.
	dataLine int
}

// splitLines splits on any of \r\n, \r, \n and reports the dominant line
// ending so serialization can restore it.
func splitLines(text string) ([]string, string) {
	newline := "\n"
	switch {
	case strings.Contains(text, "\r\n"):
		newline = "\r\n"
	case strings.Contains(text, "\r"):
		newline = "\r"
	}
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.Split(normalized, "\n"), newline
}

func lineLabel(line string) (string, bool) {
	key, _, ok := parseLabelLine(strings.TrimLeft(line, " \t"))
	return key, ok
}

// ParseDocument splits text into header entries, data block and trailer in a
// single forward pass. It never fails; text without a data-start label is all
// header.
func ParseDocument(text string) Document {
	lines, newline := splitLines(text)

	dataStart := -1
	for i, line := range lines {
		if key, ok := lineLabel(line); ok && IsDataStartLabel(key) {
			dataStart = i
			break
		}
	}

	doc := Document{Newline: newline, dataLine: dataStart}
	if dataStart < 0 {
		doc.Header = scanHeader(lines)
		return doc
	}

	end := len(lines) - 1
	for i := dataStart + 1; i < len(lines); i++ {
		if key, ok := lineLabel(lines[i]); ok && CanonicalLabel(key) == labelEnd {
			end = i
			break
		}
	}

	doc.Header = scanHeader(lines[:dataStart])
	doc.DataBlock = strings.Join(lines[dataStart:end+1], newline)
	if end+1 < len(lines) {
		doc.Trailer = append([]string(nil), lines[end+1:]...)
	}
	return doc
}

// scanHeader folds continuation lines into their label and keeps every other
// line as a raw entry at its original position.
func scanHeader(lines []string) []HeaderEntry {
	entries := make([]HeaderEntry, 0, len(lines))
	var (
		current *HeaderEntry
		parts   []string
	)
	flush := func() {
		if current == nil {
			return
		}
		current.Value = strings.TrimSpace(strings.Join(parts, "\n"))
		current.sourceKey = current.Key
		current.sourceValue = current.Value
		entries = append(entries, *current)
		current = nil
		parts = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if key, value, ok := parseLabelLine(line); ok {
			flush()
			current = &HeaderEntry{Kind: EntryMetadata, Key: key, source: []string{line}}
			parts = []string{value}
			continue
		}
		if strings.HasPrefix(trimmed, "##") || strings.HasPrefix(trimmed, "$$") {
			flush()
			entries = append(entries, NewRawLine(line))
			continue
		}
		if current != nil {
			cont := line
			if strings.HasPrefix(trimmed, "+") {
				cont = trimmed[1:]
			}
			parts = append(parts, strings.TrimRight(cont, " \t"))
			current.source = append(current.source, line)
			continue
		}
		entries = append(entries, NewRawLine(line))
	}
	flush()
	return entries
}

// String re-serializes the document. Unmodified entries reproduce their
// original lines, so String(ParseDocument(t)) == t for any t using a single
// line-ending style.
func (d Document) String() string {
	newline := d.Newline
	if newline == "" {
		newline = "\n"
	}
	parts := make([]string, 0, len(d.Header)+len(d.Trailer)+1)
	for _, entry := range d.Header {
		parts = append(parts, entry.Lines()...)
	}
	if d.DataBlock != "" {
		parts = append(parts, d.DataBlock)
	}
	parts = append(parts, d.Trailer...)
	return strings.Join(parts, newline)
}

// Lookup returns the value of the first metadata entry matching label.
func (d Document) Lookup(label string) (string, bool) {
	canonical := CanonicalLabel(label)
	for _, entry := range d.Header {
		if entry.Kind == EntryMetadata && CanonicalLabel(entry.Key) == canonical {
			return entry.Value, true
		}
	}
	return "", false
}

// Metadata returns the labelled entries in file order.
func (d Document) Metadata() []HeaderEntry {
	out := make([]HeaderEntry, 0, len(d.Header))
	for _, entry := range d.Header {
		if entry.Kind == EntryMetadata {
			out = append(out, entry)
		}
	}
	return out
}

// DataLabel returns the label and value of the data-start line, e.g.
// ("XYDATA", "(X++(Y..Y))").
func (d Document) DataLabel() (string, string, bool) {
	if d.DataBlock == "" {
		return "", "", false
	}
	first, _, _ := strings.Cut(strings.ReplaceAll(d.DataBlock, "\r\n", "\n"), "\n")
	first = strings.TrimSuffix(first, "\r")
	return parseLabelLine(strings.TrimLeft(first, " \t"))
}

// numericLine is a data line with its zero-based position in the file.
type numericLine struct {
	no   int
	text string
}

// numericLines returns the lines of the data block after the data-start
// label, stopping at the next ## record.
func (d Document) numericLines() []numericLine {
	if d.DataBlock == "" {
		return nil
	}
	lines, _ := splitLines(d.DataBlock)
	out := make([]numericLine, 0, len(lines))
	for i := 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, "##") {
			break
		}
		if trimmed == "" || strings.HasPrefix(trimmed, "$$") {
			continue
		}
		if idx := strings.Index(trimmed, "$$"); idx >= 0 {
			trimmed = strings.TrimSpace(trimmed[:idx])
		}
		out = append(out, numericLine{no: d.dataLine + i, text: trimmed})
	}
	return out
}
