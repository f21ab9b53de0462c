package jcamp

import (
	"fmt"
	"strings"
)

// Edit is a label/value pair applied to a header.
type Edit struct {
	Key   string
	Value string
}

// ParseEdit splits "KEY=value".
func ParseEdit(raw string) (Edit, error) {
	key, value, ok := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return Edit{}, fmt.Errorf("invalid edit %q: expected KEY=value", raw)
	}
	return Edit{Key: key, Value: strings.TrimSpace(value)}, nil
}

func (d Document) indexOf(label string) int {
	canonical := CanonicalLabel(label)
	for i, entry := range d.Header {
		if entry.Kind == EntryMetadata && CanonicalLabel(entry.Key) == canonical {
			return i
		}
	}
	return -1
}

// cloneHeader copies the entry slice so edits never write through to a
// slice another Document still holds.
func (d *Document) cloneHeader(extra int) []HeaderEntry {
	out := make([]HeaderEntry, len(d.Header), len(d.Header)+extra)
	copy(out, d.Header)
	return out
}

// Set replaces the value of the first entry matching key, or appends a new
// entry when none exists.
func (d *Document) Set(key, value string) {
	header := d.cloneHeader(1)
	if idx := d.indexOf(key); idx >= 0 {
		header[idx].Value = value
	} else {
		header = append(header, NewMetadata(key, value))
	}
	d.Header = header
}

// Add appends a new entry and fails when the label is already present.
func (d *Document) Add(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("add label: empty key")
	}
	if d.indexOf(key) >= 0 {
		return fmt.Errorf("add label %q: %w", key, ErrLabelExists)
	}
	header := d.cloneHeader(1)
	d.Header = append(header, NewMetadata(key, value))
	return nil
}

// Remove drops every entry matching key and reports whether any existed.
func (d *Document) Remove(key string) bool {
	canonical := CanonicalLabel(key)
	header := make([]HeaderEntry, 0, len(d.Header))
	removed := false
	for _, entry := range d.Header {
		if entry.Kind == EntryMetadata && CanonicalLabel(entry.Key) == canonical {
			removed = true
			continue
		}
		header = append(header, entry)
	}
	if removed {
		d.Header = header
	}
	return removed
}

// ApplyGroupEdits sets each non-blank edit on the document: labels already
// present are replaced in place, the rest are appended in edit order. Blank
// values are skipped so a batch form can leave fields untouched.
func (d *Document) ApplyGroupEdits(edits []Edit) {
	pending := make([]Edit, 0, len(edits))
	for _, edit := range edits {
		if strings.TrimSpace(edit.Value) == "" || strings.TrimSpace(edit.Key) == "" {
			continue
		}
		pending = append(pending, edit)
	}
	if len(pending) == 0 {
		return
	}

	header := d.cloneHeader(len(pending))
	applied := make([]bool, len(pending))
	for i := range header {
		if header[i].Kind != EntryMetadata {
			continue
		}
		for j, edit := range pending {
			if applied[j] || !SameLabel(header[i].Key, edit.Key) {
				continue
			}
			header[i].Value = edit.Value
			applied[j] = true
			break
		}
	}
	for j, edit := range pending {
		if !applied[j] {
			header = append(header, NewMetadata(edit.Key, edit.Value))
		}
	}
	d.Header = header
}

// AuditTrail returns the current AUDIT TRAIL value.
func (d Document) AuditTrail() string {
	value, _ := d.Lookup(labelAuditTrail)
	return value
}

// AppendAuditTrail appends entries to AUDIT TRAIL, one per line, creating the
// label when the file has none.
func (d *Document) AppendAuditTrail(entries ...string) {
	additions := make([]string, 0, len(entries))
	for _, entry := range entries {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			additions = append(additions, trimmed)
		}
	}
	if len(additions) == 0 {
		return
	}
	combined := strings.Join(additions, "\n")
	if idx := d.indexOf(labelAuditTrail); idx >= 0 {
		header := d.cloneHeader(0)
		if existing := header[idx].Value; existing != "" {
			combined = existing + "\n" + combined
		}
		header[idx].Value = combined
		d.Header = header
		return
	}
	header := d.cloneHeader(1)
	d.Header = append(header, NewMetadata("AUDIT TRAIL", combined))
}

// WithDataBlock returns a copy of the document with its data block replaced.
// Line endings in block are converted to the document's style.
func (d Document) WithDataBlock(block string) Document {
	lines, _ := splitLines(block)
	newline := d.Newline
	if newline == "" {
		newline = "\n"
	}
	out := d
	out.Header = d.cloneHeader(0)
	out.DataBlock = strings.Join(lines, newline)
	out.Trailer = append([]string(nil), d.Trailer...)
	return out
}
