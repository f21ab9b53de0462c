package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const entryColumns = "id, file_name, source_path, title, cas_number, names, functional_groups_json, owner, origin, citation, x_units, y_units, point_count, min_wavenumber, max_wavenumber, encoding, warning_count, decode_error, scan_id, updated_at"

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		entry      Entry
		cas        sql.NullString
		names      sql.NullString
		groupsJSON string
		owner      sql.NullString
		origin     sql.NullString
		citation   sql.NullString
		minWave    sql.NullFloat64
		maxWave    sql.NullFloat64
		encoding   sql.NullString
		decodeErr  sql.NullString
		scanID     sql.NullString
		updatedRaw string
	)
	if err := scanner.Scan(
		&entry.ID,
		&entry.FileName,
		&entry.SourcePath,
		&entry.Title,
		&cas,
		&names,
		&groupsJSON,
		&owner,
		&origin,
		&citation,
		&entry.XUnits,
		&entry.YUnits,
		&entry.Points,
		&minWave,
		&maxWave,
		&encoding,
		&entry.WarningCount,
		&decodeErr,
		&scanID,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	entry.CASNumber = cas.String
	entry.Names = names.String
	entry.Owner = owner.String
	entry.Origin = origin.String
	entry.Citation = citation.String
	entry.MinWavenumber = minWave.Float64
	entry.MaxWavenumber = maxWave.Float64
	entry.Encoding = encoding.String
	entry.DecodeError = decodeErr.String
	entry.ScanID = scanID.String
	if err := json.Unmarshal([]byte(groupsJSON), &entry.FunctionalGroups); err != nil {
		return nil, fmt.Errorf("decode functional groups for %s: %w", entry.ID, err)
	}
	if entry.FunctionalGroups == nil {
		entry.FunctionalGroups = []string{}
	}
	if ts, err := time.Parse(time.RFC3339Nano, updatedRaw); err == nil {
		entry.UpdatedAt = ts
	}
	return &entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableFloat(value float64, ok bool) any {
	if !ok {
		return nil
	}
	return value
}

// upsert inserts or replaces the entry with the same id.
func (s *Store) upsert(ctx context.Context, entry Entry, content string) error {
	groups := entry.FunctionalGroups
	if groups == nil {
		groups = []string{}
	}
	groupsJSON, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("encode functional groups: %w", err)
	}
	decoded := entry.Decoded()
	_, err = s.execWithRetry(ctx,
		`INSERT INTO spectra (
            id, file_name, source_path, title, cas_number, names, functional_groups_json,
            owner, origin, citation, x_units, y_units, point_count, min_wavenumber,
            max_wavenumber, encoding, warning_count, decode_error, content, scan_id, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            file_name = excluded.file_name,
            source_path = excluded.source_path,
            title = excluded.title,
            cas_number = excluded.cas_number,
            names = excluded.names,
            functional_groups_json = excluded.functional_groups_json,
            owner = excluded.owner,
            origin = excluded.origin,
            citation = excluded.citation,
            x_units = excluded.x_units,
            y_units = excluded.y_units,
            point_count = excluded.point_count,
            min_wavenumber = excluded.min_wavenumber,
            max_wavenumber = excluded.max_wavenumber,
            encoding = excluded.encoding,
            warning_count = excluded.warning_count,
            decode_error = excluded.decode_error,
            content = excluded.content,
            scan_id = excluded.scan_id,
            updated_at = excluded.updated_at`,
		entry.ID,
		entry.FileName,
		entry.SourcePath,
		entry.Title,
		nullableString(entry.CASNumber),
		nullableString(entry.Names),
		string(groupsJSON),
		nullableString(entry.Owner),
		nullableString(entry.Origin),
		nullableString(entry.Citation),
		entry.XUnits,
		entry.YUnits,
		entry.Points,
		nullableFloat(entry.MinWavenumber, decoded),
		nullableFloat(entry.MaxWavenumber, decoded),
		nullableString(entry.Encoding),
		entry.WarningCount,
		nullableString(entry.DecodeError),
		content,
		nullableString(entry.ScanID),
		entry.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", entry.ID, err)
	}
	return nil
}

// List returns every entry ordered by title, then id.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+entryColumns+" FROM spectra ORDER BY title COLLATE NOCASE, id")
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// Get returns the entry with id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, "SELECT "+entryColumns+" FROM spectra WHERE id = ?", id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get entry %s: %w", id, err)
	}
	return entry, nil
}

// Content returns the stored JCAMP-DX text of an entry.
func (s *Store) Content(ctx context.Context, id string) (string, error) {
	ctx = ensureContext(ctx)
	var content string
	err := s.db.QueryRowContext(ctx, "SELECT content FROM spectra WHERE id = ?", id).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return "", fmt.Errorf("read content %s: %w", id, err)
	}
	return content, nil
}

// Remove deletes the entry with id.
func (s *Store) Remove(ctx context.Context, id string) error {
	res, err := s.execWithRetry(ctx, "DELETE FROM spectra WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("remove %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
