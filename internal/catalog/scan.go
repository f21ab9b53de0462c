package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"irspec/internal/logging"
	"irspec/internal/textutil"
)

// Scan catalogs every spectrum file directly inside dir, in file name order.
// Files that fail to decode are still cataloged, with zero points and the
// decode error recorded. Only another running scan or a database failure
// aborts the run.
func (s *Store) Scan(ctx context.Context, dir string) (*ScanResult, error) {
	ctx = ensureContext(ctx)

	lock := flock.New(s.lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire scan lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w (lock %s)", ErrScanInProgress, s.lockPath)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Warn("failed to release scan lock", logging.Error(err))
		}
	}()

	files, err := s.spectrumFiles(dir)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{
		ScanID:    uuid.NewString(),
		Directory: dir,
		StartedAt: time.Now().UTC(),
	}
	logger := s.logger.With(logging.String(logging.FieldScanID, result.ScanID))
	logger.Info("catalog scan started",
		logging.String(logging.FieldEventType, "catalog_scan_started"),
		logging.String("directory", dir),
		logging.Int("files", len(files)),
	)

	if _, err := s.execWithRetry(ctx,
		"INSERT INTO scans (id, directory, started_at) VALUES (?, ?, ?)",
		result.ScanID, dir, result.StartedAt.Format(time.RFC3339Nano),
	); err != nil {
		return nil, fmt.Errorf("record scan: %w", err)
	}

	seen := make(map[string]struct{}, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			result.Failed++
			logging.WarnWithContext(logger, "spectrum file unreadable", "catalog_scan_file_unreadable",
				logging.String(logging.FieldFile, path),
				logging.Error(err),
				logging.String(logging.FieldImpact, "file skipped"),
				logging.String(logging.FieldErrorHint, "check file permissions"),
			)
			continue
		}

		content := string(data)
		entry := describe(path, content, s.decodeOpts)
		id := textutil.CatalogID(entry.CASNumber, entry.FileName)
		if _, dup := seen[id]; dup {
			id = textutil.UniqueID(id, entry.FileName)
		} else {
			seen[id] = struct{}{}
		}
		entry.ID = id
		entry.ScanID = result.ScanID
		entry.UpdatedAt = time.Now().UTC()

		if entry.DecodeError != "" {
			result.Failed++
			logging.WarnWithContext(logger, "spectrum did not decode", "catalog_scan_decode_failed",
				logging.String(logging.FieldFile, path),
				logging.String("id", id),
				logging.String("reason", entry.DecodeError),
				logging.String(logging.FieldImpact, "cataloged without spectral points"),
				logging.String(logging.FieldErrorHint, "run 'irspec decode' on the file for details"),
			)
		}

		if err := s.upsert(ctx, entry, content); err != nil {
			return nil, err
		}
		logger.Debug("spectrum cataloged",
			logging.String("id", id),
			logging.String(logging.FieldFile, path),
			logging.Int("points", entry.Points),
		)
		result.Entries = append(result.Entries, entry)
	}

	elapsed := time.Since(result.StartedAt)
	result.Duration = elapsed.Round(time.Millisecond).String()
	if _, err := s.execWithRetry(ctx,
		"UPDATE scans SET finished_at = ?, file_count = ?, failed_count = ? WHERE id = ?",
		time.Now().UTC().Format(time.RFC3339Nano), len(result.Entries), result.Failed, result.ScanID,
	); err != nil {
		return nil, fmt.Errorf("finish scan: %w", err)
	}

	logger.Info("catalog scan finished",
		logging.String(logging.FieldEventType, "catalog_scan_finished"),
		logging.Int("cataloged", len(result.Entries)),
		logging.Int("failed", result.Failed),
		logging.Duration("elapsed", elapsed),
	)
	return result, nil
}

func (s *Store) spectrumFiles(dir string) ([]string, error) {
	return SpectrumFiles(dir, s.extensions)
}

// SpectrumFiles lists regular files in dir whose lower-cased extension is one
// of extensions, sorted by name.
func SpectrumFiles(dir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read sample directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !slices.Contains(extensions, ext) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	slices.Sort(files)
	return files, nil
}
