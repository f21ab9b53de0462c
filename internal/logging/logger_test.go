package logging_test

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"irspec/internal/config"
	"irspec/internal/logging"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("hello from test")

	content := readLog(t, filepath.Join(cfg.Paths.LogDir, "irspec.log"))
	if !strings.Contains(content, "hello from test") {
		t.Fatalf("expected message in log file, got %q", content)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}, ErrorOutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")

	if content := readLog(t, logPath); strings.Contains(content, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-debug.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("message with caller")

	if content := readLog(t, logPath); !strings.Contains(content, "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestConsoleLoggerFormatsComponentAndCorrelation(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")
	base, err := logging.New(logging.Options{Format: "console", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithCorrelationID(context.Background(), "0123456789abcdef")
	logger := logging.WithContext(ctx, logging.NewComponentLogger(base, "catalog"))
	logger.Info("scan complete", logging.Int("files", 3), logging.String("dir", "/tmp/my spectra"))

	content := readLog(t, logPath)
	for _, want := range []string{" INFO catalog: scan complete [01234567]", "files=3", `dir="/tmp/my spectra"`} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in %q", want, content)
		}
	}
}

func TestJSONLoggerUsesShortKeys(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")
	logger, err := logging.New(logging.Options{Format: "json", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.WarnWithContext(logger, "file skipped", "catalog_scan_file_failed", logging.String(logging.FieldFile, "a.jdx"))

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readLog(t, logPath))), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["level"] != "warn" || entry["msg"] != "file skipped" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key: %v", entry)
	}
	for _, key := range []string{logging.FieldEventType, logging.FieldErrorHint, logging.FieldImpact} {
		if _, ok := entry[key]; !ok {
			t.Fatalf("expected %s to be injected: %v", key, entry)
		}
	}
}

func TestJSONLoggerEncodesNonFiniteValues(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json-nan.log")
	logger, err := logging.New(logging.Options{Format: "json", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("peak search",
		logging.Float64("min_wavenumber", math.NaN()),
		logging.Float64("max_wavenumber", math.Inf(1)),
		logging.Float64("step", 0.5),
		logging.String(logging.FieldFile, ""),
	)

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readLog(t, logPath))), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["min_wavenumber"] != "NaN" || entry["max_wavenumber"] != "+Inf" {
		t.Fatalf("unexpected non-finite encoding: %v", entry)
	}
	if entry["step"] != 0.5 {
		t.Fatalf("finite value changed: %v", entry)
	}
	if _, ok := entry[logging.FieldFile]; ok {
		t.Fatalf("blank attribute should be dropped: %v", entry)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestCorrelationIDGenerated(t *testing.T) {
	ctx := logging.WithCorrelationID(context.Background(), "")
	id, ok := logging.CorrelationIDFromContext(ctx)
	if !ok || len(id) != 36 {
		t.Fatalf("expected generated UUID, got %q ok=%v", id, ok)
	}
	if _, ok := logging.CorrelationIDFromContext(context.Background()); ok {
		t.Fatal("plain context should carry no correlation id")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("nop logger should not be enabled")
	}
}
