package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"irspec/internal/config"
	"irspec/internal/jcamp"
	"irspec/internal/textutil"
	"irspec/internal/units"
)

// readSpectrumFile expands path and returns it with the file's text.
func readSpectrumFile(path string) (string, string, error) {
	expanded, err := config.ExpandPath(strings.TrimSpace(path))
	if err != nil {
		return "", "", fmt.Errorf("resolve %q: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return "", "", fmt.Errorf("read spectrum: %w", err)
	}
	return expanded, string(data), nil
}

// decodeSpectrumFile reads and decodes path with the configured options.
func decodeSpectrumFile(ctx *commandContext, path string) (string, *jcamp.Result, error) {
	expanded, text, err := readSpectrumFile(path)
	if err != nil {
		return "", nil, err
	}
	result, err := jcamp.Decode(text, ctx.configValue().DecodeOptions()...)
	if err != nil {
		return "", nil, fmt.Errorf("decode %s: %w", filepath.Base(expanded), err)
	}
	return expanded, result, nil
}

// exportPath picks where a derived file is written: override when given,
// else <output_dir or input dir>/<base><suffix><ext>.
func exportPath(cfg *config.Config, input, suffix, ext, override string) (string, error) {
	if strings.TrimSpace(override) != "" {
		return config.ExpandPath(override)
	}
	dir := cfg.Paths.OutputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, textutil.DerivedName(input, suffix, ext)), nil
}

// resolveYUnits parses a --units flag, falling back to fallback when empty.
func resolveYUnits(raw string, fallback units.YUnits) (units.YUnits, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	kind, ok := units.ParseYUnits(raw)
	if !ok {
		return fallback, fmt.Errorf("unknown y units %q: want transmittance or absorbance", raw)
	}
	return kind, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func formatRange(lo, hi float64) string {
	return formatNumber(lo) + ".." + formatNumber(hi)
}

// printWarnings lists decode warnings below a summary, in yellow on terminals.
func printWarnings(out io.Writer, warnings []jcamp.Warning, color bool) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%d warning(s):\n", len(warnings))
	for _, w := range warnings {
		fmt.Fprintln(out, colorize("  - "+w.String(), ansiYellow, color))
	}
}
