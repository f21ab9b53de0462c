package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"irspec/internal/catalog"
	"irspec/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Create or check the irspec configuration",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a commented sample configuration",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := initTarget(targetPath)
			if err != nil {
				return err
			}
			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("%s already exists; pass --overwrite to replace it", target)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("stat %s: %w", target, err)
				}
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("write sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Next: point paths.sample_dir at your reference spectra, then run `irspec catalog scan`.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Where to write the configuration (default ~/.config/irspec/config.toml)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	return cmd
}

func initTarget(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		path, err := config.DefaultConfigPath()
		if err != nil {
			return "", fmt.Errorf("determine default config path: %w", err)
		}
		return path, nil
	}
	path, err := config.ExpandPath(raw)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return path, nil
}

// configReport is the validate summary; it doubles as the --json payload.
type configReport struct {
	ConfigPath   string   `json:"config_path"`
	UsedDefaults bool     `json:"used_defaults"`
	Catalog      string   `json:"catalog"`
	SampleDir    string   `json:"sample_dir"`
	SampleFiles  int      `json:"sample_files"`
	OutputDir    string   `json:"output_dir,omitempty"`
	Extensions   []string `json:"extensions"`
	DuplicateX   string   `json:"duplicate_x"`
	DisplayY     string   `json:"display_y_units"`
	Window       string   `json:"window"`
	Warnings     []string `json:"warnings,omitempty"`
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and the sample directory it points at",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}

			report := configReport{
				ConfigPath: ctx.configPath,
				Catalog:    cfg.CatalogPath(),
				SampleDir:  cfg.Paths.SampleDir,
				OutputDir:  cfg.Paths.OutputDir,
				Extensions: cfg.Catalog.Extensions,
				DuplicateX: cfg.Decoder.DuplicateX,
				DisplayY:   cfg.Display.YUnits,
				Window:     formatRange(cfg.Display.WavenumberMin, cfg.Display.WavenumberMax) + " cm-1",
			}
			if _, err := os.Stat(ctx.configPath); err != nil {
				report.UsedDefaults = true
			}
			files, err := catalog.SpectrumFiles(cfg.Paths.SampleDir, cfg.Catalog.Extensions)
			switch {
			case err != nil:
				report.Warnings = append(report.Warnings, fmt.Sprintf("sample_dir is not readable: %v", err))
			case len(files) == 0:
				report.Warnings = append(report.Warnings, "sample_dir holds no files with a configured extension")
			}
			report.SampleFiles = len(files)

			if ctx.jsonOutput() {
				return writeJSON(cmd, report)
			}
			return printConfigReport(cmd, report)
		},
	}
}

func printConfigReport(cmd *cobra.Command, report configReport) error {
	out := cmd.OutOrStdout()
	configLine := report.ConfigPath
	if report.UsedDefaults {
		configLine += " (not found, defaults used)"
	}
	outputDir := report.OutputDir
	if outputDir == "" {
		outputDir = "beside each input"
	}
	fmt.Fprintln(out, renderKeyValues([][2]string{
		{"Config", configLine},
		{"Catalog", report.Catalog},
		{"Sample dir", report.SampleDir},
		{"Sample files", strconv.Itoa(report.SampleFiles)},
		{"Output dir", outputDir},
		{"Extensions", strings.Join(report.Extensions, " ")},
		{"Duplicate X", report.DuplicateX},
		{"Display Y", report.DisplayY},
		{"Window", report.Window},
	}))
	color := shouldColorize(out)
	for _, w := range report.Warnings {
		fmt.Fprintln(out, colorize("warning: "+w, ansiYellow, color))
	}
	fmt.Fprintln(out, colorize("Configuration valid", ansiGreen, color))
	return nil
}
