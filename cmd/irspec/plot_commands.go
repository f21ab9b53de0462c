package main

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"irspec/internal/geometry"
)

func newPeaksCommand(ctx *commandContext) *cobra.Command {
	var (
		minFlag   float64
		maxFlag   float64
		unitsFlag string
	)

	cmd := &cobra.Command{
		Use:   "peaks FILE",
		Short: "List absorption peaks inside a wavenumber window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			_, result, err := decodeSpectrumFile(ctx, args[0])
			if err != nil {
				return err
			}
			sig := result.Signal
			display, err := resolveYUnits(unitsFlag, sig.YUnits)
			if err != nil {
				return err
			}
			lo, hi := cfg.Display.WavenumberMin, cfg.Display.WavenumberMax
			if cmd.Flags().Changed("min") {
				lo = minFlag
			}
			if cmd.Flags().Changed("max") {
				hi = maxFlag
			}

			peaks := geometry.FindPeaks(sig.X, sig.DisplayY(display), display, lo, hi)
			if ctx.jsonOutput() {
				if peaks == nil {
					peaks = []geometry.Extremum{}
				}
				return writeJSON(cmd, map[string]any{"title": result.Title, "y_units": display, "peaks": peaks})
			}

			out := cmd.OutOrStdout()
			if len(peaks) == 0 {
				fmt.Fprintf(out, "No peaks between %s cm-1\n", formatRange(lo, hi))
				return nil
			}
			rows := make([][]string, len(peaks))
			for i, p := range peaks {
				rows[i] = []string{strconv.Itoa(i + 1), formatNumber(p.Wavenumber), formatNumber(p.Value)}
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Wavenumber", display.String()}, rows,
				[]columnAlignment{alignRight, alignRight, alignRight}))
			return nil
		},
	}

	cmd.Flags().Float64Var(&minFlag, "min", 0, "Lowest wavenumber (default display.wavenumber_min)")
	cmd.Flags().Float64Var(&maxFlag, "max", 0, "Highest wavenumber (default display.wavenumber_max)")
	cmd.Flags().StringVar(&unitsFlag, "units", "", "Ordinate to search: transmittance or absorbance (default file units)")
	return cmd
}

type pathOutput struct {
	File  string               `json:"file"`
	Title string               `json:"title"`
	Panel geometry.Panel       `json:"panel"`
	D     string               `json:"d"`
	Ticks pathAxisTicks        `json:"ticks"`
	Mode  geometry.OverlayMode `json:"overlay_mode"`
}

type pathAxisTicks struct {
	Major []float64 `json:"major"`
	Minor []float64 `json:"minor"`
}

func newPathCommand(ctx *commandContext) *cobra.Command {
	var (
		piecewise bool
		width     float64
		height    float64
		grid      int
		unitsFlag string
		normalize bool
		scale     float64
		modeFlag  string
		minFlag   float64
		maxFlag   float64
	)

	cmd := &cobra.Command{
		Use:   "path FILE...",
		Short: "Render spectra as SVG path data",
		Long: "Resamples each spectrum onto an even wavenumber grid and prints the SVG path\n" +
			"\"d\" attribute, one line per file. Several files share the plot according to\n" +
			"the overlay mode.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			flags := cmd.Flags()
			if !flags.Changed("piecewise") {
				piecewise = cfg.Display.Piecewise
			}
			if !flags.Changed("width") {
				width = cfg.Display.Width
			}
			if !flags.Changed("height") {
				height = cfg.Display.Height
			}
			if !flags.Changed("grid") {
				grid = cfg.Display.GridPoints
			}
			if !flags.Changed("normalize") {
				normalize = cfg.Display.NormalizeY
			}
			mode := cfg.OverlayMode()
			if flags.Changed("overlay") {
				parsed, err := geometry.ParseOverlayMode(modeFlag)
				if err != nil {
					return err
				}
				mode = parsed
			}
			display, err := resolveYUnits(unitsFlag, cfg.DisplayYUnits())
			if err != nil {
				return err
			}
			if width <= 0 || height <= 0 || grid < 2 {
				return errors.New("width and height must be positive and grid at least 2")
			}

			type loaded struct {
				file, title string
				x, y        []float64
			}
			spectra := make([]loaded, 0, len(args))
			dataMin, dataMax := math.Inf(1), math.Inf(-1)
			for _, arg := range args {
				path, result, err := decodeSpectrumFile(ctx, arg)
				if err != nil {
					return err
				}
				sig := result.Signal
				ys := geometry.ScaleY(sig.DisplayY(display), scale, display)
				if normalize {
					ys = geometry.NormalizeY(ys)
				}
				spectra = append(spectra, loaded{file: path, title: result.Title, x: sig.X, y: ys})
				dataMin = math.Min(dataMin, sig.MinWavenumber())
				dataMax = math.Max(dataMax, sig.MaxWavenumber())
			}

			lo, hi := cfg.Display.WavenumberMin, cfg.Display.WavenumberMax
			if flags.Changed("min") {
				lo = minFlag
			}
			if flags.Changed("max") {
				hi = maxFlag
			}
			if clippedLo, clippedHi := math.Max(lo, dataMin), math.Min(hi, dataMax); clippedLo < clippedHi {
				lo, hi = clippedLo, clippedHi
			}

			wavenumbers := geometry.Grid(lo, hi, grid)
			resampled := make([][]float64, len(spectra))
			for i, s := range spectra {
				resampled[i] = geometry.Resample(s.x, s.y, wavenumbers)
			}
			plot := geometry.Rect{Width: width, Height: height}
			panels := geometry.Layout(plot, resampled, geometry.LayoutOptions{
				Mode:       mode,
				Gap:        cfg.Display.DistributedGap,
				MinX:       lo,
				MaxX:       hi,
				Normalized: normalize,
				YMinOffset: cfg.Display.YMinOffset,
			})
			major, minor := geometry.AxisTicks(lo, hi)

			outputs := make([]pathOutput, len(spectra))
			for i, s := range spectra {
				points := geometry.SpectrumToPath(s.x, s.y, wavenumbers, panels[i].Rect, panels[i].Range, piecewise)
				outputs[i] = pathOutput{
					File:  s.file,
					Title: s.title,
					Panel: panels[i],
					D:     geometry.SmoothPathD(points),
					Ticks: pathAxisTicks{Major: major, Minor: minor},
					Mode:  mode,
				}
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, outputs)
			}
			out := cmd.OutOrStdout()
			for _, o := range outputs {
				if len(outputs) > 1 {
					fmt.Fprintf(out, "# %s (%s)\n", o.Title, filepath.Base(o.File))
				}
				fmt.Fprintln(out, o.D)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&piecewise, "piecewise", true, "Split the axis at 2000 cm-1 (default display.piecewise)")
	cmd.Flags().Float64Var(&width, "width", 0, "Plot width (default display.width)")
	cmd.Flags().Float64Var(&height, "height", 0, "Plot height (default display.height)")
	cmd.Flags().IntVar(&grid, "grid", geometry.DefaultGridPoints, "Resampling grid points (default display.grid_points)")
	cmd.Flags().StringVar(&unitsFlag, "units", "", "Display ordinate: transmittance or absorbance (default display.y_units)")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Rescale each spectrum onto [0, 1]")
	cmd.Flags().Float64Var(&scale, "scale", 1, "Vertical stretch factor")
	cmd.Flags().StringVar(&modeFlag, "overlay", "", "Overlay mode: stacked or distributed (default display.overlay_mode)")
	cmd.Flags().Float64Var(&minFlag, "min", 0, "Lowest wavenumber (default display.wavenumber_min)")
	cmd.Flags().Float64Var(&maxFlag, "max", 0, "Highest wavenumber (default display.wavenumber_max)")
	return cmd
}

func newTicksCommand(ctx *commandContext) *cobra.Command {
	var maxTicks int
	var axis bool

	cmd := &cobra.Command{
		Use:         "ticks MIN MAX",
		Short:       "Compute axis ticks for a range",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse MIN: %w", err)
			}
			hi, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse MAX: %w", err)
			}

			if axis {
				major, minor := geometry.AxisTicks(lo, hi)
				if ctx.jsonOutput() {
					return writeJSON(cmd, pathAxisTicks{Major: nonNil(major), Minor: nonNil(minor)})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "major: %s\n", joinNumbers(major))
				fmt.Fprintf(out, "minor: %s\n", joinNumbers(minor))
				return nil
			}

			ticks := geometry.NiceTicks(lo, hi, maxTicks)
			if ctx.jsonOutput() {
				return writeJSON(cmd, nonNil(ticks))
			}
			fmt.Fprintln(cmd.OutOrStdout(), joinNumbers(ticks))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxTicks, "max-ticks", 6, "Approximate upper bound on tick count")
	cmd.Flags().BoolVar(&axis, "axis", false, "Wavenumber axis ticks (majors every 500, minors every 100)")
	return cmd
}

func nonNil(values []float64) []float64 {
	if values == nil {
		return []float64{}
	}
	return values
}

func joinNumbers(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, " ")
}
