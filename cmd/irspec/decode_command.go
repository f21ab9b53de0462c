package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"irspec/internal/fileutil"
	"irspec/internal/jcamp"
)

type decodeSummary struct {
	File          string               `json:"file"`
	Title         string               `json:"title"`
	XUnits        string               `json:"x_units"`
	YUnits        string               `json:"y_units"`
	Points        int                  `json:"points"`
	MinWavenumber float64              `json:"min_wavenumber"`
	MaxWavenumber float64              `json:"max_wavenumber"`
	Encoding      jcamp.EncodingReport `json:"encoding"`
	Warnings      []jcamp.Warning      `json:"warnings"`
	X             []float64            `json:"x,omitempty"`
	Y             []float64            `json:"y,omitempty"`
}

func newDecodeCommand(ctx *commandContext) *cobra.Command {
	var showPoints bool

	cmd := &cobra.Command{
		Use:   "decode FILE",
		Short: "Decode a JCAMP-DX file and summarize the spectrum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, result, err := decodeSpectrumFile(ctx, args[0])
			if err != nil {
				return err
			}
			sig := result.Signal
			summary := decodeSummary{
				File:          path,
				Title:         result.Title,
				XUnits:        sig.XUnits.String(),
				YUnits:        sig.YUnits.String(),
				Points:        sig.Len(),
				MinWavenumber: sig.MinWavenumber(),
				MaxWavenumber: sig.MaxWavenumber(),
				Encoding:      result.Encoding,
				Warnings:      result.Warnings,
			}
			if summary.Warnings == nil {
				summary.Warnings = []jcamp.Warning{}
			}
			if showPoints {
				summary.X = sig.X
				summary.Y = sig.Y
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			encoding := string(result.Encoding.Scheme)
			if result.Encoding.Confidence == jcamp.Ambiguous {
				encoding += " (ambiguous)"
			}
			fmt.Fprintln(out, renderKeyValues([][2]string{
				{"Title", summary.Title},
				{"File", filepath.Base(path)},
				{"X units", summary.XUnits},
				{"Y units", summary.YUnits},
				{"Points", fmt.Sprintf("%d", summary.Points)},
				{"Range (cm-1)", formatRange(summary.MinWavenumber, summary.MaxWavenumber)},
				{"Encoding", encoding},
			}))
			if showPoints {
				rows := make([][]string, sig.Len())
				for i := range sig.X {
					rows[i] = []string{formatNumber(sig.X[i]), formatNumber(sig.Y[i])}
				}
				fmt.Fprintln(out, renderTable([]string{"X", sig.YUnits.String()}, rows, []columnAlignment{alignRight, alignRight}))
			}
			printWarnings(out, result.Warnings, shouldColorize(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showPoints, "points", false, "Print every decoded point")
	return cmd
}

func newAFFNCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "affn FILE",
		Short: "Rewrite a compressed data block as plain (XY..XY) pairs",
		Long: "Expands SQZ/DIF/DUP or PAC compressed data into one \"x, y\" pair per line and\n" +
			"writes <base>_decoded.jdx. Header values, including XFACTOR and YFACTOR, are kept.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, text, err := readSpectrumFile(args[0])
			if err != nil {
				return err
			}
			expanded, ok := jcamp.ExpandToAFFN(text)
			if !ok {
				return fmt.Errorf("%s: data block is not compressed or holds no points", filepath.Base(input))
			}
			target, err := exportPath(ctx.configValue(), input, "_decoded", ".jdx", outputFlag)
			if err != nil {
				return err
			}
			if err := fileutil.WriteFileAtomic(target, []byte(expanded), 0o644); err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]string{"input": input, "output": target})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file (default <base>_decoded.jdx)")
	return cmd
}
