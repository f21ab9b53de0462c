package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"irspec/internal/catalog"
	"irspec/internal/config"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Maintain the sample spectrum catalog",
	}

	catalogCmd.AddCommand(newCatalogScanCommand(ctx))
	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	catalogCmd.AddCommand(newCatalogShowCommand(ctx))
	catalogCmd.AddCommand(newCatalogRemoveCommand(ctx))

	return catalogCmd
}

func withCatalog(ctx *commandContext, fn func(*catalog.Store) error) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	store, err := catalog.Open(cfg)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func entryStatus(entry catalog.Entry, color bool) string {
	if entry.Decoded() {
		return colorize("ok", ansiGreen, color)
	}
	return colorize("no data", ansiRed, color)
}

func entryRange(entry catalog.Entry) string {
	if !entry.Decoded() {
		return "-"
	}
	return formatRange(entry.MinWavenumber, entry.MaxWavenumber)
}

func newCatalogScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [DIR]",
		Short: "Catalog every spectrum file in a directory",
		Long:  "Scans DIR (default paths.sample_dir) for files with the configured extensions.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			dir := cfg.Paths.SampleDir
			if len(args) == 1 {
				expanded, err := config.ExpandPath(args[0])
				if err != nil {
					return err
				}
				dir = expanded
			}
			if strings.TrimSpace(dir) == "" {
				return errors.New("no directory given and paths.sample_dir is not set")
			}

			runCtx, logger, err := ctx.commandLogger(cmd, "catalog")
			if err != nil {
				return err
			}
			return withCatalog(ctx, func(store *catalog.Store) error {
				store.SetLogger(logger)
				result, err := store.Scan(runCtx, dir)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, result)
				}

				out := cmd.OutOrStdout()
				color := shouldColorize(out)
				rows := make([][]string, len(result.Entries))
				for i, e := range result.Entries {
					rows[i] = []string{e.ID, e.Title, strconv.Itoa(e.Points), entryRange(e), entryStatus(e, color)}
				}
				if len(rows) > 0 {
					fmt.Fprintln(out, renderTable([]string{"ID", "Title", "Points", "Range", "Status"}, rows,
						[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft}))
				}
				fmt.Fprintf(out, "Cataloged %d spectra from %s (%d failed) in %s\n",
					len(result.Entries), dir, result.Failed, result.Duration)
				return nil
			})
		},
	}
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cataloged spectra",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(ctx, func(store *catalog.Store) error {
				entries, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					if entries == nil {
						entries = []catalog.Entry{}
					}
					return writeJSON(cmd, entries)
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "Catalog is empty")
					return nil
				}
				rows := make([][]string, len(entries))
				for i, e := range entries {
					cas := e.CASNumber
					if cas == "" {
						cas = "-"
					}
					rows[i] = []string{e.ID, e.Title, cas, e.YUnits, strconv.Itoa(e.Points), entryRange(e)}
				}
				fmt.Fprintln(out, renderTable([]string{"ID", "Title", "CAS", "Y units", "Points", "Range"}, rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight}))
				return nil
			})
		},
	}
}

func newCatalogShowCommand(ctx *commandContext) *cobra.Command {
	var content bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(ctx, func(store *catalog.Store) error {
				out := cmd.OutOrStdout()
				if content {
					text, err := store.Content(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					fmt.Fprintln(out, text)
					return nil
				}

				entry, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, entry)
				}
				pairs := [][2]string{
					{"ID", entry.ID},
					{"Title", entry.Title},
					{"CAS", entry.CASNumber},
					{"Names", strings.ReplaceAll(entry.Names, "\n", " / ")},
					{"Functional groups", strings.Join(entry.FunctionalGroups, ", ")},
					{"Owner", entry.Owner},
					{"Origin", entry.Origin},
					{"Citation", entry.Citation},
					{"File", entry.SourcePath},
					{"Units", entry.XUnits + " / " + entry.YUnits},
					{"Points", strconv.Itoa(entry.Points)},
					{"Range (cm-1)", entryRange(*entry)},
					{"Encoding", entry.Encoding},
					{"Warnings", strconv.Itoa(entry.WarningCount)},
					{"Updated", entry.UpdatedAt.Format("2006-01-02 15:04:05")},
				}
				if entry.DecodeError != "" {
					pairs = append(pairs, [2]string{"Decode error", entry.DecodeError})
				}
				fmt.Fprintln(out, renderKeyValues(pairs))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&content, "content", false, "Print the stored JCAMP-DX text")
	return cmd
}

func newCatalogRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID...",
		Short: "Remove entries from the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(ctx, func(store *catalog.Store) error {
				out := cmd.OutOrStdout()
				for _, id := range args {
					if err := store.Remove(cmd.Context(), id); err != nil {
						return err
					}
					fmt.Fprintf(out, "Removed %s\n", id)
				}
				return nil
			})
		},
	}
}
