package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"irspec/internal/config"
	"irspec/internal/fileutil"
	"irspec/internal/jcamp"
	"irspec/internal/logging"
	"irspec/internal/textutil"
)

const editedSuffix = "_edited"

func newHeaderCommand(ctx *commandContext) *cobra.Command {
	headerCmd := &cobra.Command{
		Use:   "header",
		Short: "Inspect and edit JCAMP-DX header labels",
	}

	headerCmd.AddCommand(newHeaderShowCommand(ctx))
	headerCmd.AddCommand(newHeaderSetCommand(ctx))
	headerCmd.AddCommand(newHeaderRemoveCommand(ctx))
	headerCmd.AddCommand(newHeaderAuditCommand(ctx))
	headerCmd.AddCommand(newHeaderApplyCommand(ctx))
	headerCmd.AddCommand(newHeaderGuideCommand(ctx))

	return headerCmd
}

type headerEntryView struct {
	Label string `json:"label,omitempty"`
	Value string `json:"value,omitempty"`
	Raw   string `json:"raw,omitempty"`
}

func newHeaderShowCommand(ctx *commandContext) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "List header labels in file order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, text, err := readSpectrumFile(args[0])
			if err != nil {
				return err
			}
			doc := jcamp.ParseDocument(text)

			views := make([]headerEntryView, 0, len(doc.Header))
			for _, entry := range doc.Header {
				switch {
				case entry.IsMetadata():
					views = append(views, headerEntryView{Label: entry.Key, Value: entry.Value})
				case all:
					views = append(views, headerEntryView{Raw: entry.Content})
				}
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, views)
			}

			rows := make([][]string, len(views))
			for i, v := range views {
				if v.Label == "" {
					rows[i] = []string{"(raw)", v.Raw}
					continue
				}
				rows[i] = []string{v.Label, strings.ReplaceAll(v.Value, "\n", " / ")}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Label", "Value"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include comment and unlabelled lines")
	return cmd
}

// editTarget carries the output flags shared by every editing command.
type editTarget struct {
	output  string
	inPlace bool
	audit   []string
}

func (t *editTarget) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&t.output, "output", "o", "", "Output file (default <base>_edited.jdx)")
	cmd.Flags().BoolVar(&t.inPlace, "in-place", false, "Overwrite the input file")
	cmd.Flags().StringArrayVar(&t.audit, "audit", nil, "Append an AUDIT TRAIL entry (repeatable)")
}

// write serializes doc for input and reports where it went.
func (t *editTarget) write(cmd *cobra.Command, ctx *commandContext, input string, doc *jcamp.Document) error {
	if t.inPlace && t.output != "" {
		return errors.New("--in-place and --output are mutually exclusive")
	}
	doc.AppendAuditTrail(t.audit...)

	target := input
	if !t.inPlace {
		var err error
		target, err = exportPath(ctx.configValue(), input, editedSuffix, ".jdx", t.output)
		if err != nil {
			return err
		}
	}
	if err := fileutil.WriteFileAtomic(target, []byte(doc.String()), 0o644); err != nil {
		return err
	}
	if ctx.jsonOutput() {
		return writeJSON(cmd, map[string]string{"input": input, "output": target})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
	return nil
}

func parseEdits(raw []string) ([]jcamp.Edit, error) {
	edits := make([]jcamp.Edit, 0, len(raw))
	for _, r := range raw {
		edit, err := jcamp.ParseEdit(r)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}
	return edits, nil
}

func newHeaderSetCommand(ctx *commandContext) *cobra.Command {
	var target editTarget

	cmd := &cobra.Command{
		Use:   "set FILE LABEL=VALUE...",
		Short: "Set header labels, adding any that are missing",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, text, err := readSpectrumFile(args[0])
			if err != nil {
				return err
			}
			edits, err := parseEdits(args[1:])
			if err != nil {
				return err
			}
			doc := jcamp.ParseDocument(text)
			for _, edit := range edits {
				doc.Set(edit.Key, edit.Value)
			}
			return target.write(cmd, ctx, input, &doc)
		},
	}

	target.register(cmd)
	return cmd
}

func newHeaderRemoveCommand(ctx *commandContext) *cobra.Command {
	var target editTarget

	cmd := &cobra.Command{
		Use:   "remove FILE LABEL...",
		Short: "Remove header labels",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, text, err := readSpectrumFile(args[0])
			if err != nil {
				return err
			}
			doc := jcamp.ParseDocument(text)
			for _, label := range args[1:] {
				if !doc.Remove(label) {
					return fmt.Errorf("label %q not found in %s", label, input)
				}
			}
			return target.write(cmd, ctx, input, &doc)
		},
	}

	target.register(cmd)
	return cmd
}

func newHeaderAuditCommand(ctx *commandContext) *cobra.Command {
	var target editTarget

	cmd := &cobra.Command{
		Use:   "audit FILE [ENTRY...]",
		Short: "Print the AUDIT TRAIL, or append entries to it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, text, err := readSpectrumFile(args[0])
			if err != nil {
				return err
			}
			doc := jcamp.ParseDocument(text)
			if len(args) == 1 {
				trail := doc.AuditTrail()
				if ctx.jsonOutput() {
					return writeJSON(cmd, map[string]string{"file": input, "audit_trail": trail})
				}
				if trail == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "No audit trail")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), trail)
				return nil
			}
			doc.AppendAuditTrail(args[1:]...)
			return target.write(cmd, ctx, input, &doc)
		},
	}

	target.register(cmd)
	return cmd
}

func newHeaderApplyCommand(ctx *commandContext) *cobra.Command {
	var (
		sets    []string
		audit   []string
		zipPath string
	)

	cmd := &cobra.Command{
		Use:   "apply FILE...",
		Short: "Apply the same label edits to many files",
		Long: "Sets every --set LABEL=VALUE on each file (blank values are skipped) and writes\n" +
			"<base>_edited.jdx beside each input, or one zip bundle with --zip.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edits, err := parseEdits(sets)
			if err != nil {
				return err
			}
			if len(edits) == 0 && len(audit) == 0 {
				return errors.New("nothing to apply: pass --set LABEL=VALUE or --audit")
			}
			_, logger, err := ctx.commandLogger(cmd, "header")
			if err != nil {
				return err
			}

			cfg := ctx.configValue()
			var bundle []fileutil.ZipEntry
			var written []string
			targets := make(map[string]int, len(args))
			for _, arg := range args {
				input, text, err := readSpectrumFile(arg)
				if err != nil {
					return err
				}
				doc := jcamp.ParseDocument(text)
				doc.ApplyGroupEdits(edits)
				doc.AppendAuditTrail(audit...)
				data := []byte(doc.String())

				if zipPath != "" {
					bundle = append(bundle, fileutil.ZipEntry{
						Name: textutil.DerivedName(input, editedSuffix, ".jdx"),
						Data: data,
					})
					continue
				}
				target, err := exportPath(cfg, input, editedSuffix, ".jdx", "")
				if err != nil {
					return err
				}
				// inputs sharing a base name would otherwise overwrite each
				// other in output_dir
				target = fileutil.UniqueName(targets, target)
				if err := fileutil.WriteFileAtomic(target, data, 0o644); err != nil {
					return err
				}
				logger.Debug("header edits written",
					logging.String(logging.FieldFile, input),
					logging.String("output", target),
				)
				written = append(written, target)
			}

			if zipPath != "" {
				target, err := config.ExpandPath(zipPath)
				if err != nil {
					return err
				}
				if err := fileutil.WriteZip(target, bundle); err != nil {
					return err
				}
				logger.Info("header edits bundled",
					logging.String(logging.FieldEventType, "header_apply_zip"),
					logging.String("output", target),
					logging.Int("files", len(bundle)),
				)
				written = []string{target}
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]any{"written": written, "files": len(args)})
			}
			out := cmd.OutOrStdout()
			for _, w := range written {
				fmt.Fprintf(out, "Wrote %s\n", w)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "LABEL=VALUE to set on every file (repeatable)")
	cmd.Flags().StringArrayVar(&audit, "audit", nil, "Append an AUDIT TRAIL entry to every file (repeatable)")
	cmd.Flags().StringVar(&zipPath, "zip", "", "Write all edited files into this zip archive")
	return cmd
}

func newHeaderGuideCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "guide [LABEL]",
		Short:       "Show formatting guidance for header labels",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				guide, ok := jcamp.FormatGuide(args[0])
				if !ok {
					return fmt.Errorf("no guide for label %q", args[0])
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, map[string]string{"label": args[0], "guide": guide})
				}
				fmt.Fprintln(out, guide)
				return nil
			}

			type guideRow struct {
				Label      string `json:"label"`
				Guide      string `json:"guide"`
				GroupEdits bool   `json:"group_edit"`
			}
			rows := make([]guideRow, 0, len(jcamp.KnownLabels))
			for _, label := range jcamp.KnownLabels {
				guide, _ := jcamp.FormatGuide(label)
				rows = append(rows, guideRow{Label: label, Guide: guide, GroupEdits: isGroupEditLabel(label)})
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, rows)
			}
			tableRows := make([][]string, len(rows))
			for i, r := range rows {
				marker := ""
				if r.GroupEdits {
					marker = "batch"
				}
				tableRows[i] = []string{r.Label, marker, r.Guide}
			}
			fmt.Fprintln(out, renderTable([]string{"Label", "", "Guide"}, tableRows, nil))
			return nil
		},
	}
}

func isGroupEditLabel(label string) bool {
	for _, l := range jcamp.GroupEditLabels {
		if jcamp.SameLabel(l, label) {
			return true
		}
	}
	return false
}
