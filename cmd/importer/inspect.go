package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/grachmannico95/wallet-import/internal/config"
	"github.com/grachmannico95/wallet-import/internal/importer"
	"github.com/spf13/cobra"
)

func newInspectCmd(root *rootOptions, cfg *config.Config) *cobra.Command {
	var previewRows int

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show headers, the guessed column mapping and a preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := openFile(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			session := importer.NewSession("cli", root.userID, nil, importer.WithPreviewLimit(previewRows))
			if err := session.Parse(filepath.Base(args[0]), f); err != nil {
				return err
			}

			printView(cmd.OutOrStdout(), session.View())
			return nil
		},
	}

	cmd.Flags().IntVar(&previewRows, "preview", cfg.Import.PreviewRows, "Number of rows to preview")

	return cmd
}

func printView(w io.Writer, view importer.View) {
	fmt.Fprintf(w, "File:    %s\n", view.FileName)
	fmt.Fprintf(w, "Rows:    %d\n", view.TotalRows)
	fmt.Fprintf(w, "Headers: %s\n\n", strings.Join(view.Headers, ", "))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tCOLUMN\tREQUIRED")
	for _, f := range importer.Fields {
		column := view.Mapping[f]
		if column == "" {
			column = "-"
		}
		required := ""
		if f.Required() {
			required = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f, column, required)
	}
	tw.Flush()

	if len(view.MissingRequired) > 0 {
		missing := make([]string, len(view.MissingRequired))
		for i, f := range view.MissingRequired {
			missing[i] = string(f)
		}
		fmt.Fprintf(w, "\nMissing required fields: %s\n", strings.Join(missing, ", "))
	}

	if len(view.Preview) == 0 {
		return
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	names := make([]string, len(importer.Fields))
	for i, f := range importer.Fields {
		names[i] = strings.ToUpper(string(f))
	}
	fmt.Fprintln(tw, strings.Join(names, "\t"))
	for _, row := range view.Preview {
		cells := make([]string, len(importer.Fields))
		for i, f := range importer.Fields {
			if v := row[f]; v != nil {
				cells[i] = *v
			} else {
				cells[i] = "-"
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}
