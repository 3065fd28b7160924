package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/grachmannico95/wallet-import/internal/config"
	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/grachmannico95/wallet-import/internal/importer"
	"github.com/grachmannico95/wallet-import/internal/storage/postgres"
	"github.com/spf13/cobra"
)

type runOptions struct {
	mappings   []string
	dryRun     bool
	reportPath string
	rate       float64
	errorLimit int
}

func newRunCmd(root *rootOptions, cfg *config.Config) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Validate a file and create its transactions",
		Long: "Validate a file against the user's categories and wallets and create one\n" +
			"transaction per valid row. Columns are guessed from the headers; use\n" +
			"--map field=header to override a guess or --map field= to unmap it.",
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if root.databaseURL == "" {
				return withCode(exitUsage, fmt.Errorf("--database-url or DATABASE_URL is required"))
			}
			if _, err := parseMappings(opts.mappings); err != nil {
				return withCode(exitUsage, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cmd.OutOrStdout(), root, cfg, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.mappings, "map", nil, "Column override as field=header (repeatable)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Validate only, create nothing")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "Write the per-row outcome report as CSV to this path")
	cmd.Flags().Float64Var(&opts.rate, "rate", cfg.Import.SubmitRatePerSec, "Maximum transactions created per second (0 = unlimited)")
	cmd.Flags().IntVar(&opts.errorLimit, "errors", cfg.Import.ErrorDisplayLimit, "Maximum errors to print (0 = all)")

	return cmd
}

// parseMappings reads repeated field=header overrides. An empty header unmaps
// the field.
func parseMappings(values []string) (map[importer.Field]string, error) {
	out := make(map[importer.Field]string, len(values))
	for _, v := range values {
		name, header, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --map %q: expected field=header", v)
		}
		field, err := importer.ParseField(name)
		if err != nil {
			return nil, err
		}
		out[field] = strings.TrimSpace(header)
	}
	return out, nil
}

func runImport(ctx context.Context, out io.Writer, root *rootOptions, cfg *config.Config, opts runOptions, path string) error {
	log := root.logger()
	defer log.Sync()

	pool, err := postgres.Connect(ctx, postgres.PoolConfig{
		DSN:             root.databaseURL,
		MaxConns:        int32(cfg.Database.MaxConns),
		MinConns:        int32(cfg.Database.MinConns),
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()
	store := postgres.New(pool)

	executor := importer.NewExecutor(store, log, importer.WithLimiter(importer.NewLimiter(opts.rate)))
	session := importer.NewSession("cli", root.userID, executor)

	f, err := openFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := session.Parse(filepath.Base(path), f); err != nil {
		return err
	}

	mappings, _ := parseMappings(opts.mappings)
	for field, header := range mappings {
		if err := session.SetMapping(field, header); err != nil {
			return withCode(exitUsage, err)
		}
	}

	if err := session.LoadReferences(ctx, store); err != nil {
		return err
	}

	printView(out, session.View())
	fmt.Fprintln(out)

	if opts.dryRun {
		validation, err := session.Validate()
		if err != nil {
			return err
		}
		report := importer.NewReport(len(validation.Outcomes), validation, importer.Result{})
		report.Outcomes = validation.Outcomes
		fmt.Fprintf(out, "Dry run: %d of %d rows are valid.\n", len(validation.Candidates), report.TotalRows)
		return finish(out, report, opts)
	}

	report, err := session.Import(ctx, func(p importer.Progress) {
		fmt.Fprintf(out, "\rImporting... %3.0f%% (%d/%d)", p.Percent, p.Processed, p.Total)
	})
	fmt.Fprintln(out)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Imported %d of %d rows, %d failed.\n", report.SuccessCount, report.TotalRows, report.FailedCount)
	return finish(out, report, opts)
}

func finish(out io.Writer, report importer.Report, opts runOptions) error {
	shown, remaining := report.Display(opts.errorLimit)
	for _, line := range shown {
		fmt.Fprintln(out, "  "+line)
	}
	if remaining > 0 {
		fmt.Fprintf(out, "  ... and %d more\n", remaining)
	}

	if opts.reportPath != "" {
		if err := writeReport(opts.reportPath, report.Outcomes); err != nil {
			return err
		}
		fmt.Fprintf(out, "Report written to %s\n", opts.reportPath)
	}

	if len(report.Errors) > 0 {
		return withCode(exitRowsFailed, fmt.Errorf("%d rows were not imported", len(report.Errors)))
	}
	return nil
}

// writeReport saves the per-row outcomes as CSV, including the close error.
func writeReport(path string, outcomes []domain.RowOutcome) error {
	rf, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := importer.WriteOutcomesCSV(rf, outcomes); err != nil {
		_ = rf.Close()
		return err
	}
	return rf.Close()
}
