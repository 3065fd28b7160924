// Command importer runs wallet CSV/XLSX imports from the terminal against the
// PostgreSQL backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/wallet-import/internal/config"
	"github.com/grachmannico95/wallet-import/pkg/logger"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	databaseURL string
	userID      string
	logLevel    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "importer",
		Short:         "Import transactions from CSV or XLSX files",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", cfg.Database.URL, "PostgreSQL connection string (default: $DATABASE_URL)")
	cmd.PersistentFlags().StringVar(&opts.userID, "user", cfg.Auth.DefaultUserID, "User whose categories and wallets are used")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level")

	cmd.AddCommand(newInspectCmd(opts, cfg))
	cmd.AddCommand(newRunCmd(opts, cfg))

	return cmd
}

func (o *rootOptions) logger() *logger.Logger {
	return logger.NewDevelopment(o.logLevel)
}

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

const (
	exitUsage      = 2
	exitRowsFailed = 3
)

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, withCode(exitUsage, fmt.Errorf("open %s: %w", path, err))
	}
	return f, nil
}
