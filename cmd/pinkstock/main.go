package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rl1809/pinkstock/internal/config"
	"github.com/rl1809/pinkstock/internal/core/service"
	"github.com/rl1809/pinkstock/internal/logging"
)

// app carries what every subcommand needs once the root pre-run has wired it.
type app struct {
	cfg       config.Config
	logger    *zap.Logger
	inventory *service.InventoryService
	closeFn   func() error

	backend    string
	sqlitePath string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if closeErr := a.close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pinkstock",
		Short: "PinkStock - a small local inventory tracker",
		Long: `PinkStock keeps a single local inventory of stock items.

Items are stored as one JSON document in the configured key-value backend
(sqlite by default). Every change is saved immediately.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&a.backend, "backend", "", "storage backend: sqlite, redis, mysql or memory (overrides PINKSTOCK_BACKEND)")
	root.PersistentFlags().StringVar(&a.sqlitePath, "db", "", "sqlite database path (overrides PINKSTOCK_SQLITE_PATH)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides PINKSTOCK_LOG_LEVEL)")

	root.AddCommand(
		a.serveCmd(),
		a.listCmd(),
		a.addCmd(),
		a.adjustCmd(),
		a.deleteCmd(),
		a.categoriesCmd(),
		a.summaryCmd(),
		a.exportCmd(),
	)
	return root
}

func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.backend != "" {
		cfg.Backend = a.backend
	}
	if a.sqlitePath != "" {
		cfg.SQLitePath = a.sqlitePath
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger

	inventory, closeFn, err := openInventory(ctx, cfg, logger)
	if err != nil {
		return err
	}
	a.inventory = inventory
	a.closeFn = closeFn
	return nil
}

func (a *app) close() error {
	var err error
	if a.closeFn != nil {
		err = a.closeFn()
		a.closeFn = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return err
}
