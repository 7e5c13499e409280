package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikmy/txcommand/internal/api"
	"github.com/nikmy/txcommand/pkg/environment"
	"github.com/nikmy/txcommand/pkg/errors"
	"github.com/nikmy/txcommand/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var (
	configPath string
	envFlag    environment.Env
	backend    string

	rootCmd = &cobra.Command{
		Use:           "txcommand",
		Short:         "Register people and their pets in one database transaction",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the people HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	registerCmd = &cobra.Command{
		Use:   "register NAME [PET...]",
		Short: "Register a person with pets and print the person id",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRegister,
	}

	schemaCmd = &cobra.Command{
		Use:   "schema",
		Short: "Create tables, collections and indexes of the configured backend",
		Args:  cobra.NoArgs,
		RunE:  runSchema,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the yaml config")
	rootCmd.PersistentFlags().Var(&envFlag, "env", "environment (dev, prod), overrides the config")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "backend (postgres, mongo), overrides the config")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(schemaCmd)
}

// bootstrap loads the config and connects to the selected backend.
func bootstrap(ctx context.Context) (*Config, *app, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, errors.WrapFail(err, "load config")
	}

	if envFlag != environment.Unknown {
		cfg.Environment = envFlag
	}
	if backend != "" {
		cfg.Backend = backend
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		return nil, nil, err
	}

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	return cfg, a, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, a, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	server := api.NewServer(cfg.API, a.log, a.registrar, a.metrics)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Serve(ctx) }()
	a.log.Infof("serving %s backend on %s", cfg.Backend, server.Addr())

	var serveErr error
	select {
	case serveErr = <-errCh:
	case <-ctx.Done():
		a.log.Infof("graceful shutdown")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancelShutdown()

	return errors.Join(
		errors.WrapFail(serveErr, "serve http"),
		server.Shutdown(shutdownCtx),
		a.Close(shutdownCtx),
	)
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, a, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	id, err := a.registrar.Register(ctx, args[0], args[1:])
	if err != nil {
		return errors.Join(errors.WrapFail(err, "register"), a.Close(ctx))
	}

	fmt.Fprintln(cmd.OutOrStdout(), id)
	return a.Close(ctx)
}

func runSchema(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, a, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	err = a.schema(ctx)
	if err != nil {
		return errors.Join(err, a.Close(ctx))
	}

	a.log.Infof("%s schema is ready", cfg.Backend)
	return a.Close(ctx)
}
