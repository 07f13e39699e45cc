package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/financeflow/backend/internal/config"
	"github.com/financeflow/backend/pkg/services"
	"github.com/financeflow/backend/pkg/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     config.Config
	rootCmd = &cobra.Command{
		Use:   "financeflow",
		Short: "Personal finance tracking backend",
		Long: `FinanceFlow records income and expenses, tracks monthly budgets
and savings goals and reports on where the money goes.

Without a command, the HTTP API is served.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		RunE:              runServe,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(insightsCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		log.Error().Err(err).Msg("financeflow")
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	setupLogging(cfg.Log)
	return nil
}

func setupLogging(c config.Log) {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(ginMode)
	}

	output := io.Writer(os.Stdout)
	if c.Format == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(c.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if gin.IsDebugging() {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err != nil {
		log.Warn().Str("level", c.Level).Msg("unknown log level, using info")
	}
}

// openService opens the configured storage and returns a service on top
// of it. The returned function closes the storage.
func openService() (*services.Service, func(), error) {
	if cfg.Storage.Backend == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), os.ModePerm); err != nil {
			return nil, nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	st, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path, log.Logger)
	if err != nil {
		return nil, nil, err
	}

	closeStorage := func() {
		c, ok := st.(io.Closer)
		if !ok {
			return
		}

		if err := c.Close(); err != nil {
			log.Error().Err(err).Msg("closing storage failed")
		}
	}

	log.Debug().Str("backend", cfg.Storage.Backend).Str("path", cfg.Storage.Path).Msg("storage")
	return services.New(st, services.WithLogger(log.Logger)), closeStorage, nil
}
