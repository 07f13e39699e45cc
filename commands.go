package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/financeflow/backend/internal/types"
	"github.com/financeflow/backend/pkg/controllers"
	"github.com/financeflow/backend/pkg/export"
	"github.com/financeflow/backend/pkg/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Time the server has to finish running requests on shutdown
const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	service, closeStorage, err := openService()
	if err != nil {
		return err
	}
	defer closeStorage()

	apiURL, err := url.Parse(cfg.Server.APIURL)
	if err != nil {
		return err
	}

	r, teardown, err := router.Config(apiURL)
	defer teardown()
	if err != nil {
		return err
	}

	router.AttachRoutes(controllers.New(service), r.Group("/"))

	server := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("backend startup complete")
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-cmd.Context().Done():
	}

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func exportCmd() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data",
		Long: `Export all data as JSON backup that can be restored through the API,
or the transactions as spreadsheet.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if format != "json" && format != "xlsx" {
				return fmt.Errorf("format must be 'json' or 'xlsx', got '%s'", format)
			}

			service, closeStorage, err := openService()
			if err != nil {
				return err
			}
			defer closeStorage()

			w := io.Writer(os.Stdout)
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			if format == "xlsx" {
				err = export.WriteTransactionsXLSX(w, service.GetTransactions(), service.GetSettings())
			} else {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				err = enc.Encode(service.Export())
			}

			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			if w != io.Writer(os.Stdout) {
				log.Info().Str("format", format).Str("output", output).Msg("exported data")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "export format (json, xlsx)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func insightsCmd() *cobra.Command {
	var timeframe string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Print insights about your finances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tf, err := types.ParseTimeframe(timeframe)
			if err != nil {
				return err
			}

			service, closeStorage, err := openService()
			if err != nil {
				return err
			}
			defer closeStorage()

			for _, insight := range service.GenerateInsights(tf) {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n  %s\n", insight.Type, insight.Title, insight.Description)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&timeframe, "timeframe", string(types.TimeframeMonth), "timeframe (week, month, year)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), router.Version())
		},
	}
}
