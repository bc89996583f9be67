package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/phytoscan/phytoscan/internal/advisor"
	"github.com/phytoscan/phytoscan/internal/api"
	"github.com/phytoscan/phytoscan/internal/catalog"
	"github.com/phytoscan/phytoscan/internal/handlers"
)

func newServeCmd() *cobra.Command {
	var (
		port        string
		apiURL      string
		catalogFile string
		advisorName string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local HTTP facade",
		Long: `Starts a local HTTP server exposing the diagnostic pipeline to
frontends: image identification, the disease catalog with filtering,
stored results, and treatment advice.

Results are kept in memory only and are lost when the server stops.`,
		Example: `  # Start server on default port 8888
  phytoscan serve

  # Start server on custom port with a local catalog export
  phytoscan serve --port 3000 --catalog-file diseases.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(apiURL)

			var source catalog.Source = client
			if catalogFile != "" {
				source = catalog.NewFileSource(catalogFile)
			}

			handler := handlers.New(client, source, advisor.New(advisorName))

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: handler.Router(),
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("PhytoScan API available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVar(&apiURL, "api-url", "", "Classifier base URL (default $PHYTOSCAN_API_URL or "+api.DefaultBaseURL+")")
	cmd.Flags().StringVar(&catalogFile, "catalog-file", "", "Serve the catalog from a local .json, .jsonl, or .parquet file")
	cmd.Flags().StringVar(&advisorName, "advisor", "", "Advice provider: static or gemini (default $PHYTOSCAN_ADVISOR or static)")

	return cmd
}
