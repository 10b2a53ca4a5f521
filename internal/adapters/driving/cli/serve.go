package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/docsage-labs/docsage-cli/internal/adapters/driving/httpapi"
	"github.com/docsage-labs/docsage-cli/internal/logger"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the HTTP front end. Endpoints:

  POST /ask            ask a question ({"question": ..., "doc_id": ...})
  POST /upload         upload a PDF (multipart field "file")
  GET  /documents      list processed documents
  GET  /documents/:id  show one document
  GET  /healthz        health and readiness

With --watch the PDF inbox is watched and re-ingested whenever a PDF
lands in it.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (defaults to configured http_addr)")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", true, "watch the PDF inbox for new files")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}
	if appSettings == nil {
		return errors.New("settings not configured")
	}

	addr := serveAddr
	if addr == "" {
		addr = appSettings.HTTPAddr
	}

	server := httpapi.NewServer(queryService, httpapi.Config{
		Addr:   addr,
		PDFDir: appSettings.PDFDir,
	})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if serveWatch {
		watcher := httpapi.NewWatcher(queryService, appSettings.PDFDir)
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("inbox watcher stopped: %v", err)
			}
		}()
	}

	return server.Run()
}
