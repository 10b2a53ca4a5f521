package httpapi

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/docsage-labs/docsage-cli/internal/core/ports/driving"
	"github.com/docsage-labs/docsage-cli/internal/logger"
)

const (
	// maxUploadBytes bounds PDF upload size.
	maxUploadBytes = 50 * 1024 * 1024

	defaultAddr = ":8080"
)

// Config holds the HTTP server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// PDFDir is where uploaded PDFs are stored before ingestion.
	PDFDir string
}

// Server is the HTTP front end over the query service.
type Server struct {
	app    *fiber.App
	query  driving.QueryService
	addr   string
	pdfDir string
}

// NewServer builds the HTTP server and registers its routes.
func NewServer(query driving.QueryService, cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}

	app := fiber.New(fiber.Config{
		BodyLimit:             maxUploadBytes,
		DisableStartupMessage: true,
	})

	s := &Server{
		app:    app,
		query:  query,
		addr:   cfg.Addr,
		pdfDir: cfg.PDFDir,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Use(requestID)
	s.app.Get("/healthz", s.handleHealth)
	s.app.Post("/ask", s.handleAsk)
	s.app.Post("/upload", s.handleUpload)
	s.app.Get("/documents", s.handleListDocuments)
	s.app.Get("/documents/:id", s.handleShowDocument)
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run starts the HTTP listener and blocks until shutdown.
func (s *Server) Run() error {
	logger.Info("HTTP server listening on %s", s.addr)
	return s.app.Listen(s.addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// requestID tags every request with an X-Request-Id so log lines and
// responses can be correlated. A caller-supplied ID is kept.
func requestID(ctx *fiber.Ctx) error {
	id := ctx.Get(fiber.HeaderXRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	ctx.Set(fiber.HeaderXRequestID, id)
	logger.Debug("%s %s [%s]", ctx.Method(), ctx.Path(), id)
	return ctx.Next()
}

type askRequest struct {
	Question string `json:"question"`
	DocID    string `json:"doc_id"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

func (s *Server) handleHealth(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status": "ok",
		"ready":  s.query.Ready(),
	})
}

func (s *Server) handleAsk(ctx *fiber.Ctx) error {
	var req askRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}
	if strings.TrimSpace(req.Question) == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "question is required",
		})
	}

	answer := s.query.Route(ctx.Context(), req.Question, req.DocID)
	return ctx.JSON(askResponse{Answer: answer})
}

// handleUpload accepts a multipart PDF, stores it in the inbox and
// ingests the inbox directory.
func (s *Server) handleUpload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "file field is required",
		})
	}

	name := filepath.Base(file.Filename)
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "only PDF files are accepted",
		})
	}

	if err := os.MkdirAll(s.pdfDir, 0755); err != nil {
		return fmt.Errorf("creating upload dir: %w", err)
	}

	dest := filepath.Join(s.pdfDir, name)
	if err := ctx.SaveFile(file, dest); err != nil {
		return fmt.Errorf("saving upload: %w", err)
	}

	logger.Info("Uploaded %s, ingesting", name)

	n, err := s.query.Ingest(ctx.Context(), s.pdfDir)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fmt.Sprintf("ingestion failed: %v", err),
		})
	}

	return ctx.JSON(fiber.Map{
		"filename":  name,
		"documents": n,
	})
}

func (s *Server) handleListDocuments(ctx *fiber.Ctx) error {
	ids := s.query.ListDocuments(ctx.Context())
	if ids == nil {
		ids = []string{}
	}
	return ctx.JSON(fiber.Map{
		"documents": ids,
		"ready":     s.query.Ready(),
	})
}

func (s *Server) handleShowDocument(ctx *fiber.Ctx) error {
	summary, err := s.query.DocumentSummary(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("document %s not found", ctx.Params("id")),
		})
	}
	return ctx.JSON(fiber.Map{
		"doc_id":  ctx.Params("id"),
		"summary": summary,
	})
}
