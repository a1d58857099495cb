// Package server is the HTTP API over variant assembly, works and print
// export.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/worksheet/internal/logger"
	"github.com/abhisek/worksheet/internal/metrics"
	"github.com/abhisek/worksheet/internal/paginate"
	"github.com/abhisek/worksheet/internal/printdoc"
	"github.com/abhisek/worksheet/internal/printjob"
	"github.com/abhisek/worksheet/internal/store"
	"github.com/abhisek/worksheet/internal/taskbank"
	"github.com/abhisek/worksheet/internal/variantplan"
	"github.com/abhisek/worksheet/internal/work"
)

// WorkStore persists works.
type WorkStore interface {
	SaveWork(ctx context.Context, w *work.Work) error
	GetWork(ctx context.Context, id string) (*work.Work, error)
	ListWorks(ctx context.Context, opts store.ListOpts) ([]store.WorkSummary, error)
	DeleteWork(ctx context.Context, id string) error
}

// PrintJobs plans and renders printable documents.
type PrintJobs interface {
	Plan(ctx context.Context, doc printdoc.Document) (paginate.SheetPlan, error)
	Run(ctx context.Context, doc printdoc.Document, engine string) (*printjob.Result, error)
}

// Deps are the process-scoped collaborators of the API.
type Deps struct {
	Works     WorkStore
	Pool      *taskbank.Pool
	Templates *variantplan.Catalog
	Jobs      PrintJobs
	Log       *logger.Logger
}

// Server wraps the gin engine serving the API.
type Server struct {
	Engine *gin.Engine
	log    *logger.Logger
}

// New builds the router.
func New(d Deps) *Server {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Templates == nil {
		d.Templates, _ = variantplan.NewCatalog()
	}
	metrics.Init()

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(d.Log.Component("http")), requestMetrics())

	h := &handlers{Deps: d}
	r.GET("/healthz", h.health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/templates", h.listTemplates)
		api.POST("/variants/build", h.buildVariants)
		api.POST("/print/recommend", h.recommend)

		api.POST("/works", h.createWork)
		api.GET("/works", h.listWorks)
		api.GET("/works/:id", h.getWork)
		api.PATCH("/works/:id", h.editWork)
		api.DELETE("/works/:id", h.deleteWork)
		api.GET("/works/:id/fit", h.fit)
		api.GET("/works/:id/print-plan", h.printPlan)
		api.GET("/works/:id/pdf", h.pdf)
	}

	return &Server{Engine: r, log: d.Log}
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
