// Package server exposes the generation engine over HTTP. Requests carry the
// entity models and configuration as JSON; responses are either the artifact
// list as JSON or the whole generated tree as a zip archive. Generation runs
// against an in-memory filesystem, so the server never writes to disk.
package server

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/CarlvinJerry/MyCodegent/fswriter"
	"github.com/CarlvinJerry/MyCodegent/gen"
	"github.com/CarlvinJerry/MyCodegent/model"
)

// GenerateRequest is the request body of the generation endpoints.
type GenerateRequest struct {
	Entities []model.EntityModel     `json:"entities"`
	Config   *model.GenerationConfig `json:"config,omitempty"`
}

// Server handles generation requests.
type Server struct {
	log *zap.Logger
}

// New builds a server. A nil logger disables request logging.
func New(log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{log: log}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("POST /api/generate/archive", s.handleArchive)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// decode parses the request body and resolves the effective configuration.
func decode(r *http.Request) ([]model.EntityModel, model.GenerationConfig, error) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, model.GenerationConfig{}, err
	}
	cfg := model.DefaultConfig()
	if req.Config != nil {
		cfg = *req.Config
		if cfg.RootNamespace == "" {
			cfg.RootNamespace = model.DefaultConfig().RootNamespace
		}
	}
	return req.Entities, cfg, nil
}

// run executes a full generation into a fresh in-memory tree.
func (s *Server) run(ctx context.Context, entities []model.EntityModel, cfg model.GenerationConfig) ([]model.GeneratedArtifact, error) {
	engine := gen.NewEngine(fswriter.NewMem(), s.log)
	return engine.Generate(ctx, entities, cfg)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	entities, cfg, err := decode(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	arts, err := s.run(r.Context(), entities, cfg)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Artifacts []model.GeneratedArtifact `json:"artifacts"`
	}{Artifacts: arts})
}

func (s *Server) handleArchive(w http.ResponseWriter, r *http.Request) {
	entities, cfg, err := decode(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	arts, err := s.run(r.Context(), entities, cfg)
	if err != nil {
		s.fail(w, err)
		return
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	sort.Slice(arts, func(i, j int) bool { return arts[i].RelativePath < arts[j].RelativePath })
	for _, a := range arts {
		f, err := zw.Create(a.RelativePath)
		if err != nil {
			s.fail(w, err)
			return
		}
		if _, err := f.Write([]byte(a.Content)); err != nil {
			s.fail(w, err)
			return
		}
	}
	if err := zw.Close(); err != nil {
		s.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="generated.zip"`)
	_, _ = w.Write(buf.Bytes())
}

// fail maps engine errors onto HTTP statuses: caller mistakes are 400s,
// everything else is a 500.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if gen.IsInputError(err) {
		status = http.StatusBadRequest
	}
	s.log.Warn("generation failed", zap.Error(err))
	http.Error(w, err.Error(), status)
}
