// Package server exposes the HTTP surface: message create/read and the
// thumbnail render routes.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/nene-dev/thumbtalk/pkg/message"
	"github.com/nene-dev/thumbtalk/pkg/thumbnail"
)

// Server wires the record store and the thumbnail renderer to HTTP
// routes. Rendered PNGs are cached by their content-derived id: output
// is a pure function of the normalized tuple, so aggressive caching is
// correct.
type Server struct {
	store    message.Store
	renderer *thumbnail.Renderer
	renders  *gocache.Cache
	log      *zap.Logger
}

// New builds a server. cacheTTL bounds how long rendered PNG bytes stay
// in process memory.
func New(store message.Store, renderer *thumbnail.Renderer, cacheTTL time.Duration, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		store:    store,
		renderer: renderer,
		renders:  gocache.New(cacheTTL, 2*cacheTTL),
		log:      log,
	}
}

// Router returns the chi handler with all routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(api chi.Router) {
		api.Post("/message", s.handleCreateMessage)
		api.Get("/message/{id}", s.handleGetMessage)

		api.Get("/og", s.handleRenderDefault)
		api.Get("/og/id/{id}", s.handleRenderByID)
		api.Get("/og/{message}", s.handleRenderMessage)
	})

	return r
}
