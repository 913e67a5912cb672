// handlers.go — Route handlers: create/read records, render thumbnails.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nene-dev/thumbtalk/pkg/message"
	"github.com/nene-dev/thumbtalk/pkg/thumbnail"
)

// defaultMessage fills renders requested without any message.
const defaultMessage = "하고싶은 말"

// Cache directives: defaults are stable for a day, per-message renders
// for an hour (content is a pure function of inputs either way).
const (
	cacheControlDefault = "public, max-age=86400, s-maxage=86400, stale-while-revalidate"
	cacheControlMessage = "public, max-age=3600, s-maxage=3600"
)

type createRequest struct {
	Message   string `json:"message"`
	ImageType string `json:"imageType"`
	SubType   string `json:"subType"`
	ZoomMode  bool   `json:"zoomMode"`
}

// handleCreateMessage validates and stores a record, responding with
// its id and the normalized fields. Repeat submissions of the same
// tuple return the same id without a second write.
func (s *Server) handleCreateMessage(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		respondError(w, http.StatusBadRequest, "a non-empty message is required")
		return
	}

	rec := message.Normalize(message.Record{
		Message:   req.Message,
		ImageType: req.ImageType,
		SubType:   req.SubType,
		ZoomMode:  req.ZoomMode,
	})

	id, err := s.store.Put(r.Context(), rec)
	if err != nil {
		s.log.Error("store message", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to store message")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"id":        id,
		"message":   rec.Message,
		"imageType": rec.ImageType,
		"subType":   rec.SubType,
		"zoomMode":  rec.ZoomMode,
	})
}

// handleGetMessage returns the stored record for an id.
func (s *Server) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := s.store.Get(r.Context(), id)
	switch {
	case errors.Is(err, message.ErrNotFound):
		respondError(w, http.StatusNotFound, "message not found")
		return
	case err != nil:
		s.log.Error("read message", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to read message")
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

// handleRenderDefault renders the placeholder message with the query's
// character selection.
func (s *Server) handleRenderDefault(w http.ResponseWriter, r *http.Request) {
	rec := recordFromQuery(defaultMessage, r)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	s.renderRecord(w, rec, cacheControlDefault)
}

// handleRenderMessage renders a message embedded in the path segment.
func (s *Server) handleRenderMessage(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "message")
	if decoded, err := url.PathUnescape(raw); err == nil {
		raw = decoded
	}

	rec := recordFromQuery(raw, r)
	s.renderRecord(w, rec, cacheControlMessage)
}

// handleRenderByID renders from a stored record.
func (s *Server) handleRenderByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := s.store.Get(r.Context(), id)
	switch {
	case errors.Is(err, message.ErrNotFound):
		respondError(w, http.StatusNotFound, "message not found")
		return
	case err != nil:
		s.log.Error("read message", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to read message")
		return
	}

	s.renderRecord(w, rec, cacheControlMessage)
}

// renderRecord composes (or re-serves) the PNG for a record and writes
// it with the given cache directive.
func (s *Server) renderRecord(w http.ResponseWriter, rec message.Record, cacheControl string) {
	rec = message.Normalize(rec)
	key := message.DeriveID(rec)

	if cached, ok := s.renders.Get(key); ok {
		writePNG(w, cached.([]byte), cacheControl)
		return
	}

	img, err := s.renderer.Render(rec.RenderRequest())
	if err != nil {
		s.log.Error("render", zap.String("imageType", rec.ImageType), zap.Error(err))
		respondRenderFailure(w)
		return
	}

	data, err := thumbnail.EncodePNG(img)
	if err != nil {
		s.log.Error("encode", zap.Error(err))
		respondRenderFailure(w)
		return
	}

	s.renders.SetDefault(key, data)
	writePNG(w, data, cacheControl)
}

// recordFromQuery builds a record from a message plus the type, subType
// and zoom query parameters.
func recordFromQuery(msg string, r *http.Request) message.Record {
	q := r.URL.Query()
	return message.Record{
		Message:   msg,
		ImageType: q.Get("type"),
		SubType:   q.Get("subType"),
		ZoomMode:  q.Get("zoom") == "true",
	}
}

func writePNG(w http.ResponseWriter, data []byte, cacheControl string) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", cacheControl)
	_, _ = w.Write(data)
}
