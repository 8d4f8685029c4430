package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/thywilljoshua/hydra/internal/analyze"
	"github.com/thywilljoshua/hydra/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write json response", zap.Int("status", status), zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.opts.Store != nil {
		if err := s.opts.Store.Ping(r.Context()); err != nil {
			s.logger.Error("store ping failed", zap.Error(err))
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze accepts a multipart upload in field "file", runs the
// pipeline on it and returns the stored record.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			s.writeError(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
		case errors.Is(err, http.ErrMissingFile):
			s.writeError(w, http.StatusBadRequest, "missing form field \"file\"")
		default:
			s.writeError(w, http.StatusBadRequest, "failed to read upload: "+err.Error())
		}
		return
	}
	defer file.Close()

	provider, err := analyze.ProviderFor(header.Filename)
	if err != nil {
		s.metrics.analyses.WithLabelValues("rejected").Inc()
		s.writeError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}

	tmp, err := os.CreateTemp("", "hydra-*"+filepath.Ext(header.Filename))
	if err != nil {
		s.logger.Error("create temp file", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer os.Remove(tmp.Name())
	n, err := io.Copy(tmp, file)
	tmp.Close()
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to read upload: "+err.Error())
		return
	}
	if n == 0 {
		s.metrics.analyses.WithLabelValues("rejected").Inc()
		s.writeError(w, http.StatusBadRequest, "empty file uploaded")
		return
	}

	ctx := r.Context()
	if s.opts.AnalysisTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.AnalysisTimeout)
		defer cancel()
	}

	cfg := s.opts.Pipeline
	cfg.Provider = provider
	cfg.Filename = filepath.Base(header.Filename)
	start := time.Now()
	res, err := analyze.Run(ctx, tmp.Name(), cfg)
	if err != nil {
		s.writeAnalyzeError(w, err)
		return
	}
	s.metrics.observe(res, time.Since(start).Seconds())

	if s.opts.Store == nil {
		s.writeJSON(w, http.StatusOK, store.Record{CreatedAt: time.Now().UTC(), Analysis: *res})
		return
	}
	rec, err := s.opts.Store.Save(r.Context(), res)
	if err != nil {
		s.logger.Error("save analysis", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to store analysis")
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) writeAnalyzeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analyze.ErrEmptyDocument):
		s.metrics.analyses.WithLabelValues("rejected").Inc()
		s.writeError(w, http.StatusBadRequest, "empty document")
	case errors.Is(err, analyze.ErrUnsupportedFormat):
		s.metrics.analyses.WithLabelValues("rejected").Inc()
		s.writeError(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		s.metrics.analyses.WithLabelValues("timeout").Inc()
		s.writeError(w, http.StatusGatewayTimeout, "analysis timed out")
	case errors.As(err, new(*analyze.ExtractError)):
		s.metrics.analyses.WithLabelValues("failed").Inc()
		s.logger.Warn("analysis failed", zap.Error(err))
		s.writeError(w, http.StatusUnprocessableEntity, "failed to extract document text")
	default:
		s.metrics.analyses.WithLabelValues("failed").Inc()
		s.logger.Error("analysis failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if s.opts.Store == nil {
		s.writeError(w, http.StatusNotFound, "history is disabled")
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	recs, err := s.opts.Store.List(r.Context(), limit)
	if err != nil {
		s.logger.Error("list analyses", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	s.writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	if s.opts.Store == nil {
		s.writeError(w, http.StatusNotFound, "history is disabled")
		return
	}
	rec, err := s.opts.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		s.logger.Error("get analysis", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to load analysis")
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}
