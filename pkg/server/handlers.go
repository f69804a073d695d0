package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/braidkit/braidkit/pkg/braid"
	"github.com/braidkit/braidkit/pkg/buildinfo"
	"github.com/braidkit/braidkit/pkg/catalog"
	"github.com/braidkit/braidkit/pkg/errors"
	"github.com/braidkit/braidkit/pkg/interlace"
	"github.com/braidkit/braidkit/pkg/observability"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"built":   buildinfo.Date,
	})
}

// enumerationResponse is the JSON shape of a record table.
type enumerationResponse struct {
	Genus   int            `json:"genus"`
	Count   int            `json:"count"`
	Records []braid.Record `json:"records"`
}

func (s *Server) handleEnumeration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	genus, err := strconv.Atoi(chi.URLParam(r, "genus"))
	if err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidGenus, "genus must be an integer"))
		return
	}
	if err := errors.ValidateGenus(genus); err != nil {
		writeError(w, err)
		return
	}
	if genus > s.cfg.MaxGenus {
		writeError(w, errors.New(errors.ErrCodeInvalidGenus,
			"genus %d above this server's limit of %d", genus, s.cfg.MaxGenus))
		return
	}

	key := s.keyer.EnumerationKey(genus)
	data, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache get failed", "key", key, "err", err)
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, "enumeration")
	} else {
		observability.Cache().OnCacheMiss(ctx, "enumeration")
		startedAt := time.Now()
		records, err := braid.Enumerate(ctx, genus)
		if err != nil {
			writeError(w, err)
			return
		}
		data, err = json.Marshal(enumerationResponse{Genus: genus, Count: len(records), Records: records})
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "encoding response"))
			return
		}
		if err := s.cache.Set(ctx, key, data, 0); err != nil {
			s.logger.Warn("cache set failed", "key", key, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "enumeration", len(data))
		}
		if s.store != nil {
			run := catalog.NewRun(genus, records, startedAt, time.Now())
			if err := s.store.SaveRun(ctx, run); err != nil {
				s.logger.Warn("saving run failed", "genus", genus, "err", err)
			}
		}
	}

	if r.URL.Query().Get("format") == "text" {
		var resp enumerationResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "decoding cached table"))
			return
		}
		var b strings.Builder
		for _, rec := range resp.Records {
			b.WriteString(rec.String())
			b.WriteByte('\n')
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(b.String()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) parseWord(w http.ResponseWriter, r *http.Request) (braid.Word, bool) {
	raw := chi.URLParam(r, "word")
	if err := errors.ValidateWordString(raw); err != nil {
		writeError(w, err)
		return nil, false
	}
	word, err := braid.ParseWord(raw)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidWord, err, "parsing %q", raw))
		return nil, false
	}
	return word, true
}

func (s *Server) handleDT(w http.ResponseWriter, r *http.Request) {
	word, ok := s.parseWord(w, r)
	if !ok {
		return
	}
	code, err := word.DTCode()
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeEncoding, err, "encoding %q", word))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"word":      word.String(),
		"crossings": len(word),
		"dt":        code,
	})
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	word, ok := s.parseWord(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "svg"
	}
	contentType, ok := diagramContentTypes[format]
	if !ok {
		writeError(w, errors.New(errors.ErrCodeInvalidFormat,
			"format %q not supported (svg, png, dot)", format))
		return
	}

	key := s.keyer.DiagramKey(word.String(), format)
	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "diagram")
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(data)
		return
	}
	observability.Cache().OnCacheMiss(ctx, "diagram")

	diagram, err := interlace.FromWord(word)
	if err != nil {
		writeError(w, err)
		return
	}
	dot := interlace.ToDOT(diagram, interlace.Options{})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = interlace.RenderSVG(ctx, dot)
	case "png":
		data, err = interlace.RenderPNG(ctx, dot)
	}
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "rendering diagram"))
		return
	}

	if err := s.cache.Set(ctx, key, data, 0); err == nil {
		observability.Cache().OnCacheSet(ctx, "diagram", len(data))
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(data)
}

var diagramContentTypes = map[string]string{
	"svg": "image/svg+xml",
	"png": "image/png",
	"dot": "text/vnd.graphviz",
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.store.ListRuns(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if summaries == nil {
		summaries = []catalog.Summary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the JSON error shape.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

// writeError maps error codes onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidGenus, errors.ErrCodeInvalidWord,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidInput,
		errors.ErrCodeEncoding:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeRunNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: errors.GetCode(err)})
}
