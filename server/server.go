// Package server exposes batch assembly over HTTP for browser callers.
// The endpoint mirrors the CLI contract: ordered multipart image parts plus
// an output filename in, a single PDF attachment out.
package server

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"img2pdf/assembler"
	"img2pdf/contracts"
	"img2pdf/files_manager"
	"img2pdf/pdf_writer"
)

// Uploads are buffered in memory; one batch is capped at this many bytes.
const maxUploadBytes = 64 << 20

type Server struct {
	geom   contracts.Geometry
	logger *log.Logger
}

func New(geom contracts.Geometry, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{geom: geom, logger: logger}
}

// Router builds the HTTP handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	r.Post("/assemble", s.handleAssemble)

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"took", time.Since(start).Round(time.Millisecond))
	})
}

// handleAssemble accepts a multipart form with "images" file parts in page
// order and a "filename" field. Every part must declare an image/* type.
// The response is the finished PDF; a failed run sends no partial bytes.
func (s *Server) handleAssemble(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("invalid multipart form: %v", err), http.StatusBadRequest)
		return
	}

	base, err := files_manager.NormalizeFilename(r.FormValue("filename"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	parts := r.MultipartForm.File["images"]
	items := make([]contracts.Item, 0, len(parts))
	for _, fh := range parts {
		mimeType := fh.Header.Get("Content-Type")
		if !strings.HasPrefix(mimeType, "image/") {
			http.Error(w, fmt.Sprintf("part %q is not an image (%s)", fh.Filename, mimeType), http.StatusBadRequest)
			return
		}
		f, err := fh.Open()
		if err != nil {
			http.Error(w, fmt.Sprintf("reading part %q: %v", fh.Filename, err), http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			http.Error(w, fmt.Sprintf("reading part %q: %v", fh.Filename, err), http.StatusBadRequest)
			return
		}
		items = append(items, contracts.Item{Name: fh.Filename, Data: data, MIME: mimeType})
	}

	batch := &contracts.Batch{Items: items, Filename: base}
	if err := files_manager.ValidateBatch(batch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dw := pdf_writer.NewDocumentWriter(s.geom)
	dw.SetTitle(base)
	report, err := assembler.New(s.geom, s.logger).Assemble(batch, dw)
	if err != nil {
		http.Error(w, "assembly failed", http.StatusInternalServerError)
		s.logger.Error("assembly failed", "err", err)
		return
	}

	var buf bytes.Buffer
	if err := dw.Output(&buf); err != nil {
		http.Error(w, "assembly failed", http.StatusInternalServerError)
		s.logger.Error("serializing PDF failed", "err", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Error("writing response", "err", err)
		return
	}
	s.logger.Info("assembled", "filename", base+".pdf", "pages", len(report.Pages), "failed", len(report.Failed()))
}
