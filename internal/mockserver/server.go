// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mockserver provides an in-memory stub of the five journal backend
// endpoints for local development and end-to-end tests. Request and response
// shapes match what the client transport layer expects, including the
// `{success, message}` error bodies and the `{entries: [...]}` list wrapper.
package mockserver

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handler struct {
	store *entryStore

	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Info().Msg("mock journal server handler created")
	return &Handler{store: newEntryStore(), logger: logger}
}

// Init builds the router with the five journal endpoints. All operations are
// POST, mirroring the production contract.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(h.withLogging)

	router.Post("/api/upload", h.upload)
	router.Post("/api/entries/create", h.create)
	router.Post("/api/entries/get", h.get)
	router.Post("/api/entries/update", h.update)
	router.Post("/api/entries/delete", h.delete)

	return router
}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := h.logger.GetChildLogger()
		ctx := log.WithContext(r.Context())

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r.WithContext(ctx))

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
