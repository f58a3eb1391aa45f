// -----------------------------------------------------------------------------
// Copyright (c) 2025 TEENet Technology (Hong Kong) Limited. All Rights Reserved.
//
// This software and its associated documentation files (the "Software") are
// the proprietary and confidential information of TEENet Technology (Hong Kong) Limited.
// Unauthorized copying of this file, via any medium, is strictly prohibited.
//
// No license, express or implied, is hereby granted, except by written agreement
// with TEENet Technology (Hong Kong) Limited. Use of this software without permission
// is a violation of applicable laws.
//
// -----------------------------------------------------------------------------

// Package network exposes the adapter over HTTP and drives remote adapters.
//
// The wrapper server answers POST /run with the outcome of one descriptor
// and GET /health with a liveness probe. Every descriptor that reaches the
// adapter gets a 200 response, skips included; only a crash inside the
// adapter produces a 500.
package network

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fouzhe/cryptofuzz/internal/types"
)

// MaxDescriptorSize bounds the body of a /run request.
const MaxDescriptorSize = 4 << 20

// Runner processes raw descriptors. It is satisfied by *adapter.Adapter.
type Runner interface {
	Run(data []byte) types.Result
	RunCBOR(data []byte) types.Result
}

// Server is the HTTP wrapper around a Runner.
type Server struct {
	server   *http.Server
	listener net.Listener
	runner   Runner

	mu      sync.Mutex
	started bool
}

// NewServer creates a wrapper server listening on addr (":0" picks a free
// port). Call Start to begin serving.
func NewServer(addr string, runner Runner) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create listener: %w", err)
	}

	s := &Server{
		listener: listener,
		runner:   runner,
	}
	s.server = &http.Server{
		Handler:           NewHandler(runner),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// NewHandler builds the chi router serving runner.
func NewHandler(runner Runner) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(crashRecoverer)

	h := &runHandler{runner: runner}
	r.Get("/health", h.health)
	r.Post("/run", h.run)
	return r
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Start starts serving in a goroutine.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("server already started")
	}
	s.started = true

	go func() {
		if err := s.server.Serve(s.listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Wrapper server error: %v", err)
		}
	}()

	log.Printf("Wrapper server listening on %s", s.Addr())
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return s.listener.Close()
	}

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	s.started = false

	log.Printf("Wrapper server stopped")
	return nil
}

type runHandler struct {
	runner Runner
}

func (h *runHandler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *runHandler) run(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxDescriptorSize))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read descriptor: %v", err), http.StatusRequestEntityTooLarge)
		return
	}

	var res types.Result
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/cbor") {
		res = h.runner.RunCBOR(body)
	} else {
		res = h.runner.Run(body)
	}
	writeJSON(w, http.StatusOK, types.NewReport(res))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Warning: failed to write response: %v", err)
	}
}
