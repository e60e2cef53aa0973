// Package main implements a mock webhook receiver for local development.
// It accepts notification deliveries from price-alert-api, logs them, and
// can inject failures to exercise the server's delivery error handling.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"
)

type notification struct {
	AlertID      string  `json:"alertId"`
	Email        string  `json:"email"`
	ProductURL   string  `json:"productUrl"`
	CurrentPrice int     `json:"currentPrice"`
	TargetPrice  float64 `json:"targetPrice"`
	Message      string  `json:"message"`
}

// sink records received notifications and injects failures.
type sink struct {
	mu        sync.Mutex
	received  []notification
	delivered int
	failEvery int
}

func main() {
	port := flag.Int("port", 8090, "port to listen on")
	failEvery := flag.Int("fail-every", 0, "return 500 for every Nth delivery (0 = never fail)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := &sink{failEvery: *failEvery}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /webhook", s.webhookHandler(logger))
	mux.HandleFunc("GET /deliveries", s.deliveriesHandler())

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock webhook receiver", "addr", addr, "fail_every", *failEvery)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *sink) webhookHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var n notification
		if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
			logger.Warn("rejecting malformed delivery", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		s.delivered++
		fail := s.failEvery > 0 && s.delivered%s.failEvery == 0
		if !fail {
			s.received = append(s.received, n)
		}
		s.mu.Unlock()

		if fail {
			logger.Warn("injecting delivery failure", "alert_id", n.AlertID)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		logger.Info("notification received",
			"alert_id", n.AlertID,
			"email", n.Email,
			"current_price", n.CurrentPrice,
			"target_price", n.TargetPrice,
		)
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *sink) deliveriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.mu.Lock()
		resp := struct {
			Delivered int            `json:"delivered"`
			Received  []notification `json:"received"`
		}{
			Delivered: s.delivered,
			Received:  append([]notification{}, s.received...),
		}
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(resp)
	}
}
