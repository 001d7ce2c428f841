// Package api exposes the dashboard computations as a read-only JSON API.
package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter wires every endpoint onto a gorilla/mux router
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(h.logRequests)

	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/dashboard", h.Dashboard).Methods(http.MethodGet)
	r.HandleFunc("/projections/annual", h.AnnualProjections).Methods(http.MethodGet)
	r.HandleFunc("/projections/monthly", h.MonthlyProjections).Methods(http.MethodGet)
	r.HandleFunc("/loan/balance", h.LoanBalance).Methods(http.MethodGet)
	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}
