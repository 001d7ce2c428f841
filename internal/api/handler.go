package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/propeq/equity-dashboard/internal/calculation"
	"github.com/propeq/equity-dashboard/internal/domain"
	"github.com/propeq/equity-dashboard/internal/service"
	"github.com/propeq/equity-dashboard/internal/store"
	"github.com/propeq/equity-dashboard/pkg/dateutil"
)

// errBadRequest marks query parameters that could not be parsed
var errBadRequest = errors.New("bad request")

// Handler serves the read-only dashboard endpoints
type Handler struct {
	svc          *service.DashboardService
	log          logrus.FieldLogger
	defaultOwner string
}

// NewHandler creates a handler. defaultOwner is used when a request names no owner.
func NewHandler(svc *service.DashboardService, log logrus.FieldLogger, defaultOwner string) *Handler {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Handler{svc: svc, log: log, defaultOwner: defaultOwner}
}

// SeriesResponse carries one projection series per selected scenario
type SeriesResponse struct {
	AsOf      time.Time        `json:"asOf"`
	Owner     string           `json:"owner,omitempty"`
	Share     float64          `json:"share"`
	Scaled    bool             `json:"scaled"`
	Scenarios []ScenarioSeries `json:"scenarios"`
}

// ScenarioSeries is a single scenario's points, annual or monthly
type ScenarioSeries struct {
	Name       string      `json:"name"`
	RateOffset float64     `json:"rateOffset"`
	Points     interface{} `json:"points"`
}

// BalanceResponse is the resolved starting point of every projection
type BalanceResponse struct {
	AsOf            string  `json:"as_of"`
	Balance         float64 `json:"balance"`
	Source          string  `json:"source"`
	HomeValue       float64 `json:"home_value"`
	HomeValueSource string  `json:"home_value_source"`
	MonthlyPI       float64 `json:"monthly_pi"`
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Dashboard returns the full report
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	opts, err := h.dashboardOptions(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	report, err := h.svc.Dashboard(r.Context(), opts)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

// AnnualProjections returns the 11-point annual series per scenario
func (h *Handler) AnnualProjections(w http.ResponseWriter, r *http.Request) {
	h.series(w, r, func(sp domain.ScenarioProjection) interface{} { return sp.Annual })
}

// MonthlyProjections returns the 120-point monthly series per scenario
func (h *Handler) MonthlyProjections(w http.ResponseWriter, r *http.Request) {
	h.series(w, r, func(sp domain.ScenarioProjection) interface{} { return sp.Monthly })
}

func (h *Handler) series(w http.ResponseWriter, r *http.Request, pick func(domain.ScenarioProjection) interface{}) {
	opts, err := h.dashboardOptions(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	report, err := h.svc.Dashboard(r.Context(), opts)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := SeriesResponse{AsOf: report.AsOf, Owner: report.Owner, Share: report.Share, Scaled: report.Scaled}
	for _, sp := range report.Scenarios {
		resp.Scenarios = append(resp.Scenarios, ScenarioSeries{
			Name:       sp.Scenario.Name,
			RateOffset: sp.Scenario.RateOffset,
			Points:     pick(sp),
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// LoanBalance returns the resolved loan balance and home value
func (h *Handler) LoanBalance(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseAsOf(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.svc.Balance(r.Context(), asOf)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, BalanceResponse{
		AsOf:            b.AsOf.Format(dateutil.DateLayout),
		Balance:         b.LoanBalance.Value,
		Source:          b.LoanBalance.Source,
		HomeValue:       b.HomeValue.Value,
		HomeValueSource: b.HomeValue.Source,
		MonthlyPI:       b.MonthlyPI,
	})
}

func (h *Handler) dashboardOptions(r *http.Request) (service.DashboardOptions, error) {
	q := r.URL.Query()
	opts := service.DashboardOptions{
		Owner:    q.Get("owner"),
		Scenario: q.Get("scenario"),
	}
	if opts.Owner == "" {
		opts.Owner = h.defaultOwner
	}
	if v := q.Get("my_share"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("%w: my_share must be true or false", errBadRequest)
		}
		opts.MyShare = b
	}
	asOf, err := parseAsOf(r)
	if err != nil {
		return opts, err
	}
	opts.AsOf = asOf
	return opts, nil
}

func parseAsOf(r *http.Request) (time.Time, error) {
	v := r.URL.Query().Get("as_of")
	if v == "" {
		return time.Time{}, nil
	}
	t, err := dateutil.ParseDate(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return t, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, calculation.ErrUnknownScenario),
		errors.Is(err, service.ErrUnknownOwner):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	entry := h.log.WithFields(logrus.Fields{"path": r.URL.Path, "status": status})
	if status >= http.StatusInternalServerError {
		entry.Errorf("request failed: %v", err)
	} else {
		entry.Warnf("request rejected: %v", err)
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeJSON encodes the whole body before the status line is written
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		h.log.Errorf("failed to encode response: %v", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(map[string]string{"error": "failed to encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
