// Package httpapi exposes the risk engine over a small JSON API.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/rustyeddy/riskcalc/journal"
	"github.com/rustyeddy/riskcalc/risk"
)

const maxBodyBytes = 1 << 20

type Server struct {
	policy  risk.Policy
	journal journal.Journal
	log     zerolog.Logger
}

// NewServer wires the API. A nil journal disables recording.
func NewServer(policy risk.Policy, j journal.Journal, log zerolog.Logger) *Server {
	if j == nil {
		j = journal.Nop{}
	}
	return &Server{policy: policy, journal: j, log: log}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(hlog.NewHandler(s.log))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetReqID(r.Context())).
			Int("status", status).
			Int("size", size).
			Dur("duration", d).
			Msg("request")
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/v1", func(v1 chi.Router) {
		v1.Post("/trade", s.handleTrade)
		v1.Post("/allocation", s.handleAllocation)
		v1.Post("/validate", s.handleValidate)
		v1.Post("/chart", s.handleChart)
		v1.Get("/breakeven", s.handleBreakeven)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

type tradeResponse struct {
	risk.TradeResult
	RiskLevel        risk.RiskLevel   `json:"risk_level"`
	Assessment       risk.Assessment  `json:"assessment,omitempty"`
	AssessmentText   string           `json:"assessment_text,omitempty"`
	RatioLabel       string           `json:"ratio_label"`
	BreakevenWinRate float64          `json:"breakeven_win_rate"`
	Allowed          bool             `json:"allowed"`
	Violations       []risk.Violation `json:"violations,omitempty"`
	RecordID         string           `json:"record_id,omitempty"`
}

func (s *Server) handleTrade(w http.ResponseWriter, r *http.Request) {
	var p risk.TradeParams
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res := risk.ComputeTradeRisk(p)
	d := risk.Evaluate(s.policy, p, res)
	a := risk.Assess(res.RiskRewardRatio)

	resp := tradeResponse{
		TradeResult:      res,
		RiskLevel:        risk.RiskLevelFor(p.RiskPercentage),
		Assessment:       a,
		AssessmentText:   a.Message(),
		RatioLabel:       risk.FormatRatio(res.RiskRewardRatio),
		BreakevenWinRate: risk.BreakevenWinRate(res.RiskRewardRatio),
		Allowed:          d.Allowed,
		Violations:       d.Violations,
	}

	if res.RiskAmount > 0 {
		rec := journal.NewTradeRecord(p, res)
		if err := s.journal.RecordTrade(rec); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("record trade calculation")
		} else {
			resp.RecordID = rec.ID
		}
	}

	writeJSON(w, r, http.StatusOK, resp)
}

type allocationResponse struct {
	risk.AllocationResult
	RatioLabel string           `json:"ratio_label"`
	Allowed    bool             `json:"allowed"`
	Violations []risk.Violation `json:"violations,omitempty"`
	RecordID   string           `json:"record_id,omitempty"`
}

func (s *Server) handleAllocation(w http.ResponseWriter, r *http.Request) {
	var p risk.AllocationParams
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := risk.ComputeCapitalAllocationRisk(p)
	if errors.Is(err, risk.ErrInvalidParams) {
		writeJSON(w, r, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":    risk.ErrInvalidParams.Error(),
			"detail":   err.Error(),
			"messages": risk.ValidateParams(p),
		})
		return
	}
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	d := risk.EvaluateAllocation(s.policy, p, res)
	resp := allocationResponse{
		AllocationResult: res,
		RatioLabel:       risk.FormatRatio(res.RiskRewardRatio),
		Allowed:          d.Allowed,
		Violations:       d.Violations,
	}

	rec := journal.NewAllocationRecord(p, res)
	if err := s.journal.RecordAllocation(rec); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("record allocation calculation")
	} else {
		resp.RecordID = rec.ID
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var p risk.AllocationParams
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	msgs := risk.ValidateParams(p)
	writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"valid":    len(msgs) == 0,
		"messages": msgs,
	})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	var p risk.AllocationParams
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"points": risk.GenerateChartDataSeries(p),
	})
}

func (s *Server) handleBreakeven(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"points": risk.BreakevenCurve(),
	})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// writeJSON encodes v before writing the header. Encoding failures are
// logged and answered with a 500.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Int("status", status).Msg("encode response")
		status = http.StatusInternalServerError
		body, _ = json.Marshal(map[string]string{"error": "failed to encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}
