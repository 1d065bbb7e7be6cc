// Package report exposes the statement derivation engine over HTTP.
package report

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/NIgan1989/finsights-engine/pkg/core/classify"
	"github.com/NIgan1989/finsights-engine/pkg/core/report"
	"github.com/NIgan1989/finsights-engine/pkg/core/store"
	"github.com/NIgan1989/finsights-engine/pkg/core/validate"
	"github.com/NIgan1989/finsights-engine/pkg/models"
)

// linkageTolerance is the slack allowed in the advisory linkage checks.
const linkageTolerance = 0.01

// Handler serves report generation and retrieval.
type Handler struct {
	engine     *report.Engine
	repo       *store.ReportRepo
	classifier classify.Classifier
	log        zerolog.Logger
}

// NewHandler wires the engine with optional persistence and classification.
// repo may be nil (no database configured); classifier may be nil.
func NewHandler(engine *report.Engine, repo *store.ReportRepo, classifier classify.Classifier, log zerolog.Logger) *Handler {
	return &Handler{engine: engine, repo: repo, classifier: classifier, log: log}
}

// GenerateRequest is the POST /api/reports body.
type GenerateRequest struct {
	Transactions []models.Transaction `json:"transactions"`
	Persist      bool                 `json:"persist,omitempty"`
}

// GenerateResponse wraps the report with its storage ID when persisted.
type GenerateResponse struct {
	ID     string                  `json:"id,omitempty"`
	Report *models.FinancialReport `json:"report"`
}

func cors(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

// HandleGenerate derives a report from a classified transaction list.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	result := h.engine.Generate(req.Transactions)
	h.log.Info().
		Int("transactions", len(req.Transactions)).
		Dur("elapsed", time.Since(start)).
		Msg("report generated")

	// Advisory linkage checks: logged, never blocking.
	if linkage := validate.CheckReport(&result, linkageTolerance); !linkage.AllPassed {
		h.log.Warn().Strs("failed", linkage.FailedChecks).Msg("report linkage checks failed")
	}

	resp := GenerateResponse{Report: &result}
	if req.Persist && h.repo != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()
		id, err := h.repo.Save(ctx, &result)
		if err != nil {
			h.log.Error().Err(err).Msg("failed to persist report")
			http.Error(w, "failed to persist report", http.StatusInternalServerError)
			return
		}
		resp.ID = id
	}

	writeJSON(w, resp)
}

// HandleGet retrieves a stored report by ?id=.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	if h.repo == nil {
		http.Error(w, "persistence not configured", http.StatusNotImplemented)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()
		recent, err := h.repo.ListRecent(ctx, 20)
		if err != nil {
			h.log.Error().Err(err).Msg("failed to list reports")
			http.Error(w, "failed to list reports", http.StatusInternalServerError)
			return
		}
		writeJSON(w, recent)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	stored, err := h.repo.Load(ctx, id)
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("failed to load report")
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	writeJSON(w, stored)
}

// HandleClassify runs the configured classifier over raw transactions.
func (h *Handler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.classifier == nil {
		http.Error(w, "classifier not configured", http.StatusNotImplemented)
		return
	}

	var reqs []classify.Request
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, err := h.classifier.Classify(r.Context(), reqs)
	if err != nil {
		h.log.Error().Err(err).Msg("classification failed")
		http.Error(w, "classification failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, results)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
