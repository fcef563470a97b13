package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/placement-readiness/internal/analysis"
	"github.com/jonathan/placement-readiness/internal/intel"
	"github.com/jonathan/placement-readiness/internal/jdtext"
	"github.com/jonathan/placement-readiness/internal/rounds"
	"github.com/jonathan/placement-readiness/internal/schema"
)

// AnalyzeRequest is the body for POST /analyses.
type AnalyzeRequest struct {
	Company string `json:"company" validate:"max=200"`
	Role    string `json:"role" validate:"max=200"`
	JDText  string `json:"jdText" validate:"max=100000"`
}

// ListAnalysesResponse is the body for GET /analyses.
type ListAnalysesResponse struct {
	Entries        []*schema.AnalysisEntry `json:"entries"`
	Count          int                     `json:"count"`
	CorruptedCount int                     `json:"corruptedCount"`
}

// ConfidenceRequest is the body for PATCH /analyses/{id}/confidence.
type ConfidenceRequest struct {
	Skill string `json:"skill" validate:"required"`
	State string `json:"state" validate:"required,oneof=know practice"`
}

// handleCreateAnalysis runs the full pipeline over a pasted JD and
// persists the resulting entry.
func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Request validation failed: "+err.Error())
		return
	}

	cleaned := jdtext.Clean(req.JDText)
	result := analysis.Run(req.Company, req.Role, cleaned)
	companyIntel := intel.GetCompanyIntel(req.Company, cleaned)
	size := intel.GetCompanySize(req.Company)
	roundMapping := rounds.GenerateRoundMapping(result.Extracted, size.SizeCategory)

	entry := schema.BuildEntry(schema.BuildParams{
		Company:      req.Company,
		Role:         req.Role,
		JDText:       cleaned,
		Extracted:    result.Extracted,
		RoundMapping: roundMapping,
		Checklist:    result.Checklist,
		Plan:         result.Plan,
		Questions:    result.Questions,
		BaseScore:    result.BaseScore,
		CompanyIntel: companyIntel,
	})

	saved, err := s.store.Create(r.Context(), entry)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, schema.NormalizeForView(saved))
}

// handleListAnalyses lists entries most-recent-first with the count of
// corrupted records that were filtered out.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	entries, corrupted, err := s.store.ListAll(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListAnalysesResponse{
		Entries:        entries,
		Count:          len(entries),
		CorruptedCount: corrupted,
	})
}

// handleLatestAnalysis returns the most recent entry, view-normalized.
func (s *Server) handleLatestAnalysis(w http.ResponseWriter, r *http.Request) {
	entry, err := s.store.GetLatest(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	if entry == nil {
		s.errorResponse(w, http.StatusNotFound, "No analyses yet")
		return
	}
	s.jsonResponse(w, http.StatusOK, schema.NormalizeForView(entry))
}

// handleGetAnalysis returns one entry by id, view-normalized.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	entry, err := s.store.GetByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	if entry == nil {
		notFound := &ErrEntryNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, schema.NormalizeForView(entry))
}

// handleConfidence toggles one skill's confidence state and persists the
// recomputed live score.
func (s *Server) handleConfidence(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req ConfidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Request validation failed: "+err.Error())
		return
	}

	updated, err := s.store.Update(r.Context(), id, func(entry *schema.AnalysisEntry) {
		entry.SetConfidence(req.Skill, req.State)
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	if updated == nil {
		notFound := &ErrEntryNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, schema.NormalizeForView(updated))
}
