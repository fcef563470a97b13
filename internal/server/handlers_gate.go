package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/placement-readiness/internal/gate"
)

// GateResponse is the body for gate reads and writes.
type GateResponse struct {
	Items    []bool `json:"items"`
	Complete bool   `json:"complete"`
}

// SetGateRequest is the body for PUT /gate.
type SetGateRequest struct {
	Items []bool `json:"items" validate:"required,len=10"`
}

// handleGetGate returns the sign-off vector.
func (s *Server) handleGetGate(w http.ResponseWriter, r *http.Request) {
	items := s.gate.Get(r.Context())
	s.jsonResponse(w, http.StatusOK, GateResponse{Items: items, Complete: allTrue(items)})
}

// handleSetGate replaces the sign-off vector.
func (s *Server) handleSetGate(w http.ResponseWriter, r *http.Request) {
	var req SetGateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "items must be exactly 10 booleans")
		return
	}

	items := s.gate.Set(r.Context(), req.Items)
	s.jsonResponse(w, http.StatusOK, GateResponse{Items: items, Complete: allTrue(items)})
}

// handleResetGate clears the sign-off vector.
func (s *Server) handleResetGate(w http.ResponseWriter, r *http.Request) {
	items := s.gate.Reset(r.Context())
	s.jsonResponse(w, http.StatusOK, GateResponse{Items: items, Complete: false})
}

// handleGateStatus reports whether the gate is fully signed off.
func (s *Server) handleGateStatus(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]bool{"complete": s.gate.IsComplete(r.Context())})
}

func allTrue(items []bool) bool {
	if len(items) != gate.Length {
		return false
	}
	for _, v := range items {
		if !v {
			return false
		}
	}
	return true
}
