package server

import (
	"encoding/json"
	"net/http"
)

// TokenRequest is the body for POST /auth/token.
type TokenRequest struct {
	Passphrase string `json:"passphrase" validate:"required"`
}

// TokenResponse carries the issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// handleToken exchanges the access passphrase for a session token. With
// auth disabled the endpoint reports that no token is needed.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if s.jwtService == nil {
		s.jsonResponse(w, http.StatusOK, map[string]string{"status": "auth disabled"})
		return
	}

	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "passphrase is required")
		return
	}

	if !s.passphrase.VerifyPassphrase(req.Passphrase, s.hash) {
		err := &ErrInvalidPassphrase{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := s.jwtService.GenerateToken()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	s.jsonResponse(w, http.StatusOK, TokenResponse{Token: token})
}
