package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/wifikeeper/internal/common"
	"github.com/dmitrijs2005/wifikeeper/internal/server/services"
	"github.com/gorilla/mux"
)

func decodeBody(r *http.Request, out any) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: invalid request body", common.ErrorValidation)
	}
	return nil
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	token, user, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		s.logger.Warn(r.Context(), "registration failed", "error", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, authResponse{Token: token, User: toUserResponse(user)})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	token, user, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, authResponse{Token: token, User: toUserResponse(user)})
}

func (s *Server) handleCreateCredential(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		respondError(w, common.ErrorUnauthorized)
		return
	}

	var req createCredentialRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	cred, err := s.creds.Create(r.Context(), actor, services.CreateCredentialRequest{
		SSID:         req.SSID,
		Password:     req.Password,
		SecurityType: req.SecurityType,
		Hidden:       req.IsHidden,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toCredentialResponse(cred))
}

func (s *Server) handleListCredentials(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		respondError(w, common.ErrorUnauthorized)
		return
	}

	creds, err := s.creds.ListMine(r.Context(), actor)
	if err != nil {
		respondError(w, err)
		return
	}

	result := make([]credentialResponse, 0, len(creds))
	for i := range creds {
		result = append(result, toCredentialResponse(&creds[i]))
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetCredential(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		respondError(w, common.ErrorUnauthorized)
		return
	}

	cred, err := s.creds.GetByID(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toCredentialResponse(cred))
}

func (s *Server) handleDeleteCredential(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		respondError(w, common.ErrorUnauthorized)
		return
	}

	if err := s.creds.Delete(r.Context(), actor, mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		respondError(w, common.ErrorUnauthorized)
		return
	}

	users, err := s.users.ListAll(r.Context(), actor)
	if err != nil {
		respondError(w, err)
		return
	}

	result := make([]userResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		respondError(w, common.ErrorUnauthorized)
		return
	}

	users, err := s.users.ListAll(r.Context(), actor)
	if err != nil {
		respondError(w, err)
		return
	}

	credCount, err := s.creds.CountAll(r.Context(), actor)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, statsResponse{
		TotalUsers:       len(users),
		TotalCredentials: credCount,
	})
}

func (s *Server) handleAdminListCredentials(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		respondError(w, common.ErrorUnauthorized)
		return
	}

	creds, err := s.creds.ListAll(r.Context(), actor)
	if err != nil {
		respondError(w, err)
		return
	}

	result := make([]credentialResponse, 0, len(creds))
	for i := range creds {
		result = append(result, toOwnedCredentialResponse(&creds[i]))
	}
	respondJSON(w, http.StatusOK, result)
}
