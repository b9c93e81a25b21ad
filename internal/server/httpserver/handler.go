package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/usercatalog/internal/server/models"
	"github.com/dmitrijs2005/usercatalog/internal/server/repositories/users"
	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func (s *HTTPServer) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(r.Context(), "failed to encode response", "error", err)
	}
}

// writeError maps service errors to status codes. Unexpected errors are
// logged and reported without detail.
func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, users.ErrNotFound):
		s.writeJSON(w, r, http.StatusNotFound, errorResponse{Error: "user not found"})
	default:
		s.logger.Error(r.Context(), err.Error())
		s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (s *HTTPServer) readInput(w http.ResponseWriter, r *http.Request) (models.UserInput, bool) {
	var in models.UserInput
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&in); err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return in, false
	}
	return in, true
}

func pathID(r *http.Request) (string, bool) {
	id, err := url.PathUnescape(mux.Vars(r)["id"])
	if err != nil || id == "" {
		return "", false
	}
	return id, true
}

func (s *HTTPServer) listUsers(w http.ResponseWriter, r *http.Request) {
	result, err := s.users.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if result == nil {
		result = []models.User{}
	}
	s.writeJSON(w, r, http.StatusOK, result)
}

func (s *HTTPServer) createUser(w http.ResponseWriter, r *http.Request) {
	in, ok := s.readInput(w, r)
	if !ok {
		return
	}

	user, err := s.users.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "User created", "id", user.ID)
	s.writeJSON(w, r, http.StatusCreated, user)
}

func (s *HTTPServer) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	in, ok := s.readInput(w, r)
	if !ok {
		return
	}

	user, err := s.users.Update(r.Context(), id, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "User updated", "id", user.ID)
	s.writeJSON(w, r, http.StatusOK, user)
}

func (s *HTTPServer) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	if err := s.users.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "User deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
