package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/habit-tracker/internal/jwt"
	"github.com/sbilibin2017/habit-tracker/internal/middlewares"
)

// currentUser returns the authenticated identity from the request context.
// Writes 401 and returns false when the auth middleware did not run.
func currentUser(w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	claims := middlewares.GetUserFromContext(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Authentication required"})
		return nil, false
	}
	return claims, true
}

// parseIDParam parses the named uuid URL parameter. A malformed id cannot
// match any record, so it is reported as 404 rather than 400 — the same
// response a missing or foreign record produces.
func parseIDParam(w http.ResponseWriter, r *http.Request, name, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{Error: resource + " not found"})
		return uuid.Nil, false
	}
	return id, true
}
