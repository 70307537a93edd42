package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"hanviet-cards/backend/app/services"
	"hanviet-cards/backend/global"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service sentinel errors onto HTTP statuses.
// Anything unrecognized is an internal error and must not leak details.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		writeJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeJSONError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrCardForbidden):
		writeJSONError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrCardNotFound):
		writeJSONError(w, http.StatusNotFound, err.Error())
	default:
		global.Logger.Error().Err(err).Msg("internal error")
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}
