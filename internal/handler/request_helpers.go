package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IconIdle_Go/internal/logger"
)

// URL parameter names shared by the router and the handlers
const (
	ParamPlayerID = "playerID"
	ParamIconID   = "iconID"
	ParamGameID   = "gameID"
	ParamRewardID = "rewardID"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written.
//
// Example usage:
//
//	var req CraftRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Craft"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// playerIDParam reads and validates the player id path parameter. If ok is
// false the response has already been written.
func playerIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	playerID := chi.URLParam(r, ParamPlayerID)
	if err := GetValidator().ValidateVar(playerID, "required,slug"); err != nil {
		logger.FromContext(r.Context()).Warn("Rejected player id", "player_id", playerID)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPlayerID)
		return "", false
	}
	return playerID, true
}

// intQueryParam parses an optional integer query parameter bounded to
// [lo, hi]. If ok is false the response has already been written.
func intQueryParam(w http.ResponseWriter, r *http.Request, name string, defaultValue, lo, hi int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < lo || value > hi {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
		return 0, false
	}
	return value, true
}

// boolQueryParam parses an optional boolean query parameter
func boolQueryParam(w http.ResponseWriter, r *http.Request, name string, defaultValue bool) (bool, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
		return false, false
	}
	return value, true
}
