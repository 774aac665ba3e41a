package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/IconIdle_Go/internal/domain"
)

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgInvalidPlayerID       = "Invalid player id"
	ErrMsgStoreUnavailable      = "store connection failed"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
	ErrMsgIconNotFoundError    = "Icon not found"
	ErrMsgRecipeNotFoundError  = "Recipe not found"
	ErrMsgRewardNotFoundError  = "Reward not found or expired"
	ErrMsgGameNotFoundError    = "Game not found"
	ErrMsgGameNotRunningError  = "Game is not running"
	ErrMsgUnknownGameKindError = "Unknown game kind"
	ErrMsgDailyLimitError      = "No plays left today. Come back tomorrow"
	ErrMsgUnavailableError     = "Server is temporarily unavailable. Please try again later."
	ErrMsgNotFoundError        = "Resource not found."
)

// Success messages
const (
	MsgRewardAbandoned = "Reward discarded"
	MsgPlayerReset     = "Player progress reset"
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a
// message the player can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrUnknownGameKind):
		return http.StatusBadRequest, ErrMsgUnknownGameKindError
	case errors.Is(err, domain.ErrIconNotFound):
		return http.StatusNotFound, ErrMsgIconNotFoundError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrRewardNotFound):
		return http.StatusNotFound, ErrMsgRewardNotFoundError
	case errors.Is(err, domain.ErrGameNotFound):
		return http.StatusNotFound, ErrMsgGameNotFoundError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgNotFoundError
	case errors.Is(err, domain.ErrGameNotRunning):
		return http.StatusConflict, ErrMsgGameNotRunningError
	case errors.Is(err, domain.ErrDailyLimitReached):
		return http.StatusTooManyRequests, ErrMsgDailyLimitError
	case errors.Is(err, domain.ErrStoreFailed):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
