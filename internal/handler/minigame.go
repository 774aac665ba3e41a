package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/game"
)

// StartGameRequest starts a mini-game round
type StartGameRequest struct {
	Kind domain.GameKind `json:"kind" validate:"required,oneof=tap_rush sequence reaction"`
}

// GameListResponse lists the retained rounds
type GameListResponse struct {
	Games          []domain.GameView `json:"games"`
	RemainingPlays int               `json:"remaining_plays"`
}

// PlaysResponse reports the daily counter. -1 means unlimited.
type PlaysResponse struct {
	RemainingPlays int `json:"remaining_plays"`
}

// HandleStartGame consumes a daily play and starts a round
// @Summary Start mini-game
// @Tags minigames
// @Accept json
// @Produce json
// @Param playerID path string true "Player id"
// @Param request body StartGameRequest true "Game kind"
// @Success 201 {object} domain.GameView
// @Failure 400 {object} ValidationErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /players/{playerID}/games [post]
func (h *PlayerHandlers) HandleStartGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartGameRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Start game"); err != nil {
			return
		}
		h.withPlayer(w, r, "Start game", func(ctx context.Context, s *game.Session) error {
			view, err := s.MiniGames.Start(ctx, req.Kind)
			if err != nil {
				return err
			}
			respondJSON(w, http.StatusCreated, view)
			return nil
		})
	}
}

// HandleListGames lists the player's recent rounds
// @Summary List mini-games
// @Tags minigames
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} GameListResponse
// @Router /players/{playerID}/games [get]
func (h *PlayerHandlers) HandleListGames() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.withPlayer(w, r, "List games", func(ctx context.Context, s *game.Session) error {
			respondJSON(w, http.StatusOK, GameListResponse{
				Games:          s.MiniGames.List(ctx),
				RemainingPlays: s.MiniGames.RemainingPlays(),
			})
			return nil
		})
	}
}

// HandleGetPlays returns the plays left today
// @Summary Remaining plays
// @Tags minigames
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} PlaysResponse
// @Router /players/{playerID}/games/plays [get]
func (h *PlayerHandlers) HandleGetPlays() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.withPlayer(w, r, "Get plays", func(_ context.Context, s *game.Session) error {
			respondJSON(w, http.StatusOK, PlaysResponse{RemainingPlays: s.MiniGames.RemainingPlays()})
			return nil
		})
	}
}

// HandleGetGame returns one round
// @Summary Get mini-game
// @Tags minigames
// @Produce json
// @Param playerID path string true "Player id"
// @Param gameID path string true "Game id"
// @Success 200 {object} domain.GameView
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/games/{gameID} [get]
func (h *PlayerHandlers) HandleGetGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, ParamGameID)
		h.withPlayer(w, r, "Get game", func(ctx context.Context, s *game.Session) error {
			view, err := s.MiniGames.Get(ctx, gameID)
			if err != nil {
				return err
			}
			respondJSON(w, http.StatusOK, view)
			return nil
		})
	}
}

// HandleGameInput forwards a tap or symbol to a running round
// @Summary Send input
// @Description A winning input draws a pending reward; the view carries its id for claiming
// @Tags minigames
// @Accept json
// @Produce json
// @Param playerID path string true "Player id"
// @Param gameID path string true "Game id"
// @Param request body domain.GameInput true "Input"
// @Success 200 {object} domain.GameView
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /players/{playerID}/games/{gameID}/input [post]
func (h *PlayerHandlers) HandleGameInput() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.GameInput
		if err := DecodeAndValidateRequest(r, w, &req, "Game input"); err != nil {
			return
		}
		gameID := chi.URLParam(r, ParamGameID)
		h.withPlayer(w, r, "Game input", func(ctx context.Context, s *game.Session) error {
			view, err := s.MiniGames.Input(ctx, gameID, req)
			if err != nil {
				return err
			}
			respondJSON(w, http.StatusOK, view)
			return nil
		})
	}
}

// HandleGameTick brings a round up to the server clock. Clients call it once
// per frame to learn about timeouts and signals.
// @Summary Advance time
// @Tags minigames
// @Produce json
// @Param playerID path string true "Player id"
// @Param gameID path string true "Game id"
// @Success 200 {object} domain.GameView
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /players/{playerID}/games/{gameID}/tick [post]
func (h *PlayerHandlers) HandleGameTick() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, ParamGameID)
		h.withPlayer(w, r, "Game tick", func(ctx context.Context, s *game.Session) error {
			view, err := s.MiniGames.Tick(ctx, gameID)
			if err != nil {
				return err
			}
			respondJSON(w, http.StatusOK, view)
			return nil
		})
	}
}

// HandleStopGame tears a round down and discards its unclaimed reward
// @Summary Stop mini-game
// @Tags minigames
// @Produce json
// @Param playerID path string true "Player id"
// @Param gameID path string true "Game id"
// @Success 200 {object} domain.GameView
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/games/{gameID}/stop [post]
func (h *PlayerHandlers) HandleStopGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, ParamGameID)
		h.withPlayer(w, r, "Stop game", func(ctx context.Context, s *game.Session) error {
			view, err := s.MiniGames.Stop(ctx, gameID)
			if err != nil {
				return err
			}
			respondJSON(w, http.StatusOK, view)
			return nil
		})
	}
}
