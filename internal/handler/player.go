package handler

import (
	"context"
	"net/http"

	"github.com/osse101/IconIdle_Go/internal/clock"
	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/game"
	"github.com/osse101/IconIdle_Go/internal/logger"
)

// Sessions gives serialized access to player sessions
type Sessions interface {
	With(ctx context.Context, playerID string, fn func(s *game.Session) error) error
	Reset(ctx context.Context, playerID string) error
	Clock() clock.Clock
}

// PlayerHandlers serves every player-scoped route
type PlayerHandlers struct {
	sessions Sessions
	icons    IconCatalog
}

// NewPlayerHandlers creates player handlers
func NewPlayerHandlers(sessions Sessions, icons IconCatalog) *PlayerHandlers {
	return &PlayerHandlers{sessions: sessions, icons: icons}
}

// CraftRequest is a crafting submission
type CraftRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1,max=8,dive,required,slug"`
}

// InventoryResponse lists what a player holds
type InventoryResponse struct {
	Entries  []InventoryEntryView `json:"entries"`
	Unlocked []string             `json:"unlocked"`
}

// InventoryEntryView is one held icon
type InventoryEntryView struct {
	Icon     IconView `json:"icon"`
	Quantity int      `json:"quantity"`
}

// RecipeListResponse wraps recipes
type RecipeListResponse struct {
	Recipes []*domain.Recipe `json:"recipes"`
	Count   int              `json:"count"`
}

// withPlayer resolves the player id and runs fn inside the player's session.
// Errors from fn are mapped to a response.
func (h *PlayerHandlers) withPlayer(w http.ResponseWriter, r *http.Request, opName string, fn func(ctx context.Context, s *game.Session) error) {
	playerID, ok := playerIDParam(w, r)
	if !ok {
		return
	}
	ctx := logger.WithPlayerID(r.Context(), playerID)
	err := h.sessions.With(ctx, playerID, func(s *game.Session) error {
		return fn(ctx, s)
	})
	if err != nil {
		respondServiceError(w, r.WithContext(ctx), opName, err)
	}
}

// HandleCraft submits ingredients for matching
// @Summary Craft
// @Description Ingredients match a recipe regardless of order. No match is a 200 with matched=false.
// @Tags crafting
// @Accept json
// @Produce json
// @Param playerID path string true "Player id"
// @Param request body CraftRequest true "Ingredients"
// @Success 200 {object} domain.CraftResult
// @Failure 400 {object} ValidationErrorResponse
// @Router /players/{playerID}/craft [post]
func (h *PlayerHandlers) HandleCraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Craft"); err != nil {
			return
		}
		h.withPlayer(w, r, "Craft", func(ctx context.Context, s *game.Session) error {
			result, err := s.Crafting.Craft(ctx, req.Ingredients)
			if err != nil {
				return err
			}
			respondJSON(w, http.StatusOK, result)
			return nil
		})
	}
}

// HandleListRecipes lists every recipe with the player's discovery flags
// @Summary List recipes
// @Tags crafting
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} RecipeListResponse
// @Router /players/{playerID}/recipes [get]
func (h *PlayerHandlers) HandleListRecipes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.withPlayer(w, r, "List recipes", func(_ context.Context, s *game.Session) error {
			recipes := s.Crafting.Registry().All()
			respondJSON(w, http.StatusOK, RecipeListResponse{Recipes: recipes, Count: len(recipes)})
			return nil
		})
	}
}

// HandleListDiscovered lists the recipes a player has found
// @Summary List discovered recipes
// @Tags crafting
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} RecipeListResponse
// @Router /players/{playerID}/recipes/discovered [get]
func (h *PlayerHandlers) HandleListDiscovered() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.withPlayer(w, r, "List discovered recipes", func(_ context.Context, s *game.Session) error {
			recipes := s.Crafting.ListDiscovered()
			respondJSON(w, http.StatusOK, RecipeListResponse{Recipes: recipes, Count: len(recipes)})
			return nil
		})
	}
}

// HandleGetInventory returns held icons, rarest first
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} InventoryResponse
// @Router /players/{playerID}/inventory [get]
func (h *PlayerHandlers) HandleGetInventory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.withPlayer(w, r, "Get inventory", func(ctx context.Context, s *game.Session) error {
			entries := s.Inventory.Snapshot(ctx, h.icons)
			views := make([]InventoryEntryView, len(entries))
			for i, e := range entries {
				views[i] = InventoryEntryView{Icon: newIconView(e.Icon), Quantity: e.Quantity}
			}
			respondJSON(w, http.StatusOK, InventoryResponse{Entries: views, Unlocked: s.Inventory.Unlocked()})
			return nil
		})
	}
}

// HandleResetPlayer deletes a player's saved progress
// @Summary Reset player
// @Tags players
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse
// @Router /players/{playerID} [delete]
func (h *PlayerHandlers) HandleResetPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := playerIDParam(w, r)
		if !ok {
			return
		}
		ctx := logger.WithPlayerID(r.Context(), playerID)
		if err := h.sessions.Reset(ctx, playerID); err != nil {
			respondServiceError(w, r, "Reset player", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlayerReset})
	}
}
