package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/game"
)

// PendingRewardsResponse lists drawn rewards awaiting a claim
type PendingRewardsResponse struct {
	Rewards []domain.PendingReward `json:"rewards"`
}

// ClaimResponse is the outcome of a claim
type ClaimResponse struct {
	Reward        domain.PendingReward `json:"reward"`
	NewlyUnlocked bool                 `json:"newly_unlocked"`
}

// HandleListPendingRewards lists the player's unclaimed rewards
// @Summary Pending rewards
// @Tags rewards
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} PendingRewardsResponse
// @Router /players/{playerID}/rewards [get]
func (h *PlayerHandlers) HandleListPendingRewards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.withPlayer(w, r, "List rewards", func(_ context.Context, s *game.Session) error {
			respondJSON(w, http.StatusOK, PendingRewardsResponse{Rewards: s.Rewards.Pending()})
			return nil
		})
	}
}

// HandleClaimReward commits a drawn reward to the inventory
// @Summary Claim reward
// @Description A reward can be claimed once; expired or unknown ids are 404
// @Tags rewards
// @Produce json
// @Param playerID path string true "Player id"
// @Param rewardID path string true "Reward id"
// @Success 200 {object} ClaimResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /players/{playerID}/rewards/{rewardID}/claim [post]
func (h *PlayerHandlers) HandleClaimReward() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rewardID := chi.URLParam(r, ParamRewardID)
		h.withPlayer(w, r, "Claim reward", func(ctx context.Context, s *game.Session) error {
			res, err := s.Rewards.Claim(ctx, rewardID)
			if err != nil {
				return err
			}
			respondJSON(w, http.StatusOK, ClaimResponse{Reward: res.Reward, NewlyUnlocked: res.NewlyUnlocked})
			return nil
		})
	}
}

// HandleAbandonReward discards a drawn reward
// @Summary Discard reward
// @Tags rewards
// @Produce json
// @Param playerID path string true "Player id"
// @Param rewardID path string true "Reward id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/rewards/{rewardID} [delete]
func (h *PlayerHandlers) HandleAbandonReward() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rewardID := chi.URLParam(r, ParamRewardID)
		h.withPlayer(w, r, "Abandon reward", func(ctx context.Context, s *game.Session) error {
			if !s.Rewards.Abandon(ctx, rewardID) {
				return domain.ErrRewardNotFound
			}
			respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRewardAbandoned})
			return nil
		})
	}
}
