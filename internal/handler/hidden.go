package handler

import (
	"context"
	"net/http"

	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/game"
)

// DeviceStateRequest is a device snapshot reported by the client
type DeviceStateRequest struct {
	BatteryLevel *float64            `json:"battery_level" validate:"omitempty,gte=0,lte=1"`
	Charging     bool                `json:"charging"`
	Volume       *float64            `json:"volume" validate:"omitempty,gte=0,lte=1"`
	Orientation  domain.Orientation  `json:"orientation" validate:"omitempty,oneof=unknown portrait portrait_upside_down landscape_left landscape_right face_up face_down"`
	Network      domain.Reachability `json:"network" validate:"omitempty,oneof=none wifi cellular"`
}

// toDeviceState fills omitted readings with the unknown marker
func (req DeviceStateRequest) toDeviceState() domain.DeviceState {
	state := domain.DeviceState{
		BatteryLevel: -1,
		Charging:     req.Charging,
		Volume:       -1,
		Orientation:  req.Orientation,
		Network:      req.Network,
	}
	if req.BatteryLevel != nil {
		state.BatteryLevel = *req.BatteryLevel
	}
	if req.Volume != nil {
		state.Volume = *req.Volume
	}
	if state.Orientation == "" {
		state.Orientation = domain.OrientationUnknown
	}
	return state
}

// HiddenStatusResponse lists every hidden challenge for a player
type HiddenStatusResponse struct {
	Challenges []domain.ChallengeStatus `json:"challenges"`
	Completed  int                      `json:"completed"`
}

// DeviceReportResponse lists challenges completed by a report
type DeviceReportResponse struct {
	Checked     bool                         `json:"checked"`
	Completions []domain.ChallengeCompletion `json:"completions"`
}

// HandleHiddenStatus returns completion status of each hidden challenge
// @Summary Hidden challenge status
// @Tags hidden
// @Produce json
// @Param playerID path string true "Player id"
// @Success 200 {object} HiddenStatusResponse
// @Router /players/{playerID}/hidden [get]
func (h *PlayerHandlers) HandleHiddenStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.withPlayer(w, r, "Hidden status", func(_ context.Context, s *game.Session) error {
			respondJSON(w, http.StatusOK, HiddenStatusResponse{
				Challenges: s.Hidden.Status(),
				Completed:  len(s.Hidden.Completed()),
			})
			return nil
		})
	}
}

// HandleReportDevice records a device snapshot and checks it right away when
// the player's poll interval has elapsed. Later checks run in the background.
// @Summary Report device state
// @Tags hidden
// @Accept json
// @Produce json
// @Param playerID path string true "Player id"
// @Param request body DeviceStateRequest true "Device snapshot"
// @Success 200 {object} DeviceReportResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /players/{playerID}/device [post]
func (h *PlayerHandlers) HandleReportDevice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeviceStateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Report device"); err != nil {
			return
		}
		state := req.toDeviceState()
		h.withPlayer(w, r, "Report device", func(ctx context.Context, s *game.Session) error {
			now := h.sessions.Clock().Now()
			s.ReportDevice(state, now)
			completions, ran := s.Poller.Poll(ctx, now, state)
			if completions == nil {
				completions = []domain.ChallengeCompletion{}
			}
			respondJSON(w, http.StatusOK, DeviceReportResponse{Checked: ran, Completions: completions})
			return nil
		})
	}
}
