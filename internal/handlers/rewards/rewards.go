package rewards

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/boostpanel/boostpanel/internal/domain"
	"github.com/boostpanel/boostpanel/internal/dto"
	rewardservice "github.com/boostpanel/boostpanel/internal/service/rewardservice"
	"github.com/boostpanel/boostpanel/pkg/utils"
)

type Service interface {
	GrantChannelReward(ctx context.Context, accountID int64, channelID string) (*domain.SubscriptionGrant, error)
	GrantAllChannelRewards(ctx context.Context, accountID int64) (int64, []string, error)
	Channels(ctx context.Context) ([]domain.Channel, error)
}

type RewardHandler struct {
	rewardService Service
}

func New(rewardService Service) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
	}
}

// GetChannels godoc
//
//	@Summary		List reward channels
//	@Description	Retrieve the active channels an account can earn points from.
//	@Tags			Rewards
//	@Produce		json
//	@Success		200	{array}		dto.ChannelResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/channels [get]
func (h *RewardHandler) GetChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.rewardService.Channels(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ChannelResponseDTO, 0, len(channels))
	for _, ch := range channels {
		response = append(response, dto.ChannelResponseDTO{
			ID:           ch.ID,
			Name:         ch.Name,
			Username:     ch.Username,
			RewardPoints: ch.RewardPoints,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ClaimChannel godoc
//
//	@Summary		Claim one channel reward
//	@Description	Verify membership via the oracle and credit the channel's reward once per account.
//	@Tags			Rewards
//	@Produce		json
//	@Param			accountID	path		int		true	"Account ID"
//	@Param			channelID	path		string	true	"Channel ID"
//	@Success		200			{object}	utils.Response	"Reward granted"
//	@Failure		400			{object}	utils.Response	"Invalid account id"
//	@Failure		404			{object}	utils.Response	"Channel not found"
//	@Failure		409			{object}	utils.Response	"Reward already granted"
//	@Failure		422			{object}	utils.Response	"Membership could not be confirmed"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{accountID}/rewards/{channelID} [post]
func (h *RewardHandler) ClaimChannel(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil || accountID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}
	channelID := chi.URLParam(r, "channelID")

	_, err = h.rewardService.GrantChannelReward(r.Context(), accountID, channelID)
	if err != nil {
		switch {
		case errors.Is(err, rewardservice.ErrAlreadyGranted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, rewardservice.ErrChannelNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, rewardservice.ErrNotEligible):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Reward granted"})
}

// ClaimAll godoc
//
//	@Summary		Claim every eligible channel reward
//	@Description	Sweep all active channels and credit each one the account is a member of and has not claimed yet.
//	@Tags			Rewards
//	@Produce		json
//	@Param			accountID	path		int	true	"Account ID"
//	@Success		200			{object}	dto.ClaimResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid account id"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{accountID}/rewards [post]
func (h *RewardHandler) ClaimAll(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil || accountID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	earned, names, err := h.rewardService.GrantAllChannelRewards(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClaimResponseDTO{
		Earned:   earned,
		Channels: names,
	})
}
