package v1

import (
	"net/http"

	"github.com/flexprice/rewardengine/internal/api/dto"
	ierr "github.com/flexprice/rewardengine/internal/errors"
	"github.com/flexprice/rewardengine/internal/logger"
	"github.com/flexprice/rewardengine/internal/service"
	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	rewardService service.RewardService
	logger        *logger.Logger
}

func NewRewardHandler(rewardService service.RewardService, logger *logger.Logger) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
		logger:        logger,
	}
}

// ApplyRewards prices a cart with the given rewards and returns it with every discount filled in.
// POST /v1/carts/rewards/apply
func (h *RewardHandler) ApplyRewards(c *gin.Context) {
	var req dto.ApplyRewardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithMessage("failed to decode apply rewards request").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.rewardService.ApplyCartRewards(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
