package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vitrine-app/vitrine/internal/application/profile/usecases"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
	"github.com/vitrine-app/vitrine/internal/shared/utils"
)

// ProfileHandler handles moderation of profiles and manual ranking
// adjustments.
type ProfileHandler struct {
	reviewUC *usecases.ReviewProfileUseCase
	adjustUC *usecases.AdjustRankingUseCase
	logger   logger.Interface
}

func NewProfileHandler(
	reviewUC *usecases.ReviewProfileUseCase,
	adjustUC *usecases.AdjustRankingUseCase,
	log logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		reviewUC: reviewUC,
		adjustUC: adjustUC,
		logger:   log,
	}
}

type ReviewProfileRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject suspend relist"`
}

type SetManualPlanRequest struct {
	// PlanID null clears the override and returns the profile to
	// subscription-based resolution.
	PlanID *string `json:"plan_id"`
}

type BoostRequest struct {
	Until time.Time `json:"until" binding:"required,future"`
}

func (h *ProfileHandler) ReviewProfile(c *gin.Context) {
	var req ReviewProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.ReviewProfileCommand{
		ProfileSID: c.Param("sid"),
		Action:     usecases.ReviewAction(req.Action),
		ReviewerID: reviewerID(c),
	}

	result, err := h.reviewUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile reviewed", result)
}

func (h *ProfileHandler) SetManualPlan(c *gin.Context) {
	var req SetManualPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.adjustUC.SetManualPlan(c.Request.Context(), c.Param("sid"), req.PlanID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Manual plan updated", result)
}

func (h *ProfileHandler) SuspendRanking(c *gin.Context) {
	result, err := h.adjustUC.SuspendRanking(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ranking suspended", result)
}

func (h *ProfileHandler) RestoreRanking(c *gin.Context) {
	result, err := h.adjustUC.RestoreRanking(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ranking restored", result)
}

func (h *ProfileHandler) Boost(c *gin.Context) {
	var req BoostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.adjustUC.Boost(c.Request.Context(), c.Param("sid"), req.Until)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Boost applied", result)
}

func (h *ProfileHandler) ClearBoost(c *gin.Context) {
	result, err := h.adjustUC.ClearBoost(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Boost cleared", result)
}
