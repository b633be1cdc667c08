// Package admin provides HTTP handlers for administrative operations.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitrine-app/vitrine/internal/application/subscription/usecases"
	"github.com/vitrine-app/vitrine/internal/shared/constants"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
	"github.com/vitrine-app/vitrine/internal/shared/utils"
)

// ReviewHandler handles the payment review queue: listing submitted
// proofs and approving or rejecting them.
type ReviewHandler struct {
	listPendingUC *usecases.ListPendingReviewUseCase
	approveUC     *usecases.ApproveSubscriptionUseCase
	rejectUC      *usecases.RejectSubscriptionUseCase
	expireUC      *usecases.ExpireSubscriptionsUseCase
	logger        logger.Interface
}

func NewReviewHandler(
	listPendingUC *usecases.ListPendingReviewUseCase,
	approveUC *usecases.ApproveSubscriptionUseCase,
	rejectUC *usecases.RejectSubscriptionUseCase,
	expireUC *usecases.ExpireSubscriptionsUseCase,
	log logger.Interface,
) *ReviewHandler {
	return &ReviewHandler{
		listPendingUC: listPendingUC,
		approveUC:     approveUC,
		rejectUC:      rejectUC,
		expireUC:      expireUC,
		logger:        log,
	}
}

type ReviewDecisionRequest struct {
	Note string `json:"note" binding:"max=500"`
}

func (h *ReviewHandler) ListPendingReview(c *gin.Context) {
	items, err := h.listPendingUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *ReviewHandler) ApproveSubscription(c *gin.Context) {
	var req ReviewDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.ApproveSubscriptionCommand{
		SubscriptionSID: c.Param("sid"),
		ReviewerID:      reviewerID(c),
		Note:            req.Note,
	}

	result, err := h.approveUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription approved", result)
}

func (h *ReviewHandler) RejectSubscription(c *gin.Context) {
	var req ReviewDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.RejectSubscriptionCommand{
		SubscriptionSID: c.Param("sid"),
		ReviewerID:      reviewerID(c),
		Note:            req.Note,
	}

	result, err := h.rejectUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription rejected", result)
}

// ExpireSubscriptions runs the expiry sweep on demand. The scheduler
// runs the same use case periodically; this endpoint exists for
// operational runs after changing the grace window.
func (h *ReviewHandler) ExpireSubscriptions(c *gin.Context) {
	result, err := h.expireUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Expiry sweep completed", result)
}

func reviewerID(c *gin.Context) uint {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return 0
	}
	userID, _ := v.(uint)
	return userID
}
