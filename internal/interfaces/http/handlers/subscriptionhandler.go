package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitrine-app/vitrine/internal/application/subscription/usecases"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
	"github.com/vitrine-app/vitrine/internal/shared/utils"
)

// SubscriptionHandler serves the member's side of the payment flow:
// submitting a proof of payment and tracking their own subscriptions.
type SubscriptionHandler struct {
	createUC *usecases.CreateSubscriptionUseCase
	listMyUC *usecases.ListMySubscriptionsUseCase
	logger   logger.Interface
}

func NewSubscriptionHandler(
	createUC *usecases.CreateSubscriptionUseCase,
	listMyUC *usecases.ListMySubscriptionsUseCase,
	log logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createUC: createUC,
		listMyUC: listMyUC,
		logger:   log,
	}
}

type CreateSubscriptionRequest struct {
	PlanSlug string `json:"plan_slug" binding:"required"`
	ProofURL string `json:"proof_url" binding:"required,url"`
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CreateSubscriptionCommand{
		UserID:   CurrentUserID(c),
		PlanSlug: req.PlanSlug,
		ProofURL: req.ProofURL,
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription submitted for review")
}

func (h *SubscriptionHandler) ListMySubscriptions(c *gin.Context) {
	result, err := h.listMyUC.Execute(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
