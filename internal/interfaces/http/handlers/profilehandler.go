package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitrine-app/vitrine/internal/application/profile/usecases"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
	"github.com/vitrine-app/vitrine/internal/shared/utils"
)

// ProfileHandler serves the member's own profile: creation, edits and
// activity pings. Responses are the unredacted owner view.
type ProfileHandler struct {
	createUC *usecases.CreateProfileUseCase
	updateUC *usecases.UpdateProfileUseCase
	getMyUC  *usecases.GetMyProfileUseCase
	touchUC  *usecases.TouchActivityUseCase
	logger   logger.Interface
}

func NewProfileHandler(
	createUC *usecases.CreateProfileUseCase,
	updateUC *usecases.UpdateProfileUseCase,
	getMyUC *usecases.GetMyProfileUseCase,
	touchUC *usecases.TouchActivityUseCase,
	log logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		createUC: createUC,
		updateUC: updateUC,
		getMyUC:  getMyUC,
		touchUC:  touchUC,
		logger:   log,
	}
}

type CreateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required,max=100"`
	City        string `json:"city" binding:"max=100"`
	Age         int    `json:"age" binding:"omitempty,min=18,max=120"`
}

type UpdateProfileRequest struct {
	DisplayName  string   `json:"display_name" binding:"required,max=100"`
	Bio          string   `json:"bio"`
	City         string   `json:"city" binding:"max=100"`
	Contact      string   `json:"contact" binding:"max=255"`
	Age          int      `json:"age" binding:"omitempty,min=18,max=120"`
	Images       []string `json:"images"`
	AvailableNow bool     `json:"available_now"`
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create profile", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CreateProfileCommand{
		UserID:      CurrentUserID(c),
		DisplayName: req.DisplayName,
		City:        req.City,
		Age:         req.Age,
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Profile created and queued for review")
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.UpdateProfileCommand{
		UserID:       CurrentUserID(c),
		DisplayName:  req.DisplayName,
		Bio:          req.Bio,
		City:         req.City,
		Contact:      req.Contact,
		Age:          req.Age,
		Images:       req.Images,
		AvailableNow: req.AvailableNow,
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated", result)
}

func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	result, err := h.getMyUC.Execute(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Ping stamps the caller's profile as active now. Clients call this on
// app foreground; the timestamp only breaks ranking ties.
func (h *ProfileHandler) Ping(c *gin.Context) {
	if err := h.touchUC.Execute(c.Request.Context(), CurrentUserID(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", nil)
}
