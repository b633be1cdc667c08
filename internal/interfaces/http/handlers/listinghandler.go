package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	listingUsecases "github.com/vitrine-app/vitrine/internal/application/listing/usecases"
	subscriptionUsecases "github.com/vitrine-app/vitrine/internal/application/subscription/usecases"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
	"github.com/vitrine-app/vitrine/internal/shared/utils"
)

// ListingHandler serves the public directory surface. All reads are
// viewer-scoped: the optional auth middleware decides who is asking,
// the use cases decide what they may see.
type ListingHandler struct {
	browseUC     *listingUsecases.BrowseProfilesUseCase
	getProfileUC *listingUsecases.GetProfileUseCase
	listPlansUC  *subscriptionUsecases.ListPlansUseCase
	logger       logger.Interface
}

func NewListingHandler(
	browseUC *listingUsecases.BrowseProfilesUseCase,
	getProfileUC *listingUsecases.GetProfileUseCase,
	listPlansUC *subscriptionUsecases.ListPlansUseCase,
	log logger.Interface,
) *ListingHandler {
	return &ListingHandler{
		browseUC:     browseUC,
		getProfileUC: getProfileUC,
		listPlansUC:  listPlansUC,
		logger:       log,
	}
}

func (h *ListingHandler) Browse(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := listingUsecases.BrowseProfilesQuery{
		ViewerUserID: CurrentUserID(c),
		City:         c.Query("city"),
		Search:       c.Query("q"),
		AvailableNow: c.Query("available_now") == "true",
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
		Cursor:       c.Query("cursor"),
	}
	if minAge, err := strconv.Atoi(c.Query("min_age")); err == nil {
		query.MinAge = minAge
	}
	if maxAge, err := strconv.Atoi(c.Query("max_age")); err == nil {
		query.MaxAge = maxAge
	}

	result, err := h.browseUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.APIResponse{
		Success: true,
		Data: utils.ListResponse{
			Items:      result.Items,
			Total:      result.Total,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalPages: utils.TotalPages(result.Total, result.PageSize),
			NextCursor: result.NextCursor,
		},
	})
}

func (h *ListingHandler) GetProfile(c *gin.Context) {
	query := listingUsecases.GetProfileQuery{
		SID:          c.Param("sid"),
		ViewerUserID: CurrentUserID(c),
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ListingHandler) ListPlans(c *gin.Context) {
	plans, err := h.listPlansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", plans)
}
