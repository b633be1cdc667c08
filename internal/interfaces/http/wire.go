package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	listingServices "github.com/vitrine-app/vitrine/internal/application/listing/services"
	listingUsecases "github.com/vitrine-app/vitrine/internal/application/listing/usecases"
	profileUsecases "github.com/vitrine-app/vitrine/internal/application/profile/usecases"
	subscriptionUsecases "github.com/vitrine-app/vitrine/internal/application/subscription/usecases"
	"github.com/vitrine-app/vitrine/internal/infrastructure/auth"
	"github.com/vitrine-app/vitrine/internal/infrastructure/cache"
	"github.com/vitrine-app/vitrine/internal/infrastructure/config"
	"github.com/vitrine-app/vitrine/internal/infrastructure/email"
	"github.com/vitrine-app/vitrine/internal/infrastructure/repository"
	"github.com/vitrine-app/vitrine/internal/infrastructure/scheduler"
	infraServices "github.com/vitrine-app/vitrine/internal/infrastructure/services"
	"github.com/vitrine-app/vitrine/internal/interfaces/http/handlers"
	adminHandlers "github.com/vitrine-app/vitrine/internal/interfaces/http/handlers/admin"
	"github.com/vitrine-app/vitrine/internal/interfaces/http/middleware"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

// NewRouter wires repositories, services, use cases and handlers into a
// ready-to-run router.
func NewRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log logger.Interface) *Router {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	registerValidators()

	// Repositories
	profileRepo := repository.NewProfileRepository(db, log)
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	planRepo := repository.NewPlanRepository(db, log)
	paymentRepo := repository.NewPaymentRepository(db, log)
	userRepo := repository.NewUserRepository(db, log)

	// Ranking services
	settings := listingServices.RankingSettingsFromConfig(&cfg.Ranking)
	catalogTTL := time.Duration(cfg.Catalog.CacheTTLSeconds) * time.Second
	catalogs := cache.NewCatalogCache(planRepo, redisClient, catalogTTL, log)
	viewers := listingServices.NewViewerResolver(subscriptionRepo, settings.GraceWindow, log)

	// Supporting services
	mailer := email.NewReceiptMailer(cfg.Email)
	bioRenderer := infraServices.NewMarkdownBioRenderer()
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes)

	// Listing use cases
	browseUC := listingUsecases.NewBrowseProfilesUseCase(profileRepo, subscriptionRepo, userRepo, catalogs, viewers, settings, log)
	getProfileUC := listingUsecases.NewGetProfileUseCase(profileRepo, subscriptionRepo, userRepo, catalogs, viewers, settings, log)

	// Profile use cases
	createProfileUC := profileUsecases.NewCreateProfileUseCase(profileRepo, log)
	updateProfileUC := profileUsecases.NewUpdateProfileUseCase(profileRepo, bioRenderer, log)
	getMyProfileUC := profileUsecases.NewGetMyProfileUseCase(profileRepo)
	touchActivityUC := profileUsecases.NewTouchActivityUseCase(profileRepo)
	reviewProfileUC := profileUsecases.NewReviewProfileUseCase(profileRepo, log)
	adjustRankingUC := profileUsecases.NewAdjustRankingUseCase(profileRepo, catalogs.Catalog(context.Background()), log)

	// Subscription use cases
	listPlansUC := subscriptionUsecases.NewListPlansUseCase(planRepo)
	createSubscriptionUC := subscriptionUsecases.NewCreateSubscriptionUseCase(subscriptionRepo, paymentRepo, planRepo, log)
	listMySubscriptionsUC := subscriptionUsecases.NewListMySubscriptionsUseCase(subscriptionRepo)
	listPendingUC := subscriptionUsecases.NewListPendingReviewUseCase(subscriptionRepo, paymentRepo, userRepo)
	approveUC := subscriptionUsecases.NewApproveSubscriptionUseCase(subscriptionRepo, paymentRepo, planRepo, userRepo, mailer, log)
	rejectUC := subscriptionUsecases.NewRejectSubscriptionUseCase(subscriptionRepo, paymentRepo, userRepo, mailer, log)
	expireUC := subscriptionUsecases.NewExpireSubscriptionsUseCase(subscriptionRepo, userRepo, settings.GraceWindow, log)

	return &Router{
		engine:          gin.New(),
		cfg:             cfg,
		log:             log,
		authMiddleware:  middleware.NewAuthMiddleware(jwtService, log),
		expiryScheduler: scheduler.NewExpiryScheduler(expireUC, log),

		listingHandler:      handlers.NewListingHandler(browseUC, getProfileUC, listPlansUC, log),
		profileHandler:      handlers.NewProfileHandler(createProfileUC, updateProfileUC, getMyProfileUC, touchActivityUC, log),
		subscriptionHandler: handlers.NewSubscriptionHandler(createSubscriptionUC, listMySubscriptionsUC, log),

		adminReviewHandler:  adminHandlers.NewReviewHandler(listPendingUC, approveUC, rejectUC, expireUC, log),
		adminProfileHandler: adminHandlers.NewProfileHandler(reviewProfileUC, adjustRankingUC, log),
	}
}
