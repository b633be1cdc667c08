// Package http assembles the gin engine: middleware, handlers, and the
// route table.
package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/vitrine-app/vitrine/internal/infrastructure/config"
	"github.com/vitrine-app/vitrine/internal/infrastructure/scheduler"
	"github.com/vitrine-app/vitrine/internal/interfaces/http/handlers"
	adminHandlers "github.com/vitrine-app/vitrine/internal/interfaces/http/handlers/admin"
	"github.com/vitrine-app/vitrine/internal/interfaces/http/middleware"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface

	authMiddleware  *middleware.AuthMiddleware
	expiryScheduler *scheduler.ExpiryScheduler

	listingHandler      *handlers.ListingHandler
	profileHandler      *handlers.ProfileHandler
	subscriptionHandler *handlers.SubscriptionHandler

	adminReviewHandler  *adminHandlers.ReviewHandler
	adminProfileHandler *adminHandlers.ProfileHandler
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// StartBackground launches the background sweeps that keep ranking
// inputs honest while the server is up.
func (r *Router) StartBackground(ctx context.Context) {
	r.expiryScheduler.Start(ctx)
}

// StopBackground stops the background sweeps.
func (r *Router) StopBackground() {
	r.expiryScheduler.Stop()
}

func (r *Router) Run() error {
	addr := fmt.Sprintf("%s:%d", r.cfg.Server.Host, r.cfg.Server.Port)
	r.log.Infow("starting HTTP server", "addr", addr)
	return r.engine.Run(addr)
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.CORS([]string{"*"}))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.setupPublicRoutes()
	r.setupMemberRoutes()
	r.setupAdminRoutes()
}

// setupPublicRoutes configures the directory surface. Auth is optional:
// an anonymous viewer gets the fully redacted listing, a bad token
// downgrades to anonymous.
func (r *Router) setupPublicRoutes() {
	public := r.engine.Group("/")
	public.Use(r.authMiddleware.OptionalAuth())
	{
		public.GET("/profiles", r.listingHandler.Browse)
		public.GET("/profiles/:sid", r.listingHandler.GetProfile)
		public.GET("/plans", r.listingHandler.ListPlans)
	}
}

// setupMemberRoutes configures the authenticated member surface.
func (r *Router) setupMemberRoutes() {
	me := r.engine.Group("/me")
	me.Use(r.authMiddleware.RequireAuth())
	{
		me.POST("/profile", r.profileHandler.CreateProfile)
		me.GET("/profile", r.profileHandler.GetMyProfile)
		me.PUT("/profile", r.profileHandler.UpdateProfile)
		me.POST("/profile/ping", r.profileHandler.Ping)

		me.POST("/subscriptions", r.subscriptionHandler.CreateSubscription)
		me.GET("/subscriptions", r.subscriptionHandler.ListMySubscriptions)
	}
}

// setupAdminRoutes configures moderation and the payment review queue.
func (r *Router) setupAdminRoutes() {
	admin := r.engine.Group("/admin")
	admin.Use(r.authMiddleware.RequireAuth(), r.authMiddleware.RequireAdmin())
	{
		admin.GET("/subscriptions/pending", r.adminReviewHandler.ListPendingReview)
		admin.POST("/subscriptions/:sid/approve", r.adminReviewHandler.ApproveSubscription)
		admin.POST("/subscriptions/:sid/reject", r.adminReviewHandler.RejectSubscription)
		admin.POST("/subscriptions/expire", r.adminReviewHandler.ExpireSubscriptions)

		admin.POST("/profiles/:sid/review", r.adminProfileHandler.ReviewProfile)
		admin.PUT("/profiles/:sid/manual-plan", r.adminProfileHandler.SetManualPlan)
		admin.POST("/profiles/:sid/ranking/suspend", r.adminProfileHandler.SuspendRanking)
		admin.POST("/profiles/:sid/ranking/restore", r.adminProfileHandler.RestoreRanking)
		admin.PUT("/profiles/:sid/boost", r.adminProfileHandler.Boost)
		admin.DELETE("/profiles/:sid/boost", r.adminProfileHandler.ClearBoost)
	}
}
