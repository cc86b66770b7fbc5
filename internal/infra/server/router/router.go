// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/goalflow/backend/internal/integration/entrypoint/controller"
	"github.com/goalflow/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	goalController         *controller.GoalController
	metricController       *controller.MetricController
	workspaceController    *controller.WorkspaceController
	statsController        *controller.StatsController
	reportController       *controller.ReportController
	activityController     *controller.ActivityController
	notificationController *controller.NotificationController
	templateController     *controller.TemplateController
	telegramController     *controller.TelegramController
	cronController         *controller.CronController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	goalController *controller.GoalController,
	metricController *controller.MetricController,
	workspaceController *controller.WorkspaceController,
	statsController *controller.StatsController,
	reportController *controller.ReportController,
	activityController *controller.ActivityController,
	notificationController *controller.NotificationController,
	templateController *controller.TemplateController,
	telegramController *controller.TelegramController,
	cronController *controller.CronController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		goalController:         goalController,
		metricController:       metricController,
		workspaceController:    workspaceController,
		statsController:        statsController,
		reportController:       reportController,
		activityController:     activityController,
		notificationController: notificationController,
		templateController:     templateController,
		telegramController:     telegramController,
		cronController:         cronController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				// Static paths are registered before /:id so Gin does not
				// treat them as goal IDs.
				goals.GET("/hierarchy", r.goalController.Hierarchy)
				goals.GET("/search", r.goalController.Search)
				goals.PATCH("/bulk", r.goalController.BulkUpdateStatus)
				goals.DELETE("/bulk", r.goalController.BulkDelete)

				if r.templateController != nil {
					templates := goals.Group("/templates")
					{
						templates.GET("", r.templateController.List)
						templates.POST("", r.templateController.Create)
						templates.PATCH("/:id", r.templateController.Update)
						templates.DELETE("/:id", r.templateController.Delete)
						templates.POST("/:id/create-goal", r.templateController.CreateGoal)
					}
				}

				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/:id", r.goalController.Get)
				goals.PATCH("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)

				if r.metricController != nil {
					goals.GET("/:id/metrics", r.metricController.List)
					goals.POST("/:id/metrics", r.metricController.Create)
				}
			}
		}

		if r.metricController != nil && r.authMiddleware != nil {
			metrics := v1.Group("/metrics")
			metrics.Use(r.authMiddleware.Authenticate())
			{
				metrics.PATCH("/:id", r.metricController.Update)
				metrics.DELETE("/:id", r.metricController.Delete)
			}
		}

		if r.workspaceController != nil && r.authMiddleware != nil {
			workspaces := v1.Group("/workspaces")
			workspaces.Use(r.authMiddleware.Authenticate())
			{
				workspaces.GET("", r.workspaceController.List)
				workspaces.POST("", r.workspaceController.Create)
				workspaces.GET("/:id", r.workspaceController.Get)
				workspaces.PATCH("/:id", r.workspaceController.Update)
				workspaces.DELETE("/:id", r.workspaceController.Delete)

				workspaces.GET("/:id/members", r.workspaceController.ListMembers)
				workspaces.DELETE("/:id/members/me", r.workspaceController.Leave)
				workspaces.PUT("/:id/members/:memberId", r.workspaceController.ChangeMemberRole)
				workspaces.DELETE("/:id/members/:memberId", r.workspaceController.RemoveMember)

				workspaces.GET("/:id/invites", r.workspaceController.ListInvites)
				workspaces.POST("/:id/invites", r.workspaceController.Invite)
				workspaces.DELETE("/:id/invites/:inviteId", r.workspaceController.CancelInvite)
			}

			invites := v1.Group("/invites")
			{
				invites.GET("/:token", r.workspaceController.GetInvite)
				invites.POST("/accept", r.authMiddleware.Authenticate(), r.workspaceController.AcceptInvite)
			}
		}

		if r.statsController != nil && r.authMiddleware != nil {
			v1.GET("/stats", r.authMiddleware.Authenticate(), r.statsController.Dashboard)

			analytics := v1.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate())
			{
				analytics.GET("", r.statsController.Analytics)
				analytics.GET("/team", r.statsController.TeamStats)
			}
		}

		if r.reportController != nil && r.authMiddleware != nil {
			v1.POST("/reports", r.authMiddleware.Authenticate(), r.reportController.Generate)
		}

		if r.activityController != nil && r.authMiddleware != nil {
			v1.GET("/activities", r.authMiddleware.Authenticate(), r.activityController.List)
		}

		if r.notificationController != nil && r.authMiddleware != nil {
			notifications := v1.Group("/notifications")
			notifications.Use(r.authMiddleware.Authenticate())
			{
				notifications.GET("/preferences", r.notificationController.GetPreferences)
				notifications.PATCH("/preferences", r.notificationController.UpdatePreferences)
			}

			v1.POST("/telegram/link", r.authMiddleware.Authenticate(), r.notificationController.IssueTelegramLink)
		}

		if r.telegramController != nil {
			v1.POST("/telegram/webhook", r.telegramController.Webhook)
		}

		if r.cronController != nil {
			v1.GET("/cron/deadline-reminders", r.cronController.DeadlineReminders)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
