// Package main is the entry point for the GoalFlow API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/goalflow/backend/config"
	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/activity"
	"github.com/goalflow/backend/internal/application/usecase/auth"
	"github.com/goalflow/backend/internal/application/usecase/goal"
	"github.com/goalflow/backend/internal/application/usecase/metric"
	"github.com/goalflow/backend/internal/application/usecase/notification"
	"github.com/goalflow/backend/internal/application/usecase/report"
	"github.com/goalflow/backend/internal/application/usecase/stats"
	"github.com/goalflow/backend/internal/application/usecase/template"
	"github.com/goalflow/backend/internal/application/usecase/workspace"
	"github.com/goalflow/backend/internal/infra/db"
	"github.com/goalflow/backend/internal/infra/server/router"
	"github.com/goalflow/backend/internal/integration/adapters"
	"github.com/goalflow/backend/internal/integration/email"
	"github.com/goalflow/backend/internal/integration/email/templates"
	"github.com/goalflow/backend/internal/integration/entrypoint/controller"
	"github.com/goalflow/backend/internal/integration/entrypoint/middleware"
	"github.com/goalflow/backend/internal/integration/notify"
	"github.com/goalflow/backend/internal/integration/persistence"
	"github.com/goalflow/backend/internal/integration/persistence/model"
	"github.com/goalflow/backend/internal/integration/telegram"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting GoalFlow API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var database *db.Database
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		database = nil
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.WorkspaceModel{},
			&model.WorkspaceMemberModel{},
			&model.WorkspaceInviteModel{},
			&model.GoalModel{},
			&model.MetricModel{},
			&model.GoalTemplateModel{},
			&model.ActivityModel{},
			&model.NotificationPreferencesModel{},
			&model.NotificationQueueModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	var authController *controller.AuthController
	var goalController *controller.GoalController
	var metricController *controller.MetricController
	var workspaceController *controller.WorkspaceController
	var statsController *controller.StatsController
	var reportController *controller.ReportController
	var activityController *controller.ActivityController
	var notificationController *controller.NotificationController
	var templateController *controller.TemplateController
	var telegramController *controller.TelegramController
	var cronController *controller.CronController
	var loginRateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware

	// Workers run until the root context is cancelled on shutdown.
	rootCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	if database != nil {
		// Repositories
		userRepo := persistence.NewUserRepository(database.DB())
		tokenRepo := persistence.NewTokenRepository(database.DB())
		workspaceRepo := persistence.NewWorkspaceRepository(database.DB())
		goalRepo := persistence.NewGoalRepository(database.DB())
		metricRepo := persistence.NewMetricRepository(database.DB())
		templateRepo := persistence.NewGoalTemplateRepository(database.DB())
		activityRepo := persistence.NewActivityRepository(database.DB())
		prefsRepo := persistence.NewNotificationPreferencesRepository(database.DB())
		queueRepo := persistence.NewNotificationQueueRepository(database.DB())

		// Adapters and shared services
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
		accessChecker := workspace.NewAccessChecker(workspaceRepo)
		recorder := activity.NewRecorder(activityRepo)
		dispatcher := notification.NewDispatcher(prefsRepo, queueRepo, userRepo)
		linkCodeStore := notification.NewLinkCodeStore()

		// Outbound channels
		var telegramSender adapter.TelegramSender
		if cfg.Telegram.BotToken != "" {
			telegramClient, err := telegram.NewClient(cfg.Telegram.BotToken)
			if err != nil {
				slog.Warn("Telegram client init failed, telegram delivery disabled", "error", err)
			} else {
				telegramSender = telegramClient
			}
		} else {
			slog.Info("Telegram bot token not set, telegram delivery disabled")
		}

		emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)

		renderer, err := templates.NewRenderer()
		if err != nil {
			slog.Error("Failed to parse email templates", "error", err)
			os.Exit(1)
		}

		// Auth use cases
		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
		logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

		// Goal use cases
		createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, accessChecker, recorder)
		getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
		listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, accessChecker)
		updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, dispatcher, recorder)
		deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, recorder)
		hierarchyUseCase := goal.NewGetHierarchyUseCase(goalRepo, accessChecker)
		searchGoalsUseCase := goal.NewSearchGoalsUseCase(goalRepo, accessChecker)
		bulkStatusUseCase := goal.NewBulkUpdateStatusUseCase(updateGoalUseCase)
		bulkDeleteUseCase := goal.NewBulkDeleteUseCase(deleteGoalUseCase)

		// Metric use cases
		createMetricUseCase := metric.NewCreateMetricUseCase(metricRepo, goalRepo)
		listMetricsUseCase := metric.NewListMetricsUseCase(metricRepo, goalRepo)
		updateMetricUseCase := metric.NewUpdateMetricUseCase(metricRepo, goalRepo, recorder)
		deleteMetricUseCase := metric.NewDeleteMetricUseCase(metricRepo, goalRepo)

		// Workspace use cases
		createWorkspaceUseCase := workspace.NewCreateWorkspaceUseCase(workspaceRepo, recorder)
		listWorkspacesUseCase := workspace.NewListWorkspacesUseCase(workspaceRepo)
		getWorkspaceUseCase := workspace.NewGetWorkspaceUseCase(workspaceRepo, accessChecker)
		updateWorkspaceUseCase := workspace.NewUpdateWorkspaceUseCase(workspaceRepo, accessChecker, recorder)
		deleteWorkspaceUseCase := workspace.NewDeleteWorkspaceUseCase(workspaceRepo, accessChecker)
		listMembersUseCase := workspace.NewListMembersUseCase(workspaceRepo, accessChecker)
		changeRoleUseCase := workspace.NewChangeMemberRoleUseCase(workspaceRepo, accessChecker)
		removeMemberUseCase := workspace.NewRemoveMemberUseCase(workspaceRepo, accessChecker, recorder)
		inviteMemberUseCase := workspace.NewInviteMemberUseCase(workspaceRepo, userRepo, accessChecker, dispatcher)
		listInvitesUseCase := workspace.NewListInvitesUseCase(workspaceRepo, accessChecker)
		cancelInviteUseCase := workspace.NewCancelInviteUseCase(workspaceRepo, accessChecker)
		acceptInviteUseCase := workspace.NewAcceptInviteUseCase(workspaceRepo, userRepo, recorder)
		getInviteUseCase := workspace.NewGetInviteUseCase(workspaceRepo)

		// Stats and report use cases
		dashboardUseCase := stats.NewGetDashboardUseCase(goalRepo, accessChecker)
		analyticsUseCase := stats.NewGetAnalyticsUseCase(goalRepo, accessChecker)
		teamStatsUseCase := stats.NewGetTeamStatsUseCase(goalRepo, workspaceRepo, accessChecker)
		generateReportUseCase := report.NewGenerateReportUseCase(goalRepo, metricRepo, workspaceRepo, accessChecker)

		// Activity use case
		listActivitiesUseCase := activity.NewListActivitiesUseCase(activityRepo, accessChecker)

		// Notification use cases
		getPrefsUseCase := notification.NewGetPreferencesUseCase(prefsRepo)
		updatePrefsUseCase := notification.NewUpdatePreferencesUseCase(prefsRepo)
		issueLinkUseCase := notification.NewIssueLinkCodeUseCase(linkCodeStore)
		completeLinkUseCase := notification.NewCompleteLinkUseCase(linkCodeStore, userRepo, prefsRepo)
		deadlineSweepUseCase := notification.NewDeadlineSweepUseCase(goalRepo, dispatcher)

		// Template use cases
		createTemplateUseCase := template.NewCreateTemplateUseCase(templateRepo, accessChecker)
		listTemplatesUseCase := template.NewListTemplatesUseCase(templateRepo)
		updateTemplateUseCase := template.NewUpdateTemplateUseCase(templateRepo)
		deleteTemplateUseCase := template.NewDeleteTemplateUseCase(templateRepo)
		createFromTemplateUseCase := template.NewCreateGoalFromTemplateUseCase(templateRepo, accessChecker, createGoalUseCase)

		// Controllers
		authController = controller.NewAuthController(registerUseCase, loginUseCase, refreshTokenUseCase, logoutUseCase)
		goalController = controller.NewGoalController(
			createGoalUseCase,
			getGoalUseCase,
			listGoalsUseCase,
			updateGoalUseCase,
			deleteGoalUseCase,
			hierarchyUseCase,
			searchGoalsUseCase,
			bulkStatusUseCase,
			bulkDeleteUseCase,
		)
		metricController = controller.NewMetricController(createMetricUseCase, listMetricsUseCase, updateMetricUseCase, deleteMetricUseCase)
		workspaceController = controller.NewWorkspaceController(
			createWorkspaceUseCase,
			listWorkspacesUseCase,
			getWorkspaceUseCase,
			updateWorkspaceUseCase,
			deleteWorkspaceUseCase,
			listMembersUseCase,
			changeRoleUseCase,
			removeMemberUseCase,
			inviteMemberUseCase,
			listInvitesUseCase,
			cancelInviteUseCase,
			acceptInviteUseCase,
			getInviteUseCase,
		)
		statsController = controller.NewStatsController(dashboardUseCase, analyticsUseCase, teamStatsUseCase)
		reportController = controller.NewReportController(generateReportUseCase)
		activityController = controller.NewActivityController(listActivitiesUseCase)
		notificationController = controller.NewNotificationController(getPrefsUseCase, updatePrefsUseCase, issueLinkUseCase)
		templateController = controller.NewTemplateController(
			createTemplateUseCase,
			listTemplatesUseCase,
			updateTemplateUseCase,
			deleteTemplateUseCase,
			createFromTemplateUseCase,
		)
		cronController = controller.NewCronController(deadlineSweepUseCase, cfg.Cron.Secret)

		if telegramSender != nil {
			bot := telegram.NewBot(telegramSender, completeLinkUseCase, userRepo, workspaceRepo, goalRepo)
			telegramController = controller.NewTelegramController(bot, cfg.Telegram.WebhookSecret)
		}

		// Middleware
		loginRateLimiter = middleware.NewRateLimiter()
		authMiddleware = middleware.NewAuthMiddleware(tokenService)

		// Notification outbox worker
		if cfg.Notify.WorkerEnabled {
			worker := notify.NewWorker(queueRepo, userRepo, emailSender, telegramSender, renderer, notify.WorkerConfig{
				BaseURL:      cfg.Email.AppBaseURL,
				PollInterval: cfg.Notify.PollInterval,
				BatchSize:    cfg.Notify.BatchSize,
			})
			go worker.Start(rootCtx)
		} else {
			slog.Info("Notification worker disabled")
		}

		slog.Info("Application components initialized successfully")
	} else {
		slog.Warn("API routes not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		goalController,
		metricController,
		workspaceController,
		statsController,
		reportController,
		activityController,
		notificationController,
		templateController,
		telegramController,
		cronController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
