package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Nattie-Nkosi/certsim/config"
	"github.com/Nattie-Nkosi/certsim/database"
	_ "github.com/Nattie-Nkosi/certsim/docs" // Swagger docs - auto-generated
	adminctrl "github.com/Nattie-Nkosi/certsim/internal/controller/admin"
	"github.com/Nattie-Nkosi/certsim/internal/controller/middleware"
	userctrl "github.com/Nattie-Nkosi/certsim/internal/controller/user"
	"github.com/Nattie-Nkosi/certsim/internal/logger"
	"github.com/Nattie-Nkosi/certsim/internal/repository"
	"github.com/Nattie-Nkosi/certsim/internal/service"
)

// @title CertSim API
// @version 1.0
// @description IT-certification practice-exam backend: certifications, exams, timed/practice attempts with proctoring signals and grading.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewCertificationRepository,
			repository.NewQuestionRepository,
			repository.NewExamRepository,
			repository.NewExamAttemptRepository,
			repository.NewAuditLogRepository,
		),

		// Services layer
		fx.Provide(
			service.NewTokenService,
			service.NewAuditService,
			service.NewAuthService,
			service.NewCatalogService,
			service.NewAttemptService,
			service.NewAdminCertificationService,
			service.NewAdminQuestionService,
			service.NewAdminExamService,
			service.NewAdminReviewService,
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewCatalogController,
			userctrl.NewAttemptController,
			adminctrl.NewCertificationController,
			adminctrl.NewQuestionController,
			adminctrl.NewExamController,
			adminctrl.NewReviewController,
		),

		fx.Invoke(MigrateDB),
		fx.Invoke(SeedAdmin),
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(StartAuditRetention),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens service.TokenService,
	authCtrl *userctrl.AuthController,
	catalogCtrl *userctrl.CatalogController,
	attemptCtrl *userctrl.AttemptController,
	certAdminCtrl *adminctrl.CertificationController,
	questionAdminCtrl *adminctrl.QuestionController,
	examAdminCtrl *adminctrl.ExamController,
	reviewAdminCtrl *adminctrl.ReviewController,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/auth/register", authCtrl.Register)
		api.POST("/auth/login", authCtrl.Login)

		api.GET("/certifications", catalogCtrl.ListCertifications)
		api.GET("/certifications/:cert_id/exams", catalogCtrl.ListExams)
	}

	authed := api.Group("")
	authed.Use(middleware.Auth(tokens))
	{
		authed.GET("/exams/:exam_id", catalogCtrl.GetExam)
		authed.POST("/exams/:exam_id/attempts", attemptCtrl.StartAttempt)
		authed.POST("/exams/:exam_id/submit", attemptCtrl.SubmitAttempt)

		authed.POST("/attempts/:attempt_id/tab-switch", attemptCtrl.RecordTabSwitch)
		authed.POST("/attempts/:attempt_id/check-answer", attemptCtrl.CheckAnswer)
		authed.GET("/attempts/:attempt_id", attemptCtrl.GetAttempt)
		authed.DELETE("/attempts/:attempt_id", attemptCtrl.DeleteAttempt)
		authed.GET("/my-attempts", attemptCtrl.GetMyAttempts)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.Auth(tokens), middleware.RequireAdmin())
	{
		adminGroup.POST("/certifications", certAdminCtrl.CreateCertification)
		adminGroup.PUT("/certifications/:cert_id", certAdminCtrl.UpdateCertification)
		adminGroup.DELETE("/certifications/:cert_id", certAdminCtrl.DeleteCertification)
		adminGroup.GET("/certifications/:cert_id/questions", questionAdminCtrl.ListQuestions)

		adminGroup.POST("/questions", questionAdminCtrl.CreateQuestion)
		adminGroup.PUT("/questions/:question_id", questionAdminCtrl.UpdateQuestion)
		adminGroup.DELETE("/questions/:question_id", questionAdminCtrl.DeleteQuestion)

		adminGroup.POST("/exams", examAdminCtrl.CreateExam)
		adminGroup.PUT("/exams/:exam_id", examAdminCtrl.UpdateExam)
		adminGroup.DELETE("/exams/:exam_id", examAdminCtrl.DeleteExam)
		adminGroup.POST("/exams/:exam_id/questions", examAdminCtrl.AttachQuestion)
		adminGroup.PUT("/exams/:exam_id/questions/:question_id", examAdminCtrl.ReorderQuestion)
		adminGroup.DELETE("/exams/:exam_id/questions/:question_id", examAdminCtrl.DetachQuestion)

		adminGroup.GET("/flagged-attempts", reviewAdminCtrl.ListFlaggedAttempts)
		adminGroup.GET("/audit-logs", reviewAdminCtrl.ListAuditLogs)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("CertSim API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func MigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := database.Migrate(db); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// SeedAdmin bootstraps the configured ADMIN account. Public registration only
// creates USER accounts, so without this seed the admin surface stays locked.
func SeedAdmin(cfg *config.Config, auth service.AuthService) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		log.Warn().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not configured; skipping admin seed")
		return nil
	}
	if err := auth.EnsureAdmin(cfg.Admin.Email, cfg.Admin.Name, cfg.Admin.Password); err != nil {
		log.Error().Err(err).Msg("Admin seed failed")
		return err
	}
	return nil
}

// StartAuditRetention purges expired audit log entries once at startup and
// then every 24 hours.
func StartAuditRetention(lc fx.Lifecycle, cfg *config.Config, audit service.AuditService) {
	stop := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				audit.PurgeExpired(cfg.Audit.RetentionDays)
				ticker := time.NewTicker(24 * time.Hour)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						audit.PurgeExpired(cfg.Audit.RetentionDays)
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			return nil
		},
	})
}
