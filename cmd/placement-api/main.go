package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campushire/placement-api/api/swagger"
	"github.com/campushire/placement-api/internal/handler"
	"github.com/campushire/placement-api/internal/middleware"
	"github.com/campushire/placement-api/internal/models"
	"github.com/campushire/placement-api/internal/service"
	"github.com/campushire/placement-api/internal/store"
	"github.com/campushire/placement-api/internal/store/kv"
	"github.com/campushire/placement-api/pkg/config"
	"github.com/campushire/placement-api/pkg/logger"
	corsmiddleware "github.com/campushire/placement-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campushire/placement-api/pkg/middleware/requestid"
)

// @title Placement API
// @version 0.1.0
// @description Campus placement portal core
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	backing, err := newBacking(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init store backing", "backend", cfg.Store.Backend, "error", err)
	}

	entityStore := store.New(backing, logr, cfg.Store.Seed)

	metricsSvc := service.NewMetricsService()
	entityStore.SetPersistObserver(metricsSvc.ObserveStorePersist)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := entityStore.Load(ctx); err != nil {
		logr.Sugar().Fatalw("failed to load collections", "error", err)
	}

	validate := validator.New()

	authSvc := service.NewAuthService(entityStore, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userSvc := service.NewUserService(entityStore, validate, logr)
	profileSvc := service.NewProfileService(entityStore, validate, logr)
	jobSvc := service.NewJobService(entityStore, validate, logr)
	applicationSvc := service.NewApplicationService(entityStore, validate, logr)
	verificationSvc := service.NewVerificationService(entityStore, validate, logr)
	catalogSvc := service.NewCatalogService(entityStore, validate, logr)
	analyticsSvc := service.NewAnalyticsService(entityStore, logr)
	exportSvc := service.NewExportService(analyticsSvc, logr)

	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)
	profileH := handler.NewProfileHandler(profileSvc)
	jobH := handler.NewJobHandler(jobSvc)
	applicationH := handler.NewApplicationHandler(applicationSvc)
	verificationH := handler.NewVerificationHandler(verificationSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)
	exportH := handler.NewExportHandler(exportSvc)
	metricsH := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsH.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsH.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/login", authH.Login)
		auth.POST("/register", authH.Register)
		auth.GET("/me", middleware.JWT(authSvc), authH.Me)
	}

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))

	users := authed.Group("/users")
	{
		users.GET("", middleware.RequireRoles(models.RoleAdmin, models.RoleFaculty), userH.List)
		users.GET("/:id", middleware.RBAC(string(models.RoleAdmin), string(models.RoleFaculty), middleware.SelfRole), userH.Get)
		users.PATCH("/:id/active", middleware.RequireRoles(models.RoleAdmin), userH.SetActive)
		users.PATCH("/:id/role", middleware.RequireRoles(models.RoleAdmin), userH.ChangeRole)
	}

	profiles := authed.Group("/profiles")
	{
		profiles.GET("/:id", middleware.RBAC(string(models.RoleAdmin), string(models.RoleFaculty), string(models.RoleRecruiter), middleware.SelfRole), profileH.Get)
		profiles.PUT("/:id", middleware.RBAC(string(models.RoleAdmin), middleware.SelfRole), profileH.Update)
	}

	jobs := authed.Group("/jobs")
	{
		jobs.GET("", jobH.List)
		jobs.GET("/mine", middleware.RequireRoles(models.RoleRecruiter), jobH.Mine)
		jobs.GET("/:id", jobH.Get)
		jobs.POST("", middleware.RequireRoles(models.RoleRecruiter), jobH.Create)
		jobs.PUT("/:id", middleware.RequireRoles(models.RoleRecruiter), jobH.Update)
		jobs.PATCH("/:id/status", middleware.RequireRoles(models.RoleRecruiter), jobH.SetStatus)
		jobs.DELETE("/:id", middleware.RequireRoles(models.RoleRecruiter), jobH.Delete)
		jobs.GET("/:id/applications", middleware.RequireRoles(models.RoleRecruiter), applicationH.ListByJob)
	}

	applications := authed.Group("/applications")
	{
		applications.POST("", middleware.RequireRoles(models.RoleStudent), applicationH.Submit)
		applications.GET("/mine", middleware.RequireRoles(models.RoleStudent), applicationH.Mine)
		applications.PATCH("/:id/stage", middleware.RequireRoles(models.RoleRecruiter), applicationH.UpdateStage)
		applications.PUT("/:id/scores", middleware.RequireRoles(models.RoleRecruiter), applicationH.SetScores)
		applications.POST("/:id/notes", middleware.RequireRoles(models.RoleRecruiter), applicationH.AddNote)
	}

	verifications := authed.Group("/verifications")
	{
		verifications.POST("", middleware.RequireRoles(models.RoleStudent), verificationH.Submit)
		verifications.GET("/mine", middleware.RequireRoles(models.RoleStudent), verificationH.Mine)
		verifications.GET("", middleware.RequireRoles(models.RoleFaculty, models.RoleAdmin), verificationH.Queue)
		verifications.POST("/:id/approve", middleware.RequireRoles(models.RoleFaculty, models.RoleAdmin), verificationH.Approve)
		verifications.POST("/:id/reject", middleware.RequireRoles(models.RoleFaculty, models.RoleAdmin), verificationH.Reject)
	}

	authed.GET("/departments", catalogH.Departments)
	authed.POST("/departments", middleware.RequireRoles(models.RoleAdmin), catalogH.AddDepartment)
	authed.GET("/skills", catalogH.Skills)
	authed.POST("/skills", middleware.RequireRoles(models.RoleAdmin), catalogH.AddSkill)

	analytics := authed.Group("/analytics")
	{
		analytics.GET("/overview", middleware.RequireRoles(models.RoleAdmin, models.RoleFaculty), analyticsH.AdminOverview)
		analytics.GET("/recruiter", middleware.RequireRoles(models.RoleRecruiter), analyticsH.RecruiterOverview)
	}

	if cfg.Exports.Enabled {
		exports := authed.Group("/exports")
		exports.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleFaculty))
		{
			exports.GET("/placement-summary", exportH.PlacementSummary)
			exports.GET("/skill-demand", exportH.SkillDemand)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "backend", cfg.Store.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newBacking(cfg *config.Config) (kv.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		return kv.NewRedis(cfg.Redis, cfg.Store.Namespace)
	case config.BackendPostgres:
		return kv.NewPostgres(cfg.Database)
	default:
		return kv.NewMemory(), nil
	}
}
