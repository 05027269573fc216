package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gan0622/DevForFun/adapters/event"
	githubAdapter "github.com/gan0622/DevForFun/adapters/github"
	httpAdapter "github.com/gan0622/DevForFun/adapters/http"
	"github.com/gan0622/DevForFun/adapters/persistence"
	githubUC "github.com/gan0622/DevForFun/internal/application/usecase/github"
	profileUC "github.com/gan0622/DevForFun/internal/application/usecase/profile"
	"github.com/gan0622/DevForFun/internal/config"
	"github.com/gan0622/DevForFun/pkg/auth"
	"github.com/gan0622/DevForFun/pkg/logger"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting DevForFun API server...")

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	repoCache := githubAdapter.NewRedisRepoCache(redisClient, cfg.Github.CacheTTL, appLogger)
	githubSvc := githubAdapter.NewClient(cfg, repoCache, appLogger)

	// Use Cases
	getProfileUseCase := profileUC.NewGetProfileUseCase(profileRepo)
	upsertProfileUseCase := profileUC.NewUpsertProfileUseCase(profileRepo, userRepo, kafkaClient, appLogger)
	listProfilesUseCase := profileUC.NewListProfilesUseCase(profileRepo)
	deleteProfileUseCase := profileUC.NewDeleteProfileUseCase(profileRepo, userRepo, kafkaClient, appLogger)
	addExperienceUseCase := profileUC.NewAddExperienceUseCase(profileRepo, kafkaClient, appLogger)
	removeExperienceUseCase := profileUC.NewRemoveExperienceUseCase(profileRepo, kafkaClient, appLogger)
	addEducationUseCase := profileUC.NewAddEducationUseCase(profileRepo, kafkaClient, appLogger)
	removeEducationUseCase := profileUC.NewRemoveEducationUseCase(profileRepo, kafkaClient, appLogger)
	getReposUseCase := githubUC.NewGetReposUseCase(githubSvc)

	// HTTP Handlers
	profileHandler := httpAdapter.NewProfileHandler(
		getProfileUseCase,
		upsertProfileUseCase,
		listProfilesUseCase,
		deleteProfileUseCase,
		addExperienceUseCase,
		removeExperienceUseCase,
		addEducationUseCase,
		removeEducationUseCase,
		appLogger,
	)
	githubHandler := httpAdapter.NewGithubHandler(getReposUseCase)

	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(httpAdapter.ErrorHandler(appLogger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		profiles := api.Group("/profile")
		{
			profiles.GET("", profileHandler.List)
			profiles.GET("/user/:user_id", profileHandler.GetByOwner)
			profiles.GET("/github/:username", githubHandler.GetRepos)

			private := profiles.Group("")
			private.Use(authMiddleware)
			{
				private.GET("/me", profileHandler.GetMe)
				private.POST("", profileHandler.Upsert)
				private.DELETE("", profileHandler.Delete)

				private.PUT("/experience", profileHandler.AddExperience)
				private.DELETE("/experience/:exp_id", profileHandler.RemoveExperience)
				private.PUT("/education", profileHandler.AddEducation)
				private.DELETE("/education/:edu_id", profileHandler.RemoveEducation)
			}
		}
	}

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
