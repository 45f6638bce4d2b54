package main

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/dkhramov/millionaire/config"
	"github.com/dkhramov/millionaire/database"
	_ "github.com/dkhramov/millionaire/docs" // Swagger docs - auto-generated
	adminctrl "github.com/dkhramov/millionaire/internal/controller/admin"
	userctrl "github.com/dkhramov/millionaire/internal/controller/user"
	"github.com/dkhramov/millionaire/internal/logger"
	"github.com/dkhramov/millionaire/internal/model"
	"github.com/dkhramov/millionaire/internal/repository"
	"github.com/dkhramov/millionaire/internal/service"
)

// @title Millionaire Quiz API
// @version 1.0
// @description Quiz-for-money game: 15 tiered questions, three hints, cash out or lose.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewGameRepository,
			repository.NewQuestionRepository,
			repository.NewUserRepository,
		),

		// Services layer
		fx.Provide(
			func(
				gameRepo repository.GameRepository,
				questionRepo repository.QuestionRepository,
				userRepo repository.UserRepository,
				db *gorm.DB,
			) service.GameService {
				rng := rand.New(rand.NewSource(time.Now().UnixNano()))
				return service.NewGameService(gameRepo, questionRepo, userRepo, db, time.Now, rng)
			},
			func(userRepo repository.UserRepository, gameRepo repository.GameRepository) service.UserService {
				return service.NewUserService(userRepo, gameRepo, time.Now)
			},
			service.NewAdminQuestionService,
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewGameController,
			userctrl.NewUserController,
			adminctrl.NewAdminQuestionController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
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
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	gameCtrl *userctrl.GameController,
	userCtrl *userctrl.UserController,
	adminQuestionCtrl *adminctrl.AdminQuestionController,
) {
	// Admin routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		questionsGroup := adminAPIGroup.Group("/questions")
		questionsGroup.POST("", adminQuestionCtrl.CreateQuestion)
		questionsGroup.GET("", adminQuestionCtrl.ListQuestions)
		questionsGroup.GET("/coverage", adminQuestionCtrl.BankCoverage)
	}

	// Player routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.POST("/users", userCtrl.Register)
		userAPIGroup.GET("/users/:user_id", userCtrl.GetProfile)

		gamesGroup := userAPIGroup.Group("/games")
		gamesGroup.POST("", gameCtrl.CreateGame)
		gamesGroup.GET("/:game_id", gameCtrl.GetGame)
		gamesGroup.PUT("/:game_id/answer", gameCtrl.Answer)
		gamesGroup.PUT("/:game_id/take-money", gameCtrl.TakeMoney)
		gamesGroup.PUT("/:game_id/help", gameCtrl.UseHelp)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Millionaire API server starting on port %s", cfg.Server.Port)
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

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Game{},
		&model.GameQuestion{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
