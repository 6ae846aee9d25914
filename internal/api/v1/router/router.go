package router

import (
	"context"
	"net/http"

	"genmoney/internal/api/v1/handler"
	"genmoney/internal/config"
	"genmoney/internal/db"
	"genmoney/internal/middleware"
	"genmoney/internal/repository"
	"genmoney/internal/seed"
	"genmoney/internal/service"
	"genmoney/internal/token"

	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// New wires the full request path: Mongo client, repositories, services,
// handlers, middleware, and CORS. The returned client is owned by the
// caller and must be disconnected on shutdown.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *mongo.Client, error) {
	// 1. Open the shared Mongo client
	client, err := db.Connect(context.Background(), cfg.MongoURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")
	database := client.Database(cfg.DBName)

	// 2. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 3. Initialize repositories & services & handlers
	userRepo := repository.NewUserRepo(database)
	courseRepo := repository.NewCourseRepo(database, logger)
	paymentRepo := repository.NewPaymentRepo(database)

	tokens := token.NewService(cfg.JWTSecret, token.DefaultTTL)

	authSvc := service.NewAuthService(userRepo, tokens)
	courseSvc := service.NewCourseService(courseRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, userRepo, courseRepo, logger)
	userSvc := service.NewUserService(courseRepo, paymentRepo)

	authHandler := handler.NewAuthHandler(authSvc, validate, logger)
	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)
	paymentHandler := handler.NewPaymentHandler(paymentSvc, validate, logger)
	userHandler := handler.NewUserHandler(userSvc, logger)

	// 4. Seed admin account and sample courses
	if err := seed.Run(context.Background(), userRepo, courseRepo, logger); err != nil {
		return nil, nil, err
	}

	// 5. Initialize middleware
	authMiddleware := middleware.Auth(tokens, userRepo)

	// 6. Create ServeMux router with the /api prefix
	apiMux := http.NewServeMux()
	authHandler.RegisterRoutes(apiMux)
	courseHandler.RegisterRoutes(apiMux, authMiddleware)
	paymentHandler.RegisterRoutes(apiMux, authMiddleware)
	userHandler.RegisterRoutes(apiMux, authMiddleware)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiMux))

	// 7. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(c.Handler(mux)), client, nil
}
