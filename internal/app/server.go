// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jeyamcars-service/internal/config"
	"jeyamcars-service/internal/db"
	"jeyamcars-service/internal/domain/car"
	authHandler "jeyamcars-service/internal/handlers/auth"
	carHandler "jeyamcars-service/internal/handlers/car"
	"jeyamcars-service/internal/middleware"
	jwtpkg "jeyamcars-service/internal/pkg/jwt"
	"jeyamcars-service/internal/pkg/session"
	authUsecase "jeyamcars-service/internal/service/auth"
	"jeyamcars-service/internal/service/catalog"
	"jeyamcars-service/internal/ws"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start(ctx context.Context) error {
	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("[REDIS] ✅ Connected successfully")

	// ----- WebSocket Hub -----
	hub := ws.NewHub(logger)
	go hub.Run(ctx)

	// ----- Services -----
	catalogService := catalog.NewCatalogService(car.Seed(), hub, logger)

	verifier, err := authUsecase.NewStaticVerifier(s.cfg.AdminUsername, s.cfg.AdminPassword, s.cfg.LoginDelay)
	if err != nil {
		return err
	}

	jwtManager, err := jwtpkg.NewManager(jwtpkg.Config{
		Secret: s.cfg.JWTSecret,
		Issuer: s.cfg.JWTIssuer,
		TTL:    s.cfg.JWTTTL,
	})
	if err != nil {
		return err
	}

	sessionStore := session.NewRedisStore(redisClient, s.cfg.SessionKey)
	authService, err := authUsecase.NewAuthService(verifier, sessionStore, jwtManager, hub, logger)
	if err != nil {
		return err
	}

	// ----- Handlers -----
	carHandlerInst := carHandler.NewCarHandler(catalogService, logger)
	authHandlerInst := authHandler.NewAuthHandler(authService, logger)
	wsHandlerInst := ws.NewHandler(hub, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(authService)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		CarHandler:     carHandlerInst,
		AuthHandler:    authHandlerInst,
		WSHandler:      wsHandlerInst,
		AuthMiddleware: authMiddleware,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	log.Printf("🚀 Server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
