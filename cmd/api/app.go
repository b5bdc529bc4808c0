package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/gordosalgados/gordo-salgados/docs"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/api/controller"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/api/dto"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/api/route"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/repository"
	"github.com/gordosalgados/gordo-salgados/internal/config"
	"github.com/gordosalgados/gordo-salgados/internal/infrastructure/database"
	"github.com/gordosalgados/gordo-salgados/pkg/auth"
	"github.com/gordosalgados/gordo-salgados/pkg/logger"
	"github.com/gordosalgados/gordo-salgados/pkg/middleware"
	"github.com/gordosalgados/gordo-salgados/pkg/revocation"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	version         = "1.0.0"
	basePath        = "/api"
	shutdownTimeout = 10 * time.Second
)

// App representa a aplicação e suas dependências
type App struct {
	config         *config.Config
	logger         logger.Logger
	router         *gin.Engine
	db             *pgxpool.Pool
	redis          *redis.Client
	authController *controller.AuthController
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.New(logger.Options{Level: cfg.LogLevel, JSON: cfg.IsProduction()})

	if cfg.MigrateOnStart {
		log.Info("aplicando migrações")
		if err := database.RunMigrations(cfg.Database.URL); err != nil {
			return nil, fmt.Errorf("erro ao aplicar migrações: %w", err)
		}
	}

	// Configurar banco de dados
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	app := &App{config: cfg, logger: log, db: db}

	// Revogação de tokens: Redis quando configurado
	var denylist revocation.Denylist = revocation.Noop{}
	if cfg.RedisURL != "" {
		client, err := revocation.Connect(ctx, cfg.RedisURL)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.redis = client
		denylist = revocation.NewRedisDenylist(client)
		log.Info("revogação de tokens habilitada")
	} else {
		log.Warn("REDIS_URL não configurado, logout apenas remove o cookie")
	}

	jwtService, err := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.SessionValidity)
	if err != nil {
		app.Close()
		return nil, err
	}

	if err := dto.RegisterValidators(); err != nil {
		app.Close()
		return nil, fmt.Errorf("erro ao registrar validações: %w", err)
	}

	// Criar repositórios
	adminRepo := repository.NewAdminRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Criar controllers
	app.authController = controller.NewAuthController(adminRepo, jwtService, denylist, log, cfg.IsProduction())
	controllers := route.Controllers{
		Auth:      app.authController,
		Admin:     controller.NewAdminController(adminRepo, log),
		Product:   controller.NewProductController(productRepo, log),
		Dashboard: controller.NewDashboardController(productRepo, adminRepo, log),
		Menu:      controller.NewMenuController(productRepo, cfg.Business, version, log),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery(log), middleware.RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	route.SetupRoutes(router, basePath, controllers, auth.SessionMiddleware(jwtService, denylist, log))

	app.router = router
	return app, nil
}

// Start inicia o servidor HTTP e aguarda SIGINT/SIGTERM para encerrar
func (a *App) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              a.config.ServerAddr,
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor iniciado", "addr", a.config.ServerAddr, "env", a.config.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	// Aguarda as gravações de último login pendentes
	if a.authController != nil {
		a.authController.Wait()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("erro ao fechar conexão com Redis", "error", err)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}
