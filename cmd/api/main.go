package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Academia-api/internal/application/access"
	"github.com/jhoicas/Academia-api/internal/application/auth"
	"github.com/jhoicas/Academia-api/internal/application/usecase"
	"github.com/jhoicas/Academia-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Academia-api/internal/interfaces/http"
	"github.com/jhoicas/Academia-api/pkg/config"
	"github.com/jhoicas/Academia-api/pkg/logger"
	"github.com/jhoicas/Academia-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Parámetros de derivación inválidos tumban el arranque aquí, no una request.
	hasher, err := password.New(password.Params{
		Iterations: cfg.Password.Iterations,
		SaltBytes:  cfg.Password.SaltBytes,
		KeyBytes:   cfg.Password.KeyBytes,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("parámetros de password")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	courseRepo := postgres.NewCourseRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	enrollmentRepo := postgres.NewEnrollmentRepository(pool)
	contentRepo := postgres.NewContentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, hasher, log)
	courseUC := usecase.NewCourseUseCase(courseRepo, contentRepo, log)
	purchaseUC := usecase.NewPurchaseUseCase(purchaseRepo, courseRepo, userRepo, log)
	accessUC := access.NewAccessUseCase(txRunner, enrollmentRepo, contentRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Academia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CourseUC:   courseUC,
		PurchaseUC: purchaseUC,
		AccessUC:   accessUC,
		JWT: httpRouter.JWTSettings{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
