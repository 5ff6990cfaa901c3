package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/centraljoias/storefront-api/internal/application/auth"
	"github.com/centraljoias/storefront-api/internal/application/usecase"
	"github.com/centraljoias/storefront-api/internal/infrastructure/cache"
	"github.com/centraljoias/storefront-api/internal/infrastructure/media"
	"github.com/centraljoias/storefront-api/internal/infrastructure/postgres"
	httpRouter "github.com/centraljoias/storefront-api/internal/interfaces/http"
	"github.com/centraljoias/storefront-api/pkg/config"
	"github.com/centraljoias/storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	// El frontend espera precios como números JSON, no strings.
	decimal.MarshalJSONWithoutQuotes = true

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	contentRepo := postgres.NewContentRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache opcional del documento de portada; sin REDIS_ADDR se trabaja
	// directo contra la base.
	var contentCache usecase.ContentCache
	if cfg.Redis.Addr != "" {
		client, err := cache.Connect(cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		contentCache = cache.NewContentCache(client, 5*time.Minute)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("cache de contenido habilitado")
	}

	contentUC := usecase.NewContentUseCase(contentRepo, txRunner, contentCache)
	productUC := usecase.NewProductUseCase(productRepo)
	uploadUC := usecase.NewUploadUseCase(media.NewCloudinaryClient(cfg.Cloudinary))
	authUC := auth.NewAuthUseCase(
		auth.AdminConfig{Username: cfg.Admin.Username, Password: cfg.Admin.Password},
		auth.JWTConfig{Secret: cfg.JWT.Secret, ExpHours: cfg.JWT.ExpHours, Issuer: cfg.JWT.Issuer},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Storefront API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ContentUC: contentUC,
		ProductUC: productUC,
		UploadUC:  uploadUC,
		JWTSecret: cfg.JWT.Secret,
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
