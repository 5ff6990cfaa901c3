package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/centraljoias/storefront-api/internal/application/auth"
	"github.com/centraljoias/storefront-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ContentUC *usecase.ContentUseCase
	ProductUC *usecase.ProductUseCase
	UploadUC  *usecase.UploadUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Las lecturas de portada y catálogo son
// públicas; toda mutación pasa por el middleware de bearer token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protected := AuthMiddleware(deps.JWTSecret)

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/admin/login", authHandler.Login)

	contentHandler := NewContentHandler(deps.ContentUC)
	api.Get("/home-content", contentHandler.Get)
	api.Put("/home-content", protected, contentHandler.Put)

	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)
	api.Post("/products", protected, productHandler.Create)
	api.Put("/products/:id", protected, productHandler.Update)
	api.Delete("/products/:id", protected, productHandler.Delete)

	uploadHandler := NewUploadHandler(deps.UploadUC)
	api.Post("/upload", protected, uploadHandler.Upload)
}
