package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Academia-api/internal/application/access"
	"github.com/jhoicas/Academia-api/internal/application/auth"
	"github.com/jhoicas/Academia-api/internal/application/usecase"
	"github.com/jhoicas/Academia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CourseUC   *usecase.CourseUseCase
	PurchaseUC *usecase.PurchaseUseCase
	AccessUC   *access.AccessUseCase
	JWT        JWTSettings
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro y login públicos; /me protegido)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWT)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWT.Secret), authHandler.Me)

	courseHandler := NewCourseHandler(deps.CourseUC, deps.AccessUC)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC, deps.AccessUC)

	// Catálogo público
	courses := api.Group("/courses")
	courses.Get("/", courseHandler.List)
	courses.Get("/:id", courseHandler.GetByID)

	// Gestión de cursos (solo admin)
	courses.Post("/", AuthMiddleware(deps.JWT.Secret), RequireRole(entity.RoleAdmin), courseHandler.Create)
	courses.Put("/:id", AuthMiddleware(deps.JWT.Secret), RequireRole(entity.RoleAdmin), courseHandler.Update)
	courses.Delete("/:id", AuthMiddleware(deps.JWT.Secret), RequireRole(entity.RoleAdmin), courseHandler.Delete)
	courses.Post("/:id/content", AuthMiddleware(deps.JWT.Secret), RequireRole(entity.RoleAdmin), courseHandler.AddContent)

	// Gestión de usuarios (solo admin). La eliminación responde 409 si el
	// usuario tiene historial de compras; desactivar es la alternativa.
	users := api.Group("/users", AuthMiddleware(deps.JWT.Secret), RequireRole(entity.RoleAdmin))
	users.Post("/:id/deactivate", authHandler.DeactivateUser)
	users.Delete("/:id", authHandler.DeleteUser)

	// Contenido y acceso (protegido; el gate real es el enrollment)
	courses.Get("/:id/content", AuthMiddleware(deps.JWT.Secret), courseHandler.GetContent)
	courses.Get("/:id/access", AuthMiddleware(deps.JWT.Secret), courseHandler.GetAccess)

	// Compras (crear requiere sesión; confirm/refund son señales externas
	// estilo webhook del proveedor de pagos, sin token de usuario)
	purchases := api.Group("/purchases")
	purchases.Post("/", AuthMiddleware(deps.JWT.Secret), purchaseHandler.Create)
	purchases.Get("/", AuthMiddleware(deps.JWT.Secret), purchaseHandler.List)
	purchases.Post("/:id/confirm", purchaseHandler.Confirm)
	purchases.Post("/:id/refund", purchaseHandler.Refund)
}
