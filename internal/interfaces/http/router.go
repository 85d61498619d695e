package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/riosdeldesierto/clientes-api/internal/application/loyalty"
	"github.com/riosdeldesierto/clientes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	ExportUC   *usecase.ExportUseCase
	ProductUC  *usecase.ProductUseCase
	PurchaseUC *usecase.PurchaseUseCase
	LoyaltyUC  *loyalty.UseCase
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Clientes
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.ExportUC)
	clientes := api.Group("/clientes")
	clientes.Post("/", customerHandler.Create)
	clientes.Get("/buscar", customerHandler.Lookup)
	clientes.Post("/buscar", customerHandler.Lookup)
	clientes.Get("/exportar", customerHandler.Export)
	clientes.Post("/exportar", customerHandler.Export)
	clientes.Delete("/:id", customerHandler.Delete)

	// Compras (historial colgado del cliente)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	clientes.Get("/:id/compras", purchaseHandler.ListByCustomer)
	api.Post("/compras", purchaseHandler.Create)

	// Productos
	productHandler := NewProductHandler(deps.ProductUC)
	productos := api.Group("/productos")
	productos.Post("/", productHandler.Create)
	productos.Get("/", productHandler.List)
	productos.Get("/:id", productHandler.GetByID)
	productos.Delete("/:id", productHandler.Delete)

	// Reportes
	reportHandler := NewReportHandler(deps.LoyaltyUC)
	api.Get("/reportes/clientes-fidelizacion", reportHandler.FidelityReport)
}
