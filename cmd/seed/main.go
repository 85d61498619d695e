// seed puebla la base de datos con clientes, productos y compras de demostración.
// Es idempotente: si el cliente de referencia ya existe no vuelve a insertar nada.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/riosdeldesierto/clientes-api/internal/application/dto"
	"github.com/riosdeldesierto/clientes-api/internal/application/usecase"
	"github.com/riosdeldesierto/clientes-api/internal/domain"
	"github.com/riosdeldesierto/clientes-api/internal/domain/entity"
	"github.com/riosdeldesierto/clientes-api/internal/infrastructure/postgres"
	"github.com/riosdeldesierto/clientes-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	customerUC := usecase.NewCustomerUseCase(txRunner, customerRepo, documentRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	purchaseUC := usecase.NewPurchaseUseCase(txRunner, customerRepo, purchaseRepo)

	existing, err := customerUC.LookupByDocument(ctx, string(entity.DocumentTypeCedula), "123456789")
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "verificar datos existentes: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Println("los datos de demostración ya existen, nada que hacer")
		return
	}

	products := []dto.CreateProductRequest{
		{Nombre: "Televisor 65 pulgadas", Precio: decimal.NewFromInt(3_000_000)},
		{Nombre: "Portátil Gamer", Precio: decimal.NewFromInt(2_500_000)},
		{Nombre: "Barra de Sonido", Precio: decimal.NewFromInt(600_000)},
		{Nombre: "Silla Gamer", Precio: decimal.NewFromInt(1_600_000)},
	}
	productIDs := make(map[string]string, len(products))
	for _, p := range products {
		created, err := productUC.Create(ctx, p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "crear producto %q: %v\n", p.Nombre, err)
			os.Exit(1)
		}
		productIDs[p.Nombre] = created.ID
		fmt.Printf("producto creado: %s (%s)\n", p.Nombre, created.ID)
	}

	customers := []dto.CreateCustomerRequest{
		{
			Nombre: "Juan", Apellido: "Pérez",
			CorreoElectronico: "juan.perez@example.com",
			TelefonoCelular:   "3001234567",
			FechaNacimiento:   "1985-03-15",
			Documento:         dto.DocumentRequest{TipoDocumento: "CEDULA", NumeroDocumento: "123456789"},
		},
		{
			Nombre: "María", Apellido: "González",
			CorreoElectronico: "maria.gonzalez@example.com",
			TelefonoCelular:   "3109876543",
			FechaNacimiento:   "1992-07-22",
			Documento:         dto.DocumentRequest{TipoDocumento: "CEDULA", NumeroDocumento: "987654321"},
		},
		{
			Nombre: "Pedro", Apellido: "Martínez",
			CorreoElectronico: "pedro.martinez@example.com",
			TelefonoCelular:   "3205551234",
			FechaNacimiento:   "1978-11-02",
			Documento:         dto.DocumentRequest{TipoDocumento: "CEDULA", NumeroDocumento: "456789123"},
		},
	}
	customerIDs := make(map[string]string, len(customers))
	for _, c := range customers {
		created, err := customerUC.Create(ctx, c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "crear cliente %s %s: %v\n", c.Nombre, c.Apellido, err)
			os.Exit(1)
		}
		customerIDs[c.Nombre] = created.ID
		fmt.Printf("cliente creado: %s %s (%s)\n", c.Nombre, c.Apellido, created.ID)
	}

	now := time.Now().UTC()
	daysAgo := func(d int) string { return now.AddDate(0, 0, -d).Format(time.RFC3339) }

	// Juan supera el umbral con 5.500.000 dentro de la ventana; la compra
	// de hace 120 días queda fuera del cálculo.
	// María acumula 6.100.000 en tres compras. Pedro queda en 4.100.000,
	// por debajo del umbral de 5.000.000.
	purchases := []dto.CreatePurchaseRequest{
		{
			ClienteID: customerIDs["Juan"], Fecha: daysAgo(10),
			Detalles: []dto.PurchaseItemRequest{
				{ProductoID: productIDs["Televisor 65 pulgadas"], Cantidad: 1},
				{ProductoID: productIDs["Portátil Gamer"], Cantidad: 1},
			},
		},
		{
			ClienteID: customerIDs["Juan"], Fecha: daysAgo(120),
			Detalles: []dto.PurchaseItemRequest{
				{ProductoID: productIDs["Barra de Sonido"], Cantidad: 1},
			},
		},
		{
			ClienteID: customerIDs["María"], Fecha: daysAgo(5),
			Detalles: []dto.PurchaseItemRequest{
				{ProductoID: productIDs["Televisor 65 pulgadas"], Cantidad: 1},
			},
		},
		{
			ClienteID: customerIDs["María"], Fecha: daysAgo(12),
			Detalles: []dto.PurchaseItemRequest{
				{ProductoID: productIDs["Portátil Gamer"], Cantidad: 1},
			},
		},
		{
			ClienteID: customerIDs["María"], Fecha: daysAgo(20),
			Detalles: []dto.PurchaseItemRequest{
				{ProductoID: productIDs["Barra de Sonido"], Cantidad: 1},
			},
		},
		{
			ClienteID: customerIDs["Pedro"], Fecha: daysAgo(8),
			Detalles: []dto.PurchaseItemRequest{
				{ProductoID: productIDs["Portátil Gamer"], Cantidad: 1},
				{ProductoID: productIDs["Silla Gamer"], Cantidad: 1},
			},
		},
	}
	for _, p := range purchases {
		created, err := purchaseUC.Create(ctx, p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "crear compra: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("compra creada: cliente=%s total=%s fecha=%s\n", created.ClienteID, created.MontoTotal, created.Fecha)
	}

	fmt.Println("datos de demostración cargados")
}
