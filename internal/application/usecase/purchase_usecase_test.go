package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riosdeldesierto/clientes-api/internal/application/dto"
	"github.com/riosdeldesierto/clientes-api/internal/application/usecase"
	"github.com/riosdeldesierto/clientes-api/internal/domain"
	"github.com/riosdeldesierto/clientes-api/internal/domain/entity"
)

func newPurchaseFixture() (*usecase.PurchaseUseCase, *memPurchaseRepo) {
	customers := newMemCustomerRepo()
	customers.byID["c1"] = &entity.Customer{ID: "c1", FirstName: "Juan", LastName: "Pérez"}

	products := newMemProductRepo()
	products.byID["tv"] = &entity.Product{ID: "tv", Name: "Televisor 65 pulgadas", Price: decimal.NewFromInt(3_000_000)}
	products.byID["sonido"] = &entity.Product{ID: "sonido", Name: "Barra de Sonido", Price: decimal.NewFromInt(600_000)}

	purchases := &memPurchaseRepo{}
	tx := &memTxRunner{customers: customers, products: products, purchases: purchases}
	return usecase.NewPurchaseUseCase(tx, customers, purchases), purchases
}

func TestPurchaseCreate_TotalDesdeLosDetalles(t *testing.T) {
	uc, purchases := newPurchaseFixture()

	resp, err := uc.Create(context.Background(), dto.CreatePurchaseRequest{
		ClienteID: "c1",
		Fecha:     time.Date(2026, 8, 20, 15, 0, 0, 0, time.UTC).Format(time.RFC3339),
		Detalles: []dto.PurchaseItemRequest{
			{ProductoID: "tv", Cantidad: 1},
			{ProductoID: "sonido", Cantidad: 2},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.MontoTotal.Equal(decimal.NewFromInt(4_200_000)),
		"monto esperado 4.200.000, obtenido %s", resp.MontoTotal)
	assert.Equal(t, "COMPLETADA", resp.Status, "status por defecto")
	require.Len(t, purchases.purchases, 1)
	assert.Len(t, purchases.purchases[0].Items, 2)
}

// Sin precio explícito en el detalle, rige el precio vigente del producto.
func TestPurchaseCreate_PrecioExplicitoPrevalece(t *testing.T) {
	uc, _ := newPurchaseFixture()

	precio := decimal.NewFromInt(2_800_000)
	resp, err := uc.Create(context.Background(), dto.CreatePurchaseRequest{
		ClienteID: "c1",
		Detalles: []dto.PurchaseItemRequest{
			{ProductoID: "tv", Cantidad: 1, PrecioUnitario: &precio},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.MontoTotal.Equal(precio))
}

func TestPurchaseCreate_ClienteNoExiste(t *testing.T) {
	uc, _ := newPurchaseFixture()

	_, err := uc.Create(context.Background(), dto.CreatePurchaseRequest{
		ClienteID: "desconocido",
		Detalles:  []dto.PurchaseItemRequest{{ProductoID: "tv", Cantidad: 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPurchaseCreate_ProductoNoExiste(t *testing.T) {
	uc, _ := newPurchaseFixture()

	_, err := uc.Create(context.Background(), dto.CreatePurchaseRequest{
		ClienteID: "c1",
		Detalles:  []dto.PurchaseItemRequest{{ProductoID: "fantasma", Cantidad: 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPurchaseCreate_Validaciones(t *testing.T) {
	uc, _ := newPurchaseFixture()
	negativo := decimal.NewFromInt(-1)

	cases := map[string]dto.CreatePurchaseRequest{
		"sin cliente":  {Detalles: []dto.PurchaseItemRequest{{ProductoID: "tv", Cantidad: 1}}},
		"sin detalles": {ClienteID: "c1"},
		"cantidad cero": {ClienteID: "c1", Detalles: []dto.PurchaseItemRequest{
			{ProductoID: "tv", Cantidad: 0},
		}},
		"precio negativo": {ClienteID: "c1", Detalles: []dto.PurchaseItemRequest{
			{ProductoID: "tv", Cantidad: 1, PrecioUnitario: &negativo},
		}},
		"producto repetido": {ClienteID: "c1", Detalles: []dto.PurchaseItemRequest{
			{ProductoID: "tv", Cantidad: 1},
			{ProductoID: "tv", Cantidad: 2},
		}},
		"status invalido": {ClienteID: "c1", Status: "PENDIENTE", Detalles: []dto.PurchaseItemRequest{
			{ProductoID: "tv", Cantidad: 1},
		}},
		"fecha invalida": {ClienteID: "c1", Fecha: "20/08/2026", Detalles: []dto.PurchaseItemRequest{
			{ProductoID: "tv", Cantidad: 1},
		}},
	}
	for name, req := range cases {
		_, err := uc.Create(context.Background(), req)
		require.Error(t, err, "caso %q", name)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %q", name)
	}
}

func TestPurchaseCreate_TotalCeroRechazado(t *testing.T) {
	uc, purchases := newPurchaseFixture()

	gratis := decimal.Zero
	_, err := uc.Create(context.Background(), dto.CreatePurchaseRequest{
		ClienteID: "c1",
		Detalles: []dto.PurchaseItemRequest{
			{ProductoID: "tv", Cantidad: 1, PrecioUnitario: &gratis},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, purchases.purchases, "nada debe persistirse")
}

func TestPurchaseListByCustomer_ClienteNoExiste(t *testing.T) {
	uc, _ := newPurchaseFixture()

	_, err := uc.ListByCustomer(context.Background(), "desconocido")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPurchaseListByCustomer_Historial(t *testing.T) {
	uc, _ := newPurchaseFixture()

	_, err := uc.Create(context.Background(), dto.CreatePurchaseRequest{
		ClienteID: "c1",
		Detalles:  []dto.PurchaseItemRequest{{ProductoID: "sonido", Cantidad: 1}},
	})
	require.NoError(t, err)

	list, err := uc.ListByCustomer(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].MontoTotal.Equal(decimal.NewFromInt(600_000)))
}
