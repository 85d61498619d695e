package usecase_test

import (
	"context"

	"github.com/riosdeldesierto/clientes-api/internal/application/usecase"
	"github.com/riosdeldesierto/clientes-api/internal/domain/entity"
	"github.com/riosdeldesierto/clientes-api/internal/domain/repository"
)

// Fakes en memoria compartidos por los tests del paquete. Replican el contrato
// de los repositorios Postgres: (nil, nil) cuando no hay coincidencia.

type memCustomerRepo struct {
	byID map[string]*entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{byID: make(map[string]*entity.Customer)}
}

func (m *memCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	m.byID[c.ID] = c
	return nil
}

func (m *memCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return m.byID[id], nil
}

func (m *memCustomerRepo) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	for _, c := range m.byID {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCustomerRepo) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memDocumentRepo struct {
	docs []*entity.Document
}

func (m *memDocumentRepo) Create(_ context.Context, d *entity.Document) error {
	m.docs = append(m.docs, d)
	return nil
}

func (m *memDocumentRepo) GetByTypeAndNumber(_ context.Context, docType entity.DocumentType, number string) (*entity.Document, error) {
	for _, d := range m.docs {
		if d.Type == docType && d.Number == number {
			return d, nil
		}
	}
	return nil, nil
}

func (m *memDocumentRepo) GetByCustomerID(_ context.Context, customerID string) (*entity.Document, error) {
	for _, d := range m.docs {
		if d.CustomerID == customerID {
			return d, nil
		}
	}
	return nil, nil
}

type memProductRepo struct {
	byID map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byID: make(map[string]*entity.Product)}
}

func (m *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	m.byID[p.ID] = p
	return nil
}

func (m *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return m.byID[id], nil
}

func (m *memProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.byID))
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProductRepo) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memPurchaseRepo struct {
	purchases []*entity.Purchase
}

func (m *memPurchaseRepo) Create(_ context.Context, p *entity.Purchase) error {
	m.purchases = append(m.purchases, p)
	return nil
}

func (m *memPurchaseRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, p := range m.purchases {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

// memTxRunner ejecuta los callbacks directamente sobre los fakes, sin transacción.
type memTxRunner struct {
	customers *memCustomerRepo
	documents *memDocumentRepo
	products  *memProductRepo
	purchases *memPurchaseRepo
}

func (m *memTxRunner) RunCustomer(ctx context.Context, fn func(repository.CustomerRepository, repository.DocumentRepository) error) error {
	return fn(m.customers, m.documents)
}

func (m *memTxRunner) RunPurchase(ctx context.Context, fn func(repository.PurchaseRepository, repository.ProductRepository) error) error {
	return fn(m.purchases, m.products)
}

var (
	_ usecase.CustomerTxRunner = (*memTxRunner)(nil)
	_ usecase.PurchaseTxRunner = (*memTxRunner)(nil)
)
