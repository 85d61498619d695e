package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/riosdeldesierto/clientes-api/internal/application/dto"
	"github.com/riosdeldesierto/clientes-api/internal/domain"
	"github.com/riosdeldesierto/clientes-api/internal/domain/entity"
	"github.com/riosdeldesierto/clientes-api/internal/domain/repository"
)

// CustomerTxRunner puerto de transacciones para la creación atómica cliente + documento.
type CustomerTxRunner interface {
	RunCustomer(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		documentRepo repository.DocumentRepository,
	) error) error
}

// CustomerUseCase casos de uso de clientes: creación, búsqueda por documento y eliminación.
type CustomerUseCase struct {
	tx        CustomerTxRunner
	customers repository.CustomerRepository
	documents repository.DocumentRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(tx CustomerTxRunner, customers repository.CustomerRepository, documents repository.DocumentRepository) *CustomerUseCase {
	return &CustomerUseCase{tx: tx, customers: customers, documents: documents}
}

// Create valida y crea un cliente con su documento en una sola transacción.
// Correo duplicado o documento duplicado retornan ErrDuplicate sin escribir nada.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	apellido := strings.TrimSpace(in.Apellido)
	telefono := strings.TrimSpace(in.TelefonoCelular)
	if nombre == "" {
		return nil, fmt.Errorf("%w: el campo 'nombre' es requerido", domain.ErrInvalidInput)
	}
	if apellido == "" {
		return nil, fmt.Errorf("%w: el campo 'apellido' es requerido", domain.ErrInvalidInput)
	}
	if telefono == "" {
		return nil, fmt.Errorf("%w: el campo 'telefonoCelular' es requerido", domain.ErrInvalidInput)
	}
	correo, err := entity.NormalizeEmail(in.CorreoElectronico)
	if err != nil {
		return nil, err
	}

	numeroDoc := strings.TrimSpace(in.Documento.NumeroDocumento)
	if strings.TrimSpace(in.Documento.TipoDocumento) == "" {
		return nil, fmt.Errorf("%w: el campo 'documento.tipoDocumento' es requerido", domain.ErrInvalidInput)
	}
	if numeroDoc == "" {
		return nil, fmt.Errorf("%w: el campo 'documento.numeroDocumento' es requerido", domain.ErrInvalidInput)
	}
	tipoDoc, err := entity.ParseDocumentType(in.Documento.TipoDocumento)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var fechaNacimiento *time.Time
	if strings.TrimSpace(in.FechaNacimiento) != "" {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(in.FechaNacimiento))
		if err != nil {
			return nil, fmt.Errorf("%w: formato de fecha inválido, use YYYY-MM-DD", domain.ErrInvalidInput)
		}
		fechaNacimiento = &d
	}
	if err := entity.ValidateBirthDate(fechaNacimiento, now); err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		ID:        uuid.New().String(),
		FirstName: nombre,
		LastName:  apellido,
		Email:     correo,
		Phone:     telefono,
		BirthDate: fechaNacimiento,
		CreatedAt: now,
		UpdatedAt: now,
	}
	document := &entity.Document{
		ID:         uuid.New().String(),
		Type:       tipoDoc,
		Number:     numeroDoc,
		CustomerID: customer.ID,
	}

	err = uc.tx.RunCustomer(ctx, func(customerRepo repository.CustomerRepository, documentRepo repository.DocumentRepository) error {
		existing, err := customerRepo.GetByEmail(ctx, correo)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: ya existe un cliente con el correo electrónico '%s'", domain.ErrDuplicate, correo)
		}
		existingDoc, err := documentRepo.GetByTypeAndNumber(ctx, tipoDoc, numeroDoc)
		if err != nil {
			return err
		}
		if existingDoc != nil {
			return fmt.Errorf("%w: ya existe un documento con tipo '%s' y número '%s'", domain.ErrDuplicate, tipoDoc, numeroDoc)
		}
		if err := customerRepo.Create(ctx, customer); err != nil {
			return err
		}
		return documentRepo.Create(ctx, document)
	})
	if err != nil {
		return nil, err
	}

	return customerResponse(customer, document), nil
}

// LookupByDocument busca un cliente por tipo y número de documento (coincidencia exacta).
func (uc *CustomerUseCase) LookupByDocument(ctx context.Context, tipoDocumento, numeroDocumento string) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(tipoDocumento) == "" {
		return nil, fmt.Errorf("%w: el parámetro 'tipo_documento' es requerido", domain.ErrInvalidInput)
	}
	numero := strings.TrimSpace(numeroDocumento)
	if numero == "" {
		return nil, fmt.Errorf("%w: el parámetro 'numero_documento' es requerido", domain.ErrInvalidInput)
	}
	tipoDoc, err := entity.ParseDocumentType(tipoDocumento)
	if err != nil {
		return nil, err
	}

	doc, err := uc.documents.GetByTypeAndNumber(ctx, tipoDoc, numero)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: cliente no encontrado", domain.ErrNotFound)
	}
	customer, err := uc.customers.GetByID(ctx, doc.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente no encontrado", domain.ErrNotFound)
	}
	return customerResponse(customer, doc), nil
}

// Delete elimina un cliente; el documento y las compras caen en cascada.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	return uc.customers.Delete(ctx, id)
}

func customerResponse(c *entity.Customer, d *entity.Document) *dto.CustomerResponse {
	var fechaNacimiento *string
	if c.BirthDate != nil {
		s := c.BirthDate.Format("2006-01-02")
		fechaNacimiento = &s
	}
	resp := &dto.CustomerResponse{
		ID:                c.ID,
		Nombre:            c.FirstName,
		Apellido:          c.LastName,
		CorreoElectronico: c.Email,
		TelefonoCelular:   c.Phone,
		FechaNacimiento:   fechaNacimiento,
	}
	if d != nil {
		resp.Documento = &dto.DocumentResponse{
			TipoDocumento:   string(d.Type),
			NumeroDocumento: d.Number,
		}
	}
	return resp
}
