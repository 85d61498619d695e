package entity

import (
	"fmt"
	"strings"

	"github.com/riosdeldesierto/clientes-api/internal/domain"
)

// DocumentType tipo de documento de identidad (Colombia).
type DocumentType string

const (
	DocumentTypeNIT       DocumentType = "NIT"
	DocumentTypeCedula    DocumentType = "CEDULA"
	DocumentTypePasaporte DocumentType = "PASAPORTE"
)

// ParseDocumentType acepta el valor en cualquier caja y lo normaliza.
func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(strings.ToUpper(strings.TrimSpace(s))) {
	case DocumentTypeNIT:
		return DocumentTypeNIT, nil
	case DocumentTypeCedula:
		return DocumentTypeCedula, nil
	case DocumentTypePasaporte:
		return DocumentTypePasaporte, nil
	}
	return "", fmt.Errorf("%w: tipo de documento inválido, valores válidos: NIT, CEDULA, PASAPORTE", domain.ErrInvalidInput)
}

// Document documento de identidad de un cliente.
// El par (Type, Number) es único a nivel global; CustomerID es único (relación 1:1).
type Document struct {
	ID         string
	Type       DocumentType
	Number     string
	CustomerID string
}
