package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riosdeldesierto/clientes-api/internal/domain"
	"github.com/riosdeldesierto/clientes-api/internal/domain/entity"
)

func TestParseDocumentType_NormalizaCaja(t *testing.T) {
	cases := map[string]entity.DocumentType{
		"CEDULA":     entity.DocumentTypeCedula,
		"cedula":     entity.DocumentTypeCedula,
		"  Cedula  ": entity.DocumentTypeCedula,
		"NIT":        entity.DocumentTypeNIT,
		"nit":        entity.DocumentTypeNIT,
		"pasaporte":  entity.DocumentTypePasaporte,
	}
	for in, want := range cases {
		got, err := entity.ParseDocumentType(in)
		require.NoError(t, err, "entrada %q", in)
		assert.Equal(t, want, got, "entrada %q", in)
	}
}

func TestParseDocumentType_Invalido(t *testing.T) {
	for _, in := range []string{"", "DNI", "TARJETA"} {
		_, err := entity.ParseDocumentType(in)
		require.Error(t, err, "entrada %q", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
