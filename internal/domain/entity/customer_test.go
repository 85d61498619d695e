package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riosdeldesierto/clientes-api/internal/domain"
	"github.com/riosdeldesierto/clientes-api/internal/domain/entity"
)

func TestNormalizeEmail_RecortaYMinimiza(t *testing.T) {
	got, err := entity.NormalizeEmail("  Juan.Perez@Example.COM  ")
	require.NoError(t, err)
	assert.Equal(t, "juan.perez@example.com", got)
}

func TestNormalizeEmail_Vacio(t *testing.T) {
	_, err := entity.NormalizeEmail("   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormalizeEmail_SinArroba(t *testing.T) {
	_, err := entity.NormalizeEmail("no-es-un-correo")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateBirthDate_NilEsValida(t *testing.T) {
	assert.NoError(t, entity.ValidateBirthDate(nil, time.Now()))
}

func TestValidateBirthDate_FuturaRechazada(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 1)
	err := entity.ValidateBirthDate(&future, now)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateBirthDate_PasadaValida(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(-30, 0, 0)
	assert.NoError(t, entity.ValidateBirthDate(&past, now))
}
