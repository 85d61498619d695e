package loyalty_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riosdeldesierto/clientes-api/internal/application/loyalty"
	"github.com/riosdeldesierto/clientes-api/internal/domain"
	"github.com/riosdeldesierto/clientes-api/internal/domain/repository"
	"github.com/riosdeldesierto/clientes-api/internal/infrastructure/excel"
)

// fakeLoyaltyRepo sirve totales y detalles fijos, registrando el since recibido.
type fakeLoyaltyRepo struct {
	totals    []repository.CustomerTotal
	rows      []repository.LoyaltyReportRow
	lastSince time.Time
}

func (f *fakeLoyaltyRepo) CustomerTotalsSince(_ context.Context, since time.Time) ([]repository.CustomerTotal, error) {
	f.lastSince = since
	return f.totals, nil
}

func (f *fakeLoyaltyRepo) PurchaseItemsForCustomers(_ context.Context, _ time.Time, customerIDs []string) ([]repository.LoyaltyReportRow, error) {
	allowed := make(map[string]bool, len(customerIDs))
	for _, id := range customerIDs {
		allowed[id] = true
	}
	var out []repository.LoyaltyReportRow
	for _, r := range f.rows {
		if allowed[r.CustomerID] {
			out = append(out, r)
		}
	}
	return out, nil
}

var threshold = decimal.NewFromInt(5_000_000)

func newLoyaltyUC(repo *fakeLoyaltyRepo) *loyalty.UseCase {
	return loyalty.NewUseCase(repo, excel.NewReportWriter(), threshold)
}

// El umbral es estrictamente mayor: un total exactamente igual queda fuera.
func TestQualifyingCustomers_UmbralEstricto(t *testing.T) {
	repo := &fakeLoyaltyRepo{totals: []repository.CustomerTotal{
		{CustomerID: "exacto", Total: decimal.NewFromInt(5_000_000)},
		{CustomerID: "apenas", Total: decimal.NewFromInt(5_000_001)},
		{CustomerID: "debajo", Total: decimal.NewFromInt(4_100_000)},
	}}
	uc := newLoyaltyUC(repo)

	got, err := uc.QualifyingCustomers(context.Background(), threshold, reportNow)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "apenas", got[0].CustomerID)
}

func TestQualifyingCustomers_VentanaDe30Dias(t *testing.T) {
	repo := &fakeLoyaltyRepo{}
	uc := newLoyaltyUC(repo)

	_, err := uc.QualifyingCustomers(context.Background(), threshold, reportNow)
	require.NoError(t, err)
	assert.Equal(t, reportNow.AddDate(0, 0, -30), repo.lastSince)
}

func TestBuildFidelityReport_NadieCalifica(t *testing.T) {
	repo := &fakeLoyaltyRepo{totals: []repository.CustomerTotal{
		{CustomerID: "debajo", Total: decimal.NewFromInt(4_100_000)},
	}}
	uc := newLoyaltyUC(repo)

	_, err := uc.BuildFidelityReport(context.Background(), threshold, reportNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoData)
}

func TestBuildFidelityReport_SoloClientesQueCalifican(t *testing.T) {
	repo := &fakeLoyaltyRepo{
		totals: []repository.CustomerTotal{
			{CustomerID: "c1", Total: decimal.NewFromInt(6_100_000)},
			{CustomerID: "c2", Total: decimal.NewFromInt(4_100_000)},
		},
		rows: []repository.LoyaltyReportRow{
			detailRow("c1", "María", "González", "Televisor 65 pulgadas", 5, 1, 3_000_000),
			detailRow("c1", "María", "González", "Portátil Gamer", 12, 1, 2_500_000),
			detailRow("c1", "María", "González", "Barra de Sonido", 20, 1, 600_000),
			detailRow("c2", "Pedro", "Martínez", "Portátil Gamer", 8, 1, 2_500_000),
		},
	}
	uc := newLoyaltyUC(repo)

	report, err := uc.BuildFidelityReport(context.Background(), threshold, reportNow)
	require.NoError(t, err)

	// 3 detalles de María + su fila de total; Pedro no aparece
	require.Len(t, report.Rows, 4)
	for _, row := range report.Rows {
		assert.NotEqual(t, "Pedro", row.Nombre)
	}
	assert.True(t, report.Rows[3].IsTotal)
	assert.True(t, report.Rows[3].Subtotal.Equal(decimal.NewFromInt(6_100_000)))
}

func TestGenerateReportFile_NombreYMIME(t *testing.T) {
	repo := &fakeLoyaltyRepo{
		totals: []repository.CustomerTotal{
			{CustomerID: "c1", Total: decimal.NewFromInt(5_500_000)},
		},
		rows: []repository.LoyaltyReportRow{
			detailRow("c1", "Juan", "Pérez", "Televisor 65 pulgadas", 10, 1, 3_000_000),
			detailRow("c1", "Juan", "Pérez", "Portátil Gamer", 10, 1, 2_500_000),
		},
	}
	uc := newLoyaltyUC(repo)

	file, err := uc.GenerateReportFile(context.Background(), threshold, reportNow)
	require.NoError(t, err)
	assert.Equal(t, "reporte_clientes_fidelizacion_20260829_100000.xlsx", file.Name)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.MIME)
	assert.NotEmpty(t, file.Content)
}
