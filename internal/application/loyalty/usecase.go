package loyalty

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/riosdeldesierto/clientes-api/internal/domain"
	"github.com/riosdeldesierto/clientes-api/internal/domain/repository"
)

// Window ventana móvil de evaluación: 30 días hacia atrás desde el momento de consulta.
const Window = 30 * 24 * time.Hour

// ReportRenderer puerto de renderizado del reporte (XLSX).
type ReportRenderer interface {
	Render(report *Report) ([]byte, error)
}

// ReportFile reporte renderizado listo para descarga.
type ReportFile struct {
	Name    string
	MIME    string
	Content []byte
}

// UseCase motor de fidelización: agrega compras COMPLETADA de los últimos 30
// días por cliente, filtra los que superan estrictamente el umbral y ensambla
// el reporte con sus detalles de compra.
type UseCase struct {
	repo             repository.LoyaltyRepository
	renderer         ReportRenderer
	defaultThreshold decimal.Decimal
}

// NewUseCase construye el caso de uso. defaultThreshold en COP (5.000.000 por defecto vía config).
func NewUseCase(repo repository.LoyaltyRepository, renderer ReportRenderer, defaultThreshold decimal.Decimal) *UseCase {
	return &UseCase{repo: repo, renderer: renderer, defaultThreshold: defaultThreshold}
}

// DefaultThreshold umbral configurado.
func (uc *UseCase) DefaultThreshold() decimal.Decimal {
	return uc.defaultThreshold
}

// QualifyingCustomers clientes cuya suma de compras COMPLETADA en la ventana
// supera estrictamente el umbral. Clientes sin compras en la ventana nunca
// aparecen; un total exactamente igual al umbral queda excluido.
func (uc *UseCase) QualifyingCustomers(ctx context.Context, threshold decimal.Decimal, now time.Time) ([]repository.CustomerTotal, error) {
	since := now.Add(-Window)
	totals, err := uc.repo.CustomerTotalsSince(ctx, since)
	if err != nil {
		return nil, err
	}
	var qualifying []repository.CustomerTotal
	for _, t := range totals {
		if t.Total.GreaterThan(threshold) {
			qualifying = append(qualifying, t)
		}
	}
	return qualifying, nil
}

// BuildFidelityReport ensambla el reporte para los clientes que califican.
// Retorna ErrNoData cuando nadie supera el umbral o no hay detalles en la ventana.
func (uc *UseCase) BuildFidelityReport(ctx context.Context, threshold decimal.Decimal, now time.Time) (*Report, error) {
	qualifying, err := uc.QualifyingCustomers(ctx, threshold, now)
	if err != nil {
		return nil, err
	}
	if len(qualifying) == 0 {
		return nil, fmt.Errorf("%w: ningún cliente supera el monto mínimo de fidelización", domain.ErrNoData)
	}
	ids := make([]string, 0, len(qualifying))
	for _, q := range qualifying {
		ids = append(ids, q.CustomerID)
	}
	since := now.Add(-Window)
	rows, err := uc.repo.PurchaseItemsForCustomers(ctx, since, ids)
	if err != nil {
		return nil, err
	}
	return BuildReport(rows, now)
}

// GenerateReportFile ensambla y renderiza el reporte en XLSX.
func (uc *UseCase) GenerateReportFile(ctx context.Context, threshold decimal.Decimal, now time.Time) (*ReportFile, error) {
	report, err := uc.BuildFidelityReport(ctx, threshold, now)
	if err != nil {
		return nil, err
	}
	content, err := uc.renderer.Render(report)
	if err != nil {
		return nil, fmt.Errorf("renderizar reporte: %w", err)
	}
	name := fmt.Sprintf("reporte_clientes_fidelizacion_%s.xlsx", now.Format("20060102_150405"))
	return &ReportFile{
		Name:    name,
		MIME:    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content: content,
	}, nil
}
