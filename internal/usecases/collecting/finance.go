package collecting

import (
	"fmt"
	"time"

	"github.com/vfg2006/business-pulse-api/infrastructure/repository"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

// FinanceCollector agrega os sinais financeiros de um workspace
type FinanceCollector interface {
	Collect(workspaceID string, reference time.Time) (domain.FinanceSignals, error)
}

type financeCollector struct {
	invoiceRepo repository.InvoiceRepository
}

func NewFinanceCollector(invoiceRepo repository.InvoiceRepository) FinanceCollector {
	return &financeCollector{invoiceRepo: invoiceRepo}
}

func (c *financeCollector) Collect(workspaceID string, reference time.Time) (domain.FinanceSignals, error) {
	monthStart := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	previousMonthStart := monthStart.AddDate(0, -1, 0)

	monthlyRevenue, err := c.invoiceRepo.SumPaidBetween(workspaceID, monthStart, reference)
	if err != nil {
		return domain.FinanceSignals{}, fmt.Errorf("erro ao somar a receita do mês: %w", err)
	}

	previousRevenue, err := c.invoiceRepo.SumPaidBetween(workspaceID, previousMonthStart, monthStart)
	if err != nil {
		return domain.FinanceSignals{}, fmt.Errorf("erro ao somar a receita do mês anterior: %w", err)
	}

	overdueCount, overdueAmount, err := c.invoiceRepo.OverdueSummary(workspaceID, reference)
	if err != nil {
		return domain.FinanceSignals{}, fmt.Errorf("erro ao agregar faturas vencidas: %w", err)
	}

	outstanding, err := c.invoiceRepo.OutstandingAmount(workspaceID)
	if err != nil {
		return domain.FinanceSignals{}, fmt.Errorf("erro ao somar faturas em aberto: %w", err)
	}

	recentCount, err := c.invoiceRepo.CountPaidSince(workspaceID, reference.AddDate(0, 0, -30))
	if err != nil {
		return domain.FinanceSignals{}, fmt.Errorf("erro ao contar faturas pagas recentes: %w", err)
	}

	avgValue, err := c.invoiceRepo.AvgPaidAmountSince(workspaceID, reference.AddDate(0, 0, -90))
	if err != nil {
		return domain.FinanceSignals{}, fmt.Errorf("erro ao calcular o ticket médio: %w", err)
	}

	statusBreakdown, err := c.invoiceRepo.StatusBreakdown(workspaceID)
	if err != nil {
		return domain.FinanceSignals{}, fmt.Errorf("erro ao buscar faturas por status: %w", err)
	}

	// Crescimento percentual mês contra mês. Sem base de comparação,
	// qualquer receita atual conta como 100% de crescimento.
	var growth float64
	if previousRevenue > 0 {
		growth = (monthlyRevenue - previousRevenue) / previousRevenue * 100
	} else if monthlyRevenue > 0 {
		growth = 100
	}

	return domain.FinanceSignals{
		MonthlyRevenue:       monthlyRevenue,
		PreviousMonthRevenue: previousRevenue,
		RevenueGrowth:        growth,
		OverdueAmount:        overdueAmount,
		OverdueCount:         overdueCount,
		OutstandingAmount:    outstanding,
		RecentInvoiceCount:   recentCount,
		AvgInvoiceValue:      avgValue,
		StatusBreakdown:      statusBreakdown,
	}, nil
}
