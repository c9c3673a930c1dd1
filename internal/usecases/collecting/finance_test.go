package collecting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/business-pulse-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestFinanceCollector_Collect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monthStart := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	previousMonthStart := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		monthlyRevenue  float64
		previousRevenue float64
		expectedGrowth  float64
	}{
		{
			name:            "Crescimento percentual mês contra mês",
			monthlyRevenue:  22400,
			previousRevenue: 20000,
			expectedGrowth:  12,
		},
		{
			name:            "Queda de receita gera crescimento negativo",
			monthlyRevenue:  15000,
			previousRevenue: 20000,
			expectedGrowth:  -25,
		},
		{
			name:            "Sem base de comparação, receita atual conta como 100%",
			monthlyRevenue:  5000,
			previousRevenue: 0,
			expectedGrowth:  100,
		},
		{
			name:            "Sem receita nos dois meses, crescimento zero",
			monthlyRevenue:  0,
			previousRevenue: 0,
			expectedGrowth:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

			invoiceRepo.EXPECT().SumPaidBetween("ws-001", monthStart, collectEpoch).
				Return(tt.monthlyRevenue, nil)
			invoiceRepo.EXPECT().SumPaidBetween("ws-001", previousMonthStart, monthStart).
				Return(tt.previousRevenue, nil)
			invoiceRepo.EXPECT().OverdueSummary("ws-001", collectEpoch).Return(2, 6000.0, nil)
			invoiceRepo.EXPECT().OutstandingAmount("ws-001").Return(3500.0, nil)
			invoiceRepo.EXPECT().CountPaidSince("ws-001", collectEpoch.AddDate(0, 0, -30)).Return(4, nil)
			invoiceRepo.EXPECT().AvgPaidAmountSince("ws-001", collectEpoch.AddDate(0, 0, -90)).Return(1800.0, nil)
			invoiceRepo.EXPECT().StatusBreakdown("ws-001").Return(map[string]int{"paid": 4, "overdue": 2}, nil)

			collector := NewFinanceCollector(invoiceRepo)

			signals, err := collector.Collect("ws-001", collectEpoch)

			assert.NoError(t, err)
			assert.InDelta(t, tt.expectedGrowth, signals.RevenueGrowth, 0.0001)
			assert.Equal(t, tt.monthlyRevenue, signals.MonthlyRevenue)
			assert.Equal(t, tt.previousRevenue, signals.PreviousMonthRevenue)
			assert.Equal(t, 6000.0, signals.OverdueAmount)
			assert.Equal(t, 2, signals.OverdueCount)
			assert.Equal(t, 3500.0, signals.OutstandingAmount)
			assert.Equal(t, 4, signals.RecentInvoiceCount)
			assert.Equal(t, 1800.0, signals.AvgInvoiceValue)
		})
	}
}
