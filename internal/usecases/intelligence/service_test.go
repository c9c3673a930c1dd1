package intelligence

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/business-pulse-api/infrastructure/cache"
	"github.com/vfg2006/business-pulse-api/internal/config"
	"github.com/vfg2006/business-pulse-api/internal/domain"
	"github.com/vfg2006/business-pulse-api/internal/usecases/collecting/mocks"
	"github.com/vfg2006/business-pulse-api/internal/usecases/correlating"
	"github.com/vfg2006/business-pulse-api/internal/usecases/scoring"
	"go.uber.org/mock/gomock"
)

func testSnapshot(workspaceID string) *domain.SignalSnapshot {
	return &domain.SignalSnapshot{
		WorkspaceID: workspaceID,
		GeneratedAt: time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC),
		Pipeline: domain.PipelineSignals{
			TotalLeads:       10,
			NewLeadsThisWeek: 3,
			HotLeads:         4,
			StaleLeads:       5,
			StaleLeadValue:   12000,
		},
		Finance: domain.FinanceSignals{
			MonthlyRevenue:     20000,
			OverdueAmount:      6000,
			OverdueCount:       2,
			RecentInvoiceCount: 1,
		},
	}
}

func newTestService(t *testing.T, collector *mocks.MockCollector) Insighter {
	t.Helper()

	cfg := config.DefaultInsights()

	return NewService(
		cfg,
		collector,
		correlating.NewEngine(cfg),
		scoring.NewService(),
		cache.NewMemory(),
	)
}

func TestService_GetBusinessIntelligence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Leituras repetidas dentro do TTL disparam uma única coleta", func(t *testing.T) {
		collector := mocks.NewMockCollector(ctrl)
		collector.EXPECT().Snapshot("ws-001").Return(testSnapshot("ws-001"), nil).Times(1)

		service := newTestService(t, collector)

		first, err := service.GetBusinessIntelligence("ws-001")
		assert.NoError(t, err)

		second, err := service.GetBusinessIntelligence("ws-001")
		assert.NoError(t, err)

		assert.Same(t, first, second)
	})

	t.Run("Resultado carrega insights ranqueados e score de saúde", func(t *testing.T) {
		collector := mocks.NewMockCollector(ctrl)
		collector.EXPECT().Snapshot("ws-001").Return(testSnapshot("ws-001"), nil)

		service := newTestService(t, collector)

		result, err := service.GetBusinessIntelligence("ws-001")
		assert.NoError(t, err)
		assert.Equal(t, "ws-001", result.WorkspaceID)
		assert.NotNil(t, result.Signals)
		assert.NotNil(t, result.Health)
		assert.NotEmpty(t, result.Insights)
		assert.NotEmpty(t, result.Summary)
		assert.Equal(t, result.Signals.GeneratedAt, result.GeneratedAt)

		// O snapshot de teste tem faturas vencidas e leads parados: os dois
		// insights precisam estar presentes e em ordem de urgência
		assert.Equal(t, "finance_overdue_invoices", result.Insights[0].ID)
		for i := 0; i < len(result.Insights)-1; i++ {
			assert.GreaterOrEqual(t,
				result.Insights[i].Urgency.Rank(),
				result.Insights[i+1].Urgency.Rank())
		}
	})

	t.Run("Invalidate força a recoleta na próxima leitura", func(t *testing.T) {
		collector := mocks.NewMockCollector(ctrl)
		collector.EXPECT().Snapshot("ws-001").Return(testSnapshot("ws-001"), nil).Times(2)

		service := newTestService(t, collector)

		_, err := service.GetBusinessIntelligence("ws-001")
		assert.NoError(t, err)

		service.Invalidate("ws-001")

		_, err = service.GetBusinessIntelligence("ws-001")
		assert.NoError(t, err)
	})

	t.Run("Workspaces diferentes não compartilham entrada de cache", func(t *testing.T) {
		collector := mocks.NewMockCollector(ctrl)
		collector.EXPECT().Snapshot("ws-001").Return(testSnapshot("ws-001"), nil).Times(1)
		collector.EXPECT().Snapshot("ws-002").Return(testSnapshot("ws-002"), nil).Times(1)

		service := newTestService(t, collector)

		first, err := service.GetBusinessIntelligence("ws-001")
		assert.NoError(t, err)

		second, err := service.GetBusinessIntelligence("ws-002")
		assert.NoError(t, err)

		assert.Equal(t, "ws-001", first.WorkspaceID)
		assert.Equal(t, "ws-002", second.WorkspaceID)
	})

	t.Run("Falha na coleta degrada para o resultado padrão seguro", func(t *testing.T) {
		collector := mocks.NewMockCollector(ctrl)
		collector.EXPECT().Snapshot("ws-001").
			Return(nil, errors.New("banco indisponível"))

		service := newTestService(t, collector)

		result, err := service.GetBusinessIntelligence("ws-001")
		assert.NoError(t, err)
		assert.Empty(t, result.Insights)
		assert.Equal(t, domain.NeutralHealthScore(), result.Health)
		assert.Nil(t, result.Signals)
	})
}

func TestService_GetInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := mocks.NewMockCollector(ctrl)
	collector.EXPECT().Snapshot("ws-001").Return(testSnapshot("ws-001"), nil).Times(1)

	service := newTestService(t, collector)

	full, err := service.GetBusinessIntelligence("ws-001")
	assert.NoError(t, err)

	insights, err := service.GetInsights("ws-001")
	assert.NoError(t, err)
	assert.Equal(t, full.Insights, insights.Insights)
	assert.Equal(t, full.GeneratedAt, insights.GeneratedAt)
}
