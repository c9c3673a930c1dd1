package collecting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/business-pulse-api/internal/domain"
	"github.com/vfg2006/business-pulse-api/internal/usecases/collecting/mocks"
	"go.uber.org/mock/gomock"
)

var collectEpoch = time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)

func TestService_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newCollectors := func() (*mocks.MockPipelineCollector, *mocks.MockMarketingCollector, *mocks.MockFinanceCollector, *mocks.MockOperationsCollector) {
		return mocks.NewMockPipelineCollector(ctrl),
			mocks.NewMockMarketingCollector(ctrl),
			mocks.NewMockFinanceCollector(ctrl),
			mocks.NewMockOperationsCollector(ctrl)
	}

	t.Run("Consolida os quatro domínios com a mesma época", func(t *testing.T) {
		pipeline, marketing, finance, operations := newCollectors()

		pipeline.EXPECT().Collect("ws-001", collectEpoch).
			Return(domain.PipelineSignals{TotalLeads: 8, NewLeadsThisWeek: 2}, nil)
		marketing.EXPECT().Collect("ws-001", collectEpoch).
			Return(domain.MarketingSignals{RecentCampaigns: 3, AvgOpenRate: 22}, nil)
		finance.EXPECT().Collect("ws-001", collectEpoch).
			Return(domain.FinanceSignals{MonthlyRevenue: 20000}, nil)
		operations.EXPECT().Collect("ws-001", collectEpoch).
			Return(domain.OperationsSignals{OpenTasks: 4, ActiveAgents: 1}, nil)

		service := NewService(pipeline, marketing, finance, operations).
			WithClock(func() time.Time { return collectEpoch })

		snapshot, err := service.Snapshot("ws-001")

		assert.NoError(t, err)
		assert.Equal(t, "ws-001", snapshot.WorkspaceID)
		assert.Equal(t, collectEpoch, snapshot.GeneratedAt)
		assert.Equal(t, 8, snapshot.Pipeline.TotalLeads)
		assert.Equal(t, 3, snapshot.Marketing.RecentCampaigns)
		assert.Equal(t, 20000.0, snapshot.Finance.MonthlyRevenue)
		assert.Equal(t, 1, snapshot.Operations.ActiveAgents)
	})

	t.Run("Falha em um domínio zera apenas aquele domínio", func(t *testing.T) {
		pipeline, marketing, finance, operations := newCollectors()

		pipeline.EXPECT().Collect("ws-001", collectEpoch).
			Return(domain.PipelineSignals{TotalLeads: 8}, nil)
		marketing.EXPECT().Collect("ws-001", collectEpoch).
			Return(domain.MarketingSignals{}, errors.New("banco indisponível"))
		finance.EXPECT().Collect("ws-001", collectEpoch).
			Return(domain.FinanceSignals{MonthlyRevenue: 20000}, nil)
		operations.EXPECT().Collect("ws-001", collectEpoch).
			Return(domain.OperationsSignals{OpenTasks: 4}, nil)

		service := NewService(pipeline, marketing, finance, operations).
			WithClock(func() time.Time { return collectEpoch })

		snapshot, err := service.Snapshot("ws-001")

		assert.NoError(t, err)
		assert.Equal(t, domain.MarketingSignals{}, snapshot.Marketing)
		assert.Equal(t, 8, snapshot.Pipeline.TotalLeads)
		assert.Equal(t, 20000.0, snapshot.Finance.MonthlyRevenue)
		assert.Equal(t, 4, snapshot.Operations.OpenTasks)
	})

	t.Run("A época do snapshot é normalizada para UTC", func(t *testing.T) {
		pipeline, marketing, finance, operations := newCollectors()

		saoPaulo := time.FixedZone("America/Sao_Paulo", -3*3600)
		local := time.Date(2025, 8, 15, 7, 0, 0, 0, saoPaulo)

		expected := local.UTC()
		pipeline.EXPECT().Collect("ws-001", expected).Return(domain.PipelineSignals{}, nil)
		marketing.EXPECT().Collect("ws-001", expected).Return(domain.MarketingSignals{}, nil)
		finance.EXPECT().Collect("ws-001", expected).Return(domain.FinanceSignals{}, nil)
		operations.EXPECT().Collect("ws-001", expected).Return(domain.OperationsSignals{}, nil)

		service := NewService(pipeline, marketing, finance, operations).
			WithClock(func() time.Time { return local })

		snapshot, err := service.Snapshot("ws-001")

		assert.NoError(t, err)
		assert.Equal(t, time.UTC, snapshot.GeneratedAt.Location())
	})
}
