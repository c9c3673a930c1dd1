package collecting

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/business-pulse-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-pulse-api/internal/config"
	"github.com/vfg2006/business-pulse-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestPipelineCollector_Collect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.DefaultInsights()

	t.Run("Deriva totais e janelas a partir dos agregados", func(t *testing.T) {
		leadRepo := mocks.NewMockLeadRepository(ctrl)

		weekStart := collectEpoch.AddDate(0, 0, -7)
		staleSince := collectEpoch.AddDate(0, 0, -cfg.StaleLeadDays)

		leadRepo.EXPECT().CountByStage("ws-001").Return(map[string]int{
			"new":         3,
			"qualified":   2,
			"proposal":    1,
			"negotiation": 2,
		}, nil)
		leadRepo.EXPECT().CountByTemperature("ws-001").Return(map[string]int{
			"hot":  4,
			"warm": 2,
			"cold": 2,
		}, nil)
		leadRepo.EXPECT().CountCreatedSince("ws-001", weekStart).Return(3, nil)
		leadRepo.EXPECT().StaleSummary("ws-001", staleSince).Return(5, 12000.0, nil)
		leadRepo.EXPECT().SumOpenValue("ws-001").Return(45000.0, nil)
		leadRepo.EXPECT().CountContacts("ws-001").Return(20, nil)

		collector := NewPipelineCollector(cfg, leadRepo)

		signals, err := collector.Collect("ws-001", collectEpoch)

		assert.NoError(t, err)
		assert.Equal(t, 8, signals.TotalLeads)
		assert.Equal(t, 3, signals.LateStageLeads)
		assert.Equal(t, 20, signals.TotalContacts)
		assert.Equal(t, 3, signals.NewLeadsThisWeek)
		assert.Equal(t, 4, signals.HotLeads)
		assert.Equal(t, 2, signals.ColdLeads)
		assert.Equal(t, 5, signals.StaleLeads)
		assert.Equal(t, 12000.0, signals.StaleLeadValue)
		assert.Equal(t, 45000.0, signals.PipelineValue)
	})

	t.Run("Falha de consulta retorna a estrutura zerada com o erro", func(t *testing.T) {
		leadRepo := mocks.NewMockLeadRepository(ctrl)

		leadRepo.EXPECT().CountByStage("ws-001").
			Return(nil, errors.New("conexão recusada"))

		collector := NewPipelineCollector(cfg, leadRepo)

		signals, err := collector.Collect("ws-001", collectEpoch)

		assert.Error(t, err)
		assert.Equal(t, domain.PipelineSignals{}, signals)
	})
}
