package collecting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/business-pulse-api/infrastructure/repository"
	"github.com/vfg2006/business-pulse-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestOperationsCollector_Collect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	weekStart := collectEpoch.AddDate(0, 0, -7)

	tests := []struct {
		name           string
		open           int
		completedSince int
		expectedRate   float64
	}{
		{
			name:           "Taxa de conclusão sobre o total em jogo na semana",
			open:           4,
			completedSince: 6,
			expectedRate:   60,
		},
		{
			name:           "Sem tarefas em jogo, taxa zero",
			open:           0,
			completedSince: 0,
			expectedRate:   0,
		},
		{
			name:           "Tudo concluído na semana",
			open:           0,
			completedSince: 5,
			expectedRate:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taskRepo := mocks.NewMockTaskRepository(ctrl)
			agentRepo := mocks.NewMockAgentRepository(ctrl)

			taskRepo.EXPECT().Summary("ws-001", collectEpoch, weekStart).Return(&repository.TaskAggregates{
				Open:           tt.open,
				Overdue:        2,
				CompletedSince: tt.completedSince,
			}, nil)
			taskRepo.EXPECT().StatusBreakdown("ws-001").Return(map[string]int{"open": tt.open}, nil)
			agentRepo.EXPECT().CountActive("ws-001").Return(1, nil)
			agentRepo.EXPECT().CountRunsSince("ws-001", weekStart).Return(3, nil)

			collector := NewOperationsCollector(taskRepo, agentRepo)

			signals, err := collector.Collect("ws-001", collectEpoch)

			assert.NoError(t, err)
			assert.InDelta(t, tt.expectedRate, signals.CompletionRate, 0.0001)
			assert.Equal(t, tt.open, signals.OpenTasks)
			assert.Equal(t, 2, signals.OverdueTasks)
			assert.Equal(t, tt.completedSince, signals.CompletedThisWeek)
			assert.Equal(t, 1, signals.ActiveAgents)
			assert.Equal(t, 3, signals.AutomationRunsThisWeek)
		})
	}
}
