package scheduler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/business-pulse-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-pulse-api/internal/domain"
	intelligencemocks "github.com/vfg2006/business-pulse-api/internal/usecases/intelligence/mocks"
	"go.uber.org/mock/gomock"
)

func TestIntelligenceRefreshService_refreshWorkspaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newService := func(workspaceRepo *mocks.MockWorkspaceRepository, insighter *intelligencemocks.MockInsighter) *IntelligenceRefreshService {
		return &IntelligenceRefreshService{
			config: IntelligenceRefreshConfig{
				CronSchedule:      "*/20 * * * *",
				MaxConcurrentJobs: 2,
				RefreshEnabled:    true,
			},
			workspaceRepo: workspaceRepo,
			insighter:     insighter,
		}
	}

	t.Run("Invalida e recomputa cada workspace ativo", func(t *testing.T) {
		workspaceRepo := mocks.NewMockWorkspaceRepository(ctrl)
		insighter := intelligencemocks.NewMockInsighter(ctrl)

		workspaceRepo.EXPECT().ListActiveIDs().Return([]string{"ws-001", "ws-002"}, nil)

		for _, workspaceID := range []string{"ws-001", "ws-002"} {
			insighter.EXPECT().Invalidate(workspaceID)
			insighter.EXPECT().GetBusinessIntelligence(workspaceID).
				Return(&domain.IntelligenceResult{WorkspaceID: workspaceID}, nil)
		}

		service := newService(workspaceRepo, insighter)
		service.refreshWorkspaces()

		status := service.GetStatus()
		assert.Equal(t, false, status["refresh_running"])
		assert.NotZero(t, service.lastRefreshStartedAt)
		assert.NotZero(t, service.lastRefreshEndedAt)
	})

	t.Run("Falha em um workspace não interrompe os demais", func(t *testing.T) {
		workspaceRepo := mocks.NewMockWorkspaceRepository(ctrl)
		insighter := intelligencemocks.NewMockInsighter(ctrl)

		workspaceRepo.EXPECT().ListActiveIDs().Return([]string{"ws-001", "ws-002"}, nil)

		insighter.EXPECT().Invalidate("ws-001")
		insighter.EXPECT().GetBusinessIntelligence("ws-001").
			Return(nil, errors.New("falha ao recomputar"))

		insighter.EXPECT().Invalidate("ws-002")
		insighter.EXPECT().GetBusinessIntelligence("ws-002").
			Return(&domain.IntelligenceResult{WorkspaceID: "ws-002"}, nil)

		service := newService(workspaceRepo, insighter)
		service.refreshWorkspaces()
	})

	t.Run("Erro ao listar workspaces encerra o ciclo sem recomputar", func(t *testing.T) {
		workspaceRepo := mocks.NewMockWorkspaceRepository(ctrl)
		insighter := intelligencemocks.NewMockInsighter(ctrl)

		workspaceRepo.EXPECT().ListActiveIDs().
			Return(nil, errors.New("conexão recusada"))

		service := newService(workspaceRepo, insighter)
		service.refreshWorkspaces()
	})

	t.Run("Nenhum workspace ativo encerra o ciclo sem recomputar", func(t *testing.T) {
		workspaceRepo := mocks.NewMockWorkspaceRepository(ctrl)
		insighter := intelligencemocks.NewMockInsighter(ctrl)

		workspaceRepo.EXPECT().ListActiveIDs().Return([]string{}, nil)

		service := newService(workspaceRepo, insighter)
		service.refreshWorkspaces()
	})
}

func TestIntelligenceRefreshService_GetStatus(t *testing.T) {
	service := &IntelligenceRefreshService{
		config: IntelligenceRefreshConfig{
			CronSchedule:      "*/20 * * * *",
			MaxConcurrentJobs: 4,
			RefreshEnabled:    true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, false, status["refresh_running"])
	assert.Equal(t, "*/20 * * * *", status["refresh_cron"])
	assert.Equal(t, true, status["refresh_enabled"])
}
