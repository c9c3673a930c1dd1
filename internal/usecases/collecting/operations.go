package collecting

import (
	"fmt"
	"time"

	"github.com/vfg2006/business-pulse-api/infrastructure/repository"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

// OperationsCollector agrega os sinais operacionais de um workspace
type OperationsCollector interface {
	Collect(workspaceID string, reference time.Time) (domain.OperationsSignals, error)
}

type operationsCollector struct {
	taskRepo  repository.TaskRepository
	agentRepo repository.AgentRepository
}

func NewOperationsCollector(taskRepo repository.TaskRepository, agentRepo repository.AgentRepository) OperationsCollector {
	return &operationsCollector{
		taskRepo:  taskRepo,
		agentRepo: agentRepo,
	}
}

func (c *operationsCollector) Collect(workspaceID string, reference time.Time) (domain.OperationsSignals, error) {
	weekStart := reference.AddDate(0, 0, -7)

	tasks, err := c.taskRepo.Summary(workspaceID, reference, weekStart)
	if err != nil {
		return domain.OperationsSignals{}, fmt.Errorf("erro ao agregar tarefas: %w", err)
	}

	statusBreakdown, err := c.taskRepo.StatusBreakdown(workspaceID)
	if err != nil {
		return domain.OperationsSignals{}, fmt.Errorf("erro ao buscar tarefas por status: %w", err)
	}

	activeAgents, err := c.agentRepo.CountActive(workspaceID)
	if err != nil {
		return domain.OperationsSignals{}, fmt.Errorf("erro ao contar agentes ativos: %w", err)
	}

	automationRuns, err := c.agentRepo.CountRunsSince(workspaceID, weekStart)
	if err != nil {
		return domain.OperationsSignals{}, fmt.Errorf("erro ao contar execuções de automação: %w", err)
	}

	// Taxa de conclusão da semana sobre o total que estava em jogo
	var completionRate float64
	if total := tasks.Open + tasks.CompletedSince; total > 0 {
		completionRate = float64(tasks.CompletedSince) / float64(total) * 100
	}

	return domain.OperationsSignals{
		OpenTasks:              tasks.Open,
		OverdueTasks:           tasks.Overdue,
		CompletedThisWeek:      tasks.CompletedSince,
		CompletionRate:         completionRate,
		ActiveAgents:           activeAgents,
		AutomationRunsThisWeek: automationRuns,
		StatusBreakdown:        statusBreakdown,
	}, nil
}
