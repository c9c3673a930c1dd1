package collecting

import (
	"fmt"
	"time"

	"github.com/vfg2006/business-pulse-api/infrastructure/repository"
	"github.com/vfg2006/business-pulse-api/internal/config"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

// PipelineCollector agrega os sinais do funil de vendas de um workspace
type PipelineCollector interface {
	Collect(workspaceID string, reference time.Time) (domain.PipelineSignals, error)
}

type pipelineCollector struct {
	cfg      config.Insights
	leadRepo repository.LeadRepository
}

func NewPipelineCollector(cfg config.Insights, leadRepo repository.LeadRepository) PipelineCollector {
	return &pipelineCollector{
		cfg:      cfg,
		leadRepo: leadRepo,
	}
}

// Collect monta os sinais do funil. Qualquer falha de consulta retorna a
// estrutura zerada junto com o erro, para que o chamador registre o aviso e
// siga com os demais domínios.
func (c *pipelineCollector) Collect(workspaceID string, reference time.Time) (domain.PipelineSignals, error) {
	var signals domain.PipelineSignals

	stageBreakdown, err := c.leadRepo.CountByStage(workspaceID)
	if err != nil {
		return domain.PipelineSignals{}, fmt.Errorf("erro ao buscar leads por estágio: %w", err)
	}

	temperature, err := c.leadRepo.CountByTemperature(workspaceID)
	if err != nil {
		return domain.PipelineSignals{}, fmt.Errorf("erro ao buscar leads por temperatura: %w", err)
	}

	newLeads, err := c.leadRepo.CountCreatedSince(workspaceID, reference.AddDate(0, 0, -7))
	if err != nil {
		return domain.PipelineSignals{}, fmt.Errorf("erro ao buscar leads recentes: %w", err)
	}

	staleCount, staleValue, err := c.leadRepo.StaleSummary(workspaceID, reference.AddDate(0, 0, -c.cfg.StaleLeadDays))
	if err != nil {
		return domain.PipelineSignals{}, fmt.Errorf("erro ao buscar leads parados: %w", err)
	}

	pipelineValue, err := c.leadRepo.SumOpenValue(workspaceID)
	if err != nil {
		return domain.PipelineSignals{}, fmt.Errorf("erro ao somar o valor do funil: %w", err)
	}

	contacts, err := c.leadRepo.CountContacts(workspaceID)
	if err != nil {
		return domain.PipelineSignals{}, fmt.Errorf("erro ao contar contatos: %w", err)
	}

	for _, count := range stageBreakdown {
		signals.TotalLeads += count
	}
	signals.LateStageLeads = stageBreakdown["negotiation"] + stageBreakdown["proposal"]

	signals.TotalContacts = contacts
	signals.NewLeadsThisWeek = newLeads
	signals.HotLeads = temperature["hot"]
	signals.ColdLeads = temperature["cold"]
	signals.StaleLeads = staleCount
	signals.StaleLeadValue = staleValue
	signals.PipelineValue = pipelineValue
	signals.StageBreakdown = stageBreakdown

	return signals, nil
}
