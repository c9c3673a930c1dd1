package correlating

import (
	"fmt"

	"github.com/vfg2006/business-pulse-api/internal/config"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

// taskBacklogRule alerta quando tarefas atrasadas acumulam além do limite
func taskBacklogRule() Rule {
	return Rule{
		Key:     "operations_task_backlog",
		Name:    "Tarefas atrasadas acumuladas",
		Domains: []string{domain.DomainOperations},
		Evaluate: func(snapshot *domain.SignalSnapshot, cfg config.Insights) []*domain.Insight {
			operations := snapshot.Operations
			if operations.OverdueTasks < cfg.TaskBacklogMin {
				return nil
			}

			return []*domain.Insight{{
				ID:      "operations_task_backlog",
				Type:    domain.InsightTypeRisk,
				Urgency: domain.UrgencySoon,
				Domains: []string{domain.DomainOperations},
				Title:   fmt.Sprintf("%d tarefas atrasadas", operations.OverdueTasks),
				Description: fmt.Sprintf(
					"Existem %d tarefas com prazo vencido entre as %d abertas. Backlog crescente costuma indicar sobrecarga ou prioridades mal distribuídas.",
					operations.OverdueTasks, operations.OpenTasks,
				),
				Impact:          "Compromissos atrasados afetam a experiência dos clientes e a previsibilidade do time",
				SuggestedAction: "Repriorizar as tarefas vencidas e redistribuir o que não for essencial",
				OfferHelp:       "Quer que eu liste as tarefas atrasadas por responsável?",
				Confidence:      0.85,
				Priority:        6,
				DetectedAt:      snapshot.GeneratedAt,
			}}
		},
	}
}

// automationOpportunityRule sugere automação quando há volume de leads e
// nenhum agente ativo trabalhando a base.
func automationOpportunityRule() Rule {
	return Rule{
		Key:     "operations_no_automation",
		Name:    "Volume de leads sem automação",
		Domains: []string{domain.DomainOperations, domain.DomainPipeline},
		Evaluate: func(snapshot *domain.SignalSnapshot, cfg config.Insights) []*domain.Insight {
			if snapshot.Operations.ActiveAgents > 0 {
				return nil
			}
			if snapshot.Pipeline.TotalLeads <= cfg.AutomationMinLeads {
				return nil
			}

			return []*domain.Insight{{
				ID:      "operations_no_automation",
				Type:    domain.InsightTypeOpportunity,
				Urgency: domain.UrgencyWhenRelevant,
				Domains: []string{domain.DomainOperations, domain.DomainPipeline},
				Title:   "Funil com volume para automação",
				Description: fmt.Sprintf(
					"O workspace tem %d leads no funil e nenhum agente de automação ativo. Parte do acompanhamento pode ser automatizada.",
					snapshot.Pipeline.TotalLeads,
				),
				Impact:          "Automação reduz o tempo de resposta e evita leads esquecidos",
				SuggestedAction: "Configurar um agente de follow-up automático para leads sem resposta",
				OfferHelp:       "Posso sugerir um fluxo de automação inicial para o funil?",
				Confidence:      0.7,
				Priority:        4,
				DetectedAt:      snapshot.GeneratedAt,
			}}
		},
	}
}
