package correlating

import (
	"fmt"
	"time"

	"github.com/vfg2006/business-pulse-api/internal/config"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

// stalePipelineRule detecta leads parados há mais tempo que a janela
// configurada. A prioridade sobe quando o valor em risco é alto.
func stalePipelineRule() Rule {
	return Rule{
		Key:     "pipeline_stale_leads",
		Name:    "Leads parados no funil",
		Domains: []string{domain.DomainPipeline},
		Evaluate: func(snapshot *domain.SignalSnapshot, cfg config.Insights) []*domain.Insight {
			pipeline := snapshot.Pipeline
			if pipeline.StaleLeads < cfg.StaleLeadMinCount {
				return nil
			}

			priority := 6
			if pipeline.StaleLeadValue > cfg.StaleLeadHighValue {
				priority = 8
			}

			return []*domain.Insight{{
				ID:      "pipeline_stale_leads",
				Type:    domain.InsightTypeOpportunity,
				Urgency: domain.UrgencySoon,
				Domains: []string{domain.DomainPipeline},
				Title:   fmt.Sprintf("%d leads sem contato há mais de %d dias", pipeline.StaleLeads, cfg.StaleLeadDays),
				Description: fmt.Sprintf(
					"Existem %d leads em estágios ativos do funil sem nenhuma interação registrada há mais de %d dias, somando R$ %.2f em valor potencial.",
					pipeline.StaleLeads, cfg.StaleLeadDays, pipeline.StaleLeadValue,
				),
				Impact:          fmt.Sprintf("R$ %.2f em negócios esfriando no funil", pipeline.StaleLeadValue),
				SuggestedAction: "Priorizar uma rodada de follow-up com esses leads nesta semana",
				OfferHelp:       "Quer que eu monte uma lista de retomada de contato ordenada por valor?",
				Confidence:      0.85,
				Priority:        priority,
				DetectedAt:      snapshot.GeneratedAt,
			}}
		},
	}
}

// dealsReadyToCloseRule sinaliza leads em estágios finais do funil. O
// insight vale apenas para o dia do snapshot.
func dealsReadyToCloseRule() Rule {
	return Rule{
		Key:     "pipeline_deals_ready",
		Name:    "Negócios prontos para fechar",
		Domains: []string{domain.DomainPipeline},
		Evaluate: func(snapshot *domain.SignalSnapshot, cfg config.Insights) []*domain.Insight {
			pipeline := snapshot.Pipeline
			if pipeline.LateStageLeads == 0 {
				return nil
			}

			endOfDay := endOfDay(snapshot.GeneratedAt)

			return []*domain.Insight{{
				ID:      "pipeline_deals_ready",
				Type:    domain.InsightTypeOpportunity,
				Urgency: domain.UrgencyImmediate,
				Domains: []string{domain.DomainPipeline},
				Title:   fmt.Sprintf("%d negócios em fase de fechamento", pipeline.LateStageLeads),
				Description: fmt.Sprintf(
					"Há %d leads em proposta ou negociação aguardando um próximo passo.",
					pipeline.LateStageLeads,
				),
				Impact:          "Negócios em fase final são os de maior chance de conversão imediata",
				SuggestedAction: "Revisar cada proposta pendente e agendar o contato de fechamento hoje",
				OfferHelp:       "Posso resumir o status de cada negociação em andamento?",
				Confidence:      0.9,
				Priority:        9,
				DetectedAt:      snapshot.GeneratedAt,
				ExpiresAt:       &endOfDay,
			}}
		},
	}
}

// pipelineReplenishmentRule alerta quando o funil tem volume mas parou de
// receber leads novos.
func pipelineReplenishmentRule() Rule {
	return Rule{
		Key:     "pipeline_replenishment",
		Name:    "Funil sem reposição",
		Domains: []string{domain.DomainPipeline},
		Evaluate: func(snapshot *domain.SignalSnapshot, cfg config.Insights) []*domain.Insight {
			pipeline := snapshot.Pipeline
			if pipeline.TotalLeads <= cfg.ReplenishMinLeads || pipeline.NewLeadsThisWeek > 0 {
				return nil
			}

			return []*domain.Insight{{
				ID:      "pipeline_replenishment",
				Type:    domain.InsightTypeRisk,
				Urgency: domain.UrgencySoon,
				Domains: []string{domain.DomainPipeline, domain.DomainMarketing},
				Title:   "Nenhum lead novo nos últimos 7 dias",
				Description: fmt.Sprintf(
					"O funil tem %d leads ativos, mas nenhum lead novo entrou na última semana. Sem reposição, o funil seca nas próximas semanas.",
					pipeline.TotalLeads,
				),
				Impact:          "A receita futura depende da entrada constante de novos leads",
				SuggestedAction: "Ativar uma campanha de captação ou revisar os canais de aquisição",
				OfferHelp:       "Quer que eu sugira uma campanha de captação com base no histórico?",
				Confidence:      0.8,
				Priority:        7,
				DetectedAt:      snapshot.GeneratedAt,
			}}
		},
	}
}

// endOfDay retorna o último instante do dia do timestamp, em UTC
func endOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
}
