package correlating

import (
	"fmt"

	"github.com/vfg2006/business-pulse-api/internal/config"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

// campaignUnderperformanceRule aponta campanhas recentes com taxa de
// abertura abaixo do piso, desde que a amostra seja relevante.
func campaignUnderperformanceRule() Rule {
	return Rule{
		Key:     "marketing_low_open_rate",
		Name:    "Campanhas com baixa abertura",
		Domains: []string{domain.DomainMarketing},
		Evaluate: func(snapshot *domain.SignalSnapshot, cfg config.Insights) []*domain.Insight {
			marketing := snapshot.Marketing
			if marketing.RecentCampaigns == 0 || marketing.TotalRecipients < cfg.CampaignMinRecipients {
				return nil
			}
			if marketing.AvgOpenRate >= cfg.CampaignLowOpenRate {
				return nil
			}

			return []*domain.Insight{{
				ID:      "marketing_low_open_rate",
				Type:    domain.InsightTypeOpportunity,
				Urgency: domain.UrgencyWhenRelevant,
				Domains: []string{domain.DomainMarketing},
				Title:   fmt.Sprintf("Taxa de abertura média em %.1f%%", marketing.AvgOpenRate),
				Description: fmt.Sprintf(
					"As %d campanhas dos últimos 30 dias tiveram abertura média de %.1f%%, abaixo do esperado de %.0f%%.",
					marketing.RecentCampaigns, marketing.AvgOpenRate, cfg.CampaignLowOpenRate,
				),
				Impact:          "Campanhas com baixa abertura desperdiçam a base de contatos",
				SuggestedAction: "Testar novos assuntos e horários de envio nas próximas campanhas",
				OfferHelp:       "Quer que eu sugira variações de assunto com base nas campanhas que performaram melhor?",
				Confidence:      0.75,
				Priority:        5,
				DetectedAt:      snapshot.GeneratedAt,
			}}
		},
	}
}

// campaignOutperformanceRule destaca campanhas com abertura acima do teto,
// sugerindo escalar o que já funciona.
func campaignOutperformanceRule() Rule {
	return Rule{
		Key:     "marketing_high_open_rate",
		Name:    "Campanhas com alta abertura",
		Domains: []string{domain.DomainMarketing},
		Evaluate: func(snapshot *domain.SignalSnapshot, cfg config.Insights) []*domain.Insight {
			marketing := snapshot.Marketing
			if marketing.RecentCampaigns == 0 || marketing.TotalRecipients < cfg.CampaignMinRecipients {
				return nil
			}
			if marketing.AvgOpenRate <= cfg.CampaignHighOpenRate {
				return nil
			}

			return []*domain.Insight{{
				ID:      "marketing_high_open_rate",
				Type:    domain.InsightTypeOpportunity,
				Urgency: domain.UrgencyWhenRelevant,
				Domains: []string{domain.DomainMarketing},
				Title:   fmt.Sprintf("Campanhas performando com %.1f%% de abertura", marketing.AvgOpenRate),
				Description: fmt.Sprintf(
					"As campanhas dos últimos 30 dias alcançaram abertura média de %.1f%%, bem acima da referência de %.0f%%.",
					marketing.AvgOpenRate, cfg.CampaignHighOpenRate,
				),
				Impact:          "O formato atual está validado e pode ser escalado",
				SuggestedAction: "Aumentar a frequência ou ampliar a base das campanhas com melhor resultado",
				OfferHelp:       "Posso identificar o que as campanhas de melhor resultado têm em comum?",
				Confidence:      0.8,
				Priority:        6,
				DetectedAt:      snapshot.GeneratedAt,
			}}
		},
	}
}
