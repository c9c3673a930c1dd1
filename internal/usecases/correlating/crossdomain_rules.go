package correlating

import (
	"fmt"

	"github.com/vfg2006/business-pulse-api/internal/config"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

// pipelineRevenueGapRule cruza funil e faturamento: muitos leads quentes e
// poucas faturas recentes indicam que o interesse não está virando receita.
func pipelineRevenueGapRule() Rule {
	return Rule{
		Key:     "crossdomain_pipeline_revenue_gap",
		Name:    "Descompasso entre funil e receita",
		Domains: []string{domain.DomainPipeline, domain.DomainFinance},
		Evaluate: func(snapshot *domain.SignalSnapshot, cfg config.Insights) []*domain.Insight {
			hotLeads := snapshot.Pipeline.HotLeads
			recentInvoices := snapshot.Finance.RecentInvoiceCount

			if hotLeads == 0 || float64(recentInvoices) >= float64(hotLeads)/2.0 {
				return nil
			}

			return []*domain.Insight{{
				ID:      "crossdomain_pipeline_revenue_gap",
				Type:    domain.InsightTypePattern,
				Urgency: domain.UrgencySoon,
				Domains: []string{domain.DomainPipeline, domain.DomainFinance},
				Title:   "Leads quentes não estão virando faturamento",
				Description: fmt.Sprintf(
					"O funil tem %d leads quentes, mas apenas %d faturas foram pagas nos últimos 30 dias. O interesse existe; a conversão em receita está travando.",
					hotLeads, recentInvoices,
				),
				Impact:          "Demanda aquecida sem conversão é receita deixada na mesa",
				SuggestedAction: "Investigar onde os leads quentes travam entre a negociação e o pagamento",
				OfferHelp:       "Quer que eu compare o tempo médio de fechamento dos últimos negócios ganhos?",
				Confidence:      0.7,
				Priority:        7,
				DetectedAt:      snapshot.GeneratedAt,
			}}
		},
	}
}
