package correlating

import (
	"fmt"

	"github.com/vfg2006/business-pulse-api/internal/config"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

// overdueInvoicesRule consolida o risco de inadimplência em uma única regra.
// A urgência vira "immediate" acima do corte configurado; a prioridade sobe
// com o valor absoluto e com o impacto sobre a receita do mês.
func overdueInvoicesRule() Rule {
	return Rule{
		Key:     "finance_overdue_invoices",
		Name:    "Faturas vencidas",
		Domains: []string{domain.DomainFinance},
		Evaluate: func(snapshot *domain.SignalSnapshot, cfg config.Insights) []*domain.Insight {
			finance := snapshot.Finance
			if finance.OverdueAmount <= 0 {
				return nil
			}

			urgency := domain.UrgencySoon
			if finance.OverdueAmount >= cfg.OverdueImmediateAmount {
				urgency = domain.UrgencyImmediate
			}

			var impactPercent float64
			if finance.MonthlyRevenue > 0 {
				impactPercent = finance.OverdueAmount / finance.MonthlyRevenue * 100
			}

			priority := 5
			switch {
			case finance.OverdueAmount >= cfg.OverdueImmediateAmount:
				priority = 9
			case impactPercent >= cfg.OverdueImpactPercent:
				priority = 7
			}

			impact := fmt.Sprintf("R$ %.2f em recebimentos atrasados", finance.OverdueAmount)
			if impactPercent > 0 {
				impact = fmt.Sprintf("R$ %.2f atrasados, o equivalente a %.0f%% da receita do mês", finance.OverdueAmount, impactPercent)
			}

			return []*domain.Insight{{
				ID:      "finance_overdue_invoices",
				Type:    domain.InsightTypeRisk,
				Urgency: urgency,
				Domains: []string{domain.DomainFinance},
				Title:   fmt.Sprintf("%d faturas vencidas somando R$ %.2f", finance.OverdueCount, finance.OverdueAmount),
				Description: fmt.Sprintf(
					"Há %d faturas vencidas sem pagamento, totalizando R$ %.2f.",
					finance.OverdueCount, finance.OverdueAmount,
				),
				Impact:          impact,
				SuggestedAction: "Enviar lembretes de cobrança para as faturas vencidas",
				OfferHelp:       "Posso preparar as mensagens de cobrança para cada cliente em atraso?",
				Confidence:      0.95,
				Priority:        priority,
				DetectedAt:      snapshot.GeneratedAt,
			}}
		},
	}
}
