package intelligence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

func TestSummarize(t *testing.T) {
	health := &domain.HealthScore{
		Overall:  62.4,
		Trend:    domain.TrendStable,
		Momentum: domain.MomentumSteady,
		Strengths: []string{
			"Operação em dia com as entregas",
		},
		Risks: []string{
			"Faturas vencidas aguardando pagamento",
			"Nenhum lead novo na última semana",
		},
	}

	t.Run("Cabeçalho com score arredondado, tendência e momentum", func(t *testing.T) {
		summary := Summarize(nil, health)

		assert.True(t, strings.HasPrefix(summary, "Saúde do negócio: 62/100 (stable, momentum steady)\n"))
		assert.Contains(t, summary, "Pontos fortes: Operação em dia com as entregas\n")
		assert.Contains(t, summary, "Pontos de atenção: Faturas vencidas aguardando pagamento; Nenhum lead novo na última semana\n")
	})

	t.Run("Sem insights exibe a mensagem neutra", func(t *testing.T) {
		summary := Summarize([]*domain.Insight{}, health)

		assert.Contains(t, summary, "Nenhum insight relevante no momento.")
		assert.NotContains(t, summary, "Insights:")
	})

	t.Run("Marcadores por urgência e ordem de chegada preservada", func(t *testing.T) {
		insights := []*domain.Insight{
			{
				Urgency:     domain.UrgencyImmediate,
				Title:       "Faturas vencidas somam R$ 6.000",
				Description: "Duas faturas passaram do vencimento.",
				OfferHelp:   "Quer que eu prepare as mensagens de cobrança?",
			},
			{
				Urgency:     domain.UrgencySoon,
				Title:       "5 leads parados há mais de 14 dias",
				Description: "Há R$ 12.000 em negócios sem movimentação.",
			},
			{
				Urgency:     domain.UrgencyWhenRelevant,
				Title:       "Nenhuma automação ativa",
				Description: "O volume de leads já justifica um agente.",
			},
		}

		summary := Summarize(insights, health)

		assert.Contains(t, summary, "[AGORA] Faturas vencidas somam R$ 6.000\n")
		assert.Contains(t, summary, "[EM BREVE] 5 leads parados há mais de 14 dias\n")
		assert.Contains(t, summary, "[QUANDO PUDER] Nenhuma automação ativa\n")
		assert.Contains(t, summary, "  Quer que eu prepare as mensagens de cobrança?\n")

		// A lista chega ranqueada: a saída mantém a mesma ordem
		first := strings.Index(summary, "[AGORA]")
		second := strings.Index(summary, "[EM BREVE]")
		third := strings.Index(summary, "[QUANDO PUDER]")
		assert.Less(t, first, second)
		assert.Less(t, second, third)
	})
}
