package intelligence

import (
	"fmt"
	"strings"

	"github.com/vfg2006/business-pulse-api/internal/domain"
)

// urgencyMarker retorna o marcador textual exibido antes de cada insight
func urgencyMarker(urgency domain.Urgency) string {
	switch urgency {
	case domain.UrgencyImmediate:
		return "[AGORA]"
	case domain.UrgencySoon:
		return "[EM BREVE]"
	default:
		return "[QUANDO PUDER]"
	}
}

// Summarize monta o bloco de texto compacto consumido pelo widget do painel
// e pela camada de montagem de prompts. A lista chega ranqueada e é rendida
// na ordem recebida, sem reordenar nem refiltrar.
func Summarize(insights []*domain.Insight, health *domain.HealthScore) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Saúde do negócio: %.0f/100 (%s, momentum %s)\n", health.Overall, health.Trend, health.Momentum))

	if len(health.Strengths) > 0 {
		b.WriteString("Pontos fortes: " + strings.Join(health.Strengths, "; ") + "\n")
	}
	if len(health.Risks) > 0 {
		b.WriteString("Pontos de atenção: " + strings.Join(health.Risks, "; ") + "\n")
	}

	if len(insights) == 0 {
		b.WriteString("\nNenhum insight relevante no momento.\n")
		return b.String()
	}

	b.WriteString("\nInsights:\n")
	for _, insight := range insights {
		b.WriteString(fmt.Sprintf("%s %s\n", urgencyMarker(insight.Urgency), insight.Title))
		b.WriteString("  " + insight.Description + "\n")
		if insight.OfferHelp != "" {
			b.WriteString("  " + insight.OfferHelp + "\n")
		}
	}

	return b.String()
}
