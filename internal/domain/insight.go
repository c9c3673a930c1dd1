package domain

import "time"

// InsightType classifica o achado detectado pelas regras de correlação
type InsightType string

const (
	InsightTypeOpportunity InsightType = "opportunity"
	InsightTypeRisk        InsightType = "risk"
	InsightTypePattern     InsightType = "pattern"
	InsightTypeAnomaly     InsightType = "anomaly"
	InsightTypeMilestone   InsightType = "milestone"
	InsightTypeTrend       InsightType = "trend"
	InsightTypeInsight     InsightType = "insight"
)

// Urgency indica quando o insight deve ser apresentado ao usuário.
// É uma prioridade grosseira de agendamento, distinta da prioridade numérica.
type Urgency string

const (
	UrgencyImmediate    Urgency = "immediate"
	UrgencySoon         Urgency = "soon"
	UrgencyWhenRelevant Urgency = "when_relevant"
)

// Rank converte a urgência em um valor ordenável (maior = mais urgente)
func (u Urgency) Rank() int {
	switch u {
	case UrgencyImmediate:
		return 3
	case UrgencySoon:
		return 2
	case UrgencyWhenRelevant:
		return 1
	default:
		return 0
	}
}

// RelatedEntity referencia um registro de domínio ligado ao insight
type RelatedEntity struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Insight representa uma oportunidade, risco, padrão ou tendência detectada
// sobre um snapshot de sinais. Insights são recalculados a cada computação e
// não carregam identidade entre snapshots: o ID é a chave estável da regra
// que o produziu, o que mantém a saída determinística para o mesmo snapshot.
type Insight struct {
	ID              string          `json:"id"`
	Type            InsightType     `json:"type"`
	Urgency         Urgency         `json:"urgency"`
	Domains         []string        `json:"domains"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Impact          string          `json:"impact"`
	SuggestedAction string          `json:"suggested_action"`
	OfferHelp       string          `json:"offer_help"`
	Confidence      float64         `json:"confidence"`
	Priority        int             `json:"priority"`
	RelatedEntities []RelatedEntity `json:"related_entities,omitempty"`
	DetectedAt      time.Time       `json:"detected_at"`
	ExpiresAt       *time.Time      `json:"expires_at,omitempty"`
}
