package domain

import "time"

// IntelligenceResult é o resultado combinado de uma computação completa:
// snapshot de sinais, correlações ranqueadas, escore de saúde e o resumo
// textual pronto para o widget ou para a montagem de prompt.
type IntelligenceResult struct {
	WorkspaceID string          `json:"workspace_id"`
	Signals     *SignalSnapshot `json:"signals"`
	Insights    []*Insight      `json:"correlations"`
	Health      *HealthScore    `json:"health_score"`
	Summary     string          `json:"summary"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// InsightsResponse é a resposta da operação de insights ranqueados
type InsightsResponse struct {
	Insights    []*Insight `json:"insights"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// Workspace é a fronteira de isolamento de sinais, escores e cache
type Workspace struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
