package domain

// HealthTrend classifica a tendência geral do negócio
type HealthTrend string

const (
	TrendImproving HealthTrend = "improving"
	TrendStable    HealthTrend = "stable"
	TrendDeclining HealthTrend = "declining"
)

// Momentum classifica o ritmo de curto prazo do negócio
type Momentum string

const (
	MomentumGaining Momentum = "gaining"
	MomentumSteady  Momentum = "steady"
	MomentumLosing  Momentum = "losing"
)

// HealthDimensions são os cinco sub-escores nomeados, todos em [0,100]
type HealthDimensions struct {
	Revenue    float64 `json:"revenue"`
	Pipeline   float64 `json:"pipeline"`
	Operations float64 `json:"operations"`
	Marketing  float64 `json:"marketing"`
	CashFlow   float64 `json:"cash_flow"`
}

// HealthScore é o resultado do cálculo de saúde sobre um snapshot.
// Overall é a combinação linear de pesos fixos das cinco dimensões.
type HealthScore struct {
	Overall    float64          `json:"overall"`
	Trend      HealthTrend      `json:"trend"`
	Momentum   Momentum         `json:"momentum"`
	Dimensions HealthDimensions `json:"dimensions"`
	Strengths  []string         `json:"strengths"`
	Risks      []string         `json:"risks"`
}

// NeutralHealthScore retorna o escore seguro usado quando a computação falha:
// todas as dimensões no ponto médio, sem forças nem riscos.
func NeutralHealthScore() *HealthScore {
	return &HealthScore{
		Overall:  50,
		Trend:    TrendStable,
		Momentum: MomentumSteady,
		Dimensions: HealthDimensions{
			Revenue:    50,
			Pipeline:   50,
			Operations: 50,
			Marketing:  50,
			CashFlow:   50,
		},
		Strengths: []string{},
		Risks:     []string{},
	}
}
