package correlating

import (
	"sort"

	"github.com/vfg2006/business-pulse-api/internal/config"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

// Rule é uma regra de detecção: uma função pura que avalia o snapshot e
// emite zero ou mais insights. A chave identifica a regra de forma estável
// e prefixa os IDs dos insights emitidos.
type Rule struct {
	Key      string
	Name     string
	Domains  []string
	Evaluate func(snapshot *domain.SignalSnapshot, cfg config.Insights) []*domain.Insight
}

// Engine avalia o registro de regras na ordem de cadastro. A ordem importa:
// é o critério final de desempate do ranqueamento.
type Engine struct {
	cfg   config.Insights
	rules []Rule
}

func NewEngine(cfg config.Insights) *Engine {
	return &Engine{
		cfg:   cfg,
		rules: defaultRules(),
	}
}

// NewEngineWithRules monta o motor com um registro customizado de regras.
// Usado nos testes para isolar regras específicas.
func NewEngineWithRules(cfg config.Insights, rules []Rule) *Engine {
	return &Engine{
		cfg:   cfg,
		rules: rules,
	}
}

// defaultRules retorna o registro completo, na ordem de avaliação
func defaultRules() []Rule {
	return []Rule{
		overdueInvoicesRule(),
		dealsReadyToCloseRule(),
		stalePipelineRule(),
		pipelineReplenishmentRule(),
		taskBacklogRule(),
		pipelineRevenueGapRule(),
		campaignUnderperformanceRule(),
		campaignOutperformanceRule(),
		automationOpportunityRule(),
	}
}

// Evaluate roda todas as regras sobre o snapshot e devolve o pool bruto de
// insights, na ordem de avaliação. Determinístico: o mesmo snapshot produz
// sempre a mesma lista.
func (e *Engine) Evaluate(snapshot *domain.SignalSnapshot) []*domain.Insight {
	insights := make([]*domain.Insight, 0)

	for _, rule := range e.rules {
		insights = append(insights, rule.Evaluate(snapshot, e.cfg)...)
	}

	return insights
}

// Rank filtra por confiança mínima, ordena por urgência e prioridade e
// limita ao máximo configurado. O sort é estável: empates preservam a
// ordem de avaliação das regras.
func (e *Engine) Rank(insights []*domain.Insight) []*domain.Insight {
	ranked := make([]*domain.Insight, 0, len(insights))
	for _, insight := range insights {
		if insight.Confidence >= e.cfg.MinConfidence {
			ranked = append(ranked, insight)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Urgency.Rank() != ranked[j].Urgency.Rank() {
			return ranked[i].Urgency.Rank() > ranked[j].Urgency.Rank()
		}
		return ranked[i].Priority > ranked[j].Priority
	})

	if len(ranked) > e.cfg.MaxInsights {
		ranked = ranked[:e.cfg.MaxInsights]
	}

	return ranked
}
