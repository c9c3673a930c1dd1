package correlating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/business-pulse-api/internal/config"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

var snapshotEpoch = time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)

// emptySnapshot retorna um snapshot sem nenhum sinal relevante
func emptySnapshot() *domain.SignalSnapshot {
	return &domain.SignalSnapshot{
		WorkspaceID: "ws-001",
		GeneratedAt: snapshotEpoch,
	}
}

func findInsight(insights []*domain.Insight, id string) *domain.Insight {
	for _, insight := range insights {
		if insight.ID == id {
			return insight
		}
	}
	return nil
}

func TestEngine_Evaluate(t *testing.T) {
	engine := NewEngine(config.DefaultInsights())

	tests := []struct {
		name     string
		snapshot func() *domain.SignalSnapshot
		validate func(t *testing.T, insights []*domain.Insight)
	}{
		{
			name:     "Snapshot vazio - nenhuma regra dispara",
			snapshot: emptySnapshot,
			validate: func(t *testing.T, insights []*domain.Insight) {
				assert.Empty(t, insights)
			},
		},
		{
			name: "Workspace sem leads e sem agentes - não sugere automação",
			snapshot: func() *domain.SignalSnapshot {
				s := emptySnapshot()
				s.Pipeline.TotalLeads = 0
				s.Pipeline.TotalContacts = 0
				s.Operations.ActiveAgents = 0
				return s
			},
			validate: func(t *testing.T, insights []*domain.Insight) {
				assert.Nil(t, findInsight(insights, "operations_no_automation"))
			},
		},
		{
			name: "Faturas vencidas com impacto de 30% da receita - risco com urgência soon",
			snapshot: func() *domain.SignalSnapshot {
				s := emptySnapshot()
				s.Finance.OverdueAmount = 6000
				s.Finance.OverdueCount = 2
				s.Finance.MonthlyRevenue = 20000
				return s
			},
			validate: func(t *testing.T, insights []*domain.Insight) {
				insight := findInsight(insights, "finance_overdue_invoices")
				assert.NotNil(t, insight)
				assert.Equal(t, domain.InsightTypeRisk, insight.Type)
				assert.Equal(t, domain.UrgencySoon, insight.Urgency)
				assert.Equal(t, 7, insight.Priority)
			},
		},
		{
			name: "Faturas vencidas acima do corte - urgência immediate e prioridade máxima da regra",
			snapshot: func() *domain.SignalSnapshot {
				s := emptySnapshot()
				s.Finance.OverdueAmount = 15000
				s.Finance.OverdueCount = 3
				s.Finance.MonthlyRevenue = 20000
				return s
			},
			validate: func(t *testing.T, insights []*domain.Insight) {
				insight := findInsight(insights, "finance_overdue_invoices")
				assert.NotNil(t, insight)
				assert.Equal(t, domain.UrgencyImmediate, insight.Urgency)
				assert.Equal(t, 9, insight.Priority)
			},
		},
		{
			name: "Leads parados com valor alto em risco - prioridade 8",
			snapshot: func() *domain.SignalSnapshot {
				s := emptySnapshot()
				s.Pipeline.TotalLeads = 12
				s.Pipeline.NewLeadsThisWeek = 1
				s.Pipeline.StaleLeads = 5
				s.Pipeline.StaleLeadValue = 12000
				return s
			},
			validate: func(t *testing.T, insights []*domain.Insight) {
				insight := findInsight(insights, "pipeline_stale_leads")
				assert.NotNil(t, insight)
				assert.Equal(t, domain.InsightTypeOpportunity, insight.Type)
				assert.Equal(t, 8, insight.Priority)
			},
		},
		{
			name: "Leads parados com valor baixo - prioridade 6",
			snapshot: func() *domain.SignalSnapshot {
				s := emptySnapshot()
				s.Pipeline.TotalLeads = 12
				s.Pipeline.NewLeadsThisWeek = 1
				s.Pipeline.StaleLeads = 3
				s.Pipeline.StaleLeadValue = 4500
				return s
			},
			validate: func(t *testing.T, insights []*domain.Insight) {
				insight := findInsight(insights, "pipeline_stale_leads")
				assert.NotNil(t, insight)
				assert.Equal(t, 6, insight.Priority)
			},
		},
		{
			name: "Leads quentes sem faturamento recente - padrão de descompasso",
			snapshot: func() *domain.SignalSnapshot {
				s := emptySnapshot()
				s.Pipeline.HotLeads = 4
				s.Finance.RecentInvoiceCount = 1
				return s
			},
			validate: func(t *testing.T, insights []*domain.Insight) {
				insight := findInsight(insights, "crossdomain_pipeline_revenue_gap")
				assert.NotNil(t, insight)
				assert.Equal(t, domain.InsightTypePattern, insight.Type)
				assert.Equal(t, []string{domain.DomainPipeline, domain.DomainFinance}, insight.Domains)
			},
		},
		{
			name: "Faturamento acompanha os leads quentes - sem descompasso",
			snapshot: func() *domain.SignalSnapshot {
				s := emptySnapshot()
				s.Pipeline.HotLeads = 4
				s.Finance.RecentInvoiceCount = 3
				return s
			},
			validate: func(t *testing.T, insights []*domain.Insight) {
				assert.Nil(t, findInsight(insights, "crossdomain_pipeline_revenue_gap"))
			},
		},
		{
			name: "Negócios em fase final - urgência immediate com expiração no fim do dia",
			snapshot: func() *domain.SignalSnapshot {
				s := emptySnapshot()
				s.Pipeline.TotalLeads = 5
				s.Pipeline.NewLeadsThisWeek = 1
				s.Pipeline.LateStageLeads = 2
				return s
			},
			validate: func(t *testing.T, insights []*domain.Insight) {
				insight := findInsight(insights, "pipeline_deals_ready")
				assert.NotNil(t, insight)
				assert.Equal(t, domain.UrgencyImmediate, insight.Urgency)
				assert.NotNil(t, insight.ExpiresAt)
				assert.Equal(t, time.Date(2025, 8, 15, 23, 59, 59, 0, time.UTC), *insight.ExpiresAt)
			},
		},
		{
			name: "Funil com volume e nenhum lead novo na semana - risco de reposição",
			snapshot: func() *domain.SignalSnapshot {
				s := emptySnapshot()
				s.Pipeline.TotalLeads = 8
				s.Pipeline.NewLeadsThisWeek = 0
				return s
			},
			validate: func(t *testing.T, insights []*domain.Insight) {
				insight := findInsight(insights, "pipeline_replenishment")
				assert.NotNil(t, insight)
				assert.Equal(t, domain.InsightTypeRisk, insight.Type)
			},
		},
		{
			name: "Tarefas atrasadas acima do limite - risco operacional",
			snapshot: func() *domain.SignalSnapshot {
				s := emptySnapshot()
				s.Operations.OpenTasks = 10
				s.Operations.OverdueTasks = 4
				return s
			},
			validate: func(t *testing.T, insights []*domain.Insight) {
				assert.NotNil(t, findInsight(insights, "operations_task_backlog"))
			},
		},
		{
			name: "Campanhas com abertura baixa e amostra suficiente - oportunidade de otimização",
			snapshot: func() *domain.SignalSnapshot {
				s := emptySnapshot()
				s.Marketing.RecentCampaigns = 3
				s.Marketing.TotalRecipients = 200
				s.Marketing.AvgOpenRate = 9.5
				return s
			},
			validate: func(t *testing.T, insights []*domain.Insight) {
				assert.NotNil(t, findInsight(insights, "marketing_low_open_rate"))
				assert.Nil(t, findInsight(insights, "marketing_high_open_rate"))
			},
		},
		{
			name: "Campanhas com abertura baixa mas amostra pequena - nenhuma regra dispara",
			snapshot: func() *domain.SignalSnapshot {
				s := emptySnapshot()
				s.Marketing.RecentCampaigns = 1
				s.Marketing.TotalRecipients = 20
				s.Marketing.AvgOpenRate = 9.5
				return s
			},
			validate: func(t *testing.T, insights []*domain.Insight) {
				assert.Nil(t, findInsight(insights, "marketing_low_open_rate"))
			},
		},
		{
			name: "Volume de leads sem agente ativo - oportunidade de automação",
			snapshot: func() *domain.SignalSnapshot {
				s := emptySnapshot()
				s.Pipeline.TotalLeads = 15
				s.Pipeline.NewLeadsThisWeek = 2
				s.Operations.ActiveAgents = 0
				return s
			},
			validate: func(t *testing.T, insights []*domain.Insight) {
				assert.NotNil(t, findInsight(insights, "operations_no_automation"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, engine.Evaluate(tt.snapshot()))
		})
	}
}

func TestEngine_Evaluate_Determinismo(t *testing.T) {
	engine := NewEngine(config.DefaultInsights())

	snapshot := emptySnapshot()
	snapshot.Pipeline.TotalLeads = 12
	snapshot.Pipeline.HotLeads = 4
	snapshot.Pipeline.StaleLeads = 5
	snapshot.Pipeline.StaleLeadValue = 12000
	snapshot.Pipeline.LateStageLeads = 2
	snapshot.Finance.OverdueAmount = 6000
	snapshot.Finance.MonthlyRevenue = 20000
	snapshot.Finance.RecentInvoiceCount = 1
	snapshot.Operations.OverdueTasks = 4

	first := engine.Rank(engine.Evaluate(snapshot))
	second := engine.Rank(engine.Evaluate(snapshot))

	assert.Equal(t, first, second)
	for _, insight := range first {
		assert.Equal(t, snapshot.GeneratedAt, insight.DetectedAt)
	}
}

func TestEngine_Rank(t *testing.T) {
	makeRule := func(key string, urgency domain.Urgency, priority int, confidence float64) Rule {
		return Rule{
			Key: key,
			Evaluate: func(snapshot *domain.SignalSnapshot, cfg config.Insights) []*domain.Insight {
				return []*domain.Insight{{
					ID:         key,
					Urgency:    urgency,
					Priority:   priority,
					Confidence: confidence,
					DetectedAt: snapshot.GeneratedAt,
				}}
			},
		}
	}

	t.Run("Filtra por confiança mínima", func(t *testing.T) {
		engine := NewEngineWithRules(config.DefaultInsights(), []Rule{
			makeRule("confiavel", domain.UrgencySoon, 5, 0.8),
			makeRule("duvidoso", domain.UrgencyImmediate, 9, 0.5),
		})

		ranked := engine.Rank(engine.Evaluate(emptySnapshot()))

		assert.Len(t, ranked, 1)
		assert.Equal(t, "confiavel", ranked[0].ID)
	})

	t.Run("Ordena por urgência e depois por prioridade", func(t *testing.T) {
		engine := NewEngineWithRules(config.DefaultInsights(), []Rule{
			makeRule("soon_alto", domain.UrgencySoon, 9, 0.9),
			makeRule("relevante", domain.UrgencyWhenRelevant, 10, 0.9),
			makeRule("imediato_baixo", domain.UrgencyImmediate, 2, 0.9),
			makeRule("soon_baixo", domain.UrgencySoon, 4, 0.9),
		})

		ranked := engine.Rank(engine.Evaluate(emptySnapshot()))

		assert.Equal(t, []string{"imediato_baixo", "soon_alto", "soon_baixo", "relevante"},
			[]string{ranked[0].ID, ranked[1].ID, ranked[2].ID, ranked[3].ID})

		// Propriedade de ordenação: urgência decrescente e, dentro da mesma
		// urgência, prioridade decrescente
		for i := 0; i < len(ranked)-1; i++ {
			a, b := ranked[i], ranked[i+1]
			if a.Urgency.Rank() == b.Urgency.Rank() {
				assert.GreaterOrEqual(t, a.Priority, b.Priority)
			} else {
				assert.Greater(t, a.Urgency.Rank(), b.Urgency.Rank())
			}
		}
	})

	t.Run("Empate de urgência e prioridade preserva a ordem de avaliação", func(t *testing.T) {
		engine := NewEngineWithRules(config.DefaultInsights(), []Rule{
			makeRule("primeiro", domain.UrgencySoon, 5, 0.9),
			makeRule("segundo", domain.UrgencySoon, 5, 0.9),
			makeRule("terceiro", domain.UrgencySoon, 5, 0.9),
		})

		ranked := engine.Rank(engine.Evaluate(emptySnapshot()))

		assert.Equal(t, "primeiro", ranked[0].ID)
		assert.Equal(t, "segundo", ranked[1].ID)
		assert.Equal(t, "terceiro", ranked[2].ID)
	})

	t.Run("Trunca no máximo configurado", func(t *testing.T) {
		cfg := config.DefaultInsights()
		cfg.MaxInsights = 3

		rules := make([]Rule, 0, 6)
		for _, key := range []string{"a", "b", "c", "d", "e", "f"} {
			rules = append(rules, makeRule(key, domain.UrgencySoon, 5, 0.9))
		}

		engine := NewEngineWithRules(cfg, rules)
		ranked := engine.Rank(engine.Evaluate(emptySnapshot()))

		assert.Len(t, ranked, 3)
	})
}
