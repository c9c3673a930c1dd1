package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

func baseSnapshot() *domain.SignalSnapshot {
	return &domain.SignalSnapshot{
		WorkspaceID: "ws-001",
		GeneratedAt: time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestService_Score_Dimensoes(t *testing.T) {
	scorer := NewService()

	tests := []struct {
		name     string
		snapshot func() *domain.SignalSnapshot
		validate func(t *testing.T, score *domain.HealthScore)
	}{
		{
			name:     "Snapshot vazio - todas as dimensões ficam na base com penalidades leves",
			snapshot: baseSnapshot,
			validate: func(t *testing.T, score *domain.HealthScore) {
				assert.Equal(t, 35.0, score.Dimensions.Revenue)
				assert.Equal(t, 30.0, score.Dimensions.Pipeline)
				assert.Equal(t, 50.0, score.Dimensions.Operations)
				assert.Equal(t, 40.0, score.Dimensions.Marketing)
				assert.Equal(t, 60.0, score.Dimensions.CashFlow)
			},
		},
		{
			name: "Crescimento forte de receita soma os dois ajustes",
			snapshot: func() *domain.SignalSnapshot {
				s := baseSnapshot()
				s.Finance.MonthlyRevenue = 25000
				s.Finance.PreviousMonthRevenue = 20000
				s.Finance.RevenueGrowth = 25
				return s
			},
			validate: func(t *testing.T, score *domain.HealthScore) {
				assert.Equal(t, 75.0, score.Dimensions.Revenue)
			},
		},
		{
			name: "Queda forte de receita penaliza duas vezes",
			snapshot: func() *domain.SignalSnapshot {
				s := baseSnapshot()
				s.Finance.MonthlyRevenue = 8000
				s.Finance.PreviousMonthRevenue = 12000
				s.Finance.RevenueGrowth = -33
				return s
			},
			validate: func(t *testing.T, score *domain.HealthScore) {
				assert.Equal(t, 25.0, score.Dimensions.Revenue)
			},
		},
		{
			name: "Leads parados reduzem o score do funil proporcionalmente",
			snapshot: func() *domain.SignalSnapshot {
				s := baseSnapshot()
				s.Pipeline.TotalLeads = 10
				s.Pipeline.NewLeadsThisWeek = 2
				s.Pipeline.StaleLeads = 5
				return s
			},
			validate: func(t *testing.T, score *domain.HealthScore) {
				// 50 + 10 (leads novos) - 20*0.5 (metade parada)
				assert.Equal(t, 50.0, score.Dimensions.Pipeline)
			},
		},
		{
			name: "Operação em dia com automação ativa",
			snapshot: func() *domain.SignalSnapshot {
				s := baseSnapshot()
				s.Operations.CompletionRate = 80
				s.Operations.ActiveAgents = 1
				s.Operations.AutomationRunsThisWeek = 3
				return s
			},
			validate: func(t *testing.T, score *domain.HealthScore) {
				assert.Equal(t, 75.0, score.Dimensions.Operations)
			},
		},
		{
			name: "Backlog de tarefas atrasadas penaliza duas vezes",
			snapshot: func() *domain.SignalSnapshot {
				s := baseSnapshot()
				s.Operations.CompletionRate = 30
				s.Operations.OverdueTasks = 5
				return s
			},
			validate: func(t *testing.T, score *domain.HealthScore) {
				assert.Equal(t, 35.0, score.Dimensions.Operations)
			},
		},
		{
			name: "Campanhas com abertura alta elevam o marketing",
			snapshot: func() *domain.SignalSnapshot {
				s := baseSnapshot()
				s.Marketing.RecentCampaigns = 3
				s.Marketing.ActiveCampaigns = 1
				s.Marketing.AvgOpenRate = 42
				return s
			},
			validate: func(t *testing.T, score *domain.HealthScore) {
				assert.Equal(t, 70.0, score.Dimensions.Marketing)
			},
		},
		{
			name: "Inadimplência acima de 20% da receita penaliza o caixa duas vezes",
			snapshot: func() *domain.SignalSnapshot {
				s := baseSnapshot()
				s.Finance.MonthlyRevenue = 20000
				s.Finance.OverdueAmount = 6000
				return s
			},
			validate: func(t *testing.T, score *domain.HealthScore) {
				// 50 - 20 - 10 + 10 (receita maior que o mês anterior)
				assert.Equal(t, 30.0, score.Dimensions.CashFlow)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, scorer.Score(tt.snapshot()))
		})
	}
}

func TestService_Score_Limites(t *testing.T) {
	scorer := NewService()

	extremes := []*domain.SignalSnapshot{
		baseSnapshot(),
		func() *domain.SignalSnapshot {
			s := baseSnapshot()
			s.Finance.RevenueGrowth = 500
			s.Finance.MonthlyRevenue = 1000000
			s.Finance.PreviousMonthRevenue = 10
			s.Pipeline.TotalLeads = 100
			s.Pipeline.NewLeadsThisWeek = 50
			s.Pipeline.HotLeads = 80
			s.Pipeline.LateStageLeads = 30
			s.Operations.CompletionRate = 100
			s.Operations.ActiveAgents = 5
			s.Operations.AutomationRunsThisWeek = 40
			s.Marketing.RecentCampaigns = 10
			s.Marketing.ActiveCampaigns = 4
			s.Marketing.AvgOpenRate = 90
			return s
		}(),
		func() *domain.SignalSnapshot {
			s := baseSnapshot()
			s.Finance.RevenueGrowth = -95
			s.Finance.OverdueAmount = 50000
			s.Finance.MonthlyRevenue = 1000
			s.Finance.PreviousMonthRevenue = 20000
			s.Pipeline.TotalLeads = 10
			s.Pipeline.StaleLeads = 10
			s.Pipeline.ColdLeads = 10
			s.Operations.OverdueTasks = 20
			s.Marketing.RecentCampaigns = 2
			s.Marketing.AvgOpenRate = 1
			return s
		}(),
	}

	for _, snapshot := range extremes {
		score := scorer.Score(snapshot)

		for _, dimension := range []float64{
			score.Overall,
			score.Dimensions.Revenue,
			score.Dimensions.Pipeline,
			score.Dimensions.Operations,
			score.Dimensions.Marketing,
			score.Dimensions.CashFlow,
		} {
			assert.GreaterOrEqual(t, dimension, 0.0)
			assert.LessOrEqual(t, dimension, 100.0)
		}
	}
}

func TestService_Score_CombinacaoPonderada(t *testing.T) {
	scorer := NewService()

	snapshot := baseSnapshot()
	snapshot.Finance.MonthlyRevenue = 20000
	snapshot.Finance.PreviousMonthRevenue = 18000
	snapshot.Finance.RevenueGrowth = 11.1
	snapshot.Pipeline.TotalLeads = 10
	snapshot.Pipeline.NewLeadsThisWeek = 3
	snapshot.Operations.CompletionRate = 75
	snapshot.Marketing.RecentCampaigns = 2
	snapshot.Marketing.AvgOpenRate = 25

	score := scorer.Score(snapshot)

	expected := score.Dimensions.Revenue*0.25 +
		score.Dimensions.Pipeline*0.25 +
		score.Dimensions.Operations*0.20 +
		score.Dimensions.Marketing*0.15 +
		score.Dimensions.CashFlow*0.15

	assert.InDelta(t, expected, score.Overall, 0.0001)
}

func TestService_Score_TendenciaEMomentum(t *testing.T) {
	scorer := NewService()

	tests := []struct {
		name     string
		snapshot func() *domain.SignalSnapshot
		trend    domain.HealthTrend
		momentum domain.Momentum
	}{
		{
			name: "Crescimento de 12% com 5 leads novos - melhorando e ganhando",
			snapshot: func() *domain.SignalSnapshot {
				s := baseSnapshot()
				s.Finance.RevenueGrowth = 12
				s.Pipeline.TotalLeads = 20
				s.Pipeline.NewLeadsThisWeek = 5
				return s
			},
			trend:    domain.TrendImproving,
			momentum: domain.MomentumGaining,
		},
		{
			name: "Queda de receita acima de 5% - declinando e perdendo",
			snapshot: func() *domain.SignalSnapshot {
				s := baseSnapshot()
				s.Finance.RevenueGrowth = -8
				return s
			},
			trend:    domain.TrendDeclining,
			momentum: domain.MomentumLosing,
		},
		{
			name: "Base fria dominando a quente - declinando mesmo com receita estável",
			snapshot: func() *domain.SignalSnapshot {
				s := baseSnapshot()
				s.Pipeline.TotalLeads = 10
				s.Pipeline.HotLeads = 1
				s.Pipeline.ColdLeads = 5
				return s
			},
			trend:    domain.TrendDeclining,
			momentum: domain.MomentumLosing,
		},
		{
			name: "Crescimento sem leads novos suficientes - estável",
			snapshot: func() *domain.SignalSnapshot {
				s := baseSnapshot()
				s.Finance.RevenueGrowth = 8
				s.Pipeline.NewLeadsThisWeek = 1
				return s
			},
			trend:    domain.TrendStable,
			momentum: domain.MomentumSteady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := scorer.Score(tt.snapshot())
			assert.Equal(t, tt.trend, score.Trend)
			assert.Equal(t, tt.momentum, score.Momentum)
		})
	}
}

func TestService_Score_ForcasERiscos(t *testing.T) {
	scorer := NewService()

	t.Run("Faturas vencidas sempre aparecem como risco", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.Finance.MonthlyRevenue = 30000
		snapshot.Finance.PreviousMonthRevenue = 25000
		snapshot.Finance.RevenueGrowth = 20
		snapshot.Finance.OverdueAmount = 500
		snapshot.Pipeline.TotalLeads = 10
		snapshot.Pipeline.NewLeadsThisWeek = 3

		score := scorer.Score(snapshot)

		assert.Contains(t, score.Risks, "Faturas vencidas aguardando pagamento")
	})

	t.Run("Funil com leads mas sem entrada na semana é risco direto", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.Pipeline.TotalLeads = 8
		snapshot.Pipeline.NewLeadsThisWeek = 0

		score := scorer.Score(snapshot)

		assert.Contains(t, score.Risks, "Nenhum lead novo na última semana")
	})

	t.Run("Base aquecida aparece como força", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.Pipeline.TotalLeads = 10
		snapshot.Pipeline.NewLeadsThisWeek = 2
		snapshot.Pipeline.HotLeads = 4
		snapshot.Pipeline.ColdLeads = 2

		score := scorer.Score(snapshot)

		assert.Contains(t, score.Strengths, "Base de leads aquecida")
	})

	t.Run("Dimensão acima de 70 vira força, abaixo de 40 vira risco", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.Operations.CompletionRate = 80
		snapshot.Operations.ActiveAgents = 1
		snapshot.Operations.AutomationRunsThisWeek = 2
		snapshot.Finance.RevenueGrowth = -20
		snapshot.Finance.MonthlyRevenue = 1000
		snapshot.Finance.PreviousMonthRevenue = 5000

		score := scorer.Score(snapshot)

		assert.GreaterOrEqual(t, score.Dimensions.Operations, 70.0)
		assert.Contains(t, score.Strengths, "Operação em dia com as entregas")
		assert.Less(t, score.Dimensions.Revenue, 40.0)
		assert.Contains(t, score.Risks, "Receita em queda frente ao mês anterior")
	})
}
