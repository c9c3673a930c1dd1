package scoring

import (
	"github.com/vfg2006/business-pulse-api/internal/domain"
	"github.com/vfg2006/business-pulse-api/pkg/utils"
)

// Pesos fixos da combinação linear das dimensões. Somam 1.0.
const (
	weightRevenue    = 0.25
	weightPipeline   = 0.25
	weightOperations = 0.20
	weightMarketing  = 0.15
	weightCashFlow   = 0.15
)

// Limites fixos para classificar dimensões como força ou risco
const (
	strengthThreshold = 70.0
	riskThreshold     = 40.0
)

// Scorer calcula o score de saúde do negócio a partir do snapshot
type Scorer interface {
	Score(snapshot *domain.SignalSnapshot) *domain.HealthScore
}

// Service implementa a interface Scorer. É uma função pura: o mesmo
// snapshot produz sempre o mesmo score.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Score calcula as cinco dimensões a partir de uma base fixa com ajustes
// aditivos, limita cada uma a [0,100] e combina com os pesos fixos.
func (s *Service) Score(snapshot *domain.SignalSnapshot) *domain.HealthScore {
	dimensions := domain.HealthDimensions{
		Revenue:    scoreRevenue(snapshot.Finance),
		Pipeline:   scorePipeline(snapshot.Pipeline),
		Operations: scoreOperations(snapshot.Operations),
		Marketing:  scoreMarketing(snapshot.Marketing),
		CashFlow:   scoreCashFlow(snapshot.Finance),
	}

	overall := dimensions.Revenue*weightRevenue +
		dimensions.Pipeline*weightPipeline +
		dimensions.Operations*weightOperations +
		dimensions.Marketing*weightMarketing +
		dimensions.CashFlow*weightCashFlow

	return &domain.HealthScore{
		Overall:    utils.Clamp(overall, 0, 100),
		Trend:      classifyTrend(snapshot),
		Momentum:   classifyMomentum(snapshot),
		Dimensions: dimensions,
		Strengths:  collectStrengths(dimensions, snapshot),
		Risks:      collectRisks(dimensions, snapshot),
	}
}

func scoreRevenue(finance domain.FinanceSignals) float64 {
	score := 50.0

	if finance.RevenueGrowth > 0 {
		score += 15
	}
	if finance.RevenueGrowth > 10 {
		score += 10
	}
	if finance.RevenueGrowth < 0 {
		score -= 15
	}
	if finance.RevenueGrowth < -10 {
		score -= 10
	}

	if finance.MonthlyRevenue == 0 {
		score -= 15
	}

	return utils.Clamp(score, 0, 100)
}

func scorePipeline(pipeline domain.PipelineSignals) float64 {
	score := 50.0

	if pipeline.TotalLeads == 0 {
		return utils.Clamp(score-20, 0, 100)
	}

	if pipeline.NewLeadsThisWeek > 0 {
		score += 10
	}
	if pipeline.HotLeads > pipeline.ColdLeads {
		score += 10
	}
	if pipeline.LateStageLeads > 0 {
		score += 5
	}

	// Penalidade proporcional à fatia de leads parados
	staleRatio := float64(pipeline.StaleLeads) / float64(pipeline.TotalLeads)
	score -= 20 * staleRatio

	return utils.Clamp(score, 0, 100)
}

func scoreOperations(operations domain.OperationsSignals) float64 {
	score := 50.0

	if operations.CompletionRate >= 70 {
		score += 15
	} else if operations.CompletionRate >= 40 {
		score += 5
	}

	if operations.OverdueTasks > 0 {
		score -= 5
	}
	if operations.OverdueTasks > 3 {
		score -= 10
	}

	if operations.ActiveAgents > 0 {
		score += 5
	}
	if operations.AutomationRunsThisWeek > 0 {
		score += 5
	}

	return utils.Clamp(score, 0, 100)
}

func scoreMarketing(marketing domain.MarketingSignals) float64 {
	score := 50.0

	if marketing.RecentCampaigns == 0 {
		return utils.Clamp(score-10, 0, 100)
	}

	if marketing.ActiveCampaigns > 0 {
		score += 5
	}

	switch {
	case marketing.AvgOpenRate >= 35:
		score += 15
	case marketing.AvgOpenRate >= 20:
		score += 5
	case marketing.AvgOpenRate < 15:
		score -= 15
	}

	return utils.Clamp(score, 0, 100)
}

func scoreCashFlow(finance domain.FinanceSignals) float64 {
	score := 50.0

	if finance.OverdueAmount > 0 {
		score -= 20
		if finance.MonthlyRevenue > 0 && finance.OverdueAmount/finance.MonthlyRevenue*100 > 20 {
			score -= 10
		}
	} else if finance.OutstandingAmount == 0 {
		score += 10
	}

	if finance.MonthlyRevenue > finance.PreviousMonthRevenue {
		score += 10
	}

	return utils.Clamp(score, 0, 100)
}

// classifyTrend deriva a tendência de dois sinais: crescimento de receita e
// velocidade de entrada de leads.
func classifyTrend(snapshot *domain.SignalSnapshot) domain.HealthTrend {
	growth := snapshot.Finance.RevenueGrowth
	pipeline := snapshot.Pipeline

	if growth > 5 && pipeline.NewLeadsThisWeek > 2 {
		return domain.TrendImproving
	}
	if growth < -5 || pipeline.ColdLeads > 2*pipeline.HotLeads {
		return domain.TrendDeclining
	}

	return domain.TrendStable
}

func classifyMomentum(snapshot *domain.SignalSnapshot) domain.Momentum {
	switch classifyTrend(snapshot) {
	case domain.TrendImproving:
		return domain.MomentumGaining
	case domain.TrendDeclining:
		return domain.MomentumLosing
	default:
		return domain.MomentumSteady
	}
}

// collectStrengths lista as dimensões acima do limite de força, em ordem
// fixa para manter a saída determinística.
func collectStrengths(dimensions domain.HealthDimensions, snapshot *domain.SignalSnapshot) []string {
	strengths := make([]string, 0)

	if dimensions.Revenue >= strengthThreshold {
		strengths = append(strengths, "Receita em crescimento consistente")
	}
	if dimensions.Pipeline >= strengthThreshold {
		strengths = append(strengths, "Funil de vendas saudável e em movimento")
	}
	if dimensions.Operations >= strengthThreshold {
		strengths = append(strengths, "Operação em dia com as entregas")
	}
	if dimensions.Marketing >= strengthThreshold {
		strengths = append(strengths, "Campanhas com engajamento acima da média")
	}
	if dimensions.CashFlow >= strengthThreshold {
		strengths = append(strengths, "Fluxo de caixa sem pendências")
	}

	if snapshot.Pipeline.HotLeads > 0 && snapshot.Pipeline.HotLeads >= snapshot.Pipeline.ColdLeads {
		strengths = append(strengths, "Base de leads aquecida")
	}

	return strengths
}

// collectRisks combina dimensões abaixo do limite com verificações diretas
// sobre os sinais.
func collectRisks(dimensions domain.HealthDimensions, snapshot *domain.SignalSnapshot) []string {
	risks := make([]string, 0)

	if dimensions.Revenue < riskThreshold {
		risks = append(risks, "Receita em queda frente ao mês anterior")
	}
	if dimensions.Pipeline < riskThreshold {
		risks = append(risks, "Funil de vendas estagnado")
	}
	if dimensions.Operations < riskThreshold {
		risks = append(risks, "Operação acumulando atrasos")
	}
	if dimensions.Marketing < riskThreshold {
		risks = append(risks, "Campanhas com baixo engajamento")
	}
	if dimensions.CashFlow < riskThreshold {
		risks = append(risks, "Fluxo de caixa pressionado")
	}

	// Verificações diretas, independentes do score da dimensão
	if snapshot.Finance.OverdueAmount > 0 {
		risks = append(risks, "Faturas vencidas aguardando pagamento")
	}
	if snapshot.Pipeline.TotalLeads > 0 && snapshot.Pipeline.NewLeadsThisWeek == 0 {
		risks = append(risks, "Nenhum lead novo na última semana")
	}

	return risks
}
