package intelligence

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-pulse-api/internal/config"
	"github.com/vfg2006/business-pulse-api/internal/domain"
	"github.com/vfg2006/business-pulse-api/internal/usecases/collecting"
	"github.com/vfg2006/business-pulse-api/internal/usecases/correlating"
	"github.com/vfg2006/business-pulse-api/internal/usecases/scoring"
)

// Insighter é a interface do motor de inteligência exposta para a camada
// HTTP e para o agendador de reaquecimento.
type Insighter interface {
	GetInsights(workspaceID string) (*domain.InsightsResponse, error)
	GetBusinessIntelligence(workspaceID string) (*domain.IntelligenceResult, error)
	Invalidate(workspaceID string)
}

// Cache é a fronteira genérica de cache usada pelo orquestrador. A
// implementação em memória vive em infrastructure/cache.
type Cache interface {
	Get(key string) (*domain.IntelligenceResult, bool)
	Set(key string, result *domain.IntelligenceResult, ttl time.Duration)
	Delete(key string)
}

// Service orquestra o pipeline coleta -> correlação -> score atrás de um
// cache read-through por workspace.
type Service struct {
	cfg       config.Insights
	collector collecting.Collector
	engine    *correlating.Engine
	scorer    scoring.Scorer
	cache     Cache
}

func NewService(
	cfg config.Insights,
	collector collecting.Collector,
	engine *correlating.Engine,
	scorer scoring.Scorer,
	cache Cache,
) Insighter {
	return &Service{
		cfg:       cfg,
		collector: collector,
		engine:    engine,
		scorer:    scorer,
		cache:     cache,
	}
}

// GetInsights retorna apenas a lista ranqueada de insights do workspace
func (s *Service) GetInsights(workspaceID string) (*domain.InsightsResponse, error) {
	result, err := s.GetBusinessIntelligence(workspaceID)
	if err != nil {
		return nil, err
	}

	return &domain.InsightsResponse{
		Insights:    result.Insights,
		GeneratedAt: result.GeneratedAt,
	}, nil
}

// GetBusinessIntelligence retorna o resultado completo (sinais, insights,
// score de saúde). Serve do cache enquanto a entrada estiver viva; no miss,
// recomputa e renova o TTL.
func (s *Service) GetBusinessIntelligence(workspaceID string) (*domain.IntelligenceResult, error) {
	if cached, ok := s.cache.Get(workspaceID); ok {
		return cached, nil
	}

	result := s.compute(workspaceID)
	s.cache.Set(workspaceID, result, s.cfg.CacheTTL)

	return result, nil
}

// Invalidate remove a entrada do workspace do cache. Chamado após eventos
// de mutação relevantes para forçar o recálculo na próxima leitura.
func (s *Service) Invalidate(workspaceID string) {
	s.cache.Delete(workspaceID)
}

// compute roda o pipeline completo. Falhas inesperadas nunca sobem para o
// consumidor: o resultado degrada para o padrão seguro (sem insights, score
// neutro), já que dashboards e assistentes não podem quebrar por causa
// deste subsistema.
func (s *Service) compute(workspaceID string) (result *domain.IntelligenceResult) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("workspace_id", workspaceID).
				WithField("panic", r).
				Error("Falha inesperada ao computar a inteligência do workspace")

			result = safeDefaultResult(workspaceID)
		}
	}()

	snapshot, err := s.collector.Snapshot(workspaceID)
	if err != nil {
		logrus.WithError(err).WithField("workspace_id", workspaceID).
			Error("Erro ao coletar o snapshot de sinais")
		return safeDefaultResult(workspaceID)
	}

	insights := s.engine.Rank(s.engine.Evaluate(snapshot))
	health := s.scorer.Score(snapshot)

	return &domain.IntelligenceResult{
		WorkspaceID: workspaceID,
		Signals:     snapshot,
		Insights:    insights,
		Health:      health,
		Summary:     Summarize(insights, health),
		GeneratedAt: snapshot.GeneratedAt,
	}
}

func safeDefaultResult(workspaceID string) *domain.IntelligenceResult {
	health := domain.NeutralHealthScore()

	return &domain.IntelligenceResult{
		WorkspaceID: workspaceID,
		Signals:     nil,
		Insights:    []*domain.Insight{},
		Health:      health,
		Summary:     Summarize(nil, health),
		GeneratedAt: time.Now().UTC(),
	}
}
