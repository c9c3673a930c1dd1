package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-pulse-api/infrastructure/repository"
	"github.com/vfg2006/business-pulse-api/internal/config"
	"github.com/vfg2006/business-pulse-api/internal/usecases/intelligence"
	"golang.org/x/sync/errgroup"
)

// IntelligenceRefreshConfig representa a configuração do agendador de
// reaquecimento do cache de inteligência
type IntelligenceRefreshConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	RefreshEnabled    bool
}

// IntelligenceRefreshService reaquece periodicamente o cache de inteligência
// dos workspaces ativos, para que as leituras do painel encontrem uma
// entrada viva em vez de pagar o custo da computação completa.
type IntelligenceRefreshService struct {
	scheduler            *gocron.Scheduler
	config               IntelligenceRefreshConfig
	workspaceRepo        repository.WorkspaceRepository
	insighter            intelligence.Insighter
	refreshRunning       bool
	refreshMutex         sync.Mutex
	lastRefreshStartedAt time.Time
	lastRefreshEndedAt   time.Time
}

// NewIntelligenceRefreshService cria uma nova instância do serviço de reaquecimento
func NewIntelligenceRefreshService(
	workspaceRepo repository.WorkspaceRepository,
	insighter intelligence.Insighter,
	appConfig *config.Config,
) *IntelligenceRefreshService {
	refreshConfig := IntelligenceRefreshConfig{
		CronSchedule:      appConfig.IntelligenceRefresh.CronSchedule,
		MaxConcurrentJobs: appConfig.IntelligenceRefresh.MaxConcurrentJobs,
		RefreshEnabled:    appConfig.IntelligenceRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       refreshConfig.CronSchedule,
		"max_concurrent_jobs": refreshConfig.MaxConcurrentJobs,
		"refresh_enabled":     refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de reaquecimento de inteligência carregada")

	return &IntelligenceRefreshService{
		scheduler:     scheduler,
		config:        refreshConfig,
		workspaceRepo: workspaceRepo,
		insighter:     insighter,
	}
}

// Start inicia o agendador
func (s *IntelligenceRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Reaquecimento de inteligência desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reaquecimento de inteligência")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshWorkspaces()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o reaquecimento de inteligência: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reaquecimento de inteligência")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshWorkspaces recomputa a inteligência de todos os workspaces ativos,
// limitando a concorrência ao máximo configurado.
func (s *IntelligenceRefreshService) refreshWorkspaces() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Reaquecimento de inteligência já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRefreshEndedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	startTime := time.Now()

	workspaceIDs, err := s.workspaceRepo.ListActiveIDs()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar workspaces ativos para reaquecimento")
		return
	}

	if len(workspaceIDs) == 0 {
		logrus.Info("Nenhum workspace ativo encontrado para reaquecimento")
		return
	}

	logrus.WithField("workspaces", len(workspaceIDs)).Info("Iniciando reaquecimento de inteligência dos workspaces")

	g := new(errgroup.Group)
	g.SetLimit(s.config.MaxConcurrentJobs)

	for _, workspaceID := range workspaceIDs {
		workspaceID := workspaceID
		g.Go(func() error {
			// Invalidar antes de recomputar para renovar o TTL da entrada
			s.insighter.Invalidate(workspaceID)

			if _, err := s.insighter.GetBusinessIntelligence(workspaceID); err != nil {
				logrus.WithError(err).WithField("workspace_id", workspaceID).
					Error("Erro ao reaquecer a inteligência do workspace")
			}

			return nil
		})
	}

	// Os erros são logados por workspace; o grupo nunca propaga erro
	_ = g.Wait()

	logrus.WithFields(logrus.Fields{
		"duration":   time.Since(startTime).String(),
		"workspaces": len(workspaceIDs),
	}).Info("Reaquecimento de inteligência concluído")
}

// TriggerManualRefresh inicia manualmente um ciclo de reaquecimento
func (s *IntelligenceRefreshService) TriggerManualRefresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Reaquecimento de inteligência já em andamento, ignorando solicitação manual")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando reaquecimento manual de inteligência")
	go s.refreshWorkspaces()
}

// GetStatus retorna o status atual do reaquecimento
func (s *IntelligenceRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_running":         s.refreshRunning,
		"refresh_cron":            s.config.CronSchedule,
		"refresh_enabled":         s.config.RefreshEnabled,
		"last_refresh_started_at": s.lastRefreshStartedAt,
		"last_refresh_ended_at":   s.lastRefreshEndedAt,
	}
}
