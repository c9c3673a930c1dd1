package collecting

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

// Collector produz o retrato consolidado dos sinais de um workspace
type Collector interface {
	Snapshot(workspaceID string) (*domain.SignalSnapshot, error)
}

// Service implementa a interface Collector coletando os quatro domínios em
// paralelo. A falha de um domínio não derruba o snapshot: o domínio entra
// zerado e o aviso vai para o log.
type Service struct {
	pipeline   PipelineCollector
	marketing  MarketingCollector
	finance    FinanceCollector
	operations OperationsCollector

	// now é injetável para fixar a época do snapshot nos testes
	now func() time.Time
}

func NewService(
	pipeline PipelineCollector,
	marketing MarketingCollector,
	finance FinanceCollector,
	operations OperationsCollector,
) *Service {
	return &Service{
		pipeline:   pipeline,
		marketing:  marketing,
		finance:    finance,
		operations: operations,
		now:        time.Now,
	}
}

// WithClock substitui a fonte de tempo do serviço. Uso exclusivo em testes.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Snapshot coleta os sinais dos quatro domínios do workspace em paralelo e
// monta o retrato usado pelas camadas de correlação e de score.
func (s *Service) Snapshot(workspaceID string) (*domain.SignalSnapshot, error) {
	reference := s.now().UTC()

	snapshot := &domain.SignalSnapshot{
		WorkspaceID: workspaceID,
		GeneratedAt: reference,
	}

	// Variáveis para armazenar os resultados de cada domínio
	var (
		pipelineErr   error
		marketingErr  error
		financeErr    error
		operationsErr error
	)

	// Usar WaitGroup para esperar as goroutines terminarem
	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		snapshot.Pipeline, pipelineErr = s.pipeline.Collect(workspaceID, reference)
	}()

	go func() {
		defer wg.Done()
		snapshot.Marketing, marketingErr = s.marketing.Collect(workspaceID, reference)
	}()

	go func() {
		defer wg.Done()
		snapshot.Finance, financeErr = s.finance.Collect(workspaceID, reference)
	}()

	go func() {
		defer wg.Done()
		snapshot.Operations, operationsErr = s.operations.Collect(workspaceID, reference)
	}()

	wg.Wait()

	// Verificar se houve erro nas goroutines
	if pipelineErr != nil {
		logrus.WithError(pipelineErr).WithField("workspace_id", workspaceID).
			Warn("Falha ao coletar sinais do funil de vendas")
		snapshot.Pipeline = domain.PipelineSignals{}
	}

	if marketingErr != nil {
		logrus.WithError(marketingErr).WithField("workspace_id", workspaceID).
			Warn("Falha ao coletar sinais de marketing")
		snapshot.Marketing = domain.MarketingSignals{}
	}

	if financeErr != nil {
		logrus.WithError(financeErr).WithField("workspace_id", workspaceID).
			Warn("Falha ao coletar sinais financeiros")
		snapshot.Finance = domain.FinanceSignals{}
	}

	if operationsErr != nil {
		logrus.WithError(operationsErr).WithField("workspace_id", workspaceID).
			Warn("Falha ao coletar sinais operacionais")
		snapshot.Operations = domain.OperationsSignals{}
	}

	return snapshot, nil
}
