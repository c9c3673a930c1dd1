package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-pulse-api/infrastructure/cache"
	"github.com/vfg2006/business-pulse-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-pulse-api/infrastructure/repository"
	"github.com/vfg2006/business-pulse-api/internal/api"
	"github.com/vfg2006/business-pulse-api/internal/config"
	"github.com/vfg2006/business-pulse-api/internal/scheduler"
	"github.com/vfg2006/business-pulse-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-pulse-api/internal/usecases/collecting"
	"github.com/vfg2006/business-pulse-api/internal/usecases/correlating"
	"github.com/vfg2006/business-pulse-api/internal/usecases/intelligence"
	"github.com/vfg2006/business-pulse-api/internal/usecases/scoring"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	workspaceRepo := repository.NewWorkspaceRepository(pgConn)
	leadRepo := repository.NewLeadRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	taskRepo := repository.NewTaskRepository(pgConn)
	agentRepo := repository.NewAgentRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Monta o pipeline de inteligência: coleta -> correlação -> score,
	// atrás do cache em memória por workspace
	collectorService := collecting.NewService(
		collecting.NewPipelineCollector(cfg.Insights, leadRepo),
		collecting.NewMarketingCollector(campaignRepo),
		collecting.NewFinanceCollector(invoiceRepo),
		collecting.NewOperationsCollector(taskRepo, agentRepo),
	)

	intelligenceService := intelligence.NewService(
		cfg.Insights,
		collectorService,
		correlating.NewEngine(cfg.Insights),
		scoring.NewService(),
		cache.NewMemory(),
	)

	// Inicializa o agendador de reaquecimento do cache de inteligência
	intelligenceRefreshService := scheduler.NewIntelligenceRefreshService(
		workspaceRepo,
		intelligenceService,
		cfg,
	)

	if err := intelligenceRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reaquecimento de inteligência")
	} else {
		logrus.Info("Agendador de reaquecimento de inteligência iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		intelligenceService,
		workspaceRepo,
		authenticator,
		intelligenceRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
