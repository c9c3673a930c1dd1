package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Insights            Insights            `mapstructure:",squash"`
	IntelligenceRefresh IntelligenceRefresh `mapstructure:",squash"`
	SecretKey           string              `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Insights concentra os parâmetros do motor de inteligência: TTL do cache,
// limites de retorno e os thresholds de cada regra de detecção. Os valores
// podem ser ajustados por variável de ambiente sem recompilar.
type Insights struct {
	CacheTTL      time.Duration `mapstructure:"insights_cache_ttl"`
	MaxInsights   int           `mapstructure:"insights_max_results"`
	MinConfidence float64       `mapstructure:"insights_min_confidence"`

	// Regras de pipeline
	StaleLeadDays      int     `mapstructure:"insights_stale_lead_days"`
	StaleLeadMinCount  int     `mapstructure:"insights_stale_lead_min_count"`
	StaleLeadHighValue float64 `mapstructure:"insights_stale_lead_high_value"`
	ReplenishMinLeads  int     `mapstructure:"insights_replenish_min_leads"`

	// Regras de finanças
	OverdueImmediateAmount float64 `mapstructure:"insights_overdue_immediate_amount"`
	OverdueImpactPercent   float64 `mapstructure:"insights_overdue_impact_percent"`

	// Regras de operações
	TaskBacklogMin    int `mapstructure:"insights_task_backlog_min"`
	AutomationMinLeads int `mapstructure:"insights_automation_min_leads"`

	// Regras de marketing
	CampaignMinRecipients int     `mapstructure:"insights_campaign_min_recipients"`
	CampaignLowOpenRate   float64 `mapstructure:"insights_campaign_low_open_rate"`
	CampaignHighOpenRate  float64 `mapstructure:"insights_campaign_high_open_rate"`
}

// IntelligenceRefresh configura o agendador que reaquece o cache de
// inteligência dos workspaces ativos.
type IntelligenceRefresh struct {
	CronSchedule      string `mapstructure:"intelligence_refresh_cron"`
	MaxConcurrentJobs int    `mapstructure:"intelligence_refresh_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"intelligence_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pulse")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults do motor de insights
	viper.SetDefault("INSIGHTS_CACHE_TTL", "30m")     // Janela recomendada: 15 a 30 minutos
	viper.SetDefault("INSIGHTS_MAX_RESULTS", 10)      // Máximo de insights retornados
	viper.SetDefault("INSIGHTS_MIN_CONFIDENCE", 0.6)  // Confiança mínima para retornar um insight

	viper.SetDefault("INSIGHTS_STALE_LEAD_DAYS", 14)          // Dias sem contato para considerar um lead parado
	viper.SetDefault("INSIGHTS_STALE_LEAD_MIN_COUNT", 3)      // Quantidade mínima de leads parados para alertar
	viper.SetDefault("INSIGHTS_STALE_LEAD_HIGH_VALUE", 10000) // Valor em risco que eleva a prioridade
	viper.SetDefault("INSIGHTS_REPLENISH_MIN_LEADS", 5)       // Pipeline com mais que isso e nenhum lead novo em 7 dias

	viper.SetDefault("INSIGHTS_OVERDUE_IMMEDIATE_AMOUNT", 10000) // Acima disso a urgência vira "immediate"
	viper.SetDefault("INSIGHTS_OVERDUE_IMPACT_PERCENT", 20)      // Impacto sobre a receita mensal que eleva a prioridade

	viper.SetDefault("INSIGHTS_TASK_BACKLOG_MIN", 3)    // Tarefas atrasadas para alertar
	viper.SetDefault("INSIGHTS_AUTOMATION_MIN_LEADS", 10) // Volume de leads que justifica automação

	viper.SetDefault("INSIGHTS_CAMPAIGN_MIN_RECIPIENTS", 50) // Amostra mínima para avaliar campanhas
	viper.SetDefault("INSIGHTS_CAMPAIGN_LOW_OPEN_RATE", 15)  // Taxa de abertura abaixo disso é baixa performance
	viper.SetDefault("INSIGHTS_CAMPAIGN_HIGH_OPEN_RATE", 35) // Taxa de abertura acima disso merece escala

	// Defaults do reaquecimento de cache
	viper.SetDefault("INTELLIGENCE_REFRESH_CRON", "*/20 * * * *") // A cada 20 minutos
	viper.SetDefault("INTELLIGENCE_REFRESH_MAX_CONCURRENT_JOBS", 4)
	viper.SetDefault("INTELLIGENCE_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// DefaultInsights retorna a configuração padrão do motor de insights, usada
// nos testes e como fallback quando o serviço é construído sem config.
func DefaultInsights() Insights {
	return Insights{
		CacheTTL:               30 * time.Minute,
		MaxInsights:            10,
		MinConfidence:          0.6,
		StaleLeadDays:          14,
		StaleLeadMinCount:      3,
		StaleLeadHighValue:     10000,
		ReplenishMinLeads:      5,
		OverdueImmediateAmount: 10000,
		OverdueImpactPercent:   20,
		TaskBacklogMin:         3,
		AutomationMinLeads:     10,
		CampaignMinRecipients:  50,
		CampaignLowOpenRate:    15,
		CampaignHighOpenRate:   35,
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
