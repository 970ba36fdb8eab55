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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	CRM             CRM             `mapstructure:",squash"`
	CRMSnapshotSync CRMSnapshotSync `mapstructure:",squash"`
	Insights        Insights        `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
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

// CRM é o sistema de agendamento de onde vêm clientes e atendimentos
type CRM struct {
	URL               string         `mapstructure:"crm_url"`
	PartnerToken      string         `mapstructure:"crm_partner_token"`
	UserToken         string         `mapstructure:"crm_user_token"`
	CompanyID         int64          `mapstructure:"crm_company_id"`
	PageSize          int            `mapstructure:"crm_page_size"`
	RequestsPerSecond float64        `mapstructure:"crm_requests_per_second"`
	RequestTimeout    time.Duration  `mapstructure:"crm_request_timeout"`
	DefaultRegion     string         `mapstructure:"crm_default_region"`
	Timezone          string         `mapstructure:"crm_timezone"`
	Location          *time.Location `mapstructure:"-"`
}

type App struct {
	LogLevel           string   `mapstructure:"log_level"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type CRMSnapshotSync struct {
	CronSchedule  string `mapstructure:"crm_snapshot_sync_cron"`
	LookbackDays  int    `mapstructure:"crm_snapshot_sync_lookback_days"`
	LookaheadDays int    `mapstructure:"crm_snapshot_sync_lookahead_days"`
	Enabled       bool   `mapstructure:"crm_snapshot_sync_enabled"`
}

type Insights struct {
	HistoryDays      int `mapstructure:"insights_history_days"`
	DefaultDaysAhead int `mapstructure:"insights_default_days_ahead"`
	DefaultLimit     int `mapstructure:"insights_default_limit"`
	MaxLimit         int `mapstructure:"insights_max_limit"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/salon")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("CRM_URL", "https://api.yclients.com/api/v1")
	viper.SetDefault("CRM_PARTNER_TOKEN", "your_partner_token")
	viper.SetDefault("CRM_USER_TOKEN", "your_user_token") // ONLY LOCAL
	viper.SetDefault("CRM_COMPANY_ID", 0)
	viper.SetDefault("CRM_PAGE_SIZE", 200)
	viper.SetDefault("CRM_REQUESTS_PER_SECOND", 5)
	viper.SetDefault("CRM_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("CRM_DEFAULT_REGION", "BR")
	viper.SetDefault("CRM_TIMEZONE", "America/Sao_Paulo")

	// Defaults para sincronização do snapshot do CRM
	viper.SetDefault("CRM_SNAPSHOT_SYNC_CRON", "0 */2 * * *") // A cada 2 horas
	viper.SetDefault("CRM_SNAPSHOT_SYNC_LOOKBACK_DAYS", 365)  // 1 ano de histórico de atendimentos
	viper.SetDefault("CRM_SNAPSHOT_SYNC_LOOKAHEAD_DAYS", 30)  // 30 dias de agenda futura
	viper.SetDefault("CRM_SNAPSHOT_SYNC_ENABLED", false)      // Habilitar sincronização do CRM

	viper.SetDefault("INSIGHTS_HISTORY_DAYS", 365)
	viper.SetDefault("INSIGHTS_DEFAULT_DAYS_AHEAD", 7)
	viper.SetDefault("INSIGHTS_DEFAULT_LIMIT", 50)
	viper.SetDefault("INSIGHTS_MAX_LIMIT", 500)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")
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

	location, err := time.LoadLocation(config.CRM.Timezone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário do CRM inválido %q: %w", config.CRM.Timezone, err)
	}
	config.CRM.Location = location

	if config.Insights.MaxLimit < config.Insights.DefaultLimit {
		config.Insights.MaxLimit = config.Insights.DefaultLimit
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
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
