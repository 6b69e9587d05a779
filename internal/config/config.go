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
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	CRM       CRM       `mapstructure:",squash"`
	Cache     Cache     `mapstructure:",squash"`
	Redis     Redis     `mapstructure:",squash"`
	Scheduler Scheduler `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type CRM struct {
	URL              string        `mapstructure:"crm_url"`
	AccessToken      string        `mapstructure:"crm_access_token"`
	PageSize         int           `mapstructure:"crm_page_size"`
	BatchSize        int           `mapstructure:"crm_batch_size"`
	BatchConcurrency int           `mapstructure:"crm_batch_concurrency"`
	RequestTimeout   time.Duration `mapstructure:"crm_request_timeout"`
	BreakerTimeout   time.Duration `mapstructure:"crm_breaker_timeout"`
	BreakerFailures  uint32        `mapstructure:"crm_breaker_failures"`
}

// Cache controla o backend e os TTLs do cache de agregados
type Cache struct {
	Backend      string        `mapstructure:"cache_backend"` // memory, redis ou postgres
	QueryTTL     time.Duration `mapstructure:"cache_query_ttl"`
	ReferenceTTL time.Duration `mapstructure:"cache_reference_ttl"`
	SweepAge     time.Duration `mapstructure:"cache_sweep_age"`
}

type Redis struct {
	URL string `mapstructure:"redis_url"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Scheduler struct {
	SweepCron      string `mapstructure:"cache_sweep_cron"`
	SweepEnabled   bool   `mapstructure:"cache_sweep_enabled"`
	SweepOnStartup bool   `mapstructure:"cache_sweep_on_startup"`
	WarmupCron     string `mapstructure:"reference_warmup_cron"`
	WarmupEnabled  bool   `mapstructure:"reference_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CRM_URL", "https://crm.example.com/api/1.1")
	viper.SetDefault("CRM_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("CRM_PAGE_SIZE", 100)
	viper.SetDefault("CRM_BATCH_SIZE", 50)       // limite de payload das constraints "in"
	viper.SetDefault("CRM_BATCH_CONCURRENCY", 4) // lotes em paralelo no FetchByIDs
	viper.SetDefault("CRM_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("CRM_BREAKER_TIMEOUT", "30s")
	viper.SetDefault("CRM_BREAKER_FAILURES", 5)

	viper.SetDefault("CACHE_BACKEND", "memory")
	viper.SetDefault("CACHE_QUERY_TTL", "30m")
	viper.SetDefault("CACHE_REFERENCE_TTL", "24h")
	viper.SetDefault("CACHE_SWEEP_AGE", "24h") // retenção de entradas vencidas para o fallback

	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")

	viper.SetDefault("CACHE_SWEEP_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("CACHE_SWEEP_ENABLED", true)
	viper.SetDefault("CACHE_SWEEP_ON_STARTUP", true)
	viper.SetDefault("REFERENCE_WARMUP_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("REFERENCE_WARMUP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if err := config.Validate(); err != nil {
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

// Validate garante valores mínimos para os parâmetros numéricos
func (c *Config) Validate() error {
	if c.CRM.URL == "" {
		return fmt.Errorf("config: CRM_URL é obrigatório")
	}

	switch c.Cache.Backend {
	case "memory", "redis", "postgres":
	default:
		return fmt.Errorf("config: CACHE_BACKEND inválido: %s", c.Cache.Backend)
	}

	if c.CRM.PageSize <= 0 {
		c.CRM.PageSize = 100
	}
	if c.CRM.BatchSize <= 0 {
		c.CRM.BatchSize = 50
	}
	if c.CRM.BatchConcurrency <= 0 {
		c.CRM.BatchConcurrency = 1
	}
	if c.Cache.QueryTTL <= 0 {
		c.Cache.QueryTTL = 30 * time.Minute
	}
	if c.Cache.ReferenceTTL <= 0 {
		c.Cache.ReferenceTTL = 24 * time.Hour
	}
	if c.Cache.SweepAge < c.Cache.QueryTTL {
		c.Cache.SweepAge = c.Cache.QueryTTL
	}

	return nil
}

// Location retorna o fuso usado para truncar as datas dos filtros
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		logrus.Warnf("Fuso horário inválido: %s, usando UTC", c.App.Timezone)
		return time.UTC
	}
	return loc
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
