package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StorageDriverFile     = "file"
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Storage          Storage          `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Currency         Currency         `mapstructure:",squash"`
	Reporting        Reporting        `mapstructure:",squash"`
	Inventory        Inventory        `mapstructure:",squash"`
	DataQualityAudit DataQualityAudit `mapstructure:",squash"`
}

type App struct {
	LogLevel       string `mapstructure:"log_level"`
	SeedSampleData bool   `mapstructure:"seed_sample_data"`
}

type Server struct {
	Host                 string   `mapstructure:"host"`
	Port                 string   `mapstructure:"port"`
	CorsAllowedOrigins   []string `mapstructure:"cors_allowed_origins"`
	RateLimitRPS         float64  `mapstructure:"rate_limit_rps"`
	RateLimitBurst       int      `mapstructure:"rate_limit_burst"`
	ExportRateLimitRPS   float64  `mapstructure:"export_rate_limit_rps"`
	ExportRateLimitBurst int      `mapstructure:"export_rate_limit_burst"`
	TrustedProxies       []string `mapstructure:"trusted_proxies"` // IPs ou CIDRs cujo X-Forwarded-For é aceito
}

type Storage struct {
	Driver        string `mapstructure:"storage_driver"`
	SalesFile     string `mapstructure:"sales_file"`
	InventoryFile string `mapstructure:"inventory_file"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Currency guarda as cotações em unidades da moeda base (NGN) por unidade estrangeira
type Currency struct {
	RateUSD decimal.Decimal `mapstructure:"currency_rate_usd"`
	RateEUR decimal.Decimal `mapstructure:"currency_rate_eur"`
	RateGBP decimal.Decimal `mapstructure:"currency_rate_gbp"`
}

type Reporting struct {
	UnknownDatePolicy string `mapstructure:"unknown_date_policy"`
}

type Inventory struct {
	LowStockThreshold int `mapstructure:"low_stock_threshold"`
}

type DataQualityAudit struct {
	CronSchedule string `mapstructure:"data_quality_audit_cron"`
	Enabled      bool   `mapstructure:"data_quality_audit_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("SEED_SAMPLE_DATA", false)

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("RATE_LIMIT_RPS", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 30)
	viper.SetDefault("EXPORT_RATE_LIMIT_RPS", 0.2) // Uma exportação a cada 5 segundos
	viper.SetDefault("EXPORT_RATE_LIMIT_BURST", 2)
	viper.SetDefault("TRUSTED_PROXIES", "")

	viper.SetDefault("STORAGE_DRIVER", StorageDriverFile)
	viper.SetDefault("SALES_FILE", "data/salesData.json")
	viper.SetDefault("INVENTORY_FILE", "data/inventoryData.json")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ledger?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CURRENCY_RATE_USD", "1600")
	viper.SetDefault("CURRENCY_RATE_EUR", "1750")
	viper.SetDefault("CURRENCY_RATE_GBP", "2050")

	viper.SetDefault("UNKNOWN_DATE_POLICY", "exclude")
	viper.SetDefault("LOW_STOCK_THRESHOLD", 2)

	viper.SetDefault("DATA_QUALITY_AUDIT_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("DATA_QUALITY_AUDIT_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			StringToDecimalHookFunc(),
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

// Validate verifica as combinações de configuração que impedem a aplicação de subir
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverFile, StorageDriverMemory, StorageDriverPostgres:
	default:
		return fmt.Errorf("config: STORAGE_DRIVER inválido: %q", c.Storage.Driver)
	}

	if c.Storage.Driver == StorageDriverFile && (c.Storage.SalesFile == "" || c.Storage.InventoryFile == "") {
		return fmt.Errorf("config: SALES_FILE e INVENTORY_FILE são obrigatórios para o driver file")
	}

	if c.Inventory.LowStockThreshold < 0 {
		return fmt.Errorf("config: LOW_STOCK_THRESHOLD não pode ser negativo")
	}

	return nil
}

// StringToDecimalHookFunc converte valores de texto ou numéricos em decimal.Decimal
func StringToDecimalHookFunc() mapstructure.DecodeHookFuncType {
	decimalType := reflect.TypeOf(decimal.Decimal{})

	return func(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != decimalType {
			return data, nil
		}

		switch v := data.(type) {
		case decimal.Decimal:
			return v, nil
		case string:
			return decimal.NewFromString(strings.TrimSpace(v))
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		case float64:
			return decimal.NewFromFloat(v), nil
		}

		return nil, fmt.Errorf("config: valor decimal inválido: %v", data)
	}
}

// loadEnvFile procura um arquivo .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
