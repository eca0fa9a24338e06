package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	StoreBackend string `mapstructure:"STORE_BACKEND"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DBMaxConns   int32  `mapstructure:"DB_MAX_CONNS"`
	DBMinConns   int32  `mapstructure:"DB_MIN_CONNS"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`
	TablePrefix        string `mapstructure:"DYNAMODB_TABLE_PREFIX"`

	ResultSequence        string `mapstructure:"RESULT_SEQUENCE"`
	ResultSequencePrefix  string `mapstructure:"RESULT_SEQUENCE_PREFIX"`
	ResultSequencePadding int    `mapstructure:"RESULT_SEQUENCE_PADDING"`

	AuthSigningKey string `mapstructure:"AUTH_SIGNING_KEY"`
	AuthIssuer     string `mapstructure:"AUTH_ISSUER"`
	ManagerRoles   string `mapstructure:"MANAGER_ROLES"`

	MercadoPagoAccessToken string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoPayerEmail  string `mapstructure:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	PaymentGatewayMock     bool   `mapstructure:"PAYMENT_GATEWAY_MOCK"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL",
	"STORE_BACKEND", "DATABASE_URL", "DB_MAX_CONNS", "DB_MIN_CONNS",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT", "DYNAMODB_TABLE_PREFIX",
	"RESULT_SEQUENCE", "RESULT_SEQUENCE_PREFIX", "RESULT_SEQUENCE_PADDING",
	"AUTH_SIGNING_KEY", "AUTH_ISSUER", "MANAGER_ROLES",
	"MERCADOPAGO_ACCESS_TOKEN", "MERCADOPAGO_TEST_PAYER_EMAIL", "PAYMENT_GATEWAY_MOCK",
	"METRICS_ENABLED",
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_BACKEND", StoreDynamoDB)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("RESULT_SEQUENCE", "test.result")
	v.SetDefault("RESULT_SEQUENCE_PREFIX", "LAB")
	v.SetDefault("RESULT_SEQUENCE_PADDING", 5)
	v.SetDefault("AUTH_ISSUER", "lab-management")
	v.SetDefault("MANAGER_ROLES", "lab_manager,admin")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", false)
	v.SetDefault("METRICS_ENABLED", true)

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// a missing .env is fine
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks the combinations that cannot run.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreDynamoDB, StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_BACKEND=%s", StorePostgres)
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be %q, %q or %q, got %q", StoreDynamoDB, StorePostgres, StoreMemory, c.StoreBackend)
	}
	if strings.TrimSpace(c.ResultSequence) == "" {
		return fmt.Errorf("RESULT_SEQUENCE must not be empty")
	}
	if c.ResultSequencePadding < 0 || c.ResultSequencePadding > 12 {
		return fmt.Errorf("RESULT_SEQUENCE_PADDING must be between 0 and 12, got %d", c.ResultSequencePadding)
	}
	if !c.IsDev() && c.AuthSigningKey == "" {
		return fmt.Errorf("AUTH_SIGNING_KEY is required outside development (ENV=%q)", c.Env)
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	return nil
}

// ManagerRoleList splits MANAGER_ROLES into trimmed role names.
func (c *Config) ManagerRoleList() []string {
	var roles []string
	for _, r := range strings.Split(c.ManagerRoles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}
