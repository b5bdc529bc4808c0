package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Erros de configuração
var (
	ErrMissingJWTSecret   = errors.New("JWT_SECRET não configurado")
	ErrInvalidJWTDuration = errors.New("JWT_EXPIRES_IN inválido")
	ErrMissingDatabaseURL = errors.New("configuração do banco de dados ausente")
)

// Ambientes suportados
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DefaultSessionValidity é a validade padrão da sessão (7 dias)
const DefaultSessionValidity = 7 * 24 * time.Hour

// Config contém as configurações da aplicação
type Config struct {
	Env            string
	ServerAddr     string
	LogLevel       string
	MigrateOnStart bool

	Database DatabaseConfig
	Auth     AuthConfig

	// RedisURL habilita a revogação de tokens quando definido
	RedisURL string

	CORSAllowedOrigins []string

	Business BusinessConfig
}

// DatabaseConfig contém as configurações de conexão com o PostgreSQL
type DatabaseConfig struct {
	URL             string
	MaxConnections  int32
	MinConnections  int32
	MaxConnLifetime time.Duration
}

// AuthConfig contém as configurações de sessão
type AuthConfig struct {
	JWTSecret       string
	SessionValidity time.Duration
}

// BusinessConfig contém os dados de contato exibidos no cardápio público
type BusinessConfig struct {
	Name               string
	WhatsAppNumber     string
	DisplayPhoneNumber string
	Street             string
	Neighborhood       string
	CityState          string
	WeekdayHours       string
	WeekendHours       string
}

// WhatsAppLink retorna o link de conversa do WhatsApp
func (b BusinessConfig) WhatsAppLink() string {
	return "https://wa.me/" + b.WhatsAppNumber
}

// IsProduction indica se a aplicação roda em produção
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Load lê a configuração das variáveis de ambiente.
// O .env, quando existir, deve ser carregado antes (godotenv) pelo main.
func Load() (*Config, error) {
	validity, err := ParseSessionValidity(getEnv("JWT_EXPIRES_IN", "7d"))
	if err != nil {
		return nil, err
	}

	migrateOnStart, _ := strconv.ParseBool(getEnv("MIGRATE_ON_START", "false"))

	cfg := &Config{
		Env:            getEnv("APP_ENV", EnvDevelopment),
		ServerAddr:     getEnv("SERVER_ADDR", ":8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MigrateOnStart: migrateOnStart,
		Database:       LoadDatabase(),
		Auth: AuthConfig{
			JWTSecret:       os.Getenv("JWT_SECRET"),
			SessionValidity: validity,
		},
		RedisURL:           os.Getenv("REDIS_URL"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		Business: BusinessConfig{
			Name:               getEnv("BUSINESS_NAME", "Gordo Salgados"),
			WhatsAppNumber:     getEnv("BUSINESS_WHATSAPP", "+5586998532928"),
			DisplayPhoneNumber: getEnv("BUSINESS_PHONE", "(86) 99853-2928"),
			Street:             getEnv("BUSINESS_STREET", "Rua do Pé de Pequi, 500"),
			Neighborhood:       getEnv("BUSINESS_NEIGHBORHOOD", "Santa Luzia"),
			CityState:          getEnv("BUSINESS_CITY_STATE", "Água Branca - PI"),
			WeekdayHours:       getEnv("BUSINESS_WEEKDAY_HOURS", "Seg a Sáb: 07h às 18h"),
			WeekendHours:       getEnv("BUSINESS_WEEKEND_HOURS", "Dom: 8h às 12h"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate verifica os campos obrigatórios.
// Não existe segredo JWT padrão: sem JWT_SECRET a aplicação não sobe.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	if c.Auth.SessionValidity <= 0 {
		return ErrInvalidJWTDuration
	}
	if c.Database.URL == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

// LoadDatabase lê apenas a configuração do banco; usado também pelas ferramentas de linha de comando
func LoadDatabase() DatabaseConfig {
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNECTIONS", "10"))
	minConns, _ := strconv.Atoi(getEnv("DB_MIN_CONNECTIONS", "1"))
	maxLifetime, _ := strconv.Atoi(getEnv("DB_MAX_LIFETIME", "3600"))

	return DatabaseConfig{
		URL:             DatabaseURL(),
		MaxConnections:  int32(maxConns),
		MinConnections:  int32(minConns),
		MaxConnLifetime: time.Duration(maxLifetime) * time.Second,
	}
}

// DatabaseURL retorna DATABASE_URL ou monta a URL a partir das variáveis individuais
func DatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "gordo_salgados"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

// ParseSessionValidity aceita durações do Go ("168h") e em dias ("7d")
func ParseSessionValidity(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, ErrInvalidJWTDuration
	}

	if strings.HasSuffix(value, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(value, "d"))
		if err != nil || days <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidJWTDuration, value)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidJWTDuration, value)
	}
	return d, nil
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
