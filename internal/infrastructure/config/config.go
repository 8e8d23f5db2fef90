package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Backend identifica o backing do record store
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendFile     Backend = "file"
	BackendPostgres Backend = "postgres"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Store    StoreConfig
	Database DatabaseConfig
	I18n     I18nConfig
	Logging  LoggingConfig
}

// StoreConfig configura o record store e sua latência simulada.
// WriteLatencyMS = 0 desliga a simulação; leituras usam metade do valor.
type StoreConfig struct {
	Backend        Backend
	DataDir        string
	WriteLatencyMS int
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type I18nConfig struct {
	LocalesDir      string
	DefaultLanguage string
}

type LoggingConfig struct {
	Level string
}

// Load carrega as configurações do arquivo .env (quando presente) e do
// ambiente do processo
func Load() (*Config, error) {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	backend := Backend(getEnv("STORE_BACKEND", string(BackendMemory)))
	switch backend {
	case BackendMemory, BackendFile, BackendPostgres:
	default:
		return nil, fmt.Errorf("unknown store backend: %s", backend)
	}

	config := &Config{
		Env: getEnv("ENV", "development"),
		Store: StoreConfig{
			Backend:        backend,
			DataDir:        getEnv("DATA_DIR", "./data"),
			WriteLatencyMS: getEnvInt("STORE_LATENCY_MS", 0),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnvInt("DB_PORT", 5432),
			User:        getEnv("DB_USER", "docflow"),
			Password:    getEnv("DB_PASS", ""),
			DBName:      getEnv("DB_NAME", "docflow"),
			SSLMode:     getEnv("DB_SSL_MODE", "disable"),
			MaxConns:    getEnvInt("DB_MAX_CONNS", 10),
			MinConns:    getEnvInt("DB_MIN_CONNS", 2),
			MaxIdleTime: getEnvInt("DB_MAX_IDLE_TIME", 300),
		},
		I18n: I18nConfig{
			LocalesDir:      getEnv("LOCALES_DIR", "./internal/infrastructure/i18n/locales"),
			DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "pt-BR"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
