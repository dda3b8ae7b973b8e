// Package config читает настройки процесса из переменных окружения.
// Конфигурация загружается один раз при старте и далее не меняется.
package config

import "os"

// Config хранит настройки процесса.
type Config struct {
	DatabaseDSN    string // строка подключения к PostgreSQL
	Port           string // порт HTTP-сервера
	Debug          bool   // отладочный режим (подробные логи, gin в debug)
	RetreatsAPIURL string // базовый URL внешнего каталога ретритов
}

// Load читает конфигурацию из переменных окружения.
func Load() *Config {
	cfg := &Config{
		DatabaseDSN:    os.Getenv("DATABASE_DSN"),
		Port:           getenv("API_PORT", "8080"),
		Debug:          os.Getenv("DEBUG") == "1" || os.Getenv("DEBUG") == "true",
		RetreatsAPIURL: getenv("BOOKRETREATS_API_URL", "https://api.bookretreats.com/"),
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "host=" + getenv("DB_HOST", "localhost") +
			" port=" + getenv("DB_PORT", "5432") +
			" user=" + os.Getenv("DB_USER") +
			" password=" + os.Getenv("DB_PASS") +
			" dbname=" + os.Getenv("DB_NAME") +
			" sslmode=disable"
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
