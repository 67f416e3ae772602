/* 환경 변수 기반 설정 로딩 */

package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	DBPath          string
	PredictorURL    string
	AdminPassphrase string
}

// .env가 있으면 읽고, 없으면 프로세스 환경 변수만 사용함
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("config.Load(): no .env file, using process environment")
	}

	cfg := &Config{
		Addr:            getEnv("SERVER_ADDR", ":8080"),
		DBPath:          getEnv("DB_PATH", "./insurance_predictor.db"),
		PredictorURL:    getEnv("PREDICTOR_URL", "http://localhost:8000"),
		AdminPassphrase: os.Getenv("ADMIN_PASSPHRASE"),
	}
	if cfg.AdminPassphrase == "" {
		cfg.AdminPassphrase = "admin123" // 기본값 (권장하지 않음)
		log.Println("Warning: ADMIN_PASSPHRASE environment variable is not set. Using default passphrase.")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
