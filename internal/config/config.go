package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"MoodSpot-App/internal/domain/service"
	"MoodSpot-App/internal/infrastructure/ai"
	"MoodSpot-App/internal/infrastructure/geocoding"
)

// Config はサーバーとCLIで共有する設定値
type Config struct {
	Port string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	NominatimBaseURL   string
	NominatimUserAgent string
	GeocodeTimeout     time.Duration

	LocationTimeout    time.Duration
	LocationMaximumAge time.Duration

	GinMode string
}

// Load は.envファイルと環境変数から設定を読み込む
// .envファイルが無い場合は環境変数のみを使用する
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .envファイルが見つかりません。システム環境変数を使用します")
	}
	return FromEnv()
}

// FromEnv は環境変数から設定を組み立てる
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnv("GEMINI_MODEL", ai.DefaultGeminiModel),
		GeminiBaseURL:      getEnv("GEMINI_BASE_URL", ai.DefaultGeminiBaseURL),
		NominatimBaseURL:   getEnv("NOMINATIM_BASE_URL", geocoding.DefaultNominatimBaseURL),
		NominatimUserAgent: getEnv("NOMINATIM_USER_AGENT", geocoding.DefaultUserAgent),
		GinMode:            os.Getenv("GIN_MODE"),
	}

	var err error
	if cfg.GeocodeTimeout, err = getDuration("GEOCODE_TIMEOUT", geocoding.DefaultGeocodeTimeout); err != nil {
		return nil, err
	}
	if cfg.LocationTimeout, err = getDuration("LOCATION_TIMEOUT", service.DefaultLocationTimeout); err != nil {
		return nil, err
	}
	if cfg.LocationMaximumAge, err = getDuration("LOCATION_MAXIMUM_AGE", service.DefaultLocationMaximumAge); err != nil {
		return nil, err
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("⚠️ GEMINI_API_KEYが設定されていません。提案はフォールバックカタログから返します")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%sの形式が不正です (%q): %w", key, v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%sは正の値である必要があります (%q)", key, v)
	}
	return d, nil
}
