package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"MoodSpot-App/internal/config"
	"MoodSpot-App/internal/domain/service"
	"MoodSpot-App/internal/handler"
	"MoodSpot-App/internal/infrastructure/ai"
	"MoodSpot-App/internal/infrastructure/geocoding"
	"MoodSpot-App/internal/infrastructure/location"
	"MoodSpot-App/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// インフラ層の初期化
	geminiClient := ai.NewGeminiClientWithBaseURL(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
	recommendationRepo := ai.NewGeminiRecommendationRepository(geminiClient)
	geocoder := geocoding.NewNominatimGeocoder(cfg.NominatimBaseURL, cfg.NominatimUserAgent, cfg.GeocodeTimeout)
	positionCache := location.NewPositionCache(cfg.LocationMaximumAge)

	// ドメイン層・ユースケース層の初期化
	locationService := service.NewLocationAcquisitionService(cfg.LocationTimeout, cfg.LocationMaximumAge)
	recommendationUseCase := usecase.NewMoodRecommendationUseCase(locationService, geocoder, recommendationRepo)
	recommendationHandler := handler.NewMoodRecommendationHandler(recommendationUseCase, positionCache)

	router := gin.Default()
	recommendationHandler.RegisterRoutes(router)

	log.Printf("🚀 MoodSpot-App server starting on :%s (model: %s)", cfg.Port, cfg.GeminiModel)
	log.Fatal(router.Run(":" + cfg.Port))
}
