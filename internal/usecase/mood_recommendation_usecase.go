package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"MoodSpot-App/internal/domain/model"
	"MoodSpot-App/internal/domain/repository"
	"MoodSpot-App/internal/domain/service"
)

type MoodRecommendationUseCase interface {
	// Resolve は気分と現在地から場所と曲の提案を生成する
	// 位置情報が取得できなかった場合のみ*model.LocationErrorを返し、生成AIは呼び出さない
	Resolve(ctx context.Context, req *model.RecommendationRequest, source repository.PositionSource) (*model.RecommendationResponse, error)
}

// moodRecommendationUseCaseImpl はMoodRecommendationUseCaseの実装
type moodRecommendationUseCaseImpl struct {
	locationService          service.LocationAcquisitionService
	reverseGeocoder          repository.ReverseGeocoder
	recommendationRepository repository.RecommendationRepository
}

// NewMoodRecommendationUseCase は新しいMoodRecommendationUseCaseインスタンスを作成
func NewMoodRecommendationUseCase(
	locationService service.LocationAcquisitionService,
	geocoder repository.ReverseGeocoder,
	recommendationRepo repository.RecommendationRepository,
) MoodRecommendationUseCase {
	return &moodRecommendationUseCaseImpl{
		locationService:          locationService,
		reverseGeocoder:          geocoder,
		recommendationRepository: recommendationRepo,
	}
}

// Resolve は気分と現在地から場所と曲の提案を生成する
func (u *moodRecommendationUseCaseImpl) Resolve(ctx context.Context, req *model.RecommendationRequest, source repository.PositionSource) (*model.RecommendationResponse, error) {
	requestID := uuid.New().String()
	category := model.ClassifyMood(req.Mood)
	startTime := time.Now()

	log.Printf("🚀 提案生成開始 (ID: %s, 気分: %s, カテゴリ: %s)", requestID, req.Mood, category)

	// Step 1: 現在地を取得（失敗した場合はここで終了）
	location, err := u.locationService.Acquire(ctx, source)
	if err != nil {
		return nil, err
	}

	// Step 2: 地名・場所・曲を並行取得
	var (
		wg           sync.WaitGroup
		locationName string
		places       model.PlaceResult
		music        model.MusicResult
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		locationName = u.reverseGeocoder.DescribeLocation(ctx, location)
	}()
	go func() {
		defer wg.Done()
		places = u.recommendationRepository.RecommendPlaces(ctx, req.Mood, location)
	}()
	go func() {
		defer wg.Done()
		music = u.recommendationRepository.RecommendMusic(ctx, req.Mood)
	}()
	wg.Wait()

	// 実装が空の結果を返した場合もカタログで補う
	if len(places.Places) == 0 {
		places = model.PlaceResult{Places: service.FallbackPlaces(category), Source: model.SourceFallback}
	}
	if len(music.Songs) == 0 {
		music = model.MusicResult{Songs: service.FallbackMusic(category), Source: model.SourceFallback}
	}

	log.Printf("🎉 提案生成完了 (ID: %s, 場所: %d件[%s], 曲: %d件[%s], %v)",
		requestID, len(places.Places), places.Source, len(music.Songs), music.Source, time.Since(startTime))

	return &model.RecommendationResponse{
		RequestID:    requestID,
		Mood:         req.Mood,
		Category:     category,
		Location:     location,
		LocationName: locationName,
		RecommendationResult: model.RecommendationResult{
			Places: places.Places,
			Music:  music.Songs,
		},
		PlacesSource: places.Source,
		MusicSource:  music.Source,
	}, nil
}
