package repository

import (
	"context"

	"MoodSpot-App/internal/domain/model"
)

// RecommendationRepository は気分に合った場所と曲を提案する
// どちらのメソッドも失敗せず、必ず空でない提案を返す
type RecommendationRepository interface {
	RecommendPlaces(ctx context.Context, moodLabel string, location model.Coordinate) model.PlaceResult
	RecommendMusic(ctx context.Context, moodLabel string) model.MusicResult
}
