package ai

import (
	"context"
	"fmt"
	"log"

	"MoodSpot-App/internal/domain/model"
	"MoodSpot-App/internal/domain/repository"
	"MoodSpot-App/internal/domain/service"
)

// geminiRecommendationRepository は生成AIを使用してRecommendationRepositoryを実装
type geminiRecommendationRepository struct {
	generator TextGenerator
}

// NewGeminiRecommendationRepository は新しいgeminiRecommendationRepositoryインスタンスを作成
func NewGeminiRecommendationRepository(generator TextGenerator) repository.RecommendationRepository {
	return &geminiRecommendationRepository{
		generator: generator,
	}
}

// RecommendPlaces は場所の提案を返す。生成AIが使えない場合はフォールバックカタログを返す
func (g *geminiRecommendationRepository) RecommendPlaces(ctx context.Context, moodLabel string, location model.Coordinate) model.PlaceResult {
	result, err := g.PlacesFromBackend(ctx, moodLabel, location)
	if err != nil {
		log.Printf("⚠️ 場所の提案生成に失敗、フォールバック使用 (気分: %s): %v", moodLabel, err)
		return model.PlaceResult{
			Places: service.FallbackPlaces(model.ClassifyMood(moodLabel)),
			Source: model.SourceFallback,
		}
	}

	log.Printf("✅ 場所の提案生成完了: %d件 (%s)", len(result.Places), result.Source)
	return result
}

// RecommendMusic は曲の提案を返す。生成AIが使えない場合はフォールバックカタログを返す
func (g *geminiRecommendationRepository) RecommendMusic(ctx context.Context, moodLabel string) model.MusicResult {
	result, err := g.MusicFromBackend(ctx, moodLabel)
	if err != nil {
		log.Printf("⚠️ 曲の提案生成に失敗、フォールバック使用 (気分: %s): %v", moodLabel, err)
		return model.MusicResult{
			Songs:  service.FallbackMusic(model.ClassifyMood(moodLabel)),
			Source: model.SourceFallback,
		}
	}

	log.Printf("✅ 曲の提案生成完了: %d件", len(result.Songs))
	return result
}

// PlacesFromBackend は生成AIだけを使って場所の提案を取得する（フォールバックしない）
func (g *geminiRecommendationRepository) PlacesFromBackend(ctx context.Context, moodLabel string, location model.Coordinate) (model.PlaceResult, error) {
	log.Printf("🤖 Gemini APIで場所の提案を生成中... (気分: %s)", moodLabel)

	text, err := g.generator.GenerateContent(ctx, buildPlacesPrompt(moodLabel, location))
	if err != nil {
		return model.PlaceResult{}, fmt.Errorf("Gemini API呼び出しエラー: %w", err)
	}

	places, source := service.ExtractPlaces(text, moodLabel)
	if len(places) == 0 {
		return model.PlaceResult{}, fmt.Errorf("%w: 場所の提案を取り出せませんでした", model.ErrMalformedResponse)
	}
	return model.PlaceResult{Places: places, Source: source}, nil
}

// MusicFromBackend は生成AIだけを使って曲の提案を取得する（フォールバックしない）
func (g *geminiRecommendationRepository) MusicFromBackend(ctx context.Context, moodLabel string) (model.MusicResult, error) {
	log.Printf("🤖 Gemini APIで曲の提案を生成中... (気分: %s)", moodLabel)

	text, err := g.generator.GenerateContent(ctx, buildMusicPrompt(moodLabel))
	if err != nil {
		return model.MusicResult{}, fmt.Errorf("Gemini API呼び出しエラー: %w", err)
	}

	songs := service.ExtractSongs(text)
	if len(songs) == 0 {
		return model.MusicResult{}, fmt.Errorf("%w: 曲の提案を取り出せませんでした", model.ErrMalformedResponse)
	}
	return model.MusicResult{Songs: songs, Source: model.SourceBackend}, nil
}

// buildPlacesPrompt は場所の提案用プロンプトを構築
func buildPlacesPrompt(moodLabel string, location model.Coordinate) string {
	return fmt.Sprintf(`Based on the user's current mood: "%s" and their location (latitude: %f, longitude: %f), recommend nearby places that would help improve or match their emotional state.

For %s mood, suggest appropriate places. Return the response as a JSON array with the following structure:
[
  {
    "name": "Place Name",
    "type": "Place Type",
    "description": "Why this place is recommended",
    "address": "Approximate address or area"
  }
]

Return only the JSON array, no additional text.`,
		moodLabel,
		location.Latitude,
		location.Longitude,
		moodLabel)
}

// buildMusicPrompt は曲の提案用プロンプトを構築
func buildMusicPrompt(moodLabel string) string {
	return fmt.Sprintf(`Based on the user's current mood: "%s", recommend 5-8 songs that would help improve or match their emotional state.

Return the response as a JSON array with the following structure:
[
  {
    "title": "Song Title",
    "artist": "Artist Name",
    "genre": "Music Genre",
    "reason": "Why this song is recommended for this mood"
  }
]

Return only the JSON array, no additional text.`, moodLabel)
}
