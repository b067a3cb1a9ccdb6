package service

import (
	"testing"

	"MoodSpot-App/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestFallbackCatalog_NonEmptyAndDeterministic(t *testing.T) {
	for _, category := range model.GetAllMoodCategories() {
		t.Run(string(category), func(t *testing.T) {
			places := FallbackPlaces(category)
			music := FallbackMusic(category)

			assert.NotEmpty(t, places)
			assert.NotEmpty(t, music)
			assert.Equal(t, places, FallbackPlaces(category))
			assert.Equal(t, music, FallbackMusic(category))
		})
	}
}

func TestFallbackCatalog_ForMoodLabels(t *testing.T) {
	for _, preset := range model.GetMoodPresets() {
		category := model.ClassifyMood(preset.Label)
		assert.NotEmpty(t, FallbackPlaces(category), preset.Label)
		assert.NotEmpty(t, FallbackMusic(category), preset.Label)
	}
}

func TestFallbackCatalog_CategoryAppropriate(t *testing.T) {
	for _, p := range FallbackPlaces(model.MoodUnwell) {
		assert.Equal(t, "Medical", p.Type)
	}
	assert.Equal(t, "Happy", FallbackMusic(model.MoodHappy)[0].Title)
}

func TestFallbackCatalog_ReturnsCopies(t *testing.T) {
	places := FallbackPlaces(model.MoodSad)
	places[0].Name = "変更済み"
	assert.Equal(t, "Beautiful Park", FallbackPlaces(model.MoodSad)[0].Name)

	songs := FallbackMusic(model.MoodSad)
	songs[0].Title = "変更済み"
	assert.Equal(t, "Here Comes the Sun", FallbackMusic(model.MoodSad)[0].Title)
}

func TestFallbackCatalog_UnknownCategoryUsesNeutral(t *testing.T) {
	assert.Equal(t, FallbackPlaces(model.MoodNeutral), FallbackPlaces(model.MoodCategory("bogus")))
	assert.Equal(t, FallbackMusic(model.MoodNeutral), FallbackMusic(model.MoodCategory("bogus")))
}

func TestFallbackCatalog_UnwellMusicUsesNeutral(t *testing.T) {
	assert.Equal(t, FallbackMusic(model.MoodNeutral), FallbackMusic(model.MoodUnwell))
	assert.Equal(t, "Peaceful Melody", FallbackMusic(model.MoodUnwell)[0].Title)
}
