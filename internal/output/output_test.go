package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MoodSpot-App/internal/domain/model"
)

func newTestOutput(jsonMode bool) (*Output, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return New(Options{JSON: jsonMode, NoColor: true, Stdout: stdout, Stderr: stderr}), stdout, stderr
}

func sampleResponse() *model.RecommendationResponse {
	return &model.RecommendationResponse{
		Mood:         "Sad",
		Category:     model.MoodSad,
		Location:     model.Coordinate{Latitude: 35.0116, Longitude: 135.7681},
		LocationName: "Kyoto, Japan",
		RecommendationResult: model.RecommendationResult{
			Places: []model.PlaceRecommendation{{Name: "Cozy Café", Type: "Social", Description: "Warm atmosphere", Address: "Café district"}},
			Music:  []model.SongRecommendation{{Title: "Here Comes the Sun", Artist: "The Beatles", Genre: "Rock"}},
		},
		PlacesSource: model.SourceFallback,
		MusicSource:  model.SourceBackend,
	}
}

func TestRecommendation_Text(t *testing.T) {
	out, stdout, _ := newTestOutput(false)

	require.NoError(t, out.Recommendation(sampleResponse()))

	text := stdout.String()
	assert.Contains(t, text, "Mood: Sad (sad)")
	assert.Contains(t, text, "Kyoto, Japan")
	assert.Contains(t, text, "Cozy Café")
	assert.Contains(t, text, "(offline suggestions)")
	assert.Contains(t, text, "Here Comes the Sun - The Beatles")
}

func TestRecommendation_JSON(t *testing.T) {
	out, stdout, _ := newTestOutput(true)

	require.NoError(t, out.Recommendation(sampleResponse()))

	var decoded model.RecommendationResponse
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
	assert.Equal(t, "Kyoto, Japan", decoded.LocationName)
	assert.Len(t, decoded.Places, 1)
}

func TestLocationFailure(t *testing.T) {
	locErr := model.NewLocationError(model.LocationPermissionDenied, nil)

	t.Run("テキスト", func(t *testing.T) {
		out, stdout, stderr := newTestOutput(false)
		require.NoError(t, out.LocationFailure(locErr))
		assert.Contains(t, stderr.String(), locErr.Message)
		assert.Contains(t, stdout.String(), "try again")
	})

	t.Run("JSON", func(t *testing.T) {
		out, stdout, _ := newTestOutput(true)
		require.NoError(t, out.LocationFailure(locErr))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
		assert.Equal(t, "permission_denied", decoded["error"])
		assert.Equal(t, true, decoded["retryable"])
	})
}

func TestMoodsAndDistance(t *testing.T) {
	out, stdout, _ := newTestOutput(false)

	require.NoError(t, out.Moods(model.GetMoodPresets()))
	require.NoError(t, out.Distance(model.Coordinate{Latitude: 10, Longitude: 20}, model.Coordinate{Latitude: 11, Longitude: 20}, 111.2))

	text := stdout.String()
	assert.Contains(t, text, "Unwell")
	assert.Contains(t, text, "111.2 km")
}
