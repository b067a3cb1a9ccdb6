package service

import "MoodSpot-App/internal/domain/model"

// fallbackPlaces は生成AIが使えないときに返す気分カテゴリ別の場所一覧
var fallbackPlaces = map[model.MoodCategory][]model.PlaceRecommendation{
	model.MoodHappy: {
		{Name: "Local Theatre", Type: "Entertainment", Description: "Perfect for enhancing your joyful mood", Address: "Nearby entertainment district"},
		{Name: "Popular Pub", Type: "Social", Description: "Great place to celebrate and socialize", Address: "City center"},
		{Name: "Party Club", Type: "Entertainment", Description: "Energetic atmosphere to keep the good vibes going", Address: "Nightlife area"},
		{Name: "Entertainment Zone", Type: "Entertainment", Description: "Various activities to enjoy your happy mood", Address: "Downtown"},
	},
	model.MoodDisturbed: {
		{Name: "Peaceful Temple", Type: "Spiritual", Description: "Calm environment to find inner peace", Address: "Religious district"},
		{Name: "Meditation Center", Type: "Wellness", Description: "Professional guidance for stress relief", Address: "Wellness area"},
		{Name: "Quiet Park", Type: "Nature", Description: "Natural setting to clear your mind", Address: "City park"},
		{Name: "Lakeside Spot", Type: "Nature", Description: "Serene water view for relaxation", Address: "Waterfront area"},
	},
	model.MoodSad: {
		{Name: "Beautiful Park", Type: "Nature", Description: "Nature's beauty to lift your spirits", Address: "City park"},
		{Name: "Temple", Type: "Spiritual", Description: "Spiritual peace and positive energy", Address: "Religious area"},
		{Name: "Cozy Café", Type: "Social", Description: "Warm atmosphere and good company", Address: "Café district"},
		{Name: "Nature Trail", Type: "Nature", Description: "Fresh air and natural surroundings", Address: "Outdoor area"},
	},
	model.MoodUnwell: {
		{Name: "Nearby Hospital", Type: "Medical", Description: "Emergency medical care available", Address: "Medical district"},
		{Name: "Local Clinic", Type: "Medical", Description: "Quick medical consultation", Address: "Healthcare area"},
		{Name: "Pharmacy", Type: "Medical", Description: "Medications and health supplies", Address: "Commercial area"},
		{Name: "Urgent Care Center", Type: "Medical", Description: "Immediate medical attention", Address: "Medical facility"},
	},
	model.MoodNeutral: {
		{Name: "Local Park", Type: "General", Description: "A peaceful place to reflect", Address: "Nearby"},
	},
}

// fallbackMusic は生成AIが使えないときに返す気分カテゴリ別の曲一覧
// 体調不良には専用の一覧が無く、ニュートラルの一覧を使う
var fallbackMusic = map[model.MoodCategory][]model.SongRecommendation{
	model.MoodHappy: {
		{Title: "Happy", Artist: "Pharrell Williams", Genre: "Pop", Reason: "Upbeat and energetic"},
		{Title: "Can't Stop the Feeling!", Artist: "Justin Timberlake", Genre: "Pop", Reason: "Dance-worthy and joyful"},
		{Title: "Good Vibrations", Artist: "The Beach Boys", Genre: "Pop Rock", Reason: "Classic feel-good song"},
		{Title: "Walking on Sunshine", Artist: "Katrina & The Waves", Genre: "Pop Rock", Reason: "Energetic and uplifting"},
	},
	model.MoodDisturbed: {
		{Title: "Weightless", Artist: "Marconi Union", Genre: "Ambient", Reason: "Scientifically proven to reduce anxiety"},
		{Title: "Meditation Music", Artist: "Various", Genre: "Ambient", Reason: "Calming and focus-enhancing"},
		{Title: "Clair de Lune", Artist: "Claude Debussy", Genre: "Classical", Reason: "Peaceful and soothing"},
		{Title: "Gymnopédie No. 1", Artist: "Erik Satie", Genre: "Classical", Reason: "Calming and meditative"},
	},
	model.MoodSad: {
		{Title: "Here Comes the Sun", Artist: "The Beatles", Genre: "Rock", Reason: "Uplifting and hopeful"},
		{Title: "Three Little Birds", Artist: "Bob Marley", Genre: "Reggae", Reason: "Positive and reassuring"},
		{Title: "Don't Worry Be Happy", Artist: "Bobby McFerrin", Genre: "Jazz", Reason: "Cheerful and light-hearted"},
		{Title: "What a Wonderful World", Artist: "Louis Armstrong", Genre: "Jazz", Reason: "Appreciative and uplifting"},
	},
	model.MoodNeutral: {
		{Title: "Peaceful Melody", Artist: "Various", Genre: "Ambient", Reason: "General relaxation"},
	},
}

// FallbackPlaces はカテゴリに対応する固定の場所一覧を返す
// 同じカテゴリには常に同じ内容を返し、空にはならない
func FallbackPlaces(category model.MoodCategory) []model.PlaceRecommendation {
	places, ok := fallbackPlaces[category]
	if !ok {
		places = fallbackPlaces[model.MoodNeutral]
	}
	result := make([]model.PlaceRecommendation, len(places))
	copy(result, places)
	return result
}

// FallbackMusic はカテゴリに対応する固定の曲一覧を返す
func FallbackMusic(category model.MoodCategory) []model.SongRecommendation {
	songs, ok := fallbackMusic[category]
	if !ok {
		songs = fallbackMusic[model.MoodNeutral]
	}
	result := make([]model.SongRecommendation, len(songs))
	copy(result, songs)
	return result
}
