package model

// PlaceRecommendation は気分に合わせて提案する近くの場所
type PlaceRecommendation struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Address     string `json:"address,omitempty"` // 任意
}

// SongRecommendation は気分に合わせて提案する曲
type SongRecommendation struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Genre  string `json:"genre"`
	Reason string `json:"reason,omitempty"` // 任意
}

// ResultSource は提案リストの出どころ
type ResultSource string

const (
	SourceBackend   ResultSource = "backend"   // 生成AIのJSON応答
	SourceHeuristic ResultSource = "heuristic" // 生成AIのテキスト応答を行単位で解釈
	SourceFallback  ResultSource = "fallback"  // 固定のフォールバックカタログ
)

// PlaceResult は場所の提案とその出どころ
type PlaceResult struct {
	Places []PlaceRecommendation
	Source ResultSource
}

// MusicResult は曲の提案とその出どころ
type MusicResult struct {
	Songs  []SongRecommendation
	Source ResultSource
}

// RecommendationResult は場所と曲の提案をまとめたもの
type RecommendationResult struct {
	Places []PlaceRecommendation `json:"places"`
	Music  []SongRecommendation  `json:"music"`
}

// RecommendationRequest は気分ベースの提案APIのリクエスト
type RecommendationRequest struct {
	Mood     string                `json:"mood" validate:"required"`
	DeviceID string                `json:"device_id,omitempty"` // 測位結果の再利用に使う端末識別子
	Position *DevicePositionReport `json:"position,omitempty"`
}

// RecommendationResponse は気分ベースの提案APIのレスポンス
type RecommendationResponse struct {
	RequestID    string       `json:"request_id"`
	Mood         string       `json:"mood"`
	Category     MoodCategory `json:"category"`
	Location     Coordinate   `json:"location"`
	LocationName string       `json:"location_name"`
	RecommendationResult
	PlacesSource ResultSource `json:"places_source"`
	MusicSource  ResultSource `json:"music_source"`
}
