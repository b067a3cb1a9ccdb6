package handler

import (
	"errors"
	"net/http"
	"strings"

	"MoodSpot-App/internal/domain/helper"
	"MoodSpot-App/internal/domain/model"
	"MoodSpot-App/internal/infrastructure/location"
	"MoodSpot-App/internal/usecase"

	"github.com/gin-gonic/gin"
)

// MoodRecommendationHandler は気分ベースの提案APIのハンドラー
type MoodRecommendationHandler struct {
	recommendationUseCase usecase.MoodRecommendationUseCase
	positionCache         *location.PositionCache
}

// NewMoodRecommendationHandler は新しいMoodRecommendationHandlerインスタンスを作成
func NewMoodRecommendationHandler(recommendationUseCase usecase.MoodRecommendationUseCase, positionCache *location.PositionCache) *MoodRecommendationHandler {
	return &MoodRecommendationHandler{
		recommendationUseCase: recommendationUseCase,
		positionCache:         positionCache,
	}
}

// RegisterRoutes はAPIのルーティングを登録する
func (h *MoodRecommendationHandler) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("/health", h.GetHealth)
	api.GET("/moods", h.GetMoods)
	api.GET("/distance", h.GetDistance)
	api.POST("/recommendations", h.PostRecommendations)
}

// PostRecommendations は気分と現在地から場所と曲を提案するエンドポイント
// POST /api/recommendations
func (h *MoodRecommendationHandler) PostRecommendations(c *gin.Context) {
	var req model.RecommendationRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	// バリデーション
	if err := h.validateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": err.Error(),
		})
		return
	}

	// 端末の報告と直近の測位結果から測位機能を組み立てる
	source := h.positionCache.Wrap(req.DeviceID, location.NewReportedSource(req.Position))

	response, err := h.recommendationUseCase.Resolve(c.Request.Context(), &req, source)
	if err != nil {
		var locErr *model.LocationError
		if errors.As(err, &locErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":     string(locErr.Kind),
				"message":   locErr.Message,
				"retryable": locErr.Retryable(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to load recommendations: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// validateRequest はリクエストの詳細バリデーションを行う
func (h *MoodRecommendationHandler) validateRequest(req *model.RecommendationRequest) error {
	req.Mood = strings.TrimSpace(req.Mood)
	if req.Mood == "" {
		return &ValidationError{Field: "mood", Message: "気分は必須です"}
	}
	return nil
}

// GetMoods は選択可能な気分の一覧を返す
// GET /api/moods
func (h *MoodRecommendationHandler) GetMoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"moods": model.GetMoodPresets(),
	})
}

// GetDistance は2地点間の距離を返す
// GET /api/distance?from=lat,lng&to=lat,lng
func (h *MoodRecommendationHandler) GetDistance(c *gin.Context) {
	from, err := model.ParseCoordinate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "from: " + err.Error(),
		})
		return
	}
	to, err := model.ParseCoordinate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "to: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"from":        from,
		"to":          to,
		"distance_km": helper.HaversineDistance(from, to),
	})
}

// GetHealth はヘルスチェック
// GET /api/health
func (h *MoodRecommendationHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "MoodSpot-App",
	})
}

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
