package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"MoodSpot-App/internal/domain/model"
	"MoodSpot-App/internal/domain/repository"
)

const (
	DefaultLocationTimeout    = 15 * time.Second
	DefaultLocationMaximumAge = 60 * time.Second
)

// LocationAcquisitionService は端末から現在地を取得する
type LocationAcquisitionService interface {
	// Acquire は1回だけ測位を試みる（リトライしない）
	// 失敗時は必ず*model.LocationErrorを返す
	Acquire(ctx context.Context, source repository.PositionSource) (model.Coordinate, error)
}

type locationAcquisitionServiceImpl struct {
	timeout    time.Duration
	maximumAge time.Duration
}

// NewLocationAcquisitionService は新しいLocationAcquisitionServiceインスタンスを作成
func NewLocationAcquisitionService(timeout, maximumAge time.Duration) LocationAcquisitionService {
	if timeout <= 0 {
		timeout = DefaultLocationTimeout
	}
	if maximumAge < 0 {
		maximumAge = DefaultLocationMaximumAge
	}
	return &locationAcquisitionServiceImpl{
		timeout:    timeout,
		maximumAge: maximumAge,
	}
}

type positionResult struct {
	position *model.Position
	err      error
}

// Acquire は測位機能に問い合わせ、結果を座標またはLocationErrorに変換する
func (s *locationAcquisitionServiceImpl) Acquire(ctx context.Context, source repository.PositionSource) (model.Coordinate, error) {
	if source == nil {
		return model.Coordinate{}, model.NewLocationError(model.LocationUnsupported, nil)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := model.PositionOptions{
		EnableHighAccuracy: true,
		Timeout:            s.timeout,
		MaximumAge:         s.maximumAge,
	}

	resultChan := make(chan positionResult, 1)
	go func() {
		pos, err := source.CurrentPosition(ctx, opts)
		resultChan <- positionResult{position: pos, err: err}
	}()

	var result positionResult
	select {
	case <-ctx.Done():
		result.err = ctx.Err()
	case result = <-resultChan:
	}

	if result.err != nil {
		locErr := toLocationError(result.err)
		log.Printf("❌ 位置情報の取得に失敗: %v", locErr)
		return model.Coordinate{}, locErr
	}

	if result.position == nil {
		return model.Coordinate{}, model.NewLocationError(model.LocationPositionUnavailable, errors.New("測位結果が空です"))
	}
	if !result.position.Coordinate.IsValid() {
		return model.Coordinate{}, model.NewLocationError(model.LocationPositionUnavailable,
			fmt.Errorf("%w: %s", model.ErrOutOfRange, result.position.Coordinate))
	}

	log.Printf("📍 位置情報取得完了: %s", result.position.Coordinate)
	return result.position.Coordinate, nil
}

// toLocationError は任意のエラーを位置情報エラーの分類に変換する
func toLocationError(err error) *model.LocationError {
	var locErr *model.LocationError
	if errors.As(err, &locErr) {
		return locErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return model.NewLocationError(model.LocationTimeout, err)
	}
	return model.NewLocationError(model.LocationUnknown, err)
}
