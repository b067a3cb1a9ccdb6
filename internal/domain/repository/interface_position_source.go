package repository

import (
	"context"

	"MoodSpot-App/internal/domain/model"
)

// PositionSource は端末の現在地を1回だけ取得する測位機能
type PositionSource interface {
	// CurrentPosition は現在地を取得する。失敗時は*model.LocationErrorを返すことが望ましい
	CurrentPosition(ctx context.Context, opts model.PositionOptions) (*model.Position, error)
}
