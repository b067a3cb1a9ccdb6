package repository

import (
	"context"

	"MoodSpot-App/internal/domain/model"
)

// ReverseGeocoder は座標を人が読める地名に変換する
type ReverseGeocoder interface {
	// DescribeLocation は地名を返す。失敗時も座標文字列を返しエラーにはしない
	DescribeLocation(ctx context.Context, location model.Coordinate) string
}
