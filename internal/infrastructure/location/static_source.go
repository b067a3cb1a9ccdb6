package location

import (
	"context"
	"time"

	"MoodSpot-App/internal/domain/model"
)

// StaticSource は固定の座標を返す測位機能（CLIなど端末を持たない呼び出し元向け）
type StaticSource struct {
	coordinate model.Coordinate
}

// NewStaticSource は新しいStaticSourceを作成する
func NewStaticSource(coordinate model.Coordinate) *StaticSource {
	return &StaticSource{coordinate: coordinate}
}

// CurrentPosition は固定の座標を現在時刻つきで返す
func (s *StaticSource) CurrentPosition(ctx context.Context, opts model.PositionOptions) (*model.Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &model.Position{
		Coordinate: s.coordinate,
		Timestamp:  time.Now(),
	}, nil
}
