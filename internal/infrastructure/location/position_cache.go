package location

import (
	"context"
	"log"
	"time"

	"github.com/patrickmn/go-cache"

	"MoodSpot-App/internal/domain/model"
	"MoodSpot-App/internal/domain/repository"
)

// PositionCache は端末ごとの直近の測位結果を保持し、最大経過時間以内なら再利用する
type PositionCache struct {
	cache      *cache.Cache
	maximumAge time.Duration
}

// NewPositionCache は新しいPositionCacheを作成する
func NewPositionCache(maximumAge time.Duration) *PositionCache {
	return &PositionCache{
		cache:      cache.New(maximumAge, 2*maximumAge),
		maximumAge: maximumAge,
	}
}

// Wrap は端末IDに紐づくキャッシュを挟んだPositionSourceを返す
// deviceIDが空ならキャッシュせずnextをそのまま返す
// 端末の報告が無い場合や失敗した場合はキャッシュを使わない
func (c *PositionCache) Wrap(deviceID string, next repository.PositionSource) repository.PositionSource {
	if deviceID == "" || next == nil {
		return next
	}
	return &cachedSource{parent: c, deviceID: deviceID, next: next}
}

type cachedSource struct {
	parent   *PositionCache
	deviceID string
	next     repository.PositionSource
}

// CurrentPosition は端末に問い合わせ、報告された測位結果が最大経過時間より古い場合のみ
// 同じ端末のより新しいキャッシュ済みの測位結果で置き換える
func (s *cachedSource) CurrentPosition(ctx context.Context, opts model.PositionOptions) (*model.Position, error) {
	pos, err := s.next.CurrentPosition(ctx, opts)
	if err != nil {
		return nil, err
	}
	if pos == nil || !pos.Coordinate.IsValid() {
		return pos, nil
	}

	maximumAge := opts.MaximumAge
	if maximumAge <= 0 || maximumAge > s.parent.maximumAge {
		maximumAge = s.parent.maximumAge
	}

	if time.Since(pos.Timestamp) <= maximumAge {
		s.parent.cache.Set(s.deviceID, *pos, cache.DefaultExpiration)
		return pos, nil
	}

	if cached, found := s.parent.cache.Get(s.deviceID); found {
		fresh := cached.(model.Position)
		if time.Since(fresh.Timestamp) <= maximumAge && fresh.Timestamp.After(pos.Timestamp) {
			log.Printf("♻️ 古い測位結果の代わりにキャッシュ済みの位置情報を使用 (端末: %s)", s.deviceID)
			return &fresh, nil
		}
	}
	return pos, nil
}
