package location

import (
	"context"
	"testing"
	"time"

	"MoodSpot-App/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kyoto = model.Coordinate{Latitude: 35.0116, Longitude: 135.7681}

func defaultOpts() model.PositionOptions {
	return model.PositionOptions{EnableHighAccuracy: true, Timeout: 15 * time.Second, MaximumAge: time.Minute}
}

func requireKind(t *testing.T, err error, kind model.LocationErrorKind) {
	t.Helper()
	var locErr *model.LocationError
	require.ErrorAs(t, err, &locErr)
	assert.Equal(t, kind, locErr.Kind)
}

func TestReportedSource(t *testing.T) {
	t.Run("報告なしはnil", func(t *testing.T) {
		assert.Nil(t, NewReportedSource(nil))
	})

	t.Run("座標あり", func(t *testing.T) {
		ts := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
		source := NewReportedSource(&model.DevicePositionReport{
			Coords:          &kyoto,
			Accuracy:        12.5,
			TimestampMillis: ts.UnixMilli(),
		})

		pos, err := source.CurrentPosition(context.Background(), defaultOpts())

		require.NoError(t, err)
		assert.Equal(t, kyoto, pos.Coordinate)
		assert.Equal(t, 12.5, pos.Accuracy)
		assert.True(t, ts.Equal(pos.Timestamp))
	})

	t.Run("エラーコードの変換", func(t *testing.T) {
		cases := map[int]model.LocationErrorKind{
			1:  model.LocationPermissionDenied,
			2:  model.LocationPositionUnavailable,
			3:  model.LocationTimeout,
			99: model.LocationUnknown,
		}
		for code, kind := range cases {
			source := NewReportedSource(&model.DevicePositionReport{ErrorCode: code, ErrorMessage: "from device"})
			_, err := source.CurrentPosition(context.Background(), defaultOpts())
			requireKind(t, err, kind)
		}
	})

	t.Run("座標もエラーもない", func(t *testing.T) {
		source := NewReportedSource(&model.DevicePositionReport{})
		_, err := source.CurrentPosition(context.Background(), defaultOpts())
		requireKind(t, err, model.LocationPositionUnavailable)
	})
}

func TestStaticSource(t *testing.T) {
	pos, err := NewStaticSource(kyoto).CurrentPosition(context.Background(), defaultOpts())
	require.NoError(t, err)
	assert.Equal(t, kyoto, pos.Coordinate)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewStaticSource(kyoto).CurrentPosition(ctx, defaultOpts())
	assert.ErrorIs(t, err, context.Canceled)
}

// countingSource は呼び出し回数を数えるテスト用の測位機能
type countingSource struct {
	position *model.Position
	err      error
	calls    int
}

func (s *countingSource) CurrentPosition(ctx context.Context, opts model.PositionOptions) (*model.Position, error) {
	s.calls++
	return s.position, s.err
}

func TestPositionCache(t *testing.T) {
	osaka := model.Coordinate{Latitude: 34.7025, Longitude: 135.4959}

	t.Run("端末IDなしはそのまま", func(t *testing.T) {
		next := &countingSource{}
		assert.Same(t, next, NewPositionCache(time.Minute).Wrap("", next))
	})

	t.Run("端末の報告がなければ測位機能なし", func(t *testing.T) {
		positionCache := NewPositionCache(time.Minute)
		fresh := &countingSource{position: &model.Position{Coordinate: kyoto, Timestamp: time.Now()}}
		_, err := positionCache.Wrap("device-1", fresh).CurrentPosition(context.Background(), defaultOpts())
		require.NoError(t, err)

		assert.Nil(t, positionCache.Wrap("device-1", nil))
	})

	t.Run("新しい報告は常に端末の値を使う", func(t *testing.T) {
		positionCache := NewPositionCache(time.Minute)
		first := &countingSource{position: &model.Position{Coordinate: kyoto, Timestamp: time.Now()}}
		_, err := positionCache.Wrap("device-2", first).CurrentPosition(context.Background(), defaultOpts())
		require.NoError(t, err)

		second := &countingSource{position: &model.Position{Coordinate: osaka, Timestamp: time.Now()}}
		pos, err := positionCache.Wrap("device-2", second).CurrentPosition(context.Background(), defaultOpts())

		require.NoError(t, err)
		assert.Equal(t, osaka, pos.Coordinate)
		assert.Equal(t, 1, second.calls)
	})

	t.Run("古い報告は直近のキャッシュで置き換える", func(t *testing.T) {
		positionCache := NewPositionCache(time.Minute)
		fresh := &countingSource{position: &model.Position{Coordinate: kyoto, Timestamp: time.Now()}}
		_, err := positionCache.Wrap("device-3", fresh).CurrentPosition(context.Background(), defaultOpts())
		require.NoError(t, err)

		stale := &countingSource{position: &model.Position{Coordinate: osaka, Timestamp: time.Now().Add(-5 * time.Minute)}}
		pos, err := positionCache.Wrap("device-3", stale).CurrentPosition(context.Background(), defaultOpts())

		require.NoError(t, err)
		assert.Equal(t, kyoto, pos.Coordinate)
	})

	t.Run("古い報告でキャッシュもなければ報告をそのまま返す", func(t *testing.T) {
		positionCache := NewPositionCache(time.Minute)
		stale := &countingSource{position: &model.Position{Coordinate: osaka, Timestamp: time.Now().Add(-5 * time.Minute)}}

		pos, err := positionCache.Wrap("device-4", stale).CurrentPosition(context.Background(), defaultOpts())

		require.NoError(t, err)
		assert.Equal(t, osaka, pos.Coordinate)
	})

	t.Run("失敗はキャッシュより優先する", func(t *testing.T) {
		positionCache := NewPositionCache(time.Minute)
		fresh := &countingSource{position: &model.Position{Coordinate: kyoto, Timestamp: time.Now()}}
		_, err := positionCache.Wrap("device-5", fresh).CurrentPosition(context.Background(), defaultOpts())
		require.NoError(t, err)

		denied := &countingSource{err: model.NewLocationError(model.LocationPermissionDenied, nil)}
		_, err = positionCache.Wrap("device-5", denied).CurrentPosition(context.Background(), defaultOpts())

		requireKind(t, err, model.LocationPermissionDenied)
		assert.Equal(t, 1, denied.calls)
	})
}
