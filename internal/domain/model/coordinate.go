package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"
)

// worldBound は有効な緯度経度の範囲（[lon, lat]）
var worldBound = orb.Bound{
	Min: orb.Point{-180, -90},
	Max: orb.Point{180, 90},
}

// Coordinate は緯度経度の組を表す値オブジェクト
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ToPoint はorb.Point（[lon, lat]）に変換する
func (c Coordinate) ToPoint() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// CoordinateFromPoint はorb.PointからCoordinateを作成する
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{
		Latitude:  p.Lat(),
		Longitude: p.Lon(),
	}
}

// IsValid は緯度が[-90,90]、経度が[-180,180]に収まっているか判定する
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}
	return worldBound.Contains(c.ToPoint())
}

// String は小数点以下4桁の「緯度, 経度」形式で返す
func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

// Position は端末から取得した測位結果
type Position struct {
	Coordinate Coordinate `json:"coordinate"`
	Accuracy   float64    `json:"accuracy,omitempty"` // メートル
	Timestamp  time.Time  `json:"timestamp"`
}

// PositionOptions は測位リクエストの条件
type PositionOptions struct {
	EnableHighAccuracy bool
	Timeout            time.Duration
	MaximumAge         time.Duration // この時間以内に取得した測位結果は再利用してよい
}

// DevicePositionReport はクライアント端末が送ってくる測位結果またはエラー
type DevicePositionReport struct {
	Coords          *Coordinate `json:"coords,omitempty"`
	Accuracy        float64     `json:"accuracy,omitempty"`
	TimestampMillis int64       `json:"timestamp,omitempty"`
	ErrorCode       int         `json:"error_code,omitempty"` // 1: 権限拒否, 2: 取得不可, 3: タイムアウト
	ErrorMessage    string      `json:"error_message,omitempty"`
}

// 端末の測位APIが返すエラーコード
const (
	PositionErrorPermissionDenied    = 1
	PositionErrorPositionUnavailable = 2
	PositionErrorTimeout             = 3
)

// ParseCoordinate は"lat,lng"形式の文字列を座標に変換する
// 範囲外の場合はErrOutOfRangeを返す
func ParseCoordinate(value string) (Coordinate, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("format must be lat,lng: %q", value)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid latitude: %q", parts[0])
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid longitude: %q", parts[1])
	}

	coordinate := Coordinate{Latitude: lat, Longitude: lng}
	if !coordinate.IsValid() {
		return Coordinate{}, fmt.Errorf("%w: %s", ErrOutOfRange, coordinate)
	}
	return coordinate, nil
}
