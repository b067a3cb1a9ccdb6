package model

import (
	"errors"
	"fmt"
)

// 外部サービス呼び出しで使うエラー（いずれも呼び出し元でフォールバックに吸収される）
var (
	ErrOutOfRange         = errors.New("座標が有効範囲外です")
	ErrNetwork            = errors.New("ネットワークエラー")
	ErrMalformedResponse  = errors.New("レスポンスの形式が不正です")
	ErrBackendUnavailable = errors.New("生成AIバックエンドが利用できません")
)

// LocationErrorKind は位置情報取得の失敗種別
type LocationErrorKind string

const (
	LocationPermissionDenied    LocationErrorKind = "permission_denied"
	LocationPositionUnavailable LocationErrorKind = "position_unavailable"
	LocationTimeout             LocationErrorKind = "timeout"
	LocationUnsupported         LocationErrorKind = "unsupported"
	LocationUnknown             LocationErrorKind = "unknown"
)

// locationErrorMessages は失敗種別ごとのユーザー向けメッセージ
var locationErrorMessages = map[LocationErrorKind]string{
	LocationPermissionDenied:    "Location access denied. Please enable location permissions in your browser settings.",
	LocationPositionUnavailable: "Location information is unavailable. Please check your device settings.",
	LocationTimeout:             "Location request timed out. Please try again.",
	LocationUnsupported:         "Geolocation is not supported by your browser. Please use a modern browser.",
	LocationUnknown:             "An unknown error occurred while getting your location.",
}

// LocationError は位置情報取得の失敗を表す
// パイプラインの中で呼び出し元まで伝播する唯一のエラー
type LocationError struct {
	Kind    LocationErrorKind
	Message string
	Err     error
}

// NewLocationError は種別に対応したメッセージつきのLocationErrorを作成する
func NewLocationError(kind LocationErrorKind, err error) *LocationError {
	message, ok := locationErrorMessages[kind]
	if !ok {
		kind = LocationUnknown
		message = locationErrorMessages[LocationUnknown]
	}
	return &LocationError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func (e *LocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *LocationError) Unwrap() error {
	return e.Err
}

// Retryable は同じ操作をユーザーが再試行できるかどうか
func (e *LocationError) Retryable() bool {
	return true
}
