package location

import (
	"context"
	"errors"
	"time"

	"MoodSpot-App/internal/domain/model"
	"MoodSpot-App/internal/domain/repository"
)

// ReportedSource はクライアント端末が送ってきた測位結果をPositionSourceとして扱う
type ReportedSource struct {
	report *model.DevicePositionReport
	now    func() time.Time
}

// NewReportedSource は新しいReportedSourceを作成する
// reportがnilの場合は端末が測位機能を持たないとみなしnilを返す
func NewReportedSource(report *model.DevicePositionReport) repository.PositionSource {
	if report == nil {
		return nil
	}
	return &ReportedSource{report: report, now: time.Now}
}

// CurrentPosition は端末の報告内容を測位結果またはLocationErrorに変換する
func (s *ReportedSource) CurrentPosition(ctx context.Context, opts model.PositionOptions) (*model.Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.report.ErrorCode != 0 {
		return nil, model.NewLocationError(errorKindFromCode(s.report.ErrorCode), reportedError(s.report))
	}

	if s.report.Coords == nil {
		return nil, model.NewLocationError(model.LocationPositionUnavailable, errors.New("端末から座標が送られていません"))
	}

	timestamp := s.now()
	if s.report.TimestampMillis > 0 {
		timestamp = time.UnixMilli(s.report.TimestampMillis)
	}

	return &model.Position{
		Coordinate: *s.report.Coords,
		Accuracy:   s.report.Accuracy,
		Timestamp:  timestamp,
	}, nil
}

// errorKindFromCode は端末の測位APIのエラーコードを失敗種別に変換する
func errorKindFromCode(code int) model.LocationErrorKind {
	switch code {
	case model.PositionErrorPermissionDenied:
		return model.LocationPermissionDenied
	case model.PositionErrorPositionUnavailable:
		return model.LocationPositionUnavailable
	case model.PositionErrorTimeout:
		return model.LocationTimeout
	default:
		return model.LocationUnknown
	}
}

func reportedError(report *model.DevicePositionReport) error {
	if report.ErrorMessage == "" {
		return nil
	}
	return errors.New(report.ErrorMessage)
}
