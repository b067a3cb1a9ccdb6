package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"MoodSpot-App/internal/domain/model"
)

// 行単位の解釈で使う箇条書き記号
var bulletMarkers = []string{"-", "•", "*"}

// ExtractPlaces は生成AIの応答テキストから場所の提案を取り出す
// 最初の[...]が期待する形でなければ後続の[...]も順に試す
// JSON配列が見つからない場合は箇条書きの行を場所名として扱う
// どちらでも取り出せなければnilを返す
func ExtractPlaces(raw, moodLabel string) ([]model.PlaceRecommendation, model.ResultSource) {
	places := extractJSONArray(raw, normalizePlace)
	if len(places) > 0 {
		return places, model.SourceBackend
	}

	places = parsePlaceLines(raw, moodLabel)
	if len(places) > 0 {
		return places, model.SourceHeuristic
	}
	return nil, ""
}

// ExtractSongs は生成AIの応答テキストから曲の提案を取り出す
// 曲はタイトルとアーティストの組が必要なため行単位の解釈は行わない
func ExtractSongs(raw string) []model.SongRecommendation {
	return extractJSONArray(raw, normalizeSong)
}

// extractJSONArray はテキスト中の対応の取れた[...]を先頭から順に試し、
// 期待する形のレコードが1件以上得られた最初の配列を返す
func extractJSONArray[T any](raw string, normalize func(T) (T, bool)) []T {
	for start := strings.IndexByte(raw, '['); start >= 0; {
		if end := matchingBracket(raw, start); end >= 0 {
			if records, err := decodeRecords(raw[start:end+1], normalize); err == nil && len(records) > 0 {
				return records
			}
		}

		next := strings.IndexByte(raw[start+1:], '[')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return nil
}

// decodeRecords は配列をデコードし、必須項目が欠けたレコードを除外する
func decodeRecords[T any](candidate string, normalize func(T) (T, bool)) ([]T, error) {
	var decoded []T
	if err := json.Unmarshal([]byte(candidate), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedResponse, err)
	}

	records := make([]T, 0, len(decoded))
	for _, rec := range decoded {
		if normalized, ok := normalize(rec); ok {
			records = append(records, normalized)
		}
	}
	return records, nil
}

// matchingBracket はraw[start]の'['に対応する']'の位置を返す（文字列リテラル内は無視）
func matchingBracket(raw string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// normalizePlace は前後の空白を取り除き、必須項目（name, type, description）を確認する
func normalizePlace(p model.PlaceRecommendation) (model.PlaceRecommendation, bool) {
	p.Name = strings.TrimSpace(p.Name)
	p.Type = strings.TrimSpace(p.Type)
	p.Description = strings.TrimSpace(p.Description)
	p.Address = strings.TrimSpace(p.Address)
	return p, p.Name != "" && p.Type != "" && p.Description != ""
}

// normalizeSong は前後の空白を取り除き、必須項目（title, artist, genre）を確認する
func normalizeSong(s model.SongRecommendation) (model.SongRecommendation, bool) {
	s.Title = strings.TrimSpace(s.Title)
	s.Artist = strings.TrimSpace(s.Artist)
	s.Genre = strings.TrimSpace(s.Genre)
	s.Reason = strings.TrimSpace(s.Reason)
	return s, s.Title != "" && s.Artist != "" && s.Genre != ""
}

// parsePlaceLines は箇条書きの行を最小限の場所情報に変換する
func parsePlaceLines(raw, moodLabel string) []model.PlaceRecommendation {
	var places []model.PlaceRecommendation
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		name := ""
		for _, marker := range bulletMarkers {
			if strings.HasPrefix(line, marker) {
				name = strings.TrimLeft(strings.TrimPrefix(line, marker), "-•* ")
				name = strings.TrimRight(name, "* ")
				break
			}
		}
		if name == "" {
			continue
		}

		places = append(places, model.PlaceRecommendation{
			Name:        name,
			Type:        "General",
			Description: fmt.Sprintf("Recommended for %s mood", moodLabel),
			Address:     "Nearby location",
		})
	}
	return places
}
